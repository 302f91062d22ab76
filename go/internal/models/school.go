package models

// School is reference data for one college football program. IDs come from
// the upstream data provider and are stable across seasons.
type School struct {
	ID             int    `json:"id"`
	Slug           string `json:"slug"`
	Abbreviation   string `json:"abbreviation,omitempty"`
	Name           string `json:"name"`
	Mascot         string `json:"mascot,omitempty"`
	Conference     string `json:"conference,omitempty"`
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
}
