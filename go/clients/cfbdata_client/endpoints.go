package cfbdata_client

const (
	// Base URL for the CollegeFootballData API
	BaseURL = "https://api.collegefootballdata.com"

	// Paths
	GamesEndpoint    = "/games"
	TeamsFBSEndpoint = "/teams/fbs"

	// Query params
	YearParam       = "year"
	WeekParam       = "week"
	SeasonTypeParam = "seasonType"

	SeasonTypeRegular = "regular"

	// Headers
	AuthHeader      = "Authorization"
	JsonHeader      = "accept"
	JsonContentType = "application/json"
)
