package cfbdata_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// TeamResponse is one FBS program from the feed's team catalog.
type TeamResponse struct {
	ID           int    `json:"id"`
	School       string `json:"school"`
	Mascot       string `json:"mascot"`
	Abbreviation string `json:"abbreviation"`
	Conference   string `json:"conference"`
	Color        string `json:"color"`
	AltColor     string `json:"alternateColor"`
}

// FetchTeams returns the FBS team catalog for a season, used to seed the
// schools table.
func (c *CFBDataClient) FetchTeams(ctx context.Context, season int) ([]TeamResponse, error) {
	params := url.Values{}
	params.Set(YearParam, strconv.Itoa(season))

	body, err := c.Get(ctx, TeamsFBSEndpoint+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}

	var teams []TeamResponse
	if err := json.Unmarshal(body, &teams); err != nil {
		return nil, fmt.Errorf("unmarshal teams response: %w", err)
	}
	return teams, nil
}
