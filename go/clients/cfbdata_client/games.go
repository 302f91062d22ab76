package cfbdata_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// GameResponse is one game as the feed reports it. Points are null until the
// game completes.
type GameResponse struct {
	ID         int        `json:"id"`
	Season     int        `json:"season"`
	Week       int        `json:"week"`
	SeasonType string     `json:"seasonType"`
	StartDate  *time.Time `json:"startDate"`
	Completed  bool       `json:"completed"`
	HomeID     int        `json:"homeId"`
	HomeTeam   string     `json:"homeTeam"`
	HomePoints *int       `json:"homePoints"`
	AwayID     int        `json:"awayId"`
	AwayTeam   string     `json:"awayTeam"`
	AwayPoints *int       `json:"awayPoints"`
}

// FetchGames returns the regular-season games for a season, optionally
// narrowed to one week (week 0 fetches the whole season).
func (c *CFBDataClient) FetchGames(ctx context.Context, season, week int) ([]GameResponse, error) {
	params := url.Values{}
	params.Set(YearParam, strconv.Itoa(season))
	params.Set(SeasonTypeParam, SeasonTypeRegular)
	if week > 0 {
		params.Set(WeekParam, strconv.Itoa(week))
	}

	body, err := c.Get(ctx, GamesEndpoint+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetch games: %w", err)
	}

	var games []GameResponse
	if err := json.Unmarshal(body, &games); err != nil {
		return nil, fmt.Errorf("unmarshal games response: %w", err)
	}
	return games, nil
}
