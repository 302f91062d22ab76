package standings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/pick6/go/internal/apperrors"
	"github.com/mcdev12/pick6/go/internal/models"
)

type fakeRepo struct {
	leagues map[uuid.UUID]models.League
	rosters map[uuid.UUID][]RosterRow
	games   []models.Game
	week    int
}

func (f *fakeRepo) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	l, ok := f.leagues[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &l, nil
}

func (f *fakeRepo) RosterRows(ctx context.Context, leagueID uuid.UUID) ([]RosterRow, error) {
	return f.rosters[leagueID], nil
}

func (f *fakeRepo) GamesForSchools(ctx context.Context, season, throughWeek int, schoolIDs []int) ([]models.Game, error) {
	wanted := make(map[int]bool)
	for _, id := range schoolIDs {
		wanted[id] = true
	}
	var out []models.Game
	for _, g := range f.games {
		if g.Season == season && g.Week <= throughWeek && (wanted[g.HomeID] || wanted[g.AwayID]) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeRepo) CurrentWeek(ctx context.Context, season int) (int, error) {
	return f.week, nil
}

func (f *fakeRepo) LeagueIDsByStatus(ctx context.Context, status models.LeagueStatus) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for id, l := range f.leagues {
		if l.Status == status {
			out = append(out, id)
		}
	}
	return out, nil
}

func completedGame(week, homeID, awayID, homePts, awayPts int) models.Game {
	return models.Game{
		Season:    2025,
		Week:      week,
		Completed: true,
		HomeID:    homeID,
		HomeTeam:  teamName(homeID),
		HomePoints: homePts,
		AwayID:     awayID,
		AwayTeam:   teamName(awayID),
		AwayPoints: awayPts,
	}
}

func teamName(id int) string {
	return map[int]string{
		1: "Michigan", 2: "Ohio State", 3: "Alabama", 4: "Georgia", 5: "Oregon",
	}[id]
}

func newTestApp(repo *fakeRepo) (*App, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))
	return NewApp(repo, clock), clock
}

func TestComputeRecordsAndRanking(t *testing.T) {
	ctx := context.Background()
	leagueID := uuid.New()
	alice := uuid.New()
	bob := uuid.New()

	repo := &fakeRepo{
		leagues: map[uuid.UUID]models.League{
			leagueID: {ID: leagueID, Season: 2025, Status: models.LeagueStatusActive},
		},
		rosters: map[uuid.UUID][]RosterRow{
			leagueID: {
				{UserID: alice, DisplayName: "alice", SchoolID: 1, SchoolName: "Michigan", DraftRound: 1},
				{UserID: alice, DisplayName: "alice", SchoolID: 3, SchoolName: "Alabama", DraftRound: 2},
				{UserID: bob, DisplayName: "bob", SchoolID: 2, SchoolName: "Ohio State", DraftRound: 1},
			},
		},
		games: []models.Game{
			completedGame(1, 1, 2, 28, 21), // Michigan beats Ohio State
			completedGame(2, 3, 1, 14, 14), // Alabama ties Michigan
			completedGame(3, 2, 4, 35, 10), // Ohio State beats Georgia
			// Alabama is on a bye weeks 1 and 3.
		},
		week: 3,
	}
	app, _ := newTestApp(repo)

	res, err := app.Compute(ctx, leagueID, 0)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if res.Week != 3 {
		t.Errorf("got week %d, want 3", res.Week)
	}
	if res.Degraded {
		t.Error("standings should not be degraded with game data present")
	}
	if len(res.Standings) != 2 {
		t.Fatalf("got %d rows, want 2", len(res.Standings))
	}

	// Alice: Michigan W + T, Alabama T = 1 win, 2 ties, 3 games played.
	// Michigan appears in two completed games, Alabama in one.
	top := res.Standings[0]
	if top.UserID != alice {
		t.Fatalf("expected alice ranked first")
	}
	if top.Rank != 1 {
		t.Errorf("got rank %d, want 1", top.Rank)
	}
	if top.TotalWins != 1 || top.TotalTies != 2 || top.TotalLosses != 0 {
		t.Errorf("alice record = %d-%d-%d, want 1-0-2", top.TotalWins, top.TotalLosses, top.TotalTies)
	}
	if top.GamesPlayed != 3 {
		t.Errorf("alice games played = %d, want 3", top.GamesPlayed)
	}

	second := res.Standings[1]
	if second.UserID != bob {
		t.Fatalf("expected bob ranked second")
	}
	if second.TotalWins != 1 || second.TotalLosses != 1 {
		t.Errorf("bob record = %d-%d-%d, want 1-1-0", second.TotalWins, second.TotalLosses, second.TotalTies)
	}

	// Name breaks the 1-win tie: alice before bob.
	if !(top.DisplayName < second.DisplayName) {
		t.Error("equal wins should order by display name")
	}

	// Weekly codes for alice's Alabama line: BYE, T, BYE.
	var alabama *SchoolLine
	for i := range top.Schools {
		if top.Schools[i].SchoolID == 3 {
			alabama = &top.Schools[i]
		}
	}
	if alabama == nil {
		t.Fatal("alabama line missing")
	}
	wantCodes := []WeekCode{CodeBye, CodeTie, CodeBye}
	for i, want := range wantCodes {
		if alabama.Weekly[i].Code != want {
			t.Errorf("alabama week %d = %s, want %s", i+1, alabama.Weekly[i].Code, want)
		}
	}
}

func TestComputeWeekCodes(t *testing.T) {
	ctx := context.Background()
	leagueID := uuid.New()
	alice := uuid.New()

	kickoffPast := time.Date(2025, 9, 27, 19, 0, 0, 0, time.UTC)
	kickoffFuture := time.Date(2025, 10, 4, 19, 0, 0, 0, time.UTC)

	repo := &fakeRepo{
		leagues: map[uuid.UUID]models.League{
			leagueID: {ID: leagueID, Season: 2025, Status: models.LeagueStatusActive},
		},
		rosters: map[uuid.UUID][]RosterRow{
			leagueID: {{UserID: alice, DisplayName: "alice", SchoolID: 1, SchoolName: "Michigan", DraftRound: 1}},
		},
		games: []models.Game{
			{Season: 2025, Week: 1, Completed: false, StartDate: &kickoffPast, HomeID: 1, AwayID: 2, AwayTeam: "Ohio State"},
			{Season: 2025, Week: 2, Completed: false, StartDate: &kickoffFuture, HomeID: 5, HomeTeam: "Oregon", AwayID: 1},
		},
		week: 2,
	}
	app, _ := newTestApp(repo)

	res, err := app.Compute(ctx, leagueID, 2)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	weekly := res.Standings[0].Schools[0].Weekly
	if weekly[0].Code != CodeInProgress {
		t.Errorf("week 1 = %s, want IP for a started game", weekly[0].Code)
	}
	if weekly[1].Code != CodeScheduled {
		t.Errorf("week 2 = %s, want S for a future game", weekly[1].Code)
	}
	if weekly[1].Opponent != "Oregon" {
		t.Errorf("week 2 opponent = %q, want the home team for an away game", weekly[1].Opponent)
	}
	if res.Standings[0].GamesPlayed != 0 {
		t.Error("unfinished games must not count as played")
	}
}

func TestComputeEmptyFeed(t *testing.T) {
	ctx := context.Background()
	leagueID := uuid.New()
	alice := uuid.New()

	repo := &fakeRepo{
		leagues: map[uuid.UUID]models.League{
			leagueID: {ID: leagueID, Season: 2025, Status: models.LeagueStatusActive},
		},
		rosters: map[uuid.UUID][]RosterRow{
			leagueID: {{UserID: alice, DisplayName: "alice", SchoolID: 1, SchoolName: "Michigan", DraftRound: 1}},
		},
		week: 0,
	}
	app, _ := newTestApp(repo)

	res, err := app.Compute(ctx, leagueID, 0)
	if err != nil {
		t.Fatalf("an empty feed must degrade, not error: %v", err)
	}
	if !res.Degraded {
		t.Error("expected degraded standings")
	}
	if len(res.Standings) != 1 {
		t.Fatalf("got %d rows, want 1", len(res.Standings))
	}
	if res.Standings[0].TotalWins != 0 || res.Standings[0].GamesPlayed != 0 {
		t.Error("expected a zeroed record")
	}
}

func TestComputeUnknownLeague(t *testing.T) {
	repo := &fakeRepo{leagues: map[uuid.UUID]models.League{}}
	app, _ := newTestApp(repo)

	_, err := app.Compute(context.Background(), uuid.New(), 0)
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("got %v, want not_found", err)
	}
}
