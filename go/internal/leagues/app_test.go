package leagues

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/pick6/go/internal/apperrors"
	"github.com/mcdev12/pick6/go/internal/models"
)

type fakeRepo struct {
	leagues map[uuid.UUID]models.League
	byCode  map[string]uuid.UUID
	members map[uuid.UUID][]models.LeagueMember
	users   map[uuid.UUID]models.User

	failCreates int // force this many join-code collisions
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		leagues: make(map[uuid.UUID]models.League),
		byCode:  make(map[string]uuid.UUID),
		members: make(map[uuid.UUID][]models.LeagueMember),
		users:   make(map[uuid.UUID]models.User),
	}
}

func (f *fakeRepo) CreateLeague(ctx context.Context, league models.League) (*models.League, error) {
	if f.failCreates > 0 {
		f.failCreates--
		return nil, &pgconn.PgError{Code: "23505"}
	}
	if _, ok := f.byCode[league.JoinCode]; ok {
		return nil, &pgconn.PgError{Code: "23505"}
	}
	f.leagues[league.ID] = league
	f.byCode[league.JoinCode] = league.ID
	return &league, nil
}

func (f *fakeRepo) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	l, ok := f.leagues[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &l, nil
}

func (f *fakeRepo) GetLeagueByJoinCode(ctx context.Context, code string) (*models.League, error) {
	id, ok := f.byCode[code]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return f.GetLeague(ctx, id)
}

func (f *fakeRepo) UpdateLeague(ctx context.Context, id uuid.UUID, name string, rosterCap int) (*models.League, error) {
	l := f.leagues[id]
	l.Name = name
	l.RosterCap = rosterCap
	f.leagues[id] = l
	return &l, nil
}

func (f *fakeRepo) UpdateLeagueStatus(ctx context.Context, id uuid.UUID, status models.LeagueStatus) error {
	l := f.leagues[id]
	l.Status = status
	f.leagues[id] = l
	return nil
}

func (f *fakeRepo) AddMember(ctx context.Context, member models.LeagueMember) error {
	for _, m := range f.members[member.LeagueID] {
		if m.UserID == member.UserID {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	f.members[member.LeagueID] = append(f.members[member.LeagueID], member)
	return nil
}

func (f *fakeRepo) GetMember(ctx context.Context, leagueID, userID uuid.UUID) (*models.LeagueMember, error) {
	for _, m := range f.members[leagueID] {
		if m.UserID == userID {
			return &m, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeRepo) ListMembers(ctx context.Context, leagueID uuid.UUID) ([]MemberInfo, error) {
	var out []MemberInfo
	for _, m := range f.members[leagueID] {
		out = append(out, MemberInfo{
			UserID:        m.UserID,
			DisplayName:   f.users[m.UserID].DisplayName,
			TeamName:      m.TeamName,
			DraftPosition: m.DraftPosition,
			JoinedAt:      m.JoinedAt,
		})
	}
	return out, nil
}

func (f *fakeRepo) UpdateTeamName(ctx context.Context, leagueID, userID uuid.UUID, teamName string) error {
	for i, m := range f.members[leagueID] {
		if m.UserID == userID {
			f.members[leagueID][i].TeamName = teamName
		}
	}
	return nil
}

func (f *fakeRepo) ListLeaguesForUser(ctx context.Context, userID uuid.UUID) ([]Summary, error) {
	var out []Summary
	for id, l := range f.leagues {
		for _, m := range f.members[id] {
			if m.UserID == userID {
				out = append(out, Summary{League: l, TeamName: m.TeamName, MemberCount: len(f.members[id])})
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

func (f *fakeRepo) addUser(name string) uuid.UUID {
	id := uuid.New()
	f.users[id] = models.User{ID: id, Email: name + "@example.com", DisplayName: name}
	return id
}

func newTestApp(repo *fakeRepo) *App {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC))
	return NewApp(repo, nil, clock)
}

func wantKind(t *testing.T, err error, kind apperrors.Kind) {
	t.Helper()
	if apperrors.KindOf(err) != kind {
		t.Fatalf("expected %s error, got %v", kind, err)
	}
}

func TestCreateLeague(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults and creator membership", func(t *testing.T) {
		repo := newFakeRepo()
		alice := repo.addUser("alice")
		app := newTestApp(repo)

		league, err := app.CreateLeague(ctx, CreateLeagueRequest{Name: "Big Ten Degens"}, alice)
		if err != nil {
			t.Fatalf("CreateLeague: %v", err)
		}
		if league.RosterCap != 6 {
			t.Errorf("got roster cap %d, want default 6", league.RosterCap)
		}
		if league.Status != models.LeagueStatusPreDraft {
			t.Errorf("got status %s, want pre_draft", league.Status)
		}
		if len(league.JoinCode) != 8 {
			t.Errorf("got join code %q, want 8 chars", league.JoinCode)
		}
		for _, c := range league.JoinCode {
			if !strings.ContainsRune(joinCodeAlphabet, c) {
				t.Errorf("join code %q contains %q outside the alphabet", league.JoinCode, c)
			}
		}

		members := repo.members[league.ID]
		if len(members) != 1 || members[0].UserID != alice {
			t.Fatal("creator should be enrolled")
		}
		if members[0].TeamName != "alice's Team" {
			t.Errorf("got team name %q", members[0].TeamName)
		}
	})

	t.Run("retries join code collisions", func(t *testing.T) {
		repo := newFakeRepo()
		alice := repo.addUser("alice")
		repo.failCreates = 2
		app := newTestApp(repo)

		if _, err := app.CreateLeague(ctx, CreateLeagueRequest{Name: "x"}, alice); err != nil {
			t.Fatalf("expected retry to succeed: %v", err)
		}
	})

	t.Run("rejects blank name and bad cap", func(t *testing.T) {
		repo := newFakeRepo()
		alice := repo.addUser("alice")
		app := newTestApp(repo)

		_, err := app.CreateLeague(ctx, CreateLeagueRequest{Name: "  "}, alice)
		wantKind(t, err, apperrors.KindValidation)

		_, err = app.CreateLeague(ctx, CreateLeagueRequest{Name: "x", RosterCap: 99}, alice)
		wantKind(t, err, apperrors.KindValidation)
	})
}

func TestJoinByCode(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fakeRepo, *App, *models.League, uuid.UUID) {
		repo := newFakeRepo()
		alice := repo.addUser("alice")
		app := newTestApp(repo)
		league, err := app.CreateLeague(ctx, CreateLeagueRequest{Name: "x"}, alice)
		if err != nil {
			t.Fatal(err)
		}
		return repo, app, league, alice
	}

	t.Run("joins and returns the lobby", func(t *testing.T) {
		repo, app, league, _ := setup(t)
		bob := repo.addUser("bob")

		lobby, err := app.JoinByCode(ctx, JoinLeagueRequest{JoinCode: league.JoinCode, TeamName: "Bobcats"}, bob)
		if err != nil {
			t.Fatalf("JoinByCode: %v", err)
		}
		if len(lobby.Members) != 2 {
			t.Errorf("got %d members, want 2", len(lobby.Members))
		}
		if !lobby.IsMember || lobby.IsCreator {
			t.Error("bob should be a member but not the creator")
		}
	})

	t.Run("codes are case-insensitive", func(t *testing.T) {
		repo, app, league, _ := setup(t)
		bob := repo.addUser("bob")

		if _, err := app.JoinByCode(ctx, JoinLeagueRequest{JoinCode: strings.ToLower(league.JoinCode)}, bob); err != nil {
			t.Fatalf("lowercase code should work: %v", err)
		}
	})

	t.Run("duplicate join conflicts", func(t *testing.T) {
		repo, app, league, _ := setup(t)
		bob := repo.addUser("bob")
		if _, err := app.JoinByCode(ctx, JoinLeagueRequest{JoinCode: league.JoinCode}, bob); err != nil {
			t.Fatal(err)
		}
		_, err := app.JoinByCode(ctx, JoinLeagueRequest{JoinCode: league.JoinCode}, bob)
		wantKind(t, err, apperrors.KindConflict)
	})

	t.Run("closed once drafting", func(t *testing.T) {
		repo, app, league, _ := setup(t)
		bob := repo.addUser("bob")
		repo.UpdateLeagueStatus(ctx, league.ID, models.LeagueStatusDrafting)

		_, err := app.JoinByCode(ctx, JoinLeagueRequest{JoinCode: league.JoinCode}, bob)
		wantKind(t, err, apperrors.KindInvalidState)
	})

	t.Run("unknown code", func(t *testing.T) {
		repo, app, _, _ := setup(t)
		bob := repo.addUser("bob")
		_, err := app.JoinByCode(ctx, JoinLeagueRequest{JoinCode: "NOPE1234"}, bob)
		wantKind(t, err, apperrors.KindNotFound)
	})
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	alice := repo.addUser("alice")
	bob := repo.addUser("bob")
	app := newTestApp(repo)
	league, err := app.CreateLeague(ctx, CreateLeagueRequest{Name: "x"}, alice)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("creator updates name and cap", func(t *testing.T) {
		name := "The Rebrand"
		cap := 4
		updated, err := app.UpdateSettings(ctx, league.ID, alice, UpdateSettingsRequest{Name: &name, RosterCap: &cap})
		if err != nil {
			t.Fatalf("UpdateSettings: %v", err)
		}
		if updated.Name != name || updated.RosterCap != cap {
			t.Errorf("got %q/%d", updated.Name, updated.RosterCap)
		}
	})

	t.Run("non-creator forbidden", func(t *testing.T) {
		name := "hijack"
		_, err := app.UpdateSettings(ctx, league.ID, bob, UpdateSettingsRequest{Name: &name})
		wantKind(t, err, apperrors.KindForbidden)
	})

	t.Run("cap frozen after pre_draft", func(t *testing.T) {
		repo.UpdateLeagueStatus(ctx, league.ID, models.LeagueStatusDrafting)
		cap := 3
		_, err := app.UpdateSettings(ctx, league.ID, alice, UpdateSettingsRequest{RosterCap: &cap})
		wantKind(t, err, apperrors.KindInvalidState)

		// Renaming is still allowed mid-draft.
		name := "still fine"
		if _, err := app.UpdateSettings(ctx, league.ID, alice, UpdateSettingsRequest{Name: &name}); err != nil {
			t.Errorf("rename mid-draft: %v", err)
		}
	})
}

func TestSkipDraft(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	alice := repo.addUser("alice")
	bob := repo.addUser("bob")
	app := newTestApp(repo)
	league, err := app.CreateLeague(ctx, CreateLeagueRequest{Name: "x"}, alice)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("non-creator forbidden", func(t *testing.T) {
		_, err := app.SkipDraft(ctx, league.ID, bob)
		wantKind(t, err, apperrors.KindForbidden)
	})

	t.Run("pre_draft goes active", func(t *testing.T) {
		updated, err := app.SkipDraft(ctx, league.ID, alice)
		if err != nil {
			t.Fatalf("SkipDraft: %v", err)
		}
		if updated.Status != models.LeagueStatusActive {
			t.Errorf("got status %s, want active", updated.Status)
		}
	})

	t.Run("only from pre_draft", func(t *testing.T) {
		_, err := app.SkipDraft(ctx, league.ID, alice)
		wantKind(t, err, apperrors.KindInvalidState)
	})
}

func TestUpdateTeamName(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	alice := repo.addUser("alice")
	app := newTestApp(repo)
	league, err := app.CreateLeague(ctx, CreateLeagueRequest{Name: "x"}, alice)
	if err != nil {
		t.Fatal(err)
	}

	if err := app.UpdateTeamName(ctx, league.ID, alice, "Wolverines 4eva"); err != nil {
		t.Fatalf("UpdateTeamName: %v", err)
	}
	if repo.members[league.ID][0].TeamName != "Wolverines 4eva" {
		t.Error("team name not persisted")
	}

	err = app.UpdateTeamName(ctx, league.ID, uuid.New(), "intruder")
	wantKind(t, err, apperrors.KindForbidden)

	err = app.UpdateTeamName(ctx, league.ID, alice, "  ")
	wantKind(t, err, apperrors.KindValidation)
}
