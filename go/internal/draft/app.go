package draft

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pick6/go/internal/apperrors"
	"github.com/mcdev12/pick6/go/internal/events"
	"github.com/mcdev12/pick6/go/internal/models"
	"github.com/mcdev12/pick6/go/internal/sqlutil"
)

// MemberEntry is a league member joined with user display data, ordered by
// draft position.
type MemberEntry struct {
	models.LeagueMember
	DisplayName string
}

// TxQueries is the query surface the draft app drives. The repository binds
// it either to the pool for reads or to a single transaction via WithTx;
// every mutating operation starts by locking the league row through
// GetLeagueForUpdate, which is the per-league mutual exclusion point.
type TxQueries interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	GetLeagueForUpdate(ctx context.Context, id uuid.UUID) (*models.League, error)
	UpdateLeagueStatus(ctx context.Context, id uuid.UUID, status models.LeagueStatus) error

	ListMembers(ctx context.Context, leagueID uuid.UUID) ([]MemberEntry, error)
	SetDraftPosition(ctx context.Context, leagueID, userID uuid.UUID, position int) error
	ClearDraftPositions(ctx context.Context, leagueID uuid.UUID) error
	DeleteMember(ctx context.Context, leagueID, userID uuid.UUID) error

	GetSchool(ctx context.Context, schoolID int) (*models.School, error)
	IsSchoolTaken(ctx context.Context, leagueID uuid.UUID, schoolID int) (bool, error)

	InsertPick(ctx context.Context, pick models.Pick) (*models.Pick, error)
	PicksForLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Pick, error)
	PicksForMember(ctx context.Context, leagueID, userID uuid.UUID) ([]models.Pick, error)
	PickCount(ctx context.Context, leagueID, userID uuid.UUID) (int, error)
	CountPicks(ctx context.Context, leagueID uuid.UUID) (int, error)
	PickCountsByMember(ctx context.Context, leagueID uuid.UUID) (map[uuid.UUID]int, error)
	DeletePicksForMember(ctx context.Context, leagueID, userID uuid.UUID) (int, error)
	DeletePicksForLeague(ctx context.Context, leagueID uuid.UUID) (int, error)

	GetDraftState(ctx context.Context, leagueID uuid.UUID) (*models.DraftState, error)
	GetDraftStateForUpdate(ctx context.Context, leagueID uuid.UUID) (*models.DraftState, error)
	CreateDraftState(ctx context.Context, state models.DraftState) error
	UpdateDraftState(ctx context.Context, state models.DraftState) error
	DeleteDraftState(ctx context.Context, leagueID uuid.UUID) error
}

// DraftRepository defines what the app layer needs from the repository.
type DraftRepository interface {
	Queries() TxQueries
	WithTx(ctx context.Context, fn func(q TxQueries) error) error
}

// Sink receives league change events for push delivery. Delivery failure
// must never fail a committed pick; callers log and move on.
type Sink interface {
	Notify(ctx context.Context, leagueID uuid.UUID, eventType string, payload any) error
}

// App handles draft business logic: turn lifecycle and the pick transaction.
type App struct {
	repo   DraftRepository
	engine *Engine
	sink   Sink
	clock  clockwork.Clock
}

// NewApp creates a new draft App.
func NewApp(repo DraftRepository, engine *Engine, sink Sink, clock clockwork.Clock) *App {
	return &App{
		repo:   repo,
		engine: engine,
		sink:   sink,
		clock:  clock,
	}
}

// StartDraft randomizes the draft order and begins drafting. Only the league
// creator may start a draft, only from pre_draft, and only once.
func (a *App) StartDraft(ctx context.Context, leagueID, requestedBy uuid.UUID) (*StartDraftResult, error) {
	var res *StartDraftResult
	err := a.repo.WithTx(ctx, func(q TxQueries) error {
		league, err := q.GetLeagueForUpdate(ctx, leagueID)
		if err != nil {
			if sqlutil.IsNoRows(err) {
				return apperrors.NotFound("league")
			}
			return fmt.Errorf("get league: %w", err)
		}
		if league.CreatedBy != requestedBy {
			return apperrors.Forbidden("only the league creator can start the draft")
		}
		if league.Status != models.LeagueStatusPreDraft {
			return apperrors.Newf(apperrors.KindInvalidState, "cannot start draft - league status is %s", league.Status)
		}

		members, err := q.ListMembers(ctx, leagueID)
		if err != nil {
			return fmt.Errorf("list members: %w", err)
		}
		if len(members) < 2 {
			return apperrors.InvalidState("need at least 2 players to start draft")
		}

		if _, err := q.GetDraftState(ctx, leagueID); err == nil {
			return apperrors.Conflict("draft has already been started for this league")
		} else if !sqlutil.IsNoRows(err) {
			return fmt.Errorf("check draft state: %w", err)
		}

		order := a.engine.ShuffleOrder(members)
		entries := make([]DraftOrderEntry, len(order))
		for i, m := range order {
			pos := i + 1
			if err := q.SetDraftPosition(ctx, leagueID, m.UserID, pos); err != nil {
				return fmt.Errorf("set draft position: %w", err)
			}
			entries[i] = DraftOrderEntry{
				DraftPosition: pos,
				UserID:        m.UserID,
				DisplayName:   m.DisplayName,
				TeamName:      m.TeamName,
			}
		}

		now := a.clock.Now()
		firstUserID := order[0].UserID
		state := models.DraftState{
			LeagueID:           leagueID,
			CurrentPickOverall: 1,
			CurrentUserID:      &firstUserID,
			TotalPicks:         len(order) * league.RosterCap,
			StartedAt:          now,
		}
		if err := q.CreateDraftState(ctx, state); err != nil {
			return apperrors.FromPg(err, "draft has already been started for this league")
		}
		if err := q.UpdateLeagueStatus(ctx, leagueID, models.LeagueStatusDrafting); err != nil {
			return fmt.Errorf("update league status: %w", err)
		}

		res = &StartDraftResult{
			DraftOrder:    entries,
			CurrentUserID: firstUserID,
			TotalPicks:    state.TotalPicks,
			LeagueStatus:  models.LeagueStatusDrafting,
			StartedAt:     now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.notify(ctx, leagueID, events.TypeDraftStarted, events.DraftStartedPayload{
		LeagueID:      leagueID,
		CurrentUserID: res.CurrentUserID,
		TotalPicks:    res.TotalPicks,
		StartedAt:     res.StartedAt,
	})
	return res, nil
}

// MakePick validates and commits one pick. All precondition checks and the
// write run against a single snapshot: the transaction locks the league row
// first, so two requests racing for the same school or the same turn cannot
// both pass validation. The unique constraints on the picks table are the
// backstop; a violation surfaces as Conflict.
func (a *App) MakePick(ctx context.Context, req MakePickRequest) (*MakePickResult, error) {
	var res *MakePickResult
	err := a.repo.WithTx(ctx, func(q TxQueries) error {
		league, err := q.GetLeagueForUpdate(ctx, req.LeagueID)
		if err != nil {
			if sqlutil.IsNoRows(err) {
				return apperrors.NotFound("league")
			}
			return fmt.Errorf("get league: %w", err)
		}
		if league.Status != models.LeagueStatusDrafting {
			return apperrors.InvalidState("draft is not currently active for this league")
		}

		school, err := q.GetSchool(ctx, req.SchoolID)
		if err != nil {
			if sqlutil.IsNoRows(err) {
				return apperrors.NotFound("school")
			}
			return fmt.Errorf("get school: %w", err)
		}

		taken, err := q.IsSchoolTaken(ctx, req.LeagueID, req.SchoolID)
		if err != nil {
			return fmt.Errorf("check school taken: %w", err)
		}
		if taken {
			return apperrors.Conflict("this school has already been selected by another player")
		}

		members, err := q.ListMembers(ctx, req.LeagueID)
		if err != nil {
			return fmt.Errorf("list members: %w", err)
		}
		if !hasMember(members, req.UserID) {
			return apperrors.Forbidden("you are not a member of this league")
		}

		counts, err := q.PickCountsByMember(ctx, req.LeagueID)
		if err != nil {
			return fmt.Errorf("pick counts: %w", err)
		}
		if counts[req.UserID] >= league.RosterCap {
			return apperrors.Newf(apperrors.KindInvalidState, "you have reached the maximum of %d schools for this league", league.RosterCap)
		}

		state, err := q.GetDraftStateForUpdate(ctx, req.LeagueID)
		if err != nil {
			if sqlutil.IsNoRows(err) {
				return apperrors.InvalidState("draft has not been properly initialized")
			}
			return fmt.Errorf("get draft state: %w", err)
		}
		if state.CurrentUserID == nil || *state.CurrentUserID != req.UserID {
			return apperrors.Forbidden("it is not your turn to pick")
		}

		pick := models.Pick{
			LeagueID:         req.LeagueID,
			UserID:           req.UserID,
			SchoolID:         req.SchoolID,
			DraftRound:       counts[req.UserID] + 1,
			DraftPickOverall: state.CurrentPickOverall,
			DraftedAt:        a.clock.Now(),
		}
		created, err := q.InsertPick(ctx, pick)
		if err != nil {
			return apperrors.FromPg(err, "this school has already been selected by another player")
		}

		counts[req.UserID]++
		slots := memberSlots(members, counts)
		turn, ok := a.engine.NextEligible(state.CurrentPickOverall+1, slots, league.RosterCap)

		status := models.LeagueStatusDrafting
		var nextUserID *uuid.UUID
		if ok {
			state.CurrentPickOverall = turn.Overall
			state.CurrentUserID = &turn.UserID
			nextUserID = &turn.UserID
		} else {
			// Nobody has capacity left: the draft is done.
			now := a.clock.Now()
			state.CurrentPickOverall++
			state.CurrentUserID = nil
			state.CompletedAt = &now
			status = models.LeagueStatusActive
			if err := q.UpdateLeagueStatus(ctx, req.LeagueID, status); err != nil {
				return fmt.Errorf("update league status: %w", err)
			}
		}
		if err := q.UpdateDraftState(ctx, *state); err != nil {
			return fmt.Errorf("update draft state: %w", err)
		}

		res = &MakePickResult{
			Pick:          *created,
			School:        *school,
			LeagueStatus:  status,
			DraftComplete: !ok,
			NextUserID:    nextUserID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.notify(ctx, req.LeagueID, events.TypePickMade, events.PickMadePayload{
		LeagueID:         req.LeagueID,
		UserID:           req.UserID,
		SchoolID:         res.School.ID,
		SchoolName:       res.School.Name,
		DraftRound:       res.Pick.DraftRound,
		DraftPickOverall: res.Pick.DraftPickOverall,
		NextUserID:       res.NextUserID,
		LeagueStatus:     string(res.LeagueStatus),
	})
	if res.DraftComplete {
		a.notify(ctx, req.LeagueID, events.TypeDraftCompleted, events.DraftCompletedPayload{
			LeagueID:   req.LeagueID,
			TotalPicks: res.Pick.DraftPickOverall,
		})
	}
	return res, nil
}

// RemovePlayer deletes a member and their picks. Only the league creator may
// remove players, never themselves, and only before the league completes. If
// the removed member held the current turn, the turn falls to the next member
// with open roster capacity.
func (a *App) RemovePlayer(ctx context.Context, leagueID, targetUserID, requestedBy uuid.UUID) (*RemovePlayerResult, error) {
	var res *RemovePlayerResult
	err := a.repo.WithTx(ctx, func(q TxQueries) error {
		league, err := q.GetLeagueForUpdate(ctx, leagueID)
		if err != nil {
			if sqlutil.IsNoRows(err) {
				return apperrors.NotFound("league")
			}
			return fmt.Errorf("get league: %w", err)
		}
		if league.CreatedBy != requestedBy {
			return apperrors.Forbidden("only the league creator can remove players")
		}
		if targetUserID == requestedBy {
			return apperrors.InvalidState("league creator cannot remove themselves")
		}
		if league.Status != models.LeagueStatusPreDraft && league.Status != models.LeagueStatusDrafting {
			return apperrors.InvalidState("cannot remove players from active or completed leagues")
		}

		members, err := q.ListMembers(ctx, leagueID)
		if err != nil {
			return fmt.Errorf("list members: %w", err)
		}
		if !hasMember(members, targetUserID) {
			return apperrors.NotFound("player in this league")
		}

		removed, err := q.DeletePicksForMember(ctx, leagueID, targetUserID)
		if err != nil {
			return fmt.Errorf("delete picks: %w", err)
		}
		if err := q.DeleteMember(ctx, leagueID, targetUserID); err != nil {
			return fmt.Errorf("delete member: %w", err)
		}

		res = &RemovePlayerResult{
			RemovedUserID: targetUserID,
			LeagueStatus:  league.Status,
			PicksRemoved:  removed,
		}

		if league.Status != models.LeagueStatusDrafting {
			return nil
		}

		state, err := q.GetDraftStateForUpdate(ctx, leagueID)
		if err != nil {
			if sqlutil.IsNoRows(err) {
				return nil
			}
			return fmt.Errorf("get draft state: %w", err)
		}

		remaining := removeEntry(members, targetUserID)
		state.TotalPicks = len(remaining) * league.RosterCap

		if state.CurrentUserID != nil && *state.CurrentUserID == targetUserID {
			counts, err := q.PickCountsByMember(ctx, leagueID)
			if err != nil {
				return fmt.Errorf("pick counts: %w", err)
			}
			slots := memberSlots(remaining, counts)
			nextUserID, ok := a.engine.RoundRobinFallback(state.CurrentPickOverall, slots, league.RosterCap)
			if ok {
				state.CurrentUserID = &nextUserID
			} else {
				// Everyone left is full (or no one is left): finish the draft.
				now := a.clock.Now()
				state.CurrentUserID = nil
				state.CompletedAt = &now
				if err := q.UpdateLeagueStatus(ctx, leagueID, models.LeagueStatusActive); err != nil {
					return fmt.Errorf("update league status: %w", err)
				}
				res.LeagueStatus = models.LeagueStatusActive
			}
		}

		if err := q.UpdateDraftState(ctx, *state); err != nil {
			return fmt.Errorf("update draft state: %w", err)
		}
		res.CurrentUserID = state.CurrentUserID
		res.TotalPicks = state.TotalPicks
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.notify(ctx, leagueID, events.TypePlayerRemoved, events.PlayerRemovedPayload{
		LeagueID:      leagueID,
		UserID:        targetUserID,
		CurrentUserID: res.CurrentUserID,
		LeagueStatus:  string(res.LeagueStatus),
	})
	return res, nil
}

// ResetDraft removes all picks and draft state and returns the league to
// pre_draft. Creator only.
func (a *App) ResetDraft(ctx context.Context, leagueID, requestedBy uuid.UUID) (*ResetDraftResult, error) {
	var res *ResetDraftResult
	err := a.repo.WithTx(ctx, func(q TxQueries) error {
		league, err := q.GetLeagueForUpdate(ctx, leagueID)
		if err != nil {
			if sqlutil.IsNoRows(err) {
				return apperrors.NotFound("league")
			}
			return fmt.Errorf("get league: %w", err)
		}
		if league.CreatedBy != requestedBy {
			return apperrors.Forbidden("only the league creator can reset the draft")
		}
		switch league.Status {
		case models.LeagueStatusDrafting, models.LeagueStatusActive, models.LeagueStatusCompleted:
		default:
			return apperrors.Newf(apperrors.KindInvalidState, "cannot reset draft - league status is %s", league.Status)
		}

		removed, err := q.DeletePicksForLeague(ctx, leagueID)
		if err != nil {
			return fmt.Errorf("delete picks: %w", err)
		}
		if err := q.DeleteDraftState(ctx, leagueID); err != nil {
			return fmt.Errorf("delete draft state: %w", err)
		}
		if err := q.ClearDraftPositions(ctx, leagueID); err != nil {
			return fmt.Errorf("clear draft positions: %w", err)
		}
		if err := q.UpdateLeagueStatus(ctx, leagueID, models.LeagueStatusPreDraft); err != nil {
			return fmt.Errorf("update league status: %w", err)
		}

		res = &ResetDraftResult{
			LeagueStatus: models.LeagueStatusPreDraft,
			PicksRemoved: removed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.notify(ctx, leagueID, events.TypeDraftReset, events.DraftResetPayload{
		LeagueID:     leagueID,
		PicksRemoved: res.PicksRemoved,
	})
	return res, nil
}

// GetStatus reads the current draft state. Pure read; repeated calls without
// an intervening pick return identical turn data.
func (a *App) GetStatus(ctx context.Context, leagueID uuid.UUID) (*Status, error) {
	q := a.repo.Queries()

	league, err := q.GetLeague(ctx, leagueID)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NotFound("league")
		}
		return nil, fmt.Errorf("get league: %w", err)
	}

	members, err := q.ListMembers(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	picksMade, err := q.CountPicks(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("count picks: %w", err)
	}

	totalPicks := len(members) * league.RosterCap
	status := &Status{
		LeagueStatus:   league.Status,
		TotalPicks:     totalPicks,
		PicksMade:      picksMade,
		PicksRemaining: max(0, totalPicks-picksMade),
		TotalMembers:   len(members),
		DraftOrder:     orderEntries(members),
		CurrentRound:   1,
	}

	switch league.Status {
	case models.LeagueStatusPreDraft:
		status.Phase = PhaseWaiting
	case models.LeagueStatusDrafting:
		state, err := q.GetDraftState(ctx, leagueID)
		if err != nil {
			if sqlutil.IsNoRows(err) {
				return nil, apperrors.InvalidState("draft state not found - league may need to be reset")
			}
			return nil, fmt.Errorf("get draft state: %w", err)
		}
		status.Phase = PhaseActive
		status.CurrentPickOverall = &state.CurrentPickOverall
		status.CurrentUserID = state.CurrentUserID
		if len(members) > 0 {
			status.CurrentRound = a.engine.Round(state.CurrentPickOverall, len(members))
		}
		if state.CurrentUserID != nil {
			for _, m := range members {
				if m.UserID == *state.CurrentUserID {
					status.CurrentUserName = m.DisplayName
				}
			}
		}
	default:
		status.Phase = PhaseComplete
		status.CurrentRound = league.RosterCap
	}

	return status, nil
}

// AssignSchool hands a school to a member directly, for leagues that skipped
// the live draft (and for filling roster holes afterwards). Creator only,
// active leagues only. The ledger rules are the same as for a drafted pick:
// one owner per school, roster cap respected, and the league row lock
// serializes concurrent assignments.
func (a *App) AssignSchool(ctx context.Context, req AssignSchoolRequest) (*AssignSchoolResult, error) {
	var res *AssignSchoolResult
	err := a.repo.WithTx(ctx, func(q TxQueries) error {
		league, err := q.GetLeagueForUpdate(ctx, req.LeagueID)
		if err != nil {
			if sqlutil.IsNoRows(err) {
				return apperrors.NotFound("league")
			}
			return fmt.Errorf("get league: %w", err)
		}
		if league.CreatedBy != req.RequestedBy {
			return apperrors.Forbidden("only the league creator can assign schools")
		}
		if league.Status != models.LeagueStatusActive {
			return apperrors.Newf(apperrors.KindInvalidState, "schools can only be assigned manually in an active league - status is %s", league.Status)
		}

		school, err := q.GetSchool(ctx, req.SchoolID)
		if err != nil {
			if sqlutil.IsNoRows(err) {
				return apperrors.NotFound("school")
			}
			return fmt.Errorf("get school: %w", err)
		}

		taken, err := q.IsSchoolTaken(ctx, req.LeagueID, req.SchoolID)
		if err != nil {
			return fmt.Errorf("check school taken: %w", err)
		}
		if taken {
			return apperrors.Conflict("this school has already been selected by another player")
		}

		members, err := q.ListMembers(ctx, req.LeagueID)
		if err != nil {
			return fmt.Errorf("list members: %w", err)
		}
		if !hasMember(members, req.TargetUserID) {
			return apperrors.NotFound("player in this league")
		}

		count, err := q.PickCount(ctx, req.LeagueID, req.TargetUserID)
		if err != nil {
			return fmt.Errorf("pick count: %w", err)
		}
		if count >= league.RosterCap {
			return apperrors.Newf(apperrors.KindInvalidState, "this player already holds the maximum of %d schools", league.RosterCap)
		}

		// Overall numbering continues past any drafted picks so the ledger
		// unique constraint holds after a draft plus manual fills.
		overall := 1
		existing, err := q.PicksForLeague(ctx, req.LeagueID)
		if err != nil {
			return fmt.Errorf("picks for league: %w", err)
		}
		for _, p := range existing {
			if p.DraftPickOverall >= overall {
				overall = p.DraftPickOverall + 1
			}
		}

		pick := models.Pick{
			LeagueID:         req.LeagueID,
			UserID:           req.TargetUserID,
			SchoolID:         req.SchoolID,
			DraftRound:       count + 1,
			DraftPickOverall: overall,
			DraftedAt:        a.clock.Now(),
		}
		created, err := q.InsertPick(ctx, pick)
		if err != nil {
			return apperrors.FromPg(err, "this school has already been selected by another player")
		}

		res = &AssignSchoolResult{
			Pick:   *created,
			School: *school,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.notify(ctx, req.LeagueID, events.TypePickMade, events.PickMadePayload{
		LeagueID:         req.LeagueID,
		UserID:           req.TargetUserID,
		SchoolID:         res.School.ID,
		SchoolName:       res.School.Name,
		DraftRound:       res.Pick.DraftRound,
		DraftPickOverall: res.Pick.DraftPickOverall,
		LeagueStatus:     string(models.LeagueStatusActive),
	})
	return res, nil
}

// MyRoster returns one member's picks in draft order.
func (a *App) MyRoster(ctx context.Context, leagueID, userID uuid.UUID) (*RosterView, error) {
	q := a.repo.Queries()

	league, err := q.GetLeague(ctx, leagueID)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NotFound("league")
		}
		return nil, fmt.Errorf("get league: %w", err)
	}

	members, err := q.ListMembers(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	if !hasMember(members, userID) {
		return nil, apperrors.Forbidden("you are not a member of this league")
	}

	picks, err := q.PicksForMember(ctx, leagueID, userID)
	if err != nil {
		return nil, fmt.Errorf("picks for member: %w", err)
	}

	return &RosterView{
		LeagueID:  leagueID,
		UserID:    userID,
		RosterCap: league.RosterCap,
		Picks:     picks,
		SlotsOpen: max(0, league.RosterCap-len(picks)),
	}, nil
}

// PicksForLeague exposes the roster ledger for board rendering.
func (a *App) PicksForLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Pick, error) {
	picks, err := a.repo.Queries().PicksForLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("picks for league: %w", err)
	}
	return picks, nil
}

// notify publishes a league event; failures are logged and swallowed so
// delivery problems never fail a committed write.
func (a *App) notify(ctx context.Context, leagueID uuid.UUID, eventType string, payload any) {
	if a.sink == nil {
		return
	}
	if err := a.sink.Notify(ctx, leagueID, eventType, payload); err != nil {
		log.Error().
			Err(err).
			Str("league_id", leagueID.String()).
			Str("event_type", eventType).
			Msg("failed to publish league event")
	}
}

func hasMember(members []MemberEntry, userID uuid.UUID) bool {
	for _, m := range members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

func removeEntry(members []MemberEntry, userID uuid.UUID) []MemberEntry {
	out := make([]MemberEntry, 0, len(members))
	for _, m := range members {
		if m.UserID != userID {
			out = append(out, m)
		}
	}
	return out
}

func memberSlots(members []MemberEntry, counts map[uuid.UUID]int) []MemberSlot {
	slots := make([]MemberSlot, len(members))
	for i, m := range members {
		slots[i] = MemberSlot{UserID: m.UserID, PickCount: counts[m.UserID]}
	}
	return slots
}

func orderEntries(members []MemberEntry) []DraftOrderEntry {
	entries := make([]DraftOrderEntry, len(members))
	for i, m := range members {
		pos := 0
		if m.DraftPosition != nil {
			pos = *m.DraftPosition
		}
		entries[i] = DraftOrderEntry{
			DraftPosition: pos,
			UserID:        m.UserID,
			DisplayName:   m.DisplayName,
			TeamName:      m.TeamName,
		}
	}
	return entries
}
