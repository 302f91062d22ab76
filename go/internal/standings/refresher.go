package standings

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pick6/go/internal/events"
	"github.com/mcdev12/pick6/go/internal/models"
)

// Sink receives league change events for push delivery.
type Sink interface {
	Notify(ctx context.Context, leagueID uuid.UUID, eventType string, payload any) error
}

// Refresher periodically recomputes standings for active leagues and pushes
// a standings_updated event so connected clients refetch. Results live in
// Postgres; the refresher exists only to wake up clients after the feed
// loader lands new scores.
type Refresher struct {
	app      *App
	sink     Sink
	clock    clockwork.Clock
	interval time.Duration
}

func NewRefresher(app *App, sink Sink, clock clockwork.Clock, interval time.Duration) *Refresher {
	return &Refresher{
		app:      app,
		sink:     sink,
		clock:    clock,
		interval: interval,
	}
}

// Run blocks, refreshing on every tick until ctx is cancelled.
func (r *Refresher) Run(ctx context.Context) {
	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", r.interval).Msg("standings refresher started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("standings refresher stopped")
			return
		case <-ticker.Chan():
			r.RefreshAll(ctx)
		}
	}
}

// RefreshAll recomputes every active league once. Failures are logged per
// league; one bad league never blocks the rest.
func (r *Refresher) RefreshAll(ctx context.Context) {
	leagueIDs, err := r.app.repo.LeagueIDsByStatus(ctx, models.LeagueStatusActive)
	if err != nil {
		log.Error().Err(err).Msg("failed to list active leagues")
		return
	}

	for _, leagueID := range leagueIDs {
		standings, err := r.app.Compute(ctx, leagueID, 0)
		if err != nil {
			log.Error().Err(err).Str("league_id", leagueID.String()).Msg("failed to refresh standings")
			continue
		}
		if r.sink == nil {
			continue
		}
		err = r.sink.Notify(ctx, leagueID, events.TypeStandingsUpdated, events.StandingsUpdatedPayload{
			LeagueID: leagueID,
			Week:     standings.Week,
		})
		if err != nil {
			log.Error().Err(err).Str("league_id", leagueID.String()).Msg("failed to publish standings event")
		}
	}
}
