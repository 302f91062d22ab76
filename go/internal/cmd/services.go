package main

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/pick6/go/clients/cfbdata_client"
	"github.com/mcdev12/pick6/go/internal/auth"
	"github.com/mcdev12/pick6/go/internal/draft"
	"github.com/mcdev12/pick6/go/internal/events"
	"github.com/mcdev12/pick6/go/internal/games"
	"github.com/mcdev12/pick6/go/internal/gateway"
	"github.com/mcdev12/pick6/go/internal/leagues"
	"github.com/mcdev12/pick6/go/internal/schools"
	"github.com/mcdev12/pick6/go/internal/standings"
	"github.com/mcdev12/pick6/go/internal/users"
)

type Services struct {
	Users     *users.Service
	Leagues   *leagues.Service
	Draft     *draft.Service
	Standings *standings.Service
	Games     *games.Service
	Schools   *schools.Service

	Gateway  *gateway.Handler
	Manager  *gateway.ConnectionManager
	Consumer *gateway.Consumer

	Refresher *standings.Refresher
}

// setupServices wires the dependency chain: pool -> repository -> app ->
// service, with the event publisher as every app's sink.
func setupServices(pool *pgxpool.Pool, publisher *events.Publisher, authn *auth.Authenticator, cfg *Config) (*Services, error) {
	clock := clockwork.NewRealClock()

	// Users
	userRepo := users.NewRepository(pool)
	userApp := users.NewApp(userRepo, authn)
	userService := users.NewService(userApp)

	// Leagues
	leagueRepo := leagues.NewRepository(pool)
	leagueApp := leagues.NewApp(leagueRepo, publisher, clock)
	leagueService := leagues.NewService(leagueApp)

	// Draft
	draftRepo := draft.NewRepository(pool)
	draftApp := draft.NewApp(draftRepo, draft.NewEngine(), publisher, clock)
	draftService := draft.NewService(draftApp)

	// Standings
	standingsRepo := standings.NewRepository(pool)
	standingsApp := standings.NewApp(standingsRepo, clock)
	standingsService := standings.NewService(standingsApp)

	refreshInterval, err := cfg.RefreshIntervalDuration()
	if err != nil {
		return nil, err
	}
	refresher := standings.NewRefresher(standingsApp, publisher, clock, refreshInterval)

	// Games
	feed := cfbdata_client.NewCFBDataClient(getEnv("CFBD_API_KEY", ""))
	gamesRepo := games.NewRepository(pool)
	gamesApp := games.NewApp(gamesRepo, feed, clock)
	gamesService := games.NewService(gamesApp)

	// Schools
	schoolsRepo := schools.NewRepository(pool)
	schoolsApp := schools.NewApp(schoolsRepo)
	schoolsService := schools.NewService(schoolsApp)

	// Gateway
	manager := gateway.NewConnectionManager(gateway.DefaultConnectionConfig())
	gatewayHandler := gateway.NewHandler(manager, leagueRepo)
	consumer := gateway.NewConsumer(publisher.Conn(), cfg.NATS.SubjectPrefix, manager)

	return &Services{
		Users:     userService,
		Leagues:   leagueService,
		Draft:     draftService,
		Standings: standingsService,
		Games:     gamesService,
		Schools:   schoolsService,
		Gateway:   gatewayHandler,
		Manager:   manager,
		Consumer:  consumer,
		Refresher: refresher,
	}, nil
}
