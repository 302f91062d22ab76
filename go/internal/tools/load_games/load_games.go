package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/pick6/go/clients/cfbdata_client"
	"github.com/mcdev12/pick6/go/internal/dbconfig"
	"github.com/mcdev12/pick6/go/internal/games"
	"github.com/mcdev12/pick6/go/internal/models"
	"github.com/mcdev12/pick6/go/internal/schools"
)

// load_games pulls schedule and result data from the feed into the games
// table. With -teams it refreshes the schools catalog first. Run it weekly,
// or once with -week 0 to backfill a whole season.
func main() {
	season := flag.Int("season", 2025, "season to sync")
	week := flag.Int("week", 0, "week to sync (0 = whole season)")
	teams := flag.Bool("teams", false, "refresh the schools catalog first")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
	}

	apiKey := os.Getenv("CFBD_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "CFBD_API_KEY environment variable is required")
		os.Exit(1)
	}

	ctx := context.Background()

	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.PoolDSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	feed := cfbdata_client.NewCFBDataClient(apiKey)

	if *teams {
		fetched, err := feed.FetchTeams(ctx, *season)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fetch teams: %v\n", err)
			os.Exit(1)
		}

		catalog := make([]models.School, 0, len(fetched))
		for _, t := range fetched {
			catalog = append(catalog, models.School{
				ID:             t.ID,
				Slug:           slugify(t.School),
				Abbreviation:   t.Abbreviation,
				Name:           t.School,
				Mascot:         t.Mascot,
				Conference:     t.Conference,
				PrimaryColor:   t.Color,
				SecondaryColor: t.AltColor,
			})
		}

		schoolsApp := schools.NewApp(schools.NewRepository(pool))
		loaded, err := schoolsApp.Load(ctx, catalog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load schools: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("schools: %d loaded\n", loaded)
	}

	gamesApp := games.NewApp(games.NewRepository(pool), feed, clockwork.NewRealClock())
	result, err := gamesApp.SyncWeek(ctx, *season, *week)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sync games: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("games: season %d week %d: %d fetched, %d upserted, %d skipped\n",
		result.Season, result.Week, result.Fetched, result.Upserts, result.Skipped)
}

func slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, s)
	return strings.Trim(s, "-")
}
