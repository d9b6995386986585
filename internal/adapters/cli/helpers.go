package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/harborlane/freightflow-go/internal/adapters/api"
	"github.com/harborlane/freightflow-go/internal/adapters/persistence"
	appbooking "github.com/harborlane/freightflow-go/internal/application/booking"
	"github.com/harborlane/freightflow-go/internal/application/common"
	applocation "github.com/harborlane/freightflow-go/internal/application/location"
	apprates "github.com/harborlane/freightflow-go/internal/application/rates"
	"github.com/harborlane/freightflow-go/internal/domain/quote"
	"github.com/harborlane/freightflow-go/internal/domain/rates"
	"github.com/harborlane/freightflow-go/internal/domain/shared"
	"github.com/harborlane/freightflow-go/internal/infrastructure/config"
	"github.com/harborlane/freightflow-go/internal/infrastructure/database"
)

// App bundles the wired engine components behind the CLI commands
type App struct {
	Config   *config.Config
	Mediator common.Mediator
	Resolver *applocation.Resolver
	Clock    shared.Clock

	db *gorm.DB
}

// newApp loads configuration and wires the engine
func newApp() (*App, error) {
	cfg := config.LoadConfigOrDefault(configPath)
	clock := shared.NewRealClock()

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open booking log database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate booking log database: %w", err)
	}

	client := api.NewFreightClient(&cfg.API, clock)
	bookingLog := persistence.NewGormBookingLogRepository(db)

	mediator := common.NewMediator()
	if err := common.RegisterHandler[*apprates.FetchRatesCommand](mediator, apprates.NewFetchRatesHandler(client)); err != nil {
		return nil, err
	}
	if err := common.RegisterHandler[*appbooking.CommitBookingCommand](mediator, appbooking.NewCommitBookingHandler(client, bookingLog, clock)); err != nil {
		return nil, err
	}

	resolver := applocation.NewResolver(client, clock, cfg.Resolver.Debounce, cfg.Resolver.MinQueryLength)

	return &App{
		Config:   cfg,
		Mediator: mediator,
		Resolver: resolver,
		Clock:    clock,
		db:       db,
	}, nil
}

// Close releases the app's resources
func (a *App) Close() {
	if a.db != nil {
		database.Close(a.db)
	}
}

// BookingLog returns the booking history repository
func (a *App) BookingLog() common.BookingLog {
	return persistence.NewGormBookingLogRepository(a.db)
}

// withSessionLogger attaches the stdout session logger when verbose output
// is requested
func withSessionLogger(ctx context.Context) context.Context {
	if verbose {
		return common.WithLogger(ctx, &common.StdLogger{})
	}
	return ctx
}

// buildDraft assembles a draft from command-line flags. The same flags feed
// both the quote and book commands.
func buildDraft(a *App, origin, destination, cargoMode, containerSize string, quantity int, weightKg, volumeCbm float64, readyDate string) (*quote.Draft, error) {
	draft := quote.NewDraft(a.Clock)
	draft.SetOrigin(origin)
	draft.SetDestination(destination)

	switch cargoMode {
	case "container":
		size, err := quote.ParseContainerSize(containerSize)
		if err != nil {
			return nil, err
		}
		if err := draft.Cargo.UseContainer(size, quantity); err != nil {
			return nil, err
		}
	case "loose":
		if err := draft.Cargo.UseLoose(weightKg, volumeCbm); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown cargo mode %q: use container or loose", cargoMode)
	}

	if readyDate != "" {
		parsed, err := time.Parse(time.DateOnly, readyDate)
		if err != nil {
			return nil, fmt.Errorf("invalid ready date %q: use YYYY-MM-DD", readyDate)
		}
		draft.ReadyDate = parsed
	}

	if err := draft.ValidateRoute(); err != nil {
		return nil, err
	}
	return draft, nil
}

// buildFilter assembles the quote filter from flags, layered over the
// configured defaults
func buildFilter(a *App, carriers string, maxTransitDays int) rates.Filter {
	filter := rates.Filter{
		Carriers:       a.Config.Quoting.Carriers,
		MaxTransitDays: a.Config.Quoting.MaxTransitDays,
	}
	if carriers != "" {
		filter.Carriers = nil
		for _, c := range strings.Split(carriers, ",") {
			if c = strings.TrimSpace(c); c != "" {
				filter.Carriers = append(filter.Carriers, c)
			}
		}
	}
	if maxTransitDays > 0 {
		filter.MaxTransitDays = maxTransitDays
	}
	return filter
}
