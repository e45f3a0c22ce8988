package daemon

import (
	"context"
	"fmt"
	"time"

	"github.com/matheus3301/huddle/internal/api"
	"github.com/matheus3301/huddle/internal/auth"
	"github.com/matheus3301/huddle/internal/bus"
	"github.com/matheus3301/huddle/internal/config"
	"github.com/matheus3301/huddle/internal/fixture"
	"github.com/matheus3301/huddle/internal/lock"
	"github.com/matheus3301/huddle/internal/logging"
	"github.com/matheus3301/huddle/internal/profile"
	"github.com/matheus3301/huddle/internal/roster"
	"github.com/matheus3301/huddle/internal/status"
	"github.com/matheus3301/huddle/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the resolved profile configuration passed to the fx module.
type Params struct {
	ProfileName string
	Config      *config.Config // nil = config.Default()
	SocketPath  string         // optional override for testing; empty = use default
	Logger      *zap.Logger    // optional override for testing; nil = file + stderr
}

// Module returns the fx module for the daemon, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBus,
			provideStateMachine,
			provideLock,
			provideStore,
			provideViews,
			provideSimulator,
			provideRosterService,
			provideThreadService,
			provideSessionService,
			NewServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig(p Params) *config.Config {
	if p.Config == nil {
		return config.Default()
	}
	return p.Config
}

func provideLogger(p Params) (*zap.Logger, error) {
	if p.Logger != nil {
		return p.Logger.With(zap.String("profile", p.ProfileName)), nil
	}
	return logging.New(profile.LogPath(p.ProfileName), p.ProfileName)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideStateMachine(b *bus.Bus) *status.Machine {
	return status.NewMachine(b)
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := profile.EnsureDir(p.ProfileName); err != nil {
		return nil, err
	}
	logger.Info("acquiring profile lock")
	l, err := lock.Acquire(profile.Dir(p.ProfileName))
	if err != nil {
		return nil, err
	}
	logger.Info("profile lock acquired", zap.String("path", l.Path()))
	return l, nil
}

// provideStore depends on the lock so a second daemon never touches the database.
func provideStore(p Params, cfg *config.Config, _ *lock.Lock, b *bus.Bus, logger *zap.Logger) (*store.DB, error) {
	dbPath := profile.DBPath(p.ProfileName)
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}

	if cfg.SeedOnStart {
		now := time.Now()
		if err := db.Seed(fixture.Sample(now), now); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("seed store: %w", err)
		}
		counts, _ := db.Counts()
		logger.Info("store seeded",
			zap.Int64("conversations", counts.Conversations),
			zap.Int64("contacts", counts.Contacts),
			zap.Int64("requests", counts.Requests),
			zap.Int64("messages", counts.Messages),
		)
		b.Publish(bus.NewEvent(bus.KindSeeded, now, counts))
	}
	logger.Info("store initialized", zap.String("path", dbPath))
	return db, nil
}

func provideViews(cfg *config.Config, logger *zap.Logger) roster.ViewBuilder {
	f := roster.NewFormatter(cfg.Locale)
	if string(f.Locale) != cfg.Locale {
		logger.Warn("unknown locale, using default", zap.String("locale", cfg.Locale), zap.String("using", string(f.Locale)))
	}
	return roster.ViewBuilder{Formatter: f, PreviewWidth: cfg.PreviewWidth}
}

func provideSimulator(m *status.Machine, b *bus.Bus, logger *zap.Logger, cfg *config.Config) *auth.Simulator {
	return auth.NewSimulator(m, b, logger.Named("auth"), cfg.SignInDelay.Duration, cfg.SignUpDelay.Duration)
}

func provideRosterService(db *store.DB, views roster.ViewBuilder, cfg *config.Config) *api.RosterService {
	return api.NewRosterService(db, views, roster.ParseContactFilter(cfg.FriendsTab))
}

func provideThreadService(db *store.DB, views roster.ViewBuilder, logger *zap.Logger) *api.ThreadService {
	return api.NewThreadService(db, views, logger.Named("thread"))
}

func provideSessionService(p Params, cfg *config.Config, m *status.Machine, sim *auth.Simulator, b *bus.Bus, db *store.DB, logger *zap.Logger) *api.SessionService {
	return api.NewSessionService(p.ProfileName, cfg.Locale, m, sim, b, db, logger.Named("session"))
}

func registerLifecycle(lc fx.Lifecycle, srv *Server, lk *lock.Lock, db *store.DB, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := srv.Start(); err != nil {
					logger.Error("gRPC server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			srv.Stop(ctx)
			if err := db.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("daemon stopped")
			return nil
		},
	})
}
