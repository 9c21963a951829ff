// Package cli wires takemehome's use cases for the command line.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/takemehome/internal/application/usecase"
	"github.com/bnema/takemehome/internal/cli/styles"
	"github.com/bnema/takemehome/internal/domain/build"
	"github.com/bnema/takemehome/internal/domain/repository"
	"github.com/bnema/takemehome/internal/infrastructure/config"
	"github.com/bnema/takemehome/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/takemehome/internal/logging"
)

// Options are the global command line flags.
type Options struct {
	ConfigFile string
	LogLevel   string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	DB       *sqlite.LazyDB
	Homepage repository.HomepageRepository

	// Use cases
	ManageHomepageUC *usecase.ManageHomepageUseCase

	ctx context.Context
}

// NewApp loads the configuration and prepares the preference store. The
// database is opened on first use.
func NewApp(opts Options) (*App, error) {
	mgr, err := newManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	ctx := logging.WithContext(context.Background(), logger)
	logger.Debug().Str("config", mgr.GetConfigFile()).Str("db_path", cfg.Database.Path).Msg("config loaded")

	db := sqlite.NewLazyDB(cfg.Database.Path)
	homepageRepo := sqlite.NewLazyHomepageRepository(db)

	return &App{
		Config:           cfg,
		Manager:          mgr,
		Theme:            styles.NewTheme(),
		DB:               db,
		Homepage:         homepageRepo,
		ManageHomepageUC: usecase.NewManageHomepageUseCase(homepageRepo),
		ctx:              ctx,
	}, nil
}

func newManager(configFile string) (*config.Manager, error) {
	if configFile != "" {
		return config.NewManagerForFile(configFile)
	}
	return config.NewManager()
}

// Close releases all resources.
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the CLI logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}

// ActionTimeout bounds one-shot browser commands.
func (a *App) ActionTimeout() time.Duration {
	return a.Config.Browser.ActionTimeout() + a.Config.Browser.StartTimeout()
}
