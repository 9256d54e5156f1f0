// Package cli wires the theme host services for command-line use.
package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/themehost/internal/application/port"
	"github.com/bnema/themehost/internal/application/usecase"
	"github.com/bnema/themehost/internal/cli/styles"
	"github.com/bnema/themehost/internal/contrib"
	"github.com/bnema/themehost/internal/domain/build"
	"github.com/bnema/themehost/internal/domain/repository"
	"github.com/bnema/themehost/internal/infrastructure/cache"
	"github.com/bnema/themehost/internal/infrastructure/config"
	"github.com/bnema/themehost/internal/infrastructure/extensions"
	"github.com/bnema/themehost/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/themehost/internal/infrastructure/resource"
	"github.com/bnema/themehost/internal/infrastructure/xdg"
	"github.com/bnema/themehost/internal/logging"
	"github.com/bnema/themehost/internal/theme"
)

// Options adjusts how the App is built.
type Options struct {
	// ConfigDir overrides the XDG configuration directory.
	ConfigDir string
	// LogLevel overrides the configured log level when set.
	LogLevel string
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info
	Paths         port.XDGPaths

	Contributions *contrib.Registry
	Themes        *theme.Registry
	Point         *theme.ContributionPoint
	Loader        port.ResourceLoader
	History       repository.ResolutionRepository

	// Use cases
	RegisterThemesUC  *usecase.RegisterThemesUseCase
	ResolveUC         *usecase.ResolveColorThemeUseCase
	ListThemesUC      *usecase.ListThemesUseCase
	GetThemeUC        *usecase.GetThemeUseCase
	ListResolutionsUC *usecase.ListResolutionsUseCase
	ConfigSchemaUC    *usecase.GetConfigSchemaUseCase

	db  *sqlite.LazyDB
	ctx context.Context

	registerOnce sync.Once
	registered   *usecase.RegisterThemesOutput
	registerErr  error
}

// NewApp loads configuration and builds every service. Nothing touches the
// extension directories or the database until a command needs them.
func NewApp(opts Options) (*App, error) {
	var managerOpts []config.Option
	if opts.ConfigDir != "" {
		managerOpts = append(managerOpts, config.WithConfigDir(opts.ConfigDir))
	}
	mgr, err := config.NewManager(managerOpts...)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logLevel := cfg.Logging.Level
	if opts.LogLevel != "" {
		logLevel = opts.LogLevel
	}
	logger := logging.NewFromConfigValues(logLevel, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	contributions := contrib.NewRegistry()
	themes := theme.NewRegistry()
	point, err := theme.RegisterContributionPoint(ctx, contributions, themes)
	if err != nil {
		return nil, fmt.Errorf("register themes contribution point: %w", err)
	}

	var loader port.ResourceLoader = resource.NewLoader()
	if cfg.Resources.CacheEntries > 0 {
		loader = resource.NewCachingLoader(loader, cache.NewLRU[string, []byte](cfg.Resources.CacheEntries))
	}

	scanner := extensions.NewScanner(cfg.Extensions.Dirs,
		extensions.WithBuiltin(cfg.Extensions.IncludeBuiltin),
		extensions.WithConcurrency(cfg.Extensions.ScanConcurrency),
	)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	history := sqlite.NewResolutionRepository(db)

	var resolveOpts []usecase.ResolveOption
	if cfg.History.Enabled {
		resolveOpts = append(resolveOpts, usecase.WithResolutionHistory(history, cfg.History.MaxEntries))
	}

	logger.Debug().
		Strs("extension_dirs", cfg.Extensions.Dirs).
		Str("config", mgr.GetConfigFile()).
		Msg("cli app initialized")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		Paths:         xdg.New(),

		Contributions: contributions,
		Themes:        themes,
		Point:         point,
		Loader:        loader,
		History:       history,

		RegisterThemesUC:  usecase.NewRegisterThemesUseCase(scanner, point),
		ResolveUC:         usecase.NewResolveColorThemeUseCase(mgr, themes, loader, resolveOpts...),
		ListThemesUC:      usecase.NewListThemesUseCase(themes),
		GetThemeUC:        usecase.NewGetThemeUseCase(themes, loader),
		ListResolutionsUC: usecase.NewListResolutionsUseCase(history),
		ConfigSchemaUC:    usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider()),

		db:  db,
		ctx: ctx,
	}, nil
}

// RegisterThemes scans extensions once per process and returns the summary.
func (a *App) RegisterThemes() (*usecase.RegisterThemesOutput, error) {
	a.registerOnce.Do(func() {
		a.registered, a.registerErr = a.RegisterThemesUC.Execute(a.ctx)
	})
	return a.registered, a.registerErr
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
