package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/km-arc/go-services/framework/config"
	"github.com/km-arc/go-services/framework/providers"
	"github.com/km-arc/go-services/framework/services"
)

// Version of the framework, served as "app.version".
const Version = "0.1.0"

// Application is the top-level owner of the service registry.
// It embeds *services.Registry so user code can call app.Register(),
// app.Sv() and app.Unregister() directly. Callbacks added with
// RegisterMethod receive the application itself as their first argument.
type Application struct {
	*services.Registry
	Providers *services.ProviderRegistry

	config *config.Config
	logger *slog.Logger
}

// Option customises New.
type Option func(*options)

type options struct {
	envFiles []string
	logOut   io.Writer
}

// WithEnvFiles loads the given .env files instead of ./.env.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.envFiles = files }
}

// WithLogOutput sends logs to w instead of stderr.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOut = w }
}

// New creates the application and registers the framework providers.
func New(opts ...Option) (*Application, error) {
	o := options{logOut: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := config.Load(o.envFiles...)
	logger := config.NewLogger(cfg.Log, o.logOut).With("app", cfg.App.Name)

	a := &Application{config: cfg, logger: logger}
	a.Registry = services.New(services.WithOwner(a), services.WithLogger(logger))
	a.Providers = services.NewProviderRegistry(a.Registry)

	// Framework core providers first, user providers after.
	for _, p := range []services.ServiceProvider{
		&providers.ConfigServiceProvider{Config: cfg},
		&providers.LogServiceProvider{Logger: logger},
		&providers.VersionServiceProvider{Version: Version},
	} {
		if err := a.Providers.Register(p); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// RegisterProvider adds a ServiceProvider to the application.
func (a *Application) RegisterProvider(provider services.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() error {
	if err := a.Providers.Boot(); err != nil {
		return err
	}
	a.logger.Debug("application booted", "services", len(a.Names()))
	return nil
}

func (a *Application) Config() *config.Config { return a.config }
func (a *Application) Logger() *slog.Logger   { return a.logger }

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.config.App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.config.App.Debug }
func (a *Application) Version() string     { return Version }
