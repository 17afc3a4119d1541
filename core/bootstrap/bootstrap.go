package bootstrap

import (
	"context"
	"fmt"

	"webapp-standalone/core/appbase"
	"webapp-standalone/core/config"
	"webapp-standalone/core/connector"
	"webapp-standalone/core/contextprops"
	"webapp-standalone/core/database"
	"webapp-standalone/core/deploy"
	"webapp-standalone/core/loader"
	"webapp-standalone/core/server"
	"webapp-standalone/core/storage"
	"webapp-standalone/feature/status"
	"webapp-standalone/feature/webapp"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Options are the inputs of Prepare.
type Options struct {
	// Config is the resolved configuration.
	Config *config.Config
	// AppBase is an existing staging directory to deploy into. When empty, Prepare
	// creates one under the configured parent and the caller owns it from then on.
	AppBase string
	// Overrides seed the context properties before projection.
	Overrides map[string]string
	// Environ is the process environment, as returned by os.Environ.
	Environ []string
	// Fs is the filesystem applications are staged on. Defaults to the OS filesystem.
	Fs afero.Fs
	// Self is the application packaged with the program.
	Self *deploy.SelfSource
	// NewStorage creates the client for bucket deployments. Defaults to storage.NewClient.
	NewStorage deploy.StorageFactory
	// OpenDB opens descriptor resources. Defaults to database.Connect.
	OpenDB database.OpenFunc
	Logger *zap.Logger
}

// Instance is a prepared host, ready to run.
type Instance struct {
	AppBase    string
	Properties contextprops.Properties
	Connector  *connector.Connector
	Deployment *deploy.Deployment
	Registry   *database.Registry
	Server     *server.Server
	Features   *loader.Manager

	fs     afero.Fs
	logger *zap.Logger
}

// Prepare builds an Instance. Nothing listens until Run is called.
func Prepare(ctx context.Context, opts Options) (*Instance, error) {
	cfg := opts.Config.Server
	logg := opts.Logger

	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	newStorage := opts.NewStorage
	if newStorage == nil {
		storageCfg := opts.Config.Storage
		newStorage = func() (storage.Client, error) { return storage.NewClient(storageCfg) }
	}

	base := opts.AppBase
	if base == "" {
		created, err := appbase.Create(fsys, cfg.Standalone.AppBase)
		if err != nil {
			return nil, err
		}
		base = created
	}
	logg.Info("Going to use appBase", zap.String("appBase", base))

	props := contextprops.Properties{}
	for k, v := range opts.Overrides {
		props[k] = v
	}
	for _, key := range props.Merge(contextprops.Project(opts.Environ)) {
		logg.Warn("Context property overridden by environment", zap.String("key", key))
	}

	conn := connector.New(cfg.Standalone.Port)
	if cfg.Connector.Properties != "" {
		logg.Info("Connector properties to be applied", zap.String("properties", cfg.Connector.Properties))
		connector.Apply(conn, cfg.Connector.Properties, logg)
	}
	logg.Info("Using connector", zap.Stringer("connector", conn))

	contextPath := deploy.NormalizeContextPath(cfg.Standalone.ContextPath)
	logg.Info("Using context path", zap.String("contextPath", deploy.DisplayContextPath(contextPath)))

	src, err := deploy.Resolve(cfg.Standalone.ContextDirectory, opts.Self, newStorage)
	if err != nil {
		return nil, fmt.Errorf("resolve application source: %w", err)
	}
	location, err := src.Location()
	if err != nil {
		return nil, err
	}
	logg.Info("Going to deploy", zap.String("location", location))

	d, err := deploy.Deploy(ctx, fsys, src, base, contextPath, props, logg)
	if err != nil {
		return nil, err
	}

	registry := database.NewRegistry(opts.OpenDB)
	for _, res := range d.Descriptor().Resources {
		if err := registry.Bind(res); err != nil {
			logg.Warn("Datasource unavailable", zap.String("name", res.Name), zap.Error(err))
			continue
		}
		logg.Info("Datasource bound", zap.String("name", res.Name), zap.String("driver", res.Driver))
	}

	srv := server.New(conn, cfg.Standalone.ShutdownTimeout(), logg)

	svc := status.NewService(srv, base, d, conn, props, registry)
	mgr := loader.NewManager()
	// status is mounted first so a root context cannot shadow it
	mgr.Register(status.NewFeature(svc, logg, cfg.Standalone.StatusPath, cfg.Standalone.StatusAPIKey, cfg.Standalone.Metrics))
	mgr.Register(webapp.NewFeature(d, logg))
	if err := mgr.LoadAll(srv.App()); err != nil {
		_ = registry.Close()
		return nil, err
	}
	logg.Info("Features loaded", zap.Strings("features", mgr.Loaded()))

	return &Instance{
		AppBase:    base,
		Properties: props,
		Connector:  conn,
		Deployment: d,
		Registry:   registry,
		Server:     srv,
		Features:   mgr,
		fs:         fsys,
		logger:     logg,
	}, nil
}

// Run serves until ctx is done or the listener fails. After a graceful stop the
// staging directory is removed.
func (i *Instance) Run(ctx context.Context) error {
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if i.Deployment.Descriptor().Reloadable {
		go func() {
			if err := i.Deployment.Watch(watchCtx); err != nil {
				i.logger.Warn("Descriptor reloading disabled", zap.Error(err))
			}
		}()
	}

	err := i.Server.Run(ctx)
	cancel()

	if cerr := i.Registry.Close(); cerr != nil {
		i.logger.Warn("Failed to close datasources", zap.Error(cerr))
	}
	if err != nil {
		return err
	}

	if rerr := appbase.Remove(i.fs, i.AppBase); rerr != nil {
		i.logger.Warn("Failed to remove appBase", zap.String("appBase", i.AppBase), zap.Error(rerr))
	}
	return nil
}
