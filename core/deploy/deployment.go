package deploy

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"webapp-standalone/core/appbase"
	"webapp-standalone/core/contextprops"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Deployment is an application staged and ready to be served.
type Deployment struct {
	// ContextPath is the normalized context path ("" for root).
	ContextPath string
	// DocBase is the directory the application is served from.
	DocBase string
	// Location is where the application came from.
	Location string

	fs     afero.Fs
	props  contextprops.Properties
	logger *zap.Logger

	mu         sync.RWMutex
	descriptor *Descriptor
}

// Deploy stages src below appBase and loads its descriptor.
func Deploy(ctx context.Context, fsys afero.Fs, src Source, appBase, contextPath string, props contextprops.Properties, logger *zap.Logger) (*Deployment, error) {
	contextPath = NormalizeContextPath(contextPath)

	location, err := src.Location()
	if err != nil {
		return nil, err
	}

	docBase, err := src.Stage(ctx, fsys, appBase, appbase.DocBaseName(contextPath))
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", location, err)
	}

	d := &Deployment{
		ContextPath: contextPath,
		DocBase:     docBase,
		Location:    location,
		fs:          fsys,
		props:       props,
		logger:      logger,
	}
	if err := d.Reload(); err != nil {
		return nil, err
	}
	return d, nil
}

// Descriptor returns the current descriptor. Callers must not modify it.
func (d *Deployment) Descriptor() *Descriptor {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.descriptor
}

// Parameters returns a copy of the expanded descriptor parameters.
func (d *Deployment) Parameters() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[string]string, len(d.descriptor.Parameters))
	for k, v := range d.descriptor.Parameters {
		out[k] = v
	}
	return out
}

// FileSystem exposes the document base for serving.
func (d *Deployment) FileSystem() http.FileSystem {
	return afero.NewHttpFs(afero.NewBasePathFs(d.fs, d.DocBase))
}

// Reload re-reads the descriptor. On failure the previous descriptor stays active.
func (d *Deployment) Reload() error {
	desc, err := LoadDescriptor(d.fs, d.DocBase, d.props)
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.descriptor = desc
	d.mu.Unlock()
	return nil
}
