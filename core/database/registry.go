package database

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"
)

// OpenFunc opens a resource. Connect is the production implementation.
type OpenFunc func(Resource) (*gorm.DB, error)

// Health is the state of one bound resource.
type Health struct {
	Name    string `json:"name"`
	Driver  string `json:"driver"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

type entry struct {
	resource Resource
	db       *gorm.DB
	err      error
}

// Registry holds the datasources of the deployed application by name.
type Registry struct {
	open OpenFunc

	mu      sync.RWMutex
	entries []*entry
}

// NewRegistry creates an empty registry that opens resources with open.
func NewRegistry(open OpenFunc) *Registry {
	if open == nil {
		open = Connect
	}
	return &Registry{open: open}
}

// Bind opens res and stores it under its name, replacing an earlier binding.
// A resource that fails to open stays registered as unhealthy and the error is returned.
func (r *Registry) Bind(res Resource) error {
	db, err := r.open(res)
	e := &entry{resource: res, db: db, err: err}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.entries {
		if existing.resource.Name == res.Name {
			closeDB(existing.db)
			r.entries[i] = e
			return err
		}
	}
	r.entries = append(r.entries, e)
	return err
}

// Ping checks every bound resource, in binding order.
func (r *Registry) Ping(ctx context.Context) []Health {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Health, 0, len(r.entries))
	for _, e := range r.entries {
		h := Health{Name: e.resource.Name, Driver: e.resource.Driver}
		err := e.err
		if err == nil {
			err = ping(ctx, e.db)
		}
		if err != nil {
			h.Error = err.Error()
		} else {
			h.Healthy = true
		}
		out = append(out, h)
	}
	return out
}

// Close closes every open connection.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for _, e := range r.entries {
		if err := closeDB(e.db); err != nil {
			errs = append(errs, err)
		}
	}
	r.entries = nil
	return errors.Join(errs...)
}

func ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func closeDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
