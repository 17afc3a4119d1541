package status

import (
	"context"
	"net"

	"webapp-standalone/core/connector"
	"webapp-standalone/core/contextprops"
	"webapp-standalone/core/database"
	"webapp-standalone/core/deploy"
	"webapp-standalone/core/server"

	"golang.org/x/sync/singleflight"
)

// StateSource reports the lifecycle state of the listener and, once bound, its address.
type StateSource interface {
	State() server.State
	Addr() net.Addr
}

// ConnectorReport describes the listener.
type ConnectorReport struct {
	Name       string               `json:"name"`
	Address    string               `json:"address"`
	Properties []connector.Property `json:"properties"`
}

// Report is the status of the host.
type Report struct {
	State             string            `json:"state"`
	Healthy           bool              `json:"healthy"`
	AppBase           string            `json:"appBase"`
	ContextPath       string            `json:"contextPath"`
	DocBase           string            `json:"docBase"`
	Location          string            `json:"location"`
	Connector         ConnectorReport   `json:"connector"`
	ContextProperties []string          `json:"contextProperties"`
	Resources         []database.Health `json:"resources"`
}

// Service assembles status reports.
type Service struct {
	state      StateSource
	appBase    string
	deployment *deploy.Deployment
	conn       *connector.Connector
	props      contextprops.Properties
	registry   *database.Registry

	sf singleflight.Group
}

// NewService creates a new status service.
func NewService(state StateSource, appBase string, d *deploy.Deployment, conn *connector.Connector, props contextprops.Properties, registry *database.Registry) *Service {
	return &Service{
		state:      state,
		appBase:    appBase,
		deployment: d,
		conn:       conn,
		props:      props,
		registry:   registry,
	}
}

// Report collects the current status, pinging every datasource.
// Concurrent callers share one collection, run with the context of the first.
func (s *Service) Report(ctx context.Context) Report {
	v, _, _ := s.sf.Do("report", func() (interface{}, error) {
		return s.collect(ctx), nil
	})
	return v.(Report)
}

func (s *Service) collect(ctx context.Context) Report {
	st := s.state.State()
	resources := s.registry.Ping(ctx)

	healthy := st == server.StateRunning
	for _, r := range resources {
		healthy = healthy && r.Healthy
	}

	address := s.conn.Addr()
	if bound := s.state.Addr(); bound != nil {
		address = bound.String()
	}

	return Report{
		State:       st.String(),
		Healthy:     healthy,
		AppBase:     s.appBase,
		ContextPath: deploy.DisplayContextPath(s.deployment.ContextPath),
		DocBase:     s.deployment.DocBase,
		Location:    s.deployment.Location,
		Connector: ConnectorReport{
			Name:       s.conn.String(),
			Address:    address,
			Properties: s.conn.Properties(),
		},
		ContextProperties: s.props.Names(),
		Resources:         resources,
	}
}
