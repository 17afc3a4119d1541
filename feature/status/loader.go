package status

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature exposes the status endpoints.
type Feature struct {
	handler *Handler
	path    string
}

// NewFeature creates the status feature. An empty path disables it.
func NewFeature(service *Service, logger *zap.Logger, path, apiKey string, metrics bool) *Feature {
	return &Feature{
		handler: NewHandler(service, logger, path, apiKey, metrics),
		path:    path,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "status"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.path != ""
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
