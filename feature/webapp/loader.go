package webapp

import (
	"webapp-standalone/core/deploy"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature mounts the deployed application.
type Feature struct {
	handler *Handler
}

// NewFeature creates the webapp feature.
func NewFeature(d *deploy.Deployment, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(d, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "webapp"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
