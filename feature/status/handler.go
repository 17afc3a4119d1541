package status

import (
	"webapp-standalone/core/logger"
	"webapp-standalone/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the status endpoints.
type Handler struct {
	service *Service
	logger  *zap.Logger
	path    string
	apiKey  string
	metrics bool
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger, path, apiKey string, metrics bool) *Handler {
	return &Handler{service: service, logger: logger, path: path, apiKey: apiKey, metrics: metrics}
}

// RegisterRoutes registers the status routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group(h.path, auth.New(auth.Config{ApiKey: h.apiKey}))
	group.Get("/status", h.HandleStatus)
	if h.metrics {
		group.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}
}

// HandleStatus returns the status report.
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	report := h.service.Report(c.Context())
	if !report.Healthy {
		logger.WithRayID(h.logger, c).Warn("Status check reports unhealthy", zap.String("state", report.State))
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
