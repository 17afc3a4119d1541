package webapp

import (
	"strings"

	"webapp-standalone/core/deploy"
	"webapp-standalone/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"go.uber.org/zap"
)

var privateDirs = []string{"META-INF", "WEB-INF"}

// Handler serves the deployed application.
type Handler struct {
	deployment *deploy.Deployment
	logger     *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(d *deploy.Deployment, logger *zap.Logger) *Handler {
	return &Handler{deployment: d, logger: logger}
}

// RegisterRoutes mounts the application under its context path.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	desc := h.deployment.Descriptor()

	group := app.Group(h.deployment.ContextPath)
	group.Use(h.guardPrivate)
	if desc.ParametersPath != "" {
		group.Get("/"+strings.TrimPrefix(desc.ParametersPath, "/"), h.HandleParameters)
	}

	welcome := desc.Welcome
	if welcome == "" {
		welcome = "index.html"
	}
	cfg := filesystem.Config{
		Root:  h.deployment.FileSystem(),
		Index: "/" + strings.TrimPrefix(welcome, "/"),
	}
	if desc.NotFound != "" {
		cfg.NotFoundFile = "/" + strings.TrimPrefix(desc.NotFound, "/")
	}
	group.Use(filesystem.New(cfg))
}

// HandleParameters returns the expanded descriptor parameters.
func (h *Handler) HandleParameters(c *fiber.Ctx) error {
	return c.JSON(h.deployment.Parameters())
}

func (h *Handler) guardPrivate(c *fiber.Ctx) error {
	rel := strings.TrimPrefix(c.Path(), h.deployment.ContextPath)
	for _, segment := range strings.Split(rel, "/") {
		for _, dir := range privateDirs {
			if strings.EqualFold(segment, dir) {
				logger.WithRayID(h.logger, c).Debug("Rejected private path", zap.String("path", c.Path()))
				return fiber.ErrNotFound
			}
		}
	}
	return c.Next()
}
