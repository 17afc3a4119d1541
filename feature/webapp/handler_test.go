package webapp_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"webapp-standalone/core/contextprops"
	"webapp-standalone/core/deploy"
	"webapp-standalone/feature/webapp"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newApp(t *testing.T, contextPath, descriptor string) *fiber.App {
	t.Helper()
	assets := fstest.MapFS{
		"index.html":            {Data: []byte("home")},
		"about/index.html":      {Data: []byte("about")},
		"css/site.css":          {Data: []byte("body{}")},
		"WEB-INF/secret.txt":    {Data: []byte("secret")},
		"META-INF/context.yaml": {Data: []byte(descriptor)},
	}
	src := &deploy.SelfSource{Assets: assets, Executable: func() (string, error) { return "/bin/standalone", nil }}
	props := contextprops.Properties{"API_URL": "https://api.example"}

	d, err := deploy.Deploy(context.Background(), afero.NewMemMapFs(), src, "/base", contextPath, props, zaptest.NewLogger(t))
	require.NoError(t, err)

	app := fiber.New()
	require.NoError(t, webapp.NewFeature(d, zaptest.NewLogger(t)).Load(app))
	return app
}

func get(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestHandler_RootContext(t *testing.T) {
	app := newApp(t, "/", "parameters:\n  apiUrl: ${API_URL}\n")

	status, body := get(t, app, "/")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "home", body)

	status, body = get(t, app, "/about/")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "about", body)

	status, body = get(t, app, "/css/site.css")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "body{}", body)

	status, _ = get(t, app, "/missing.html")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandler_PrivateDirectories(t *testing.T) {
	app := newApp(t, "/app", "")

	for _, path := range []string{"/app/WEB-INF/secret.txt", "/app/META-INF/context.yaml", "/app/meta-inf/context.yaml"} {
		status, _ := get(t, app, path)
		assert.Equal(t, fiber.StatusNotFound, status, path)
	}
}

func TestHandler_NamedContext(t *testing.T) {
	app := newApp(t, "/app", "")

	status, body := get(t, app, "/app/")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "home", body)

	status, _ = get(t, app, "/index.html")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandler_Parameters(t *testing.T) {
	app := newApp(t, "/app", "parametersPath: settings.json\nparameters:\n  apiUrl: ${API_URL}\n")

	status, body := get(t, app, "/app/settings.json")
	require.Equal(t, fiber.StatusOK, status)

	var params map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &params))
	assert.Equal(t, map[string]string{"apiUrl": "https://api.example"}, params)
}

func TestHandler_NotFoundFallback(t *testing.T) {
	app := newApp(t, "/", "notFound: index.html\n")

	_, body := get(t, app, "/some/client/route")
	assert.Equal(t, "home", body)
}
