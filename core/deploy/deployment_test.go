package deploy_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"webapp-standalone/core/contextprops"
	"webapp-standalone/core/deploy"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestDeploy(t *testing.T) {
	assets := fstest.MapFS{
		"index.html":            {Data: []byte("home")},
		"META-INF/context.yaml": {Data: []byte("parameters:\n  db: ${DB_URL}\n")},
	}
	props := contextprops.Properties{"DB_URL": "jdbc:x"}

	t.Run("SelfAtRoot", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		src := &deploy.SelfSource{Assets: assets, Executable: func() (string, error) { return "/bin/standalone", nil }}

		d, err := deploy.Deploy(context.Background(), fs, src, "/base", "/", props, zaptest.NewLogger(t))
		require.NoError(t, err)

		assert.Equal(t, "", d.ContextPath)
		assert.Equal(t, "/base/ROOT", d.DocBase)
		assert.Equal(t, "/bin/standalone", d.Location)
		assert.Equal(t, map[string]string{"db": "jdbc:x"}, d.Parameters())
	})

	t.Run("NamedContext", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		src := &deploy.SelfSource{Assets: assets, Executable: func() (string, error) { return "/bin/standalone", nil }}

		d, err := deploy.Deploy(context.Background(), fs, src, "/base", "shop/admin/", props, zaptest.NewLogger(t))
		require.NoError(t, err)
		assert.Equal(t, "/shop/admin", d.ContextPath)
		assert.Equal(t, "/base/shop#admin", d.DocBase)
	})

	t.Run("ParametersAreCopied", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		src := &deploy.SelfSource{Assets: assets}

		d, err := deploy.Deploy(context.Background(), fs, src, "/base", "", props, zaptest.NewLogger(t))
		require.NoError(t, err)

		params := d.Parameters()
		params["db"] = "changed"
		assert.Equal(t, "jdbc:x", d.Parameters()["db"])
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		src := &deploy.DirectorySource{Dir: "/does/not/exist"}
		_, err := deploy.Deploy(context.Background(), afero.NewMemMapFs(), src, "/base", "", props, zaptest.NewLogger(t))
		assert.ErrorContains(t, err, "stage")
	})
}

func TestDeployment_Reload(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/srv/www", 0o755))
	writeDescriptor(t, fs, "/srv/www", "parameters:\n  mode: one\n")

	d, err := deploy.Deploy(context.Background(), fs, &deploy.DirectorySource{Dir: "/srv/www"}, "/base", "", nil, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, "one", d.Parameters()["mode"])

	writeDescriptor(t, fs, "/srv/www", "parameters:\n  mode: two\n")
	require.NoError(t, d.Reload())
	assert.Equal(t, "two", d.Parameters()["mode"])

	writeDescriptor(t, fs, "/srv/www", "parameters: [broken")
	assert.Error(t, d.Reload())
	assert.Equal(t, "two", d.Parameters()["mode"])
}

func TestDeployment_Watch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "META-INF"), 0o755))
	descriptor := filepath.Join(dir, filepath.FromSlash(deploy.DescriptorPath))
	require.NoError(t, os.WriteFile(descriptor, []byte("reloadable: true\nparameters:\n  version: \"1\"\n"), 0o644))

	fs := afero.NewOsFs()
	d, err := deploy.Deploy(context.Background(), fs, &deploy.DirectorySource{Dir: dir}, t.TempDir(), "", nil, zaptest.NewLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Watch(ctx) }()

	// Rewrite until the watcher is registered and picks the change up.
	assert.Eventually(t, func() bool {
		_ = os.WriteFile(descriptor, []byte("reloadable: true\nparameters:\n  version: \"2\"\n"), 0o644)
		return d.Parameters()["version"] == "2"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
