package loader_test

import (
	"errors"
	"testing"

	"webapp-standalone/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockFeature struct {
	mock.Mock
}

func (m *mockFeature) Name() string {
	return m.Called().String(0)
}

func (m *mockFeature) IsEnabled() bool {
	return m.Called().Bool(0)
}

func (m *mockFeature) Load(app fiber.Router) error {
	return m.Called(app).Error(0)
}

func newFeature(name string, enabled bool, loadErr error) *mockFeature {
	f := &mockFeature{}
	f.On("Name").Return(name)
	f.On("IsEnabled").Return(enabled)
	f.On("Load", mock.Anything).Return(loadErr)
	return f
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("SkipsDisabled", func(t *testing.T) {
		status := newFeature("status", false, nil)
		webapp := newFeature("webapp", true, nil)

		mgr := loader.NewManager()
		mgr.Register(status)
		mgr.Register(webapp)

		assert.NoError(t, mgr.LoadAll(fiber.New()))
		assert.Equal(t, []string{"webapp"}, mgr.Loaded())
		status.AssertNotCalled(t, "Load", mock.Anything)
	})

	t.Run("StopsAtFailure", func(t *testing.T) {
		broken := newFeature("broken", true, errors.New("boom"))
		after := newFeature("after", true, nil)

		mgr := loader.NewManager()
		mgr.Register(broken)
		mgr.Register(after)

		err := mgr.LoadAll(fiber.New())
		assert.ErrorContains(t, err, "failed to load feature broken")
		assert.Empty(t, mgr.Loaded())
		after.AssertNotCalled(t, "Load", mock.Anything)
	})
}
