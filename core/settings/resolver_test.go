package settings_test

import (
	"testing"

	"webapp-standalone/core/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testName = "STANDALONE_TEST_SETTING"

func TestResolver_Lookup(t *testing.T) {
	t.Run("OverrideWinsOverEnvironment", func(t *testing.T) {
		t.Setenv(testName, "from-env")
		r := settings.New(map[string]string{testName: "from-override"})

		value, ok := r.Lookup(testName)
		assert.True(t, ok)
		assert.Equal(t, "from-override", value)
	})

	t.Run("EnvironmentOnly", func(t *testing.T) {
		t.Setenv(testName, "from-env")
		r := settings.New(nil)

		value, ok := r.Lookup(testName)
		assert.True(t, ok)
		assert.Equal(t, "from-env", value)
	})

	t.Run("Unset", func(t *testing.T) {
		r := settings.New(nil)

		value, ok := r.Lookup("STANDALONE_TEST_NEVER_DEFINED")
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("EmptyEnvironmentCountsAsSet", func(t *testing.T) {
		t.Setenv(testName, "")
		r := settings.New(nil)

		value, ok := r.Lookup(testName)
		assert.True(t, ok)
		assert.Empty(t, value)
	})

	t.Run("SetAfterConstruction", func(t *testing.T) {
		t.Setenv(testName, "from-env")
		r := settings.New(nil)
		r.Set(testName, "late")

		value, _ := r.Lookup(testName)
		assert.Equal(t, "late", value)
	})
}

func TestResolver_LookupInt(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{"Valid", "8081", 8081, false},
		{"Negative", "-1", -1, false},
		{"NotANumber", "abc", 0, true},
		{"Empty", "", 0, true},
		{"Decimal", "80.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := settings.New(map[string]string{testName: tt.value})

			got, ok, err := r.LookupInt(testName)
			assert.True(t, ok)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), testName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Unset", func(t *testing.T) {
		r := settings.New(nil)
		got, ok, err := r.LookupInt("STANDALONE_TEST_NEVER_DEFINED")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, got)
	})
}

func TestParseDefines(t *testing.T) {
	got, err := settings.ParseDefines([]string{"A=1", "B=x=y", "C"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "1", "B": "x=y", "C": ""}, got)

	_, err = settings.ParseDefines([]string{"=value"})
	assert.Error(t, err)
}

func TestResolver_Overrides(t *testing.T) {
	t.Run("KeepsSpelling", func(t *testing.T) {
		r := settings.New(map[string]string{"dbUrl": "jdbc:x", "TOMCAT_STANDALONE_PORT": "9090"})
		assert.Equal(t, map[string]string{"dbUrl": "jdbc:x", "TOMCAT_STANDALONE_PORT": "9090"}, r.Overrides())

		value, ok := r.Lookup("DBURL")
		assert.True(t, ok)
		assert.Equal(t, "jdbc:x", value)
	})

	t.Run("LaterSpellingReplaces", func(t *testing.T) {
		r := settings.New(map[string]string{"dbUrl": "jdbc:x"})
		r.Set("DBURL", "jdbc:y")

		assert.Equal(t, map[string]string{"DBURL": "jdbc:y"}, r.Overrides())
		value, _ := r.Lookup("dbUrl")
		assert.Equal(t, "jdbc:y", value)
	})
}
