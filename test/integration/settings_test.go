package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/bancada/test/integration/harness"
)

type settingsOutput struct {
	Database string `json:"database"`
	Mirror   string `json:"mirror"`
	Settings struct {
		GitBackend        string `json:"git_backend"`
		GitTimeoutSeconds int    `json:"git_timeout_seconds"`
		ShowHidden        bool   `json:"show_hidden"`
	} `json:"settings"`
}

func TestSettingsShow(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		env      map[string]string
		validate func(t *testing.T, env *harness.TestEnvironment, out settingsOutput)
	}{
		{
			name: "defaults",
			validate: func(t *testing.T, env *harness.TestEnvironment, out settingsOutput) {
				assert.Equal(t, env.DBPath(), out.Database)
				assert.Equal(t, env.MirrorPath(), out.Mirror)
				assert.Equal(t, "cli", out.Settings.GitBackend)
				assert.Equal(t, 30, out.Settings.GitTimeoutSeconds)
				assert.True(t, out.Settings.ShowHidden)
			},
		},
		{
			name: "file values",
			file: `{"git_backend": "gogit", "git_timeout_seconds": 5, "show_hidden": false}`,
			validate: func(t *testing.T, env *harness.TestEnvironment, out settingsOutput) {
				assert.Equal(t, "gogit", out.Settings.GitBackend)
				assert.Equal(t, 5, out.Settings.GitTimeoutSeconds)
				assert.False(t, out.Settings.ShowHidden)
			},
		},
		{
			name: "environment overrides file",
			file: `{"git_timeout_seconds": 5}`,
			env:  map[string]string{"BANCADA_GIT_TIMEOUT_SECONDS": "12"},
			validate: func(t *testing.T, env *harness.TestEnvironment, out settingsOutput) {
				assert.Equal(t, 12, out.Settings.GitTimeoutSeconds)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.file != "" {
				env.WriteSettings(tt.file)
			}
			for k, v := range tt.env {
				env.SetEnv(k, v)
			}

			result := harness.RunCommand(t, env, "settings", "show", "--format", "json")
			harness.AssertSuccess(t, result)

			var out settingsOutput
			harness.AssertValidJSON(t, result, &out)
			tt.validate(t, env, out)
		})
	}
}

func TestSettingsInvalidFileFallsBack(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(`{"unknown_key": true}`)

	result := harness.RunCommand(t, env, "settings")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "git_backend")
}
