package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{
		"project_type": "repository",
		"owner": "acme",
		"repo": "rocket",
		"project_number": 7,
		"sprint_start": "2025-03-03",
		"sprint_end": "2025-03-14",
		"sprint_label": "Sprint 3",
		"points_field": "Points",
		"planned_points": 40,
		"github_token": "tok"
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "repository", cfg.ProjectType)
	assert.Equal(t, "acme", cfg.Owner)
	assert.Equal(t, 7, cfg.ProjectNumber)
	require.NotNil(t, cfg.PlannedPoints)
	assert.Equal(t, 40.0, *cfg.PlannedPoints)
	// defaults fill the omitted fields
	assert.Equal(t, "both", cfg.ChartType)
	assert.Equal(t, "burndown.png", cfg.SavePath)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
project_type: organization
owner: acme
project_number: 2
sprint_start: 2025-03-03
sprint_end: 2025-03-14
sprint_label: Sprint 1
github_token: tok
chart_type: png
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.Owner)
	assert.Equal(t, "png", cfg.ChartType)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigEnvFallback(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "tok")
	t.Setenv("GITHUB_OWNER", "acme")
	t.Setenv("PROJECT_NUMBER", "3")
	t.Setenv("SPRINT_START", "2025-03-03")
	t.Setenv("SPRINT_END", "2025-03-14")
	t.Setenv("PLANNED_POINTS", "21.5")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.Owner)
	assert.Equal(t, 3, cfg.ProjectNumber)
	assert.Equal(t, "organization", cfg.ProjectType)
	require.NotNil(t, cfg.PlannedPoints)
	assert.Equal(t, 21.5, *cfg.PlannedPoints)
	assert.NoError(t, cfg.Validate())
}

func TestValidateErrors(t *testing.T) {
	base := Config{
		ProjectType:   "organization",
		Owner:         "acme",
		ProjectNumber: 1,
		SprintStart:   "2025-03-03",
		SprintEnd:     "2025-03-14",
		ChartType:     "both",
		GitHubToken:   "tok",
	}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing token", func(c *Config) { c.GitHubToken = "" }, "github_token"},
		{"missing owner", func(c *Config) { c.Owner = "" }, "owner"},
		{"bad project type", func(c *Config) { c.ProjectType = "team" }, "project_type"},
		{"repo project without repo", func(c *Config) { c.ProjectType = "repository" }, "repo"},
		{"bad project number", func(c *Config) { c.ProjectNumber = 0 }, "project_number"},
		{"bad start date", func(c *Config) { c.SprintStart = "03/03/2025" }, "sprint_start"},
		{"missing end date", func(c *Config) { c.SprintEnd = "" }, "sprint_end"},
		{"bad chart type", func(c *Config) { c.ChartType = "svg" }, "chart_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSprintDatesAcceptRFC3339(t *testing.T) {
	cfg := Config{SprintStart: "2025-03-03T00:00:00Z", SprintEnd: "2025-03-14T00:00:00Z"}
	start, end, err := cfg.SprintDates()
	require.NoError(t, err)
	assert.True(t, end.After(start))
}

func TestCreateSampleConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.sample.json")
	require.NoError(t, CreateSampleConfig(path))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "organization", cfg.ProjectType)
	assert.NoError(t, cfg.Validate())
}
