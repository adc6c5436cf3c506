package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	ProjectType   string   `json:"project_type" yaml:"project_type"`     // "organization" or "repository"
	Owner         string   `json:"owner" yaml:"owner"`                   // Org login or repo owner
	Repo          string   `json:"repo" yaml:"repo"`                     // Required for repository projects
	ProjectNumber int      `json:"project_number" yaml:"project_number"` // Projects v2 number
	SprintStart   string   `json:"sprint_start" yaml:"sprint_start"`     // 2006-01-02 or RFC 3339
	SprintEnd     string   `json:"sprint_end" yaml:"sprint_end"`
	SprintLabel   string   `json:"sprint_label" yaml:"sprint_label"` // e.g. "Sprint 3"
	SprintField   string   `json:"sprint_field" yaml:"sprint_field"` // e.g. "Sprint"
	PointsField   string   `json:"points_field" yaml:"points_field"` // e.g. "Points"
	PlannedPoints *float64 `json:"planned_points,omitempty" yaml:"planned_points,omitempty"`
	ChartType     string   `json:"chart_type" yaml:"chart_type"` // png, html or both
	SavePath      string   `json:"save_path" yaml:"save_path"`
	GitHubToken   string   `json:"github_token" yaml:"github_token"`
	GitHubURL     string   `json:"github_url,omitempty" yaml:"github_url,omitempty"` // GraphQL endpoint override (GHE)
}

// ValidChartTypes enumerates the accepted chart_type values.
var ValidChartTypes = []string{"png", "html", "both"}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// LoadConfig loads configuration from a JSON or YAML file, falling back
// to environment variables (a .env file is honored) when the file does
// not exist.
func LoadConfig(filename string) (Config, error) {
	_ = godotenv.Load()

	if _, err := os.Stat(filename); err == nil {
		data, err := os.ReadFile(filename)
		if err != nil {
			return Config{}, err
		}
		var config Config
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(data, &config)
		default:
			err = json.Unmarshal(data, &config)
		}
		if err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", filename, err)
		}
		applyDefaults(&config)
		return config, nil
	}

	// Fall back to environment variables
	config := Config{
		ProjectType: os.Getenv("PROJECT_TYPE"),
		Owner:       os.Getenv("GITHUB_OWNER"),
		Repo:        os.Getenv("GITHUB_REPO"),
		SprintStart: os.Getenv("SPRINT_START"),
		SprintEnd:   os.Getenv("SPRINT_END"),
		SprintLabel: os.Getenv("SPRINT_LABEL"),
		SprintField: os.Getenv("SPRINT_FIELD"),
		PointsField: os.Getenv("POINTS_FIELD"),
		ChartType:   os.Getenv("CHART_TYPE"),
		SavePath:    os.Getenv("SAVE_PATH"),
		GitHubToken: os.Getenv("GITHUB_TOKEN"),
		GitHubURL:   os.Getenv("GITHUB_URL"),
	}

	if number := os.Getenv("PROJECT_NUMBER"); number != "" {
		if n, err := strconv.Atoi(number); err == nil {
			config.ProjectNumber = n
		}
	}
	if planned := os.Getenv("PLANNED_POINTS"); planned != "" {
		if p, err := strconv.ParseFloat(planned, 64); err == nil {
			config.PlannedPoints = &p
		}
	}

	applyDefaults(&config)
	return config, nil
}

func applyDefaults(config *Config) {
	if config.ProjectType == "" {
		config.ProjectType = "organization"
	}
	if config.ChartType == "" {
		config.ChartType = "both"
	}
	if config.SavePath == "" {
		config.SavePath = "burndown.png"
	}
	if config.GitHubToken == "" {
		config.GitHubToken = os.Getenv("GITHUB_TOKEN")
	}
}

// Validate checks that every field required for a run is present and
// well formed.
func (c Config) Validate() error {
	if c.GitHubToken == "" {
		return fmt.Errorf("github_token is required (or set GITHUB_TOKEN)")
	}
	if c.Owner == "" {
		return fmt.Errorf("owner is required")
	}
	if c.ProjectType != "organization" && c.ProjectType != "repository" {
		return fmt.Errorf("project_type must be organization or repository, got %q", c.ProjectType)
	}
	if c.ProjectType == "repository" && c.Repo == "" {
		return fmt.Errorf("repo is required for repository projects")
	}
	if c.ProjectNumber <= 0 {
		return fmt.Errorf("project_number must be positive, got %d", c.ProjectNumber)
	}
	if _, _, err := c.SprintDates(); err != nil {
		return err
	}
	valid := false
	for _, t := range ValidChartTypes {
		if c.ChartType == t {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("chart_type must be one of %v, got %q", ValidChartTypes, c.ChartType)
	}
	return nil
}

// SprintDates parses the configured sprint start and end dates.
func (c Config) SprintDates() (time.Time, time.Time, error) {
	start, err := parseDate(c.SprintStart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("sprint_start: %w", err)
	}
	end, err := parseDate(c.SprintEnd)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("sprint_end: %w", err)
	}
	return start, end, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (want 2006-01-02 or RFC 3339)", value)
}

// CreateSampleConfig creates a sample configuration file
func CreateSampleConfig(filename string) error {
	planned := 40.0
	config := Config{
		ProjectType:   "organization",
		Owner:         "your-org",
		Repo:          "your-repo",
		ProjectNumber: 1,
		SprintStart:   "2025-03-03",
		SprintEnd:     "2025-03-14",
		SprintLabel:   "Sprint 3",
		SprintField:   "Sprint",
		PointsField:   "Points",
		PlannedPoints: &planned,
		ChartType:     "both",
		SavePath:      "burndown.png",
		GitHubToken:   "your-github-token",
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}
