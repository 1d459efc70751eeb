package harness

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Scenario defines one end-to-end scoring scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario locks in.
	Description string `yaml:"description"`

	// Profile is the CUE profile path, relative to the scenario file.
	Profile string `yaml:"profile"`

	// Now is the fixed wall clock, RFC 3339. Entry timestamps and the
	// streak/staleness math are all relative to it.
	Now string `yaml:"now"`

	// Entries are logged in order; order matters for the aggregate fold.
	Entries []EntryStep `yaml:"entries"`

	// Expect holds point assertions checked before the golden snapshot.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// EntryStep logs one activity a number of days before the fixed clock.
type EntryStep struct {
	// DaysAgo places the entry that many whole days before now.
	// 0 means today.
	DaysAgo int `yaml:"days_ago"`

	// At optionally overrides the time of day, "15:04" format, in the
	// clock's location. Defaults to the clock's own time of day.
	At string `yaml:"at,omitempty"`

	Category string  `yaml:"category"`
	Activity string  `yaml:"activity"`
	Quantity float64 `yaml:"quantity"`
}

// ExpectClause holds the point assertions a scenario can make.
type ExpectClause struct {
	// Scores maps category keys to expected current scores.
	Scores map[string]float64 `yaml:"scores,omitempty"`

	// Overall is the expected weighted overall score.
	Overall *float64 `yaml:"overall,omitempty"`

	// Streak is the expected consecutive-day streak.
	Streak *int `yaml:"streak,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected so typos fail loudly instead of silently skipping assertions.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks required fields before the scenario runs.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Profile == "" {
		return fmt.Errorf("profile is required")
	}
	if _, err := time.Parse(time.RFC3339, s.Now); err != nil {
		return fmt.Errorf("now must be RFC 3339: %w", err)
	}

	for i, step := range s.Entries {
		if step.Category == "" {
			return fmt.Errorf("entries[%d]: category is required", i)
		}
		if step.Activity == "" {
			return fmt.Errorf("entries[%d]: activity is required", i)
		}
		if step.Quantity <= 0 {
			return fmt.Errorf("entries[%d]: quantity must be positive", i)
		}
		if step.DaysAgo < 0 {
			return fmt.Errorf("entries[%d]: days_ago must be >= 0", i)
		}
		if step.At != "" {
			if _, err := time.Parse("15:04", step.At); err != nil {
				return fmt.Errorf("entries[%d]: at must be HH:MM: %w", i, err)
			}
		}
	}

	return nil
}
