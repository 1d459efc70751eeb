package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProfile = `
category: {
	fitness: {
		name:   "Fitness"
		weight: 1.0
		activities: {
			run: {
				name:            "Run"
				unit:            "km"
				impact_per_unit: 2.5
			}
			pushups: {
				name:            "Push-ups"
				unit:            "reps"
				impact_per_unit: 0.1
			}
		}
	}
	study: {
		name:   "Study"
		weight: 1.5
		activities: {
			reading: {
				name:            "Reading"
				unit:            "chapters"
				impact_per_unit: 2.5
			}
		}
	}
}
`

func loadErr(t *testing.T, err error) *LoadError {
	t.Helper()
	require.Error(t, err)
	lerr, ok := err.(*LoadError)
	require.True(t, ok, "expected *LoadError, got %T: %v", err, err)
	return lerr
}

func TestParseValidProfile(t *testing.T) {
	cfg, err := Parse([]byte(validProfile), "profile.cue")
	require.NoError(t, err)

	assert.Equal(t, []string{"fitness", "study"}, cfg.Keys())
	assert.Equal(t, 2, cfg.Len())

	fitness, ok := cfg.Category("fitness")
	require.True(t, ok)
	assert.Equal(t, "Fitness", fitness.Name)
	assert.Equal(t, 1.0, fitness.Weight)
	assert.Equal(t, []string{"pushups", "run"}, cfg.ActivityKeys("fitness"))

	run, ok := cfg.Activity("fitness", "run")
	require.True(t, ok)
	assert.Equal(t, "Run", run.Name)
	assert.Equal(t, "km", run.Unit)
	assert.Equal(t, 2.5, run.ImpactPerUnit)

	_, ok = cfg.Activity("fitness", "swim")
	assert.False(t, ok)
	assert.Nil(t, cfg.ActivityKeys("chess"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.cue"))
	assert.Equal(t, ErrCodeNotFound, loadErr(t, err).Code)
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.cue")
	require.NoError(t, os.WriteFile(path, []byte(validProfile), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Len())
}

func TestParseSyntaxError(t *testing.T) {
	lerr := loadErr(t, errFrom(Parse([]byte(`category: {`), "broken.cue")))
	assert.Equal(t, ErrCodeParse, lerr.Code)
	assert.True(t, lerr.Pos.IsValid(), "parse errors carry a position")
	assert.Contains(t, lerr.Error(), "broken.cue")
}

func TestParseSchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		profile string
	}{
		{
			name: "negative weight",
			profile: `category: fitness: {
				name:   "Fitness"
				weight: -1.0
				activities: run: {name: "Run", unit: "km", impact_per_unit: 2.5}
			}`,
		},
		{
			name: "empty name",
			profile: `category: fitness: {
				name:   ""
				weight: 1.0
				activities: run: {name: "Run", unit: "km", impact_per_unit: 2.5}
			}`,
		},
		{
			name: "non-numeric impact",
			profile: `category: fitness: {
				name:   "Fitness"
				weight: 1.0
				activities: run: {name: "Run", unit: "km", impact_per_unit: "lots"}
			}`,
		},
		{
			name: "missing weight",
			profile: `category: fitness: {
				name: "Fitness"
				activities: run: {name: "Run", unit: "km", impact_per_unit: 2.5}
			}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lerr := loadErr(t, errFrom(Parse([]byte(tc.profile), "profile.cue")))
			assert.Equal(t, ErrCodeSchema, lerr.Code)
		})
	}
}

func TestParseEmptyProfiles(t *testing.T) {
	lerr := loadErr(t, errFrom(Parse([]byte(`x: 1`), "profile.cue")))
	assert.Equal(t, ErrCodeEmpty, lerr.Code)

	lerr = loadErr(t, errFrom(Parse([]byte(`category: {}`), "profile.cue")))
	assert.Equal(t, ErrCodeEmpty, lerr.Code)
}

func TestParseNormalizesUnicodeKeys(t *testing.T) {
	// Category key spelled with a combining acute accent (NFD); lookups
	// use the precomposed (NFC) form.
	decomposed := "cafe\u0301"
	precomposed := "caf\u00e9"
	profile := `category: "` + decomposed + `": {
		name:   "` + decomposed + `"
		weight: 1.0
		activities: visit: {name: "Visit", unit: "visits", impact_per_unit: 1.0}
	}`

	cfg, err := Parse([]byte(profile), "profile.cue")
	require.NoError(t, err)

	cat, ok := cfg.Category(precomposed)
	require.True(t, ok, "NFD key normalized to NFC")
	assert.Equal(t, precomposed, cat.Name)
}

// errFrom discards the config so table tests can pass Parse results
// straight to loadErr.
func errFrom(_ *Config, err error) error { return err }
