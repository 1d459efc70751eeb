package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenariosAgainstGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, files, "no scenario files found")

	for _, file := range files {
		scenario, err := LoadScenario(file)
		require.NoError(t, err, file)

		t.Run(scenario.Name, func(t *testing.T) {
			require.NoError(t, RunWithGolden(t, scenario, "testdata"))
		})
	}
}

func TestRunFailsOnWrongExpectation(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "clamp.yaml"))
	require.NoError(t, err)

	wrong := 55.0
	scenario.Expect.Overall = &wrong

	_, err = Run(scenario, "testdata")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overall")
}

func TestRunFailsOnMissingProfile(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "clamp.yaml"))
	require.NoError(t, err)

	scenario.Profile = "does-not-exist.cue"

	_, err = Run(scenario, "testdata")
	require.Error(t, err)
}

func TestRunEmptyScenario(t *testing.T) {
	dir := t.TempDir()
	profile := `category: solo: {
	name:   "Solo"
	weight: 1.0
	activities: walk: {
		name:            "Walk"
		unit:            "km"
		impact_per_unit: 1.0
	}
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile.cue"), []byte(profile), 0o644))

	scenario := &Scenario{
		Name:        "empty",
		Description: "no entries at all",
		Profile:     "profile.cue",
		Now:         "2025-06-15T08:00:00Z",
	}

	result, err := Run(scenario, dir)
	require.NoError(t, err)
	assert.Equal(t, 30.0, result.Scores["solo"])
	assert.Equal(t, 0, result.Streak)
	assert.Equal(t, 30.0, result.Overall)
}
