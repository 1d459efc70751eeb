package engine

import (
	"time"

	"github.com/minhtran/pace/internal/config"
	"github.com/minhtran/pace/internal/testutil"
)

// fixedNow is the frozen wall clock shared by the engine tests. The odd
// offset guards against code that assumes UTC calendar days.
var fixedNow = time.Date(2025, 6, 15, 20, 0, 0, 0, time.FixedZone("ICT", 7*3600))

func testConfig() *config.Config {
	return config.New([]config.Category{
		{
			Key:    "fitness",
			Name:   "fitness",
			Weight: 1.0,
			Activities: map[string]config.Activity{
				"run": {Key: "run", Name: "Run", Unit: "km", ImpactPerUnit: 2.5},
			},
		},
		{
			Key:    "study",
			Name:   "study",
			Weight: 1.5,
			Activities: map[string]config.Activity{
				"reading": {Key: "reading", Name: "Reading", Unit: "chapters", ImpactPerUnit: 2.5},
			},
		},
	})
}

func testEngine() *Engine {
	return New(testConfig(), WithClock(testutil.NewFixedClock(fixedNow)))
}
