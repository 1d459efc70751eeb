package record

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var loggedAt = time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC)

func TestNewAssignsUniqueIDs(t *testing.T) {
	a := New("fitness", "run", 4, 10.0, loggedAt)
	b := New("fitness", "run", 4, 10.0, loggedAt)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Zero(t, a.Seq, "seq is assigned by the journal, not the constructor")
	assert.True(t, a.LoggedAt.Equal(loggedAt))
}

func TestValidate(t *testing.T) {
	valid := New("fitness", "run", 4, 10.0, loggedAt)
	require.NoError(t, Validate(valid))

	tests := []struct {
		name   string
		mutate func(*Entry)
	}{
		{"missing id", func(e *Entry) { e.ID = "" }},
		{"missing category", func(e *Entry) { e.Category = "" }},
		{"missing activity", func(e *Entry) { e.Activity = "" }},
		{"zero timestamp", func(e *Entry) { e.LoggedAt = time.Time{} }},
		{"zero quantity", func(e *Entry) { e.Quantity = 0 }},
		{"negative quantity", func(e *Entry) { e.Quantity = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := valid
			tc.mutate(&e)
			assert.Error(t, Validate(e))
		})
	}
}

func TestValidateAllowsUnknownCategoryKey(t *testing.T) {
	e := New("no-such-category", "no-such-activity", 1, 0, loggedAt)
	assert.NoError(t, Validate(e), "unknown keys are inert, not invalid")
}

func TestEntryJSONShape(t *testing.T) {
	e := New("fitness", "run", 4, 10.0, loggedAt)
	e.Seq = 42

	data, err := json.Marshal(e)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Contains(t, fields, "id")
	assert.Contains(t, fields, "timestamp")
	assert.Contains(t, fields, "category")
	assert.Contains(t, fields, "activity")
	assert.Contains(t, fields, "quantity")
	assert.Contains(t, fields, "points")
	assert.NotContains(t, fields, "seq", "seq is storage-internal")
}
