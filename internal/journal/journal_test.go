package journal

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/minhtran/pace/internal/record"
	"github.com/minhtran/pace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 6, 15, 20, 0, 0, 0, time.FixedZone("ICT", 7*3600))

func openTemp(t *testing.T) (*Journal, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j, path
}

func TestOpenCreatesMissingFile(t *testing.T) {
	j, path := openTemp(t)

	_, err := os.Stat(path)
	require.NoError(t, err)

	n, err := j.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAppendAndReadAll(t *testing.T) {
	j, _ := openTemp(t)
	ctx := context.Background()

	first := testutil.EntryAt(baseTime.AddDate(0, 0, -1), "fitness", "run", 4, 10.0)
	second := testutil.EntryAt(baseTime, "study", "reading", 2, 5.0)

	stored, err := j.Append(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Seq)

	stored, err = j.Append(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.Seq)

	entries, err := j.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, "fitness", entries[0].Category)
	assert.Equal(t, "run", entries[0].Activity)
	assert.Equal(t, 4.0, entries[0].Quantity)
	assert.Equal(t, 10.0, entries[0].Points)
	assert.True(t, entries[0].LoggedAt.Equal(first.LoggedAt), "timestamp round-trips exactly")

	assert.Equal(t, second.ID, entries[1].ID)
}

func TestAppendIsIdempotent(t *testing.T) {
	j, _ := openTemp(t)
	ctx := context.Background()

	entry := testutil.EntryAt(baseTime, "fitness", "run", 4, 10.0)

	first, err := j.Append(ctx, entry)
	require.NoError(t, err)

	again, err := j.Append(ctx, entry)
	require.NoError(t, err)
	assert.Equal(t, first.Seq, again.Seq, "replay returns the stored seq")

	n, err := j.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAppendRejectsInvalidEntry(t *testing.T) {
	j, _ := openTemp(t)

	bad := testutil.EntryAt(baseTime, "fitness", "run", 0, 0)
	_, err := j.Append(context.Background(), bad)
	require.Error(t, err)
}

func TestReadAllEmptyIsNotNil(t *testing.T) {
	j, _ := openTemp(t)

	entries, err := j.ReadAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestReadAllOrderSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	ctx := context.Background()

	j, err := Open(path)
	require.NoError(t, err)

	var ids []string
	for i := 0; i < 5; i++ {
		entry := testutil.EntryAt(baseTime.AddDate(0, 0, -i), "fitness", "run", 4, 10.0)
		_, err := j.Append(ctx, entry)
		require.NoError(t, err)
		ids = append(ids, entry.ID)
	}
	require.NoError(t, j.Close())

	j, err = Open(path)
	require.NoError(t, err)
	defer j.Close()

	entries, err := j.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 5)
	for i, entry := range entries {
		assert.Equal(t, ids[i], entry.ID, "append order preserved across reopen")
		assert.Equal(t, int64(i+1), entry.Seq)
	}
}

func TestReset(t *testing.T) {
	j, _ := openTemp(t)
	ctx := context.Background()

	_, err := j.Append(ctx, testutil.EntryAt(baseTime, "fitness", "run", 4, 10.0))
	require.NoError(t, err)

	require.NoError(t, j.Reset(ctx))

	n, err := j.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// The journal stays usable and seq restarts, as if freshly created.
	stored, err := j.Append(ctx, testutil.EntryAt(baseTime, "study", "reading", 2, 5.0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Seq)
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	require.NoError(t, os.WriteFile(path, []byte("this is not a database"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorrupt), "got %v", err)
}

func TestSideline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	backup, err := Sideline(path)
	require.NoError(t, err)
	assert.Equal(t, path+".corrupt", backup)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "original path freed")

	data, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "garbage", string(data), "corrupt bytes preserved")

	// A fresh journal can now be created at the original path.
	j, err := Open(path)
	require.NoError(t, err)
	defer j.Close()
}

func TestValidatePersistedRecord(t *testing.T) {
	j, _ := openTemp(t)
	ctx := context.Background()

	entry := record.New("fitness", "run", 4, 10.0, baseTime)
	_, err := j.Append(ctx, entry)
	require.NoError(t, err)

	entries, err := j.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, record.Validate(entries[0]))
}
