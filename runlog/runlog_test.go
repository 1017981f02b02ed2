package runlog_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ilstsp/runlog"
	"github.com/katalvlaran/ilstsp/tsp"
)

func record(label string, bestIter int, dist float64, startedAt time.Time) tsp.RunRecord {
	return tsp.RunRecord{
		RunID:          uuid.New(),
		Label:          label,
		Cities:         52,
		StartedAt:      startedAt,
		Runtime:        1500 * time.Millisecond,
		RuntimeToBest:  700 * time.Millisecond,
		Iterations:     200,
		BestIteration:  bestIter,
		BestDistance:   dist,
		IterationLimit: 200,
		IdleLimit:      50,
		Constructor:    "random",
		Seed:           7,
	}
}

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestCSVLog_WritesHeaderOnce(t *testing.T) {
	log := runlog.NewCSVLog(filepath.Join(t.TempDir(), "logs"))
	ctx := context.Background()

	require.NoError(t, log.Write(ctx, record("berlin52", 17, 7544.37, t0)))
	require.NoError(t, log.Write(ctx, record("berlin52", 3, 7600, t0.Add(time.Minute))))

	path := log.Path("berlin52")
	assert.Equal(t, "berlin52.csv", filepath.Base(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "timestamp;runtime;iterations;best-iteration;trip-distance;figure", lines[0])
	assert.Equal(t, "2024-03-01T12:00:00Z;1.5s;200;17;7544.37;berlin52_17_7544.37.png", lines[1])

	rows, err := runlog.ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2024-03-01T12:01:00Z", "1.5s", "200", "3", "7600", "berlin52_3_7600.png"}, rows[1])
}

func TestCSVLog_OneFilePerLabel(t *testing.T) {
	dir := t.TempDir()
	log := runlog.NewCSVLog(dir)
	ctx := context.Background()

	require.NoError(t, log.Write(ctx, record("a", 1, 1, t0)))
	require.NoError(t, log.Write(ctx, record("b/c", 1, 2, t0)))

	_, err := os.Stat(filepath.Join(dir, "a.csv"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "b-c.csv"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tour.csv"), log.Path(""))
}

func TestReadCSV_Missing(t *testing.T) {
	_, err := runlog.ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func openStore(t *testing.T) *runlog.Store {
	t.Helper()
	s, err := runlog.Open(filepath.Join(t.TempDir(), "db", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestStore_WriteListBest(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	recs := []tsp.RunRecord{
		record("berlin52", 10, 7600.5, t0),
		record("berlin52", 42, 7544.37, t0.Add(time.Minute)),
		record("berlin52", 5, 7544.37, t0.Add(2*time.Minute)),
		record("eil51", 1, 430, t0),
	}
	for _, r := range recs {
		require.NoError(t, s.Write(ctx, r))
	}

	got, err := s.List(ctx, "berlin52")
	require.NoError(t, err)
	if diff := cmp.Diff(recs[:3], got); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}

	best, err := s.Best(ctx, "berlin52")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, recs[1].RunID, best.RunID, "ties go to the earliest run")

	none, err := s.Best(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, none)

	empty, err := s.List(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStore_DuplicateRunID(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	r := record("x", 1, 1, t0)

	require.NoError(t, s.Write(ctx, r))
	require.Error(t, s.Write(ctx, r))
}

func TestStore_ReopenKeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	ctx := context.Background()

	s, err := runlog.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, record("x", 1, 1, t0)))
	require.NoError(t, s.Close())

	s, err = runlog.Open(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.List(ctx, "x")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

type failingSink struct{ err error }

func (f failingSink) Write(context.Context, tsp.RunRecord) error { return f.err }

type countingSink struct{ n int }

func (c *countingSink) Write(context.Context, tsp.RunRecord) error { c.n++; return nil }

func TestMulti(t *testing.T) {
	boom := errors.New("boom")
	c := &countingSink{}
	sink := runlog.Multi(failingSink{boom}, nil, c)

	err := sink.Write(context.Background(), record("x", 1, 1, t0))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, c.n, "later sinks still run")

	require.NoError(t, runlog.Multi().Write(context.Background(), record("x", 1, 1, t0)))
}
