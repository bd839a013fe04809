package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "cfop.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)
	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfop.db")
	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestSolveRoundTrip(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	in := &Solve{
		Scramble:   "R U R' U' F2",
		Solution:   "F2 U R U' R'",
		TotalTurns: 5,
		CrossTurns: 3,
		F2LTurns:   2,
		CrossTime:  120 * time.Microsecond,
		F2LTime:    80 * time.Microsecond,
		TotalTime:  200 * time.Microsecond,
	}
	id, err := repo.Create(in)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	out, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.Scramble, out.Scramble)
	assert.Equal(t, in.Solution, out.Solution)
	assert.Equal(t, in.TotalTurns, out.TotalTurns)
	assert.Equal(t, in.CrossTurns, out.CrossTurns)
	assert.Equal(t, in.F2LTurns, out.F2LTurns)
	assert.Equal(t, in.CrossTime, out.CrossTime)
	assert.Equal(t, in.F2LTime, out.F2LTime)
	assert.Zero(t, out.OLLTime)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestGetMissingSolve(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))
	out, err := repo.Get("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestListNewestFirst(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := repo.Create(&Solve{Scramble: "R", Solution: "R'"})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	solves, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, solves, 3)
	assert.Equal(t, ids[2], solves[0].SolveID)
	assert.Equal(t, ids[0], solves[2].SolveID)

	solves, err = repo.List(2)
	require.NoError(t, err)
	assert.Len(t, solves, 2)

	last, err := repo.GetLast()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, ids[2], last.SolveID)
}

func TestDeleteAndCount(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	id, err := repo.Create(&Solve{Scramble: "R", Solution: "R'"})
	require.NoError(t, err)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.Delete(id))

	count, err = repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}
