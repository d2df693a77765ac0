package db

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maloquacious/flatdb/internal/store"
	"github.com/maloquacious/flatdb/internal/store/jsonfile"
)

func openMem(t *testing.T) (*DB, *memStore) {
	t.Helper()
	m := &memStore{}
	d, err := Open(m)
	require.NoError(t, err)
	return d, m
}

func TestOpenEmptyStore(t *testing.T) {
	d, _ := openMem(t)

	names, err := d.Tables()
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.False(t, d.Dirty())
}

func TestOpenLoadFailure(t *testing.T) {
	boom := errors.New("disk gone")
	_, err := Open(&memStore{loadErr: boom})
	assert.ErrorIs(t, err, boom)
}

func TestCreateTable(t *testing.T) {
	d, _ := openMem(t)

	require.NoError(t, d.CreateTable("customers"))
	assert.True(t, d.Dirty())

	names, err := d.Tables()
	require.NoError(t, err)
	assert.Equal(t, []string{"customers"}, names)

	err = d.CreateTable("customers")
	assert.ErrorIs(t, err, ErrTableExists)
}

func TestDropTableAndRecreate(t *testing.T) {
	d, _ := openMem(t)

	require.NoError(t, d.CreateTable("orders"))
	_, err := d.Insert("orders", "item #1")
	require.NoError(t, err)

	require.NoError(t, d.DropTable("orders"))
	_, err = d.Read("orders", 0)
	assert.ErrorIs(t, err, ErrTableNotFound)

	// Recreating yields a table with zero rows, whatever it held before.
	require.NoError(t, d.CreateTable("orders"))
	values, err := d.Read("orders", 0)
	require.NoError(t, err)
	assert.Empty(t, values)

	assert.ErrorIs(t, d.DropTable("nope"), ErrTableNotFound)
}

func TestInsertReadOrder(t *testing.T) {
	d, _ := openMem(t)
	require.NoError(t, d.CreateTable("t"))

	want := []any{"v1", "v2", "v3"}
	for _, v := range want {
		_, err := d.Insert("t", v)
		require.NoError(t, err)
	}

	values, err := d.Read("t", 0)
	require.NoError(t, err)
	assert.Equal(t, want, values)

	_, err = d.Insert("nope", "v")
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestReadLimits(t *testing.T) {
	d, _ := openMem(t)
	require.NoError(t, d.CreateTable("t"))
	for _, v := range []string{"a", "b", "c"} {
		_, err := d.Insert("t", v)
		require.NoError(t, err)
	}

	tests := []struct {
		name  string
		limit int
		want  []any
	}{
		{name: "all", limit: 0, want: []any{"a", "b", "c"}},
		{name: "first two", limit: 2, want: []any{"a", "b"}},
		{name: "last one", limit: -1, want: []any{"c"}},
		{name: "more than held", limit: 7, want: []any{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := d.Read("t", tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, values)
		})
	}
}

func TestSelectIDsTargetRows(t *testing.T) {
	d, _ := openMem(t)
	require.NoError(t, d.CreateTable("t"))
	for _, v := range []string{"a", "b", "c"} {
		_, err := d.Insert("t", v)
		require.NoError(t, err)
	}

	rows, err := d.Select("t", 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i := 1; i < len(rows); i++ {
		assert.Greater(t, rows[i].ID, rows[i-1].ID)
	}

	// Every id returned by Select is accepted by Update and Delete.
	require.NoError(t, d.Update("t", rows[1].ID, "B"))
	require.NoError(t, d.Delete("t", rows[0].ID))

	values, err := d.Read("t", 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"B", "c"}, values)
}

func TestDeleteSemantics(t *testing.T) {
	d, _ := openMem(t)
	require.NoError(t, d.CreateTable("t"))
	for _, v := range []string{"a", "b", "c"} {
		_, err := d.Insert("t", v)
		require.NoError(t, err)
	}

	require.NoError(t, d.Delete("t", 1))

	rows, err := d.Select("t", 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.NotEqual(t, int64(1), r.ID)
	}
	assert.Equal(t, "a", rows[0].Value)
	assert.Equal(t, "c", rows[1].Value)

	// "Table missing" and "row missing" are distinct failures.
	assert.ErrorIs(t, d.Delete("nope", 0), ErrTableNotFound)
	assert.ErrorIs(t, d.Delete("t", 1), ErrRowNotFound)
}

func TestUpdateSemantics(t *testing.T) {
	d, _ := openMem(t)
	require.NoError(t, d.CreateTable("t"))
	for _, v := range []string{"a", "b", "c"} {
		_, err := d.Insert("t", v)
		require.NoError(t, err)
	}

	before, err := d.Select("t", 0)
	require.NoError(t, err)

	require.NoError(t, d.Update("t", 1, "B"))

	after, err := d.Select("t", 0)
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i := range after {
		assert.Equal(t, before[i].ID, after[i].ID)
	}
	assert.Equal(t, "a", after[0].Value)
	assert.Equal(t, "B", after[1].Value)
	assert.Equal(t, "c", after[2].Value)

	assert.ErrorIs(t, d.Update("nope", 0, "x"), ErrTableNotFound)
	assert.ErrorIs(t, d.Update("t", 99, "x"), ErrRowNotFound)
}

func TestDirtyFlag(t *testing.T) {
	d, m := openMem(t)
	assert.False(t, d.Dirty())

	require.NoError(t, d.CreateTable("t"))
	assert.True(t, d.Dirty())

	require.NoError(t, d.Save())
	assert.False(t, d.Dirty())
	assert.Equal(t, 1, m.saves)

	// Failed operations leave the store clean.
	assert.Error(t, d.Delete("t", 0))
	assert.Error(t, d.CreateTable("t"))
	assert.Error(t, d.Update("t", 0, "x"))
	assert.False(t, d.Dirty())

	_, err := d.Insert("t", "a")
	require.NoError(t, err)
	assert.True(t, d.Dirty())
}

func TestSaveDoesNotClose(t *testing.T) {
	d, m := openMem(t)
	require.NoError(t, d.CreateTable("t"))
	require.NoError(t, d.Save())
	assert.False(t, m.closed)

	_, err := d.Insert("t", "still open")
	require.NoError(t, err)
}

func TestSaveWritesValuesWithoutIDs(t *testing.T) {
	d, m := openMem(t)
	require.NoError(t, d.CreateTable("t"))
	_, err := d.Insert("t", "a")
	require.NoError(t, err)
	_, err = d.Insert("t", "b")
	require.NoError(t, err)

	require.NoError(t, d.Save())
	assert.Equal(t, store.Document{"t": {"a", "b"}}, m.doc)
}

func TestClosedGating(t *testing.T) {
	d, m := openMem(t)
	require.NoError(t, d.CreateTable("t"))
	require.NoError(t, d.Close())
	require.True(t, m.closed)
	savesBefore := m.saves

	assert.ErrorIs(t, d.CreateTable("u"), ErrClosed)
	assert.ErrorIs(t, d.DropTable("t"), ErrClosed)
	_, err := d.Tables()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = d.Insert("t", "v")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, d.Delete("t", 0), ErrClosed)
	assert.ErrorIs(t, d.Update("t", 0, "v"), ErrClosed)
	_, err = d.Read("t", 0)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = d.Select("t", 0)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, d.Save(), ErrClosed)

	// No state change reached the backend.
	assert.Equal(t, savesBefore, m.saves)
}

func TestCloseIsIdempotent(t *testing.T) {
	d, m := openMem(t)
	require.NoError(t, d.CreateTable("t"))
	require.NoError(t, d.Close())
	require.NoError(t, d.Close())
	assert.Equal(t, 1, m.saves)
}

func TestCleanStoreIsNotRewritten(t *testing.T) {
	m := &memStore{doc: store.Document{"t": {"a"}}}
	d, err := Open(m)
	require.NoError(t, err)

	// Reads and explicit saves on a clean store never touch the backend.
	_, err = d.Read("t", 0)
	require.NoError(t, err)
	_, err = d.Select("t", -1)
	require.NoError(t, err)
	require.NoError(t, d.Save())
	assert.Equal(t, 0, m.saves)

	require.NoError(t, d.Close())
	assert.Equal(t, 0, m.saves)
	assert.True(t, m.closed)
}

func TestCloseSaveFailureLeavesOpen(t *testing.T) {
	boom := errors.New("disk full")
	m := &memStore{saveErr: boom}
	d, err := Open(m)
	require.NoError(t, err)
	require.NoError(t, d.CreateTable("t"))

	err = d.Close()
	assert.ErrorIs(t, err, boom)
	assert.False(t, m.closed)
	assert.True(t, d.Dirty())

	// The store is still open: once the backend recovers, Close succeeds.
	m.saveErr = nil
	require.NoError(t, d.Close())
	assert.True(t, m.closed)
}

func TestCloseReleaseFailureLeavesOpen(t *testing.T) {
	boom := errors.New("release failed")
	m := &memStore{closeErr: boom}
	d, err := Open(m)
	require.NoError(t, err)
	require.NoError(t, d.CreateTable("t"))

	err = d.Close()
	assert.ErrorIs(t, err, boom)

	// Data was saved; the handle failure is reported, not masked as closed.
	assert.Equal(t, 1, m.saves)
	_, err = d.Tables()
	assert.NoError(t, err)
}

func TestOrdersScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.fdb")
	st, err := jsonfile.Create(path)
	require.NoError(t, err)
	d, err := Open(st)
	require.NoError(t, err)

	require.NoError(t, d.CreateTable("orders"))

	id, err := d.Insert("orders", "item#1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), id)

	id, err = d.Insert("orders", "item#2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	values, err := d.Read("orders", -1)
	require.NoError(t, err)
	assert.Equal(t, []any{"item#2"}, values)

	require.NoError(t, d.Delete("orders", 0))

	values, err = d.Read("orders", 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"item#2"}, values)

	require.NoError(t, d.Close())
}

func TestRoundTripRenumbersIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.fdb")
	st, err := jsonfile.Create(path)
	require.NoError(t, err)
	d, err := Open(st)
	require.NoError(t, err)

	require.NoError(t, d.CreateTable("t"))
	for _, v := range []any{"a", "b", map[string]any{"qty": float64(2)}} {
		_, err := d.Insert("t", v)
		require.NoError(t, err)
	}
	require.NoError(t, d.Delete("t", 0))
	require.NoError(t, d.Close())

	st2, err := jsonfile.Open(path)
	require.NoError(t, err)
	d2, err := Open(st2)
	require.NoError(t, err)
	defer d2.Close()

	// Values and order survive; ids are recomputed positionally from 0.
	rows, err := d2.Select("t", 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(0), rows[0].ID)
	assert.Equal(t, "b", rows[0].Value)
	assert.Equal(t, int64(1), rows[1].ID)
	assert.Equal(t, map[string]any{"qty": float64(2)}, rows[1].Value)
}

func TestConnectMissingPathIsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.fdb")
	st, err := jsonfile.Open(path)
	require.NoError(t, err)
	d, err := Open(st)
	require.NoError(t, err)
	defer d.Close()

	names, err := d.Tables()
	require.NoError(t, err)
	assert.Empty(t, names)
}
