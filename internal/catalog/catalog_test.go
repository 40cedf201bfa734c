package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []Entry {
	return []Entry{
		{ID: 1, Code: "1001", Name: "Matrix SoColor 6RC", Barcode: "4607001234567", ProducerID: 10},
		{ID: 2, Code: "1002", Name: "Loreal 6RC", Barcode: "4607009876543", ProducerID: 20},
		{ID: 3, Code: "7", Name: "Шампунь для волос", Barcode: "", ProducerID: 10},
	}
}

func TestSnapshot_FilterProducers(t *testing.T) {
	snap := NewSnapshot(testEntries(), true)

	filtered := snap.FilterProducers(map[int64]struct{}{10: {}})
	require.Equal(t, 2, filtered.Len())
	for _, e := range filtered.Entries() {
		assert.Equal(t, int64(10), e.ProducerID)
	}
}

func TestSnapshot_FilterProducers_EmptyFilterReturnsSame(t *testing.T) {
	snap := NewSnapshot(testEntries(), true)
	assert.Same(t, snap, snap.FilterProducers(nil))
}

func TestSnapshot_FilterProducers_NoProducerColumnIsNoop(t *testing.T) {
	// Degraded snapshot without a producer column: the filter must be
	// skipped, not fail or empty the result.
	snap := NewSnapshot(testEntries(), false)
	filtered := snap.FilterProducers(map[int64]struct{}{999: {}})
	assert.Equal(t, snap.Len(), filtered.Len())
}

type stubLoader struct {
	snap *Snapshot
	err  error
}

func (s *stubLoader) Load(ctx context.Context) (*Snapshot, error) {
	return s.snap, s.err
}

func TestHolder_ReloadPublishesNewGeneration(t *testing.T) {
	loader := &stubLoader{snap: NewSnapshot(testEntries(), true)}
	h := NewHolder(loader, nil)

	require.NoError(t, h.Reload(context.Background()))
	first := h.Current()
	assert.Equal(t, uint64(1), first.Generation())

	loader.snap = NewSnapshot(testEntries()[:1], true)
	require.NoError(t, h.Reload(context.Background()))
	second := h.Current()
	assert.Equal(t, uint64(2), second.Generation())
	assert.Equal(t, 1, second.Len())

	// The first snapshot is untouched by the reload.
	assert.Equal(t, 3, first.Len())
}

func TestHolder_FailedReloadKeepsPrevious(t *testing.T) {
	loader := &stubLoader{snap: NewSnapshot(testEntries(), true)}
	h := NewHolder(loader, nil)
	require.NoError(t, h.Reload(context.Background()))

	loader.snap = nil
	loader.err = os.ErrNotExist
	require.Error(t, h.Reload(context.Background()))

	assert.Equal(t, 3, h.Current().Len())
	assert.Equal(t, uint64(1), h.Current().Generation())
}

func TestCSVLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.csv")
	data := "id,code,name,barcode,producerId\n" +
		"1,1001,Matrix SoColor 6RC,4607001234567,10\n" +
		"2,1002,Loreal 6RC,4607009876543,20\n" +
		"3,1003,Образец краски,,10\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	snap, err := NewCSVLoader(path).Load(context.Background())
	require.NoError(t, err)

	// The sample row is filtered at load time.
	require.Equal(t, 2, snap.Len())
	assert.True(t, snap.HasProducer())
	assert.Equal(t, "Matrix SoColor 6RC", snap.Entries()[0].Name)
	assert.Equal(t, int64(20), snap.Entries()[1].ProducerID)
}

func TestCSVLoader_Load_MissingProducerColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.csv")
	data := "id,name\n1,Matrix SoColor 6RC\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	snap, err := NewCSVLoader(path).Load(context.Background())
	require.NoError(t, err)
	assert.False(t, snap.HasProducer())
	require.Equal(t, 1, snap.Len())
	assert.Empty(t, snap.Entries()[0].Code)
}

func TestCSVLoader_Load_MissingFile(t *testing.T) {
	_, err := NewCSVLoader(filepath.Join(t.TempDir(), "nope.csv")).Load(context.Background())
	require.Error(t, err)
}
