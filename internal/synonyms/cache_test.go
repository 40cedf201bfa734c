package synonyms

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource lets tests drive every marker/read outcome directly.
type fakeSource struct {
	version    string
	versionErr error
	raw        map[string]any
	readErr    error
	reads      int
}

func (s *fakeSource) Version() (string, error) { return s.version, s.versionErr }

func (s *fakeSource) Read() (map[string]any, error) {
	s.reads++
	return s.raw, s.readErr
}

func TestCache_RefreshLoadsOnFirstAccess(t *testing.T) {
	src := &fakeSource{version: "v1", raw: map[string]any{"matrix": "socolor"}}
	c := NewCache(src, nil)

	table := c.Table()
	assert.Equal(t, []string{"socolor"}, table["matrix"])
	assert.Equal(t, 1, src.reads)
}

func TestCache_UnchangedMarkerSkipsRead(t *testing.T) {
	src := &fakeSource{version: "v1", raw: map[string]any{"matrix": "socolor"}}
	c := NewCache(src, nil)

	c.Refresh()
	c.Refresh()
	c.Refresh()
	assert.Equal(t, 1, src.reads)
}

func TestCache_ChangedMarkerReplacesTable(t *testing.T) {
	src := &fakeSource{version: "v1", raw: map[string]any{"matrix": "socolor"}}
	c := NewCache(src, nil)
	c.Refresh()

	src.version = "v2"
	src.raw = map[string]any{"shampoo": "шампунь"}
	table := c.Refresh()

	assert.NotContains(t, table, "matrix")
	assert.Equal(t, []string{"шампунь"}, table["shampoo"])
}

func TestCache_ReadFailureKeepsPreviousTable(t *testing.T) {
	src := &fakeSource{version: "v1", raw: map[string]any{"matrix": "socolor"}}
	c := NewCache(src, nil)
	c.Refresh()

	src.version = "v2"
	src.readErr = errors.New("torn file")
	table := c.Refresh()

	assert.Equal(t, []string{"socolor"}, table["matrix"])
}

func TestCache_VersionProbeFailureKeepsPreviousTable(t *testing.T) {
	src := &fakeSource{version: "v1", raw: map[string]any{"matrix": "socolor"}}
	c := NewCache(src, nil)
	c.Refresh()

	src.versionErr = errors.New("stat: permission denied")
	table := c.Refresh()
	assert.Equal(t, []string{"socolor"}, table["matrix"])
}

func TestCache_SourceRemovedResetsTable(t *testing.T) {
	src := &fakeSource{version: "v1", raw: map[string]any{"matrix": "socolor"}}
	c := NewCache(src, nil)
	c.Refresh()

	src.versionErr = fs.ErrNotExist
	table := c.Refresh()
	assert.Empty(t, table)
	assert.Empty(t, c.Version())

	// Recreated source loads again even with the original marker.
	src.versionErr = nil
	table = c.Refresh()
	assert.Equal(t, []string{"socolor"}, table["matrix"])
}

func TestCache_ConcurrentRefreshIsSafe(t *testing.T) {
	src := &fakeSource{version: "v1", raw: map[string]any{"matrix": "socolor"}}
	c := NewCache(src, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				table := c.Table()
				_ = table["matrix"]
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, src.reads)
}

func TestFileSource_ReadJSONAndYAML(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "synonyms.json")
	require.NoError(t, os.WriteFile(jsonPath,
		[]byte(`{"matrix": ["socolor", "super sync"], "бабки": "деньги"}`), 0o644))

	raw, err := (&FileSource{Path: jsonPath}).Read()
	require.NoError(t, err)
	table := parseRaw(raw)
	assert.Equal(t, []string{"socolor", "super sync"}, table["matrix"])
	assert.Equal(t, []string{"деньги"}, table["бабки"])

	yamlPath := filepath.Join(dir, "synonyms.yaml")
	require.NoError(t, os.WriteFile(yamlPath,
		[]byte("matrix:\n  - socolor\nshampoo: шампунь\n"), 0o644))

	raw, err = (&FileSource{Path: yamlPath}).Read()
	require.NoError(t, err)
	table = parseRaw(raw)
	assert.Equal(t, []string{"socolor"}, table["matrix"])
	assert.Equal(t, []string{"шампунь"}, table["shampoo"])
}

func TestFileSource_VersionMissingFile(t *testing.T) {
	_, err := (&FileSource{Path: filepath.Join(t.TempDir(), "nope.json")}).Version()
	require.ErrorIs(t, err, fs.ErrNotExist)
}
