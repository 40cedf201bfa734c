package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okatru/prodmatch/pkg/version"
)

// execute runs the CLI with fresh flag state and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgFile = ""
	catalogPath = ""
	synonymsPath = ""
	logLevel = ""
	noColor = false
	debugMode = false

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writeCatalogCSV writes a small catalog and returns its path.
func writeCatalogCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.csv")
	content := "id,code,name,barcode\n" +
		"1,1001,Matrix SoColor 6RC,4607001234567\n" +
		"2,1002,Loreal 6RC,4607009876543\n" +
		"3,7,Шампунь 7 трав,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersionCmd_Short(t *testing.T) {
	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", out)
}

func TestVersionCmd_JSON(t *testing.T) {
	out, err := execute(t, "version", "--json")
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, version.Version, info["version"])
}

func TestSearchCmd_RequiresCatalog(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	_, err := execute(t, "search", "matrix")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no catalog configured")
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	catalog := writeCatalogCSV(t)

	out, err := execute(t, "search", "socolor", "--catalog", catalog, "--format", "json", "--no-color")
	require.NoError(t, err)

	var results []struct {
		Entry struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"entry"`
		Score int `json:"score"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.NotEmpty(t, results)
	assert.Equal(t, int64(1), results[0].Entry.ID)
	assert.Equal(t, "Matrix SoColor 6RC", results[0].Entry.Name)
}

func TestSearchCmd_SynonymFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	catalog := writeCatalogCSV(t)

	synPath := filepath.Join(t.TempDir(), "synonyms.yaml")
	require.NoError(t, os.WriteFile(synPath, []byte("matrix: socolor\n"), 0o644))

	out, err := execute(t, "search", "matrix 6rc",
		"--catalog", catalog, "--synonyms", synPath, "--format", "json")
	require.NoError(t, err)

	var results []struct {
		Entry struct {
			ID int64 `json:"id"`
		} `json:"entry"`
		Score int `json:"score"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.NotEmpty(t, results)
	assert.Equal(t, int64(1), results[0].Entry.ID)
}

func TestBatchCmd_FileInput(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	catalog := writeCatalogCSV(t)

	queryFile := filepath.Join(t.TempDir(), "queries.txt")
	require.NoError(t, os.WriteFile(queryFile, []byte("socolor 6rc\n\nzzzznotfound\n"), 0o644))

	out, err := execute(t, "batch", queryFile, "--catalog", catalog, "--format", "json")
	require.NoError(t, err)

	var matches []*struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &matches))
	require.Len(t, matches, 3)
	require.NotNil(t, matches[0])
	assert.Equal(t, int64(1), matches[0].ID)
	assert.Nil(t, matches[1])
	assert.Nil(t, matches[2])
}

func TestIDsCmd(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	catalog := writeCatalogCSV(t)

	out, err := execute(t, "ids", "шампунь", "--catalog", catalog, "--format", "json")
	require.NoError(t, err)

	var ids []int64
	require.NoError(t, json.Unmarshal([]byte(out), &ids))
	assert.Equal(t, []int64{3}, ids)
}

func TestSynonymsCmd_Check(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	synPath := filepath.Join(t.TempDir(), "synonyms.yaml")
	require.NoError(t, os.WriteFile(synPath, []byte("matrix: [socolor, super sync]\n"), 0o644))

	out, err := execute(t, "synonyms", "--synonyms", synPath, "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "ok, 1 mappings")
}

func TestSynonymsCmd_List(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	synPath := filepath.Join(t.TempDir(), "synonyms.yaml")
	require.NoError(t, os.WriteFile(synPath, []byte("matrix: socolor\nбабки: деньги\n"), 0o644))

	out, err := execute(t, "synonyms", "--synonyms", synPath)
	require.NoError(t, err)
	assert.Contains(t, out, "matrix: socolor")
	assert.Contains(t, out, "бабки: деньги")
}
