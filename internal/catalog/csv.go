package catalog

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/okatru/prodmatch/internal/errors"
)

// CSVLoader loads the catalog from a flat snapshot file with a header
// row. Column order is free; recognized headers are id, code, name,
// barcode and producer_id (producerId accepted as an alias). A file
// without a producer column loads fine and disables producer filtering.
type CSVLoader struct {
	path string
}

var _ Loader = (*CSVLoader)(nil)

// NewCSVLoader creates a loader for the given file path.
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

// Load reads the whole file into a fresh snapshot.
func (l *CSVLoader) Load(ctx context.Context) (*Snapshot, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCatalogOpen, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCatalogCorrupt, err)
	}
	cols := columnIndex(header)
	idCol, ok := cols["id"]
	if !ok {
		return nil, errors.New(errors.ErrCodeCatalogCorrupt, "csv catalog has no id column", nil)
	}
	nameCol, ok := cols["name"]
	if !ok {
		return nil, errors.New(errors.ErrCodeCatalogCorrupt, "csv catalog has no name column", nil)
	}
	codeCol := colOrMissing(cols, "code")
	barcodeCol := colOrMissing(cols, "barcode")
	producerCol, hasProducer := cols["producer_id"]

	var entries []Entry
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeCatalogCorrupt, err)
		}

		id, err := strconv.ParseInt(field(record, idCol), 10, 64)
		if err != nil {
			// Rows with a malformed id are unaddressable; skip them
			// rather than failing the whole load.
			continue
		}
		e := Entry{
			ID:      id,
			Code:    field(record, codeCol),
			Name:    field(record, nameCol),
			Barcode: field(record, barcodeCol),
		}
		if hasProducer {
			e.ProducerID, _ = strconv.ParseInt(field(record, producerCol), 10, 64)
		}
		if excludedName(e.Name) {
			continue
		}
		entries = append(entries, e)
	}

	return NewSnapshot(entries, hasProducer), nil
}

// columnIndex maps lowercased header names to positions.
func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if name == "producerid" {
			name = "producer_id"
		}
		cols[name] = i
	}
	return cols
}

// colOrMissing returns the column position or -1 when absent.
func colOrMissing(cols map[string]int, name string) int {
	if i, ok := cols[name]; ok {
		return i
	}
	return -1
}

// field returns record[i] or "" when the column is absent.
func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
