package catalog

import (
	"context"
	"database/sql"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/okatru/prodmatch/internal/errors"
)

// excludedNameMarkers flags sample and advert rows that must never be
// searchable. The upstream catalog marks them in the name field.
var excludedNameMarkers = []string{"Образец", "ОБРАЗЕЦ", "РЕКЛАМА"}

const sqliteSelect = `SELECT id, code, name, barcode, producer_id FROM products ORDER BY id`

// sqliteSelectNoProducer is the fallback for degraded catalogs exported
// without a producer column.
const sqliteSelectNoProducer = `SELECT id, code, name, barcode FROM products ORDER BY id`

// SQLiteLoader loads the catalog from a SQLite database file.
type SQLiteLoader struct {
	path string
}

// Verify interface implementation at compile time.
var _ Loader = (*SQLiteLoader)(nil)

// NewSQLiteLoader creates a loader for the given database path.
func NewSQLiteLoader(path string) *SQLiteLoader {
	return &SQLiteLoader{path: path}
}

// Load reads all product rows into a fresh snapshot. The database is
// opened read-only so a loader can never corrupt the catalog.
func (l *SQLiteLoader) Load(ctx context.Context) (*Snapshot, error) {
	db, err := sql.Open("sqlite", l.path+"?mode=ro")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCatalogOpen, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCatalogOpen, err)
	}

	hasProducer := true
	rows, err := db.QueryContext(ctx, sqliteSelect)
	if err != nil {
		// Degraded export without producer_id: fall back and disable
		// producer filtering instead of failing the whole load.
		hasProducer = false
		rows, err = db.QueryContext(ctx, sqliteSelectNoProducer)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeCatalogQuery, err)
		}
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var code, name, barcode sql.NullString
		var producer sql.NullInt64
		if hasProducer {
			err = rows.Scan(&e.ID, &code, &name, &barcode, &producer)
		} else {
			err = rows.Scan(&e.ID, &code, &name, &barcode)
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeCatalogCorrupt, err)
		}
		e.Code = code.String
		e.Name = name.String
		e.Barcode = barcode.String
		e.ProducerID = producer.Int64
		if excludedName(e.Name) {
			continue
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCatalogQuery, err)
	}

	return NewSnapshot(entries, hasProducer), nil
}

// excludedName reports whether a row is a sample/advert placeholder.
func excludedName(name string) bool {
	for _, marker := range excludedNameMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}
