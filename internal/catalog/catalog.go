// Package catalog provides the immutable product snapshot the search
// pipeline matches against. Snapshots are replaced wholesale on reload;
// a query acquires one snapshot and sees it unchanged for its whole
// evaluation.
package catalog

// Entry is a single product row. Fields mirror the upstream catalog
// table; ProducerID is zero when the source has no producer column.
type Entry struct {
	ID         int64  `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Barcode    string `json:"barcode"`
	ProducerID int64  `json:"producerId,omitempty"`
}

// Snapshot is an ordered, read-only view of the catalog.
type Snapshot struct {
	entries     []Entry
	generation  uint64
	hasProducer bool
}

// NewSnapshot builds a snapshot over the given entries. hasProducer
// reports whether the source carried a producer column; when false,
// producer filtering is a no-op rather than an error.
func NewSnapshot(entries []Entry, hasProducer bool) *Snapshot {
	return &Snapshot{entries: entries, hasProducer: hasProducer}
}

// Entries returns the underlying entry slice. Callers must not mutate it.
func (s *Snapshot) Entries() []Entry {
	if s == nil {
		return nil
	}
	return s.entries
}

// Len returns the number of entries.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Generation identifies which reload produced this snapshot. Two queries
// observing the same generation saw byte-identical catalogs.
func (s *Snapshot) Generation() uint64 {
	if s == nil {
		return 0
	}
	return s.generation
}

// HasProducer reports whether producer filtering is meaningful for this
// snapshot.
func (s *Snapshot) HasProducer() bool {
	return s != nil && s.hasProducer
}

// FilterProducers returns a snapshot restricted to the given producer
// ids. An empty filter, or a snapshot loaded without a producer column,
// returns the receiver unchanged.
func (s *Snapshot) FilterProducers(ids map[int64]struct{}) *Snapshot {
	if s == nil || len(ids) == 0 || !s.hasProducer {
		return s
	}
	filtered := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if _, ok := ids[e.ProducerID]; ok {
			filtered = append(filtered, e)
		}
	}
	return &Snapshot{
		entries:     filtered,
		generation:  s.generation,
		hasProducer: true,
	}
}
