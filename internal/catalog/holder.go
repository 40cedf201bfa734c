package catalog

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Loader produces a fresh snapshot from some backing source.
type Loader interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// Holder owns the current snapshot and swaps it atomically on reload.
// In-flight queries keep whatever snapshot they acquired; a failed
// reload leaves the previous snapshot in place.
type Holder struct {
	loader  Loader
	logger  *slog.Logger
	current atomic.Pointer[Snapshot]
	gen     atomic.Uint64
}

// NewHolder creates a holder around the given loader. The holder starts
// empty; call Reload to populate it.
func NewHolder(loader Loader, logger *slog.Logger) *Holder {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Holder{loader: loader, logger: logger}
	h.current.Store(NewSnapshot(nil, false))
	return h
}

// Reload loads a replacement snapshot and publishes it. On load failure
// the previous snapshot stays current and the error is returned for the
// caller to log or surface; nothing observed a torn state.
func (h *Holder) Reload(ctx context.Context) error {
	snap, err := h.loader.Load(ctx)
	if err != nil {
		h.logger.Warn("catalog reload failed, keeping previous snapshot",
			"error", err, "generation", h.gen.Load())
		return err
	}
	snap.generation = h.gen.Add(1)
	h.current.Store(snap)
	h.logger.Info("catalog reloaded",
		"entries", snap.Len(), "generation", snap.generation)
	return nil
}

// Current returns the published snapshot without filtering.
func (h *Holder) Current() *Snapshot {
	return h.current.Load()
}

// Snapshot acquires the current snapshot, pre-filtered by producer ids
// when a filter is given. This is the acquire-once point for a query.
func (h *Holder) Snapshot(producerIDs []int64) *Snapshot {
	snap := h.current.Load()
	if len(producerIDs) == 0 {
		return snap
	}
	set := make(map[int64]struct{}, len(producerIDs))
	for _, id := range producerIDs {
		set[id] = struct{}{}
	}
	return snap.FilterProducers(set)
}
