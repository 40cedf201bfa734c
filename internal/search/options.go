package search

// Options holds the empirically tuned constants of the pipeline. The
// defaults come straight from production tuning; treat them as data, not
// as values to re-derive.
type Options struct {
	// FuzzyCutoff is the minimum similarity (0-100) for an approximate
	// match on queries of one or two tokens.
	FuzzyCutoff int

	// FuzzyCutoffLong raises the floor for queries of three or more
	// tokens, where order-sensitive comparison is used.
	FuzzyCutoffLong int

	// WholeWordScore is the flat score for a strict whole-word match.
	WholeWordScore int

	// TopShadeScore is the flat score for a top-shade phrase match on a
	// short numeric query.
	TopShadeScore int

	// NumericScore is the flat score for the numeric branch
	// (code/name/barcode containment).
	NumericScore int

	// WordBoost is added per distinct query word found in a name.
	WordBoost int

	// NumberBoost is added per distinct query number found in a name.
	NumberBoost int

	// PhraseBoost is added when the whole normalized query appears
	// verbatim in a name.
	PhraseBoost int

	// SecondaryBoost is added when the optional disambiguating term
	// appears in a name.
	SecondaryBoost int

	// WordPenalty is subtracted per missing query word, applied only
	// when the query has at least two words.
	WordPenalty int

	// NumberPenalty is subtracted per missing query number.
	NumberPenalty int

	// MaxResults caps the ranked sequence returned by Search.
	MaxResults int

	// IDLimit caps SearchIDs output for high-volume callers.
	IDLimit int

	// CacheSize is the LRU result cache capacity (entries).
	CacheSize int

	// BatchConcurrency bounds parallel evaluation in SearchBatch.
	BatchConcurrency int
}

// DefaultOptions returns the production-tuned defaults.
func DefaultOptions() Options {
	return Options{
		FuzzyCutoff:      40,
		FuzzyCutoffLong:  55,
		WholeWordScore:   100,
		TopShadeScore:    101,
		NumericScore:     120,
		WordBoost:        5,
		NumberBoost:      20,
		PhraseBoost:      15,
		SecondaryBoost:   15,
		WordPenalty:      3,
		NumberPenalty:    10,
		MaxResults:       300,
		IDLimit:          96,
		CacheSize:        512,
		BatchConcurrency: 8,
	}
}

// withDefaults fills zero fields from DefaultOptions so a partially
// populated config cannot disable whole pipeline stages by accident.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.FuzzyCutoff <= 0 {
		o.FuzzyCutoff = def.FuzzyCutoff
	}
	if o.FuzzyCutoffLong <= 0 {
		o.FuzzyCutoffLong = def.FuzzyCutoffLong
	}
	if o.WholeWordScore <= 0 {
		o.WholeWordScore = def.WholeWordScore
	}
	if o.TopShadeScore <= 0 {
		o.TopShadeScore = def.TopShadeScore
	}
	if o.NumericScore <= 0 {
		o.NumericScore = def.NumericScore
	}
	if o.WordBoost <= 0 {
		o.WordBoost = def.WordBoost
	}
	if o.NumberBoost <= 0 {
		o.NumberBoost = def.NumberBoost
	}
	if o.PhraseBoost <= 0 {
		o.PhraseBoost = def.PhraseBoost
	}
	if o.SecondaryBoost <= 0 {
		o.SecondaryBoost = def.SecondaryBoost
	}
	if o.WordPenalty <= 0 {
		o.WordPenalty = def.WordPenalty
	}
	if o.NumberPenalty <= 0 {
		o.NumberPenalty = def.NumberPenalty
	}
	if o.MaxResults <= 0 {
		o.MaxResults = def.MaxResults
	}
	if o.IDLimit <= 0 {
		o.IDLimit = def.IDLimit
	}
	if o.CacheSize <= 0 {
		o.CacheSize = def.CacheSize
	}
	if o.BatchConcurrency <= 0 {
		o.BatchConcurrency = def.BatchConcurrency
	}
	return o
}
