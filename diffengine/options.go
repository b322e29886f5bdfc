// Package diffengine implements the matching-based diff: it flattens two
// capture trees, proposes candidate pairs pruned and scored by weighted
// node similarity, accepts a greedy (not optimal) matching, classifies
// per-pair and unmatched-node changes, ranks them by affected-node area,
// and emits a summary carrying both fingerprint-equality flags.
package diffengine

// Options controls matching thresholds and output shaping. Zero-value
// Options is not safe to use directly — call DefaultOptions and override
// individual fields.
type Options struct {
	IncludeText     bool
	IncludeName     bool
	MatchThreshold  float64
	TopChangesLimit int
	MoveThreshold   float64
	ResizeThreshold float64
}

// DefaultOptions returns the design's defaults: IncludeText and
// IncludeName set, a 0.5 match threshold, the top 10 changes ranked, and
// 1% of viewport move/resize thresholds. Only IncludeText affects the
// diff (it gates text_changed); no part of Diff reads IncludeName.
func DefaultOptions() Options {
	return Options{
		IncludeText:     true,
		IncludeName:     true,
		MatchThreshold:  0.5,
		TopChangesLimit: 10,
		MoveThreshold:   0.01,
		ResizeThreshold: 0.01,
	}
}

func optionsOrDefault(o *Options) Options {
	if o == nil {
		return DefaultOptions()
	}
	return *o
}
