package validate

// Limits bounds what validateCapture/parseCapture will accept, following
// the teacher's options-struct-with-Default-constructor convention
// (core/types.ValidationConfig / DefaultValidationConfig).
type Limits struct {
	// MaxNodes caps the total node count across the whole tree.
	MaxNodes int
	// MaxDepth caps tree depth (root is depth 0). This is the authoritative
	// parse-time ceiling; ir.MaxDepthHint is only a capture-time
	// recommendation and is not enforced here.
	MaxDepth int
	// MaxStringLength is reserved for future string-length enforcement;
	// current validation does not check it.
	MaxStringLength int
}

// DefaultLimits returns the defaults from the design: 10,000 nodes, depth
// 50, and a reserved 10,000-character string cap.
func DefaultLimits() Limits {
	return Limits{
		MaxNodes:        10_000,
		MaxDepth:        50,
		MaxStringLength: 10_000,
	}
}

func limitsOrDefault(l *Limits) Limits {
	if l == nil {
		return DefaultLimits()
	}
	return *l
}
