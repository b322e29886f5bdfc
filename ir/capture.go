package ir

// CurrentSchemaVersion is the version this package produces.
const CurrentSchemaVersion = "0.1"

// SupportedSchemaVersions is the closed set of versions a validator will
// accept. Patch bumps are additive; minor bumps may add required fields
// with defaults; major bumps are breaking. Today it holds a single member.
var SupportedSchemaVersions = map[string]bool{
	"0.1": true,
}

// IsSupportedSchemaVersion reports whether v is a string member of
// SupportedSchemaVersions.
func IsSupportedSchemaVersion(v string) bool {
	return SupportedSchemaVersions[v]
}

// Capture-time quantization and hinting constants (spec §3).
const (
	// BBoxQuantStep is the rounding grid applied to bbox components before
	// hashing and sibling ordering.
	BBoxQuantStep = 0.001

	// CollapseTolerance is the distance under which two boxes are treated
	// as visually coincident by consumers that merge near-duplicate nodes.
	CollapseTolerance = 0.002

	// MaxDepthHint is a capture-time recommendation for how deep a capture
	// tool should nest nodes. It is not the parser's enforced ceiling; see
	// validate.DefaultLimits().MaxDepth for that.
	MaxDepthHint = 8

	// MaxChildrenHint is a capture-time recommendation for sibling fan-out.
	MaxChildrenHint = 200
)

// Viewport describes the page's rendering surface at capture time.
type Viewport struct {
	WPx       float64  `json:"w_px"`
	HPx       float64  `json:"h_px"`
	Aspect    float64  `json:"aspect"`
	ScrollY01 *float64 `json:"scroll_y01,omitempty"`
}

// Compiler identifies the tool that produced a capture.
type Compiler struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	OptionsHash string `json:"options_hash"`
}

// Capture is a full serialized snapshot of a web page as IR.
//
// Captures are immutable values in the sense that no operation in this
// module other than fingerprint.AssignNodeIDs mutates one; diffs and
// fingerprints are pure functions of their inputs.
type Capture struct {
	Version     string   `json:"version"`
	URL         string   `json:"url"`
	TimestampMs int64    `json:"timestamp_ms"`
	Viewport    Viewport `json:"viewport"`
	Compiler    Compiler `json:"compiler"`
	Root        *Node    `json:"root"`
}
