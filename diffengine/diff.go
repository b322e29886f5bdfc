package diffengine

import (
	"github.com/mcp-tool-shop-org/websketch-ir/fingerprint"
	"github.com/mcp-tool-shop-org/websketch-ir/ir"
)

// Counts tallies each change kind in a DiffResult.
type Counts struct {
	Added              int
	Removed            int
	Moved              int
	Resized            int
	TextChanged        int
	InteractiveChanged int
	RoleChanged        int
	ChildrenChanged    int
}

// Summary is the diff's headline: counts, identity, and both fingerprint-
// equality flags.
type Summary struct {
	Counts                  Counts
	Identical               bool
	FingerprintsMatch       bool
	LayoutFingerprintsMatch bool
	NodeCountA              int
	NodeCountB              int
}

// Metadata carries capture-level context a consumer typically wants
// alongside the structural changes.
type Metadata struct {
	URLChanged           bool
	ViewportChanged      bool
	CompilerVersionMatch bool
}

// Result is the full output of Diff.
type Result struct {
	Changes    []Change
	TopChanges []Change
	Summary    Summary
	Metadata   Metadata
}

// Diff compares captures a and b and returns an explainable list of
// added/removed/moved/resized/text/structural changes, a ranked subset,
// and a summary with both fingerprint-equality flags.
func Diff(a, b *ir.Capture, opts *Options) Result {
	o := optionsOrDefault(opts)

	flatA := Flatten(a.Root)
	flatB := Flatten(b.Root)

	candidates := generateCandidates(flatA, flatB, o)
	matches, matchedA, matchedB := greedyMatch(candidates)

	var changes []Change
	for _, m := range matches {
		changes = append(changes, classifyPair(flatA[m.ai].Node, flatA[m.ai].Path, flatB[m.bi].Node, flatB[m.bi].Path, o)...)
	}
	for i, f := range flatA {
		if !matchedA[i] {
			changes = append(changes, Change{Kind: KindRemoved, NodeA: f.Node, PathA: f.Path})
		}
	}
	for j, f := range flatB {
		if !matchedB[j] {
			changes = append(changes, Change{Kind: KindAdded, NodeB: f.Node, PathB: f.Path})
		}
	}

	counts := tallyCounts(changes)

	summary := Summary{
		Counts:                  counts,
		Identical:               len(changes) == 0,
		FingerprintsMatch:       fingerprint.FingerprintCapture(a) == fingerprint.FingerprintCapture(b),
		LayoutFingerprintsMatch: fingerprint.FingerprintLayout(a) == fingerprint.FingerprintLayout(b),
		NodeCountA:              len(flatA),
		NodeCountB:              len(flatB),
	}

	metadata := Metadata{
		URLChanged:           a.URL != b.URL,
		ViewportChanged:      a.Viewport.WPx != b.Viewport.WPx || a.Viewport.HPx != b.Viewport.HPx,
		CompilerVersionMatch: a.Compiler.Version == b.Compiler.Version,
	}

	return Result{
		Changes:    changes,
		TopChanges: rankChanges(changes, o.TopChangesLimit),
		Summary:    summary,
		Metadata:   metadata,
	}
}

func tallyCounts(changes []Change) Counts {
	var c Counts
	for _, ch := range changes {
		switch ch.Kind {
		case KindAdded:
			c.Added++
		case KindRemoved:
			c.Removed++
		case KindMoved:
			c.Moved++
		case KindResized:
			c.Resized++
		case KindTextChanged:
			c.TextChanged++
		case KindInteractiveChanged:
			c.InteractiveChanged++
		case KindRoleChanged:
			c.RoleChanged++
		case KindChildrenChanged:
			c.ChildrenChanged++
		}
	}
	return c
}
