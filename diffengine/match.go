package diffengine

import (
	"sort"

	"github.com/mcp-tool-shop-org/websketch-ir/fingerprint"
)

// candidate is a proposed pairing between an index into flat(A) and an
// index into flat(B), with its weighted similarity score.
type candidate struct {
	ai, bi int
	score  float64
}

// generateCandidates proposes every (i, j) pair whose similarity clears
// matchThreshold. Same-role pairs are scored and filtered directly.
// Different-role pairs are first pruned on raw bbox IoU below 0.3 — this
// asymmetry (same-role pairs below 0.3 IoU are NOT pruned) is intentional
// and preserved from the design.
func generateCandidates(flatA, flatB []FlatNode, opts Options) []candidate {
	var out []candidate
	for i := range flatA {
		for j := range flatB {
			a, b := flatA[i].Node, flatB[j].Node
			if a.Role == b.Role {
				s := fingerprint.NodeSimilarity(a, b)
				if s >= opts.MatchThreshold {
					out = append(out, candidate{ai: i, bi: j, score: s})
				}
				continue
			}
			if fingerprint.BBoxSimilarity(a.BBox, b.BBox) < 0.3 {
				continue
			}
			s := fingerprint.NodeSimilarity(a, b)
			if s >= opts.MatchThreshold {
				out = append(out, candidate{ai: i, bi: j, score: s})
			}
		}
	}
	return out
}

// pair is one accepted match between flat(A)[AI] and flat(B)[BI].
type pair struct {
	ai, bi int
	score  float64
}

// greedyMatch sorts candidates by descending similarity (stable, so ties
// keep the natural (i, j) iteration order from generateCandidates — not
// load-bearing, just reproducible) and walks them accepting a pair only
// when neither side is already matched. This is deliberately suboptimal
// versus an exact bipartite matching (e.g. Hungarian algorithm); the
// design requires the greedy behavior stay observable, not be silently
// upgraded.
func greedyMatch(candidates []candidate) (matched []pair, matchedA, matchedB map[int]bool) {
	sorted := make([]candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].score > sorted[j].score
	})

	matchedA = make(map[int]bool)
	matchedB = make(map[int]bool)
	for _, c := range sorted {
		if matchedA[c.ai] || matchedB[c.bi] {
			continue
		}
		matched = append(matched, pair{ai: c.ai, bi: c.bi, score: c.score})
		matchedA[c.ai] = true
		matchedB[c.bi] = true
	}
	return matched, matchedA, matchedB
}
