package fingerprint

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode"

	"github.com/mcp-tool-shop-org/websketch-ir/ir"
)

// invisibleRanges lists the code point ranges normalize strips entirely
// before whitespace collapsing, per the design's invisible-character list.
var invisibleRanges = [][2]rune{
	{0x200B, 0x200D}, // zero-width space/non-joiner/joiner
	{0xFEFF, 0xFEFF}, // BOM / zero-width no-break space
	{0x00AD, 0x00AD}, // soft hyphen
	{0x2060, 0x2060}, // word joiner
	{0x180E, 0x180E}, // Mongolian vowel separator
	{0x202A, 0x202E}, // directional formatting (LRE..RLO)
	{0x2066, 0x2069}, // directional isolates (LRI..PDI)
}

func isInvisible(r rune) bool {
	for _, rg := range invisibleRanges {
		if r >= rg[0] && r <= rg[1] {
			return true
		}
	}
	return false
}

// Normalize reduces a raw string to its canonical form for fingerprinting:
// invisible characters are stripped, every run of Unicode whitespace
// collapses to a single ASCII space, the result is trimmed, and it is
// lowercased. Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastWasSpace := false
	for _, r := range s {
		if isInvisible(r) {
			continue
		}
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasSpace = true
			continue
		}
		lastWasSpace = false
		b.WriteRune(r)
	}
	return strings.ToLower(strings.TrimSpace(b.String()))
}

// blankLineBreak matches a run of two or more newlines, with only
// intervening whitespace, i.e. a paragraph break.
var blankLineBreak = regexp.MustCompile(`\n\s*\n`)

// Classify normalizes raw and returns the TextSignal kind and, unless the
// kind is TextNone, a length and stability hash of the normalized text.
// The kind is computed primarily from the normalized length, except that
// raw containing two or more blank-line breaks is always classified
// TextMixed regardless of length — that check runs against raw, since
// normalization collapses the newlines the check looks for.
func Classify(raw string) ir.TextSignal {
	normalized := Normalize(raw)
	if normalized == "" {
		return ir.TextSignal{Kind: ir.TextNone}
	}

	length := len([]rune(normalized))
	hash := ShortHash(normalized)

	kind := ir.TextSentence
	switch {
	case length <= 20:
		kind = ir.TextShort
	case length <= 150:
		kind = ir.TextSentence
	default:
		kind = ir.TextParagraph
	}
	if len(blankLineBreak.FindAllStringIndex(raw, -1)) >= 2 {
		kind = ir.TextMixed
	}

	return ir.TextSignal{Kind: kind, Len: &length, Hash: &hash}
}

// TextHashResult is delivered on the channel HashTextSHA256Async returns.
type TextHashResult struct {
	Hash string
	Err  error
}

// HashTextSHA256Async computes a real SHA-256 digest (hex-encoded) over the
// normalized form of raw. It is the capture-time helper mentioned in the
// design for text hashes that may be persisted and compared across tools —
// it is deliberately not used anywhere on the hot fingerprint/diff path,
// which uses ShortHash exclusively.
//
// The result (or ctx's error) is delivered on the returned channel exactly
// once; the channel is always closed after the one send.
func HashTextSHA256Async(ctx context.Context, raw string) <-chan TextHashResult {
	out := make(chan TextHashResult, 1)
	go func() {
		defer close(out)
		select {
		case <-ctx.Done():
			out <- TextHashResult{Err: ctx.Err()}
			return
		default:
		}
		sum := sha256.Sum256([]byte(Normalize(raw)))
		out <- TextHashResult{Hash: hex.EncodeToString(sum[:])}
	}()
	return out
}
