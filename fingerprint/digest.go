// Package fingerprint implements text normalization, the short structural
// digest used throughout the system, bounding-box quantization and
// similarity, node/capture hashing, content-addressed node IDs, and
// pairwise node similarity.
package fingerprint

import "unicode/utf16"

// ShortHash computes the 32-bit djb2-style fold mandated by the design and
// renders it as 8 lowercase hex characters. It is not cryptographic and
// must never be used where collision resistance matters — it exists only
// for cheap structural stability comparisons (fingerprints, node IDs,
// shallow/deep node hashes).
//
// The fold operates on UTF-16 code units, not bytes and not runes, because
// the golden digests in the design were fixed against a UTF-16 reference
// implementation. Go strings are UTF-8, so the input is re-encoded first;
// this re-encoding is the one cross-language hazard called out in the
// design notes.
func ShortHash(s string) string {
	units := utf16.Encode([]rune(s))
	var h uint32 = 5381
	for _, c := range units {
		h = ((h << 5) + h) ^ uint32(c)
	}
	return hex8(h)
}

const hexDigits = "0123456789abcdef"

func hex8(h uint32) string {
	buf := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		buf[i] = hexDigits[h&0xF]
		h >>= 4
	}
	return string(buf)
}
