package project

import "crypto/sha256"

// Digest is a fixed 256-bit hash, layout-compatible with source.File.Hash.
type Digest [sha256.Size]byte

// Combine builds an aggregate hash H(content || extra1 || extra2 ...).
// Callers must pass the extras in a deterministic order.
func Combine(content Digest, extras ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range extras {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// HashBytes hashes raw content into a Digest.
func HashBytes(b []byte) Digest {
	return sha256.Sum256(b)
}
