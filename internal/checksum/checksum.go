package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the hex-encoded SHA-256 digest of data.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Entry is one named blob in a checksum set.
type Entry struct {
	Name string
	Data []byte
}

// Set returns a combined digest over a set of named blobs. Each entry is
// folded in as name, NUL, content, NUL, so the result changes when any
// file's name or content changes. Entries must be passed in a stable order
// for digests to be comparable across calls.
func Set(entries []Entry) string {
	h := sha256.New()
	for _, e := range entries {
		h.Write([]byte(e.Name))
		h.Write([]byte{0})
		h.Write(e.Data)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
