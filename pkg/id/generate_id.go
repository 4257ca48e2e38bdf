package id

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"regexp"
	"time"
)

var reObjectID = regexp.MustCompile(`^[a-fA-F0-9]{24}$`)

// NewObjectID returns 24 lowercase hex characters: a 4-byte big-endian
// unix timestamp followed by 8 random bytes, so ids roughly sort by creation.
func NewObjectID() string {
	return newObjectIDAt(time.Now())
}

func newObjectIDAt(t time.Time) string {
	b := make([]byte, 12)
	binary.BigEndian.PutUint32(b[:4], uint32(t.Unix()))
	_, _ = rand.Read(b[4:])
	return hex.EncodeToString(b)
}

// IsObjectID reports whether s is a 24-char hex identifier (either case).
func IsObjectID(s string) bool { return reObjectID.MatchString(s) }
