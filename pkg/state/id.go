package state

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// newID returns a prefixed random identifier, e.g. "scene-9f2c61d0".
func newID(prefix string) string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing means the platform is broken; an ID is still owed.
		return fmt.Sprintf("%s-fallback", prefix)
	}
	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(b[:]))
}
