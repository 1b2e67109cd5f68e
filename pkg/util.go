package pkg

import (
	"unsafe"

	"github.com/google/uuid"
)

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// IntOr returns the value behind p, or def when p is nil
func IntOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// IntPtr is for optional JSON and column values.
func IntPtr(i int) *int {
	return &i
}

// IsCanonicalUUID accepts only the lowercase dashed form postgres returns.
// uuid.Parse also takes urn:uuid:, braced and undashed variants.
func IsCanonicalUUID(s string) bool {
	parsed, err := uuid.Parse(s)
	return err == nil && parsed.String() == s
}
