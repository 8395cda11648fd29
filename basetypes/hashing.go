package basetypes

import (
	"github.com/cespare/xxhash/v2"
)

// segmentSeparator keeps adjacent hash segments from colliding when their
// string forms concatenate to the same bytes ("ab"+"c" vs "a"+"bc").
const segmentSeparator = 0x1f

func writeHashSegment(digest *xxhash.Digest, segment string) {
	_, _ = digest.WriteString(segment)
	_, _ = digest.Write([]byte{segmentSeparator})
}
