package dispatcher

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// newID tags one dispatch attempt for log correlation.
func newID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
