package list

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh opaque identifier combining a time component with a
// random component. Collisions are practically impossible within a session;
// uniqueness across processes is not guaranteed and not needed.
func NewID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	random := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return ts + "-" + random
}
