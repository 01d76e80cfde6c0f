// File: clock/anchor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Process-start anchor used by the portable clock path. time.Since reads
// the Go runtime's monotonic reading embedded in the anchor.

package clock

import "time"

var anchor = time.Now()

func anchorNow() Instant {
	return Instant(time.Since(anchor))
}
