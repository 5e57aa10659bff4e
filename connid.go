// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varlink

import "sync/atomic"

// ConnID is a process-local, monotonically increasing connection
// identifier. It is opaque to peers; servers use it to correlate events
// across connections and tests use it to assert uniqueness.
type ConnID uint64

var connIDCounter atomic.Uint64

// nextConnID returns a fresh, never-repeating ConnID. A single atomic
// increment suffices here (unlike GandalftheGUI-grove's daemon, which
// reuses small mutex-guarded alphabetic IDs for human-facing display, our
// IDs are never shown to a user and never reused, so no lock or free-list
// is needed).
func nextConnID() ConnID {
	return ConnID(connIDCounter.Add(1))
}
