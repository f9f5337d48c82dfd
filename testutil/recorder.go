package testutil

import (
	"github.com/arthur-debert/nanotasks/tasklist"
)

// Recorder is a tasklist.View that keeps every snapshot it receives
type Recorder struct {
	Snapshots []tasklist.Snapshot
}

// Render implements tasklist.View
func (r *Recorder) Render(s tasklist.Snapshot) {
	r.Snapshots = append(r.Snapshots, s)
}

// Count returns the number of emissions seen so far
func (r *Recorder) Count() int {
	return len(r.Snapshots)
}

// Last returns the most recent snapshot. It reports false if nothing was
// emitted yet.
func (r *Recorder) Last() (tasklist.Snapshot, bool) {
	if len(r.Snapshots) == 0 {
		return tasklist.Snapshot{}, false
	}
	return r.Snapshots[len(r.Snapshots)-1], true
}

// Reset forgets all recorded snapshots
func (r *Recorder) Reset() {
	r.Snapshots = nil
}
