package tasklist

// View consumes snapshots. Views must not mutate the list from inside Render;
// actions are routed back through the row index after Render returns.
type View interface {
	Render(Snapshot)
}

// ViewFunc adapts a function to the View interface
type ViewFunc func(Snapshot)

// Render implements View
func (f ViewFunc) Render(s Snapshot) {
	f(s)
}
