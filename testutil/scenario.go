package testutil

import (
	"testing"

	"github.com/arthur-debert/nanotasks/tasklist"
	"github.com/arthur-debert/nanotasks/types"
)

// ScenarioRows is the snapshot expected after building ScenarioList
var ScenarioRows = []tasklist.Row{
	{DisplayText: "Clean room [chores]", Completed: true, Priority: types.PriorityRegular, Index: 0},
	{DisplayText: "Pay bills ⚠️ Due: 2024-05-01", Completed: false, Priority: types.PriorityUrgent, Index: 1},
}

// ScenarioList adds a regular and an urgent task and completes the first one.
// The returned recorder has already seen the three emissions.
func ScenarioList(t *testing.T) (*tasklist.List, *Recorder) {
	t.Helper()

	rec := &Recorder{}
	list := tasklist.New(rec)
	list.Add(types.NewRegular("Clean room", "chores"))
	list.Add(types.NewUrgent("Pay bills", "2024-05-01"))
	if err := list.Toggle(0); err != nil {
		t.Fatalf("toggle scenario task: %v", err)
	}
	return list, rec
}

// Mixed returns a handful of tasks covering every display rule
func Mixed() []*types.Task {
	return []*types.Task{
		types.NewRegular("Buy milk", "errand"),
		types.NewRegular("Call mom", ""),
		types.NewUrgent("File taxes", "2024-04-15"),
		types.NewUrgent("Fix leak", ""),
	}
}
