package tasklist_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/arthur-debert/nanotasks/tasklist"
	"github.com/arthur-debert/nanotasks/testutil"
	"github.com/arthur-debert/nanotasks/types"
)

func displayTexts(s tasklist.Snapshot) []string {
	var out []string
	for _, r := range s.Rows {
		out = append(out, r.DisplayText)
	}
	return out
}

func TestAddAppendsInCallOrder(t *testing.T) {
	rec := &testutil.Recorder{}
	list := tasklist.New(rec)

	var want []string
	for i := 0; i < 5; i++ {
		text := fmt.Sprintf("task %d", i)
		list.Add(types.NewRegular(text, ""))
		want = append(want, text)

		if list.Len() != i+1 {
			t.Fatalf("Len() = %d after %d adds", list.Len(), i+1)
		}
	}

	if diff := cmp.Diff(want, displayTexts(list.Snapshot())); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if rec.Count() != 5 {
		t.Errorf("expected 5 emissions, got %d", rec.Count())
	}
}

func TestAddAllowsDuplicates(t *testing.T) {
	list := tasklist.New()
	list.Add(types.NewRegular("Same", "x"))
	list.Add(types.NewRegular("Same", "x"))

	if list.Len() != 2 {
		t.Fatalf("expected duplicates to be kept, Len() = %d", list.Len())
	}
}

func TestAddNilIsIgnored(t *testing.T) {
	rec := &testutil.Recorder{}
	list := tasklist.New(rec)
	list.Add(nil)

	if list.Len() != 0 {
		t.Errorf("nil task was appended")
	}
	if rec.Count() != 0 {
		t.Errorf("nil add emitted %d snapshots", rec.Count())
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []string
	}{
		{"first", 0, []string{"b", "c", "d"}},
		{"middle", 2, []string{"a", "b", "d"}},
		{"last", 3, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &testutil.Recorder{}
			list := tasklist.New(rec)
			for _, text := range []string{"a", "b", "c", "d"} {
				list.Add(types.NewRegular(text, ""))
			}
			rec.Reset()

			if err := list.Delete(tt.index); err != nil {
				t.Fatalf("Delete(%d) error: %v", tt.index, err)
			}

			last, ok := rec.Last()
			if !ok || rec.Count() != 1 {
				t.Fatalf("expected one emission, got %d", rec.Count())
			}
			if diff := cmp.Diff(tt.want, displayTexts(last)); diff != "" {
				t.Errorf("remaining tasks (-want +got):\n%s", diff)
			}
			for i, row := range last.Rows {
				if row.Index != i {
					t.Errorf("row %d has index %d", i, row.Index)
				}
			}
		})
	}
}

func TestDeleteLastTaskYieldsEmptyState(t *testing.T) {
	rec := &testutil.Recorder{}
	list := tasklist.New(rec)
	list.Add(types.NewUrgent("Only", ""))

	if err := list.Delete(0); err != nil {
		t.Fatalf("Delete(0) error: %v", err)
	}

	last, _ := rec.Last()
	if !last.Empty || last.Rows != nil {
		t.Errorf("expected empty state, got %+v", last)
	}
}

func TestToggleIsInvolution(t *testing.T) {
	list := tasklist.New()
	list.Add(types.NewRegular("a", ""))
	list.Add(types.NewUrgent("b", ""))

	before := list.Snapshot()

	if err := list.Toggle(1); err != nil {
		t.Fatal(err)
	}
	if !list.Snapshot().Rows[1].Completed {
		t.Fatal("expected row 1 to be completed after one toggle")
	}
	if list.Snapshot().Rows[0].Completed {
		t.Fatal("toggle touched the wrong task")
	}

	if err := list.Toggle(1); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, list.Snapshot()); diff != "" {
		t.Errorf("double toggle changed state (-before +after):\n%s", diff)
	}
}

func TestOutOfRangeIndex(t *testing.T) {
	tests := []struct {
		name  string
		tasks int
		index int
	}{
		{"empty list", 0, 0},
		{"negative", 2, -1},
		{"equal to length", 2, 2},
		{"far beyond", 2, 100},
	}

	ops := map[string]func(*tasklist.List, int) error{
		"delete": (*tasklist.List).Delete,
		"toggle": (*tasklist.List).Toggle,
	}

	for opName, op := range ops {
		for _, tt := range tests {
			t.Run(opName+"/"+tt.name, func(t *testing.T) {
				rec := &testutil.Recorder{}
				list := tasklist.New(rec)
				for i := 0; i < tt.tasks; i++ {
					list.Add(types.NewRegular(fmt.Sprintf("t%d", i), ""))
				}
				before := list.Snapshot()
				rec.Reset()

				err := op(list, tt.index)
				if !errors.Is(err, tasklist.ErrIndexOutOfRange) {
					t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
				}

				var idxErr *tasklist.IndexError
				if !errors.As(err, &idxErr) {
					t.Fatalf("expected *IndexError, got %T", err)
				}
				if idxErr.Op != opName || idxErr.Index != tt.index || idxErr.Len != tt.tasks {
					t.Errorf("unexpected error fields: %+v", idxErr)
				}

				if rec.Count() != 0 {
					t.Errorf("rejected %s emitted %d snapshots", opName, rec.Count())
				}
				if diff := cmp.Diff(before, list.Snapshot()); diff != "" {
					t.Errorf("state changed (-before +after):\n%s", diff)
				}
			})
		}
	}
}

func TestScenarioSnapshot(t *testing.T) {
	list, rec := testutil.ScenarioList(t)

	if rec.Count() != 3 {
		t.Errorf("expected 3 emissions, got %d", rec.Count())
	}

	want := tasklist.Snapshot{Rows: testutil.ScenarioRows}
	if diff := cmp.Diff(want, list.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}

	last, _ := rec.Last()
	if diff := cmp.Diff(want, last); diff != "" {
		t.Errorf("emitted snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptySnapshot(t *testing.T) {
	rec := &testutil.Recorder{}
	list := tasklist.New(rec)

	snap := list.Snapshot()
	if !snap.Empty {
		t.Error("expected explicit empty state")
	}
	if snap.Len() != 0 {
		t.Errorf("expected no rows, got %d", snap.Len())
	}

	list.Render()
	last, ok := rec.Last()
	if !ok || !last.Empty {
		t.Errorf("initial render should emit the empty state, got %+v", last)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	list := tasklist.New()
	list.Add(types.NewRegular("a", ""))

	snap := list.Snapshot()
	if err := list.Toggle(0); err != nil {
		t.Fatal(err)
	}
	if snap.Rows[0].Completed {
		t.Error("earlier snapshot observed a later mutation")
	}
}

func TestEveryViewReceivesEachEmission(t *testing.T) {
	a, b := &testutil.Recorder{}, &testutil.Recorder{}
	var calls int
	list := tasklist.New(a, tasklist.ViewFunc(func(tasklist.Snapshot) { calls++ }))
	list.Subscribe(b)
	list.Subscribe(nil)

	list.Add(types.NewRegular("x", ""))
	_ = list.Toggle(0)
	_ = list.Delete(0)

	if a.Count() != 3 || calls != 3 {
		t.Errorf("views constructed with the list: got %d and %d emissions, want 3", a.Count(), calls)
	}
	if b.Count() != 3 {
		t.Errorf("subscribed view got %d emissions, want 3", b.Count())
	}
}

func TestTaskReturnsCopy(t *testing.T) {
	list := tasklist.New()
	list.Add(types.NewUrgent("Pay bills", "2024-05-01"))

	task, err := list.Task(0)
	if err != nil {
		t.Fatal(err)
	}
	task.Toggle()
	if list.Snapshot().Rows[0].Completed {
		t.Error("mutating a returned task changed the list")
	}

	if _, err := list.Task(1); !errors.Is(err, tasklist.ErrIndexOutOfRange) {
		t.Errorf("Task(1) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestStats(t *testing.T) {
	list := tasklist.New()
	for _, task := range testutil.Mixed() {
		list.Add(task)
	}
	_ = list.Toggle(0)
	_ = list.Toggle(2)

	want := tasklist.Stats{Total: 4, Completed: 2, Pending: 2, Urgent: 2}
	if diff := cmp.Diff(want, list.Stats()); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestRowClasses(t *testing.T) {
	tests := []struct {
		row  tasklist.Row
		want []string
	}{
		{tasklist.Row{Priority: types.PriorityRegular}, []string{"task-item", "regular"}},
		{tasklist.Row{Priority: types.PriorityUrgent, Completed: true}, []string{"task-item", "urgent", "completed"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, tt.row.Classes()); diff != "" {
			t.Errorf("Classes() mismatch (-want +got):\n%s", diff)
		}
	}
}
