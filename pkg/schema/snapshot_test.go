package schema

import (
	"reflect"
	"testing"

	"github.com/emirpasic/gods/sets/treeset"
)

func TestSnapshotRestore(t *testing.T) {
	root := New("")
	agent := root.Namespace("agent")
	agent.Add(
		StringSlot("service_name", "demo"),
		IntSlot("span_limit", 300),
		CollectionSlot("ignore_suffix", List, TypeString).WithValue([]any{".jpg", ".png"}),
	)

	snap, err := root.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	if err := agent.Slots()[0].SetValue("changed"); err != nil {
		t.Fatalf("SetValue() error = %v", err)
	}
	if err := agent.Slots()[1].SetValue(1); err != nil {
		t.Fatalf("SetValue() error = %v", err)
	}

	if err := root.Restore(snap); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	if v := root.Find("agent.service_name").Value(); v != "demo" {
		t.Errorf("Expected restored 'demo', got %v", v)
	}
	if v := root.Find("agent.span_limit").Value(); v != 300 {
		t.Errorf("Expected restored 300, got %v", v)
	}
}

func TestSnapshot_DetachesContainers(t *testing.T) {
	root := New("")
	slot := CollectionSlot("suffixes", List, TypeString).WithValue([]any{".jpg"})
	root.Namespace("agent").Add(slot)

	snap, err := root.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	// Mutate the live value after the snapshot was taken.
	live := slot.Value().([]any)
	live[0] = ".mutated"

	if err := root.Restore(snap); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	restored := slot.Value().([]any)
	if !reflect.DeepEqual(restored, []any{".jpg"}) {
		t.Errorf("Expected restored [.jpg], got %v", restored)
	}
}

func TestSnapshot_RebuildsSortedContainers(t *testing.T) {
	original := treeset.NewWith(Compare, "b", "a")
	root := New("")
	slot := CollectionSlot("names", SortedSet, TypeString).WithValue(original)
	root.Add(slot)

	snap, err := root.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	copied, ok := snap["names"].(*treeset.Set)
	if !ok {
		t.Fatalf("Expected *treeset.Set in snapshot, got %T", snap["names"])
	}
	if copied == original {
		t.Error("Expected snapshot to hold a rebuilt set, not the live instance")
	}
	if !reflect.DeepEqual(copied.Values(), original.Values()) {
		t.Errorf("Expected values %v, got %v", original.Values(), copied.Values())
	}
}

func TestRestore_SkipsMissingPaths(t *testing.T) {
	root := New("")
	slot := IntSlot("span_limit", 300)
	root.Namespace("agent").Add(slot)

	if err := slot.SetValue(5); err != nil {
		t.Fatalf("SetValue() error = %v", err)
	}

	if err := root.Restore(map[string]any{"other.path": 1}); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	if slot.Value() != 5 {
		t.Errorf("Expected untouched value 5, got %v", slot.Value())
	}
}

func TestRestore_FrozenSlotFails(t *testing.T) {
	root := New("")
	root.Add(IntSlot("span_limit", 300))

	snap, err := root.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	root.Slots()[0].Freeze()

	if err := root.Restore(snap); err == nil {
		t.Error("Expected error restoring a frozen slot, got nil")
	}
}
