package travellog

import (
	"errors"
	"testing"
)

func sampleLog(id int64, to string) TravelLog {
	return TravelLog{ID: id, From: "Home", To: to, Distance: 1, Duration: 1, Mode: ModeWalk}
}

func TestCollectionAddPreservesOrder(t *testing.T) {
	c := NewCollection()
	for i, to := range []string{"Park", "Office", "Beach"} {
		if err := c.Add(sampleLog(int64(i+1), to)); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	all := c.All()
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	for i, to := range []string{"Park", "Office", "Beach"} {
		if all[i].To != to {
			t.Fatalf("all[%d].To = %q, want %q", i, all[i].To, to)
		}
	}
}

func TestCollectionAddRejectsDuplicateID(t *testing.T) {
	c := NewCollection()
	if err := c.Add(sampleLog(7, "Park")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	err := c.Add(sampleLog(7, "Office"))
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("Add duplicate: err = %v, want ErrDuplicateID", err)
	}
	if c.Len() != 1 {
		t.Fatalf("len = %d, want 1 after rejected add", c.Len())
	}
}

func TestCollectionFindByID(t *testing.T) {
	c := NewCollection()
	if err := c.Add(sampleLog(3, "Park")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	log, err := c.FindByID(3)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if log.To != "Park" {
		t.Fatalf("to = %q, want Park", log.To)
	}

	if _, err := c.FindByID(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("FindByID missing: err = %v, want ErrNotFound", err)
	}
}

func TestCollectionRemoveByIDKeepsRelativeOrder(t *testing.T) {
	c := NewCollection()
	for id := int64(1); id <= 4; id++ {
		if err := c.Add(sampleLog(id, "Stop")); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	removed, err := c.RemoveByID(2)
	if err != nil {
		t.Fatalf("RemoveByID: %v", err)
	}
	if removed.ID != 2 {
		t.Fatalf("removed id = %d, want 2", removed.ID)
	}

	all := c.All()
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	for i, want := range []int64{1, 3, 4} {
		if all[i].ID != want {
			t.Fatalf("all[%d].ID = %d, want %d", i, all[i].ID, want)
		}
	}
}

func TestCollectionRemoveByIDMissingLeavesCollectionUnchanged(t *testing.T) {
	c := NewCollection()
	if err := c.Add(sampleLog(1, "Park")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, err := c.RemoveByID(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("RemoveByID missing: err = %v, want ErrNotFound", err)
	}
	if c.Len() != 1 {
		t.Fatalf("len = %d, want 1", c.Len())
	}
}

func TestCollectionClearIsIdempotent(t *testing.T) {
	c := NewCollection()
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("len = %d, want 0", c.Len())
	}

	if err := c.Add(sampleLog(1, "Park")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	c.Clear()
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("len = %d, want 0 after clear", c.Len())
	}
}

func TestCollectionAllReturnsSnapshot(t *testing.T) {
	c := NewCollection()
	if err := c.Add(sampleLog(1, "Park")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	snapshot := c.All()
	snapshot[0].To = "Mutated"

	fresh, err := c.FindByID(1)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if fresh.To != "Park" {
		t.Fatalf("collection affected by snapshot mutation: to = %q", fresh.To)
	}
}
