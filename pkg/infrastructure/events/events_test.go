package events

import "testing"

func TestJournal_AppendAndRead(t *testing.T) {
	journal := NewJournal()

	journal.Append("WH-1", TypeDayAllocated, nil)
	journal.Append("WH-2", TypeDayAllocated, nil)
	journal.Append("WH-1", TypeTempStaffHired, nil)

	wh1 := journal.Read("WH-1")
	if len(wh1) != 2 {
		t.Fatalf("Expected 2 events on WH-1, got %d", len(wh1))
	}
	if wh1[0].Version != 1 || wh1[1].Version != 2 {
		t.Errorf("Expected per-stream versions 1,2, got %d,%d", wh1[0].Version, wh1[1].Version)
	}
	if wh1[1].Type != TypeTempStaffHired {
		t.Errorf("Expected second WH-1 event to be a staff hire, got %s", wh1[1].Type)
	}

	if got := len(journal.ReadAll()); got != 3 {
		t.Errorf("Expected 3 events total, got %d", got)
	}
	if got := journal.Read("WH-3"); len(got) != 0 {
		t.Errorf("Expected empty stream, got %d events", len(got))
	}
}
