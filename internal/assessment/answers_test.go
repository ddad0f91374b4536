package assessment

import "testing"

func TestAnswerSheetOverwrite(t *testing.T) {
	sheet := NewAnswerSheet()

	sheet.Record("q-1", "Paris")
	sheet.Record("q-1", "London")

	if got := sheet.Answered(); got != 1 {
		t.Errorf("Answered() = %d, want 1", got)
	}
	opt, ok := sheet.Get("q-1")
	if !ok || opt != "London" {
		t.Errorf("Get(q-1) = %q, %v, want London, true", opt, ok)
	}
}

func TestAnswerSheetSparse(t *testing.T) {
	sheet := NewAnswerSheet()

	sheet.Record("q-3", "B")
	sheet.Record("q-17", "D")

	if got := sheet.Answered(); got != 2 {
		t.Errorf("Answered() = %d, want 2", got)
	}
	if _, ok := sheet.Get("q-1"); ok {
		t.Error("Get(q-1) should report unanswered")
	}
}
