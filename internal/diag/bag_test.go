package diag

import "testing"

func TestBagLimitAndSeverity(t *testing.T) {
	bag := NewBag(2)
	r := BagReporter{Bag: bag}

	ReportInfo(r, PitchWrapped, "chord[1]", "wrapped").Emit()
	if bag.HasWarnings() || bag.HasErrors() {
		t.Fatalf("info must not count as warning or error")
	}
	ReportWarning(r, GlyphWidthMismatch, "glyphs", "mismatch").Emit()
	if !bag.HasWarnings() {
		t.Fatalf("expected warning")
	}
	ReportError(r, RenderMissingRoot, "chord", "empty").Emit()
	if bag.Len() != 2 {
		t.Fatalf("bag should stop at its limit, got %d items", bag.Len())
	}
	if bag.HasErrors() {
		t.Fatalf("dropped error must not be visible")
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(10)
	b := ReportWarning(BagReporter{Bag: bag}, GlyphWidthMismatch, "glyphs", "mismatch").
		WithNote("glyphs.root", "1 column")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("Emit should be idempotent, got %d items", bag.Len())
	}
	if got := len(bag.Items()[0].Notes); got != 1 {
		t.Fatalf("expected 1 note, got %d", got)
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(10)
	bag.Add(New(SevInfo, PitchWrapped, "chord[2]", "b"))
	bag.Add(New(SevError, RenderMissingRoot, "chord", "a"))
	bag.Add(New(SevWarning, GlyphWidthMismatch, "glyphs", "c"))
	bag.Add(New(SevInfo, PitchWrapped, "chord[2]", "b"))

	bag.Dedup()
	if bag.Len() != 3 {
		t.Fatalf("Dedup left %d items, want 3", bag.Len())
	}
	bag.Sort()
	got := []Code{bag.Items()[0].Code, bag.Items()[1].Code, bag.Items()[2].Code}
	want := []Code{RenderMissingRoot, GlyphWidthMismatch, PitchWrapped}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted codes = %v, want %v", got, want)
		}
	}
}

func TestDedupAndMultiReporter(t *testing.T) {
	a, b := NewBag(10), NewBag(10)
	r := NewDedupReporter(MultiReporter{BagReporter{Bag: a}, nil, BagReporter{Bag: b}})
	for i := 0; i < 3; i++ {
		r.Report(PitchOutOfRange, SevWarning, "pitch", "13 is outside 0-11", nil)
	}
	if a.Len() != 1 || b.Len() != 1 {
		t.Fatalf("expected one diagnostic per bag, got %d and %d", a.Len(), b.Len())
	}
}
