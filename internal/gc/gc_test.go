package gc

import "testing"

type fakeSweepable struct {
	marked    bool
	finalized int
}

func (f *fakeSweepable) Marked() bool { return f.marked }
func (f *fakeSweepable) ClearMark()   { f.marked = false }
func (f *fakeSweepable) Finalize()    { f.finalized++ }

func TestInhibitRestoresPreviousValue(t *testing.T) {
	if Inhibited() {
		t.Fatal("GC should not start inhibited")
	}
	restoreOuter := Inhibit()
	if !Inhibited() {
		t.Fatal("Inhibit should raise the flag")
	}
	restoreInner := Inhibit()
	restoreInner()
	if !Inhibited() {
		t.Fatal("flag should still be raised after the inner restore")
	}
	restoreOuter()
	if Inhibited() {
		t.Fatal("flag should be lowered after the outer restore")
	}
}

func TestPinRegistersRoot(t *testing.T) {
	before := len(Roots())
	obj := &fakeSweepable{}
	Pin(obj)
	after := Roots()
	if len(after) != before+1 {
		t.Fatalf("len(Roots()) = %d; want %d", len(after), before+1)
	}
	if after[len(after)-1] != obj {
		t.Fatal("Pin should append obj as the newest root")
	}
}
