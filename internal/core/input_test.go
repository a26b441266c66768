package core

import "testing"

func TestIntentColumns(t *testing.T) {
	drop := NewIntent(ActionDrop)
	if drop.HasColumn() {
		t.Error("NewIntent should not carry a column")
	}

	at := DropAt(0)
	if !at.HasColumn() || at.Column != 0 || at.Action != ActionDrop {
		t.Errorf("DropAt(0) = %+v, expected drop at column 0", at)
	}
}

func TestActionString(t *testing.T) {
	if ActionDrop.String() != "Drop" {
		t.Errorf("ActionDrop.String() = %q, expected \"Drop\"", ActionDrop.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected \"Unknown\"", Action(99).String())
	}
}
