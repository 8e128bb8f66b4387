package key

import "testing"

func TestModifierFromName(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
		ok   bool
	}{
		{"Shift", ModShift, true},
		{"control", ModControl, true},
		{"Ctrl", ModControl, true},
		{"ALT", ModAlt, true},
		{"Alternate", ModAlt, true},
		{"super", ModSuper, true},
		{"Hyper", ModHyper, true},
		{"meta", ModMeta, true},
		{"cmd", ModNone, false},
		{"", ModNone, false},
	}

	for _, tt := range tests {
		got, ok := ModifierFromName(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ModifierFromName(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestModifierNames(t *testing.T) {
	tests := []struct {
		mod    Modifier
		str    string
		abbrev string
		symbol string
	}{
		{ModNone, "", "", ""},
		{ModShift, "Shift", "Shift", "⇧"},
		{ModControl, "Control", "Ctrl", "^"},
		{ModAlt, "Alternate", "Alt", "⌥"},
		{ModSuper, "Super", "Super", "❖"},
		{ModHyper, "Hyper", "Hyper", "⎈"},
		{ModMeta, "Meta", "Meta", "⌘"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
		if got := tt.mod.Abbrev(); got != tt.abbrev {
			t.Errorf("Abbrev() = %q, want %q", got, tt.abbrev)
		}
		if got := tt.mod.Symbol(); got != tt.symbol {
			t.Errorf("Symbol() = %q, want %q", got, tt.symbol)
		}
	}
}

func TestModifierMask(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want ModMask
	}{
		{ModNone, MaskNone},
		{ModShift, MaskShift},
		{ModControl, MaskControl},
		{ModAlt, MaskAlt},
		{ModSuper, MaskSuper},
		{ModHyper, MaskHyper},
		{ModMeta, MaskMeta},
		{Modifier(99), MaskNone},
	}

	for _, tt := range tests {
		if got := tt.mod.Mask(); got != tt.want {
			t.Errorf("%v.Mask() = %v, want %v", tt.mod, got, tt.want)
		}
	}
}

func TestModMaskModifier(t *testing.T) {
	for mod := ModNone; mod < modCount; mod++ {
		got, ok := mod.Mask().Modifier()
		if !ok || got != mod {
			t.Errorf("%v.Mask().Modifier() = %v, %v", mod, got, ok)
		}
	}

	if _, ok := MaskControl.With(MaskShift).Modifier(); ok {
		t.Error("combined mask should not map to a single modifier")
	}
}

func TestModMaskOperations(t *testing.T) {
	m := MaskNone.With(MaskControl).With(MaskAlt)
	if !m.Has(MaskControl) || !m.Has(MaskAlt) {
		t.Error("With should add modifiers")
	}
	if m.Has(MaskShift) {
		t.Error("unexpected Shift")
	}
	if m.Has(MaskNone) {
		t.Error("Has(MaskNone) should be false")
	}
	m = m.Without(MaskControl)
	if m.Has(MaskControl) {
		t.Error("Without should remove modifier")
	}
	if m.IsEmpty() || !MaskNone.IsEmpty() {
		t.Error("IsEmpty mismatch")
	}
	if got := MaskControl.With(MaskShift).String(); got != "Shift+Control" {
		t.Errorf("String() = %q", got)
	}
}
