package demo

import "testing"

func TestGet(t *testing.T) {
	d, err := Get("groei")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if d.Locale.Tag != "nl" {
		t.Errorf("expected Dutch locale, got %s", d.Locale.Tag)
	}
	if d.Mode != ModeAnimate {
		t.Error("groei should animate")
	}
}

func TestGet_Unknown(t *testing.T) {
	if _, err := Get("nonexistent"); err == nil {
		t.Error("expected error for unknown demo")
	}
}

func TestListHasFiveDemos(t *testing.T) {
	all := List()
	if len(all) != 5 {
		t.Fatalf("expected 5 demos, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name >= all[i].Name {
			t.Error("demos not sorted by name")
		}
	}
}

func TestDefaultsValidate(t *testing.T) {
	for _, d := range List() {
		if err := d.Defaults.Validate(); err != nil {
			t.Errorf("demo %s has invalid defaults: %v", d.Name, err)
		}
		if d.Mode == ModeAnimate && d.FrameMs <= 0 {
			t.Errorf("animated demo %s has no frame interval", d.Name)
		}
	}
}

func TestGezinCountsParents(t *testing.T) {
	d, err := Get("gezin")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !d.Defaults.IncludeParents {
		t.Error("gezin should include parents")
	}
	if d.Defaults.Factor() != d.Defaults.K+1 {
		t.Errorf("expected factor k+1, got %d", d.Defaults.Factor())
	}
}
