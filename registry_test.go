package carousel

import "testing"

func TestRegistryChangeSlideDefaultsToDefaultID(t *testing.T) {
	reg := NewRegistry()
	reg.Register(DefaultID, New(buildContainer(t, 3, 3, ""), manual()))
	reg.ChangeSlide(1)
	c, _ := reg.Lookup(DefaultID)
	if got := c.Current(); got != 1 {
		t.Fatalf("index = %d, want 1", got)
	}
	reg.ChangeSlide(-1, DefaultID)
	if got := c.Current(); got != 0 {
		t.Fatalf("index = %d, want 0", got)
	}
}

func TestRegistryCurrentSlideIsOneBased(t *testing.T) {
	reg := NewRegistry()
	reg.Register("hero", New(buildContainer(t, 3, 3, ""), manual()))
	reg.CurrentSlide(3, "hero")
	c, _ := reg.Lookup("hero")
	if got := c.Current(); got != 2 {
		t.Fatalf("index = %d, want 2", got)
	}
	// 0 and past-the-end map to out-of-range internal indices.
	reg.CurrentSlide(0, "hero")
	reg.CurrentSlide(4, "hero")
	if got := c.Current(); got != 2 {
		t.Fatalf("index = %d, want 2", got)
	}
}

func TestRegistryUnknownIDIgnored(t *testing.T) {
	reg := NewRegistry()
	reg.Register("hero", New(buildContainer(t, 3, 3, ""), manual()))
	reg.ChangeSlide(1, "missing")
	reg.CurrentSlide(2, "missing")
	c, _ := reg.Lookup("hero")
	if got := c.Current(); got != 0 {
		t.Fatalf("unrelated carousel mutated: index = %d", got)
	}
}

func TestRegistryHandleKeyBroadcasts(t *testing.T) {
	reg := NewRegistry()
	noKeys := manual()
	noKeys.EnableKeyboard = boolPtr(false)
	reg.Register("a", New(buildContainer(t, 3, 0, ""), manual()))
	reg.Register("b", New(buildContainer(t, 3, 0, ""), manual()))
	reg.Register("c", New(buildContainer(t, 3, 0, ""), noKeys))

	if !reg.HandleKey("right") {
		t.Fatalf("broadcast should report handled")
	}
	for _, id := range []string{"a", "b"} {
		c, _ := reg.Lookup(id)
		if got := c.Current(); got != 1 {
			t.Fatalf("carousel %q index = %d, want 1", id, got)
		}
	}
	c, _ := reg.Lookup("c")
	if got := c.Current(); got != 0 {
		t.Fatalf("keyboard-disabled carousel moved: index = %d", got)
	}
}

func TestRegistryRegisterReplaces(t *testing.T) {
	reg := NewRegistry()
	first := New(buildContainer(t, 2, 0, ""), manual())
	second := New(buildContainer(t, 3, 0, ""), manual())
	reg.Register(DefaultID, first)
	reg.Register(DefaultID, second)
	c, ok := reg.Lookup(DefaultID)
	if !ok || c != second {
		t.Fatalf("replacement registration should win")
	}
	if got := len(reg.IDs()); got != 1 {
		t.Fatalf("id count = %d, want 1", got)
	}
}

func TestLegacyFunctionsUseDefaultRegistry(t *testing.T) {
	c := New(buildContainer(t, 3, 3, ""), manual())
	Default().Register("legacy-test", c)
	ChangeSlide(1, "legacy-test")
	if got := c.Current(); got != 1 {
		t.Fatalf("index = %d, want 1", got)
	}
	CurrentSlide(3, "legacy-test")
	if got := c.Current(); got != 2 {
		t.Fatalf("index = %d, want 2", got)
	}
	// Unknown ids fall through silently.
	ChangeSlide(1, "legacy-test-missing")
	CurrentSlide(1, "legacy-test-missing")
	if got := c.Current(); got != 2 {
		t.Fatalf("index = %d, want 2", got)
	}
}
