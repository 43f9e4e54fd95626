package favorites

import (
	"strings"
	"testing"
)

func TestNew_DedupesInOrder(t *testing.T) {
	r := New("usd", "", "thb", "usd", "eur")
	if got := strings.Join(r.Keys(), ","); got != "usd,thb,eur" {
		t.Errorf("Keys() = %s", got)
	}
}

func TestToggle_AddsAtEnd(t *testing.T) {
	r := New("a", "b").Toggle("c")
	if got := strings.Join(r.Keys(), ","); got != "a,b,c" {
		t.Errorf("Keys() = %s", got)
	}
}

func TestToggle_RemovesPreservingOrder(t *testing.T) {
	r := New("a", "b", "c").Toggle("b")
	if got := strings.Join(r.Keys(), ","); got != "a,c" {
		t.Errorf("Keys() = %s", got)
	}
}

func TestToggle_TwiceRestoresMembership(t *testing.T) {
	starts := []Registry{New(), New("a"), New("a", "b", "c")}
	keys := []string{"a", "b", "c", "z"}

	for _, start := range starts {
		for _, k := range keys {
			got := start.Toggle(k).Toggle(k)
			if !got.SameKeys(start) {
				t.Errorf("toggle twice %q on %v = %v", k, start.Keys(), got.Keys())
			}
		}
	}
}

func TestToggle_TwiceIsIdentity_AbsentOrTail(t *testing.T) {
	start := New("a", "b", "c")
	for _, k := range []string{"z", "c"} {
		if got := start.Toggle(k).Toggle(k); !got.Equal(start) {
			t.Errorf("toggle twice %q = %v, want %v", k, got.Keys(), start.Keys())
		}
	}
}

func TestToggle_TwiceMovesMiddleKeyToEnd(t *testing.T) {
	got := New("a", "b", "c").Toggle("a").Toggle("a")
	if s := strings.Join(got.Keys(), ","); s != "b,c,a" {
		t.Errorf("Keys() = %s", s)
	}
}

func TestToggle_DoesNotMutateReceiver(t *testing.T) {
	r := New("a")
	_ = r.Toggle("b")
	_ = r.Toggle("a")
	if got := strings.Join(r.Keys(), ","); got != "a" {
		t.Errorf("receiver mutated: %s", got)
	}
}

func TestAdd_Idempotent(t *testing.T) {
	r := New("a").Add("a").Add("")
	if r.Len() != 1 {
		t.Errorf("Len() = %d", r.Len())
	}
}

func TestRemove_Absent(t *testing.T) {
	r := New("a").Remove("zzz")
	if !r.Equal(New("a")) {
		t.Errorf("Keys() = %v", r.Keys())
	}
}

func TestKeys_ReturnsCopy(t *testing.T) {
	r := New("a", "b")
	k := r.Keys()
	k[0] = "x"
	if r.Keys()[0] != "a" {
		t.Error("Keys mutation leaked into registry")
	}
}
