package util

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("in-range value changed: %d", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Fatalf("low value not clamped: %d", got)
	}
	if got := Clamp(99, 0, 10); got != 10 {
		t.Fatalf("high value not clamped: %d", got)
	}
}

func TestPtrDeref(t *testing.T) {
	p := Ptr(42)
	if *p != 42 {
		t.Fatalf("unexpected pointer value: %d", *p)
	}
	if got := Deref(p); got != 42 {
		t.Fatalf("unexpected deref: %d", got)
	}
	if got := Deref[int](nil); got != 0 {
		t.Fatalf("nil deref must be zero: %d", got)
	}
}

func TestBoolIntRoundTrip(t *testing.T) {
	if BoolToInt(true) != 1 || BoolToInt(false) != 0 {
		t.Fatalf("bool conversion wrong")
	}
	if !IntToBool(1) || IntToBool(0) {
		t.Fatalf("int conversion wrong")
	}
}

func TestValidatePassphrase(t *testing.T) {
	if err := ValidatePassphrase("Str0ngpass"); err != nil {
		t.Fatalf("valid passphrase rejected: %v", err)
	}
	for _, pass := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		if err := ValidatePassphrase(pass); err == nil {
			t.Fatalf("weak passphrase %q accepted", pass)
		}
	}
}
