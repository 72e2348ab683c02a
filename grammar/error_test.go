package grammar

import "testing"

func TestIsErr(t *testing.T) {
	if !IsErr(errTerm()) {
		t.Fatal("IsErr(errTerm()) = false, want true")
	}
	if IsErr(Read([]byte("42"))) {
		t.Fatal("IsErr on a successful parse = true, want false")
	}
}
