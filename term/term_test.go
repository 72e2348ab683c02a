package term

import "testing"

func TestNewNat(t *testing.T) {
	tm := NewNat(42)
	v, ok := IsNat(tm)
	if !ok || v != 42 {
		t.Fatalf("IsNat(NewNat(42)) = (%d, %v), want (42, true)", v, ok)
	}
	if _, ok := Tag(tm); ok {
		t.Fatalf("Tag(Nat) reported a constructor tag")
	}
	if Children(tm) != nil {
		t.Fatalf("Children(Nat) = %v, want nil", Children(tm))
	}
}

func TestNewCtrArityAndChildren(t *testing.T) {
	a := NewNat(1)
	b := NewNat(2)
	c := NewCtr(7, a, b)

	tag, ok := Tag(c)
	if !ok || tag != 7 {
		t.Fatalf("Tag(c) = (%d, %v), want (7, true)", tag, ok)
	}
	if Arity(c) != 2 {
		t.Fatalf("Arity(c) = %d, want 2", Arity(c))
	}
	kids := Children(c)
	if v, ok := IsNat(kids[0]); !ok || v != 1 {
		t.Fatalf("Children(c)[0] = %v, want Nat(1)", kids[0])
	}
	if v, ok := IsNat(kids[1]); !ok || v != 2 {
		t.Fatalf("Children(c)[1] = %v, want Nat(2)", kids[1])
	}
}

func TestNewCtrNullary(t *testing.T) {
	nilTerm := NewCtr(99)
	if Arity(nilTerm) != 0 {
		t.Fatalf("Arity(nullary ctr) = %d, want 0", Arity(nilTerm))
	}
	if tag, ok := Tag(nilTerm); !ok || tag != 99 {
		t.Fatalf("Tag(nullary ctr) = (%d, %v), want (99, true)", tag, ok)
	}
}

func TestNewCtrCopiesChildren(t *testing.T) {
	kids := []Term{NewNat(1), NewNat(2)}
	c := NewCtr(3, kids...)
	kids[0] = NewNat(100)
	got := Children(c)
	if v, _ := IsNat(got[0]); v != 1 {
		t.Fatalf("NewCtr aliased caller's backing array: got %v after mutation, want unaffected Nat(1)", got[0])
	}
}

func TestConsListShape(t *testing.T) {
	const consTag, nilTag = 10, 11
	list := NewCtr(nilTag)
	for i := 3; i >= 1; i-- {
		list = NewCtr(consTag, NewNat(uint32(i)), list)
	}

	var out []uint32
	cur := list
	for {
		tag, ok := Tag(cur)
		if !ok || tag != consTag {
			break
		}
		kids := Children(cur)
		v, _ := IsNat(kids[0])
		out = append(out, v)
		cur = kids[1]
	}
	if len(out) != 3 || out[0] != 1 || out[1] != 2 || out[2] != 3 {
		t.Fatalf("cons-list walk = %v, want [1 2 3]", out)
	}
}
