package evaluator

import "testing"

func TestNamespaceLookupFallsBackToOuter(t *testing.T) {
	outer := NewNamespace()
	outer.Set("a", &Integer{Value: 1})
	inner := NewEnclosedNamespace(outer)

	obj, ok := inner.Get("a")
	if !ok {
		t.Fatal("lookup did not fall back to the outer scope")
	}
	if obj.(*Integer).Value != 1 {
		t.Errorf("got %s, want 1", obj.Inspect())
	}
}

func TestNamespaceLookupExhaustsChain(t *testing.T) {
	outer := NewNamespace()
	inner := NewEnclosedNamespace(NewEnclosedNamespace(outer))

	if _, ok := inner.Get("missing"); ok {
		t.Error("lookup of an unbound name succeeded")
	}
}

func TestNamespaceShadowing(t *testing.T) {
	outer := NewNamespace()
	outer.Set("a", &Integer{Value: 1})
	inner := NewEnclosedNamespace(outer)
	inner.Set("a", &Integer{Value: 2})

	obj, _ := inner.Get("a")
	if obj.(*Integer).Value != 2 {
		t.Errorf("inner lookup got %s, want the shadowing 2", obj.Inspect())
	}
	obj, _ = outer.Get("a")
	if obj.(*Integer).Value != 1 {
		t.Errorf("outer binding changed to %s, want 1", obj.Inspect())
	}
}

// Set writes into the namespace's own bindings only; there is no implicit
// write-through to an enclosing scope.
func TestNamespaceSetNeverWritesThrough(t *testing.T) {
	outer := NewNamespace()
	outer.Set("a", &Integer{Value: 1})
	inner := NewEnclosedNamespace(outer)
	inner.Set("a", &Integer{Value: 99})

	obj, _ := outer.Get("a")
	if obj.(*Integer).Value != 1 {
		t.Errorf("outer a == %s after inner set, want 1", obj.Inspect())
	}
	if !inner.Has("a") {
		t.Error("inner set did not create an own binding")
	}
}
