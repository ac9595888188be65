package evaluator

// Namespace is a scope's name→value bindings plus a reference to its
// enclosing scope for fallback lookup. A namespace does not own its outer
// scope, it merely references it. Evaluation is single-threaded, so there is
// no locking here.
type Namespace struct {
	store map[string]Object
	outer *Namespace
}

func NewNamespace() *Namespace {
	return &Namespace{store: make(map[string]Object)}
}

func NewEnclosedNamespace(outer *Namespace) *Namespace {
	ns := NewNamespace()
	ns.outer = outer
	return ns
}

// Get resolves a name against own bindings first, then the outer chain.
func (ns *Namespace) Get(name string) (Object, bool) {
	obj, ok := ns.store[name]
	if !ok && ns.outer != nil {
		obj, ok = ns.outer.Get(name)
	}
	return obj, ok
}

// Set writes into this namespace's own bindings only, never an outer scope.
// The language has no nonlocal/global declaration.
func (ns *Namespace) Set(name string, val Object) Object {
	ns.store[name] = val
	return val
}

// Has reports whether the name is bound in this namespace itself, ignoring
// the outer chain.
func (ns *Namespace) Has(name string) bool {
	_, ok := ns.store[name]
	return ok
}

// Names returns the names bound in this namespace itself, ignoring the outer
// chain. Used by tests asserting that a call leaves the caller scope intact.
func (ns *Namespace) Names() []string {
	names := make([]string, 0, len(ns.store))
	for name := range ns.store {
		names = append(names, name)
	}
	return names
}
