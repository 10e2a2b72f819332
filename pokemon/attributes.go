package pokemon

import (
	"maps"
	"slices"
)

// accessor bridges a named attribute to a typed field of P. A nil Get makes
// the attribute write-only and a nil Set makes it read-only.
type accessor[P any, V any] struct {
	Get func(P) (V, error)
	Set func(P, V) error
}

// registry maps attribute names of one value type to their accessors. It is
// filled once per variant at init time and shared by every instance.
type registry[P any, V any] struct {
	kind      string
	accessors map[string]accessor[P, V]
}

func newRegistry[P any, V any](kind string) *registry[P, V] {
	return &registry[P, V]{kind: kind, accessors: map[string]accessor[P, V]{}}
}

func (r *registry[P, V]) Register(name string, a accessor[P, V]) {
	r.accessors[name] = a
}

func (r *registry[P, V]) Get(p P, name string) (V, error) {
	var zero V
	a, ok := r.accessors[name]
	if !ok {
		return zero, invalidArgument("no %s attribute %q", r.kind, name)
	}
	if a.Get == nil {
		return zero, invalidArgument("%s attribute %q is write-only", r.kind, name)
	}
	return a.Get(p)
}

func (r *registry[P, V]) Set(p P, name string, value V) error {
	a, ok := r.accessors[name]
	if !ok {
		return invalidArgument("no %s attribute %q", r.kind, name)
	}
	if a.Set == nil {
		return invalidArgument("%s attribute %q is read-only", r.kind, name)
	}
	return a.Set(p, value)
}

// Names returns every registered name, sorted, including read-only and
// write-only ones.
func (r *registry[P, V]) Names() []string {
	return slices.Sorted(maps.Keys(r.accessors))
}

// attributeSet groups the int, string and bool registries of one variant.
type attributeSet[P any] struct {
	ints    *registry[P, int]
	strings *registry[P, string]
	bools   *registry[P, bool]
}

func newAttributeSet[P any]() attributeSet[P] {
	return attributeSet[P]{
		ints:    newRegistry[P, int]("int"),
		strings: newRegistry[P, string]("string"),
		bools:   newRegistry[P, bool]("bool"),
	}
}

// bind pairs a variant's registries with one instance so the base type can
// serve the Attributes methods.
func (s attributeSet[P]) bind(p P) boundAttributes[P] {
	return boundAttributes[P]{set: s, p: p}
}

type boundAttributes[P any] struct {
	set attributeSet[P]
	p   P
}

func (b boundAttributes[P]) IntAttribute(name string) (int, error) {
	return b.set.ints.Get(b.p, name)
}

func (b boundAttributes[P]) SetIntAttribute(name string, value int) error {
	return b.set.ints.Set(b.p, name, value)
}

func (b boundAttributes[P]) IntAttributeNames() []string {
	return b.set.ints.Names()
}

func (b boundAttributes[P]) StringAttribute(name string) (string, error) {
	return b.set.strings.Get(b.p, name)
}

func (b boundAttributes[P]) SetStringAttribute(name string, value string) error {
	return b.set.strings.Set(b.p, name, value)
}

func (b boundAttributes[P]) StringAttributeNames() []string {
	return b.set.strings.Names()
}

func (b boundAttributes[P]) BoolAttribute(name string) (bool, error) {
	return b.set.bools.Get(b.p, name)
}

func (b boundAttributes[P]) SetBoolAttribute(name string, value bool) error {
	return b.set.bools.Set(b.p, name, value)
}

func (b boundAttributes[P]) BoolAttributeNames() []string {
	return b.set.bools.Names()
}
