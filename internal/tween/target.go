package tween

// Target binds a tween to one host value.
type Target[T any] interface {
	Value() T
	SetValue(v T)
	// Owner identifies the host object that owns the value. Scheduler
	// queries by target compare owners with ==.
	Owner() any
}

// Liveness is implemented by owners that can be destroyed while a tween
// still references them. With null checking enabled, sets on a dead owner
// are skipped.
type Liveness interface {
	Alive() bool
}

// alive reports whether a target may be written.
func alive[T any](target Target[T]) bool {
	if target == nil {
		return false
	}
	owner := target.Owner()
	if owner == nil {
		return false
	}
	if l, ok := owner.(Liveness); ok {
		return l.Alive()
	}
	return true
}

// ValueTarget is a self-owned boxed value. It backs Value tweens that feed
// a callback rather than a host field.
type ValueTarget[T any] struct {
	v T
}

// NewValueTarget boxes v.
func NewValueTarget[T any](v T) *ValueTarget[T] {
	return &ValueTarget[T]{v: v}
}

func (t *ValueTarget[T]) Value() T     { return t.v }
func (t *ValueTarget[T]) SetValue(v T) { t.v = v }
func (t *ValueTarget[T]) Owner() any   { return t }

// PtrTarget writes straight into a host field.
type PtrTarget[T any] struct {
	ptr   *T
	owner any
}

// Ptr targets *p. When owner is nil the pointer itself is the owner.
func Ptr[T any](p *T, owner any) *PtrTarget[T] {
	if owner == nil && p != nil {
		owner = p
	}
	return &PtrTarget[T]{ptr: p, owner: owner}
}

func (t *PtrTarget[T]) Value() T {
	if t.ptr == nil {
		var zero T
		return zero
	}
	return *t.ptr
}

func (t *PtrTarget[T]) SetValue(v T) {
	if t.ptr != nil {
		*t.ptr = v
	}
}

func (t *PtrTarget[T]) Owner() any { return t.owner }

// FuncTarget adapts a getter and setter pair.
type FuncTarget[T any] struct {
	get   func() T
	set   func(T)
	owner any
}

// Func builds a target from accessor closures.
func Func[T any](get func() T, set func(T), owner any) *FuncTarget[T] {
	return &FuncTarget[T]{get: get, set: set, owner: owner}
}

func (t *FuncTarget[T]) Value() T     { return t.get() }
func (t *FuncTarget[T]) SetValue(v T) { t.set(v) }
func (t *FuncTarget[T]) Owner() any   { return t.owner }
