package tween

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
)

// Stats are running counters kept by a Scheduler.
type Stats struct {
	Ticks     int64
	Started   int64 // Tween starts, nested ones included
	Completed int64 // Tweens that reached their terminal state
	Removed   int64 // Handles deregistered without completing
	Active    int
}

// Scheduler owns the set of active tweenables and advances them once per
// host tick.
//
// The mutex guards registration state only. It is released before any
// tween code runs, so callbacks may start, stop or chain tweens freely.
// Tick itself must not be called from inside a callback.
type Scheduler struct {
	settings Settings

	mu      sync.Mutex
	active  []Tweenable
	index   map[Tweenable]struct{}
	removed map[Tweenable]struct{}
	ticking bool
	scratch []Tweenable
	pools   map[KindID]any
	stats   Stats
}

// NewScheduler creates a scheduler from a copy of settings. Nil selects
// DefaultSettings.
func NewScheduler(settings *Settings) *Scheduler {
	if settings == nil {
		settings = DefaultSettings()
	}
	return &Scheduler{
		settings: settings.clone(),
		index:    make(map[Tweenable]struct{}),
		removed:  make(map[Tweenable]struct{}),
		pools:    make(map[KindID]any),
	}
}

// Settings returns a copy of the scheduler's configuration.
func (s *Scheduler) Settings() Settings {
	out := s.settings
	out.Pooling = maps.Clone(s.settings.Pooling)
	return out
}

// Logger returns the logger configured in Settings.
func (s *Scheduler) Logger() *log.Logger {
	return s.settings.Logger
}

// Add registers a handle. Adding a registered handle is a no-op.
func (s *Scheduler) Add(h Tweenable) {
	if h == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[h]; ok {
		return
	}
	s.index[h] = struct{}{}
	s.active = append(s.active, h)
}

// Remove deregisters and recycles a handle. Handles the scheduler does not
// hold are left alone.
func (s *Scheduler) Remove(h Tweenable) {
	if s.detach(h) {
		s.mu.Lock()
		s.stats.Removed++
		s.mu.Unlock()
		h.RecycleSelf()
	}
}

// detach drops h from the active set and reports whether it was there.
func (s *Scheduler) detach(h Tweenable) bool {
	if h == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[h]; !ok {
		return false
	}
	delete(s.index, h)
	if i := slices.Index(s.active, h); i >= 0 {
		s.active = slices.Delete(s.active, i, i+1)
	}
	if s.ticking {
		s.removed[h] = struct{}{}
	}
	return true
}

// Tick advances every handle registered when the tick began. Handles added
// during the pass wait for the next tick; handles removed during the pass
// are not touched again. A handle that restarted itself from a completion
// callback stays registered.
func (s *Scheduler) Tick(f Frame) {
	s.mu.Lock()
	if s.ticking {
		s.mu.Unlock()
		s.settings.Logger.Error("scheduler: tick called re-entrantly")
		return
	}
	s.ticking = true
	s.stats.Ticks++
	s.scratch = append(s.scratch[:0], s.active...)
	batch := s.scratch
	s.mu.Unlock()

	for _, h := range batch {
		if s.suppressed(h) {
			continue
		}
		if !h.Update(f) || h.IsRunning() {
			continue
		}
		if s.detach(h) {
			h.RecycleSelf()
		}
	}

	s.mu.Lock()
	clear(s.removed)
	clear(batch)
	s.ticking = false
	s.mu.Unlock()
}

func (s *Scheduler) suppressed(h Tweenable) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.removed[h]
	return ok
}

// snapshot returns the active set newest first, so stopping in order
// leaves chained tweens started by earlier entries untouched.
func (s *Scheduler) snapshot() []Tweenable {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := slices.Clone(s.active)
	slices.Reverse(out)
	return out
}

// StopAll stops every active handle.
func (s *Scheduler) StopAll(complete bool) {
	for _, h := range s.snapshot() {
		h.Stop(complete, false)
	}
}

// StopAllWithContext stops every handle tagged with ctx.
func (s *Scheduler) StopAllWithContext(ctx any, complete bool) {
	for _, h := range s.FindAllWithContext(ctx) {
		h.Stop(complete, false)
	}
}

// StopAllWithTarget stops every tween whose target is owned by owner.
func (s *Scheduler) StopAllWithTarget(owner any, complete bool) {
	for _, h := range s.FindAllWithTarget(owner) {
		h.Stop(complete, false)
	}
}

// FindAllWithContext returns the active handles tagged with ctx, newest first.
// Context tokens should be comparable; an uncomparable token matches nothing.
func (s *Scheduler) FindAllWithContext(ctx any) []Tweenable {
	var out []Tweenable
	for _, h := range s.snapshot() {
		if c, ok := h.(interface{ Context() any }); ok && sameToken(c.Context(), ctx) {
			out = append(out, h)
		}
	}
	return out
}

// FindAllWithTarget returns the active tweens animating a value owned by
// owner, newest first. Owners follow the same comparability rule as context
// tokens.
func (s *Scheduler) FindAllWithTarget(owner any) []Tweenable {
	var out []Tweenable
	for _, h := range s.snapshot() {
		if c, ok := h.(interface{ TargetOwner() any }); ok && sameToken(c.TargetOwner(), owner) {
			out = append(out, h)
		}
	}
	return out
}

// sameToken reports a == b, treating values of uncomparable types as
// different instead of panicking.
func sameToken(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() {
		return false
	}
	return a == b
}

// PauseAll pauses every active handle.
func (s *Scheduler) PauseAll() {
	for _, h := range s.snapshot() {
		h.Pause()
	}
}

// ResumeAll resumes every active handle.
func (s *Scheduler) ResumeAll() {
	for _, h := range s.snapshot() {
		h.Resume()
	}
}

// SceneReset tells the scheduler the host discarded its scene. With
// FlushOnReset set, every active handle is dropped and recycled without
// callbacks. It returns the number of handles flushed.
func (s *Scheduler) SceneReset() int {
	if !s.settings.FlushOnReset {
		return 0
	}

	s.mu.Lock()
	flushed := s.active
	s.active = nil
	clear(s.index)
	if s.ticking {
		for _, h := range flushed {
			s.removed[h] = struct{}{}
		}
	}
	s.stats.Removed += int64(len(flushed))
	s.mu.Unlock()

	for _, h := range flushed {
		h.RecycleSelf()
	}
	return len(flushed)
}

// Len returns the number of active handles.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// Stats returns a snapshot of the scheduler counters.
func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.stats
	out.Active = len(s.active)
	return out
}

func (s *Scheduler) noteStart() {
	s.mu.Lock()
	s.stats.Started++
	s.mu.Unlock()
}

func (s *Scheduler) noteComplete() {
	s.mu.Lock()
	s.stats.Completed++
	s.mu.Unlock()
}

// pooling reports whether the pool for id is enabled.
func (s *Scheduler) pooling(id KindID) bool {
	return s.settings.Pooling[id]
}

// poolFor returns the tween pool for a kind, creating it on first use.
func poolFor[T any](s *Scheduler, k Kind[T]) *Pool[*Tween[T]] {
	k.mustValid()

	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.pools[k.ID]; ok {
		pool, ok := p.(*Pool[*Tween[T]])
		if !ok {
			panic("tween: kind " + k.ID.String() + " registered with a different value type")
		}
		return pool
	}
	pool := NewPool(func() *Tween[T] { return newTween(s, k) })
	s.pools[k.ID] = pool
	return pool
}

func releaseTween[T any](s *Scheduler, t *Tween[T]) {
	if !s.pooling(t.kind.ID) {
		return
	}
	t.pooled = true
	poolFor(s, t.kind).Release(t)
}

// Warm pre-fills the pool of kind k with n spare tweens.
func Warm[T any](s *Scheduler, k Kind[T], n int) {
	pool := poolFor(s, k)
	pool.Warm(n)
}

// PoolLen returns the number of spare tweens pooled for kind k.
func PoolLen[T any](s *Scheduler, k Kind[T]) int {
	return poolFor(s, k).Len()
}

// New returns a tween of kind k bound to target, drawn from the pool when
// pooling is enabled for k.
func New[T any](s *Scheduler, k Kind[T], target Target[T], to T, duration float64) *Tween[T] {
	var t *Tween[T]
	if s.pooling(k.ID) {
		t = poolFor(s, k).Acquire()
		t.pooled = false
	} else {
		k.mustValid()
		t = newTween(s, k)
	}
	return t.Initialize(target, to, duration)
}

// NewFloat is New for float64 targets.
func NewFloat(s *Scheduler, target Target[float64], to, duration float64) *Tween[float64] {
	return New(s, Float, target, to, duration)
}

// Value tweens a self-owned value from one point to another. Read the
// value from OnUpdate or from the returned target.
func Value[T any](s *Scheduler, k Kind[T], from, to T, duration float64) (*Tween[T], *ValueTarget[T]) {
	target := NewValueTarget(from)
	return New(s, k, Target[T](target), to, duration).SetFrom(from), target
}

// WarmKind is Warm addressed by KindID, for configuration-driven warmup.
func WarmKind(s *Scheduler, id KindID, n int) {
	switch id {
	case KindFloat:
		Warm(s, Float, n)
	case KindInt:
		Warm(s, Int, n)
	case KindVec2:
		Warm(s, Vec2, n)
	case KindVec3:
		Warm(s, Vec3, n)
	case KindEuler:
		Warm(s, Euler, n)
	case KindVec4:
		Warm(s, Vec4, n)
	case KindQuat:
		Warm(s, Quat, n)
	case KindColor:
		Warm(s, Color, n)
	case KindRect:
		Warm(s, Rect, n)
	default:
		panic(fmt.Sprintf("tween: unknown value kind %v", id))
	}
}
