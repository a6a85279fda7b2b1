package tween

// Sequence runs its members one after another. It satisfies Tweenable, so
// sequences nest. Only the sequence registers with the scheduler; members
// are driven through it.
type Sequence struct {
	sched      *Scheduler
	members    []Tweenable
	cursor     int
	started    bool
	paused     bool
	finished   bool
	nested     bool
	context    any
	onComplete func(*Sequence)
	done       doneSignal
}

// NewSequence creates a sequence holding members in order.
func (s *Scheduler) NewSequence(members ...Tweenable) *Sequence {
	seq := &Sequence{sched: s}
	for _, m := range members {
		seq.Append(m)
	}
	return seq
}

// Append adds a member at the end. A nil member is logged and ignored.
func (q *Sequence) Append(m Tweenable) *Sequence {
	if m == nil {
		q.sched.settings.Logger.Error("sequence: cannot append a nil tweenable", "len", len(q.members))
		return q
	}
	if n, ok := m.(nestable); ok {
		n.setNested(true)
	}
	q.members = append(q.members, m)
	return q
}

// OnComplete sets the handler fired once the last member completes.
func (q *Sequence) OnComplete(fn func(*Sequence)) *Sequence {
	q.onComplete = fn
	return q
}

func (q *Sequence) SetContext(ctx any) *Sequence {
	q.context = ctx
	return q
}

func (q *Sequence) Context() any { return q.context }

// Len returns the number of members.
func (q *Sequence) Len() int { return len(q.members) }

// Current returns the index of the running member.
func (q *Sequence) Current() int { return q.cursor }

func (q *Sequence) setNested(nested bool) { q.nested = nested }

// Start starts the first member and registers the sequence. Starting a
// running sequence is a no-op.
func (q *Sequence) Start() {
	if q.IsRunning() || q.paused {
		return
	}
	q.cursor = 0
	q.started = true
	q.finished = false
	q.done.arm()

	if len(q.members) > 0 {
		q.members[0].Start()
	}
	if !q.nested {
		q.sched.Add(q)
	}
}

func (q *Sequence) Pause() {
	if q.IsRunning() {
		q.paused = true
	}
}

func (q *Sequence) Resume() {
	q.paused = false
}

// Stop without completion skips every remaining member. With completion the
// current member jumps to its end value now and the completion handler
// fires; immediately also deregisters the sequence right away.
func (q *Sequence) Stop(complete, immediately bool) {
	q.paused = false
	if q.cursor < len(q.members) {
		q.members[q.cursor].Stop(complete, complete)
	}
	q.cursor = len(q.members)

	if !complete {
		// Deregistered by the next tick, without the completion handler.
		q.finished = true
		q.started = false
		q.done.fire()
		return
	}

	q.finish()
	if immediately && !q.nested {
		q.sched.Remove(q)
	}
}

func (q *Sequence) Update(f Frame) bool {
	if q.paused {
		return false
	}
	if q.cursor >= len(q.members) {
		q.finish()
		return true
	}

	if q.members[q.cursor].Update(f) {
		q.cursor++
		if q.cursor == len(q.members) {
			q.finish()
			return true
		}
		q.members[q.cursor].Start()
	}
	return false
}

func (q *Sequence) finish() {
	if q.finished {
		return
	}
	q.finished = true
	q.started = false
	done := q.done.current()
	if q.onComplete != nil {
		q.onComplete(q)
	}
	closeDone(done)
}

func (q *Sequence) IsRunning() bool {
	return q.started && !q.paused && q.cursor < len(q.members)
}

// Done returns a channel closed once the sequence finishes.
func (q *Sequence) Done() <-chan struct{} {
	return q.done.wait()
}

// RecycleSelf recycles every member and empties the sequence.
func (q *Sequence) RecycleSelf() {
	for _, m := range q.members {
		m.RecycleSelf()
	}
	clear(q.members)
	q.members = q.members[:0]
	q.cursor = 0
	q.started = false
	q.paused = false
	q.onComplete = nil
	q.context = nil
}
