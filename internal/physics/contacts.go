package physics

// pairKey identifies an unordered collider pair independent of report order.
type pairKey struct {
	a, b *Collider
}

func (k pairKey) reversed() pairKey {
	return pairKey{a: k.b, b: k.a}
}

// lookup finds k in m in either orientation.
func lookup(m map[pairKey]Contact, k pairKey) (Contact, bool) {
	if ct, ok := m[k]; ok {
		return ct, true
	}
	ct, ok := m[k.reversed()]
	return ct, ok
}

// ContactTracker derives enter and exit edges from the per-step contact
// reports of a World. Register Observe as a collision callback and call
// Commit once after every Step.
type ContactTracker struct {
	prev    map[pairKey]Contact
	curr    map[pairKey]Contact
	order   []pairKey // current step, report order
	last    []pairKey // previous step, report order
	entered []Contact
	exited  []Contact
}

// NewContactTracker creates an empty tracker.
func NewContactTracker() *ContactTracker {
	return &ContactTracker{
		prev: make(map[pairKey]Contact),
		curr: make(map[pairKey]Contact),
	}
}

// Observe records a contact for the current step. It has the ContactFunc
// signature so it can be passed to World.AddCollisionCallback.
func (t *ContactTracker) Observe(a, b *Collider, posA, posB Vector2) {
	k := pairKey{a: a, b: b}
	if _, seen := lookup(t.curr, k); seen {
		return
	}
	t.curr[k] = Contact{A: a, B: b, PosA: posA, PosB: posB}
	t.order = append(t.order, k)
}

// Commit closes the current step. It returns the pairs that started touching
// this step and the pairs that stopped touching since the previous step.
// The returned slices are valid until the next Commit.
func (t *ContactTracker) Commit() (entered, exited []Contact) {
	t.entered = t.entered[:0]
	t.exited = t.exited[:0]

	for _, k := range t.order {
		if _, ok := lookup(t.prev, k); !ok {
			t.entered = append(t.entered, t.curr[k])
		}
	}
	for _, k := range t.last {
		if _, ok := lookup(t.curr, k); !ok {
			t.exited = append(t.exited, t.prev[k])
		}
	}

	t.prev, t.curr = t.curr, t.prev
	clear(t.curr)
	t.last, t.order = t.order, t.last[:0]
	return t.entered, t.exited
}

// Touching reports whether a and b overlapped in the last committed step.
func (t *ContactTracker) Touching(a, b *Collider) bool {
	_, ok := lookup(t.prev, pairKey{a: a, b: b})
	return ok
}

// Forget drops every pair involving c, without reporting an exit.
// Call it when a collider is deregistered.
func (t *ContactTracker) Forget(c *Collider) {
	kept := t.last[:0]
	for _, k := range t.last {
		if k.a == c || k.b == c {
			delete(t.prev, k)
			continue
		}
		kept = append(kept, k)
	}
	t.last = kept
}

// Reset clears all tracked state.
func (t *ContactTracker) Reset() {
	clear(t.prev)
	clear(t.curr)
	t.order = t.order[:0]
	t.last = t.last[:0]
}
