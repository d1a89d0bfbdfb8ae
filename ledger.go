package panel

// Ledger records "this key changed" between a mutation and the render pass
// that must react to it. Notify overwrites rather than accumulates, and
// TryConsume reports a pending change at most once.
//
// A Ledger is owned by the tree (or widget) that uses it, not shared
// process-wide. It is not safe for concurrent use.
type Ledger[K comparable] struct {
	pending map[K]struct{}
}

// NewLedger creates an empty ledger.
func NewLedger[K comparable]() *Ledger[K] {
	return &Ledger[K]{pending: make(map[K]struct{})}
}

// Notify marks key as changed.
func (l *Ledger[K]) Notify(key K) {
	if l.pending == nil {
		l.pending = make(map[K]struct{})
	}
	l.pending[key] = struct{}{}
}

// TryConsume removes key and reports whether it was pending. Unknown keys
// report false.
func (l *Ledger[K]) TryConsume(key K) bool {
	if _, ok := l.pending[key]; !ok {
		return false
	}
	delete(l.pending, key)
	return true
}

// Pending reports whether key is marked without consuming it.
func (l *Ledger[K]) Pending(key K) bool {
	_, ok := l.pending[key]
	return ok
}

// Forget drops key without reporting it. Owners call it when key can no
// longer be reached by a render pass.
func (l *Ledger[K]) Forget(key K) { delete(l.pending, key) }

// Len returns the number of unconsumed entries.
func (l *Ledger[K]) Len() int { return len(l.pending) }

// Reset drops every pending entry.
func (l *Ledger[K]) Reset() { clear(l.pending) }

// ValueLedger is a Ledger that carries a value with each notification. The
// last Notify for a key wins.
type ValueLedger[K comparable, V any] struct {
	pending map[K]V
}

// NewValueLedger creates an empty value ledger.
func NewValueLedger[K comparable, V any]() *ValueLedger[K, V] {
	return &ValueLedger[K, V]{pending: make(map[K]V)}
}

// Notify records val for key, replacing any earlier value.
func (l *ValueLedger[K, V]) Notify(key K, val V) {
	if l.pending == nil {
		l.pending = make(map[K]V)
	}
	l.pending[key] = val
}

// TryConsume removes key and returns its value. ok is false when nothing was
// pending.
func (l *ValueLedger[K, V]) TryConsume(key K) (val V, ok bool) {
	val, ok = l.pending[key]
	if ok {
		delete(l.pending, key)
	}
	return val, ok
}

// Len returns the number of unconsumed entries.
func (l *ValueLedger[K, V]) Len() int { return len(l.pending) }
