package host

import "sync"

// Session holds the one input currently being edited. Track replaces it
// wholesale on every focus change.
type Session struct {
	mu    sync.Mutex
	id    string
	input Input
}

func NewSession() *Session {
	return &Session{}
}

// Track makes input, identified by id, the active editing target.
func (me *Session) Track(id string, input Input) {
	me.mu.Lock()
	defer me.mu.Unlock()

	me.id = id
	me.input = input
}

// Input returns the tracked input and its id; nil when nothing is tracked.
func (me *Session) Input() (string, Input) {
	me.mu.Lock()
	defer me.mu.Unlock()

	return me.id, me.input
}

// Forget drops the tracked input if it is still id. A blur that arrives
// after focus moved elsewhere leaves the newer input alone.
func (me *Session) Forget(id string) {
	me.mu.Lock()
	defer me.mu.Unlock()

	if me.id != id {
		return
	}
	me.id = ""
	me.input = nil
}
