// Package eff implements a dynamically-scoped effect dispatch mechanism:
// generators and strategies install handlers for a small fixed set of
// effects (sample, next, shrink, size, discard, succeed, label, rewind,
// read, write, log) without threading a context parameter through every
// call. It is the substrate every other package in this module is built
// on top of.
package eff

import (
	"bytes"
	"reflect"
	"runtime"
	"strconv"
	"sync"
)

// frame is one entry in a goroutine's handler stack. parent is the stack
// that was current at the moment this frame was installed — not the stack
// beneath it at invoke time — which is what gives handler bodies the
// "transparency" the spec requires: a handler sees the world as it was
// when it was installed, not the caller's world.
type frame struct {
	parent   *frame
	handlers map[reflect.Type]any
}

// Binding associates one effect's argument type with the handler function
// that should serve it for the lifetime of an Install call.
type Binding struct {
	typ reflect.Type
	fn  any
}

// bind constructs a Binding for the effect whose argument type is E. fn
// must have type func(E) R for whatever R the corresponding Invoke call
// expects; mismatches would only happen from a bug inside this module,
// since ops.go's public functions always pair matching types.
func bind[E any](fn any) Binding {
	var zero E
	return Binding{typ: reflect.TypeOf(zero), fn: fn}
}

// Scope is a handle returned by Install or Restore; closing it restores
// the handler stack to exactly what it was beforehand, even if the
// installed scope panicked.
type Scope struct {
	prev *frame
}

// Close restores the handler stack to what it was before the matching
// Install/Restore call. Callers should defer Close immediately after
// Install so the stack unwinds correctly on panic too.
func (s Scope) Close() { setTop(s.prev) }

// Install pushes a new frame binding the given effects and returns a Scope
// that restores the previous stack when closed.
func Install(bindings ...Binding) Scope {
	prev := top()
	nf := &frame{parent: prev, handlers: make(map[reflect.Type]any, len(bindings))}
	for _, b := range bindings {
		nf.handlers[b.typ] = b.fn
	}
	setTop(nf)
	return Scope{prev: prev}
}

// State is an opaque snapshot of a goroutine's handler stack, captured by
// Save and reinstated (in the calling or a different goroutine) by
// Restore.
type State struct {
	f *frame
}

// Save captures the current handler stack so it can be reinstated later,
// typically by a child goroutine that needs to observe the same handlers
// as its parent.
func Save() State { return State{f: top()} }

// Restore installs a previously captured State as if the enclosing scope
// had installed exactly that stack. Closing the returned Scope restores
// whatever was active beforehand.
func Restore(s State) Scope {
	prev := top()
	setTop(s.f)
	return Scope{prev: prev}
}

// invoke resolves E to the innermost installed handler, running it with
// the stack swapped to the frame that was current when that handler was
// installed, then restores the caller's stack (even on panic). If no
// handler is installed for E, fallback runs instead, with the stack
// untouched (there is nothing to swap to).
func invoke[E, R any](arg E, fallback func(E) R) R {
	var zero E
	typ := reflect.TypeOf(zero)
	for f := top(); f != nil; f = f.parent {
		raw, ok := f.handlers[typ]
		if !ok {
			continue
		}
		fn := raw.(func(E) R)
		callerTop := f.parent
		prev := top()
		setTop(callerTop)
		defer func() { setTop(prev) }()
		return fn(arg)
	}
	return fallback(arg)
}

// goroutine-local storage. Go has no native thread-local/goroutine-local
// primitive; the handler stack must nonetheless be goroutine-local (see
// package doc and DESIGN.md), so it is emulated with a mutex-protected map
// keyed by the numeric goroutine ID parsed out of runtime.Stack's header —
// the standard workaround in the absence of a language feature for this.
var (
	tlsMu    sync.Mutex
	tlsStack = map[int64]*frame{}
)

// GoroutineID returns the numeric id of the calling goroutine, parsed out
// of runtime.Stack's header. It is exported for other packages in this
// module (shrink.List) that need to assert single-goroutine ownership of a
// piece of mutable state, the same way the handler stack itself is scoped.
func GoroutineID() int64 { return goroutineID() }

func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], []byte("goroutine "))
	sp := bytes.IndexByte(b, ' ')
	if sp < 0 {
		return 0
	}
	id, _ := strconv.ParseInt(string(b[:sp]), 10, 64)
	return id
}

func top() *frame {
	id := goroutineID()
	tlsMu.Lock()
	defer tlsMu.Unlock()
	return tlsStack[id]
}

func setTop(f *frame) {
	id := goroutineID()
	tlsMu.Lock()
	defer tlsMu.Unlock()
	if f == nil {
		delete(tlsStack, id)
		return
	}
	tlsStack[id] = f
}
