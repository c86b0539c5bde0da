package services

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"
)

// registration holds one callback bound to a service name.
type registration struct {
	id     ID
	fn     reflect.Value
	params []any
	method bool // owner is passed as the first argument
}

// ── Registry ─────────────────────────────────────────────────────────────────

// Registry maps service names to their registrations, newest first.
// The registration at the front of a list is the one Invoke calls.
//
// The zero value is ready to use. Embed a *Registry (or a Registry) in a type
// to give it Register / Unregister / Invoke / Sv.
type Registry struct {
	mu sync.Mutex

	// name → registrations, index 0 is the preferred one
	services map[string][]*registration

	// receiver handed to callbacks added with RegisterMethod
	owner any

	logger *slog.Logger
}

// Option configures a Registry built by New.
type Option func(*Registry)

// WithOwner sets the receiver passed to callbacks added with RegisterMethod.
func WithOwner(owner any) Option {
	return func(r *Registry) { r.owner = owner }
}

// WithLogger makes the registry log registrations at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// New creates an empty registry.
//
//	type Account struct{ *services.Registry }
//
//	acc := &Account{}
//	acc.Registry = services.New(services.WithOwner(acc))
func New(opts ...Option) *Registry {
	r := &Registry{services: make(map[string][]*registration)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetOwner sets the receiver for RegisterMethod callbacks. Use it when the
// Registry is embedded by value and New was never called.
func (r *Registry) SetOwner(owner any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owner = owner
}

// ── Registration ──────────────────────────────────────────────────────────────

// Register binds callback to name and makes it the preferred implementation.
// params are captured now and appended after the call-time arguments on
// every Invoke.
//
//	id, err := acc.Register("login", func(user, pass string) bool {
//	    return user == "test" && pass == "cowa"
//	})
func (r *Registry) Register(name string, callback any, params ...any) (ID, error) {
	if callback == nil {
		return ID{}, newValidationError("register", KindMissingArguments)
	}
	fn, ok := callbackValue(callback)
	if !ok {
		return ID{}, newValidationError("register", KindCallbackNotInvocable)
	}
	return r.add(name, &registration{fn: fn, params: slices.Clone(params)}), nil
}

// RegisterMethod is Register for callbacks that take the owner as their
// first parameter, such as method expressions. Invoke passes the owner,
// then the call-time arguments, then params.
//
//	acc.RegisterMethod("audit", (*Account).audit)
func (r *Registry) RegisterMethod(name string, callback any, params ...any) (ID, error) {
	if callback == nil {
		return ID{}, newValidationError("register", KindMissingArguments)
	}
	fn, ok := callbackValue(callback)
	if !ok {
		return ID{}, newValidationError("register", KindCallbackNotInvocable)
	}
	r.mu.Lock()
	owner := r.owner
	r.mu.Unlock()
	if !takesReceiver(owner, fn.Type()) {
		return ID{}, newValidationError("register", KindCallbackNotInvocable,
			fmt.Sprintf("%s cannot take the owner %T as its first argument", fn.Type(), owner))
	}
	return r.add(name, &registration{fn: fn, params: slices.Clone(params), method: true}), nil
}

// add prepends reg to name's list and hands out its ID.
func (r *Registry) add(name string, reg *registration) ID {
	reg.id = newID(name)

	r.mu.Lock()
	if r.services == nil {
		r.services = make(map[string][]*registration)
	}
	list := make([]*registration, 0, len(r.services[name])+1)
	list = append(list, reg)
	list = append(list, r.services[name]...)
	r.services[name] = list
	count := len(list)
	r.mu.Unlock()

	r.log().Debug("service registered", "service", name, "id", reg.id.seq, "count", count)
	return reg.id
}

// Unregister removes the registration identified by id from name.
// An unknown name is not an error.
func (r *Registry) Unregister(id ID, name string) error {
	if !id.Valid() {
		return newValidationError("unregister", KindInvalidID)
	}

	r.mu.Lock()
	list, ok := r.services[name]
	if !ok {
		r.mu.Unlock()
		return nil
	}
	// Build a new slice so a snapshot taken by an in-flight Invoke is untouched.
	kept := make([]*registration, 0, len(list))
	for _, reg := range list {
		if reg.id != id {
			kept = append(kept, reg)
		}
	}
	if len(kept) == 0 {
		delete(r.services, name)
	} else {
		r.services[name] = kept
	}
	removed := len(list) - len(kept)
	r.mu.Unlock()

	if removed > 0 {
		r.log().Debug("service unregistered", "service", name, "id", id.seq, "count", len(kept))
	}
	return nil
}

// ── Invocation ───────────────────────────────────────────────────────────────

// Invoke calls the preferred implementation of name with args, followed by
// the params captured at registration. It returns whatever the callback
// returns; an error result is passed through untouched.
//
// When no implementation is registered Invoke returns false and a nil error.
func (r *Registry) Invoke(name string, args ...any) (any, error) {
	res, found, err := r.TryInvoke(name, args...)
	if !found {
		return false, nil
	}
	return res, err
}

// TryInvoke is Invoke with an explicit found result, decided by the same
// lookup that picks the callback.
func (r *Registry) TryInvoke(name string, args ...any) (res any, found bool, err error) {
	r.mu.Lock()
	list := r.services[name]
	if len(list) == 0 {
		r.mu.Unlock()
		return nil, false, nil
	}
	front := list[0]
	owner := r.owner
	r.mu.Unlock()

	res, err = call(owner, front, args)
	return res, true, err
}

// Sv is shorthand for Invoke.
func (r *Registry) Sv(name string, args ...any) (any, error) {
	return r.Invoke(name, args...)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Handled reports whether name has at least one registration. It tells a
// callback that returned false apart from a missing handler.
func (r *Registry) Handled(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.services[name]) > 0
}

// Count returns the number of registrations for name.
func (r *Registry) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.services[name])
}

// Names returns the sorted names that have registrations.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.services))
	for name := range r.services {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Forget drops every registration for name.
func (r *Registry) Forget(name string) {
	r.mu.Lock()
	n := len(r.services[name])
	delete(r.services, name)
	r.mu.Unlock()

	if n > 0 {
		r.log().Debug("service forgotten", "service", name, "count", n)
	}
}

// Flush resets the registry. The owner and logger are kept.
func (r *Registry) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services = make(map[string][]*registration)
}

func (r *Registry) log() *slog.Logger {
	if r.logger == nil {
		return discard
	}
	return r.logger
}

var discard = slog.New(slog.DiscardHandler)
