package services

import "fmt"

// HasServiceRegistry is satisfied by any type embedding a *Registry.
type HasServiceRegistry interface {
	Register(name string, callback any, params ...any) (ID, error)
	Unregister(id ID, name string) error
	Invoke(name string, args ...any) (any, error)
	Sv(name string, args ...any) (any, error)
}

var _ HasServiceRegistry = (*Registry)(nil)

// InvokeAs calls Invoke and type-asserts the result.
// ok is false when no implementation is registered or the result is not a T.
//
//	valid, ok, err := services.InvokeAs[bool](acc, "login", "test", "cowa")
func InvokeAs[T any](h HasServiceRegistry, name string, args ...any) (T, bool, error) {
	var zero T
	res, found, err := tryInvoke(h, name, args)
	if !found || err != nil {
		return zero, false, err
	}
	typed, ok := res.(T)
	return typed, ok, nil
}

// MustInvoke is like InvokeAs but panics when the service is missing, the
// call fails, or the result is not a T.
func MustInvoke[T any](h HasServiceRegistry, name string, args ...any) T {
	res, found, err := tryInvoke(h, name, args)
	if !found {
		panic(fmt.Sprintf("services: MustInvoke[%T]: no service registered for [%s]", *new(T), name))
	}
	if err != nil {
		panic(fmt.Sprintf("services: MustInvoke[%T]: [%s]: %v", *new(T), name, err))
	}
	typed, ok := res.(T)
	if !ok {
		panic(fmt.Sprintf("services: MustInvoke[%T]: [%s] returned %T", *new(T), name, res))
	}
	return typed
}

// tryInvoke uses h's TryInvoke when it has one, so the lookup and the call
// see the same registration. Other implementations are assumed to handle name.
func tryInvoke(h HasServiceRegistry, name string, args []any) (any, bool, error) {
	if r, ok := h.(interface {
		TryInvoke(string, ...any) (any, bool, error)
	}); ok {
		return r.TryInvoke(name, args...)
	}
	res, err := h.Invoke(name, args...)
	return res, true, err
}
