package services

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// ── Callback shape ───────────────────────────────────────────────────────────

// callbackValue checks that fn is a non-nil func whose results are one of
// (), (T), (error) or (T, error).
func callbackValue(fn any) (reflect.Value, bool) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return reflect.Value{}, false
	}
	t := v.Type()
	switch t.NumOut() {
	case 0, 1:
		return v, true
	case 2:
		return v, t.Out(1) == errorType
	default:
		return reflect.Value{}, false
	}
}

// ── Invocation ───────────────────────────────────────────────────────────────

// call runs reg's callback with args followed by the captured params.
// Callbacks added with RegisterMethod get the owner in front of both.
func call(owner any, reg *registration, args []any) (any, error) {
	fn := reg.fn
	t := fn.Type()

	in := make([]reflect.Value, 0, t.NumIn())
	if reg.method {
		if owner == nil || !reflect.TypeOf(owner).AssignableTo(t.In(0)) {
			return nil, newValidationError("invoke", KindArgumentMismatch,
				fmt.Sprintf("for service %q: owner %T is not a %s", reg.id.service, owner, t.In(0)))
		}
		in = append(in, reflect.ValueOf(owner))
	}

	all := make([]any, 0, len(args)+len(reg.params))
	all = append(all, args...)
	all = append(all, reg.params...)

	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
	}
	if len(in)+len(all) < fixed || (!t.IsVariadic() && len(in)+len(all) > fixed) {
		return nil, newValidationError("invoke", KindArgumentMismatch,
			fmt.Sprintf("for service %q: callback takes %d arguments, got %d", reg.id.service, t.NumIn()-len(in), len(all)))
	}

	for i, a := range all {
		pos := len(in)
		var pt reflect.Type
		if pos < fixed {
			pt = t.In(pos)
		} else {
			pt = t.In(t.NumIn() - 1).Elem()
		}
		v, ok := argValue(a, pt)
		if !ok {
			return nil, newValidationError("invoke", KindArgumentMismatch,
				fmt.Sprintf("for service %q: argument %d is %T, callback wants %s", reg.id.service, i, a, pt))
		}
		in = append(in, v)
	}

	out := fn.Call(in)
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if t.Out(0) == errorType {
			return nil, asError(out[0])
		}
		return out[0].Interface(), nil
	default:
		return out[0].Interface(), asError(out[1])
	}
}

// takesReceiver reports whether t can be called with the owner as its first
// argument. A nil owner is checked again at call time.
func takesReceiver(owner any, t reflect.Type) bool {
	if t.NumIn() == 0 || (t.IsVariadic() && t.NumIn() == 1) {
		return false
	}
	return owner == nil || reflect.TypeOf(owner).AssignableTo(t.In(0))
}

func argValue(a any, pt reflect.Type) (reflect.Value, bool) {
	if a == nil {
		switch pt.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(pt), true
		}
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(a)
	if !v.Type().AssignableTo(pt) {
		return reflect.Value{}, false
	}
	return v, true
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}
