package services

// Untyped entry points. Callers that only hold a []any (scripts, CLI
// arguments, decoded configuration) go through these so that arity and type
// mistakes come back as ValidationErrors instead of compile errors.

// RegisterArgs is Register for (name, callback, params...) given as values.
func (r *Registry) RegisterArgs(args ...any) (ID, error) {
	if len(args) < 2 {
		return ID{}, newValidationError("register", KindMissingArguments)
	}
	name, ok := args[0].(string)
	if !ok {
		return ID{}, newValidationError("register", KindNameNotString)
	}
	if _, ok := callbackValue(args[1]); !ok {
		return ID{}, newValidationError("register", KindCallbackNotInvocable)
	}
	return r.Register(name, args[1], args[2:]...)
}

// UnregisterArgs is Unregister for exactly (id, name) given as values.
func (r *Registry) UnregisterArgs(args ...any) error {
	if len(args) != 2 {
		return newValidationError("unregister", KindWrongArity)
	}
	id, ok := args[0].(ID)
	if !ok {
		return newValidationError("unregister", KindInvalidID)
	}
	name, ok := args[1].(string)
	if !ok {
		return newValidationError("unregister", KindNameNotString)
	}
	return r.Unregister(id, name)
}

// InvokeArgs is Invoke for (name, args...) given as values.
func (r *Registry) InvokeArgs(args ...any) (any, error) {
	if len(args) < 1 {
		return nil, newValidationError("invoke", KindMissingServiceName)
	}
	name, ok := args[0].(string)
	if !ok {
		return nil, newValidationError("invoke", KindNameNotString)
	}
	return r.Invoke(name, args[1:]...)
}
