package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-services/framework/services"
)

func TestRegisterArgs_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want services.Kind
	}{
		{"no arguments", nil, services.KindMissingArguments},
		{"only name", []any{"onlyName"}, services.KindMissingArguments},
		{"name not string", []any{42, func() {}}, services.KindNameNotString},
		{"callback not func", []any{"svc", "not a func"}, services.KindCallbackNotInvocable},
		{"callback nil func", []any{"svc", (func())(nil)}, services.KindCallbackNotInvocable},
		{"callback bad results", []any{"svc", func() (int, int) { return 0, 0 }}, services.KindCallbackNotInvocable},
		{"callback too many results", []any{"svc", func() (int, int, error) { return 0, 0, nil }}, services.KindCallbackNotInvocable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := services.New()
			id, err := r.RegisterArgs(tt.args...)
			require.Error(t, err)
			assert.False(t, id.Valid())
			assert.True(t, services.IsValidation(err))
			kind, ok := services.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, kind)
			assert.Empty(t, r.Names(), "a failed register must not mutate the registry")
		})
	}
}

func TestRegisterArgs_CapturesTrailingValues(t *testing.T) {
	r := services.New()
	_, err := r.RegisterArgs("greet", func(greeting, name string) string {
		return greeting + ", " + name
	}, "world")
	require.NoError(t, err)

	got, err := r.InvokeArgs("greet", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello, world", got)
}

func TestUnregisterArgs_Validation(t *testing.T) {
	r := services.New()
	id, err := r.Register("login", func() {})
	require.NoError(t, err)

	tests := []struct {
		name string
		args []any
		want services.Kind
	}{
		{"no arguments", nil, services.KindWrongArity},
		{"one argument", []any{id}, services.KindWrongArity},
		{"three arguments", []any{id, "login", "extra"}, services.KindWrongArity},
		{"plain string id", []any{id.String(), "login"}, services.KindInvalidID},
		{"number id", []any{1, "login"}, services.KindInvalidID},
		{"name not string", []any{id, 7}, services.KindNameNotString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.UnregisterArgs(tt.args...)
			require.Error(t, err)
			assert.True(t, services.IsKind(err, tt.want), err.Error())
			assert.Equal(t, 1, r.Count("login"), "registry must be untouched")
		})
	}

	require.NoError(t, r.UnregisterArgs(id, "login"))
	assert.Equal(t, 0, r.Count("login"))
}

func TestInvokeArgs_Validation(t *testing.T) {
	r := services.New()

	_, err := r.InvokeArgs()
	assert.True(t, services.IsKind(err, services.KindMissingServiceName))

	_, err = r.InvokeArgs(3.14)
	assert.True(t, services.IsKind(err, services.KindNameNotString))

	got, err := r.InvokeArgs("unknown", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, false, got)
}
