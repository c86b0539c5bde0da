package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-services/framework/services"
)

// session only exposes the mixin surface.
type session struct {
	services.HasServiceRegistry
}

func TestHasServiceRegistry_EmbeddedOwner(t *testing.T) {
	acc := newAccount("dave")
	_, err := acc.RegisterMethod("whoami", func(a *account) string { return a.name })
	require.NoError(t, err)

	var h services.HasServiceRegistry = acc
	got, err := h.Sv("whoami")
	require.NoError(t, err)
	assert.Equal(t, "dave", got)
}

func TestInvokeAs(t *testing.T) {
	acc := newAccount("acc")
	_, err := acc.Register("login", loginWith("cowa"))
	require.NoError(t, err)

	valid, ok, err := services.InvokeAs[bool](acc, "login", "test", "cowa")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, valid)

	_, ok, err = services.InvokeAs[string](acc, "login", "test", "cowa")
	require.NoError(t, err)
	assert.False(t, ok, "bool result is not a string")

	valid, ok, err = services.InvokeAs[bool](acc, "missing")
	require.NoError(t, err)
	assert.False(t, ok, "missing service must not look like a false result")
	assert.False(t, valid)
}

func TestInvokeAs_PassesCallbackError(t *testing.T) {
	r := services.New()
	boom := errors.New("boom")
	_, err := r.Register("fail", func() (string, error) { return "", boom })
	require.NoError(t, err)

	_, ok, err := services.InvokeAs[string](r, "fail")
	assert.Same(t, boom, err)
	assert.False(t, ok)
}

// staleAccount claims every service is handled, as a Handled check that ran
// before a concurrent Unregister would.
type staleAccount struct {
	*services.Registry
}

func (staleAccount) Handled(string) bool { return true }

func TestInvokeAs_FoundDecidedByTheCallLookup(t *testing.T) {
	s := staleAccount{Registry: services.New()}
	id, err := s.Register("login", loginWith("cowa"))
	require.NoError(t, err)
	require.NoError(t, s.Unregister(id, "login"))

	valid, ok, err := services.InvokeAs[bool](s, "login", "test", "cowa")
	require.NoError(t, err)
	assert.False(t, ok, "removed service must not look like a false result")
	assert.False(t, valid)

	assert.Panics(t, func() { services.MustInvoke[bool](s, "login", "test", "cowa") })
}

func TestTryInvoke(t *testing.T) {
	r := services.New()
	_, found, err := r.TryInvoke("login", "test", "cowa")
	require.NoError(t, err)
	assert.False(t, found)

	_, err = r.Register("login", loginWith("cowa"))
	require.NoError(t, err)

	res, found, err := r.TryInvoke("login", "test", "bunga")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, false, res)
}

func TestInvokeAs_WithoutTryInvokeAssumesRegistered(t *testing.T) {
	s := session{HasServiceRegistry: services.New()}
	_, err := s.Register("n", func() int { return 1 })
	require.NoError(t, err)

	n, ok, err := services.InvokeAs[int](s, "n")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, n)
}

func TestMustInvoke(t *testing.T) {
	r := services.New()
	_, err := r.Register("answer", func() int { return 42 })
	require.NoError(t, err)

	assert.Equal(t, 42, services.MustInvoke[int](r, "answer"))
	assert.Panics(t, func() { services.MustInvoke[int](r, "missing") })
	assert.Panics(t, func() { services.MustInvoke[string](r, "answer") })
}
