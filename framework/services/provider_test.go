package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-services/framework/services"
)

// ── stub providers ────────────────────────────────────────────────────────────

type loginProvider struct {
	services.BaseProvider
	registerCalls int
}

func (p *loginProvider) Register(reg *services.Registry) error {
	p.registerCalls++
	_, err := reg.Register("login", loginWith("cowa"))
	return err
}

// bootProvider checks a service owned by another provider during Boot.
type bootProvider struct {
	bootCalled bool
	loginOK    bool
}

func (p *bootProvider) Register(reg *services.Registry) error { return nil }

func (p *bootProvider) Boot(reg *services.Registry) error {
	p.bootCalled = true
	ok, _, err := services.InvokeAs[bool](reg, "login", "test", "cowa")
	p.loginOK = ok
	return err
}

type failingProvider struct {
	services.BaseProvider
	err error
}

func (p *failingProvider) Register(reg *services.Registry) error { return p.err }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

func TestProviders_RegisterCalledImmediately(t *testing.T) {
	reg := services.New()
	providers := services.NewProviderRegistry(reg)

	p := &loginProvider{}
	require.NoError(t, providers.Register(p))

	assert.Equal(t, 1, p.registerCalls)
	assert.True(t, reg.Handled("login"))
}

func TestProviders_BootAfterAllRegistered(t *testing.T) {
	reg := services.New()
	providers := services.NewProviderRegistry(reg)

	boot := &bootProvider{}
	require.NoError(t, providers.Register(boot))
	require.NoError(t, providers.Register(&loginProvider{}))
	assert.False(t, boot.bootCalled, "Boot() should not run before providers.Boot()")

	require.NoError(t, providers.Boot())
	assert.True(t, boot.bootCalled)
	assert.True(t, boot.loginOK, "Boot() should see services from later providers")
	assert.True(t, providers.Booted())
}

func TestProviders_DuplicateRegisterIgnored(t *testing.T) {
	reg := services.New()
	providers := services.NewProviderRegistry(reg)

	p := &loginProvider{}
	require.NoError(t, providers.Register(p))
	require.NoError(t, providers.Register(p))

	assert.Equal(t, 1, p.registerCalls)
	assert.Equal(t, 1, reg.Count("login"))
	assert.Len(t, providers.Providers(), 1)
}

func TestProviders_BootIdempotent(t *testing.T) {
	providers := services.NewProviderRegistry(services.New())
	assert.False(t, providers.Booted())

	require.NoError(t, providers.Boot())
	require.NoError(t, providers.Boot())
	assert.True(t, providers.Booted())
}

func TestProviders_RegisterAfterBootBootsImmediately(t *testing.T) {
	reg := services.New()
	providers := services.NewProviderRegistry(reg)
	require.NoError(t, providers.Boot())

	require.NoError(t, providers.Register(&loginProvider{}))
	boot := &bootProvider{}
	require.NoError(t, providers.Register(boot))

	assert.True(t, boot.bootCalled)
	assert.True(t, boot.loginOK)
}

func TestProviders_RegisterErrorWrapped(t *testing.T) {
	providers := services.NewProviderRegistry(services.New())
	boom := errors.New("boom")

	err := providers.Register(&failingProvider{err: boom})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failingProvider")
	assert.Empty(t, providers.Providers())
}

func TestBaseProvider_BootNoop(t *testing.T) {
	var p services.BaseProvider
	assert.NoError(t, p.Boot(services.New()))
}
