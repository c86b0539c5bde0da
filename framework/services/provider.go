package services

import "fmt"

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups the registrations of one feature.
//
// Register is called as soon as the provider is added. Boot runs once every
// provider has registered, so it may Invoke services other providers own.
//
//	type AuthProvider struct{ services.BaseProvider }
//
//	func (p *AuthProvider) Register(reg *services.Registry) error {
//	    _, err := reg.Register("login", checkPassword)
//	    return err
//	}
type ServiceProvider interface {
	Register(reg *Registry) error
	Boot(reg *Registry) error
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable no-op Boot.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Registry) error { return nil }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry registers and boots ServiceProviders against one Registry.
type ProviderRegistry struct {
	reg        *Registry
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	booted     bool
}

// NewProviderRegistry creates a provider registry bound to reg.
func NewProviderRegistry(reg *Registry) *ProviderRegistry {
	return &ProviderRegistry{
		reg:        reg,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register method. Adding the same
// provider twice is a no-op. A provider added after Boot is booted at once.
func (p *ProviderRegistry) Register(provider ServiceProvider) error {
	if p.registered[provider] {
		return nil
	}
	if err := provider.Register(p.reg); err != nil {
		return fmt.Errorf("register provider %T: %w", provider, err)
	}
	p.registered[provider] = true
	p.providers = append(p.providers, provider)

	if p.booted {
		if err := provider.Boot(p.reg); err != nil {
			return fmt.Errorf("boot provider %T: %w", provider, err)
		}
	}
	return nil
}

// Boot calls Boot on every registered provider, in registration order.
// Later calls are no-ops.
func (p *ProviderRegistry) Boot() error {
	if p.booted {
		return nil
	}
	p.booted = true
	for _, provider := range p.providers {
		if err := provider.Boot(p.reg); err != nil {
			return fmt.Errorf("boot provider %T: %w", provider, err)
		}
	}
	return nil
}

// Booted reports whether Boot has been called.
func (p *ProviderRegistry) Booted() bool { return p.booted }

// Providers returns the registered providers in order.
func (p *ProviderRegistry) Providers() []ServiceProvider { return p.providers }
