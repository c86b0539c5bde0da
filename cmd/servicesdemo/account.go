package main

import (
	"fmt"
	"io"

	"github.com/km-arc/go-services/framework/app"
	"github.com/km-arc/go-services/framework/services"
)

// LogoutOptions are captured when the logout service is registered.
type LogoutOptions struct {
	Forced    bool
	LogOutAll bool
}

// Account owns its own login/logout services, layered on the application.
type Account struct {
	*services.Registry
	app *app.Application
	out io.Writer
}

func NewAccount(a *app.Application, out io.Writer) (*Account, error) {
	acc := &Account{app: a, out: out}
	acc.Registry = services.New(services.WithOwner(acc), services.WithLogger(a.Logger()))

	if _, err := acc.Register("login", checkPassword("cowa")); err != nil {
		return nil, err
	}
	if _, err := acc.RegisterMethod("logout", (*Account).logout, LogoutOptions{}); err != nil {
		return nil, err
	}
	return acc, nil
}

// Override registers the stricter login service, returning its id so it
// can be unregistered again.
func (acc *Account) Override() (services.ID, error) {
	return acc.Register("login", checkPassword("bunga"))
}

func checkPassword(want string) func(user, pass string) bool {
	return func(user, pass string) bool {
		return user == "test" && pass == want
	}
}

func (acc *Account) logout(user string, opts LogoutOptions) string {
	_, _ = acc.app.Sv("log", "info", "logout", "user", user, "forced", opts.Forced)
	msg := fmt.Sprintf("%s logged out (forced=%t, all=%t)", user, opts.Forced, opts.LogOutAll)
	fmt.Fprintln(acc.out, msg)
	return msg
}
