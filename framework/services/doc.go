// Package services gives any type a registry of named services.
//
// # Overview
//
// A service is a name under which one or more callbacks are registered.
// The most recently registered callback is the preferred one: Invoke calls it,
// and removing it with Unregister makes the previous one preferred again.
//
// # Embedding
//
//	type Account struct{ *services.Registry }
//
//	acc := &Account{}
//	acc.Registry = services.New(services.WithOwner(acc))
//
// # Registering and invoking
//
//	id, _ := acc.Register("login", func(user, pass string) bool {
//	    return user == "test" && pass == "cowa"
//	})
//
//	ok, _ := acc.Sv("login", "test", "cowa") // true
//	_ = acc.Unregister(id, "login")
//	ok, _ = acc.Sv("login", "test", "cowa")  // false: nothing registered
//
// Extra arguments given to Register are captured and appended after the
// call-time arguments:
//
//	acc.Register("logout", func(user string, opts LogoutOptions) {
//	    ...
//	}, LogoutOptions{Forced: true})
//
//	acc.Sv("logout", "alice") // callback gets ("alice", LogoutOptions{Forced: true})
//
// # Callbacks
//
// A callback is any func returning (), (T), (error) or (T, error). An error
// result is returned from Invoke as is. Callbacks added with RegisterMethod
// take the registry's owner as their first argument, so method expressions
// work:
//
//	acc.RegisterMethod("audit", (*Account).audit)
//
// # Errors
//
// Malformed calls return a *ValidationError whose Kind says what was wrong.
// A missing service is not an error: Invoke returns false. Use Handled to tell
// it apart from a callback that returned false.
//
// # Concurrency
//
// A Registry is safe for concurrent use. Callbacks run without the lock held,
// so they may call back into the registry, including unregistering themselves.
package services
