package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/km-arc/go-services/framework/app"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "servicesdemo: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:           "servicesdemo",
		Short:         "Exercise an account's login/logout services",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default: .env)")

	// setup builds the application and account for each command run.
	setup := func(cmd *cobra.Command) (*Account, error) {
		opts := []app.Option{app.WithLogOutput(cmd.ErrOrStderr())}
		if len(envFiles) > 0 {
			opts = append(opts, app.WithEnvFiles(envFiles...))
		}
		a, err := app.New(opts...)
		if err != nil {
			return nil, err
		}
		if err := a.Boot(); err != nil {
			return nil, err
		}
		return NewAccount(a, cmd.OutOrStdout())
	}

	root.AddCommand(newLoginCmd(setup), newLogoutCmd(setup), newScenarioCmd(setup))
	return root
}

type setupFunc func(cmd *cobra.Command) (*Account, error)

func newLoginCmd(setup setupFunc) *cobra.Command {
	var override bool
	cmd := &cobra.Command{
		Use:   "login <user> <password>",
		Short: "Invoke the preferred login service",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := setup(cmd)
			if err != nil {
				return err
			}
			if override {
				if _, err := acc.Override(); err != nil {
					return err
				}
			}
			ok, err := acc.Sv("login", args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
	cmd.Flags().BoolVar(&override, "override", false, "register the second login service first")
	return cmd
}

func newLogoutCmd(setup setupFunc) *cobra.Command {
	var opts LogoutOptions
	cmd := &cobra.Command{
		Use:   "logout <user>",
		Short: "Invoke logout with options captured at registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := setup(cmd)
			if err != nil {
				return err
			}
			if opts != (LogoutOptions{}) {
				if _, err := acc.RegisterMethod("logout", (*Account).logout, opts); err != nil {
					return err
				}
			}
			_, err = acc.Sv("logout", args[0])
			return err
		},
	}
	cmd.Flags().BoolVar(&opts.Forced, "forced", false, "force the logout")
	cmd.Flags().BoolVar(&opts.LogOutAll, "all", false, "log out every session")
	return cmd
}

func newScenarioCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "scenario",
		Short: "Register, override and unregister login services, printing each result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			acc, err := setup(cmd)
			if err != nil {
				return err
			}
			return runScenario(acc, cmd.OutOrStdout())
		},
	}
}

func runScenario(acc *Account, out io.Writer) error {
	step := func(label, user, pass string) error {
		ok, err := acc.Sv("login", user, pass)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-28s login(%s, %s) = %v\n", label, user, pass, ok)
		return nil
	}

	if err := step("first service:", "test", "cowa"); err != nil {
		return err
	}
	id, err := acc.Override()
	if err != nil {
		return err
	}
	if err := step("second service:", "test", "cowa"); err != nil {
		return err
	}
	if err := step("second service:", "test", "bunga"); err != nil {
		return err
	}
	if err := acc.Unregister(id, "login"); err != nil {
		return err
	}
	if err := step("after unregister:", "test", "cowa"); err != nil {
		return err
	}
	if err := step("after unregister:", "test", "bunga"); err != nil {
		return err
	}

	if _, err := acc.RegisterMethod("logout", (*Account).logout, LogoutOptions{Forced: true, LogOutAll: true}); err != nil {
		return err
	}
	_, err = acc.Sv("logout", "theUsername")
	return err
}
