package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spendwise-app/spendwise/internal/auth"
	"github.com/spendwise-app/spendwise/internal/cli"
	"github.com/spendwise-app/spendwise/internal/config"
	"github.com/spendwise-app/spendwise/internal/service"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Register and sign in",
		Long:  `Create an account, sign in to get a session, and inspect the current session.`,
	}

	cmd.AddCommand(authRegisterCmd())
	cmd.AddCommand(authLoginCmd())
	cmd.AddCommand(authLogoutCmd())
	cmd.AddCommand(authWhoamiCmd())

	return cmd
}

func newAuthService(store service.Storage) *auth.Service {
	return auth.NewService(store, auth.NewBcryptHasher(), auth.LegacySHA256Hasher{})
}

func authRegisterCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			user, err := newAuthService(store).Register(ctx, email, password)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Account created for %s, you can sign in now", user.Email)))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (min 6 chars)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func authLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and save a session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			user, err := newAuthService(store).Login(ctx, email, password)
			if err != nil {
				return err
			}

			manager, err := newSessionManager()
			if err != nil {
				return err
			}
			token, err := manager.Issue(user)
			if err != nil {
				return err
			}
			if err := saveToken(token); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Signed in as %s", user.Email)))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func authLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the saved session",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := os.Remove(config.TokenPath()); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove session token: %w", err)
			}
			fmt.Println(cli.InfoStyle.Render("Signed out"))
			return nil
		},
	}
}

func authWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(_ *cobra.Command, _ []string) error {
			userID, email, err := currentUser()
			if err != nil {
				return err
			}
			fmt.Printf("Signed in as %s (user %d)\n", cli.BoldStyle.Render(email), userID)
			return nil
		},
	}
}
