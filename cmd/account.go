package main

import (
	"fmt"
	"os"
	"path/filepath"

	"category_admin/internal/auth"
	"category_admin/internal/domain"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	var req domain.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the identity token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			identity, token, err := a.accounts.Login(cmd.Context(), req)
			if err != nil {
				return printValidation(cmd.ErrOrStderr(), err)
			}
			if err := saveToken(a, cmd, token); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", identity.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "Account password")
	return cmd
}

func registerCmd() *cobra.Command {
	var (
		req       domain.RegisterRequest
		imagePath string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if imagePath != "" {
				data, err := os.ReadFile(imagePath)
				if err != nil {
					return fmt.Errorf("failed to read image: %w", err)
				}
				req.Image, req.ImageFilename = data, filepath.Base(imagePath)
			}

			a, err := newApp()
			if err != nil {
				return err
			}

			identity, token, err := a.accounts.Register(cmd.Context(), req)
			if err != nil {
				return printValidation(cmd.ErrOrStderr(), err)
			}
			if identity == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Registered %s; run 'category-admin login' to start a session\n", req.Email)
				return nil
			}
			if err := saveToken(a, cmd, token); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registered and logged in as %s\n", identity.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "First name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password")
	cmd.Flags().StringVar(&req.PasswordConfirmation, "password-confirmation", "", "Repeat the password")
	cmd.Flags().StringVar(&imagePath, "image", "", "Optional avatar image file")
	return cmd
}

func saveToken(a *app, cmd *cobra.Command, token string) error {
	if a.cfg.TokenFile == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Set AUTH_TOKEN=%s to reuse this session\n", token)
		return nil
	}
	return auth.WriteTokenFile(a.cfg.TokenFile, token)
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity in the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			identity, err := a.accounts.CurrentIdentity()
			if err != nil {
				return fmt.Errorf("not logged in: %w", err)
			}
			if identity.Name != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", identity.Name, identity.Email)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), identity.Email)
			}
			return nil
		},
	}
}
