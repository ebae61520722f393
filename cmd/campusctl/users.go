package main

import (
	"context"

	"github.com/joshua-takyi/campus/internal/models"
	"github.com/spf13/cobra"
)

func (a *app) credentialsCmd(use, short string, call func(ctx context.Context, email, password string) (*models.UserProfile, error)) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := call(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), profile)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (a *app) loginCmd() *cobra.Command {
	return a.credentialsCmd("login", "Check credentials and print the user profile",
		func(ctx context.Context, email, password string) (*models.UserProfile, error) {
			c, err := a.client()
			if err != nil {
				return nil, err
			}
			return c.Login(ctx, email, password)
		})
}

func (a *app) registerCmd() *cobra.Command {
	return a.credentialsCmd("register", "Create a user account",
		func(ctx context.Context, email, password string) (*models.UserProfile, error) {
			c, err := a.client()
			if err != nil {
				return nil, err
			}
			return c.Register(ctx, email, password)
		})
}
