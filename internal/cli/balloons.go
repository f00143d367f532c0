package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/phrase-canvas/internal/store"
)

func newBalloonsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "balloons",
		Short: "List the signed-in user's placed balloons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := loadEnv(ctx, opts.configPath, opts.verbose)
			if err != nil {
				return err
			}
			defer e.Close()

			user, err := e.repo.LoadUser(ctx)
			if err != nil {
				return err
			}
			if user == nil {
				return store.ErrNoUser
			}
			bs, err := e.repo.LoadBalloons(ctx, user.ID)
			if err != nil {
				return err
			}

			printBalloons(cmd.OutOrStdout(), *user, bs)
			return nil
		},
	}
}

func newLogoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the signed-in user; saved balloons are kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := loadEnv(ctx, opts.configPath, opts.verbose)
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.repo.DeleteUser(ctx); err != nil {
				return fmt.Errorf("sign out: %w", err)
			}
			e.logger.Info("signed out")
			return nil
		},
	}
}
