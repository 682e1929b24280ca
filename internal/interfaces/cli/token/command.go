package token

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mif-gmao/gmao/internal/infrastructure/auth"
	"github.com/mif-gmao/gmao/internal/infrastructure/config"
	"github.com/mif-gmao/gmao/internal/interfaces/cli/bootstrap"
	"github.com/mif-gmao/gmao/internal/shared/authorization"
)

var (
	subject string
	role    string
	ttl     time.Duration
)

// NewCommand issues a signed access token for local testing of the HTTP API.
func NewCommand(opts *bootstrap.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := authorization.ParseRole(role)
			if !ok {
				return fmt.Errorf("unknown role %q", role)
			}

			cfg, err := config.Load(opts.ConfigPath, opts.Env)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			signed, err := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer).Issue(subject, r, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "User ID or email placed in the sub claim")
	cmd.Flags().StringVarP(&role, "role", "r", string(authorization.RoleClient), "Role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
