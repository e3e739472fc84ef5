// Package token mints admin tokens for local development.
package token

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/orris-inc/statsboard/internal/infrastructure/auth"
	"github.com/orris-inc/statsboard/internal/infrastructure/config"
)

type options struct {
	configFile string
	secret     string
	subject    string
	role       string
	ttl        time.Duration
}

func NewCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an admin token",
		Long:  `Issue an HS256 token signed with auth.jwt_secret for calling the dashboard locally.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := opts.issue()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Path to the config file providing auth.jwt_secret")
	cmd.Flags().StringVar(&opts.secret, "secret", "", "Signing secret (overrides the config)")
	cmd.Flags().StringVar(&opts.subject, "subject", "local-admin", "Token subject")
	cmd.Flags().StringVar(&opts.role, "role", auth.RoleAdmin, "Role claim")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", 24*time.Hour, "Token lifetime")

	return cmd
}

func (o *options) issue() (string, error) {
	secret := o.secret
	if secret == "" {
		cfg, err := config.Load("", o.configFile)
		if err != nil {
			return "", fmt.Errorf("failed to load config: %w", err)
		}
		secret = cfg.Auth.JWTSecret
	}
	if secret == "" {
		return "", fmt.Errorf("no signing secret: set auth.jwt_secret or pass --secret")
	}
	if o.ttl <= 0 {
		return "", fmt.Errorf("ttl must be positive, got %s", o.ttl)
	}

	return auth.NewJWTService(secret).Generate(o.subject, o.role, o.ttl)
}
