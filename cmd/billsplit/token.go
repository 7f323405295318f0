package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bauermateus/Bill-Splitter-App/internal/auth"
	"github.com/bauermateus/Bill-Splitter-App/internal/config"
)

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var (
		subject  string
		duration time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for a client of the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if !cfg.AuthEnabled() {
				return errors.New("no jwt_secret configured; set JWT_SECRET or jwt_secret in the config file")
			}
			if duration <= 0 {
				duration = cfg.TokenDuration
			}

			token, err := auth.NewJWTManager(cfg.JWTSecret, duration).Generate(subject)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "client name carried in the token")
	cmd.Flags().DurationVar(&duration, "duration", 0, "token lifetime (default from config)")
	cmd.MarkFlagRequired("subject")
	return cmd
}
