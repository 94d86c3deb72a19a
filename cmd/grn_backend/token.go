package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SscSPs/grn_tracker/internal/utils"
)

var (
	tokenSubject string
	tokenExpiry  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a signed bearer token for the API",
	RunE: func(cmd *cobra.Command, args []string) error {
		expiry := tokenExpiry
		if expiry <= 0 {
			expiry = cfg.JWTExpiryDuration
		}
		token, err := utils.GenerateJWT(tokenSubject, cfg.JWTSecret, expiry, cfg.JWTIssuer)
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "user id recorded as creator and updater")
	tokenCmd.Flags().DurationVar(&tokenExpiry, "expiry", 0, "token lifetime (default JWT_EXPIRY_DURATION)")
	_ = tokenCmd.MarkFlagRequired("subject")
	rootCmd.AddCommand(tokenCmd)
}
