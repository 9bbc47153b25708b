package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/talkincode/restopos/internal/dashboard"
	"github.com/talkincode/restopos/internal/webserver"
)

var tokenOpts struct {
	username string
	fullName string
	email    string
	role     string
	license  string
	company  string
	ttl      time.Duration
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a session token for an operator",
	Long: `Issue a signed session token for the admin API.

The token is signed with web.secret and is sent as "Authorization: Bearer <token>".`,
	RunE: runToken,
}

func init() {
	f := tokenCmd.Flags()
	f.StringVarP(&tokenOpts.username, "username", "u", "admin", "operator username")
	f.StringVar(&tokenOpts.fullName, "name", "", "operator full name")
	f.StringVar(&tokenOpts.email, "email", "", "operator email")
	f.StringVar(&tokenOpts.role, "role", "", "operator role")
	f.StringVar(&tokenOpts.license, "license", "", "license plan")
	f.StringVar(&tokenOpts.company, "company", "", "company name")
	f.DurationVar(&tokenOpts.ttl, "ttl", 0, "token lifetime (default: web.token_ttl hours)")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ttl := tokenOpts.ttl
	if ttl <= 0 {
		ttl = time.Duration(cfg.Web.TokenTTL) * time.Hour
	}

	now := time.Now()
	token, err := webserver.IssueToken(cfg.Web.Secret, dashboard.Operator{
		Username:  tokenOpts.username,
		FullName:  tokenOpts.fullName,
		Email:     tokenOpts.email,
		Role:      tokenOpts.role,
		License:   tokenOpts.license,
		Company:   tokenOpts.company,
		LastLogin: &now,
	}, ttl)
	if err != nil {
		printError("issue token", err)
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
