/*
Copyright © 2026 ocservctl authors
*/
package cmd

import (
	"github.com/ocserv-admin/ocservctl/functions"
	"github.com/spf13/cobra"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login [username]",
	Args:  cobra.ExactArgs(1),
	Short: "sign in as admin",
	Long: `sign in as admin and store the session token
the password is prompted for when --password is not given`,
	RunE: func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")
		captcha, _ := cmd.Flags().GetString("captcha")
		return functions.Login(args[0], password, captcha)
	},
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Args:  cobra.NoArgs,
	Short: "end the admin session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return functions.Logout()
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	loginCmd.Flags().StringP("password", "p", "", "admin password")
	loginCmd.Flags().String("captcha", "", "captcha token, when the server requires one")
}
