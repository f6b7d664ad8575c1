/*
Copyright © 2026 ocservctl authors
*/
package cmd

import (
	"github.com/ocserv-admin/ocservctl/functions"
	"github.com/spf13/cobra"
)

// occtlCmd represents the occtl command
var occtlCmd = &cobra.Command{
	Use:   "occtl [command] [args...]",
	Args:  cobra.MinimumNArgs(1),
	Short: "run an occtl command on the server",
	Long: `run an occtl command on the server
For example:
ocservctl occtl show_users
ocservctl occtl show_user alice`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return functions.Occtl(args[0], args[1:])
	},
}

// reloadCmd represents the reload command
var reloadCmd = &cobra.Command{
	Use:   "reload",
	Args:  cobra.NoArgs,
	Short: "reload the ocserv configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return functions.Reload()
	},
}

func init() {
	rootCmd.AddCommand(occtlCmd)
	occtlCmd.AddCommand(reloadCmd)
}
