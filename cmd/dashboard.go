/*
Copyright © 2026 ocservctl authors
*/
package cmd

import (
	"github.com/ocserv-admin/ocservctl/functions"
	"github.com/spf13/cobra"
)

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Args:  cobra.NoArgs,
	Short: "display the dashboard summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return functions.Dashboard()
	},
}

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Args:  cobra.NoArgs,
	Short: "display server statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return functions.Stats()
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(statsCmd)
}
