/*
Copyright © 2026 ocservctl authors
*/
package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/kr/pretty"
	"github.com/ocserv-admin/ocservctl/functions"
	"github.com/spf13/cobra"
)

// Version is set by main
var Version = "dev"

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Displays version information",
	Long: `Displays the current version of ocservctl

useage:  add flag -l, --long flag for detailed information`,
	Run: func(cmd *cobra.Command, args []string) {
		if functions.Long {
			info, _ := debug.ReadBuildInfo()
			pretty.Println(info.Settings)
		}
		fmt.Println(Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
