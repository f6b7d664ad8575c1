/*
Copyright © 2026 ocservctl authors
*/
package cmd

import (
	"github.com/ocserv-admin/ocservctl/functions"
	"github.com/spf13/cobra"
)

// groupsCmd represents the groups command
var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "manage vpn groups",
	Long: `manage vpn groups
For example:
ocservctl groups list               //display all groups
ocservctl groups list staff         //display groups matching staff
ocservctl groups create -f grp.yml  //create a group
ocservctl groups update 2 -f g.yml  //update group 2
ocservctl groups delete 2           //delete group 2
`,
}

var groupsListCmd = &cobra.Command{
	Use:   "list [filter]",
	Args:  cobra.RangeArgs(0, 1),
	Short: "display vpn groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		short, _ := cmd.Flags().GetBool("short")
		filter := ""
		if len(args) > 0 {
			filter = args[0]
		}
		return functions.ListGroups(filter, short)
	},
}

var groupsCreateCmd = &cobra.Command{
	Use:   "create",
	Args:  cobra.NoArgs,
	Short: "create a vpn group from a yaml or json file",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		return functions.CreateGroup(file)
	},
}

var groupsUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Args:  cobra.ExactArgs(1),
	Short: "update a vpn group from a yaml or json file",
	RunE: func(cmd *cobra.Command, args []string) error {
		pk, err := parseID(args[0])
		if err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("file")
		return functions.UpdateGroup(pk, file)
	},
}

var groupsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Args:  cobra.ExactArgs(1),
	Short: "delete a vpn group",
	RunE: func(cmd *cobra.Command, args []string) error {
		pk, err := parseID(args[0])
		if err != nil {
			return err
		}
		return functions.DeleteGroup(pk)
	},
}

func init() {
	rootCmd.AddCommand(groupsCmd)
	groupsCmd.AddCommand(groupsListCmd, groupsCreateCmd, groupsUpdateCmd, groupsDeleteCmd)
	groupsListCmd.Flags().BoolP("short", "s", false, "one line per group")
	for _, c := range []*cobra.Command{groupsCreateCmd, groupsUpdateCmd} {
		c.Flags().StringP("file", "f", "-", "yaml or json payload, - for stdin")
	}
}
