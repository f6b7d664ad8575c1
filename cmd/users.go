/*
Copyright © 2026 ocservctl authors
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/ocserv-admin/ocservctl/functions"
	"github.com/spf13/cobra"
)

// usersCmd represents the users command
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "manage vpn users",
	Long: `manage vpn users
For example:
ocservctl users list                 //display all users
ocservctl users create -f alice.yml  //create a user
ocservctl users update 4 -f pw.yml   //update user 4
ocservctl users delete 4             //delete user 4
ocservctl users disconnect 4         //drop the sessions of user 4
`,
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Args:  cobra.NoArgs,
	Short: "display vpn users",
	RunE: func(cmd *cobra.Command, args []string) error {
		short, _ := cmd.Flags().GetBool("short")
		return functions.ListUsers(short)
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Args:  cobra.NoArgs,
	Short: "create a vpn user from a yaml or json file",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		return functions.CreateUser(file)
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Args:  cobra.ExactArgs(1),
	Short: "update a vpn user from a yaml or json file",
	RunE: func(cmd *cobra.Command, args []string) error {
		pk, err := parseID(args[0])
		if err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("file")
		return functions.UpdateUser(pk, file)
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Args:  cobra.ExactArgs(1),
	Short: "delete a vpn user",
	RunE: func(cmd *cobra.Command, args []string) error {
		pk, err := parseID(args[0])
		if err != nil {
			return err
		}
		return functions.DeleteUser(pk)
	},
}

var usersDisconnectCmd = &cobra.Command{
	Use:   "disconnect [id]",
	Args:  cobra.ExactArgs(1),
	Short: "disconnect the sessions of a vpn user",
	RunE: func(cmd *cobra.Command, args []string) error {
		pk, err := parseID(args[0])
		if err != nil {
			return err
		}
		return functions.DisconnectUser(pk)
	},
}

func parseID(arg string) (int, error) {
	pk, err := strconv.Atoi(arg)
	if err != nil || pk <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return pk, nil
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd, usersCreateCmd, usersUpdateCmd, usersDeleteCmd, usersDisconnectCmd)
	usersListCmd.Flags().BoolP("short", "s", false, "one line per user")
	for _, c := range []*cobra.Command{usersCreateCmd, usersUpdateCmd} {
		c.Flags().StringP("file", "f", "-", "yaml or json payload, - for stdin")
	}
}
