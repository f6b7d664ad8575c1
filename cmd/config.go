/*
Copyright © 2026 ocservctl authors
*/
package cmd

import (
	"fmt"

	"github.com/ocserv-admin/ocservctl/config"
	"github.com/ocserv-admin/ocservctl/functions"
	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "manage the admin configuration",
	Long: `manage the admin configuration on the server
For example:
ocservctl config show              //display the bootstrap config
ocservctl config create -f cfg.yml //create the admin config
ocservctl config get               //display the admin config
ocservctl config set -f cfg.yml    //update fields of the admin config
ocservctl config init              //write a local ocservctl.yml
`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Args:  cobra.NoArgs,
	Short: "display the bootstrap config",
	RunE: func(cmd *cobra.Command, args []string) error {
		return functions.Bootstrap()
	},
}

var configCreateCmd = &cobra.Command{
	Use:   "create",
	Args:  cobra.NoArgs,
	Short: "create the admin config from a yaml or json file",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		return functions.CreateConfig(file)
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Args:  cobra.NoArgs,
	Short: "display the admin config",
	RunE: func(cmd *cobra.Command, args []string) error {
		return functions.GetConfiguration()
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Args:  cobra.NoArgs,
	Short: "update the admin config from a yaml or json file",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		return functions.SetConfiguration(file)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Args:  cobra.NoArgs,
	Short: "write the current client settings to the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		file := defaultConfigFile()
		if err := config.WriteConfig(file, &config.Current); err != nil {
			return err
		}
		fmt.Println("wrote", file)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configCreateCmd, configGetCmd, configSetCmd, configInitCmd)
	for _, c := range []*cobra.Command{configCreateCmd, configSetCmd} {
		c.Flags().StringP("file", "f", "-", "yaml or json payload, - for stdin")
	}
}
