// Package cmd command line for ocservctl
/*
Copyright © 2026 ocservctl authors
*/
package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gravitl/netmaker/logger"
	"github.com/ocserv-admin/ocservctl/config"
	"github.com/ocserv-admin/ocservctl/functions"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ocservctl",
	Short: "command line client for the ocserv admin api",
	Long: `command line client for the ocserv admin api

Manage the admin configuration, vpn users and groups, run occtl commands
and read server statistics.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "use specified config file")
	rootCmd.PersistentFlags().IntP("verbosity", "v", 0, "set logging verbosity 0-4")
	rootCmd.PersistentFlags().String("api", "", "api root, e.g. https://vpn.example.com/api")
	rootCmd.PersistentFlags().BoolVarP(&functions.Long, "long", "l", false, "display detailed output")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(config.GetConfigPath())
		viper.SetConfigName(config.AppName + ".yml")
	}
	viper.SetConfigType("yml")
	viper.SetEnvPrefix(config.AppName)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	viper.BindPFlag("verbosity", rootCmd.PersistentFlags().Lookup("verbosity"))
	viper.BindPFlag("api", rootCmd.PersistentFlags().Lookup("api"))

	cfg, err := config.ReadConfig()
	if err != nil {
		logger.FatalLog("could not read ocservctl config file", err.Error())
	}
	logger.Verbosity = cfg.Verbosity
	if used := viper.ConfigFileUsed(); used != "" && config.FileExists(used) {
		logger.Log(1, "Using config file:", used)
	}
	config.Current = *cfg
}

// defaultConfigFile is where init writes when --config is not given
func defaultConfigFile() string {
	if cfgFile != "" {
		return cfgFile
	}
	return filepath.Join(config.GetConfigPath(), config.AppName+".yml")
}
