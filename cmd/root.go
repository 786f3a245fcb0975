/*
 * Copyright (c) YugaByte, Inc.
 */

package cmd

import (
	"os"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/xcluster-dr-cli/cmd/dr"
	"github.com/yugabyte/xcluster-dr-cli/cmd/task"
	"github.com/yugabyte/xcluster-dr-cli/internal/formatter"
	"github.com/yugabyte/xcluster-dr-cli/internal/log"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "ybadr",
	Short: "ybadr - Automate xCluster disaster-recovery configuration " +
		"of YugabyteDB Anywhere universes.",
	Long: `
	ybadr drives the disaster-recovery lifecycle of YugabyteDB Anywhere
	universes from the command line: creating and deleting DR configs,
	managing replicated tables, and performing switchover, failover,
	repair and sync operations.`,

	Run: func(cmd *cobra.Command, args []string) {
		myFigure := figure.NewFigure("ybadr", "", true)
		myFigure.Print()
		logrus.Printf("\n")
		cmd.Help()
	},
}

// called on module init
func init() {
	cobra.OnInitialize(initConfig)
	cobra.EnableCaseInsensitive = true

	setDefaults()
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Full path to the ybadr configuration file. "+
			"Defaults to '$HOME/.ybadr/.ybadr.yaml'.")
	rootCmd.PersistentFlags().StringP("host", "H", "http://localhost:9000",
		"YugabyteDB Anywhere Host")
	rootCmd.PersistentFlags().StringP("apiToken", "a", "", "YugabyteDB Anywhere api token.")
	rootCmd.PersistentFlags().StringP("output", "o", formatter.TableFormatKey,
		"Select the desired output format. Allowed values: table, json, pretty.")
	rootCmd.PersistentFlags().StringP("logLevel", "l", "info",
		"Select the desired log level format. Allowed values: debug, info, warn, error, fatal.")
	rootCmd.PersistentFlags().Bool("debug", false, "Use debug mode, same as --logLevel debug.")
	rootCmd.PersistentFlags().
		Bool("disable-color", false, "Disable colors in output. (default false)")
	rootCmd.PersistentFlags().Bool("wait", true,
		"Wait until the task is completed, otherwise it will exit immediately.")
	rootCmd.PersistentFlags().Duration("timeout", 7*24*time.Hour,
		"Wait command timeout, example: 5m, 1h.")
	rootCmd.PersistentFlags().Duration("poll-interval", 15*time.Second,
		"Interval between task status checks while waiting, example: 15s, 1m.")
	rootCmd.PersistentFlags().Bool("insecure", false,
		"Allow insecure connections to YugabyteDB Anywhere."+
			" Value ignored for http endpoints. Defaults to false for https.")

	viper.BindPFlag("host", rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag("apiToken", rootCmd.PersistentFlags().Lookup("apiToken"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("logLevel", rootCmd.PersistentFlags().Lookup("logLevel"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("disable-color", rootCmd.PersistentFlags().Lookup("disable-color"))
	viper.BindPFlag("wait", rootCmd.PersistentFlags().Lookup("wait"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("poll-interval", rootCmd.PersistentFlags().Lookup("poll-interval"))
	viper.BindPFlag("insecure", rootCmd.PersistentFlags().Lookup("insecure"))

	rootCmd.AddCommand(dr.DRCmd)
	rootCmd.AddCommand(task.TaskCmd)
}

// Execute commands
func Execute(version string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("ybadr version: {{.Version}}\n")
	if err := rootCmd.Execute(); err != nil {
		// Set log level and formatter for this error
		log.SetLogLevel(viper.GetString("logLevel"), viper.GetBool("debug"))
		logrus.Fatal(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
	}
}

func setDefaults() {
	viper.SetDefault("host", "http://localhost:9000")
	viper.SetDefault("output", formatter.TableFormatKey)
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("debug", false)
	viper.SetDefault("disable-color", false)
	viper.SetDefault("wait", true)
	viper.SetDefault("timeout", time.Duration(7*24*time.Hour))
	viper.SetDefault("poll-interval", 15*time.Second)
	viper.SetDefault("insecure", false)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		homeDir, err := os.Stat(home)
		if err != nil {
			cobra.CheckErr(err)
		}
		homePerms := homeDir.Mode().Perm()
		os.Mkdir(home+"/.ybadr", homePerms)
		// Search config in home directory with name ".ybadr" (without extension).
		viper.AddConfigPath(home + "/.ybadr")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ybadr")
		viper.SetConfigFile(home + "/.ybadr/.ybadr.yaml")
	}

	// Will check every environment variable starting with YBADR_
	viper.SetEnvPrefix("ybadr")
	viper.AutomaticEnv()
	// Set log level and formatter
	log.SetFormatter()
	log.SetLogLevel(viper.GetString("logLevel"), viper.GetBool("debug"))
	if err := viper.ReadInConfig(); err == nil {
		logrus.Debugf("Using config file: %s\n", viper.ConfigFileUsed())
	}
}
