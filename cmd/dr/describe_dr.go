/*
 * Copyright (c) YugaByte, Inc.
 */

package dr

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/xcluster-dr-cli/internal/client"
	"github.com/yugabyte/xcluster-dr-cli/internal/formatter"
	"github.com/yugabyte/xcluster-dr-cli/internal/formatter/drconfig"
)

var describeDRCmd = &cobra.Command{
	Use:     "describe",
	Aliases: []string{"get"},
	Short:   "Describe the disaster-recovery config of a universe",
	Long: "Describe the disaster-recovery config that the given universe " +
		"is the source of",
	PreRun: func(cmd *cobra.Command, args []string) {
		sourceUniverseName(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := client.NewAuthAPIClientAndCustomer()

		sourceName := sourceUniverseName(cmd)
		config, err := newOrchestrator(authAPI).SourceDrConfig(sourceName)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		drCtx := formatter.Context{
			Output: os.Stdout,
			Format: drconfig.NewDrConfigFormat(viper.GetString("output")),
		}
		drconfig.Write(drCtx, []client.DrConfig{config})
	},
}

func init() {
	describeDRCmd.Flags().SortFlags = false
	addSourceUniverseFlag(describeDRCmd)
}
