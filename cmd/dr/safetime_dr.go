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

var safetimeDRCmd = &cobra.Command{
	Use:   "safetime",
	Short: "Show the per-database safetimes of a DR config",
	Long: "Show the current safetime of every replicated database. " +
		"The safetime is the latest timestamp up to which the DR replica " +
		"is consistent, and bounds the data loss of a failover.",
	PreRun: func(cmd *cobra.Command, args []string) {
		sourceUniverseName(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := client.NewAuthAPIClientAndCustomer()

		sourceName := sourceUniverseName(cmd)
		safetimes, err := newOrchestrator(authAPI).Safetimes(sourceName)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		safetimeCtx := formatter.Context{
			Output: os.Stdout,
			Format: drconfig.NewSafetimeFormat(viper.GetString("output")),
		}
		drconfig.SafetimeWrite(safetimeCtx, safetimes)
	},
}

func init() {
	safetimeDRCmd.Flags().SortFlags = false
	addSourceUniverseFlag(safetimeDRCmd)
}
