/*
 * Copyright (c) YugaByte, Inc.
 */

package dr

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/yugabyte/xcluster-dr-cli/internal/client"
	"github.com/yugabyte/xcluster-dr-cli/internal/formatter"
)

var pauseDRCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the replication of a DR config",
	Long: "Pause the underlying xCluster replication of the " +
		"disaster-recovery config, for example before a maintenance window",
	PreRun: func(cmd *cobra.Command, args []string) {
		sourceUniverseName(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := client.NewAuthAPIClientAndCustomer()

		sourceName := sourceUniverseName(cmd)

		ctx, cancel := waitContext(authAPI)
		defer cancel()

		_, err := newOrchestrator(authAPI).Pause(ctx, sourceName)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Infof("The replication of the DR config of universe %s has been paused\n",
			formatter.Colorize(sourceName, formatter.GreenColor))
	},
}

func init() {
	pauseDRCmd.Flags().SortFlags = false
	addSourceUniverseFlag(pauseDRCmd)
}
