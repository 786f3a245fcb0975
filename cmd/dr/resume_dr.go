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

var resumeDRCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume the replication of a DR config",
	Long: "Resume the underlying xCluster replication of a paused " +
		"disaster-recovery config",
	PreRun: func(cmd *cobra.Command, args []string) {
		sourceUniverseName(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := client.NewAuthAPIClientAndCustomer()

		sourceName := sourceUniverseName(cmd)

		ctx, cancel := waitContext(authAPI)
		defer cancel()

		_, err := newOrchestrator(authAPI).Resume(ctx, sourceName)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Infof("The replication of the DR config of universe %s has been resumed\n",
			formatter.Colorize(sourceName, formatter.GreenColor))
	},
}

func init() {
	resumeDRCmd.Flags().SortFlags = false
	addSourceUniverseFlag(resumeDRCmd)
}
