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

var syncDRCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile a DR config with the database state",
	Long: "Reconcile the disaster-recovery config with changes made outside " +
		"of YugabyteDB Anywhere, such as indexes created directly against " +
		"the database",
	PreRun: func(cmd *cobra.Command, args []string) {
		sourceUniverseName(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := client.NewAuthAPIClientAndCustomer()

		sourceName := sourceUniverseName(cmd)

		ctx, cancel := waitContext(authAPI)
		defer cancel()

		_, err := newOrchestrator(authAPI).Sync(ctx, sourceName)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Infof("The DR config of universe %s has been synchronized\n",
			formatter.Colorize(sourceName, formatter.GreenColor))
	},
}

func init() {
	syncDRCmd.Flags().SortFlags = false
	addSourceUniverseFlag(syncDRCmd)
}
