/*
 * Copyright (c) YugaByte, Inc.
 */

package dr

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/xcluster-dr-cli/cmd/util"
	"github.com/yugabyte/xcluster-dr-cli/internal/client"
	"github.com/yugabyte/xcluster-dr-cli/internal/formatter"
)

var failoverDRCmd = &cobra.Command{
	Use:   "failover",
	Short: "Failover a DR config to its replica universe",
	Long: "Perform an unplanned failover of the disaster-recovery config " +
		"after the primary universe has failed. The replica is promoted to " +
		"the latest consistent state and writes after the safetime are lost. " +
		"Run \"ybadr dr repair\" afterwards to re-establish replication.",
	PreRun: func(cmd *cobra.Command, args []string) {
		viper.BindPFlag("force", cmd.Flags().Lookup("force"))
		sourceName := sourceUniverseName(cmd)
		err := util.ConfirmCommand(
			fmt.Sprintf("Are you sure you want to failover the DR config "+
				"of universe: %s", sourceName),
			viper.GetBool("force"))
		if err != nil {
			logrus.Fatal(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := client.NewAuthAPIClientAndCustomer()

		sourceName := sourceUniverseName(cmd)

		ctx, cancel := waitContext(authAPI)
		defer cancel()

		_, err := newOrchestrator(authAPI).Failover(ctx, sourceName)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Infof("The DR config of universe %s has failed over to its replica\n",
			formatter.Colorize(sourceName, formatter.GreenColor))
	},
}

func init() {
	failoverDRCmd.Flags().SortFlags = false
	addSourceUniverseFlag(failoverDRCmd)
	failoverDRCmd.Flags().BoolP("force", "f", false,
		"[Optional] Bypass the prompt for non-interactive usage.")
}
