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

var switchoverDRCmd = &cobra.Command{
	Use:   "switchover",
	Short: "Switch the roles of the universes in a DR config",
	Long: "Perform a planned switchover of the disaster-recovery config: " +
		"the replica becomes the primary with zero data loss. " +
		"Both universes must be healthy and replication must be caught up.",
	PreRun: func(cmd *cobra.Command, args []string) {
		viper.BindPFlag("force", cmd.Flags().Lookup("force"))
		sourceName := sourceUniverseName(cmd)
		err := util.ConfirmCommand(
			fmt.Sprintf("Are you sure you want to switchover the DR config "+
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

		_, err := newOrchestrator(authAPI).Switchover(ctx, sourceName)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Infof("The DR config of universe %s has been switched over\n",
			formatter.Colorize(sourceName, formatter.GreenColor))
	},
}

func init() {
	switchoverDRCmd.Flags().SortFlags = false
	addSourceUniverseFlag(switchoverDRCmd)
	switchoverDRCmd.Flags().BoolP("force", "f", false,
		"[Optional] Bypass the prompt for non-interactive usage.")
}
