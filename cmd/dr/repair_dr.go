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

var repairDRCmd = &cobra.Command{
	Use:     "repair",
	Aliases: []string{"restart"},
	Short:   "Repair a DR config after a failover",
	Long: "Restart the disaster-recovery config after a failover. " +
		"The current primary is bootstrapped and restored onto the former " +
		"primary, which becomes the new replica. Any data on the former " +
		"primary written after the failover is overwritten.",
	PreRun: func(cmd *cobra.Command, args []string) {
		viper.BindPFlag("force", cmd.Flags().Lookup("force"))
		sourceName := sourceUniverseName(cmd)
		err := util.ConfirmCommand(
			fmt.Sprintf("Are you sure you want to repair the DR config "+
				"of universe: %s", sourceName),
			viper.GetBool("force"))
		if err != nil {
			logrus.Fatal(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := client.NewAuthAPIClientAndCustomer()

		sourceName := sourceUniverseName(cmd)
		forceDelete, err := cmd.Flags().GetBool("force-delete")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		ctx, cancel := waitContext(authAPI)
		defer cancel()

		_, err = newOrchestrator(authAPI).Repair(ctx, sourceName, forceDelete)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Infof("The DR config of universe %s has been repaired\n",
			formatter.Colorize(sourceName, formatter.GreenColor))
	},
}

func init() {
	repairDRCmd.Flags().SortFlags = false
	addSourceUniverseFlag(repairDRCmd)
	repairDRCmd.Flags().Bool("force-delete", false,
		"[Optional] Force delete the broken replication streams before "+
			"restarting, ignoring errors. (default false)")
	repairDRCmd.Flags().BoolP("force", "f", false,
		"[Optional] Bypass the prompt for non-interactive usage.")
}
