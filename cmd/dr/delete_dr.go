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

var deleteDRCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove", "rm"},
	Short:   "Delete the disaster-recovery config of a universe",
	Long: "Delete the disaster-recovery config that the given universe " +
		"is the source of",
	PreRun: func(cmd *cobra.Command, args []string) {
		viper.BindPFlag("force", cmd.Flags().Lookup("force"))
		sourceName := sourceUniverseName(cmd)
		err := util.ConfirmCommand(
			fmt.Sprintf("Are you sure you want to delete the DR config of universe: %s",
				sourceName),
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

		_, err = newOrchestrator(authAPI).Delete(ctx, sourceName, forceDelete)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Infof("The DR config of universe %s has been deleted\n",
			formatter.Colorize(sourceName, formatter.GreenColor))
	},
}

func init() {
	deleteDRCmd.Flags().SortFlags = false
	addSourceUniverseFlag(deleteDRCmd)
	deleteDRCmd.Flags().Bool("force-delete", false,
		"[Optional] Force delete the DR config even if the delete task fails, "+
			"ignoring errors. (default false)")
	deleteDRCmd.Flags().BoolP("force", "f", false,
		"[Optional] Bypass the prompt for non-interactive usage.")
}
