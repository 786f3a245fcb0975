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

var removeTablesDRCmd = &cobra.Command{
	Use:   "remove-tables",
	Short: "Remove tables from the disaster-recovery config of a universe",
	Long: "Remove tables of the source universe from its disaster-recovery " +
		"config. The tables stop being replicated but are not dropped.",
	PreRun: func(cmd *cobra.Command, args []string) {
		viper.BindPFlag("force", cmd.Flags().Lookup("force"))
		sourceName := sourceUniverseName(cmd)
		tableIDsFromFlags(cmd)
		err := util.ConfirmCommand(
			fmt.Sprintf("Are you sure you want to remove tables from the "+
				"DR config of universe: %s", sourceName),
			viper.GetBool("force"))
		if err != nil {
			logrus.Fatal(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := client.NewAuthAPIClientAndCustomer()

		sourceName := sourceUniverseName(cmd)
		tableIDs := tableIDsFromFlags(cmd)

		ctx, cancel := waitContext(authAPI)
		defer cancel()

		_, err := newOrchestrator(authAPI).RemoveTables(ctx, sourceName, tableIDs)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Infof("The tables have been removed from the DR config of universe %s\n",
			formatter.Colorize(sourceName, formatter.GreenColor))
	},
}

func init() {
	removeTablesDRCmd.Flags().SortFlags = false
	addSourceUniverseFlag(removeTablesDRCmd)
	addTableIDsFlags(removeTablesDRCmd)
	removeTablesDRCmd.Flags().BoolP("force", "f", false,
		"[Optional] Bypass the prompt for non-interactive usage.")
}
