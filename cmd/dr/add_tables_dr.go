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

var addTablesDRCmd = &cobra.Command{
	Use:   "add-tables",
	Short: "Add tables to the disaster-recovery config of a universe",
	Long: "Add tables of the source universe to its disaster-recovery config. " +
		"The tables must exist on the DR replica with the same keyspace, " +
		"schema and table name before they can be added.",
	PreRun: func(cmd *cobra.Command, args []string) {
		sourceUniverseName(cmd)
		tableIDsFromFlags(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := client.NewAuthAPIClientAndCustomer()

		sourceName := sourceUniverseName(cmd)
		tableIDs := tableIDsFromFlags(cmd)
		autoIncludeIndexTables, err := cmd.Flags().GetBool("auto-include-index-tables")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		ctx, cancel := waitContext(authAPI)
		defer cancel()

		_, err = newOrchestrator(authAPI).AddTables(
			ctx, sourceName, tableIDs, autoIncludeIndexTables)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Infof("The tables have been added to the DR config of universe %s\n",
			formatter.Colorize(sourceName, formatter.GreenColor))
	},
}

func init() {
	addTablesDRCmd.Flags().SortFlags = false
	addSourceUniverseFlag(addTablesDRCmd)
	addTableIDsFlags(addTablesDRCmd)
	addTablesDRCmd.Flags().Bool("auto-include-index-tables", true,
		"[Optional] Automatically include the index tables of the "+
			"selected tables in replication.")
}
