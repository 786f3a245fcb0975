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
	"github.com/yugabyte/xcluster-dr-cli/internal/formatter/table"
)

var listTablesDRCmd = &cobra.Command{
	Use:   "list-tables",
	Short: "List source universe tables that can be added to the DR config",
	Long: "List the tables of the source universe that are not yet part " +
		"of the disaster-recovery config and can still be added to it",
	PreRun: func(cmd *cobra.Command, args []string) {
		sourceUniverseName(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := client.NewAuthAPIClientAndCustomer()

		sourceName := sourceUniverseName(cmd)
		tables, err := newOrchestrator(authAPI).AvailableTables(sourceName)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		if len(tables) == 0 {
			logrus.Infof("All tables of universe %s are already part of the DR config\n",
				sourceName)
			return
		}

		tableCtx := formatter.Context{
			Output: os.Stdout,
			Format: table.NewTableFormat(viper.GetString("output")),
		}
		table.Write(tableCtx, tables)
	},
}

func init() {
	listTablesDRCmd.Flags().SortFlags = false
	addSourceUniverseFlag(listTablesDRCmd)
}
