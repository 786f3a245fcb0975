/*
 * Copyright (c) YugaByte, Inc.
 */

package dr

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/yugabyte/xcluster-dr-cli/cmd/util"
	"github.com/yugabyte/xcluster-dr-cli/internal/client"
	"github.com/yugabyte/xcluster-dr-cli/internal/dr"
	"github.com/yugabyte/xcluster-dr-cli/internal/formatter"
)

var createDRCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a disaster-recovery config between two universes",
	Long: "Create a disaster-recovery config in YugabyteDB Anywhere " +
		"between two universes, bootstrapping the selected databases " +
		"onto the replica",
	PreRun: func(cmd *cobra.Command, args []string) {
		sourceUniverseName(cmd)
		targetName, err := cmd.Flags().GetString("target-universe-name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if util.IsEmptyString(targetName) {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No target universe name found\n", formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := client.NewAuthAPIClientAndCustomer()

		sourceName := sourceUniverseName(cmd)
		targetName, err := cmd.Flags().GetString("target-universe-name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		databaseNames, err := cmd.Flags().GetString("database-names")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		storageConfigName, err := cmd.Flags().GetString("storage-config-name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		parallelism, err := cmd.Flags().GetInt32("parallelism")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		dryRun, err := cmd.Flags().GetBool("dry-run")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		ctx, cancel := waitContext(authAPI)
		defer cancel()

		drConfigUUID, err := newOrchestrator(authAPI).Create(ctx, dr.CreateParams{
			SourceUniverseName: sourceName,
			TargetUniverseName: targetName,
			DatabaseNames:      util.SplitIDList(databaseNames),
			StorageConfigName:  storageConfigName,
			Parallelism:        parallelism,
			DryRun:             dryRun,
		})
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		if dryRun {
			logrus.Info(formatter.Colorize(
				"Dry run of the DR config creation completed successfully\n",
				formatter.GreenColor))
			return
		}
		logrus.Infof("The DR config %s between %s and %s has been created\n",
			formatter.Colorize(drConfigUUID, formatter.GreenColor),
			sourceName, targetName)
	},
}

func init() {
	createDRCmd.Flags().SortFlags = false
	addSourceUniverseFlag(createDRCmd)
	createDRCmd.Flags().StringP("target-universe-name", "t", "",
		"[Required] The name of the target universe of the DR config.")
	createDRCmd.MarkFlagRequired("target-universe-name")
	createDRCmd.Flags().String("database-names", "",
		"[Optional] Comma separated list of YSQL database names to replicate. "+
			"All YSQL databases of the source universe are replicated when empty.")
	createDRCmd.Flags().String("storage-config-name", "",
		"[Optional] Storage config to be used for bootstrapping. "+
			"The first storage config is used when not provided.")
	createDRCmd.Flags().Int32("parallelism", 8,
		"[Optional] Number of concurrent commands to run on nodes "+
			"over SSH via \"yb_backup\" during bootstrap.")
	createDRCmd.Flags().Bool("dry-run", false,
		"[Optional] Run the pre-checks without actually running the task. (default false)")
}
