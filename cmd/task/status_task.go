/*
 * Copyright (c) YugaByte, Inc.
 */

package task

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/xcluster-dr-cli/cmd/util"
	"github.com/yugabyte/xcluster-dr-cli/internal/client"
	"github.com/yugabyte/xcluster-dr-cli/internal/formatter"
	"github.com/yugabyte/xcluster-dr-cli/internal/formatter/ybatask"
)

var statusTaskCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"describe", "get"},
	Short:   "Get the status of a task",
	Long:    "Get the status of a task in YugabyteDB Anywhere",
	PreRun: func(cmd *cobra.Command, args []string) {
		taskUUID, err := cmd.Flags().GetString("uuid")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if util.IsEmptyString(taskUUID) {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No task uuid found\n", formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := client.NewAuthAPIClientAndCustomer()

		taskUUID, err := cmd.Flags().GetString("uuid")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		status, err := authAPI.GetTaskStatus(taskUUID)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		taskCtx := formatter.Context{
			Output: os.Stdout,
			Format: ybatask.NewTaskFormat(viper.GetString("output")),
		}
		ybatask.Write(taskCtx, []ybatask.TaskDetails{
			{
				UUID:    taskUUID,
				Title:   status.Title,
				Status:  status.Status,
				Percent: status.Percent,
			},
		})
	},
}

func init() {
	statusTaskCmd.Flags().SortFlags = false
	statusTaskCmd.Flags().StringP("uuid", "u", "",
		"[Required] The UUID of the task.")
	statusTaskCmd.MarkFlagRequired("uuid")
}
