/*
 * Copyright (c) YugaByte, Inc.
 */

package task

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/xcluster-dr-cli/cmd/util"
	"github.com/yugabyte/xcluster-dr-cli/internal/client"
	"github.com/yugabyte/xcluster-dr-cli/internal/formatter"
)

var abortTaskCmd = &cobra.Command{
	Use:   "abort",
	Short: "Abort a running task",
	Long:  "Abort a running task in YugabyteDB Anywhere",
	PreRun: func(cmd *cobra.Command, args []string) {
		viper.BindPFlag("force", cmd.Flags().Lookup("force"))
		taskUUID, err := cmd.Flags().GetString("uuid")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if util.IsEmptyString(taskUUID) {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No task uuid found\n", formatter.RedColor))
		}
		err = util.ConfirmCommand(
			fmt.Sprintf("Are you sure you want to abort task: %s", taskUUID),
			viper.GetBool("force"))
		if err != nil {
			logrus.Fatal(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := client.NewAuthAPIClientAndCustomer()

		taskUUID, err := cmd.Flags().GetString("uuid")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		abort, err := authAPI.AbortTask(taskUUID)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if !abort.Success {
			logrus.Fatalf(formatter.Colorize(
				fmt.Sprintf("Failed to abort task %s\n", taskUUID), formatter.RedColor))
		}

		logrus.Infof("The task %s has been aborted\n",
			formatter.Colorize(taskUUID, formatter.GreenColor))
	},
}

func init() {
	abortTaskCmd.Flags().SortFlags = false
	abortTaskCmd.Flags().StringP("uuid", "u", "",
		"[Required] The UUID of the task.")
	abortTaskCmd.MarkFlagRequired("uuid")
	abortTaskCmd.Flags().BoolP("force", "f", false,
		"[Optional] Bypass the prompt for non-interactive usage.")
}
