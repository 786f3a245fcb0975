/*
 * Copyright (c) YugaByte, Inc.
 */

package dr

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/xcluster-dr-cli/cmd/util"
	"github.com/yugabyte/xcluster-dr-cli/internal/client"
	"github.com/yugabyte/xcluster-dr-cli/internal/dr"
	"github.com/yugabyte/xcluster-dr-cli/internal/formatter"
	"github.com/yugabyte/xcluster-dr-cli/internal/task"
)

// newOrchestrator wires the orchestrator to the authenticated client and a
// task waiter honoring the wait/timeout/poll-interval settings
func newOrchestrator(authAPI *client.AuthAPIClient) *dr.Orchestrator {
	return dr.NewOrchestrator(authAPI, &taskWaiter{authAPI: authAPI})
}

// waitContext bounds every wait with the configured command timeout
func waitContext(authAPI *client.AuthAPIClient) (context.Context, context.CancelFunc) {
	return context.WithTimeout(authAPI.Context(), viper.GetDuration("timeout"))
}

// taskWaiter adapts the task monitor to the CLI settings: it skips waiting
// when --wait=false, renders progress on a spinner outside CI, aborts the
// remote task on interrupt and maps a deadline hit to a friendly error.
type taskWaiter struct {
	authAPI *client.AuthAPIClient
}

func (w *taskWaiter) Wait(
	ctx context.Context,
	submitted client.TaskResponse,
	friendlyName string,
) (string, error) {
	if !viper.GetBool("wait") {
		if util.IsEmptyString(submitted.TaskUUID) {
			return "", &task.SubmissionError{Name: friendlyName}
		}
		logrus.Infof("Task %s submitted for '%s', not waiting for completion\n",
			formatter.Colorize(submitted.TaskUUID, formatter.BlueColor), friendlyName)
		return submitted.ResourceUUID, nil
	}

	opts := []task.Option{
		task.WithPollInterval(viper.GetDuration("poll-interval")),
	}
	if strings.ToLower(os.Getenv("YBADR_CI")) != "true" {
		s := spinner.New(spinner.CharSets[36], 300*time.Millisecond)
		s.Color(formatter.GreenColor)
		s.Suffix = fmt.Sprintf(" %s", friendlyName)
		s.Start()
		defer s.Stop()
		opts = append(opts, task.WithProgress(func(p task.Progress) {
			s.Suffix = fmt.Sprintf(" %s: %s [%.0f%% complete]",
				p.Name, p.Status, p.Percent)
		}))
	}

	monitor := task.NewMonitor(w.authAPI, opts...)
	resourceUUID, err := monitor.Wait(ctx, submitted, friendlyName)
	switch {
	case errors.Is(err, context.Canceled):
		return "", w.abortTask(submitted.TaskUUID)
	case errors.Is(err, context.DeadlineExceeded):
		return "", fmt.Errorf("wait timeout, operation could still be on-going")
	}
	return resourceUUID, err
}

func (w *taskWaiter) abortTask(taskUUID string) error {
	logrus.Info("Received interrupt signal, aborting task\n")
	// the signal context died with the interrupt, renew it for the abort call
	w.authAPI.RenewContext()

	r, err := w.authAPI.AbortTask(taskUUID)
	if err != nil {
		return err
	}
	if r.Success {
		logrus.Infof("Task %s aborted successfully\n", taskUUID)
		return fmt.Errorf("task %s aborted by user", taskUUID)
	}
	return fmt.Errorf("failed to abort task %s", taskUUID)
}

// addSourceUniverseFlag registers the flag every DR command resolves its
// config through
func addSourceUniverseFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("source-universe-name", "s", "",
		"[Required] The name of the source universe of the DR config.")
	cmd.MarkFlagRequired("source-universe-name")
}

// sourceUniverseName fetches and validates the source universe name flag
func sourceUniverseName(cmd *cobra.Command) string {
	name, err := cmd.Flags().GetString("source-universe-name")
	if err != nil {
		logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
	}
	if util.IsEmptyString(name) {
		cmd.Help()
		logrus.Fatalln(
			formatter.Colorize("No source universe name found\n", formatter.RedColor))
	}
	return name
}

// addTableIDsFlags registers the table selection flags of the
// add-tables/remove-tables commands
func addTableIDsFlags(cmd *cobra.Command) {
	cmd.Flags().String("table-uuids", "",
		"[Optional] Comma separated list of table IDs/UUIDs. "+
			"Run \"ybadr dr list-tables -s <source-universe-name>\" to check "+
			"the list of tables that can be added to the DR config.")
	cmd.Flags().String("table-uuids-file", "",
		"[Optional] Path to a YAML file with the table IDs under a \"tables\" key. "+
			"Merged with table-uuids when both are set.")
}

// tableIDsFromFlags merges the table IDs of the flag and file inputs
func tableIDsFromFlags(cmd *cobra.Command) []string {
	list, err := cmd.Flags().GetString("table-uuids")
	if err != nil {
		logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
	}
	tableIDs := util.SplitIDList(list)

	filePath, err := cmd.Flags().GetString("table-uuids-file")
	if err != nil {
		logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
	}
	if !util.IsEmptyString(filePath) {
		fileIDs, err := util.TableIDsFromFile(filePath)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		tableIDs = append(tableIDs, fileIDs...)
	}

	if len(tableIDs) == 0 {
		cmd.Help()
		logrus.Fatalln(
			formatter.Colorize("No table uuids found\n", formatter.RedColor))
	}
	return tableIDs
}
