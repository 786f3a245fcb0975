/*
 * Copyright (c) YugaByte, Inc.
 */

package task

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/yugabyte/xcluster-dr-cli/internal/client"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

type fakeStatusAPI struct {
	mu          sync.Mutex
	statuses    []client.TaskStatus
	statusCalls int
	subtasks    client.FailedSubtasks
	subtasksErr error
}

func (f *fakeStatusAPI) GetTaskStatus(taskUUID string) (client.TaskStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.statusCalls
	if i >= len(f.statuses) {
		i = len(f.statuses) - 1
	}
	f.statusCalls++
	return f.statuses[i], nil
}

func (f *fakeStatusAPI) ListFailedSubtasks(taskUUID string) (client.FailedSubtasks, error) {
	return f.subtasks, f.subtasksErr
}

func (f *fakeStatusAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statusCalls
}

func TestParseState(t *testing.T) {
	assert.Equal(t, ParseState("Running"), StateRunning)
	assert.Equal(t, ParseState("Success"), StateSuccess)
	assert.Equal(t, ParseState("Failure"), StateFailure)
	assert.Equal(t, ParseState("Created"), StateUnknown)
	assert.Equal(t, ParseState(""), StateUnknown)

	assert.Assert(t, StateSuccess.Terminal())
	assert.Assert(t, StateFailure.Terminal())
	assert.Assert(t, !StateRunning.Terminal())
	assert.Assert(t, !StateUnknown.Terminal())
}

func TestWaitMissingTaskUUIDFailsWithoutPolling(t *testing.T) {
	api := &fakeStatusAPI{}
	monitor := NewMonitor(api, WithClock(clock.NewMock()))

	_, err := monitor.Wait(context.Background(), client.TaskResponse{}, "Create xCluster DR")

	assert.ErrorContains(t, err, "action response has no task UUID")
	_, ok := err.(*SubmissionError)
	assert.Assert(t, ok)
	assert.Equal(t, api.calls(), 0)
}

func TestWaitReturnsSubmittedResourceUUID(t *testing.T) {
	api := &fakeStatusAPI{
		statuses: []client.TaskStatus{
			{Status: "Success", Percent: 100},
		},
	}
	monitor := NewMonitor(api, WithClock(clock.NewMock()))

	resourceUUID, err := monitor.Wait(context.Background(), client.TaskResponse{
		TaskUUID:     "task-1",
		ResourceUUID: "dr-config-1",
	}, "Create xCluster DR")

	assert.NilError(t, err)
	assert.Equal(t, resourceUUID, "dr-config-1")
	assert.Equal(t, api.calls(), 1)
}

func TestWaitPollsUntilTerminalAndReportsProgress(t *testing.T) {
	api := &fakeStatusAPI{
		statuses: []client.TaskStatus{
			{Status: "Running", Percent: 10},
			// unknown statuses keep the wait going
			{Status: "Initializing", Percent: 40},
			{Status: "Success", Percent: 100},
		},
	}

	var mu sync.Mutex
	observed := make([]Progress, 0)
	monitor := NewMonitor(api,
		WithPollInterval(time.Millisecond),
		WithProgress(func(p Progress) {
			mu.Lock()
			defer mu.Unlock()
			observed = append(observed, p)
		}))

	resourceUUID, err := monitor.Wait(context.Background(), client.TaskResponse{
		TaskUUID:     "task-1",
		ResourceUUID: "dr-config-1",
	}, "Create xCluster DR")

	assert.NilError(t, err)
	assert.Equal(t, resourceUUID, "dr-config-1")
	assert.Equal(t, api.calls(), 3)

	assert.Assert(t, is.Len(observed, 2))
	assert.Equal(t, observed[0].Status, "Running")
	assert.Equal(t, observed[0].Percent, float64(10))
	assert.Equal(t, observed[1].Status, "Initializing")
	assert.Equal(t, observed[1].Name, "Create xCluster DR")
}

func TestWaitAggregatesSubtaskFailures(t *testing.T) {
	api := &fakeStatusAPI{
		statuses: []client.TaskStatus{
			{Status: "Failure", Percent: 60},
		},
		subtasks: client.FailedSubtasks{
			FailedSubTasks: []client.FailedSubtask{
				{SubTaskType: "BootstrapProducer", ErrorString: "bootstrap failed"},
				{SubTaskType: "RestoreBackup", ErrorString: "restore failed"},
			},
		},
	}
	monitor := NewMonitor(api, WithClock(clock.NewMock()))

	_, err := monitor.Wait(context.Background(), client.TaskResponse{
		TaskUUID: "task-1",
	}, "Create xCluster DR")

	failure, ok := err.(*FailureError)
	assert.Assert(t, ok)
	assert.Equal(t, failure.TaskUUID, "task-1")
	assert.ErrorContains(t, err, "bootstrap failed\nrestore failed")
}

func TestWaitFailureWithoutDetailKeepsGenericMessage(t *testing.T) {
	api := &fakeStatusAPI{
		statuses: []client.TaskStatus{
			{Status: "Failure"},
		},
		subtasksErr: context.DeadlineExceeded,
	}
	monitor := NewMonitor(api, WithClock(clock.NewMock()))

	_, err := monitor.Wait(context.Background(), client.TaskResponse{
		TaskUUID: "task-1",
	}, "Delete xCluster DR")

	assert.ErrorContains(t, err, "could not get the failure messages")
}

func TestWaitStopsOnContextCancellation(t *testing.T) {
	api := &fakeStatusAPI{
		statuses: []client.TaskStatus{
			{Status: "Running", Percent: 10},
		},
	}
	// the mock clock never fires, so the canceled context must win the select
	monitor := NewMonitor(api,
		WithClock(clock.NewMock()),
		WithProgress(func(Progress) {}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := monitor.Wait(ctx, client.TaskResponse{TaskUUID: "task-1"}, "Create xCluster DR")

	assert.Assert(t, is.ErrorIs(err, context.Canceled))
	assert.Equal(t, api.calls(), 1)
}
