/*
 * Copyright (c) YugaByte, Inc.
 */

// Package task implements the poll-until-terminal protocol for the
// asynchronous tasks every mutating platform action returns.
package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"
	"github.com/yugabyte/xcluster-dr-cli/internal/client"
)

// DefaultPollInterval between task status checks
const DefaultPollInterval = 15 * time.Second

// State is the closed set of task states the monitor acts on
type State int

const (
	// StateUnknown covers every status string that is not a known state;
	// the monitor treats it the same as running
	StateUnknown State = iota
	// StateRunning means the task is still in progress
	StateRunning
	// StateSuccess is the successful terminal state
	StateSuccess
	// StateFailure is the failed terminal state
	StateFailure
)

// ParseState maps a platform status string onto a State
func ParseState(status string) State {
	switch status {
	case "Running":
		return StateRunning
	case "Success":
		return StateSuccess
	case "Failure":
		return StateFailure
	default:
		return StateUnknown
	}
}

// Terminal reports whether no further polls are needed
func (s State) Terminal() bool {
	return s == StateSuccess || s == StateFailure
}

// StatusAPI is the part of the platform client the monitor polls
type StatusAPI interface {
	GetTaskStatus(taskUUID string) (client.TaskStatus, error)
	ListFailedSubtasks(taskUUID string) (client.FailedSubtasks, error)
}

// Progress is reported to the observer on every non-terminal poll
type Progress struct {
	TaskUUID string
	Name     string
	Status   string
	Percent  float64
}

// Monitor waits for asynchronous tasks to reach a terminal state
type Monitor struct {
	api          StatusAPI
	clock        clock.Clock
	pollInterval time.Duration
	progress     func(Progress)
}

// Option customizes a Monitor
type Option func(*Monitor)

// WithPollInterval overrides the default poll interval
func WithPollInterval(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.pollInterval = d
		}
	}
}

// WithClock overrides the wall clock, used by tests
func WithClock(c clock.Clock) Option {
	return func(m *Monitor) {
		m.clock = c
	}
}

// WithProgress overrides the progress observer
func WithProgress(fn func(Progress)) Option {
	return func(m *Monitor) {
		m.progress = fn
	}
}

// NewMonitor returns a Monitor polling through the given API
func NewMonitor(api StatusAPI, opts ...Option) *Monitor {
	m := &Monitor{
		api:          api,
		clock:        clock.New(),
		pollInterval: DefaultPollInterval,
		progress: func(p Progress) {
			logrus.Infof("Waiting for '%s' (task=%s): %.0f%% complete...\n",
				p.Name, p.TaskUUID, p.Percent)
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Wait polls the submitted task until it reaches a terminal state. On
// success it returns the resource UUID captured from the submission response,
// not a re-fetched one, so a resource that keeps mutating cannot race the
// caller. The context bounds the wait; cancellation stops polling but leaves
// the remote task running.
func (m *Monitor) Wait(
	ctx context.Context,
	submitted client.TaskResponse,
	friendlyName string,
) (string, error) {
	if len(submitted.TaskUUID) == 0 {
		return "", &SubmissionError{Name: friendlyName}
	}

	for {
		status, err := m.api.GetTaskStatus(submitted.TaskUUID)
		if err != nil {
			return "", err
		}

		switch ParseState(status.Status) {
		case StateSuccess:
			logrus.Debugf("Task '%s' (%s) finished successfully\n",
				friendlyName, submitted.TaskUUID)
			return submitted.ResourceUUID, nil
		case StateFailure:
			return "", m.failure(submitted.TaskUUID, friendlyName, status.Status)
		case StateRunning, StateUnknown:
			m.progress(Progress{
				TaskUUID: submitted.TaskUUID,
				Name:     friendlyName,
				Status:   status.Status,
				Percent:  status.Percent,
			})
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-m.clock.After(m.pollInterval):
		}
	}
}

// failure builds the aggregated task failure error, falling back to a
// generic message when the failure detail cannot be fetched
func (m *Monitor) failure(taskUUID, friendlyName, status string) error {
	failure := &FailureError{
		TaskUUID: taskUUID,
		Name:     friendlyName,
		Message: fmt.Sprintf(
			"task '%s' (%s) failed, but could not get the failure messages",
			friendlyName, taskUUID),
	}

	detail, err := m.api.ListFailedSubtasks(taskUUID)
	if err != nil {
		logrus.Debugf("Could not fetch failed subtasks for %s: %s\n", taskUUID, err)
		return failure
	}
	if len(detail.FailedSubTasks) == 0 {
		return failure
	}

	errorStrings := make([]string, 0, len(detail.FailedSubTasks))
	for _, subtask := range detail.FailedSubTasks {
		errorStrings = append(errorStrings, subtask.ErrorString)
	}
	failure.Message = fmt.Sprintf("task '%s' (%s) failed with state %s: %s",
		friendlyName, taskUUID, status, strings.Join(errorStrings, "\n"))
	return failure
}
