/*
 * Copyright (c) YugaByte, Inc.
 */

package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// TaskResponse is the accepted-action record returned by mutating endpoints
type TaskResponse struct {
	TaskUUID     string `json:"taskUUID"`
	ResourceUUID string `json:"resourceUUID"`
}

// TaskStatus is the polled status of an asynchronous task
type TaskStatus struct {
	Status  string  `json:"status"`
	Percent float64 `json:"percent"`
	Title   string  `json:"title,omitempty"`
	Target  string  `json:"target,omitempty"`
}

// FailedSubtask carries the error of a single failed subtask
type FailedSubtask struct {
	SubTaskUUID string `json:"subTaskUUID,omitempty"`
	SubTaskType string `json:"subTaskType,omitempty"`
	ErrorString string `json:"errorString"`
}

// FailedSubtasks is the failure detail record of a failed task
type FailedSubtasks struct {
	FailedSubTasks []FailedSubtask `json:"failedSubTasks"`
}

// AbortTaskResponse is the result of an abort request
type AbortTaskResponse struct {
	Success bool `json:"success"`
}

// GetTaskStatus fetches the status of a task
func (a *AuthAPIClient) GetTaskStatus(taskUUID string) (TaskStatus, error) {
	body, err := a.RestAPICall(RestAPIParameters{
		method:          http.MethodGet,
		urlRoute:        fmt.Sprintf("tasks/%s", taskUUID),
		operationString: "Get Task Status",
	})
	if err != nil {
		return TaskStatus{}, err
	}
	status := TaskStatus{}
	if err := json.Unmarshal(body, &status); err != nil {
		return TaskStatus{}, errors.Wrap(err, "failed to parse task status response")
	}
	return status, nil
}

// ListFailedSubtasks fetches the failure detail of a failed task
func (a *AuthAPIClient) ListFailedSubtasks(taskUUID string) (FailedSubtasks, error) {
	body, err := a.RestAPICall(RestAPIParameters{
		method:          http.MethodGet,
		urlRoute:        fmt.Sprintf("tasks/%s/failed", taskUUID),
		operationString: "List Failed Subtasks",
	})
	if err != nil {
		return FailedSubtasks{}, err
	}
	subtasks := FailedSubtasks{}
	if err := json.Unmarshal(body, &subtasks); err != nil {
		return FailedSubtasks{}, errors.Wrap(err, "failed to parse failed subtasks response")
	}
	return subtasks, nil
}

// AbortTask requests an abort of a running task
func (a *AuthAPIClient) AbortTask(taskUUID string) (AbortTaskResponse, error) {
	body, err := a.RestAPICall(RestAPIParameters{
		method:          http.MethodPost,
		urlRoute:        fmt.Sprintf("tasks/%s/abort", taskUUID),
		operationString: "Abort Task",
	})
	if err != nil {
		return AbortTaskResponse{}, err
	}
	abort := AbortTaskResponse{}
	if err := json.Unmarshal(body, &abort); err != nil {
		return AbortTaskResponse{}, errors.Wrap(err, "failed to parse abort task response")
	}
	return abort, nil
}
