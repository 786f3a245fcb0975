/*
 * Copyright (c) YugaByte, Inc.
 */

package task

import "fmt"

// SubmissionError indicates an accepted-action response arrived without a
// task UUID, so the action never properly started and was not polled
type SubmissionError struct {
	Name string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("failed to process '%s': action response has no task UUID",
		e.Name)
}

// FailureError indicates a task reached the failed terminal state; Message
// aggregates the per-subtask error strings when they are available
type FailureError struct {
	TaskUUID string
	Name     string
	Message  string
}

func (e *FailureError) Error() string {
	return e.Message
}
