/*
 * Copyright (c) YugaByte, Inc.
 */

package dr

import (
	"fmt"
	"strings"

	"github.com/yugabyte/xcluster-dr-cli/internal/client"
)

// NotFoundError indicates a named universe, DR config or storage config
// could not be resolved
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConflictError indicates an operation precondition is violated by existing
// remote state
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ValidationError indicates a computed table set is a no-op or candidate
// tables failed cross-cluster existence validation. Tables carries the
// offending tables when the validation was against the replica inventory.
type ValidationError struct {
	Message string
	Tables  []client.TableInfo
}

func (e *ValidationError) Error() string {
	if len(e.Tables) == 0 {
		return e.Message
	}
	names := make([]string, 0, len(e.Tables))
	for _, t := range e.Tables {
		names = append(names, fmt.Sprintf("%s.%s.%s",
			t.KeySpace, t.PgSchemaName, t.TableName))
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(names, ", "))
}
