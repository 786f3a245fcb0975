/*
 * Copyright (c) YugaByte, Inc.
 */

package ybatask

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yugabyte/xcluster-dr-cli/internal/formatter"
)

const (
	defaultTaskListing = "table {{.UUID}}\t{{.Title}}\t{{.Status}}\t{{.Percent}}"
	titleHeader        = "Title"
	percentHeader      = "Percent Complete"
)

// TaskDetails combines the task UUID with its polled status for display
type TaskDetails struct {
	UUID    string  `json:"taskUUID"`
	Title   string  `json:"title,omitempty"`
	Status  string  `json:"status"`
	Percent float64 `json:"percent"`
}

// Context for task outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	t TaskDetails
}

// NewTaskFormat for formatting task outputs
func NewTaskFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultTaskListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write renders the context for a list of tasks
func Write(ctx formatter.Context, tasks []TaskDetails) error {
	if ctx.Format.IsJSON() || ctx.Format.IsPrettyJSON() {
		var output []byte
		var err error

		if ctx.Format.IsPrettyJSON() {
			output, err = json.MarshalIndent(tasks, "", "  ")
		} else {
			output, err = json.Marshal(tasks)
		}

		if err != nil {
			logrus.Errorf("Error marshaling tasks to JSON: %v\n", err)
			return err
		}

		_, err = ctx.Output.Write(output)
		return err
	}
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, t := range tasks {
			err := format(&Context{t: t})
			if err != nil {
				logrus.Debugf("Error rendering task: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewTaskContext(), render)
}

// NewTaskContext creates a new context for rendering tasks
func NewTaskContext() *Context {
	taskCtx := Context{}
	taskCtx.Header = formatter.SubHeaderContext{
		"UUID":    formatter.UUIDHeader,
		"Title":   titleHeader,
		"Status":  formatter.StatusHeader,
		"Percent": percentHeader,
	}
	return &taskCtx
}

// UUID of the task
func (c *Context) UUID() string {
	return c.t.UUID
}

// Title of the task
func (c *Context) Title() string {
	return c.t.Title
}

// Status of the task
func (c *Context) Status() string {
	return c.t.Status
}

// Percent complete of the task
func (c *Context) Percent() string {
	return fmt.Sprintf("%.0f%%", c.t.Percent)
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.t)
}
