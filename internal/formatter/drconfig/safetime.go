/*
 * Copyright (c) YugaByte, Inc.
 */

package drconfig

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yugabyte/xcluster-dr-cli/internal/client"
	"github.com/yugabyte/xcluster-dr-cli/internal/formatter"
)

const (
	defaultSafetimeListing = "table {{.Namespace}}\t{{.NamespaceID}}" +
		"\t{{.Safetime}}\t{{.SafetimeEpochUs}}"
	namespaceHeader       = "Namespace"
	namespaceIDHeader     = "Namespace ID"
	safetimeHeader        = "Safetime"
	safetimeEpochUsHeader = "Safetime Epoch (us)"
)

// SafetimeContext for safetime outputs
type SafetimeContext struct {
	formatter.HeaderContext
	formatter.Context
	s client.NamespaceSafetime
}

// NewSafetimeFormat for formatting safetime outputs
func NewSafetimeFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultSafetimeListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// SafetimeWrite renders the context for a list of namespace safetimes
func SafetimeWrite(ctx formatter.Context, safetimes []client.NamespaceSafetime) error {
	if ctx.Format.IsJSON() || ctx.Format.IsPrettyJSON() {
		var output []byte
		var err error

		if ctx.Format.IsPrettyJSON() {
			output, err = json.MarshalIndent(safetimes, "", "  ")
		} else {
			output, err = json.Marshal(safetimes)
		}

		if err != nil {
			logrus.Errorf("Error marshaling safetimes to JSON: %v\n", err)
			return err
		}

		_, err = ctx.Output.Write(output)
		return err
	}
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, safetime := range safetimes {
			err := format(&SafetimeContext{s: safetime})
			if err != nil {
				logrus.Debugf("Error rendering safetime: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewSafetimeContext(), render)
}

// NewSafetimeContext creates a new context for rendering safetimes
func NewSafetimeContext() *SafetimeContext {
	safetimeCtx := SafetimeContext{}
	safetimeCtx.Header = formatter.SubHeaderContext{
		"Namespace":       namespaceHeader,
		"NamespaceID":     namespaceIDHeader,
		"Safetime":        safetimeHeader,
		"SafetimeEpochUs": safetimeEpochUsHeader,
	}
	return &safetimeCtx
}

// Namespace name
func (c *SafetimeContext) Namespace() string {
	return c.s.NamespaceName
}

// NamespaceID of the namespace
func (c *SafetimeContext) NamespaceID() string {
	return c.s.NamespaceID
}

// Safetime as a human readable timestamp
func (c *SafetimeContext) Safetime() string {
	return time.UnixMicro(c.s.SafetimeEpochUs).UTC().Format(time.RFC3339)
}

// SafetimeEpochUs raw epoch microseconds
func (c *SafetimeContext) SafetimeEpochUs() string {
	return fmt.Sprintf("%d", c.s.SafetimeEpochUs)
}

// MarshalJSON function
func (c *SafetimeContext) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.s)
}
