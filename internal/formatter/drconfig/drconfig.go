/*
 * Copyright (c) YugaByte, Inc.
 */

package drconfig

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yugabyte/xcluster-dr-cli/internal/client"
	"github.com/yugabyte/xcluster-dr-cli/internal/formatter"
)

const (
	defaultDrConfigListing = "table {{.Name}}\t{{.UUID}}\t{{.PrimaryUniverse}}" +
		"\t{{.ReplicaUniverse}}\t{{.State}}\t{{.Tables}}"
	primaryUniverseHeader = "Primary Universe"
	replicaUniverseHeader = "Replica Universe"
	tablesHeader          = "Tables"
	xClusterConfigHeader  = "XCluster Config"
)

// Context for DR config outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	d client.DrConfig
}

// NewDrConfigFormat for formatting DR config outputs
func NewDrConfigFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultDrConfigListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write renders the context for a list of DR configs
func Write(ctx formatter.Context, drConfigs []client.DrConfig) error {
	if ctx.Format.IsJSON() || ctx.Format.IsPrettyJSON() {
		var output []byte
		var err error

		if ctx.Format.IsPrettyJSON() {
			output, err = json.MarshalIndent(drConfigs, "", "  ")
		} else {
			output, err = json.Marshal(drConfigs)
		}

		if err != nil {
			logrus.Errorf("Error marshaling DR configs to JSON: %v\n", err)
			return err
		}

		_, err = ctx.Output.Write(output)
		return err
	}
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, drConfig := range drConfigs {
			err := format(&Context{d: drConfig})
			if err != nil {
				logrus.Debugf("Error rendering DR config: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewDrConfigContext(), render)
}

// NewDrConfigContext creates a new context for rendering DR configs
func NewDrConfigContext() *Context {
	drConfigCtx := Context{}
	drConfigCtx.Header = formatter.SubHeaderContext{
		"UUID":            formatter.UUIDHeader,
		"Name":            formatter.NameHeader,
		"PrimaryUniverse": primaryUniverseHeader,
		"ReplicaUniverse": replicaUniverseHeader,
		"State":           formatter.StateHeader,
		"Tables":          tablesHeader,
		"XClusterConfig":  xClusterConfigHeader,
		"StorageConfig":   formatter.StorageConfigurationHeader,
	}
	return &drConfigCtx
}

// UUID of the DR config
func (c *Context) UUID() string {
	return c.d.UUID
}

// Name of the DR config
func (c *Context) Name() string {
	return c.d.Name
}

// PrimaryUniverse UUID
func (c *Context) PrimaryUniverse() string {
	return c.d.PrimaryUniverseUUID
}

// ReplicaUniverse UUID
func (c *Context) ReplicaUniverse() string {
	return c.d.DrReplicaUniverseUUID
}

// State of the DR config
func (c *Context) State() string {
	return c.d.State
}

// Tables replicated by the DR config
func (c *Context) Tables() string {
	return fmt.Sprintf("%d", len(c.d.Tables))
}

// XClusterConfig UUID underlying the DR config
func (c *Context) XClusterConfig() string {
	return c.d.XClusterConfigUUID
}

// StorageConfig UUID used for bootstrap
func (c *Context) StorageConfig() string {
	return c.d.BootstrapParams.BackupRequestParams.StorageConfigUUID
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.d)
}
