/*
 * Copyright (c) YugaByte, Inc.
 */

package table

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yugabyte/xcluster-dr-cli/internal/client"
	"github.com/yugabyte/xcluster-dr-cli/internal/formatter"
)

const (
	defaultTableListing = "table {{.KeySpace}}\t{{.PgSchemaName}}\t{{.TableName}}" +
		"\t{{.TableID}}\t{{.SizeBytes}}\t{{.IsIndexTable}}"
	keySpaceHeader     = "Keyspace"
	pgSchemaNameHeader = "Schema"
	tableNameHeader    = "Table Name"
	tableIDHeader      = "Table ID"
	sizeBytesHeader    = "Size (bytes)"
	isIndexTableHeader = "Index Table"
)

// Context for table outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	t client.TableInfo
}

// NewTableFormat for formatting table outputs
func NewTableFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultTableListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write renders the context for a list of tables
func Write(ctx formatter.Context, tables []client.TableInfo) error {
	if ctx.Format.IsJSON() || ctx.Format.IsPrettyJSON() {
		var output []byte
		var err error

		if ctx.Format.IsPrettyJSON() {
			output, err = json.MarshalIndent(tables, "", "  ")
		} else {
			output, err = json.Marshal(tables)
		}

		if err != nil {
			logrus.Errorf("Error marshaling tables to JSON: %v\n", err)
			return err
		}

		_, err = ctx.Output.Write(output)
		return err
	}
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, t := range tables {
			err := format(&Context{t: t})
			if err != nil {
				logrus.Debugf("Error rendering table: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewTableContext(), render)
}

// NewTableContext creates a new context for rendering tables
func NewTableContext() *Context {
	tableCtx := Context{}
	tableCtx.Header = formatter.SubHeaderContext{
		"KeySpace":     keySpaceHeader,
		"PgSchemaName": pgSchemaNameHeader,
		"TableName":    tableNameHeader,
		"TableID":      tableIDHeader,
		"SizeBytes":    sizeBytesHeader,
		"IsIndexTable": isIndexTableHeader,
	}
	return &tableCtx
}

// KeySpace the table belongs to
func (c *Context) KeySpace() string {
	return c.t.KeySpace
}

// PgSchemaName of the table
func (c *Context) PgSchemaName() string {
	return c.t.PgSchemaName
}

// TableName of the table
func (c *Context) TableName() string {
	return c.t.TableName
}

// TableID of the table
func (c *Context) TableID() string {
	return c.t.TableID
}

// SizeBytes of the table
func (c *Context) SizeBytes() string {
	return fmt.Sprintf("%.0f", c.t.SizeBytes)
}

// IsIndexTable flag of the table
func (c *Context) IsIndexTable() string {
	return fmt.Sprintf("%t", c.t.IsIndexTable)
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.t)
}
