/*
 * Copyright (c) YugaByte, Inc.
 */

package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Table types supported by the platform
const (
	// YSQLTableType is the table type replicated by xCluster DR
	YSQLTableType = "PGSQL_TABLE_TYPE"
	// YCQLTableType for Cassandra-compatible tables
	YCQLTableType = "YQL_TABLE_TYPE"
)

// TableInfo is the per-table inventory entry of a universe
type TableInfo struct {
	TableID       string  `json:"tableID"`
	TableUUID     string  `json:"tableUUID"`
	KeySpace      string  `json:"keySpace"`
	PgSchemaName  string  `json:"pgSchemaName"`
	TableName     string  `json:"tableName"`
	TableType     string  `json:"tableType"`
	RelationType  string  `json:"relationType,omitempty"`
	SizeBytes     float64 `json:"sizeBytes"`
	WalSizeBytes  float64 `json:"walSizeBytes,omitempty"`
	IsIndexTable  bool    `json:"isIndexTable"`
	Colocated     bool    `json:"colocated,omitempty"`
	ColocationID  int64   `json:"colocationParentId,omitempty"`
	ParentTableID string  `json:"parentTableUUID,omitempty"`
}

// ListTablesOptions filters the table inventory of a universe
type ListTablesOptions struct {
	// TableType to keep, defaults to YSQLTableType
	TableType string
	// IncludeParentTableInfo forwards the matching query parameter
	IncludeParentTableInfo bool
	// OnlySupportedForXCluster keeps only tables eligible for replication
	OnlySupportedForXCluster bool
	// KeySpaces keeps only tables of the given keyspaces when non-empty
	KeySpaces []string
}

// ListUniverseTables fetches the table inventory of a universe, filtered by
// table type and optionally by keyspace
func (a *AuthAPIClient) ListUniverseTables(
	universeUUID string,
	opts ListTablesOptions,
) ([]TableInfo, error) {
	if len(opts.TableType) == 0 {
		opts.TableType = YSQLTableType
	}
	body, err := a.RestAPICall(RestAPIParameters{
		method: http.MethodGet,
		urlRoute: fmt.Sprintf(
			"universes/%s/tables?includeParentTableInfo=%t&onlySupportedForXCluster=%t",
			universeUUID, opts.IncludeParentTableInfo, opts.OnlySupportedForXCluster),
		operationString: "List Universe Tables",
	})
	if err != nil {
		return nil, err
	}
	allTables := []TableInfo{}
	if err := json.Unmarshal(body, &allTables); err != nil {
		return nil, errors.Wrap(err, "failed to parse table list response")
	}

	tables := make([]TableInfo, 0, len(allTables))
	for _, t := range allTables {
		if t.TableType != opts.TableType {
			continue
		}
		if len(opts.KeySpaces) > 0 && !slices.Contains(opts.KeySpaces, t.KeySpace) {
			continue
		}
		tables = append(tables, t)
	}
	return tables, nil
}
