/*
 * Copyright (c) YugaByte, Inc.
 */

package dr

import (
	"github.com/yugabyte/xcluster-dr-cli/internal/client"
	"golang.org/x/exp/slices"
)

// The set_tables endpoint replaces the DR config's table membership
// wholesale. Every function below therefore produces or feeds into the
// complete desired set; omitting a previously included table ID would
// silently drop it from replication.

// TableKey identifies a table across universes. Table IDs differ between
// primary and replica, so cross-cluster matching uses this tuple instead.
type TableKey struct {
	KeySpace     string
	PgSchemaName string
	TableName    string
}

// KeyOf returns the cross-cluster identity of a table
func KeyOf(t client.TableInfo) TableKey {
	return TableKey{
		KeySpace:     t.KeySpace,
		PgSchemaName: t.PgSchemaName,
		TableName:    t.TableName,
	}
}

// AvailableTables returns the tables of a universe that are not yet part of
// the DR config membership, preserving the input order
func AvailableTables(allTables []client.TableInfo, currentIDs []string) []client.TableInfo {
	current := make(map[string]struct{}, len(currentIDs))
	for _, id := range currentIDs {
		current[id] = struct{}{}
	}
	available := make([]client.TableInfo, 0, len(allTables))
	for _, t := range allTables {
		if _, ok := current[t.TableID]; !ok {
			available = append(available, t)
		}
	}
	return available
}

// FilterByRequested keeps only the candidates the caller asked for. An empty
// result means nothing can be added and the caller must not submit.
func FilterByRequested(
	candidates []client.TableInfo,
	requestedIDs []string,
) ([]client.TableInfo, error) {
	requested := make([]client.TableInfo, 0, len(requestedIDs))
	for _, t := range candidates {
		if slices.Contains(requestedIDs, t.TableID) {
			requested = append(requested, t)
		}
	}
	if len(requested) == 0 {
		return nil, &ValidationError{
			Message: "no matching tables found to add to the DR config",
		}
	}
	return requested, nil
}

// ValidateAgainstReplica checks that every candidate table already exists on
// the replica, matching on (keyspace, schema, table name). The control plane
// cannot replicate into a table that is missing on the target side. No
// deeper schema compatibility is checked; identical DDL on both sides
// remains the operator's responsibility.
func ValidateAgainstReplica(candidates, replicaTables []client.TableInfo) error {
	replica := make(map[TableKey]struct{}, len(replicaTables))
	for _, t := range replicaTables {
		replica[KeyOf(t)] = struct{}{}
	}
	unmatched := make([]client.TableInfo, 0)
	for _, t := range candidates {
		if _, ok := replica[KeyOf(t)]; !ok {
			unmatched = append(unmatched, t)
		}
	}
	if len(unmatched) > 0 {
		return &ValidationError{
			Message: "no matching table(s) found in the DR replica",
			Tables:  unmatched,
		}
	}
	return nil
}

// AddSet merges validated new table IDs into the current membership,
// producing the full desired set to submit
func AddSet(currentIDs, addIDs []string) []string {
	desired := make([]string, 0, len(currentIDs)+len(addIDs))
	desired = append(desired, currentIDs...)
	for _, id := range addIDs {
		if !slices.Contains(desired, id) {
			desired = append(desired, id)
		}
	}
	return desired
}

// RemoveSet returns the current membership minus the requested IDs. A result
// of unchanged size means none of the requested tables were members.
func RemoveSet(currentIDs, removeIDs []string) ([]string, error) {
	desired := make([]string, 0, len(currentIDs))
	for _, id := range currentIDs {
		if !slices.Contains(removeIDs, id) {
			desired = append(desired, id)
		}
	}
	if len(desired) == len(currentIDs) {
		return nil, &ValidationError{
			Message: "no tables could be removed from the DR config",
		}
	}
	return desired, nil
}

// TableIDs projects the table IDs of the given tables, preserving order
func TableIDs(tables []client.TableInfo) []string {
	ids := make([]string, 0, len(tables))
	for _, t := range tables {
		ids = append(ids, t.TableID)
	}
	return ids
}
