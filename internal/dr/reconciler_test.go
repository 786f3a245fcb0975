/*
 * Copyright (c) YugaByte, Inc.
 */

package dr

import (
	"testing"

	"github.com/yugabyte/xcluster-dr-cli/internal/client"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func table(id, keySpace, schema, name string) client.TableInfo {
	return client.TableInfo{
		TableID:      id,
		KeySpace:     keySpace,
		PgSchemaName: schema,
		TableName:    name,
	}
}

func TestAvailableTablesExcludesCurrentMembership(t *testing.T) {
	all := []client.TableInfo{
		table("t1", "yugabyte", "public", "orders"),
		table("t2", "yugabyte", "public", "customers"),
		table("t3", "yugabyte", "public", "items"),
	}

	available := AvailableTables(all, []string{"t1", "t2"})

	assert.Assert(t, is.Len(available, 1))
	assert.Equal(t, available[0].TableID, "t3")
}

func TestAvailableTablesEmptyMembershipReturnsAll(t *testing.T) {
	all := []client.TableInfo{
		table("t1", "yugabyte", "public", "orders"),
		table("t2", "yugabyte", "public", "customers"),
	}

	available := AvailableTables(all, nil)

	assert.Assert(t, is.Len(available, 2))
	assert.Equal(t, available[0].TableID, "t1")
	assert.Equal(t, available[1].TableID, "t2")
}

func TestFilterByRequestedKeepsOnlyMatches(t *testing.T) {
	candidates := []client.TableInfo{
		table("t3", "yugabyte", "public", "items"),
		table("t4", "yugabyte", "public", "payments"),
	}

	requested, err := FilterByRequested(candidates, []string{"t4"})
	assert.NilError(t, err)
	assert.Assert(t, is.Len(requested, 1))
	assert.Equal(t, requested[0].TableID, "t4")
}

func TestFilterByRequestedNoMatchesFails(t *testing.T) {
	candidates := []client.TableInfo{
		table("t3", "yugabyte", "public", "items"),
	}

	_, err := FilterByRequested(candidates, []string{"t1", "t2"})
	assert.ErrorContains(t, err, "no matching tables found")

	_, ok := err.(*ValidationError)
	assert.Assert(t, ok)
}

func TestValidateAgainstReplicaMatchesOnIdentityNotID(t *testing.T) {
	candidates := []client.TableInfo{
		table("t3", "yugabyte", "public", "items"),
	}
	// same keyspace/schema/name, different table ID on the replica side
	replica := []client.TableInfo{
		table("r9", "yugabyte", "public", "items"),
	}

	assert.NilError(t, ValidateAgainstReplica(candidates, replica))
}

func TestValidateAgainstReplicaListsUnmatchedTables(t *testing.T) {
	candidates := []client.TableInfo{
		table("t3", "yugabyte", "public", "items"),
		table("t4", "yugabyte", "public", "payments"),
	}
	replica := []client.TableInfo{
		table("r9", "yugabyte", "public", "items"),
	}

	err := ValidateAgainstReplica(candidates, replica)
	assert.ErrorContains(t, err, "no matching table(s) found in the DR replica")
	assert.ErrorContains(t, err, "yugabyte.public.payments")

	validationErr, ok := err.(*ValidationError)
	assert.Assert(t, ok)
	assert.Assert(t, is.Len(validationErr.Tables, 1))
	assert.Equal(t, validationErr.Tables[0].TableID, "t4")
}

func TestAddSetProducesFullMembership(t *testing.T) {
	desired := AddSet([]string{"t1", "t2"}, []string{"t3", "t2"})

	assert.DeepEqual(t, desired, []string{"t1", "t2", "t3"})
}

func TestRemoveSetProducesRemainingMembership(t *testing.T) {
	desired, err := RemoveSet([]string{"t1", "t2", "t3"}, []string{"t2"})

	assert.NilError(t, err)
	assert.DeepEqual(t, desired, []string{"t1", "t3"})
}

func TestRemoveSetNoMembersRemovedFails(t *testing.T) {
	_, err := RemoveSet([]string{"t1", "t2"}, []string{"t9"})

	assert.ErrorContains(t, err, "no tables could be removed")
}

func TestTableIDsPreservesOrder(t *testing.T) {
	tables := []client.TableInfo{
		table("t2", "yugabyte", "public", "customers"),
		table("t1", "yugabyte", "public", "orders"),
	}

	assert.DeepEqual(t, TableIDs(tables), []string{"t2", "t1"})
}
