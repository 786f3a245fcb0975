/*
 * Copyright (c) YugaByte, Inc.
 */

package dr

import (
	"context"
	"testing"

	"github.com/yugabyte/xcluster-dr-cli/internal/client"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

// fakeAPI serves canned platform state and records submitted requests
type fakeAPI struct {
	universes      map[string]client.Universe
	tables         map[string][]client.TableInfo
	namespaces     map[string][]client.Namespace
	storageConfigs []client.CustomerConfig
	drConfigs      map[string]client.DrConfig
	safetimes      client.SafetimeResponse

	createReq     *client.CreateDrConfigRequest
	setTablesReq  *client.SetDrTablesRequest
	switchoverReq *client.SwitchoverDrRequest
	failoverReq   *client.FailoverDrRequest
	restartReq    *client.RestartDrRequest
	deletedUUID   string
	forceDelete   bool
	syncedUUID    string
	editedStatus  string
}

var submittedTask = client.TaskResponse{TaskUUID: "task-1", ResourceUUID: "dr-1"}

func (f *fakeAPI) ListUniversesByName(name string) ([]client.Universe, error) {
	if u, ok := f.universes[name]; ok {
		return []client.Universe{u}, nil
	}
	return []client.Universe{}, nil
}

func (f *fakeAPI) ListUniverseTables(
	universeUUID string,
	opts client.ListTablesOptions,
) ([]client.TableInfo, error) {
	return f.tables[universeUUID], nil
}

func (f *fakeAPI) ListUniverseNamespaces(
	universeUUID, tableType string,
) ([]client.Namespace, error) {
	return f.namespaces[universeUUID], nil
}

func (f *fakeAPI) ListStorageConfigs() ([]client.CustomerConfig, error) {
	return f.storageConfigs, nil
}

func (f *fakeAPI) GetDrConfig(drConfigUUID string) (client.DrConfig, error) {
	return f.drConfigs[drConfigUUID], nil
}

func (f *fakeAPI) CreateDrConfig(req client.CreateDrConfigRequest) (client.TaskResponse, error) {
	f.createReq = &req
	return submittedTask, nil
}

func (f *fakeAPI) DeleteDrConfig(drConfigUUID string, forceDelete bool) (client.TaskResponse, error) {
	f.deletedUUID = drConfigUUID
	f.forceDelete = forceDelete
	return submittedTask, nil
}

func (f *fakeAPI) SetDrConfigTables(
	drConfigUUID string,
	req client.SetDrTablesRequest,
) (client.TaskResponse, error) {
	f.setTablesReq = &req
	return submittedTask, nil
}

func (f *fakeAPI) SwitchoverDrConfig(
	drConfigUUID string,
	req client.SwitchoverDrRequest,
) (client.TaskResponse, error) {
	f.switchoverReq = &req
	return submittedTask, nil
}

func (f *fakeAPI) FailoverDrConfig(
	drConfigUUID string,
	req client.FailoverDrRequest,
) (client.TaskResponse, error) {
	f.failoverReq = &req
	return submittedTask, nil
}

func (f *fakeAPI) RestartDrConfig(
	drConfigUUID string,
	req client.RestartDrRequest,
	forceDelete bool,
) (client.TaskResponse, error) {
	f.restartReq = &req
	f.forceDelete = forceDelete
	return submittedTask, nil
}

func (f *fakeAPI) SyncDrConfig(drConfigUUID string) (client.TaskResponse, error) {
	f.syncedUUID = drConfigUUID
	return submittedTask, nil
}

func (f *fakeAPI) GetDrConfigSafetime(drConfigUUID string) (client.SafetimeResponse, error) {
	return f.safetimes, nil
}

func (f *fakeAPI) EditXClusterConfigStatus(
	xClusterConfigUUID, status string,
) (client.TaskResponse, error) {
	f.editedStatus = status
	return submittedTask, nil
}

// fakeWaiter records the waited task and hands back its resource UUID
type fakeWaiter struct {
	waited client.TaskResponse
	name   string
}

func (w *fakeWaiter) Wait(
	ctx context.Context,
	submitted client.TaskResponse,
	friendlyName string,
) (string, error) {
	w.waited = submitted
	w.name = friendlyName
	return submitted.ResourceUUID, nil
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		universes: map[string]client.Universe{
			"source": {
				UniverseUUID:          "source-uuid",
				Name:                  "source",
				DrConfigUUIDsAsSource: []string{"dr-1"},
			},
			"target": {
				UniverseUUID: "target-uuid",
				Name:         "target",
			},
			"fresh": {
				UniverseUUID: "fresh-uuid",
				Name:         "fresh",
			},
		},
		tables: map[string][]client.TableInfo{
			"source-uuid": {
				table("t1", "yugabyte", "public", "orders"),
				table("t2", "yugabyte", "public", "customers"),
				table("t3", "yugabyte", "public", "items"),
			},
			"target-uuid": {
				table("r1", "yugabyte", "public", "orders"),
				table("r2", "yugabyte", "public", "customers"),
				table("r3", "yugabyte", "public", "items"),
			},
		},
		namespaces: map[string][]client.Namespace{
			"fresh-uuid": {
				{NamespaceUUID: "db-1", Name: "yugabyte"},
				{NamespaceUUID: "db-2", Name: "postgres"},
			},
		},
		storageConfigs: []client.CustomerConfig{
			{ConfigUUID: "sc-1", ConfigName: "s3-backups"},
			{ConfigUUID: "sc-2", ConfigName: "nfs-backups"},
		},
		drConfigs: map[string]client.DrConfig{
			"dr-1": {
				UUID:                  "dr-1",
				Name:                  "DR-config-source-uuid-to-target-uuid",
				PrimaryUniverseUUID:   "source-uuid",
				DrReplicaUniverseUUID: "target-uuid",
				XClusterConfigUUID:    "xc-1",
				Tables:                []string{"t1", "t2"},
				BootstrapParams: client.BootstrapParams{
					BackupRequestParams: client.BackupRequestParams{
						StorageConfigUUID: "sc-1",
						Parallelism:       8,
					},
				},
			},
		},
		safetimes: client.SafetimeResponse{
			Safetimes: []client.NamespaceSafetime{
				{NamespaceID: "db-1", NamespaceName: "yugabyte", SafetimeEpochUs: 1700000000000000},
				{NamespaceID: "db-2", NamespaceName: "postgres", SafetimeEpochUs: 1700000000000500},
			},
		},
	}
}

func TestCreateSubmitsResolvedRequest(t *testing.T) {
	api := newFakeAPI()
	waiter := &fakeWaiter{}

	drConfigUUID, err := NewOrchestrator(api, waiter).Create(context.Background(), CreateParams{
		SourceUniverseName: "fresh",
		TargetUniverseName: "target",
		DatabaseNames:      []string{"yugabyte"},
		StorageConfigName:  "nfs-backups",
	})

	assert.NilError(t, err)
	assert.Equal(t, drConfigUUID, "dr-1")
	assert.Equal(t, waiter.name, "Create xCluster DR")

	assert.Assert(t, api.createReq != nil)
	assert.Equal(t, api.createReq.Name, "DR-config-fresh-uuid-to-target-uuid")
	assert.Equal(t, api.createReq.SourceUniverseUUID, "fresh-uuid")
	assert.Equal(t, api.createReq.TargetUniverseUUID, "target-uuid")
	assert.DeepEqual(t, api.createReq.Dbs, []string{"db-1"})
	assert.Equal(t, api.createReq.BootstrapParams.BackupRequestParams.StorageConfigUUID, "sc-2")
	assert.Equal(t, api.createReq.BootstrapParams.BackupRequestParams.Parallelism, DefaultParallelism)
}

func TestCreateDefaultsToFirstStorageConfig(t *testing.T) {
	api := newFakeAPI()

	_, err := NewOrchestrator(api, &fakeWaiter{}).Create(context.Background(), CreateParams{
		SourceUniverseName: "fresh",
		TargetUniverseName: "target",
	})

	assert.NilError(t, err)
	assert.Equal(t, api.createReq.BootstrapParams.BackupRequestParams.StorageConfigUUID, "sc-1")
	// all databases are included when none are named
	assert.DeepEqual(t, api.createReq.Dbs, []string{"db-1", "db-2"})
}

func TestCreateFailsWhenSourceAlreadyConfigured(t *testing.T) {
	api := newFakeAPI()

	_, err := NewOrchestrator(api, &fakeWaiter{}).Create(context.Background(), CreateParams{
		SourceUniverseName: "source",
		TargetUniverseName: "target",
	})

	assert.ErrorContains(t, err, "already has a disaster-recovery config")
	_, ok := err.(*ConflictError)
	assert.Assert(t, ok)
	assert.Assert(t, api.createReq == nil)
}

func TestCreateFailsOnUnknownUniverse(t *testing.T) {
	api := newFakeAPI()

	_, err := NewOrchestrator(api, &fakeWaiter{}).Create(context.Background(), CreateParams{
		SourceUniverseName: "missing",
		TargetUniverseName: "target",
	})

	assert.ErrorContains(t, err, "universe 'missing' was not found")
	_, ok := err.(*NotFoundError)
	assert.Assert(t, ok)
}

func TestCreateFailsOnUnknownStorageConfig(t *testing.T) {
	api := newFakeAPI()

	_, err := NewOrchestrator(api, &fakeWaiter{}).Create(context.Background(), CreateParams{
		SourceUniverseName: "fresh",
		TargetUniverseName: "target",
		StorageConfigName:  "gcs-backups",
	})

	assert.ErrorContains(t, err, "storage config 'gcs-backups' was not found")
}

func TestDeleteResolvesConfigThroughSourceUniverse(t *testing.T) {
	api := newFakeAPI()
	waiter := &fakeWaiter{}

	_, err := NewOrchestrator(api, waiter).Delete(context.Background(), "source", true)

	assert.NilError(t, err)
	assert.Equal(t, api.deletedUUID, "dr-1")
	assert.Assert(t, api.forceDelete)
	assert.Equal(t, waiter.name, "Delete xCluster DR")
}

func TestSourceDrConfigFailsWithoutConfig(t *testing.T) {
	api := newFakeAPI()

	_, err := NewOrchestrator(api, &fakeWaiter{}).SourceDrConfig("fresh")

	assert.ErrorContains(t, err, "does not have a disaster-recovery config")
}

func TestAvailableTablesExcludesReplicatedOnes(t *testing.T) {
	api := newFakeAPI()

	available, err := NewOrchestrator(api, &fakeWaiter{}).AvailableTables("source")

	assert.NilError(t, err)
	assert.Assert(t, is.Len(available, 1))
	assert.Equal(t, available[0].TableID, "t3")
}

func TestAddTablesSubmitsFullMembership(t *testing.T) {
	api := newFakeAPI()
	waiter := &fakeWaiter{}

	_, err := NewOrchestrator(api, waiter).AddTables(
		context.Background(), "source", []string{"t3"}, true)

	assert.NilError(t, err)
	assert.Assert(t, api.setTablesReq != nil)
	// the complete desired set, not just the addition
	assert.DeepEqual(t, api.setTablesReq.Tables, []string{"t1", "t2", "t3"})
	assert.Assert(t, api.setTablesReq.AutoIncludeIndexTables)
	assert.Equal(t,
		api.setTablesReq.BootstrapParams.BackupRequestParams.StorageConfigUUID, "sc-1")
	assert.Equal(t, waiter.name, "Add tables to xCluster DR")
}

func TestAddTablesFailsWhenAlreadyReplicated(t *testing.T) {
	api := newFakeAPI()

	_, err := NewOrchestrator(api, &fakeWaiter{}).AddTables(
		context.Background(), "source", []string{"t1"}, true)

	assert.ErrorContains(t, err, "no matching tables found")
	assert.Assert(t, api.setTablesReq == nil)
}

func TestAddTablesFailsWhenMissingOnReplica(t *testing.T) {
	api := newFakeAPI()
	// drop the matching table from the replica inventory
	api.tables["target-uuid"] = []client.TableInfo{
		table("r1", "yugabyte", "public", "orders"),
	}

	_, err := NewOrchestrator(api, &fakeWaiter{}).AddTables(
		context.Background(), "source", []string{"t3"}, true)

	assert.ErrorContains(t, err, "no matching table(s) found in the DR replica")
	assert.ErrorContains(t, err, "yugabyte.public.items")
	assert.Assert(t, api.setTablesReq == nil)
}

func TestRemoveTablesSubmitsRemainingMembership(t *testing.T) {
	api := newFakeAPI()
	waiter := &fakeWaiter{}

	_, err := NewOrchestrator(api, waiter).RemoveTables(
		context.Background(), "source", []string{"t2"})

	assert.NilError(t, err)
	assert.DeepEqual(t, api.setTablesReq.Tables, []string{"t1"})
	assert.Equal(t, waiter.name, "Remove tables from xCluster DR")
}

func TestRemoveTablesFailsWhenNotMembers(t *testing.T) {
	api := newFakeAPI()

	_, err := NewOrchestrator(api, &fakeWaiter{}).RemoveTables(
		context.Background(), "source", []string{"t9"})

	assert.ErrorContains(t, err, "no tables could be removed")
	assert.Assert(t, api.setTablesReq == nil)
}

func TestSwitchoverSubmitsCurrentRoles(t *testing.T) {
	api := newFakeAPI()
	waiter := &fakeWaiter{}

	_, err := NewOrchestrator(api, waiter).Switchover(context.Background(), "source")

	assert.NilError(t, err)
	assert.Equal(t, api.switchoverReq.PrimaryUniverseUUID, "source-uuid")
	assert.Equal(t, api.switchoverReq.DrReplicaUniverseUUID, "target-uuid")
	assert.Equal(t, waiter.name, "Switchover xCluster DR")
}

func TestFailoverCarriesSafetimeMap(t *testing.T) {
	api := newFakeAPI()
	waiter := &fakeWaiter{}

	_, err := NewOrchestrator(api, waiter).Failover(context.Background(), "source")

	assert.NilError(t, err)
	assert.Assert(t, api.failoverReq != nil)
	assert.DeepEqual(t, api.failoverReq.NamespaceIDSafetimeEpochUsMap, map[string]int64{
		"db-1": 1700000000000000,
		"db-2": 1700000000000500,
	})
	assert.Equal(t, waiter.name, "Failover xCluster DR")
}

func TestRepairSubmitsRestart(t *testing.T) {
	api := newFakeAPI()
	waiter := &fakeWaiter{}

	_, err := NewOrchestrator(api, waiter).Repair(context.Background(), "source", true)

	assert.NilError(t, err)
	assert.Assert(t, api.restartReq != nil)
	assert.Assert(t, api.forceDelete)
	assert.Equal(t, waiter.name, "Repair xCluster DR")
}

func TestRepairFailsWhenUniverseReferenceLost(t *testing.T) {
	api := newFakeAPI()
	config := api.drConfigs["dr-1"]
	config.DrReplicaUniverseUUID = ""
	api.drConfigs["dr-1"] = config

	_, err := NewOrchestrator(api, &fakeWaiter{}).Repair(context.Background(), "source", false)

	assert.ErrorContains(t, err, "no longer references both universes")
	_, ok := err.(*ConflictError)
	assert.Assert(t, ok)
}

func TestSyncSubmitsConfigUUID(t *testing.T) {
	api := newFakeAPI()

	_, err := NewOrchestrator(api, &fakeWaiter{}).Sync(context.Background(), "source")

	assert.NilError(t, err)
	assert.Equal(t, api.syncedUUID, "dr-1")
}

func TestPauseAndResumeEditReplicationStatus(t *testing.T) {
	api := newFakeAPI()
	orchestrator := NewOrchestrator(api, &fakeWaiter{})

	_, err := orchestrator.Pause(context.Background(), "source")
	assert.NilError(t, err)
	assert.Equal(t, api.editedStatus, client.XClusterStatusPaused)

	_, err = orchestrator.Resume(context.Background(), "source")
	assert.NilError(t, err)
	assert.Equal(t, api.editedStatus, client.XClusterStatusRunning)
}

func TestPauseFailsWithoutXClusterConfig(t *testing.T) {
	api := newFakeAPI()
	config := api.drConfigs["dr-1"]
	config.XClusterConfigUUID = ""
	api.drConfigs["dr-1"] = config

	_, err := NewOrchestrator(api, &fakeWaiter{}).Pause(context.Background(), "source")

	assert.ErrorContains(t, err, "has no underlying xCluster config")
}

func TestSafetimesReturnsSnapshot(t *testing.T) {
	api := newFakeAPI()

	safetimes, err := NewOrchestrator(api, &fakeWaiter{}).Safetimes("source")

	assert.NilError(t, err)
	assert.Assert(t, is.Len(safetimes, 2))
	assert.Equal(t, safetimes[0].NamespaceName, "yugabyte")
}
