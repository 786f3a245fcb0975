/*
 * Copyright (c) YugaByte, Inc.
 */

// Package dr sequences the disaster-recovery lifecycle operations of the
// platform: it validates preconditions eagerly, reconciles table membership
// as whole sets, submits the mutating action and waits for its task.
package dr

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yugabyte/xcluster-dr-cli/internal/client"
)

// DefaultParallelism for bootstrap backup/restore
const DefaultParallelism int32 = 8

// API is the part of the platform client the orchestrator consumes
type API interface {
	ListUniversesByName(name string) ([]client.Universe, error)
	ListUniverseTables(universeUUID string, opts client.ListTablesOptions) ([]client.TableInfo, error)
	ListUniverseNamespaces(universeUUID, tableType string) ([]client.Namespace, error)
	ListStorageConfigs() ([]client.CustomerConfig, error)
	GetDrConfig(drConfigUUID string) (client.DrConfig, error)
	CreateDrConfig(req client.CreateDrConfigRequest) (client.TaskResponse, error)
	DeleteDrConfig(drConfigUUID string, forceDelete bool) (client.TaskResponse, error)
	SetDrConfigTables(drConfigUUID string, req client.SetDrTablesRequest) (client.TaskResponse, error)
	SwitchoverDrConfig(drConfigUUID string, req client.SwitchoverDrRequest) (client.TaskResponse, error)
	FailoverDrConfig(drConfigUUID string, req client.FailoverDrRequest) (client.TaskResponse, error)
	RestartDrConfig(drConfigUUID string, req client.RestartDrRequest, forceDelete bool) (client.TaskResponse, error)
	SyncDrConfig(drConfigUUID string) (client.TaskResponse, error)
	GetDrConfigSafetime(drConfigUUID string) (client.SafetimeResponse, error)
	EditXClusterConfigStatus(xClusterConfigUUID, status string) (client.TaskResponse, error)
}

// Waiter blocks until a submitted task reaches a terminal state
type Waiter interface {
	Wait(ctx context.Context, submitted client.TaskResponse, friendlyName string) (string, error)
}

// Orchestrator owns no state of its own; every operation re-fetches the
// entities it needs so concurrent out-of-band changes are picked up.
// Operations against the same DR config must be serialized by the caller.
type Orchestrator struct {
	api    API
	waiter Waiter
}

// NewOrchestrator returns an Orchestrator over the given client and waiter
func NewOrchestrator(api API, waiter Waiter) *Orchestrator {
	return &Orchestrator{
		api:    api,
		waiter: waiter,
	}
}

// CreateParams describes a new DR relationship
type CreateParams struct {
	SourceUniverseName string
	TargetUniverseName string
	// DatabaseNames to include in replication; all YSQL databases when empty
	DatabaseNames []string
	// StorageConfigName selects the bootstrap storage backend; the first
	// STORAGE config is used, with a warning, when empty
	StorageConfigName string
	Parallelism       int32
	DryRun            bool
}

// Create sets up a new DR config between the named universes and waits for
// the create task, returning the DR config UUID
func (o *Orchestrator) Create(ctx context.Context, p CreateParams) (string, error) {
	storageConfigUUID, err := o.resolveStorageConfig(p.StorageConfigName)
	if err != nil {
		return "", err
	}

	source, err := o.universeByName(p.SourceUniverseName)
	if err != nil {
		return "", err
	}
	if len(source.DrConfigUUIDsAsSource) > 0 {
		return "", &ConflictError{
			Message: fmt.Sprintf(
				"source universe '%s' already has a disaster-recovery config: %s",
				p.SourceUniverseName, source.DrConfigUUIDsAsSource[0]),
		}
	}

	target, err := o.universeByName(p.TargetUniverseName)
	if err != nil {
		return "", err
	}

	dbUUIDs, err := o.resolveDatabases(source.UniverseUUID, p.DatabaseNames)
	if err != nil {
		return "", err
	}

	parallelism := p.Parallelism
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}

	submitted, err := o.api.CreateDrConfig(client.CreateDrConfigRequest{
		Name: fmt.Sprintf("DR-config-%s-to-%s",
			source.UniverseUUID, target.UniverseUUID),
		SourceUniverseUUID: source.UniverseUUID,
		TargetUniverseUUID: target.UniverseUUID,
		Dbs:                dbUUIDs,
		DryRun:             p.DryRun,
		BootstrapParams: client.BootstrapParams{
			BackupRequestParams: client.BackupRequestParams{
				StorageConfigUUID: storageConfigUUID,
				Parallelism:       parallelism,
			},
		},
	})
	if err != nil {
		return "", err
	}
	return o.waiter.Wait(ctx, submitted, "Create xCluster DR")
}

// Delete removes the DR config of the named source universe
func (o *Orchestrator) Delete(
	ctx context.Context,
	sourceUniverseName string,
	forceDelete bool,
) (string, error) {
	config, err := o.SourceDrConfig(sourceUniverseName)
	if err != nil {
		return "", err
	}
	submitted, err := o.api.DeleteDrConfig(config.UUID, forceDelete)
	if err != nil {
		return "", err
	}
	return o.waiter.Wait(ctx, submitted, "Delete xCluster DR")
}

// SourceDrConfig resolves the DR config the named universe is the source of
func (o *Orchestrator) SourceDrConfig(sourceUniverseName string) (client.DrConfig, error) {
	source, err := o.universeByName(sourceUniverseName)
	if err != nil {
		return client.DrConfig{}, err
	}
	if len(source.DrConfigUUIDsAsSource) == 0 {
		return client.DrConfig{}, &NotFoundError{
			Message: fmt.Sprintf(
				"universe '%s' does not have a disaster-recovery config",
				sourceUniverseName),
		}
	}
	return o.api.GetDrConfig(source.DrConfigUUIDsAsSource[0])
}

// AvailableTables returns the tables of the source universe that are not yet
// replicated and can still be added to the DR config. Tables with a non-zero
// size trigger a full copy of the database when added.
func (o *Orchestrator) AvailableTables(sourceUniverseName string) ([]client.TableInfo, error) {
	config, err := o.SourceDrConfig(sourceUniverseName)
	if err != nil {
		return nil, err
	}
	allTables, err := o.api.ListUniverseTables(config.PrimaryUniverseUUID,
		client.ListTablesOptions{OnlySupportedForXCluster: true})
	if err != nil {
		return nil, err
	}
	return AvailableTables(allTables, config.Tables), nil
}

// AddTables adds the requested tables to replication. The requested IDs are
// validated against the replica's inventory before anything is submitted,
// and the submission carries the complete desired membership.
func (o *Orchestrator) AddTables(
	ctx context.Context,
	sourceUniverseName string,
	tableIDs []string,
	autoIncludeIndexTables bool,
) (string, error) {
	config, err := o.SourceDrConfig(sourceUniverseName)
	if err != nil {
		return "", err
	}

	allTables, err := o.api.ListUniverseTables(config.PrimaryUniverseUUID,
		client.ListTablesOptions{OnlySupportedForXCluster: true})
	if err != nil {
		return "", err
	}
	candidates := AvailableTables(allTables, config.Tables)

	requested, err := FilterByRequested(candidates, tableIDs)
	if err != nil {
		return "", err
	}

	replicaTables, err := o.api.ListUniverseTables(config.DrReplicaUniverseUUID,
		client.ListTablesOptions{OnlySupportedForXCluster: true})
	if err != nil {
		return "", err
	}
	if err := ValidateAgainstReplica(requested, replicaTables); err != nil {
		return "", err
	}

	for _, t := range requested {
		if t.SizeBytes > 0 {
			logrus.Warnf("Table %s.%s.%s has %d bytes of data, "+
				"adding it will trigger a full copy of the database\n",
				t.KeySpace, t.PgSchemaName, t.TableName, int64(t.SizeBytes))
		}
	}

	submitted, err := o.api.SetDrConfigTables(config.UUID, client.SetDrTablesRequest{
		AutoIncludeIndexTables: autoIncludeIndexTables,
		BootstrapParams:        config.BootstrapParams,
		Tables:                 AddSet(config.Tables, TableIDs(requested)),
	})
	if err != nil {
		return "", err
	}
	return o.waiter.Wait(ctx, submitted, "Add tables to xCluster DR")
}

// RemoveTables removes the requested tables from replication by submitting
// the remaining membership as the complete desired set
func (o *Orchestrator) RemoveTables(
	ctx context.Context,
	sourceUniverseName string,
	tableIDs []string,
) (string, error) {
	config, err := o.SourceDrConfig(sourceUniverseName)
	if err != nil {
		return "", err
	}

	desired, err := RemoveSet(config.Tables, tableIDs)
	if err != nil {
		return "", err
	}

	submitted, err := o.api.SetDrConfigTables(config.UUID, client.SetDrTablesRequest{
		AutoIncludeIndexTables: true,
		BootstrapParams:        config.BootstrapParams,
		Tables:                 desired,
	})
	if err != nil {
		return "", err
	}
	return o.waiter.Wait(ctx, submitted, "Remove tables from xCluster DR")
}

// Switchover performs a planned role exchange with zero data loss. The
// relationship must be healthy; the remote service enforces the rest.
func (o *Orchestrator) Switchover(
	ctx context.Context,
	sourceUniverseName string,
) (string, error) {
	config, err := o.SourceDrConfig(sourceUniverseName)
	if err != nil {
		return "", err
	}
	submitted, err := o.api.SwitchoverDrConfig(config.UUID, client.SwitchoverDrRequest{
		PrimaryUniverseUUID:   config.PrimaryUniverseUUID,
		DrReplicaUniverseUUID: config.DrReplicaUniverseUUID,
	})
	if err != nil {
		return "", err
	}
	return o.waiter.Wait(ctx, submitted, "Switchover xCluster DR")
}

// Failover promotes the replica after a primary failure. Safetimes are
// fetched immediately before submission to bound the data-loss window. After
// success the former replica runs as an unconfigured primary; no new DR
// config is created automatically.
func (o *Orchestrator) Failover(
	ctx context.Context,
	sourceUniverseName string,
) (string, error) {
	config, err := o.SourceDrConfig(sourceUniverseName)
	if err != nil {
		return "", err
	}

	safetimes, err := o.api.GetDrConfigSafetime(config.UUID)
	if err != nil {
		return "", err
	}
	safetimeMap := make(map[string]int64, len(safetimes.Safetimes))
	for _, s := range safetimes.Safetimes {
		safetimeMap[s.NamespaceID] = s.SafetimeEpochUs
	}

	submitted, err := o.api.FailoverDrConfig(config.UUID, client.FailoverDrRequest{
		PrimaryUniverseUUID:           config.PrimaryUniverseUUID,
		DrReplicaUniverseUUID:         config.DrReplicaUniverseUUID,
		NamespaceIDSafetimeEpochUsMap: safetimeMap,
	})
	if err != nil {
		return "", err
	}
	return o.waiter.Wait(ctx, submitted, "Failover xCluster DR")
}

// Repair restarts a failed DR config after a failover. The restart
// bootstraps the current primary and restores it onto the former primary,
// which becomes the new replica. That reuse is the operator's intent, not
// something the control plane verifies, so it is checked here only as far
// as the config still referencing both universes.
func (o *Orchestrator) Repair(
	ctx context.Context,
	sourceUniverseName string,
	forceDelete bool,
) (string, error) {
	config, err := o.SourceDrConfig(sourceUniverseName)
	if err != nil {
		return "", err
	}
	if len(config.PrimaryUniverseUUID) == 0 || len(config.DrReplicaUniverseUUID) == 0 {
		return "", &ConflictError{
			Message: fmt.Sprintf(
				"DR config %s no longer references both universes, cannot restart",
				config.UUID),
		}
	}
	logrus.Infof("Restarting DR config %s: the former primary %s will be "+
		"bootstrapped as the new replica\n", config.UUID, config.DrReplicaUniverseUUID)

	submitted, err := o.api.RestartDrConfig(config.UUID,
		client.RestartDrRequest{Dbs: []string{}}, forceDelete)
	if err != nil {
		return "", err
	}
	return o.waiter.Wait(ctx, submitted, "Repair xCluster DR")
}

// Sync reconciles the DR config with changes made outside the control
// plane, typically indexes created directly against the database
func (o *Orchestrator) Sync(ctx context.Context, sourceUniverseName string) (string, error) {
	config, err := o.SourceDrConfig(sourceUniverseName)
	if err != nil {
		return "", err
	}
	submitted, err := o.api.SyncDrConfig(config.UUID)
	if err != nil {
		return "", err
	}
	return o.waiter.Wait(ctx, submitted, "Synchronize xCluster DR")
}

// Pause suspends the underlying xCluster replication
func (o *Orchestrator) Pause(ctx context.Context, sourceUniverseName string) (string, error) {
	return o.editXClusterStatus(ctx, sourceUniverseName,
		client.XClusterStatusPaused, "Pause xCluster replication")
}

// Resume restarts the underlying xCluster replication
func (o *Orchestrator) Resume(ctx context.Context, sourceUniverseName string) (string, error) {
	return o.editXClusterStatus(ctx, sourceUniverseName,
		client.XClusterStatusRunning, "Resume xCluster replication")
}

// Safetimes returns the current per-namespace safetime snapshot
func (o *Orchestrator) Safetimes(sourceUniverseName string) ([]client.NamespaceSafetime, error) {
	config, err := o.SourceDrConfig(sourceUniverseName)
	if err != nil {
		return nil, err
	}
	safetimes, err := o.api.GetDrConfigSafetime(config.UUID)
	if err != nil {
		return nil, err
	}
	return safetimes.Safetimes, nil
}

func (o *Orchestrator) editXClusterStatus(
	ctx context.Context,
	sourceUniverseName, status, friendlyName string,
) (string, error) {
	config, err := o.SourceDrConfig(sourceUniverseName)
	if err != nil {
		return "", err
	}
	if len(config.XClusterConfigUUID) == 0 {
		return "", &NotFoundError{
			Message: fmt.Sprintf(
				"DR config %s has no underlying xCluster config", config.UUID),
		}
	}
	submitted, err := o.api.EditXClusterConfigStatus(config.XClusterConfigUUID, status)
	if err != nil {
		return "", err
	}
	return o.waiter.Wait(ctx, submitted, friendlyName)
}

func (o *Orchestrator) universeByName(name string) (client.Universe, error) {
	universes, err := o.api.ListUniversesByName(name)
	if err != nil {
		return client.Universe{}, err
	}
	if len(universes) == 0 {
		return client.Universe{}, &NotFoundError{
			Message: fmt.Sprintf("universe '%s' was not found", name),
		}
	}
	return universes[0], nil
}

func (o *Orchestrator) resolveStorageConfig(name string) (string, error) {
	storageConfigs, err := o.api.ListStorageConfigs()
	if err != nil {
		return "", err
	}
	if len(storageConfigs) == 0 {
		return "", &NotFoundError{
			Message: "no storage configs found, at least one is required for DR setup",
		}
	}
	if len(name) == 0 {
		logrus.Warnf("No storage config name given, using '%s' (%s)\n",
			storageConfigs[0].ConfigName, storageConfigs[0].ConfigUUID)
		return storageConfigs[0].ConfigUUID, nil
	}
	for _, c := range storageConfigs {
		if c.ConfigName == name {
			return c.ConfigUUID, nil
		}
	}
	return "", &NotFoundError{
		Message: fmt.Sprintf("storage config '%s' was not found", name),
	}
}

func (o *Orchestrator) resolveDatabases(
	universeUUID string,
	databaseNames []string,
) ([]string, error) {
	namespaces, err := o.api.ListUniverseNamespaces(universeUUID, client.YSQLTableType)
	if err != nil {
		return nil, err
	}
	dbUUIDs := make([]string, 0, len(namespaces))
	for _, n := range namespaces {
		if len(databaseNames) == 0 {
			dbUUIDs = append(dbUUIDs, n.NamespaceUUID)
			continue
		}
		for _, name := range databaseNames {
			if n.Name == name {
				dbUUIDs = append(dbUUIDs, n.NamespaceUUID)
				break
			}
		}
	}
	if len(dbUUIDs) == 0 {
		return nil, &ValidationError{
			Message: "no matching databases found to include in replication",
		}
	}
	return dbUUIDs, nil
}
