/*
 * Copyright (c) YugaByte, Inc.
 */

package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// xCluster replication statuses accepted by the edit endpoint
const (
	// XClusterStatusRunning resumes the underlying replication
	XClusterStatusRunning = "Running"
	// XClusterStatusPaused pauses the underlying replication
	XClusterStatusPaused = "Paused"
)

// BackupRequestParams holds the bootstrap backup/restore parameters
type BackupRequestParams struct {
	StorageConfigUUID string `json:"storageConfigUUID"`
	Parallelism       int32  `json:"parallelism,omitempty"`
}

// BootstrapParams holds the full-copy bootstrap parameters of a DR config
type BootstrapParams struct {
	BackupRequestParams BackupRequestParams `json:"backupRequestParams"`
}

// DrConfig is the disaster-recovery relationship between two universes.
// Tables always holds the complete replicated membership, not a delta.
type DrConfig struct {
	UUID                  string          `json:"uuid"`
	Name                  string          `json:"name"`
	PrimaryUniverseUUID   string          `json:"primaryUniverseUuid"`
	DrReplicaUniverseUUID string          `json:"drReplicaUniverseUuid"`
	XClusterConfigUUID    string          `json:"xclusterConfigUuid"`
	Tables                []string        `json:"tables"`
	BootstrapParams       BootstrapParams `json:"bootstrapParams"`
	State                 string          `json:"state,omitempty"`
	Paused                bool            `json:"paused,omitempty"`
}

// CreateDrConfigRequest is the create form of a DR config
type CreateDrConfigRequest struct {
	Name               string          `json:"name"`
	SourceUniverseUUID string          `json:"sourceUniverseUUID"`
	TargetUniverseUUID string          `json:"targetUniverseUUID"`
	Dbs                []string        `json:"dbs"`
	DryRun             bool            `json:"dryRun"`
	BootstrapParams    BootstrapParams `json:"bootstrapParams"`
}

// SetDrTablesRequest replaces the full table membership of a DR config.
// Tables must always carry the complete desired set of table IDs.
type SetDrTablesRequest struct {
	AutoIncludeIndexTables bool            `json:"autoIncludeIndexTables"`
	BootstrapParams        BootstrapParams `json:"bootstrapParams"`
	Tables                 []string        `json:"tables"`
}

// SwitchoverDrRequest is the planned role-exchange form
type SwitchoverDrRequest struct {
	PrimaryUniverseUUID   string `json:"primaryUniverseUuid"`
	DrReplicaUniverseUUID string `json:"drReplicaUniverseUuid"`
}

// FailoverDrRequest is the unplanned promotion form
type FailoverDrRequest struct {
	PrimaryUniverseUUID           string           `json:"primaryUniverseUuid"`
	DrReplicaUniverseUUID         string           `json:"drReplicaUniverseUuid"`
	NamespaceIDSafetimeEpochUsMap map[string]int64 `json:"namespaceIdSafetimeEpochUsMap"`
}

// RestartDrRequest is the post-failover restart (repair) form
type RestartDrRequest struct {
	Dbs []string `json:"dbs"`
}

// NamespaceSafetime is the per-namespace safetime snapshot of a DR config
type NamespaceSafetime struct {
	NamespaceID       string `json:"namespaceId"`
	NamespaceName     string `json:"namespaceName"`
	SafetimeEpochUs   int64  `json:"safetimeEpochUs"`
	SafetimeLagSec    int64  `json:"safetimeLagSec,omitempty"`
	SafetimeSkewSec   int64  `json:"safetimeSkewSec,omitempty"`
	EstimatedLossMs   int64  `json:"estimatedDataLossMs,omitempty"`
	EstimatedLossSecs int64  `json:"estimatedDataLossSecs,omitempty"`
}

// SafetimeResponse is the safetime endpoint response
type SafetimeResponse struct {
	Safetimes []NamespaceSafetime `json:"safetimes"`
}

// GetDrConfig fetches a DR config by UUID
func (a *AuthAPIClient) GetDrConfig(drConfigUUID string) (DrConfig, error) {
	body, err := a.RestAPICall(RestAPIParameters{
		method:          http.MethodGet,
		urlRoute:        fmt.Sprintf("dr_configs/%s", drConfigUUID),
		operationString: "Get DR Config",
	})
	if err != nil {
		return DrConfig{}, err
	}
	config := DrConfig{}
	if err := json.Unmarshal(body, &config); err != nil {
		return DrConfig{}, errors.Wrap(err, "failed to parse DR config response")
	}
	return config, nil
}

// CreateDrConfig submits a create action, returning its accepted task
func (a *AuthAPIClient) CreateDrConfig(req CreateDrConfigRequest) (TaskResponse, error) {
	return a.submitTask(RestAPIParameters{
		method:          http.MethodPost,
		urlRoute:        "dr_configs",
		operationString: "Create DR Config",
	}, req)
}

// DeleteDrConfig submits a delete action, returning its accepted task
func (a *AuthAPIClient) DeleteDrConfig(drConfigUUID string, forceDelete bool) (TaskResponse, error) {
	return a.submitTask(RestAPIParameters{
		method: http.MethodDelete,
		urlRoute: fmt.Sprintf("dr_configs/%s?isForceDelete=%t",
			drConfigUUID, forceDelete),
		operationString: "Delete DR Config",
	}, nil)
}

// SetDrConfigTables submits a whole-set table membership replacement
func (a *AuthAPIClient) SetDrConfigTables(
	drConfigUUID string,
	req SetDrTablesRequest,
) (TaskResponse, error) {
	return a.submitTask(RestAPIParameters{
		method:          http.MethodPost,
		urlRoute:        fmt.Sprintf("dr_configs/%s/set_tables", drConfigUUID),
		operationString: "Set DR Config Tables",
	}, req)
}

// SwitchoverDrConfig submits a planned role exchange
func (a *AuthAPIClient) SwitchoverDrConfig(
	drConfigUUID string,
	req SwitchoverDrRequest,
) (TaskResponse, error) {
	return a.submitTask(RestAPIParameters{
		method:          http.MethodPost,
		urlRoute:        fmt.Sprintf("dr_configs/%s/switchover", drConfigUUID),
		operationString: "Switchover DR Config",
	}, req)
}

// FailoverDrConfig submits an unplanned promotion of the replica
func (a *AuthAPIClient) FailoverDrConfig(
	drConfigUUID string,
	req FailoverDrRequest,
) (TaskResponse, error) {
	return a.submitTask(RestAPIParameters{
		method:          http.MethodPost,
		urlRoute:        fmt.Sprintf("dr_configs/%s/failover", drConfigUUID),
		operationString: "Failover DR Config",
	}, req)
}

// RestartDrConfig submits a post-failover restart (repair)
func (a *AuthAPIClient) RestartDrConfig(
	drConfigUUID string,
	req RestartDrRequest,
	forceDelete bool,
) (TaskResponse, error) {
	return a.submitTask(RestAPIParameters{
		method: http.MethodPost,
		urlRoute: fmt.Sprintf("dr_configs/%s/restart?isForceDelete=%t",
			drConfigUUID, forceDelete),
		operationString: "Restart DR Config",
	}, req)
}

// SyncDrConfig submits a reconcile of DR state with out-of-band changes
func (a *AuthAPIClient) SyncDrConfig(drConfigUUID string) (TaskResponse, error) {
	return a.submitTask(RestAPIParameters{
		method:          http.MethodPost,
		urlRoute:        fmt.Sprintf("dr_configs/%s/sync", drConfigUUID),
		operationString: "Sync DR Config",
	}, nil)
}

// GetDrConfigSafetime fetches the current per-namespace safetimes
func (a *AuthAPIClient) GetDrConfigSafetime(drConfigUUID string) (SafetimeResponse, error) {
	body, err := a.RestAPICall(RestAPIParameters{
		method:          http.MethodGet,
		urlRoute:        fmt.Sprintf("dr_configs/%s/safetime", drConfigUUID),
		operationString: "Get DR Config Safetime",
	})
	if err != nil {
		return SafetimeResponse{}, err
	}
	safetimes := SafetimeResponse{}
	if err := json.Unmarshal(body, &safetimes); err != nil {
		return SafetimeResponse{}, errors.Wrap(err, "failed to parse safetime response")
	}
	return safetimes, nil
}

// EditXClusterConfigStatus pauses or resumes the underlying xCluster replication
func (a *AuthAPIClient) EditXClusterConfigStatus(
	xClusterConfigUUID, status string,
) (TaskResponse, error) {
	return a.submitTask(RestAPIParameters{
		method:          http.MethodPut,
		urlRoute:        fmt.Sprintf("xcluster_configs/%s", xClusterConfigUUID),
		operationString: "Edit XCluster Config",
	}, map[string]string{"status": status})
}

// submitTask marshals the request body, performs the call and decodes the
// accepted-task response every mutating endpoint returns
func (a *AuthAPIClient) submitTask(
	params RestAPIParameters,
	req interface{},
) (TaskResponse, error) {
	if req != nil {
		reqBytes, err := json.Marshal(req)
		if err != nil {
			return TaskResponse{}, errors.Wrapf(err,
				"failed to marshal %s request", params.operationString)
		}
		params.reqBytes = reqBytes
	}
	body, err := a.RestAPICall(params)
	if err != nil {
		return TaskResponse{}, err
	}
	task := TaskResponse{}
	if err := json.Unmarshal(body, &task); err != nil {
		return TaskResponse{}, errors.Wrapf(err,
			"failed to parse %s task response", params.operationString)
	}
	return task, nil
}
