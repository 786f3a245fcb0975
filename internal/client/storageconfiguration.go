/*
 * Copyright (c) YugaByte, Inc.
 */

package client

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// StorageCustomerConfigType is the customer config type of storage backends
const StorageCustomerConfigType = "STORAGE"

// CustomerConfig is a customer-scoped configuration entry
type CustomerConfig struct {
	ConfigUUID string `json:"configUUID"`
	ConfigName string `json:"configName"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	State      string `json:"state,omitempty"`
	InUse      bool   `json:"inUse,omitempty"`
}

// ListCustomerConfigs fetches all customer configs
func (a *AuthAPIClient) ListCustomerConfigs() ([]CustomerConfig, error) {
	body, err := a.RestAPICall(RestAPIParameters{
		method:          http.MethodGet,
		urlRoute:        "configs",
		operationString: "List Customer Configs",
	})
	if err != nil {
		return nil, err
	}
	configs := []CustomerConfig{}
	if err := json.Unmarshal(body, &configs); err != nil {
		return nil, errors.Wrap(err, "failed to parse customer config list response")
	}
	return configs, nil
}

// ListStorageConfigs fetches customer configs of the STORAGE type
func (a *AuthAPIClient) ListStorageConfigs() ([]CustomerConfig, error) {
	configs, err := a.ListCustomerConfigs()
	if err != nil {
		return nil, err
	}
	storageConfigs := make([]CustomerConfig, 0, len(configs))
	for _, c := range configs {
		if c.Type == StorageCustomerConfigType {
			storageConfigs = append(storageConfigs, c)
		}
	}
	return storageConfigs, nil
}
