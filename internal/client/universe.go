/*
 * Copyright (c) YugaByte, Inc.
 */

package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// Universe is the subset of the universe response consumed by DR automation
type Universe struct {
	UniverseUUID           string   `json:"universeUUID"`
	Name                   string   `json:"name"`
	State                  string   `json:"state,omitempty"`
	DrConfigUUIDsAsSource  []string `json:"drConfigUuidsAsSource"`
	DrConfigUUIDsAsTarget  []string `json:"drConfigUuidsAsTarget"`
	UniversePaused         bool     `json:"universePaused,omitempty"`
	IsSoftwareRollbackable bool     `json:"isSoftwareRollbackAllowed,omitempty"`
}

// ListUniversesByName fetches universes filtered by their friendly name
func (a *AuthAPIClient) ListUniversesByName(name string) ([]Universe, error) {
	body, err := a.RestAPICall(RestAPIParameters{
		method:          http.MethodGet,
		urlRoute:        fmt.Sprintf("universes?name=%s", url.QueryEscape(name)),
		operationString: "List Universes",
	})
	if err != nil {
		return nil, err
	}
	universes := []Universe{}
	if err := json.Unmarshal(body, &universes); err != nil {
		return nil, errors.Wrap(err, "failed to parse universe list response")
	}
	return universes, nil
}
