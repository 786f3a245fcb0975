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

// Namespace is a database namespace of a universe
type Namespace struct {
	NamespaceUUID string `json:"namespaceUUID"`
	Name          string `json:"name"`
	TableType     string `json:"tableType"`
}

// ListUniverseNamespaces fetches the namespaces of a universe filtered by
// table type; for xCluster DR this is always the YSQL type
func (a *AuthAPIClient) ListUniverseNamespaces(
	universeUUID, tableType string,
) ([]Namespace, error) {
	if len(tableType) == 0 {
		tableType = YSQLTableType
	}
	body, err := a.RestAPICall(RestAPIParameters{
		method:          http.MethodGet,
		urlRoute:        fmt.Sprintf("universes/%s/namespaces", universeUUID),
		operationString: "List Universe Namespaces",
	})
	if err != nil {
		return nil, err
	}
	allNamespaces := []Namespace{}
	if err := json.Unmarshal(body, &allNamespaces); err != nil {
		return nil, errors.Wrap(err, "failed to parse namespace list response")
	}

	namespaces := make([]Namespace, 0, len(allNamespaces))
	for _, n := range allNamespaces {
		if n.TableType == tableType {
			namespaces = append(namespaces, n)
		}
	}
	return namespaces, nil
}
