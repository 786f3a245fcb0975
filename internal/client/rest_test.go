/*
 * Copyright (c) YugaByte, Inc.
 */

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func newTestClient(t *testing.T, handler http.Handler) *AuthAPIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	endpoint, err := url.Parse(server.URL)
	assert.NilError(t, err)

	return &AuthAPIClient{
		RestClient: &RestClient{
			Client: server.Client(),
			Host:   endpoint.Host,
			Scheme: endpoint.Scheme,
		},
		CustomerUUID: "customer-1",
		apiToken:     "test-token",
		ctx:          context.Background(),
	}
}

func TestRestAPICallSendsAuthHeaderAndCustomerRoute(t *testing.T) {
	var gotPath, gotToken, gotContentType string
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-AUTH-YW-API-TOKEN")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"taskUUID":"task-1"}`))
	}))

	body, err := api.RestAPICall(RestAPIParameters{
		method:          http.MethodGet,
		urlRoute:        "dr_configs/dr-1",
		operationString: "Get DR Config",
	})

	assert.NilError(t, err)
	assert.Equal(t, gotPath, "/api/v1/customers/customer-1/dr_configs/dr-1")
	assert.Equal(t, gotToken, "test-token")
	assert.Equal(t, gotContentType, "application/json")
	assert.Equal(t, string(body), `{"taskUUID":"task-1"}`)
}

func TestRestAPICallSurfacesStructuredError(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":"Universe is locked"}`))
	}))

	_, err := api.RestAPICall(RestAPIParameters{
		method:          http.MethodPost,
		urlRoute:        "dr_configs",
		operationString: "Create DR Config",
	})

	assert.ErrorContains(t, err, "Create DR Config failed with status 400")
	assert.ErrorContains(t, err, "Universe is locked")
}

func TestRestAPICallUnparsableErrorBodyKeepsStatus(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	}))

	_, err := api.RestAPICall(RestAPIParameters{
		method:          http.MethodGet,
		urlRoute:        "tasks/task-1",
		operationString: "Get Task Status",
	})

	assert.ErrorContains(t, err, "Get Task Status failed with status 500")
}

func TestSubmitTaskMarshalsRequestBody(t *testing.T) {
	var gotBody CreateDrConfigRequest
	var decodeErr error
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decodeErr = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"taskUUID":"task-1","resourceUUID":"dr-1"}`))
	}))

	task, err := api.CreateDrConfig(CreateDrConfigRequest{
		Name:               "DR-config-a-to-b",
		SourceUniverseUUID: "a",
		TargetUniverseUUID: "b",
		Dbs:                []string{"db-1"},
	})

	assert.NilError(t, err)
	assert.NilError(t, decodeErr)
	assert.Equal(t, task.TaskUUID, "task-1")
	assert.Equal(t, task.ResourceUUID, "dr-1")
	assert.Equal(t, gotBody.Name, "DR-config-a-to-b")
	assert.DeepEqual(t, gotBody.Dbs, []string{"db-1"})
}

func TestListUniverseTablesFiltersTypeAndKeyspace(t *testing.T) {
	var gotQuery string
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("onlySupportedForXCluster")
		json.NewEncoder(w).Encode([]TableInfo{
			{TableID: "t1", KeySpace: "yugabyte", TableType: YSQLTableType},
			{TableID: "t2", KeySpace: "postgres", TableType: YSQLTableType},
			{TableID: "t3", KeySpace: "yugabyte", TableType: YCQLTableType},
		})
	}))

	tables, err := api.ListUniverseTables("u-1", ListTablesOptions{
		OnlySupportedForXCluster: true,
		KeySpaces:                []string{"yugabyte"},
	})

	assert.NilError(t, err)
	assert.Equal(t, gotQuery, "true")
	assert.Assert(t, is.Len(tables, 1))
	assert.Equal(t, tables[0].TableID, "t1")
}

func TestParseURLDefaultsToHTTPS(t *testing.T) {
	endpoint, err := ParseURL("yba.example.com")
	assert.NilError(t, err)
	assert.Equal(t, endpoint.Scheme, "https")
	assert.Equal(t, endpoint.Host, "yba.example.com")

	endpoint, err = ParseURL("http://localhost:9000")
	assert.NilError(t, err)
	assert.Equal(t, endpoint.Scheme, "http")
}
