/*
 * Copyright (c) YugaByte, Inc.
 */

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// RestAPIParameters is a struct to hold the parameters for a REST API call
type RestAPIParameters struct {
	reqBytes        []byte
	method          string
	urlRoute        string
	operationString string
}

// YbaStructuredError is a structure mimicking YBPError, with error being an
// interface{} to accommodate errors thrown as YBPStructuredError
type YbaStructuredError struct {
	// User-visible unstructured error message
	Error *interface{} `json:"error,omitempty"`
	// Method for HTTP call that resulted in this error
	HTTPMethod *string `json:"httpMethod,omitempty"`
	// URI for HTTP request that resulted in this error
	RequestURI *string `json:"requestUri,omitempty"`
	// Mostly set to false to indicate failure
	Success *bool `json:"success,omitempty"`
}

// RestAPICall makes a REST API call to /api/v1/customers/{cUUID}/{route}
func (a *AuthAPIClient) RestAPICall(params RestAPIParameters) ([]byte, error) {
	return a.doRequest(params,
		fmt.Sprintf("%s://%s/api/v1/customers/%s/%s",
			a.RestClient.Scheme, a.RestClient.Host, a.CustomerUUID, params.urlRoute))
}

// RestAPICallV1Path makes a REST call to /api/v1/{path}
// Use for endpoints that are not under customers.
func (a *AuthAPIClient) RestAPICallV1Path(params RestAPIParameters) ([]byte, error) {
	return a.doRequest(params,
		fmt.Sprintf("%s://%s/api/v1/%s",
			a.RestClient.Scheme, a.RestClient.Host, params.urlRoute))
}

func (a *AuthAPIClient) doRequest(params RestAPIParameters, url string) ([]byte, error) {
	reqBuf := bytes.NewBuffer(params.reqBytes)

	req, err := http.NewRequestWithContext(a.ctx, params.method, url, reqBuf)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-AUTH-YW-API-TOKEN", a.apiToken)

	r, err := a.RestClient.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error occurred during %s call for %s: %w",
			params.method, params.operationString, err)
	}
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading %s response body: %w",
			params.operationString, err)
	}

	if r.StatusCode < http.StatusOK || r.StatusCode >= http.StatusMultipleChoices {
		return nil, errorFromResponseBody(params.operationString, r.StatusCode, body)
	}

	return body, nil
}

// errorFromResponseBody extracts the platform error message from a non-2xx body
func errorFromResponseBody(operation string, statusCode int, body []byte) error {
	errorTag := fmt.Errorf("operation %s failed with status %d", operation, statusCode)

	errorBlock := YbaStructuredError{}
	if err := json.Unmarshal(body, &errorBlock); err != nil {
		logrus.Debugf("There was an error unmarshalling the error response from the API\n")
		return errorTag
	}
	if errorBlock.Error == nil {
		return errorTag
	}

	errorString := ""
	if errMap, ok := (*errorBlock.Error).(map[string]interface{}); ok {
		for k, v := range errMap {
			errorString = fmt.Sprintf("%sField: %s, Error: %v; ", errorString, k, v)
		}
	} else {
		errorString = fmt.Sprintf("%v", *errorBlock.Error)
	}
	return fmt.Errorf("%w: %s", errorTag, errorString)
}
