/*
 * Copyright (c) YugaByte, Inc.
 */

package client

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// SessionInfo holds the current user's session details
type SessionInfo struct {
	AuthToken    string `json:"authToken,omitempty"`
	APIToken     string `json:"apiToken,omitempty"`
	CustomerUUID string `json:"customerUUID"`
	UserUUID     string `json:"userUUID"`
}

// GetSessionInfo fetches the current session info
func (a *AuthAPIClient) GetSessionInfo() (SessionInfo, error) {
	body, err := a.RestAPICallV1Path(RestAPIParameters{
		method:          http.MethodGet,
		urlRoute:        "session_info",
		operationString: "Get Session Info",
	})
	if err != nil {
		return SessionInfo{}, err
	}
	session := SessionInfo{}
	if err := json.Unmarshal(body, &session); err != nil {
		return SessionInfo{}, errors.Wrap(err, "failed to parse session info response")
	}
	return session, nil
}

// GetCustomerUUID fetches and stores the customer UUID of the current session
func (a *AuthAPIClient) GetCustomerUUID() error {
	session, err := a.GetSessionInfo()
	if err != nil {
		return err
	}
	if len(session.CustomerUUID) == 0 {
		return errors.New("could not retrieve customer UUID")
	}
	a.CustomerUUID = session.CustomerUUID
	return nil
}
