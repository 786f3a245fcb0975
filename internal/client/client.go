/*
 * Copyright (c) YugaByte, Inc.
 */

package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/yugabyte/xcluster-dr-cli/internal/formatter"
)

// RestClient is the HTTP transport used against the YugabyteDB Anywhere API
type RestClient struct {
	Client *http.Client
	Host   string
	Scheme string
}

// AuthAPIClient contains the authenticated REST client and customer UUID
type AuthAPIClient struct {
	RestClient   *RestClient
	CustomerUUID string
	apiToken     string
	ctx          context.Context
}

// NewAuthAPIClient returns a new AuthAPIClient from the resolved configuration
func NewAuthAPIClient() (*AuthAPIClient, error) {
	host := viper.GetString("host")
	// If the host is empty, the CLI has nothing to talk to.
	if len(host) == 0 {
		logrus.Fatalln(
			formatter.Colorize(
				"No valid host detected. "+
					"Set the host in the configuration file or pass it with --host.\n",
				formatter.RedColor))
	}
	url, err := ParseURL(host)
	if err != nil {
		return nil, err
	}

	apiToken := viper.GetString("apiToken")
	if len(apiToken) == 0 {
		logrus.Fatalln(
			formatter.Colorize(
				"No valid API token detected. "+
					"Set the apiToken in the configuration file or pass it with -a flag.\n",
				formatter.RedColor))
	}

	return NewAuthAPIClientInitialize(url, apiToken)
}

// NewAuthAPIClientInitialize returns a new AuthAPIClient for the given endpoint
func NewAuthAPIClientInitialize(url *url.URL, apiToken string) (*AuthAPIClient, error) {
	rest := &RestClient{
		Client: &http.Client{},
		Host:   url.Host,
		Scheme: url.Scheme,
	}
	if url.Scheme == "https" && viper.GetBool("insecure") {
		tr := &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}}
		rest.Client = &http.Client{Transport: tr}
	}

	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)

	return &AuthAPIClient{
		RestClient:   rest,
		CustomerUUID: "",
		apiToken:     apiToken,
		ctx:          ctx,
	}, nil
}

// NewAuthAPIClientAndCustomer is called before every command that accesses the host
func NewAuthAPIClientAndCustomer() *AuthAPIClient {
	authAPI, err := NewAuthAPIClient()
	if err != nil {
		logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
	}
	err = authAPI.GetCustomerUUID()
	if err != nil {
		logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
	}
	return authAPI
}

// Context returns the signal-aware context the client was built with
func (a *AuthAPIClient) Context() context.Context {
	return a.ctx
}

// RenewContext replaces a context canceled by an interrupt so that cleanup
// calls such as task aborts can still reach the API
func (a *AuthAPIClient) RenewContext() {
	a.ctx, _ = signal.NotifyContext(context.Background(), os.Interrupt)
}

// ParseURL returns a URL if string is valid, or returns error
func ParseURL(host string) (*url.URL, error) {
	if strings.HasPrefix(strings.ToLower(host), "http://") {
		warning := formatter.Colorize(
			fmt.Sprintf("You are using insecure api endpoint %s\n", host),
			formatter.YellowColor,
		)
		logrus.Debugf(warning)
	} else if !strings.HasPrefix(strings.ToLower(host), "https://") {
		host = "https://" + host
	}

	endpoint, err := url.ParseRequestURI(host)
	if err != nil {
		return nil, fmt.Errorf("could not parse host url (%s): %w", host, err)
	}
	return endpoint, err
}
