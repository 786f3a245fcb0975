/*
 * Copyright (c) YugaByte, Inc.
 */

package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// IsEmptyString returns true when the string is empty after trimming
func IsEmptyString(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

// ConfirmCommand prompts the user before destructive operations, unless
// bypassed with the force flag
func ConfirmCommand(message string, bypass bool) error {
	errAborted := fmt.Errorf("command aborted")
	if bypass {
		return nil
	}
	response := false
	prompt := &survey.Confirm{
		Message: message,
	}
	err := survey.AskOne(prompt, &response)
	if err != nil {
		return err
	}
	if !response {
		return errAborted
	}
	return nil
}

// tableIDsFile is the YAML shape accepted by --table-uuids-file
type tableIDsFile struct {
	Tables []string `yaml:"tables"`
}

// TableIDsFromFile reads a YAML file listing table IDs under a "tables" key
func TableIDsFromFile(filePath string) ([]string, error) {
	contents, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read table IDs file %s", filePath)
	}
	parsed := tableIDsFile{}
	if err := yaml.Unmarshal(contents, &parsed); err != nil {
		return nil, errors.Wrapf(err, "failed to parse table IDs file %s", filePath)
	}
	return parsed.Tables, nil
}

// SplitIDList splits a comma separated list of IDs, dropping empty entries
func SplitIDList(list string) []string {
	ids := make([]string, 0)
	for _, id := range strings.Split(list, ",") {
		id = strings.TrimSpace(id)
		if len(id) > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
