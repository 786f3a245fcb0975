/*
 * Copyright (c) YugaByte, Inc.
 */

package main

import (
	"github.com/yugabyte/xcluster-dr-cli/cmd"
)

var version = "0.1.0"

func main() {
	cmd.Execute(version)
}
