/*
 * Copyright (c) YugaByte, Inc.
 */

package dr

import (
	"github.com/spf13/cobra"
)

// DRCmd set of commands are used to perform disaster-recovery operations
// on universes in YugabyteDB Anywhere
var DRCmd = &cobra.Command{
	Use:     "dr",
	Aliases: []string{"disaster-recovery"},
	Short:   "Manage YugabyteDB Anywhere disaster-recovery configs",
	Long: "Manage disaster-recovery configs in YugabyteDB Anywhere " +
		"between two universes",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	DRCmd.AddCommand(createDRCmd)
	DRCmd.AddCommand(deleteDRCmd)
	DRCmd.AddCommand(describeDRCmd)
	DRCmd.AddCommand(listTablesDRCmd)
	DRCmd.AddCommand(addTablesDRCmd)
	DRCmd.AddCommand(removeTablesDRCmd)
	DRCmd.AddCommand(switchoverDRCmd)
	DRCmd.AddCommand(failoverDRCmd)
	DRCmd.AddCommand(repairDRCmd)
	DRCmd.AddCommand(syncDRCmd)
	DRCmd.AddCommand(pauseDRCmd)
	DRCmd.AddCommand(resumeDRCmd)
	DRCmd.AddCommand(safetimeDRCmd)
}
