package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/astarviz"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "astarviz %s\n", astarviz.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
