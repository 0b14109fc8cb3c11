package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lumen version",
	Run: func(c *cobra.Command, args []string) {
		fmt.Printf("lumen version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
