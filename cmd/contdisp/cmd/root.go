package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "contdisp",
	Short: "Tools for working with Content-Disposition header values",
}

func Execute() error {
	return rootCmd.Execute()
}
