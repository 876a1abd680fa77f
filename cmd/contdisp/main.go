package main

import (
	"github.com/spf13/cobra"

	"github.com/teacon/go-disposition/cmd/contdisp/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
