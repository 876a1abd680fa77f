package cmd

import (
	"github.com/spf13/cobra"

	disposition "github.com/teacon/go-disposition"
	_ "github.com/teacon/go-disposition/encoding"
)

var parseCmd = &cobra.Command{
	Use:   "parse header-value",
	Short: "Parse a Content-Disposition header value and show its parts",
	Args:  cobra.ExactArgs(1),
	RunE:  RunParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func RunParse(cmd *cobra.Command, args []string) error {
	v, err := disposition.Parse(args[0])
	if err != nil {
		return err
	}

	cmd.Printf("type: %s\n", v.Type())
	for _, name := range v.ParameterNames() {
		value, _ := v.Parameter(name)
		cmd.Printf("parameter: %s = %s\n", name, value)
	}
	if filename, ok := v.Filename(); ok {
		cmd.Printf("filename: %s\n", filename)
	}
	cmd.Printf("canonical: %s\n", v)

	return nil
}
