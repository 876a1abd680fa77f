package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	disposition "github.com/teacon/go-disposition"
)

var (
	filename string
	params   []string
)

var formatCmd = &cobra.Command{
	Use:   "format type",
	Short: "Build a Content-Disposition header value from its parts",
	Args:  cobra.ExactArgs(1),
	RunE:  RunFormat,
}

func init() {
	formatCmd.Flags().StringVarP(&filename, "filename", "f", "",
		"filename to advertise; sets both filename and filename*")
	formatCmd.Flags().StringArrayVarP(&params, "param", "p", nil,
		"additional parameter in key=value form; may be repeated")
	rootCmd.AddCommand(formatCmd)
}

func RunFormat(cmd *cobra.Command, args []string) error {
	b := disposition.Type(args[0])
	if filename != "" {
		b = b.Filename(filename)
	}
	for _, p := range params {
		key, value, ok := strings.Cut(p, "=")
		if !ok {
			return fmt.Errorf("parameter %q is not in key=value form", p)
		}
		b = b.Parameter(key, value)
	}

	v, err := b.Build()
	if err != nil {
		return err
	}

	cmd.Println(v.String())
	return nil
}
