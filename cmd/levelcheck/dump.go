package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"
)

var flagCopy bool

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the generated layout as YAML",
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().BoolVar(&flagCopy, "copy", false, "Also copy the YAML to the system clipboard")
}

func runDump(cmd *cobra.Command, args []string) error {
	gen, err := buildGenerator()
	if err != nil {
		return err
	}

	doc := map[string]any{"platforms": gen.Platforms()}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}

	os.Stdout.Write(data)

	if flagCopy {
		if err := clipboard.Init(); err != nil {
			return fmt.Errorf("clipboard unavailable: %w", err)
		}
		clipboard.Write(clipboard.FmtText, data)
		fmt.Fprintln(os.Stderr, "copied to clipboard")
	}
	return nil
}
