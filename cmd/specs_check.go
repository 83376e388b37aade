package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/curator/internal/document"
	"github.com/zjrosen/curator/internal/specs"
)

var specsCheckCmd = &cobra.Command{
	Use:   "specs:check <file>",
	Short: "Parse and validate a spec document without registering it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// A bare manager; nothing gets registered here.
		mgr := specs.NewManager(document.NewFileReader())

		obj, err := mgr.CreateObjectFromFile(args[0], false)
		if err != nil {
			return err
		}
		if err := obj.Validate(); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		fmt.Printf("%s: ok (%s)\n", args[0], obj.GetClassKey())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(specsCheckCmd)
}
