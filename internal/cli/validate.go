package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ionworks/ionworks-schema/export"
)

type ValidateCmd struct{}

func NewValidateCmd() *ValidateCmd {
	return &ValidateCmd{}
}

func (c *ValidateCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an exported JSON config against the pipeline envelope",
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _, err := rootFlags(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			input, err := cmd.Flags().GetString("input")
			if err != nil {
				return fmt.Errorf("failed to get input flag: %w", err)
			}

			log := newLogger(verbose)

			data, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("failed to read document: %w", err)
			}
			var doc any
			if err := json.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("failed to parse document: %w", err)
			}
			if err := export.Validate(doc); err != nil {
				return err
			}

			log.Info("Document is valid", "path", input)
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "Path to the exported JSON document")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
