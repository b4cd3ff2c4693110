package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ionworks/ionworks-schema/export"
	"github.com/ionworks/ionworks-schema/schema"
	"github.com/ionworks/ionworks-schema/schema/registry"
)

// pipelineFile is the YAML description the build and submit commands read.
type pipelineFile struct {
	Name        string                    `yaml:"name"`
	Description string                    `yaml:"description"`
	OutputFile  string                    `yaml:"output_file"`
	Elements    map[string]map[string]any `yaml:"elements"`
}

func loadPipeline(log *slog.Logger, path string) (*schema.Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline file: %w", err)
	}

	var file pipelineFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline file: %w", err)
	}

	reg := registry.New(log)
	elements := make(map[string]schema.Element, len(file.Elements))
	for key, raw := range file.Elements {
		typeName, _ := raw["type"].(string)
		if typeName == "" {
			return nil, fmt.Errorf("element %q: missing type", key)
		}
		cfg := make(map[string]any, len(raw))
		for k, v := range raw {
			if k == "type" {
				continue
			}
			cfg[k] = v
		}
		elem, err := reg.Build(typeName, cfg)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", key, err)
		}
		elements[key] = elem
	}

	p := schema.NewPipeline(elements)
	p.Name = file.Name
	p.Description = file.Description
	p.OutputFile = file.OutputFile
	return p, nil
}

type BuildCmd struct{}

func NewBuildCmd() *BuildCmd {
	return &BuildCmd{}
}

func (c *BuildCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build an exported JSON config from a YAML pipeline description",
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _, err := rootFlags(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			input, err := cmd.Flags().GetString("input")
			if err != nil {
				return fmt.Errorf("failed to get input flag: %w", err)
			}
			output, err := cmd.Flags().GetString("output")
			if err != nil {
				return fmt.Errorf("failed to get output flag: %w", err)
			}

			log := newLogger(verbose)

			p, err := loadPipeline(log, input)
			if err != nil {
				return err
			}

			doc, err := export.Marshal(p)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				fmt.Println(string(doc))
				return nil
			}
			if err := os.WriteFile(output, append(doc, '\n'), 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			log.Info("Wrote pipeline document", "path", output, "elements", len(p.Elements))
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "Path to the YAML pipeline description")
	cmd.Flags().StringP("output", "o", "-", "Path to write the JSON document (- for stdout)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
