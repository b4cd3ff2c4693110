package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ionworks/ionworks-schema/library"
)

type MaterialsCmd struct{}

func NewMaterialsCmd() *MaterialsCmd {
	return &MaterialsCmd{}
}

func (c *MaterialsCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "materials [name]",
		Short: "List library materials, or show one material's parameter values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return printMaterial(args[0])
			}
			printMaterialList()
			return nil
		},
	}
	return cmd
}

func printMaterialList() {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	table.SetRowLine(true)
	table.SetHeader([]string{"Material", "Description"})

	for _, name := range library.Materials() {
		m, err := library.Get(name)
		if err != nil {
			continue
		}
		table.Append([]string{m.Name, m.Description})
	}
	table.Render()
}

func printMaterial(name string) error {
	m, err := library.Get(name)
	if err != nil {
		return err
	}

	fmt.Println("Material:", m.Name)
	fmt.Println("Description:", m.Description)

	params := make([]string, 0, len(m.ParameterValues))
	for param := range m.ParameterValues {
		params = append(params, param)
	}
	sort.Strings(params)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	table.SetRowLine(true)
	table.SetHeader([]string{"Parameter", "Values"})

	for _, param := range params {
		table.Append([]string{param, fmt.Sprintf("%v", m.ParameterValues[param])})
	}
	table.Render()
	return nil
}
