package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/praetorian-inc/anno/pkg/codec"
)

var typesFormat string

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List supported data types",
	Long:  "Display every scalar type that can be used in a type list, with its size and aliases",
	Args:  cobra.NoArgs,
	RunE:  runTypes,
}

func init() {
	typesCmd.Flags().StringVar(&typesFormat, "format", "table", "Output format: table, json")
}

// typeInfo is the JSON form of a data type.
type typeInfo struct {
	Name    string   `json:"name"`
	Size    int      `json:"size"`
	Signed  bool     `json:"signed"`
	Float   bool     `json:"float"`
	Aliases []string `json:"aliases,omitempty"`
}

func runTypes(cmd *cobra.Command, args []string) error {
	var infos []typeInfo
	for _, dt := range codec.DataTypes() {
		infos = append(infos, typeInfo{
			Name:    dt.Name(),
			Size:    dt.Size(),
			Signed:  dt.Signed(),
			Float:   dt.IsFloat(),
			Aliases: dt.Aliases(),
		})
	}

	switch typesFormat {
	case "json":
		return outputTypesJSON(cmd, infos)
	case "table":
		return outputTypesTable(cmd, infos)
	default:
		return fmt.Errorf("unknown output format: %s", typesFormat)
	}
}

func outputTypesJSON(cmd *cobra.Command, infos []typeInfo) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(infos)
}

func outputTypesTable(cmd *cobra.Command, infos []typeInfo) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Name\tSize\tKind\tAliases\n")
	fmt.Fprintf(w, "----\t----\t----\t-------\n")

	for _, info := range infos {
		kind := "unsigned"
		switch {
		case info.Float:
			kind = "float"
		case info.Signed:
			kind = "signed"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", info.Name, info.Size, kind, strings.Join(info.Aliases, ", "))
	}

	return nil
}
