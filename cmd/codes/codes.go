// Package codescmd handles the enumeration listing command
package codescmd

import (
	"fmt"
	"os"
	"sort"

	"fjacquet/fattura-xml/cmd/root"
	"fjacquet/fattura-xml/pkg/codes"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

// Set selects a single catalogue to list; empty means all of them.
var Set string

// Cmd represents the codes command
var Cmd = &cobra.Command{
	Use:   "codes",
	Short: "List the FatturaPA code catalogues",
	Long: `List the closed code sets the assembler validates against (countries,
fiscal regimes, transmission formats, document types, payment modes), either
as text or as CSV via --output, so that a front end can populate its
selection lists.`,
	Run: codesFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Set, "set", "s", "", "Catalogue to list (Nazione, RegimeFiscale, FormatoTrasmissione, TipoDocumento, ModalitaPagamento)")
}

// exportRow is one catalogue entry qualified by its field name.
type exportRow struct {
	Field       string `csv:"field"`
	Code        string `csv:"code"`
	Description string `csv:"description"`
}

func codesFunc(cmd *cobra.Command, args []string) {
	catalogues := codes.All()

	var names []string
	if Set != "" {
		if _, ok := catalogues[Set]; !ok {
			root.Log.Fatalf("Unknown catalogue: %s", Set)
		}
		names = []string{Set}
	} else {
		for name := range catalogues {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	var rows []exportRow
	for _, name := range names {
		for _, entry := range catalogues[name].Entries() {
			rows = append(rows, exportRow{Field: name, Code: entry.Code, Description: entry.Description})
		}
	}

	if root.SharedFlags.Output == "" {
		for _, row := range rows {
			fmt.Printf("%s\t%s\t%s\n", row.Field, row.Code, row.Description)
		}
		return
	}

	f, err := os.Create(root.SharedFlags.Output)
	if err != nil {
		root.Log.Fatalf("Error creating output file: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			root.Log.Warnf("Failed to close output file: %v", err)
		}
	}()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		root.Log.Fatalf("Error writing catalogue CSV: %v", err)
	}
	root.Log.Infof("Wrote %d catalogue entries to %s", len(rows), root.SharedFlags.Output)
}
