// Package irpef handles the fiscal calculator command
package irpef

import (
	"fmt"

	"fjacquet/fattura-xml/cmd/root"
	"fjacquet/fattura-xml/internal/fiscale"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Dipendente marks the income as employee income for the wedge cut.
var Dipendente bool

// Cmd represents the irpef command
var Cmd = &cobra.Command{
	Use:   "irpef",
	Short: "Compute IRPEF and related figures for a yearly income",
	Long: `Compute the progressive IRPEF, the regional surcharge and the income
bonuses for a yearly income, using the same brackets the legacy spreadsheet
formulas applied.`,
	Run: irpefFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Reddito, "reddito", "r", "", "Yearly income, e.g. 30000")
	Cmd.Flags().BoolVar(&Dipendente, "dipendente", false, "Treat the income as employee income")
}

func irpefFunc(cmd *cobra.Command, args []string) {
	if root.Reddito == "" {
		root.Log.Fatal("A yearly income is required (--reddito)")
	}

	reddito, err := decimal.NewFromString(root.Reddito)
	if err != nil {
		root.Log.Fatalf("Invalid income '%s': %v", root.Reddito, err)
	}

	fmt.Printf("IRPEF:                  %s\n", fiscale.IRPEF(reddito).StringFixed(2))
	fmt.Printf("IRPEF mensile:          %s\n", fiscale.IRPEFMensile(reddito).StringFixed(2))
	fmt.Printf("Addizionale regionale:  %s\n", fiscale.AddizionaleRegionale(reddito).StringFixed(2))
	fmt.Printf("IRPEF con addizionali:  %s\n", fiscale.IRPEFConAddizionali(reddito).StringFixed(2))
	fmt.Printf("Bonus redditi:          %s\n", fiscale.BonusRedditi(reddito).StringFixed(2))
	fmt.Printf("Ex bonus Renzi:         %s\n", fiscale.ExBonusRenzi(reddito).StringFixed(2))
	if Dipendente {
		fmt.Printf("Taglio cuneo fiscale:   %s\n", fiscale.TaglioCuneoFiscale(reddito, true).StringFixed(2))
	}
}
