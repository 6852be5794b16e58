package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/ukaji3/blockup-go/pkg/blockup/rates"
)

func newRatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Print the rate tables used for pricing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printRates(cmd.OutOrStdout())
		},
	}
}

func printRates(w io.Writer) {
	fmt.Fprintln(w, "Main plates, unit rate by thickness (mm)")
	printLadder(w, fmt.Sprintf("  length <= %s", rates.LongPlateLength), rates.ShortPlateLadder)
	printLadder(w, fmt.Sprintf("  length > %s", rates.LongPlateLength), rates.LongPlateLadder)
	printLadder(w, "  DT-5", rates.DT5Ladder)
	fmt.Fprintln(w, "  cost = L x W / 100 x unit rate")
	fmt.Fprintf(w, "  DT-5 cost = (L + W) x T / 100 x %s\n", rates.DT5Factor)

	fmt.Fprintln(w, "\nCorner chamfer by size")
	for _, b := range rates.ChamferBrackets {
		if b.Thin.Valid {
			fmt.Fprintf(w, "  %d-%d: %s (T <= %s: %s)\n", b.Min, b.Max, b.Rate, rates.ThinLimit, b.Thin.Decimal)
		} else {
			fmt.Fprintf(w, "  %d-%d: %s\n", b.Min, b.Max, b.Rate)
		}
	}

	fmt.Fprintln(w, "\nGB/EGB round parts by length (mm)")
	printLadder(w, "  ID", rates.IDLadder)
	printLadder(w, "  OD", rates.ODLadder)

	fmt.Fprintln(w, "\nStandard round parts")
	for _, b := range rates.StandardBands {
		printLadder(w, fmt.Sprintf("  length <= %s, by diameter", b.MaxLength), b.Diameters)
	}
}

func printLadder(w io.Writer, title string, l rates.Ladder) {
	fmt.Fprintln(w, title)
	for _, s := range l.Steps {
		fmt.Fprintf(w, "    <= %s: %s\n", s.UpTo, s.Rate)
	}
	fmt.Fprintf(w, "    above: %s\n", l.Fallback)
}
