package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/city-viewer/internal/catalog"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the cities in the catalog",
	Long:  "Prints every city in catalog order with its center and layer counts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		formatCities(os.Stdout, cat)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(citiesCmd)
}

// formatCities writes a tabular listing of the catalog to out.
func formatCities(out io.Writer, cat *catalog.Catalog) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tCITY\tCENTER\tDISTRICTS\tPOIS")
	_, _ = fmt.Fprintln(w, "-\t----\t------\t---------\t----")

	for i, c := range cat.All() {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n",
			i+1,
			c.Name,
			c.Center,
			len(c.Districts),
			len(c.PointsOfInterest),
		)
	}
	_ = w.Flush()
}
