package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/city-viewer/internal/viewer"
)

var legendCmd = &cobra.Command{
	Use:   "legend",
	Short: "Print the district color legend",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viewer.NewLegendPanel().Render(os.Stdout); err != nil {
			return eris.Wrap(err, "legend")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(legendCmd)
}
