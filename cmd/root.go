package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/city-viewer/internal/catalog"
	"github.com/sells-group/city-viewer/internal/config"
	"github.com/sells-group/city-viewer/internal/viewer"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "city-viewer",
	Short: "Browse city districts and points of interest on a map",
	Long:  "Selects a city from a fixed catalog and shows its classified district polygons, point-of-interest markers and a color legend.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadCatalog opens the configured city dataset.
func loadCatalog() (*catalog.Catalog, error) {
	return catalog.Load(cfg.Catalog.Path)
}

// viewerOptions maps the map configuration onto viewer options.
func viewerOptions(m config.MapConfig) viewer.Options {
	return viewer.Options{
		Zoom:        m.Zoom,
		FlyDuration: m.FlyDuration,
		BaseLayer: viewer.TileLayer{
			URLTemplate:   m.TileURL,
			Attribution:   m.Attribution,
			MarkerIconURL: m.MarkerIconURL,
		},
	}
}
