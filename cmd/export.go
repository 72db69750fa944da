package main

import (
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/city-viewer/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write each city's map layers to files",
	Long:  "Selects each city in turn and writes its district polygons and markers as GeoJSON, shapefiles or XLSX workbooks, plus a manifest.json.",
	RunE:  runExport,
}

func init() {
	addExportFlags(exportCmd)
	rootCmd.AddCommand(exportCmd)
}

func addExportFlags(cmd *cobra.Command) {
	cmd.Flags().String("dir", "", "Output directory (default export.dir)")
	cmd.Flags().StringSlice("format", nil, "Formats to write: geojson, shp, xlsx (default export.formats)")
	cmd.Flags().StringSlice("city", nil, "Cities to export (default all)")
	cmd.Flags().Int("concurrency", 0, "Files written in parallel (default export.concurrency)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts, cities, err := exportOptions(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Map.Validate(); err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	layers, err := export.Capture(cat, cities, viewerOptions(cfg.Map))
	if err != nil {
		return err
	}
	for _, cl := range layers {
		for _, f := range cl.Failures {
			zap.L().Warn("district skipped", zap.String("city", cl.City), zap.Error(f))
		}
	}

	res, err := export.Run(ctx, layers, opts)
	if err != nil {
		return eris.Wrap(err, "export")
	}

	zap.L().Info("export written",
		zap.String("run_id", res.RunID),
		zap.String("dir", opts.Dir),
		zap.Int("cities", len(res.Files)),
	)
	return nil
}

// exportOptions merges command flags over the export configuration.
func exportOptions(cmd *cobra.Command) (export.Options, []string, error) {
	dir, _ := cmd.Flags().GetString("dir")
	formats, _ := cmd.Flags().GetStringSlice("format")
	cities, _ := cmd.Flags().GetStringSlice("city")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	if dir == "" {
		dir = cfg.Export.Dir
	}
	if len(formats) == 0 {
		formats = cfg.Export.Formats
	}
	if concurrency <= 0 {
		concurrency = cfg.Export.Concurrency
	}

	parsed, err := export.ParseFormats(formats)
	if err != nil {
		return export.Options{}, nil, err
	}
	return export.Options{Dir: dir, Formats: parsed, Concurrency: concurrency}, cities, nil
}
