package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/penwyp/timeline-viz/internal/config"
	"github.com/penwyp/timeline-viz/internal/core/model"
	"github.com/penwyp/timeline-viz/internal/core/scheme"
	"github.com/penwyp/timeline-viz/internal/plotter"
	"github.com/penwyp/timeline-viz/internal/presentation/formatter"
	"github.com/penwyp/timeline-viz/internal/presentation/render"
	"github.com/penwyp/timeline-viz/internal/util"
)

var (
	// Logging related
	debug bool

	// Column selection
	timestampColumns []string
	detectTimestamps bool
	idColumn         string

	// Presentation
	entityName        string
	thresholdDays     float64
	colorsJSON        string
	labelMappingsJSON string
	configFile        string

	// Output related
	outputDir     string
	maxEntities   int
	imageFormat   string
	summaryFormat string
	watchInput    bool

	rootCmd = &cobra.Command{
		Use:   "timeline-viz <input.csv>",
		Short: "Generate timeline visualizations from CSV data",
		Long: `timeline-viz reads tabular records containing timestamp columns and renders
each record (entity) as a horizontal timeline image, breaking the timeline
where gaps between events exceed a threshold.

Examples:
  timeline-viz data.csv --output-dir timelines --detect-timestamps
  timeline-viz data.csv --timestamp-columns created_at,updated_at,completed_at
  timeline-viz patients.csv --id-column patient_id --entity-name Patient
  timeline-viz orders.csv --colors '{"line":"#336699","point_face":"#ffcc00"}'
  timeline-viz events.csv --label-mappings '{"created_at":"Creation Date"}'
  timeline-viz large.csv --max-entities 5 --threshold-days 14
  timeline-viz live.csv --detect-timestamps --watch`,
		Args: cobra.ExactArgs(1),
		RunE: runPlot,
	}
)

const defaultLogFile = "~/.timeline-viz/logs/app.log"

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug logging to stderr")

	rootCmd.Flags().StringSliceVarP(&timestampColumns, "timestamp-columns", "t", nil,
		"Column names containing timestamps")
	rootCmd.Flags().BoolVarP(&detectTimestamps, "detect-timestamps", "d", false,
		"Automatically detect timestamp columns")
	rootCmd.Flags().StringVarP(&idColumn, "id-column", "i", "",
		"Column name for entity identifier (default: row index)")

	rootCmd.Flags().StringVarP(&entityName, "entity-name", "e", "Entity",
		"Name to use for entities in titles (e.g., Patient, Order)")
	rootCmd.Flags().Float64VarP(&thresholdDays, "threshold-days", "T", 1.0,
		"Gap in days that breaks the timeline into segments")
	rootCmd.Flags().StringVarP(&colorsJSON, "colors", "c", "",
		"JSON object with color scheme overrides")
	rootCmd.Flags().StringVarP(&labelMappingsJSON, "label-mappings", "l", "",
		"JSON object mapping column names to display labels")
	rootCmd.Flags().StringVar(&configFile, "config", "",
		"YAML config file (flags override its values)")

	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "timelines",
		"Directory to save timeline images")
	rootCmd.Flags().IntVarP(&maxEntities, "max-entities", "m", 0,
		"Maximum number of entities to process (0 = all)")
	rootCmd.Flags().StringVar(&imageFormat, "image-format", "png",
		"Image format (png, svg)")
	rootCmd.Flags().StringVar(&summaryFormat, "summary-format", "text",
		"Summary output format (text, json)")
	rootCmd.Flags().BoolVarP(&watchInput, "watch", "w", false,
		"Watch the input file and re-render on changes")
}

func runPlot(cmd *cobra.Command, args []string) error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	logFile := expandPath(defaultLogFile)
	ensureDir(filepath.Dir(logFile))
	util.InitLogger(logLevel, logFile, debug)

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	csvPath := args[0]
	p := plotter.New(opts)
	summary, err := p.RunFile(csvPath)
	if err != nil {
		return err
	}
	printSummary(summary)

	if watchInput {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return p.Watch(ctx, csvPath, printSummary)
	}
	return nil
}

// buildOptions merges config-file values and flags; a flag that was set on
// the command line wins over the config file.
func buildOptions(cmd *cobra.Command) (plotter.Options, error) {
	opts := plotter.Options{
		TimestampColumns: timestampColumns,
		DetectColumns:    detectTimestamps,
		IDColumn:         idColumn,
		EntityName:       entityName,
		ThresholdDays:    thresholdDays,
		OutputDir:        outputDir,
		MaxEntities:      maxEntities,
		ImageFormat:      imageFormat,
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return opts, err
		}
		if err := applyConfig(cmd, cfg, &opts); err != nil {
			return opts, err
		}
	}

	if colorsJSON != "" {
		cs, err := scheme.ParseJSON(colorsJSON)
		if err != nil {
			return opts, err
		}
		opts.Colors = cs
	}

	if labelMappingsJSON != "" {
		var mappings map[string]string
		if err := sonic.Unmarshal([]byte(labelMappingsJSON), &mappings); err != nil {
			return opts, fmt.Errorf("invalid label mappings JSON: %w", err)
		}
		if opts.LabelMappings == nil {
			opts.LabelMappings = mappings
		} else {
			for k, v := range mappings {
				opts.LabelMappings[k] = v
			}
		}
	}

	if opts.ImageFormat != "png" && opts.ImageFormat != "svg" {
		return opts, model.NewConfigErrorf("unsupported image format %q", opts.ImageFormat)
	}

	if len(opts.TimestampColumns) == 0 && !opts.DetectColumns {
		fmt.Fprintln(os.Stderr,
			"Warning: no timestamp columns specified, falling back to auto-detection")
		opts.DetectColumns = true
	}

	return opts, nil
}

func applyConfig(cmd *cobra.Command, cfg *config.File, opts *plotter.Options) error {
	flags := cmd.Flags()

	if cfg.ThresholdDays != 0 && !flags.Changed("threshold-days") {
		opts.ThresholdDays = cfg.ThresholdDays
	}
	if cfg.EntityName != "" && !flags.Changed("entity-name") {
		opts.EntityName = cfg.EntityName
	}
	if cfg.IDColumn != "" && !flags.Changed("id-column") {
		opts.IDColumn = cfg.IDColumn
	}
	if cfg.ImageFormat != "" && !flags.Changed("image-format") {
		opts.ImageFormat = cfg.ImageFormat
	}
	if len(cfg.Colors) > 0 {
		cs, err := scheme.FromMap(cfg.Colors)
		if err != nil {
			return err
		}
		opts.Colors = cs
	}
	if len(cfg.LabelMappings) > 0 {
		opts.LabelMappings = cfg.LabelMappings
	}
	if len(cfg.RemoveSuffixes) > 0 {
		opts.RemoveSuffixes = cfg.RemoveSuffixes
	}
	opts.Geometry = render.Geometry{
		Width:     cfg.Layout.Width,
		Height:    cfg.Layout.Height,
		PointSize: cfg.Layout.PointSize,
		FontSize:  cfg.Layout.FontSize,
	}
	return nil
}

func printSummary(s *model.Summary) {
	format := formatter.Format(summaryFormat)
	colored := format == formatter.FormatText && term.IsTerminal(int(os.Stdout.Fd()))
	if err := formatter.PrintSummary(os.Stdout, s, format, colored); err != nil {
		util.LogErrorf("print summary: %v", err)
	}
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
