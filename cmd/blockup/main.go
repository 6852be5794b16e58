// Package main provides the CLI entry point for blockup.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/ukaji3/blockup-go/internal/config"
	"github.com/ukaji3/blockup-go/internal/logging"
	"github.com/ukaji3/blockup-go/pkg/blockup"
	"github.com/ukaji3/blockup-go/pkg/blockup/models"
	"github.com/ukaji3/blockup-go/pkg/blockup/output"
	"go.uber.org/zap"
)

var version = "dev"

var (
	outputPath    string
	pretty        bool
	format        string
	pdfPath       string
	pdfDir        string
	xlsxPath      string
	categoriesDir string
	categoryNames []string
	strict        bool
	priceFlat     bool
	configPath    string
	verbose       bool
)

var warn = color.New(color.FgYellow)

func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		logging.Error("command failed", zap.Error(err))
	}
	if cerr := logging.Close(); cerr != nil {
		fmt.Fprintf(os.Stderr, "failed to close log: %v\n", cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "blockup [input.xlsx]",
		Short: "Price block-up cost sheets from bill-of-materials workbooks",
		Long: `blockup reads the CUTTING BOM and ASSY CHECKLIST sheets of a workbook,
prices main plates, round parts and flat parts, and writes the cost sheet
as text, JSON, PDF or Excel.`,
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	rootCmd.SilenceUsage = true
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initConfig()
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&format, "format", "", "Output format: json, text (default from config)")
	rootCmd.Flags().StringVar(&pdfPath, "pdf", "", "Write the PDF cost sheet to this path")
	rootCmd.Flags().StringVar(&pdfDir, "pdf-dir", "", "Write the PDF cost sheet into this directory under its work order name")
	rootCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Write the priced workbook to this path")
	rootCmd.Flags().StringVar(&categoriesDir, "categories-dir", "", "Directory for per-category JSON files")
	rootCmd.Flags().StringSliceVar(&categoryNames, "category", nil, "Categories to output: main, round, flat (default: all)")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Fail when a section marker is missing")
	rootCmd.Flags().BoolVar(&priceFlat, "price-flat", false, "Price flat parts with the main-plate formula")

	rootCmd.AddCommand(newVersionCmd(), newRatesCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "blockup %s\n", version)
		},
	}
}

func initConfig() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", configPath, err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	config.Set(cfg)
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	defer logging.Sync()

	inputPath := args[0]
	cfg := config.Get()

	categories, err := parseCategories(categoryNames)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	if cmd.Flags().Changed("price-flat") {
		opts.PriceFlatParts = priceFlat
	}

	sheet, err := blockup.Extract(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if err := blockup.SectionErrors(sheet); err != nil {
		if strict {
			return err
		}
		for _, line := range strings.Split(err.Error(), "\n") {
			logging.Warn("section missing", zap.String("book", sheet.BookName), zap.String("detail", line))
			warn.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", line)
		}
	}
	logging.Info("cost sheet priced",
		zap.String("book", sheet.BookName),
		zap.String("work_order", sheet.WorkOrder),
		zap.Int("issues", len(sheet.Issues)),
	)

	symbol := cfg.Pricing.CurrencySymbol
	report := output.DefaultReport(time.Now())
	report.Company = cfg.Report.Company
	report.Title = cfg.Report.Title
	report.Currency = symbol

	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	pretty = pretty || cfg.Output.Pretty
	data, err := render(sheet, symbol, format, pretty, categories)
	if err != nil {
		return err
	}

	exporting := pdfPath != "" || pdfDir != "" || xlsxPath != "" || categoriesDir != ""
	if outputPath != "" {
		if err := writeFile(outputPath, data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if !exporting {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
	}

	if pdfPath != "" || pdfDir != "" {
		if err := writePDF(sheet, report, categories); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
	}

	if xlsxPath != "" {
		xlsx, err := output.GenerateExcel(sheet, report, categories...)
		if err != nil {
			return fmt.Errorf("failed to generate workbook: %w", err)
		}
		if err := writeFile(xlsxPath, xlsx); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
	}

	if categoriesDir != "" {
		if err := writeCategoryFiles(sheet, symbol, categories); err != nil {
			return fmt.Errorf("failed to write category files: %w", err)
		}
	}

	return nil
}

// parseCategories resolves --category values; none means every category.
func parseCategories(names []string) ([]models.Category, error) {
	var out []models.Category
	for _, n := range names {
		c, ok := models.ParseCategory(strings.ToLower(strings.TrimSpace(n)))
		if !ok {
			return nil, fmt.Errorf("invalid category: %s (must be main, round, or flat)", n)
		}
		out = append(out, c)
	}
	return out, nil
}

func render(sheet *models.CostSheet, symbol, format string, pretty bool, categories []models.Category) ([]byte, error) {
	switch format {
	case "json":
		data, err := output.ToJSON(sheet, symbol, pretty, categories...)
		if err != nil {
			return nil, fmt.Errorf("serialization failed: %w", err)
		}
		return append(data, '\n'), nil
	case "text":
		var b strings.Builder
		if err := output.WriteText(&b, sheet, symbol, categories...); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil
	default:
		return nil, fmt.Errorf("invalid format: %s (must be json or text)", format)
	}
}

func writePDF(sheet *models.CostSheet, report output.Report, categories []models.Category) error {
	pdf, err := output.GeneratePDF(sheet, report, categories...)
	if err != nil {
		return err
	}
	if pdfPath != "" {
		if err := writeFile(pdfPath, pdf); err != nil {
			return err
		}
	}
	if pdfDir != "" {
		if err := writeFile(filepath.Join(pdfDir, output.PDFFileName(sheet.WorkOrder, report)), pdf); err != nil {
			return err
		}
	}
	return nil
}

func writeCategoryFiles(sheet *models.CostSheet, symbol string, categories []models.Category) error {
	if len(categories) == 0 {
		categories = models.Categories
	}
	for _, c := range categories {
		data, err := output.CategoryToJSON(sheet, c, symbol, pretty)
		if err != nil {
			return err
		}
		if err := writeFile(filepath.Join(categoriesDir, string(c)+".json"), data); err != nil {
			return err
		}
	}
	return nil
}

// writeFile writes data to path, creating the parent directory.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	logging.Debug("file written", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}
