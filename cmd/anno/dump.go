package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/praetorian-inc/anno/pkg/codec"
	"github.com/praetorian-inc/anno/pkg/config"
	"github.com/praetorian-inc/anno/pkg/export"
	"github.com/praetorian-inc/anno/pkg/logging"
	"github.com/praetorian-inc/anno/pkg/render"
	"github.com/praetorian-inc/anno/pkg/style"
	"github.com/praetorian-inc/anno/pkg/typespec"
)

var (
	inputFile     string
	byteOrderName string
	colorMode     string
	dumpFormat    string
	configPath    string
	layoutName    string
)

func init() {
	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "File to read (reads from stdin if not provided)")
	rootCmd.Flags().StringVar(&byteOrderName, "byte-order", "", "Byte order for multi-byte types: native (default), little, big")
	rootCmd.Flags().StringVar(&colorMode, "color", "", "Color output: auto (default), always, never")
	rootCmd.Flags().StringVar(&dumpFormat, "format", "hex", "Output format: hex, json, cbor")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to YAML config with defaults and named layouts")
	rootCmd.Flags().StringVar(&layoutName, "layout", "", "Named layout from the config, prepended to the types")
}

func runDump(cmd *cobra.Command, args []string) error {
	log := logging.Logger()

	if dumpFormat != "hex" && dumpFormat != "json" && dumpFormat != "cbor" {
		return fmt.Errorf("unknown output format: %s", dumpFormat)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tokens, err := resolveTokens(cfg, args)
	if err != nil {
		return err
	}
	plan, err := typespec.Parse(tokens)
	if err != nil {
		return err
	}

	order, err := codec.ParseByteOrder(firstNonEmpty(byteOrderName, cfg.ByteOrder, "native"))
	if err != nil {
		return err
	}
	mode, err := style.ParseMode(firstNonEmpty(colorMode, cfg.Color))
	if err != nil {
		return err
	}

	data, err := readInput(cmd.InOrStdin(), inputFile)
	if err != nil {
		return err
	}

	log.Debug("compiling",
		zap.Stringer("plan", plan),
		zap.Stringer("byte_order", order),
		zap.Int("bytes", len(data)))

	annotations, walkErr := plan.Walk(order, data)
	if walkErr != nil && !errors.Is(walkErr, typespec.ErrInsufficientData) {
		return walkErr
	}

	out := cmd.OutOrStdout()
	switch dumpFormat {
	case "json":
		err = export.Write(out, export.Build(inputFile, data, order, annotations, walkErr))
	case "cbor":
		err = export.WriteCBOR(out, export.Build(inputFile, data, order, annotations, walkErr))
	default:
		palette := style.Plain()
		if mode.Enabled(isTerminal(out), os.Getenv) {
			palette = style.New(true)
		}
		d := render.New(render.WithPalette(palette), render.WithAnnotations(annotations...))
		err = d.Dump(out, data)
	}
	if err != nil {
		return err
	}

	if walkErr != nil {
		log.Debug("data exhausted", zap.Error(walkErr))
	}
	return walkErr
}

// =============================================================================
// HELPERS
// =============================================================================

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logging.Logger().Debug("loaded config", zap.String("path", configPath))
	return cfg, nil
}

// resolveTokens prepends the selected layout to the positional types.
func resolveTokens(cfg *config.Config, args []string) ([]string, error) {
	if layoutName == "" {
		return args, nil
	}
	layout, err := cfg.Layout(layoutName)
	if err != nil {
		return nil, err
	}
	tokens := make([]string, 0, len(layout)+len(args))
	tokens = append(tokens, layout...)
	return append(tokens, args...), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
