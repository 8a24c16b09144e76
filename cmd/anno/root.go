package main

import (
	"github.com/spf13/cobra"

	"github.com/praetorian-inc/anno/pkg/logging"
)

var (
	verbose bool
	quiet   bool
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "anno [types...]",
	Short: "Anno - hexdump with type annotations",
	Long: `Anno prints a hexdump of a file or standard input and underlines the
fields described by a list of types.

Types are consumed in order from offset 0:
  u8 u16 u32 u64 i8 i16 i32 i64 f32 f64   decode a scalar
  u16:apid                                decode a scalar and name it
  .32                                     skip 32 bits`,
	Example: `  anno -f packet.bin u16:apid u16:seq .16 f32
  printf '\x34\x12' | anno --byte-order little u16`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runDump,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to a rotated file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	logging.SetLogger(logging.New(logging.Options{
		Verbose: verbose,
		Quiet:   quiet,
		Output:  cmd.ErrOrStderr(),
		File:    logFile,
	}))
	return nil
}

// Execute runs the root command.
func Execute() error {
	defer func() { _ = logging.Logger().Sync() }()
	return rootCmd.Execute()
}
