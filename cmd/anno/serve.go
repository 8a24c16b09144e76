package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/praetorian-inc/anno/pkg/codec"
	"github.com/praetorian-inc/anno/pkg/serve"
)

var serveByteOrder string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as streaming server",
	Long: `Run Anno as a long-lived streaming server that accepts annotate and dump
requests via stdin and writes responses via stdout using NDJSON format.

The process handles requests until stdin closes, a close request arrives,
or SIGTERM is received.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveByteOrder, "byte-order", "native", "Default byte order for requests: native, little, big")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	order, err := codec.ParseByteOrder(serveByteOrder)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	srv := serve.NewServer(order, cmd.InOrStdin(), cmd.OutOrStdout())
	return srv.Run(ctx)
}
