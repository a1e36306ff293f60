package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/bloglist/internal/logging"
	"github.com/dmitrijs2005/bloglist/internal/server/config"
	"github.com/dmitrijs2005/bloglist/internal/server/report"
)

func rootCmd() *cobra.Command {
	var (
		configPath string
		dsn        string
		bucket     string
		output     string
		upload     bool
		migrate    bool
	)

	cmd := &cobra.Command{
		Use:          "report",
		Short:        "Print blog statistics and optionally store them in S3",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var configArgs []string
			if configPath != "" {
				configArgs = []string{"-c", configPath}
			}
			c, err := config.Load(configArgs)
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			if cmd.Flags().Changed("dsn") {
				c.DatabaseDSN = dsn
			}
			if cmd.Flags().Changed("bucket") {
				c.S3Bucket = bucket
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			logger := logging.NewJSONLogger(cmd.ErrOrStderr(), c.LogLevel)
			return report.Run(cmd.Context(), c, logger, report.Options{Upload: upload, Migrate: migrate}, w)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "JSON config file")
	cmd.Flags().StringVarP(&dsn, "dsn", "d", "", "database DSN (empty or \"memory\" for the in-memory store)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket for --upload")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "write the report to this file")
	cmd.Flags().BoolVar(&upload, "upload", false, "upload the report to S3")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply database migrations before reading")

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
