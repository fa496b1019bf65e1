// Package cli implements the hatchpart command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mugiliam/hatchrelclient/internal/config"
	"github.com/mugiliam/hatchrelclient/internal/logging"
	"github.com/mugiliam/hatchrelclient/pkg/catalogerrors"
	"github.com/mugiliam/hatchrelclient/pkg/rest"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	server     string
	metalake   string
	catalog    string
	schema     string
	table      string
	logLevel   string
	callerID   string

	cfg    *config.ConfigParam
	client rest.Client
}

func Execute() int {
	return run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "hatchpart",
		Short:         "Manage partitions of relational catalog tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a TOML config file (default $"+config.EnvConfigFile+")")
	flags.StringVar(&opts.server, "server", "", "Catalog service URI")
	flags.StringVar(&opts.metalake, "metalake", "", "Metalake name")
	flags.StringVar(&opts.catalog, "catalog", "", "Catalog name")
	flags.StringVar(&opts.schema, "schema", "", "Schema name")
	flags.StringVar(&opts.table, "table", "", "Table name")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.callerID, "caller-id", "", "Caller id sent with every request")

	rootCmd.AddCommand(newPartitionsCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// resolve applies flag > env > file > default precedence and builds the client.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("server") {
		cfg.ServerURI = o.server
	}
	if cmd.Flags().Changed("metalake") {
		cfg.Metalake = o.metalake
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if cmd.Flags().Changed("caller-id") {
		cfg.CallerID = o.callerID
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	ctx := logging.Setup(cmd.Context(), cfg.LogLevel, cfg.LogConsole)
	if cfg.CallerID != "" {
		ctx = rest.WithCallerID(ctx, cfg.CallerID)
	}
	cmd.SetContext(ctx)

	c, err := rest.NewHTTPClient(cfg.ServerURI, cfg.RestOptions()...)
	if err != nil {
		return err
	}
	o.client = c
	return nil
}

func (o *rootOptions) requireTable() error {
	missing := ""
	switch {
	case o.cfg.Metalake == "":
		missing = "metalake"
	case o.catalog == "":
		missing = "catalog"
	case o.schema == "":
		missing = "schema"
	case o.table == "":
		missing = "table"
	}
	if missing != "" {
		return catalogerrors.ErrIllegalArgument.Msg("--" + missing + " is required")
	}
	return nil
}
