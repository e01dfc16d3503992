package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"alethea-inspector/internal/app"
	"alethea-inspector/internal/platform/id"
	"alethea-inspector/internal/platform/logging"
	"alethea-inspector/internal/services/privacy"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version 可在构建时通过 -ldflags 注入。
var Version = "dev"

// CLI 入口。所有子命令错误都统一输出到 stderr 并返回非 0 状态码。
func main() {
	root := newRootCmd(os.Stdout, os.Stderr, os.Getenv)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type cliOptions struct {
	configPath  string
	service     string
	chain       string
	appID       string
	timeout     time.Duration
	logLevel    string
	privacyMode string
	escapeArgs  bool
}

// cliEnv 是 PersistentPreRunE 解析出的运行环境，子命令共享。
type cliEnv struct {
	cfg    app.Config
	logger zerolog.Logger
	stdout io.Writer
}

func newRootCmd(stdout, stderr io.Writer, getenv func(string) string) *cobra.Command {
	opts := &cliOptions{}
	env := &cliEnv{stdout: stdout}

	root := &cobra.Command{
		Use:           "alethea-cli",
		Short:         "Inspect ALETHEA token balance and metadata via Linera GraphQL",
		Long:          `alethea-cli queries a Linera node's GraphQL service for the ALETHEA token application.
It is read-only: it never signs, builds or submits blocks, and cannot mint.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts, getenv)
			if err != nil {
				return err
			}
			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			env.cfg = cfg
			env.logger = logging.New(stderr, level, "alethea-cli").With().Str("run_id", id.New("run")).Logger()
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "yaml config file (optional)")
	pf.StringVar(&opts.service, "service", "", "linera service url (default "+app.DefaultServiceURL+")")
	pf.StringVar(&opts.chain, "chain", "", "chain id")
	pf.StringVar(&opts.appID, "app", "", "token application id")
	pf.DurationVar(&opts.timeout, "timeout", 0, "per-request timeout, 0 means none")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: error|warn|info|debug")
	pf.StringVar(&opts.privacyMode, "privacy-mode", "", "mask addresses and urls in logs: off|masked")
	pf.BoolVar(&opts.escapeArgs, "escape-args", false, "escape graphql string arguments")

	root.AddCommand(newRunCmd(env), newInspectCmd(env), newVersionCmd())
	return root
}

// resolveConfig 合并配置：DefaultConfig < YAML < 环境变量(.env) < 命令行参数。
func resolveConfig(cmd *cobra.Command, opts *cliOptions, getenv func(string) string) (app.Config, error) {
	dir := ""
	if opts.configPath != "" {
		dir = filepath.Dir(opts.configPath)
	}
	app.LoadEnvFiles(dir)

	cfg, err := app.LoadFile(app.DefaultConfig(), opts.configPath)
	if err != nil {
		return cfg, err
	}
	cfg, err = app.ApplyEnv(cfg, getenv)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("service") {
		cfg.ServiceURL = opts.service
	}
	if flags.Changed("chain") {
		cfg.ChainID = opts.chain
	}
	if flags.Changed("app") {
		cfg.AppID = opts.appID
	}
	if flags.Changed("timeout") {
		cfg.Timeout = opts.timeout
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("privacy-mode") {
		cfg.PrivacyMode = opts.privacyMode
	}
	if flags.Changed("escape-args") {
		cfg.EscapeArgs = opts.escapeArgs
	}

	if _, ok := privacy.ParseMode(cfg.PrivacyMode); !ok {
		return cfg, fmt.Errorf("invalid --privacy-mode: %s (expect off|masked)", cfg.PrivacyMode)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
			return nil
		},
	}
}
