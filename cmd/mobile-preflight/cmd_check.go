package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vertti/mobile-preflight/pkg/config"
	"github.com/vertti/mobile-preflight/pkg/envcheck"
	"github.com/vertti/mobile-preflight/pkg/logging"
	"github.com/vertti/mobile-preflight/pkg/output"
	"github.com/vertti/mobile-preflight/pkg/suite"
)

var (
	checkJSON    bool
	checkConfig  string
	checkEnvFile string
	checkNoColor bool
	checkVerbose bool
)

var checkCmd = &cobra.Command{
	Use:       "check [android|ios|all]",
	Short:     "Check mobile automation prerequisites",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(suite.Android), string(suite.IOS), string(suite.All)},
	RunE:      runCheckCmd,
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print a JSON report instead of text")
	checkCmd.Flags().StringVar(&checkConfig, "config", "", "config file (default: "+config.DefaultFile+" when present)")
	checkCmd.Flags().StringVar(&checkEnvFile, "env-file", "", ".env file filling unset variables")
	checkCmd.Flags().BoolVar(&checkNoColor, "no-color", false, "disable colored output")
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "log probe commands to stderr")
	rootCmd.AddCommand(checkCmd)
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	var selector string
	if len(args) > 0 {
		selector = args[0]
	}
	platform, err := suite.ParsePlatform(selector)
	if err != nil {
		return err
	}

	cfg, err := config.Load(checkConfig)
	if err != nil {
		return err
	}

	env := envGetter
	if checkEnvFile != "" {
		env, err = envcheck.NewFileEnvGetter(envGetter, checkEnvFile)
		if err != nil {
			return err
		}
	}

	logger := logging.New(cmd.ErrOrStderr(), logging.ForVerbosity(checkVerbose))

	var reporter output.Reporter
	if checkJSON {
		reporter = output.NewJSONReporter(cmd.OutOrStdout())
	} else {
		reporter = output.NewTextReporter(cmd.OutOrStdout(), output.ColorEnabled(checkNoColor))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := &suite.Suite{
		Platform: platform,
		Config:   cfg,
		Runner:   newRunner(logger),
		Env:      env,
		Stater:   fileStater,
		Files:    fileReader,
		Sys:      sysInfo,
		Reporter: reporter,
		Logger:   logger,
	}
	summary, err := s.Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if !summary.OK() {
		return ErrChecksFailed
	}
	return nil
}
