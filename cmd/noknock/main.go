// Package main provides the NoKnock CLI entry point.
// NoKnock keeps caregivers' patient, next-of-kin and caring-session records.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"noknock/internal/config"
	"noknock/internal/logger"
	"noknock/internal/output"
	"noknock/internal/shell"
	"noknock/internal/version"
)

var (
	configFile string
	cfg        *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "noknock",
	Short: "NoKnock - caregiver records for patients, next-of-kin and caring sessions",
	Long: `NoKnock keeps track of patients, their next-of-kin and scheduled caring sessions.
Records are kept in a local data file and saved after every change.`,
	Version:           version.GetVersion(),
	PersistentPreRunE: loadConfig,
	RunE:              runShell, // Default behavior is to run the interactive shell
	SilenceUsage:      true,
}

// shellCmd represents the shell command (explicit version of default behavior)
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start interactive shell mode",
	RunE:  runShell,
}

// batchCmd runs a script of commands without entering interactive mode
var batchCmd = &cobra.Command{
	Use:   "batch <script.nok>",
	Short: "Execute a .nok script file in batch mode",
	Long: `Execute one NoKnock command per line of a .nok script.
Blank lines and lines starting with # are skipped. Failed commands are reported
and the script continues; exit stops it. The exit status is non-zero if any
command failed.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		detailed, err := cmd.Flags().GetBool("detailed")
		if err != nil {
			return err
		}
		if detailed {
			fmt.Println(version.GetDetailedVersion())
			return nil
		}
		fmt.Println(version.GetFormattedVersion())
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		output.Error(err.Error())
		logger.Fatal("NoKnock stopped", "error", err)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default: ./noknock.yaml or <user config dir>/noknock/noknock.yaml)")
	flags.String(config.KeyDataFile, "", "Patient data file (.json, .yaml or .yml)")
	flags.Bool(config.KeyAutosave, true, "Save the data file after every change")
	flags.String(config.KeyLogLevel, "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String(config.KeyLogFile, "", "Write logs to file instead of stderr")
	flags.Bool(config.KeyTestMode, false, "Run in deterministic test mode")
	flags.String(config.KeyExportDir, "", "Directory for exported workbooks")
	flags.String(config.KeyStyle, "", "Output style (auto|plain|styled|json)")
	flags.String(config.KeyTheme, "", "Colour theme (default|dark|light|plain)")

	versionCmd.Flags().Bool("detailed", false, "Show detailed build information")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration and configures the logger before any
// subcommand runs.
func loadConfig(cmd *cobra.Command, _ []string) error {
	if cmd == versionCmd {
		return nil
	}

	loaded, err := config.Load(config.Options{
		Flags:      cmd.Flags(),
		ConfigFile: configFile,
	})
	if err != nil {
		return err
	}
	if err := logger.Configure(loaded.LogLevel, loaded.LogFile, loaded.TestMode); err != nil {
		return fmt.Errorf("error configuring logger: %w", err)
	}
	if loaded.Source != "" {
		logger.Debug("Loaded config file", "file", loaded.Source)
	}
	if err := version.ValidateVersion(); err != nil {
		logger.Warn("Build carries an invalid version", "error", err)
	}
	cfg = loaded
	return nil
}

func newApp(dashboard bool) (*shell.App, error) {
	printer, err := shell.NewPrinter(cfg, os.Stdout)
	if err != nil {
		return nil, err
	}
	output.SetGlobalPrinter(printer)

	return shell.NewApp(shell.AppOptions{
		Config:    cfg,
		Printer:   printer,
		Sink:      logger.NewStyledLogger("Shell"),
		Dashboard: dashboard,
	})
}

func runShell(_ *cobra.Command, _ []string) error {
	logger.Info("Starting NoKnock", "version", version.GetVersion())

	app, err := newApp(true)
	if err != nil {
		return err
	}
	defer app.Close()

	repl := shell.NewREPL(app.Executor)
	repl.Run(fmt.Sprintf("%s\nType 'help' for commands or 'exit' to quit.", version.GetFormattedVersion()))
	return nil
}

func runBatch(_ *cobra.Command, args []string) error {
	scriptPath := args[0]
	logger.Info("Starting NoKnock batch mode", "version", version.GetVersion(), "script", scriptPath)

	if err := validateScriptFile(scriptPath); err != nil {
		return err
	}

	app, err := newApp(false)
	if err != nil {
		return err
	}
	defer app.Close()

	report, err := app.Executor.RunScriptFile(scriptPath)
	if err != nil {
		return err
	}
	if err := report.Err(); err != nil {
		logger.Error("Batch run had failures", "script", scriptPath, "failed", report.Failed, "executed", report.Executed)
		return err
	}
	return nil
}

func validateScriptFile(scriptPath string) error {
	if _, err := os.Stat(scriptPath); os.IsNotExist(err) {
		return fmt.Errorf("script file does not exist: %s", scriptPath)
	}
	if ext := filepath.Ext(scriptPath); ext != ".nok" {
		return fmt.Errorf("script file must have .nok extension, got: %s", ext)
	}
	return nil
}
