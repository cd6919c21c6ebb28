// Package main provides the entry point for the templet CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dongho-jung/templet/internal/config"
	"github.com/dongho-jung/templet/internal/constants"
	"github.com/dongho-jung/templet/internal/logging"
	"github.com/dongho-jung/templet/internal/service"
	"github.com/dongho-jung/templet/internal/store"
	"github.com/dongho-jung/templet/internal/tui"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"
	// Commit is the git commit hash, set at build time via ldflags
	Commit = "unknown"
)

func main() {
	initLogging()
	defer logging.Global().Close()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogging routes logs to TEMPLET_LOG when set; stderr-only otherwise.
func initLogging() {
	debug := os.Getenv(constants.EnvDebug) == "1"
	if path := os.Getenv(constants.EnvLogFile); path != "" {
		if logger, err := logging.New(path, debug); err == nil {
			logging.SetGlobal(logger)
		}
	}
}

var rootCmd = &cobra.Command{
	Use:   "templet",
	Short: "templet - copy text templates into the current directory",
	Long: `templet lists the templates in your template directory
(~/Documents/templet by default), lets you pick one interactively, and
copies it into the current working directory. Markdown and plain-text
templates get a generated header with the template name and timestamp.`,
	RunE:          runMain,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	showVersion    bool
	flagDir        string
	flagForce      bool
	flagPlain      bool
	flagDatePrefix bool
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Print version information")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "Template directory (default ~/Documents/templet, or TEMPLET_DIR)")
	rootCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing destination file")
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, "Never prepend the generated header")
	rootCmd.Flags().BoolVar(&flagDatePrefix, "date-prefix", false, "Prefix the destination name with today's date")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion()
	},
}

func printVersion() {
	fmt.Printf("templet %s (%s)\n", Version, Commit)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print template names without the interactive picker",
	RunE:  runList,
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the template directory",
	RunE:  runSetup,
}

// runMain runs the selection loop and copies the chosen template.
func runMain(cmd *cobra.Command, args []string) error {
	if showVersion {
		printVersion()
		return nil
	}

	cfg, err := config.Resolve(flagDir)
	if err != nil {
		return err
	}

	st := store.New(cfg.TemplateDir)
	entries, err := st.List()
	if err != nil {
		if errors.Is(err, store.ErrStoreUnavailable) {
			return fmt.Errorf("template directory %s is not available (run 'templet setup' to create it)", cfg.TemplateDir)
		}
		return err
	}

	action, entry, err := tui.RunPicker(entries, st.Dir(), cfg.Theme, st.Read)
	if err != nil {
		return fmt.Errorf("selection failed: %w", err)
	}
	if action == tui.PickCancel {
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	copier := service.NewCopier(st, cwd)
	name, err := copier.Copy(*entry, service.Options{
		Plain:      flagPlain || action == tui.PickCopyPlain,
		Force:      flagForce,
		DatePrefix: flagDatePrefix,
	})
	if err != nil {
		if errors.Is(err, service.ErrDestinationConflict) {
			return fmt.Errorf("%s already exists in the current directory (use --force to overwrite)", entry.Name)
		}
		return err
	}

	fmt.Printf("✓ Created: %s\n", name)
	return nil
}

// runList prints template names, one per line, for scripting.
func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(flagDir)
	if err != nil {
		return err
	}

	entries, err := store.New(cfg.TemplateDir).List()
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Println(e.Name)
	}
	return nil
}

// runSetup creates the template directory.
func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(flagDir)
	if err != nil {
		return err
	}

	st := store.New(cfg.TemplateDir)
	if err := st.Setup(); err != nil {
		return err
	}

	fmt.Printf("Template directory ready: %s\n", st.Dir())
	return nil
}
