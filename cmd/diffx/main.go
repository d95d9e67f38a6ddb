package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boostgo/diffx"
)

var (
	flagConfig string
	flagLocal  bool

	flagOldHost     string
	flagOldPort     int
	flagOldUser     string
	flagOldPassword string
	flagOldRoot     string

	flagNewHost     string
	flagNewPort     int
	flagNewUser     string
	flagNewPassword string
	flagNewRoot     string

	flagSameServer bool

	flagIgnore      []string
	flagShowIgnored bool
	flagAllLines    bool
	flagOldLabel    string
	flagNewLabel    string
	flagOutput      string
)

var rootCmd = &cobra.Command{
	Use:   "diffx",
	Short: "Compare two folder trees line by line",
	Long: "diffx compares text files between an old and a new folder tree, " +
		"over SFTP or on the local filesystem, and writes a color-coded " +
		"Excel report of the differences.",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()

	flags.StringVar(&flagConfig, "config", "", "config file (default ~/.diffx/config.toml)")
	flags.BoolVar(&flagLocal, "local", false, "compare local directories instead of SFTP trees")

	flags.StringVar(&flagOldHost, "old-host", "", "old side SFTP host")
	flags.IntVar(&flagOldPort, "old-port", 22, "old side SFTP port")
	flags.StringVar(&flagOldUser, "old-user", "", "old side SFTP username")
	flags.StringVar(&flagOldPassword, "old-password", "", "old side SFTP password")
	flags.StringVar(&flagOldRoot, "old-root", "", "old side folder path")

	flags.StringVar(&flagNewHost, "new-host", "", "new side SFTP host")
	flags.IntVar(&flagNewPort, "new-port", 22, "new side SFTP port")
	flags.StringVar(&flagNewUser, "new-user", "", "new side SFTP username")
	flags.StringVar(&flagNewPassword, "new-password", "", "new side SFTP password")
	flags.StringVar(&flagNewRoot, "new-root", "", "new side folder path")

	flags.BoolVar(&flagSameServer, "same-server", false, "reuse the old side connection for the new side")

	flags.StringSliceVar(&flagIgnore, "ignore", nil, "glob patterns to exclude (default: common binary formats)")
	flags.BoolVar(&flagShowIgnored, "show-ignored", false, "include ignored paths in the result set")
	flags.BoolVar(&flagAllLines, "all-lines", false, "include unchanged lines in the Excel report")
	flags.StringVar(&flagOldLabel, "old-label", "", "label for the old version")
	flags.StringVar(&flagNewLabel, "new-label", "", "label for the new version")
	flags.StringVar(&flagOutput, "output", "comparison.xlsx", "output Excel file path")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagConfig, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	applyConfig(cmd, cfg)

	if flagOldRoot == "" || flagNewRoot == "" {
		return errors.New("both --old-root and --new-root are required")
	}

	oldTree, newTree, release, err := openTrees()
	if err != nil {
		return err
	}
	defer release()

	patterns := flagIgnore
	if len(patterns) == 0 {
		patterns = diffx.DefaultIgnorePatterns
	}
	ignore, err := diffx.NewIgnoreSet(patterns...)
	if err != nil {
		return err
	}

	options := []diffx.CompareOption{
		diffx.WithIgnoreSet(ignore),
		diffx.WithProgress(printProgress),
	}
	if !flagShowIgnored {
		options = append(options, diffx.WithHideIgnored())
	}

	results := diffx.CompareTrees(oldTree, newTree, flagOldRoot, flagNewRoot, options...)
	fmt.Fprintln(os.Stderr)

	summary := diffx.Summarize(results)
	fmt.Printf("Changed:          %d\n", summary.Changed)
	fmt.Printf("No differences:   %d\n", summary.NoDifferences)
	fmt.Printf("Only in old:      %d\n", summary.OnlyInOld)
	fmt.Printf("Only in new:      %d\n", summary.OnlyInNew)
	fmt.Printf("Unreadable:       %d\n", summary.Unreadable)
	fmt.Printf("Text files diffed: %d\n", summary.Diffed)

	reportOptions := []diffx.ReportOption{
		diffx.WithLabels(flagOldLabel, flagNewLabel),
	}
	if flagAllLines {
		reportOptions = append(reportOptions, diffx.WithAllLines())
	}

	report, err := diffx.ExcelReport(results, reportOptions...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(flagOutput, report, 0644); err != nil {
		return err
	}

	fmt.Printf("Report written to %s\n", flagOutput)
	return nil
}

// openTrees builds both comparison sides and returns a release func
// that closes whatever was opened, on every exit path
func openTrees() (diffx.Tree, diffx.Tree, func(), error) {
	if flagLocal {
		tree := diffx.LocalTree{}
		return tree, tree, func() {}, nil
	}

	oldTree, err := diffx.DialSFTP(flagOldHost, flagOldPort, flagOldUser, flagOldPassword)
	if err != nil {
		return nil, nil, nil, err
	}

	if flagSameServer {
		return oldTree, oldTree, func() { oldTree.Close() }, nil
	}

	newTree, err := diffx.DialSFTP(flagNewHost, flagNewPort, flagNewUser, flagNewPassword)
	if err != nil {
		oldTree.Close()
		return nil, nil, nil, err
	}

	release := func() {
		newTree.Close()
		oldTree.Close()
	}
	return oldTree, newTree, release, nil
}

// applyConfig fills in flags the user did not set from the config file
func applyConfig(cmd *cobra.Command, cfg Config) {
	setString(cmd, "old-host", &flagOldHost, cfg.Old.Host)
	setInt(cmd, "old-port", &flagOldPort, cfg.Old.Port)
	setString(cmd, "old-user", &flagOldUser, cfg.Old.User)
	setString(cmd, "old-password", &flagOldPassword, cfg.Old.Password)
	setString(cmd, "old-root", &flagOldRoot, cfg.Old.Root)

	setString(cmd, "new-host", &flagNewHost, cfg.New.Host)
	setInt(cmd, "new-port", &flagNewPort, cfg.New.Port)
	setString(cmd, "new-user", &flagNewUser, cfg.New.User)
	setString(cmd, "new-password", &flagNewPassword, cfg.New.Password)
	setString(cmd, "new-root", &flagNewRoot, cfg.New.Root)

	setString(cmd, "old-label", &flagOldLabel, cfg.OldLabel)
	setString(cmd, "new-label", &flagNewLabel, cfg.NewLabel)

	if !cmd.Flags().Changed("ignore") && len(cfg.Ignore) > 0 {
		flagIgnore = cfg.Ignore
	}
}

func setString(cmd *cobra.Command, name string, target *string, value string) {
	if !cmd.Flags().Changed(name) && value != "" {
		*target = value
	}
}

func setInt(cmd *cobra.Command, name string, target *int, value int) {
	if !cmd.Flags().Changed(name) && value != 0 {
		*target = value
	}
}

func printProgress(processed, total int, currentPath string) {
	fmt.Fprintf(os.Stderr, "\rProcessing %d/%d: %s", processed, total, currentPath)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
