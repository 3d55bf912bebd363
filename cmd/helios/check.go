package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"helios/internal/diag"
	"helios/internal/diagfmt"
	"helios/internal/driver"
	"helios/internal/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.sol|directory>",
	Short: "Check Solidity sources and report diagnostics",
	Long:  `Check loads the given file or every *.sol file within a directory, runs source analyses and prints the resulting diagnostics`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().String("ui", "auto", "interactive progress display (auto|on|off)")
	checkCmd.Flags().Bool("disk-cache", false, "enable persistent disk cache for check results")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("no-warnings", false, "ignore warnings in diagnostics")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := parseProgressMode(uiFlag)
	if err != nil {
		return err
	}
	diskCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if quiet {
		// Errors only, no notes, no interactive progress.
		noWarnings = true
		withNotes = false
		mode = progressNever
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	startDir := path
	if !st.IsDir() {
		startDir = "."
	}
	manifest, _, err := project.FindAndLoad(startDir)
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	if manifest != nil {
		if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && manifest.Config.Diagnostics.Max > 0 {
			maxDiagnostics = manifest.Config.Diagnostics.Max
		}
		if manifest.Config.Diagnostics.NoWarnings {
			noWarnings = true
		}
	}

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Manifest:       manifest,
	}
	if diskCache {
		cache, err := driver.OpenDiskCache("helios")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
		opts.Cache = cache
	}

	var results []driver.FileResult
	if st.IsDir() {
		if wantProgressUI(mode) && format == "pretty" {
			files, listErr := driver.ListSourceFiles(path, manifest)
			if listErr != nil {
				return listErr
			}
			results, err = runCheckDirWithUI(cmd.Context(), "checking "+path, path, files, opts)
		} else {
			results, err = driver.CheckDir(cmd.Context(), path, opts)
		}
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
	} else {
		res, checkErr := driver.CheckFile(path, opts)
		if checkErr != nil && res.Sess == nil {
			return fmt.Errorf("check failed: %w", checkErr)
		}
		results = []driver.FileResult{res}
	}

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	prettyOpts := diagfmt.PrettyOpts{
		Color:     useColor(colorFlag, os.Stdout),
		PathMode:  pathMode,
		ShowNotes: withNotes,
		Snippet:   true,
	}
	jsonOpts := diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         pathMode,
		IncludeNotes:     withNotes,
	}

	for _, r := range results {
		if r.Sess == nil {
			continue
		}
		bag := r.Sess.Diags
		if noWarnings {
			bag = bag.FilterMin(diag.SevError)
		}
		if bag.Len() == 0 && !bag.HasErrors() {
			continue
		}
		switch format {
		case "json":
			if err := diagfmt.JSON(os.Stdout, bag, r.Sess.Sources, jsonOpts); err != nil {
				return fmt.Errorf("failed to encode diagnostics: %w", err)
			}
		default:
			diagfmt.Pretty(os.Stdout, bag, r.Sess.Sources, prettyOpts)
		}
	}

	if driver.ExitCode(results) != 0 {
		// Suppress cobra usage output on diagnostic errors; the
		// diagnostics were already printed.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}
