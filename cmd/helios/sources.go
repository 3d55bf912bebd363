package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"helios/internal/driver"
	"helios/internal/project"
	"helios/internal/session"
	"helios/internal/source"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources [flags] <file.sol|directory>",
	Short: "List the source files a check run would load",
	Long:  `Sources loads the given file or directory into a source map and prints per-file facts: size, line count, content hash and load normalizations`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSources,
}

func init() {
	sourcesCmd.Flags().Bool("hashes", false, "include content hashes")
}

func runSources(cmd *cobra.Command, args []string) error {
	path := args[0]

	showHashes, err := cmd.Flags().GetBool("hashes")
	if err != nil {
		return fmt.Errorf("failed to get hashes flag: %w", err)
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	var files []string
	if st.IsDir() {
		manifest, _, err := project.FindAndLoad(path)
		if err != nil {
			return fmt.Errorf("manifest: %w", err)
		}
		files, err = driver.ListSourceFiles(path, manifest)
		if err != nil {
			return err
		}
	} else {
		files = []string{path}
	}

	runErr, enterErr := session.Enter(func(s *session.Session) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		defer func() { _ = w.Flush() }()

		for _, path := range files {
			f, err := s.Sources.LoadFile(path)
			if err != nil {
				fmt.Fprintf(w, "%s\t-\t-\tunreadable: %v\n", path, err)
				continue
			}
			row := fmt.Sprintf("%s\t%d bytes\t%d lines\t%s", f.Name, f.Size(), f.LineCount(), flagNames(f.Flags))
			if showHashes {
				row += "\t" + hex.EncodeToString(f.Hash[:8])
			}
			fmt.Fprintln(w, row)
		}
		return nil
	})
	if enterErr != nil {
		return enterErr
	}
	return runErr
}

func flagNames(flags source.FileFlags) string {
	var parts []string
	if flags&source.FileVirtual != 0 {
		parts = append(parts, "virtual")
	}
	if flags&source.FileHadBOM != 0 {
		parts = append(parts, "bom")
	}
	if flags&source.FileTranscodedUTF16 != 0 {
		parts = append(parts, "utf16")
	}
	if flags&source.FileNormalizedCRLF != 0 {
		parts = append(parts, "crlf")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}
