package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/calder-systems/pygrade/internal/config"
	"github.com/calder-systems/pygrade/internal/pysrc"
)

var filesCmd = &cobra.Command{
	Use:   "files <directory>",
	Short: "List the files an analysis would cover",
	Args:  cobra.ExactArgs(1),
	RunE:  runFiles,
}

func init() {
	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	root, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	files, err := pysrc.Discover(root, cfg.OutputDir, cfg.Extensions, cfg.ExcludeDirs)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(files)
	}
	for _, f := range files {
		fmt.Println(f)
	}
	fmt.Fprintf(os.Stderr, "%d files\n", len(files))
	return nil
}
