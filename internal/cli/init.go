package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/paths"
	"github.com/sweengineeringlabs/eprocurement-sub002/pkg/types"
)

// initResult is the --json output of init.
type initResult struct {
	ConfigFile    string         `json:"config_file"`
	ConfigWritten bool           `json:"config_written"`
	DataDir       string         `json:"data_dir"`
	Records       map[string]int `json:"records"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize eproc configuration and data",
		Long: "Create the configuration and data directories, write a default config.yaml\n" +
			"if none exists, and seed any missing feature data files.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	dataDir, err := a.dataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.configDir, 0o755); err != nil {
		return systemError(fmt.Errorf("create config directory: %w", err))
	}
	configPath := paths.ConfigFile(a.configDir)
	written, err := writeConfigIfMissing(configPath, dataDir)
	if err != nil {
		return systemError(fmt.Errorf("write config: %w", err))
	}

	backend, err := a.attach(cmd.Context())
	if err != nil {
		return err
	}
	counts, err := countRecords(cmd.Context(), backend)
	if derr := backend.Detach(); derr != nil && err == nil {
		err = systemError(fmt.Errorf("finalize storage: %w", derr))
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		return writeJSON(out, initResult{
			ConfigFile:    configPath,
			ConfigWritten: written,
			DataDir:       backend.DataDir(),
			Records:       counts,
		})
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	fmt.Fprintf(out, "Config: %s\n", configPath)
	fmt.Fprintf(out, "Data:   %s\n", backend.DataDir())
	fmt.Fprintf(out, "eproc initialized with %s records across %d features\n", humanize.Comma(int64(total)), len(counts))
	return nil
}

// countRecords counts the records in every feature table.
func countRecords(ctx context.Context, c types.Cupboard) (map[string]int, error) {
	counts := make(map[string]int, len(types.StandardTableNames))
	for _, name := range types.StandardTableNames {
		t, err := c.GetTable(name)
		if err != nil {
			return nil, systemError(fmt.Errorf("get table %s: %w", name, err))
		}
		rows, err := t.Fetch(ctx, nil)
		if err != nil {
			return nil, systemError(fmt.Errorf("count %s: %w", name, err))
		}
		counts[name] = len(rows)
	}
	return counts, nil
}
