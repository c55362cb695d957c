package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mkarev/whichmore/internal/ingest"
	"github.com/mkarev/whichmore/internal/model"
	"github.com/spf13/cobra"
)

var (
	fetchDir     string
	fetchTimeout time.Duration
	fetchWorkers int
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download remote source CSVs without building",
	Long: `Fetch retrieves the remote datasets into the local sources tree:
EPA annual AQI files and Census Building Permits Survey place files
discovered from the year directory listings.

Downloads are best-effort: a failed file is warned about and skipped.

Example:
  whichmore fetch
  whichmore fetch --sources-dir ./data/sources --workers 8`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	defaults := model.DefaultConfig()
	fetchCmd.Flags().StringVar(&fetchDir, "sources-dir", defaults.Sources.Dir, "source CSV tree")
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 15*time.Minute, "overall fetch timeout")
	fetchCmd.Flags().IntVar(&fetchWorkers, "workers", defaults.Concurrency.DownloadWorkers, "number of concurrent downloads")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Sources.Dir = fetchDir
	cfg.Concurrency.DownloadWorkers = fetchWorkers

	if verbose {
		fmt.Fprintf(os.Stderr, "Fetching sources into %s\n", cfg.Sources.Dir)
	}

	ingest.DownloadAll(ctx, ingest.NewFetcher(cfg), cfg)
	fmt.Printf("✓ Sources fetched into %s\n", cfg.Sources.Dir)
	return nil
}
