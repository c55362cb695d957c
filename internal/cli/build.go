package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mkarev/whichmore/internal/model"
	"github.com/mkarev/whichmore/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	sourcesDir   string
	factsPath    string
	poolPath     string
	offline      bool
	noCache      bool
	seed         int64
	maxAttempts  int
	minCityPop   float64
	buildTimeout time.Duration
	userAgent    string
	llmEnabled   bool
	llmModel     string
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the full pipeline and write facts.json + pool.json",
	Long: `Build runs the complete pipeline:
- Download remote sources (EPA air quality, Census building permits) unless --offline
- Normalize every source family under the sources directory into facts
- Filter city facts through the recognizable-city allowlist
- Generate a deduplicated question pool by bounded random pairing
- Write facts.json and pool.json, fully replacing prior output

Example:
  whichmore build
  whichmore build --offline --sources-dir ./data/sources
  whichmore build --seed 42 --min-city-pop 250000
  whichmore build --llm --llm-model gpt-4o-mini`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	defaults := model.DefaultConfig()

	buildCmd.Flags().StringVar(&sourcesDir, "sources-dir", defaults.Sources.Dir, "source CSV tree")
	buildCmd.Flags().StringVar(&factsPath, "facts", defaults.Output.FactsPath, "facts.json output path")
	buildCmd.Flags().StringVar(&poolPath, "pool", defaults.Output.PoolPath, "pool.json output path")
	buildCmd.Flags().BoolVar(&offline, "offline", false, "skip remote downloads, use local sources only")
	buildCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the download cache")
	buildCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible pools (0 = time-based)")
	buildCmd.Flags().IntVar(&maxAttempts, "attempts", defaults.Generator.MaxAttemptsPerGroup, "max pairing attempts per metric/year group")
	buildCmd.Flags().Float64Var(&minCityPop, "min-city-pop", defaults.Generator.MinCityPopulation, "population threshold for the city allowlist")
	buildCmd.Flags().DurationVar(&buildTimeout, "timeout", 15*time.Minute, "overall build timeout")
	buildCmd.Flags().StringVar(&userAgent, "ua", defaults.HTTP.UserAgent, "HTTP User-Agent")

	buildCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate an LLM digest of the run (requires OPENAI_API_KEY)")
	buildCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), buildTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Sources.Dir = sourcesDir
	cfg.Sources.Download = !offline
	cfg.Output.FactsPath = factsPath
	cfg.Output.PoolPath = poolPath
	cfg.Output.Verbose = verbose
	cfg.Cache.Enabled = !noCache
	cfg.Generator.Seed = seed
	cfg.Generator.MaxAttemptsPerGroup = maxAttempts
	cfg.Generator.MinCityPopulation = minCityPop
	cfg.HTTP.UserAgent = userAgent

	if llmEnabled {
		cfg.LLM.Provider = "openai"
		cfg.LLM.Model = llmModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Sources:  %s\n", cfg.Sources.Dir)
		fmt.Fprintf(os.Stderr, "Download: %v\n", cfg.Sources.Download)
		fmt.Fprintf(os.Stderr, "Cache:    %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.New(cfg)
	result, err := p.Run(ctx)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	pipeline.NewRenderer(verbose).RenderSummary(result)

	if result.Digest != "" {
		fmt.Println()
		fmt.Println(result.Digest)
	}
	return nil
}
