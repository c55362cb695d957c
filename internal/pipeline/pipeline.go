package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/mkarev/whichmore/internal/generate"
	"github.com/mkarev/whichmore/internal/ingest"
	"github.com/mkarev/whichmore/internal/llm"
	"github.com/mkarev/whichmore/internal/model"
)

// Pipeline orchestrates one build run: download sources, normalize, filter,
// generate questions, write artifacts.
type Pipeline struct {
	cfg       *model.Config
	fetcher   *ingest.Fetcher
	generator *generate.Generator
	renderer  *Renderer
	digester  *llm.Digester // nil when disabled
}

// New creates a pipeline from the given configuration
func New(cfg *model.Config) *Pipeline {
	seed := cfg.Generator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var digester *llm.Digester
	if cfg.LLM.Provider != "" {
		d, err := llm.NewDigester(cfg.LLM)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM digest disabled: %v\n", err)
		} else {
			digester = d
		}
	}

	return &Pipeline{
		cfg:       cfg,
		fetcher:   ingest.NewFetcher(cfg),
		generator: generate.NewGenerator(rand.New(rand.NewSource(seed)), cfg.Generator.MaxAttemptsPerGroup),
		renderer:  NewRenderer(cfg.Output.Verbose),
		digester:  digester,
	}
}

// RunResult summarizes one completed build
type RunResult struct {
	Facts      int
	Questions  int
	Categories map[string]int
	Digest     string // optional LLM digest markdown
}

// Run executes the full pipeline. Only artifact-write failures are fatal;
// every per-source problem degrades to zero facts from that source.
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	if p.cfg.Sources.Download {
		ingest.DownloadAll(ctx, p.fetcher, p.cfg)
	}

	factSets, popFacts := ingest.LoadFacts(p.cfg, p.cfg.Output.Verbose)

	allow := generate.BuildAllowlist(popFacts, p.cfg.Generator.MinCityPopulation)
	facts := generate.Aggregate(allow, factSets...)

	if err := p.renderer.WriteFacts(facts, p.cfg.Output.FactsPath); err != nil {
		return nil, fmt.Errorf("write facts: %w", err)
	}

	questions := p.generator.Questions(facts)
	if err := p.renderer.WritePool(questions, p.cfg.Output.PoolPath); err != nil {
		return nil, fmt.Errorf("write pool: %w", err)
	}

	result := &RunResult{
		Facts:      len(facts),
		Questions:  len(questions),
		Categories: make(map[string]int),
	}
	for _, q := range questions {
		result.Categories[q.Category]++
	}

	// Optional digest, generated after the artifacts are final so it can
	// never influence them.
	if p.digester != nil {
		digest, err := p.digester.Summarize(ctx, llm.Stats{
			Facts:      result.Facts,
			Questions:  result.Questions,
			Categories: result.Categories,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM digest failed: %v\n", err)
		} else {
			result.Digest = digest
		}
	}

	return result, nil
}
