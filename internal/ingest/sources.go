package ingest

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/mkarev/whichmore/internal/model"
	"github.com/mkarev/whichmore/internal/source"
	"github.com/mkarev/whichmore/internal/worker"
)

// epaAQI is the EPA AirData annual AQI-by-county download URL
const epaAQI = "https://aqs.epa.gov/aqsweb/airdata/annual_aqi_by_county_%d.csv"

var yearPattern = regexp.MustCompile(`20\d{2}`)

// DownloadJob fetches one remote source file into the local sources tree
type DownloadJob struct {
	Fetcher *Fetcher
	URL     string
	Dest    string
}

// Execute runs the download
func (j *DownloadJob) Execute(ctx context.Context) worker.Result {
	return &DownloadResult{URL: j.URL, Err: j.Fetcher.Download(ctx, j.URL, j.Dest)}
}

// DownloadResult reports one download outcome
type DownloadResult struct {
	URL string
	Err error
}

// GetError returns the download error, if any
func (r *DownloadResult) GetError() error { return r.Err }

// DownloadAll retrieves the remote datasets (EPA AQI files, Census BPS place
// files) into the sources tree. Downloads run in parallel and are strictly
// best-effort: a failed source is warned about and contributes zero facts.
func DownloadAll(ctx context.Context, f *Fetcher, cfg *model.Config) {
	pool := worker.NewPool(cfg.Concurrency.DownloadWorkers)
	pool.Start(ctx)

	for _, year := range cfg.Sources.AirYears {
		name := fmt.Sprintf("annual_aqi_by_county_%d.csv", year)
		pool.Submit(&DownloadJob{
			Fetcher: f,
			URL:     fmt.Sprintf(epaAQI, year),
			Dest:    filepath.Join(cfg.Sources.Dir, "air", name),
		})
	}

	discovered := make(map[string]bool)
	for _, year := range cfg.Sources.BPSYears {
		urls, err := DiscoverPlaceCSVs(ctx, f, year)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: BPS listing failed for %d: %v\n", year, err)
			continue
		}
		for _, u := range urls {
			if discovered[u] {
				continue
			}
			discovered[u] = true
			pool.Submit(&DownloadJob{
				Fetcher: f,
				URL:     u,
				Dest:    filepath.Join(cfg.Sources.Dir, "bps", filepath.Base(u)),
			})
		}
	}

	for _, res := range pool.Wait() {
		if err := res.GetError(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: download failed: %v\n", err)
		}
	}
}

// LoadFacts reads every source family from the local tree and normalizes it.
// Population facts are returned separately because they feed the city
// allowlist. A missing family directory simply yields zero facts.
func LoadFacts(cfg *model.Config, verbose bool) (factSets [][]model.Fact, population []model.Fact) {
	dir := cfg.Sources.Dir

	// Per-file normalizers: the year rides on the filename.
	factSets = append(factSets, loadFamily(filepath.Join(dir, "bps"), verbose, func(name string) source.Normalizer {
		return source.Permits{YearGuess: yearFromFilename(name)}
	}))
	factSets = append(factSets, loadFamily(filepath.Join(dir, "air"), verbose, func(name string) source.Normalizer {
		year := yearFromFilename(name)
		if year == 0 {
			return nil
		}
		return source.AirQuality{Year: year}
	}))

	population = loadFamily(filepath.Join(dir, "pop"), verbose, fixed(source.Population{}))
	factSets = append(factSets, population)

	for _, family := range []struct {
		sub  string
		norm source.Normalizer
	}{
		{"libraries", source.Libraries{}},
		{"transit", source.Transit{}},
		{"nps", source.Parks{}},
		{"crime", source.Crime{}},
		{"housing", source.Housing{}},
		{"economics", source.Economics()},
		{"education", source.Education()},
		{"health", source.Health()},
		{"transportation", source.Transportation()},
		{"government", source.Government()},
		{"agriculture", source.Agriculture()},
		{"culture", source.Culture()},
	} {
		factSets = append(factSets, loadFamily(filepath.Join(dir, family.sub), verbose, fixed(family.norm)))
	}
	return factSets, population
}

func fixed(n source.Normalizer) func(string) source.Normalizer {
	return func(string) source.Normalizer { return n }
}

// loadFamily normalizes every CSV file in one family directory. File-level
// failures are warned about, never fatal.
func loadFamily(dir string, verbose bool, pick func(filename string) source.Normalizer) []model.Fact {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var facts []model.Fact
	files := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(name), ".csv") {
			continue
		}
		norm := pick(name)
		if norm == nil {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: read %s: %v\n", name, err)
			continue
		}
		// Upstream servers sometimes answer 200 with an HTML error page
		if source.LooksLikeHTML(data) {
			continue
		}

		rows, err := source.ReadRows(bytes.NewReader(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: parse %s: %v\n", name, err)
			continue
		}
		facts = append(facts, norm.Normalize(rows)...)
		files++
	}

	if verbose && files > 0 {
		fmt.Fprintf(os.Stderr, "✓ %s: %d facts from %d files\n", filepath.Base(dir), len(facts), files)
	}
	return facts
}

// yearFromFilename extracts a 20xx year embedded in a source filename,
// returning 0 when none is present.
func yearFromFilename(name string) int {
	match := yearPattern.FindString(name)
	if match == "" {
		return 0
	}
	year, _ := strconv.Atoi(match)
	return year
}
