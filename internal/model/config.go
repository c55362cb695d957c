package model

import (
	"path/filepath"
	"time"
)

// Config holds the complete pipeline configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Sources     SourcesConfig     `yaml:"sources" mapstructure:"sources"`
	Generator   GeneratorConfig   `yaml:"generator" mapstructure:"generator"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
}

// HTTPConfig controls source downloads
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
}

// CacheConfig controls the layered download cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir     string        `yaml:"dir" mapstructure:"dir"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ConcurrencyConfig controls parallel source retrieval. Normalization itself
// is sequential; only downloads run concurrently.
type ConcurrencyConfig struct {
	DownloadWorkers   int     `yaml:"download_workers" mapstructure:"download_workers"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// SourcesConfig locates the source CSV tree and the remote datasets
type SourcesConfig struct {
	Dir      string `yaml:"dir" mapstructure:"dir"`
	Download bool   `yaml:"download" mapstructure:"download"`
	BPSYears []int  `yaml:"bps_years" mapstructure:"bps_years"`
	AirYears []int  `yaml:"air_years" mapstructure:"air_years"`
}

// GeneratorConfig controls question pair generation
type GeneratorConfig struct {
	MaxAttemptsPerGroup int     `yaml:"max_attempts_per_group" mapstructure:"max_attempts_per_group"`
	MinCityPopulation   float64 `yaml:"min_city_population" mapstructure:"min_city_population"`
	Seed                int64   `yaml:"seed" mapstructure:"seed"` // 0 = seed from time
}

// OutputConfig locates the JSON artifacts
type OutputConfig struct {
	FactsPath string `yaml:"facts_path" mapstructure:"facts_path"`
	PoolPath  string `yaml:"pool_path" mapstructure:"pool_path"`
	Verbose   bool   `yaml:"verbose" mapstructure:"verbose"`
}

// LLMConfig configures the optional post-run dataset digest.
// The digest never touches facts or questions.
type LLMConfig struct {
	Provider string `yaml:"provider" mapstructure:"provider"` // "" = disabled
	Model    string `yaml:"model" mapstructure:"model"`
	APIKey   string `yaml:"-" mapstructure:"api_key"`
	BaseURL  string `yaml:"base_url" mapstructure:"base_url"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      2 * time.Minute,
			UserAgent:    "whichmore/0.1 (+https://github.com/mkarev/whichmore)",
			MaxBodyBytes: 50_000_000,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     filepath.Join(".whichmore", "cache"),
			TTL:     24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			DownloadWorkers:   4,
			RequestsPerSecond: 2,
			Burst:             4,
		},
		Sources: SourcesConfig{
			Dir:      filepath.Join("data", "sources"),
			Download: true,
			BPSYears: []int{2025, 2024, 2023, 2022, 2021, 2020, 2019},
			AirYears: []int{2024, 2023, 2020},
		},
		Generator: GeneratorConfig{
			MaxAttemptsPerGroup: 200000,
			MinCityPopulation:   100000,
		},
		Output: OutputConfig{
			FactsPath: filepath.Join("data", "metrics", "facts.json"),
			PoolPath:  filepath.Join("data", "questions", "pool.json"),
		},
	}
}
