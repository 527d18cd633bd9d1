package model

import "time"

// Config is the single injectable configuration shared by all engines.
// Jurisdictional numbers live only here so a rule change is a config change.
type Config struct {
	Eligibility EligibilityConfig `yaml:"eligibility" mapstructure:"eligibility"`
	Scoring     ScoringConfig     `yaml:"scoring" mapstructure:"scoring"`
	Store       StoreConfig       `yaml:"store" mapstructure:"store"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
}

// EligibilityConfig holds the jurisdictional gate parameters.
//
// The small-claims monetary cap has drifted between published revisions
// (38,800 vs 87,600 NIS). 38,800 is the default pending product
// confirmation; override via config file or CLAIMREADY_ELIGIBILITY_* env.
type EligibilityConfig struct {
	MaxAmountNIS float64         `yaml:"max_amount_nis" mapstructure:"max_amount_nis"`
	Categories   []ClaimCategory `yaml:"categories" mapstructure:"categories"`
}

// Supports reports whether the category is accepted for small claims.
func (c EligibilityConfig) Supports(cat ClaimCategory) bool {
	for _, s := range c.Categories {
		if s == cat {
			return true
		}
	}
	return false
}

// ScoringConfig holds the saturation targets and tier cut points.
type ScoringConfig struct {
	EvidenceTarget int `yaml:"evidence_target" mapstructure:"evidence_target"` // Items that saturate the evidence cap
	TimelineTarget int `yaml:"timeline_target" mapstructure:"timeline_target"` // Entries that saturate the timeline cap

	StrongMin int `yaml:"strong_min" mapstructure:"strong_min"` // Readiness >= this -> strong
	MediumMin int `yaml:"medium_min" mapstructure:"medium_min"` // Readiness >= this -> medium
}

// StoreConfig holds graph persistence settings.
type StoreConfig struct {
	Dir          string        `yaml:"dir" mapstructure:"dir"` // Directory of graph documents
	CacheEnabled bool          `yaml:"cache_enabled" mapstructure:"cache_enabled"`
	CacheTTL     time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`
}

// ConcurrencyConfig holds batch processing settings.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig holds report rendering settings.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// LLMConfig holds the optional narrative generator settings.
type LLMConfig struct {
	Provider      string `yaml:"provider" mapstructure:"provider"` // "openai" or "" (disabled)
	Model         string `yaml:"model" mapstructure:"model"`
	APIKey        string `yaml:"-" mapstructure:"-"` // From environment only
	BaseURL       string `yaml:"base_url" mapstructure:"base_url"`
	Timeout       int    `yaml:"timeout" mapstructure:"timeout"` // Seconds
	MaxTokens     int    `yaml:"max_tokens" mapstructure:"max_tokens"`
	RatePerMinute int    `yaml:"rate_per_minute" mapstructure:"rate_per_minute"` // Batch throttle
}

// DefaultConfig returns the built-in defaults. CLI flags and config files
// override individual fields.
func DefaultConfig() Config {
	return Config{
		Eligibility: EligibilityConfig{
			MaxAmountNIS: 38_800,
			Categories: []ClaimCategory{
				CategoryConsumer,
				CategoryContract,
				CategoryServices,
				CategoryProperty,
				CategoryNeighbors,
				CategoryRental,
			},
		},
		Scoring: ScoringConfig{
			EvidenceTarget: 3,
			TimelineTarget: 2,
			StrongMin:      80,
			MediumMin:      50,
		},
		Store: StoreConfig{
			Dir:          "claimready-graphs",
			CacheEnabled: true,
			CacheTTL:     10 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:      "",
			Timeout:       30,
			MaxTokens:     1000,
			RatePerMinute: 30,
		},
	}
}
