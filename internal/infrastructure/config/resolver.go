package config

import "time"

// ResolverConfig holds location lookup settings
type ResolverConfig struct {
	// Quiet period a keystroke burst must outlast before the last query is
	// sent to the search endpoint
	Debounce time.Duration `mapstructure:"debounce"`

	// Shortest query that may reach the network
	MinQueryLength int `mapstructure:"min_query_length" validate:"min=1"`
}

// QuotingConfig holds rate fetching and ranking settings
type QuotingConfig struct {
	// Default ranking mode when none is requested: cheapest, fastest, best
	DefaultRankMode string `mapstructure:"default_rank_mode" validate:"omitempty,oneof=cheapest fastest best greenest"`

	// Carrier allowlist applied to every fetch; empty admits all carriers
	Carriers []string `mapstructure:"carriers"`

	// Transit day ceiling applied to every fetch; zero disables it
	MaxTransitDays int `mapstructure:"max_transit_days" validate:"min=0"`
}
