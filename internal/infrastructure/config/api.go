package config

import "time"

// APIConfig holds freight backend client configuration
type APIConfig struct {
	// Base URL for the freight pricing backend
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// Optional API key sent as a bearer token
	APIKey string `mapstructure:"api_key"`

	// Rate limiting settings
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Request timeout
	Timeout time.Duration `mapstructure:"timeout" validate:"required"`

	// Retry configuration for idempotent requests. Booking submissions are
	// exempt: they are sent exactly once regardless of these settings.
	Retry RetryConfig `mapstructure:"retry"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Maximum requests per second
	Requests int `mapstructure:"requests" validate:"min=1"`

	// Burst size for token bucket
	Burst int `mapstructure:"burst" validate:"min=1"`
}

// RetryConfig holds retry configuration for failed requests
type RetryConfig struct {
	// Maximum number of retry attempts
	MaxAttempts int `mapstructure:"max_attempts" validate:"min=0"`

	// Base duration for exponential backoff
	BackoffBase time.Duration `mapstructure:"backoff_base"`
}
