// internal/workers/content/generate-gbp-post/config.go
package generategbppost

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
