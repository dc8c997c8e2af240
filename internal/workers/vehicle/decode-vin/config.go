// internal/workers/vehicle/decode-vin/config.go
package decodevin

import "time"

type Config struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

func LoadConfig() *Config {
	return &Config{
		BaseURL:  "https://vpic.nhtsa.dot.gov/api",
		Timeout:  15 * time.Second,
		CacheTTL: 24 * time.Hour,
	}
}
