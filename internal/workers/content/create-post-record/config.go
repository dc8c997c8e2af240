// internal/workers/content/create-post-record/config.go
package createpostrecord

import "time"

type Config struct {
	Timeout   time.Duration
	PostIndex string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:   30 * time.Second,
		PostIndex: "post-drafts",
	}
}
