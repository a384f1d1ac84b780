/* config.go
 * Contains the startup configuration loaded from the environment. Both
 * credentials are required: missing values are a fatal startup condition, not
 * a per request error
 */

package main

import (
	"fmt"
	"os"
)

// Config holds everything the process needs, built once in main and passed
// explicitly into the collaborators
type Config struct {
	DiscordToken string
	SportsDBKey  string
	HealthAddr   string
}

// LoadConfig reads the configuration from the environment and validates the
// required credentials
func LoadConfig() (Config, error) {
	cfg := Config{
		DiscordToken: os.Getenv("DISCORD_BOT_TOKEN"),
		SportsDBKey:  os.Getenv("THESPORTSDB_API_KEY"),
		HealthAddr:   os.Getenv("HEALTH_ADDR"),
	}

	if cfg.DiscordToken == "" {
		return Config{}, fmt.Errorf("DISCORD_BOT_TOKEN environment variable is not set")
	}
	if cfg.SportsDBKey == "" {
		return Config{}, fmt.Errorf("THESPORTSDB_API_KEY environment variable is not set")
	}
	return cfg, nil
}
