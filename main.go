/* main.go
 * The "main" method for running the fixtures bot. For details about the bot see `readme.md`
 * Usage: go run main.go
 */

package main

import (
	"log"

	api "fixtures-bot/api/api"
	bot "fixtures-bot/bot"
	"fixtures-bot/web"

	"github.com/joho/godotenv"
)

func main() {
	// Local development secrets live in .env; in production the platform
	// injects them directly into the environment
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from the environment")
	}

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	apiPtr, err := api.NewAPI(cfg.SportsDBKey)
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}

	b, err := bot.NewBot(cfg.DiscordToken, apiPtr)
	if err != nil {
		log.Fatalf("failed to initialize bot: %v", err)
	}

	// Optional health endpoint so hosting platforms that probe a port see the
	// process as live
	if cfg.HealthAddr != "" {
		go func() {
			if err := web.Start(web.Config{Addr: cfg.HealthAddr}); err != nil {
				log.Println("health server stopped:", err)
			}
		}()
	}

	log.Println("Starting fixtures bot...")
	if err := b.Run(); err != nil {
		log.Fatalf("bot exited with error: %v", err)
	}
}
