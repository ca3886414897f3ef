package redis_client

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/skyrail/skyrail/pkg/util"
)

var Client *redis.Client

// Connect sets up the shared Redis client. Redis only backs the result
// cache so a missing address skips the setup rather than failing.
func Connect() error {
	env := util.GetEnvironmentVariables()

	address := env["SKYRAIL_REDIS_ADDRESS"]
	if address == "" {
		log.Info().Msg("Skipping Redis setup")
		return nil
	}

	password := env["SKYRAIL_REDIS_PASSWORD"]

	database := 0
	if env["SKYRAIL_REDIS_DATABASE"] != "" {
		n, err := strconv.Atoi(env["SKYRAIL_REDIS_DATABASE"])
		if err != nil {
			return err
		}
		database = n
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	statusCmd := Client.Ping(context.Background())

	return statusCmd.Err()
}
