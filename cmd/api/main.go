package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rdssystems/UniStyle-sub001/internal/config"
	dbpkg "github.com/rdssystems/UniStyle-sub001/internal/db"
	"github.com/rdssystems/UniStyle-sub001/internal/lock"
	"github.com/rdssystems/UniStyle-sub001/internal/routes"
)

func main() {

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	locker := newLocker(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, locker)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

// newLocker escolhe o escopo de serialização de agenda: redis quando
// há múltiplas instâncias, mutex local caso contrário.
func newLocker(cfg *config.Config) lock.Locker {
	if cfg.RedisURL == "" {
		return lock.NewLocalLocker()
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid REDIS_URL")
	}

	log.Info().Msg("using redis schedule locker")
	return lock.NewRedisLocker(redis.NewClient(opts))
}
