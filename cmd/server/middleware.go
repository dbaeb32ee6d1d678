package main

import (
	"fmt"
	"time"

	"github.com/Sidharth-A-691/code-generator/internal/errors"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// builds the CORS middleware from the configured origin allowlist.
// Content-Disposition is exposed so browser clients can read the
// filename of downloaded project archives.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}

	return cors.New(corsConfig)
}

// builds the rate limiter that guards the generation endpoint. Each
// generation request costs a planning LLM call plus a background agent
// run, so the limit is deliberately low; the format is ulule's
// "<count>-<period>" notation, e.g. "10-M" for ten per minute.
func GenerateRateLimiter(formatted string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid generate rate limit %q: %w", formatted, err)
	}

	instance := limiter.New(memory.NewStore(), rate)

	reached := mgin.WithLimitReachedHandler(func(c *gin.Context) {
		errors.TooManyRequests(c, "Too many generation requests. Please try again later.")
	})

	return mgin.NewMiddleware(instance, reached), nil
}
