package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports whether the API and its backing services are reachable.
// The desk frontend polls this route, so the payload stays small: an overall
// estado plus one entry per dependency, nothing about credentials or hosts.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		postgres := "ok"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			postgres = "sin conexion"
		}

		cache := "ok"
		if rdb.Ping(ctx).Err() != nil {
			cache = "sin conexion"
		}

		estado := "ok"
		code := http.StatusOK
		if postgres != "ok" || cache != "ok" {
			estado = "degradado"
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"estado": estado,
			"servicios": gin.H{
				"postgres": postgres,
				"redis":    cache,
			},
		})
	}
}
