package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sovanra/uxfolio/internal/util"
)

func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	ok, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
	if !ok {
		ctx.Header("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))
		util.ResponseFailed(ctx, http.StatusTooManyRequests, "Too many requests", nil, nil)
		ctx.Abort()
		return
	}

	ctx.Next()
}
