package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS, HEAD"
	corsAllowHeaders = "Content-Type, Authorization, X-Requested-With, Accept, Origin"
)

type CORSConfig struct {
	AllowedOrigins []string
	MaxAge         int
}

func (c CORSConfig) allowOrigin(origin string) string {
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" {
			return "*"
		}
		if origin != "" && allowed == origin {
			return origin
		}
	}
	return ""
}

// WriteCORSHeaders sets the cross-origin response headers for the request's origin.
func WriteCORSHeaders(c *gin.Context, cfg CORSConfig) {
	h := c.Writer.Header()
	if origin := cfg.allowOrigin(c.GetHeader("Origin")); origin != "" {
		h.Set("Access-Control-Allow-Origin", origin)
		if origin != "*" {
			h.Add("Vary", "Origin")
		}
	}
	h.Set("Access-Control-Allow-Methods", corsAllowMethods)
	h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
	h.Set("Access-Control-Expose-Headers", "X-Trace-ID")
}

// CORSMiddleware decorates every response with CORS headers and answers any
// OPTIONS request as a preflight, matched route or not.
func CORSMiddleware(cfg CORSConfig) gin.HandlerFunc {
	preflight := Preflight(cfg)
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			preflight(c)
			return
		}
		WriteCORSHeaders(c, cfg)
		c.Next()
	}
}

// Preflight answers with 200, the CORS headers and an empty body. The
// request body is never read.
func Preflight(cfg CORSConfig) gin.HandlerFunc {
	maxAge := strconv.Itoa(cfg.MaxAge)
	return func(c *gin.Context) {
		WriteCORSHeaders(c, cfg)
		c.Header("Access-Control-Max-Age", maxAge)
		if reqHeaders := c.GetHeader("Access-Control-Request-Headers"); reqHeaders != "" && !strings.Contains(corsAllowHeaders, reqHeaders) {
			c.Header("Access-Control-Allow-Headers", corsAllowHeaders+", "+reqHeaders)
		}
		c.Status(http.StatusOK)
		c.Writer.WriteHeaderNow()
		c.Abort()
	}
}
