package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arjit-Adhikari/qr-order/internal/auth"
	"github.com/Arjit-Adhikari/qr-order/internal/logger"
	"github.com/Arjit-Adhikari/qr-order/internal/utils"
)

const adminRealm = `Basic realm="qr-order admin"`

func EnhancedLogger(log *logger.Logger) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		duration := param.Latency.String()
		status := fmt.Sprintf("%d", param.StatusCode)

		if param.StatusCode >= 500 {
			log.Error("API", fmt.Sprintf("%s %s - %s (%s) - ERROR: %s",
				param.Method, param.Path, status, duration, param.ErrorMessage))
		} else if param.StatusCode >= 400 {
			log.Warn("API", fmt.Sprintf("%s %s - %s (%s) - Client Error",
				param.Method, param.Path, status, duration))
		} else {
			log.LogAPI(param.Method, param.Path, status, duration)
		}

		// Logging handled above, gin itself writes nothing.
		return ""
	})
}

// Recovery converts panics into the generic 500 envelope so a broken
// storage call never hangs the request.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("PANIC", fmt.Sprintf("Recovered from panic: %v", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			utils.ErrorResponse("Internal server error", ""))
	})
}

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// RequireAdmin gates a route behind HTTP Basic credentials. A missing or
// malformed Authorization header gets the challenge header back; a mismatched
// pair gets a bare 401. Every request re-validates, there are no sessions.
func RequireAdmin(authn auth.Authenticator, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			log.LogSecurity("UNAUTHENTICATED", "Missing or malformed credentials from "+c.ClientIP())
			c.Header("WWW-Authenticate", adminRealm)
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				utils.ErrorResponse("Authentication required", ""))
			return
		}

		if !authn.Authenticate(username, password) {
			log.LogSecurity("INVALID_CREDENTIALS", "Rejected admin login from "+c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				utils.ErrorResponse("Invalid credentials", ""))
			return
		}

		c.Next()
	}
}
