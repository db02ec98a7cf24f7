package utils

import "github.com/gin-gonic/gin"

// ErrorResponse builds the failure envelope. Details are included only when
// there is something beyond the short message to say.
func ErrorResponse(message, details string) gin.H {
	resp := gin.H{"ok": false, "error": message}
	if details != "" {
		resp["details"] = details
	}
	return resp
}

// SuccessResponse builds the {ok:true, ...fields} envelope used by
// mutation endpoints.
func SuccessResponse(fields gin.H) gin.H {
	resp := gin.H{"ok": true}
	for k, v := range fields {
		resp[k] = v
	}
	return resp
}
