package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"damage_triage/pkg"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 with the usual error body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[http][recovery] panic recovered request_id=%s path=%s panic=%v\n%s",
			GetRequestID(c), c.Request.URL.Path, recovered, debug.Stack())
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}
