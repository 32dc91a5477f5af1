package response

import "github.com/gin-gonic/gin"

// Error bodies are always {"message": string}; the admin UI surfaces that
// text verbatim, so messages must stay human-readable and must never leak
// internals on 500s.

// JSON sends a successful response with the given status code and payload.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Fail sends an error response using the canonical message for code.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, gin.H{"message": GetMessage(code)})
}

// FailMessage sends an error response with an explicit message, used when
// the text must identify a row or field (e.g. the offending student of a
// rejected batch).
func FailMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// AbortFail sends an error response and aborts the handler chain; used by
// middleware.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, gin.H{"message": GetMessage(code)})
}
