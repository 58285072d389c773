package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every response uses the same envelope: {isSuccess, message, ...payload}.

func Data(c *gin.Context, payload gin.H) {
	body := gin.H{"isSuccess": true, "message": "Successful."}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"isSuccess": true, "message": msg})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"isSuccess": false, "message": msg})
}
func NotFound(c *gin.Context, object string) {
	c.JSON(http.StatusNotFound, gin.H{"isSuccess": false, "message": object + " not found."})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"isSuccess": false, "message": err.Error()})
}
