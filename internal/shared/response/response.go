package response

import "github.com/gin-gonic/gin"

// Envelope adalah bentuk seragam semua response API.
type Envelope struct {
	Ok    bool `json:"ok"`
	Data  any  `json:"data,omitempty"`
	Error any  `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Ok: true, Data: data})
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, Envelope{
		Ok: false,
		Error: ErrorBody{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
	})
}
