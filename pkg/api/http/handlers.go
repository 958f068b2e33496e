package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RootResponse is returned by the root endpoint
type RootResponse struct {
	Message string `json:"message" example:"Welcome to Nijouzu API"`
	Status  string `json:"status" example:"running"`
}

// HealthResponse is returned by the health check endpoint
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"nijouzu-api"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleRoot handles the welcome endpoint
//
//	@Summary	Root
//	@Tags		service
//	@Produce	json
//	@Success	200	{object}	RootResponse
//	@Router		/ [get]
func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, s.root)
}

// handleHealth handles health check requests
//
//	@Summary	Health Check
//	@Tags		service
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/health [get]
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, s.health)
}

func (s *Server) handleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Error: ErrorDetail{
			Code:    "NOT_FOUND",
			Message: "Not Found",
		},
	})
}

func (s *Server) handleMethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, ErrorResponse{
		Error: ErrorDetail{
			Code:    "METHOD_NOT_ALLOWED",
			Message: "Method Not Allowed",
		},
	})
}
