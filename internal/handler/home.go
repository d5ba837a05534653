package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// GET /
func (h *HomeHandler) Index(c *gin.Context) {
	render(c, http.StatusOK, "home.html", gin.H{"Title": "Sail Club"})
}
