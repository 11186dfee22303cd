package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailor-backend/internal/shared/server/middleware"
	"tailor-backend/internal/shared/server/respond"
)

// Handler exposes the free-tier counter over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches usage routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/usage", h.get)
}

// RegisterDevRoutes attaches dev-only routes.
func (h *Handler) RegisterDevRoutes(rg *gin.RouterGroup) {
	rg.POST("/usage/reset", h.reset)
}

type usageResponse struct {
	Used      int `json:"used"`
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
}

func (h *Handler) get(c *gin.Context) {
	counter, err := h.Svc.Get(c.Request.Context(), middleware.SessionIDFromContext(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read usage", nil)
		return
	}
	respond.OK(c, usageResponse{Used: counter.Used, Limit: counter.Limit, Remaining: counter.Remaining()})
}

func (h *Handler) reset(c *gin.Context) {
	counter, err := h.Svc.Reset(c.Request.Context(), middleware.SessionIDFromContext(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to reset usage", nil)
		return
	}
	respond.OK(c, usageResponse{Used: counter.Used, Limit: counter.Limit, Remaining: counter.Remaining()})
}
