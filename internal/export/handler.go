package export

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailor-backend/internal/shared/server/respond"
	"tailor-backend/internal/shared/telemetry"
	"tailor-backend/internal/tailoring"
)

// Handler exposes PDF export over HTTP.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/export", h.export)
}

// export accepts an edited resume back from the client and renders it. The
// body is the same shape the tailor endpoint returned under "resume".
func (h *Handler) export(c *gin.Context) {
	var resume tailoring.TailoredResume
	if err := c.ShouldBindJSON(&resume); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request body is not a valid resume document", err.Error())
		return
	}

	data, err := RenderPDF(resume)
	if err != nil {
		telemetry.Error("export.render_failed", map[string]any{"error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "export_failed", "could not render PDF", nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="tailored_resume.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
