package tailoring

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tailor-backend/internal/extract"
	"tailor-backend/internal/jobs"
	"tailor-backend/internal/llm"
	"tailor-backend/internal/session"
	"tailor-backend/internal/shared/server/middleware"
	"tailor-backend/internal/shared/server/respond"
	"tailor-backend/internal/shared/util"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches tailoring routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/tailor", h.tailor)
}

type tailorResponse struct {
	Resume          TailoredResume `json:"resume"`
	DefaultedFields []string       `json:"defaultedFields"`
	Usage           usageInfo      `json:"usage"`
}

type usageInfo struct {
	Used      int `json:"used"`
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
}

func (h *Handler) tailor(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}

	jobURL := c.PostForm("job_url")
	jobText := c.PostForm("job_text")
	if (jobURL == "") == (jobText == "") {
		respond.Error(c, http.StatusBadRequest, "validation_error", "provide exactly one of job_url or job_text", nil)
		return
	}

	provider := c.PostForm("provider")
	apiKey := c.PostForm("api_key")
	c.Set("provider", provider)
	if jobURL != "" {
		c.Set("jobSource", "url")
	} else {
		c.Set("jobSource", "text")
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read resume file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read resume file", nil)
		return
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume file name", nil)
		return
	}

	resumeText, err := extract.TextFromBytes(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileName)
	if err != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "ingest_failed", "could not extract text from resume", err.Error())
		return
	}

	result, counter, err := h.Svc.Tailor(c.Request.Context(), TailorRequest{
		SessionID:  middleware.SessionIDFromContext(c),
		ResumeText: resumeText,
		JobURL:     jobURL,
		JobText:    jobText,
		Provider:   provider,
		APIKey:     apiKey,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.OK(c, tailorResponse{
		Resume:          result.Resume,
		DefaultedFields: append([]string{}, result.DefaultedFields...),
		Usage:           usageInfo{Used: counter.Used, Limit: counter.Limit, Remaining: counter.Remaining()},
	})
}

// respondError maps the error taxonomy onto HTTP codes with enough detail
// for the caller to choose a remedy.
func (h *Handler) respondError(c *gin.Context, err error) {
	var fetchErr *jobs.FetchError
	switch {
	case errors.Is(err, llm.ErrUnknownProvider):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, llm.ErrMissingCredential):
		respond.Error(c, http.StatusUnauthorized, "missing_credential", err.Error(), nil)
	case errors.Is(err, session.ErrLimitReached):
		respond.Error(c, http.StatusTooManyRequests, "rate_limited", "free tier limit reached; supply your own API key to continue", nil)
	case errors.As(err, &fetchErr):
		respond.Error(c, http.StatusBadGateway, "fetch_failed", "could not fetch job description; paste the job text instead", fetchErr.Message)
	case errors.Is(err, ErrMalformedResponse):
		respond.Error(c, http.StatusBadGateway, "malformed_response", "the model returned unusable output; retry or switch provider", nil)
	default:
		respond.Error(c, http.StatusBadGateway, "backend_error", "tailoring failed; retry or switch provider", err.Error())
	}
}
