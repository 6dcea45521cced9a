package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fansite/internal/model"
	"fansite/internal/repository"
	"fansite/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// defaultArchiveLimit caps archived rows when no limit is given
const defaultArchiveLimit = 100

// ArchivedBlocked is the archived blocked requests of a stored run
type ArchivedBlocked struct {
	RunID    string                 `json:"run_id"`
	Total    int64                  `json:"total"`
	Requests []model.BlockedRequest `json:"requests"`
}

// ReportHandler serves the results of the running analyzer and of
// previously stored runs
type ReportHandler struct {
	analyzer service.AnalyzerInterface
	reports  service.ReportStore
	archive  service.BlockedArchive
}

// NewReportHandler creates a new ReportHandler. reports and archive may be
// nil, in which case only live results are served.
func NewReportHandler(analyzer service.AnalyzerInterface, reports service.ReportStore, archive service.BlockedArchive) *ReportHandler {
	return &ReportHandler{
		analyzer: analyzer,
		reports:  reports,
		archive:  archive,
	}
}

// Register mounts the report and ingestion routes on rg
func (h *ReportHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/report", h.GetReport)
	rg.GET("/hosts", h.GetHosts)
	rg.GET("/resources", h.GetResources)
	rg.GET("/hours", h.GetHours)
	rg.GET("/blocked", h.GetBlocked)
	rg.POST("/logs", h.IngestLogs)
}

// GetReport handles GET /api/v1/report
// @Summary Get the analytics report
// @Description Returns the live report, or a stored one when run_id is given
// @Tags report
// @Produce json
// @Param run_id query string false "Stored run id"
// @Success 200 {object} Response{data=model.Report}
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/report [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	runID := c.Query("run_id")
	if runID == "" {
		c.JSON(http.StatusOK, success(h.analyzer.Report()))
		return
	}

	if h.reports == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Report storage is not configured",
		})
		return
	}

	report, err := h.reports.GetReport(c.Request.Context(), runID)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Report not found",
			})
			return
		}
		log.Error().Err(err).Str("run_id", runID).Msg("Failed to load report")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load report: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, success(report))
}

// GetHosts handles GET /api/v1/hosts
// @Summary Most active hosts
// @Tags report
// @Produce json
// @Success 200 {object} Response{data=[]model.RankedEntry}
// @Router /api/v1/hosts [get]
func (h *ReportHandler) GetHosts(c *gin.Context) {
	c.JSON(http.StatusOK, success(h.analyzer.Report().Hosts))
}

// GetResources handles GET /api/v1/resources
// @Summary Resources by bytes served
// @Tags report
// @Produce json
// @Success 200 {object} Response{data=[]model.RankedEntry}
// @Router /api/v1/resources [get]
func (h *ReportHandler) GetResources(c *gin.Context) {
	c.JSON(http.StatusOK, success(h.analyzer.Report().Resources))
}

// GetHours handles GET /api/v1/hours
// @Summary Busiest 60-minute windows
// @Tags report
// @Produce json
// @Success 200 {object} Response{data=[]model.RankedEntry}
// @Router /api/v1/hours [get]
func (h *ReportHandler) GetHours(c *gin.Context) {
	c.JSON(http.StatusOK, success(h.analyzer.Report().Hours))
}

// GetBlocked handles GET /api/v1/blocked
// @Summary Requests suppressed by the login blocker
// @Description Returns the live blocked lines, or the archived rows of a stored run when run_id is given
// @Tags report
// @Produce json
// @Param run_id query string false "Stored run id"
// @Param limit query int false "Maximum archived rows, 0 for all" default(100)
// @Success 200 {object} Response{data=ArchivedBlocked}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/blocked [get]
func (h *ReportHandler) GetBlocked(c *gin.Context) {
	runID := c.Query("run_id")
	if runID == "" {
		c.JSON(http.StatusOK, success(h.analyzer.Report().Blocked))
		return
	}

	if h.archive == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Blocked request archive is not configured",
		})
		return
	}

	limit := defaultArchiveLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid request: limit must be a non-negative integer",
			})
			return
		}
		limit = n
	}

	ctx := c.Request.Context()

	total, err := h.archive.CountBlockedRequests(ctx, runID)
	if err != nil {
		h.archiveError(c, runID, err)
		return
	}

	reqs, err := h.archive.GetBlockedRequests(ctx, runID, limit)
	if err != nil {
		h.archiveError(c, runID, err)
		return
	}
	if reqs == nil {
		reqs = []model.BlockedRequest{}
	}

	c.JSON(http.StatusOK, success(ArchivedBlocked{
		RunID:    runID,
		Total:    total,
		Requests: reqs,
	}))
}

func (h *ReportHandler) archiveError(c *gin.Context, runID string, err error) {
	log.Error().Err(err).Str("run_id", runID).Msg("Failed to read blocked request archive")
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: "Failed to read blocked requests: " + err.Error(),
	})
}

// Health handles GET /health
func (h *ReportHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}
