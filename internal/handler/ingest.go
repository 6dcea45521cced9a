package handler

import (
	"net/http"

	"fansite/internal/parser"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// maxIngestBody caps the size of one POST /api/v1/logs body
const maxIngestBody = 8 << 20

// IngestResult reports how many posted lines were used
type IngestResult struct {
	Accepted int `json:"accepted"`
	Skipped  int `json:"skipped"`
}

// IngestLogs handles POST /api/v1/logs
// @Summary Ingest access log lines
// @Description Feeds a plain text body, one access log line per row, to the analyzer
// @Tags ingest
// @Accept plain
// @Produce json
// @Success 200 {object} Response{data=IngestResult}
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/logs [post]
func (h *ReportHandler) IngestLogs(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxIngestBody)
	sc := parser.NewScanner(body)

	var res IngestResult
	for sc.Scan() {
		if err := h.analyzer.IngestLine(sc.Text()); err != nil {
			log.Debug().Err(err).Int("line", sc.Line()).Msg("Rejected posted log line")
			res.Skipped++
			continue
		}
		res.Accepted++
	}

	if err := sc.Err(); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, success(res))
}
