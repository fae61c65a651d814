// README: PDF export handler.
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripwise/internal/modules/export"
)

type ExportHandler struct{}

func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

type exportReq struct {
	Narrative string `json:"narrative"`
}

// Export handles POST /api/trips/export and streams the document back as a
// download. Nothing is retained server-side.
func (h *ExportHandler) Export(c *gin.Context) {
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Narrative) == "" {
		writeError(c, http.StatusBadRequest, "narrative is required")
		return
	}

	doc, err := export.PDF(req.Narrative)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	c.Data(http.StatusOK, "application/pdf", doc)
}
