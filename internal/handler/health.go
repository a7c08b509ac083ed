package handler

import (
	"fmt"
	"net/http"

	"github.com/studycoach/studycoach/internal/agent"
	"github.com/studycoach/studycoach/internal/models"
	"github.com/studycoach/studycoach/internal/syllabus"
)

const version = "1.0.0"

// HealthHandler handles GET /health
type HealthHandler struct {
	coach *agent.Coach
	cat   *syllabus.Catalog
}

func NewHealthHandler(coach *agent.Coach, cat *syllabus.Catalog) *HealthHandler {
	return &HealthHandler{coach: coach, cat: cat}
}

// Health reports whether the agent backend is configured and the catalog is
// loaded. The remote LLM endpoint is not pinged: a health probe should not
// spend model tokens.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"server": "ok"}
	overallStatus := "healthy"

	if h.coach != nil {
		b := h.coach.Backend()
		checks["agent"] = fmt.Sprintf("ok (%s/%s)", b.Name(), b.Model())
	} else {
		checks["agent"] = "disabled"
		overallStatus = "degraded"
	}

	if h.cat != nil && h.cat.Len() > 0 {
		checks["syllabus"] = fmt.Sprintf("ok (%d modules)", h.cat.Len())
	} else {
		checks["syllabus"] = "empty"
		overallStatus = "degraded"
	}

	statusCode := http.StatusOK
	if overallStatus == "degraded" {
		statusCode = http.StatusServiceUnavailable
	}

	models.WriteJSON(w, statusCode, models.HealthResponse{
		Status:  overallStatus,
		Version: version,
		Checks:  checks,
	})
}
