// README: Trip handlers: plan generation and cost chart rendering.
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tripwise/internal/modules/chart"
	"tripwise/internal/modules/trip"
)

// Planner runs one trip planning cycle.
type Planner interface {
	GeneratePlan(ctx context.Context, req trip.Request) (*trip.Result, error)
}

type TripHandler struct {
	planner Planner
}

func NewTripHandler(planner Planner) *TripHandler {
	return &TripHandler{planner: planner}
}

// Plan handles POST /api/trips/plan.
func (h *TripHandler) Plan(c *gin.Context) {
	var req trip.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	// The cycle chains up to three external calls; bound the whole thing.
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	result, err := h.planner.GeneratePlan(ctx, req)
	if err != nil {
		writeTripError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, result)
}

// CostChart handles GET /api/trips/cost-chart?days=&budget=.
// The breakdown is pure arithmetic, so the chart is derived straight from
// the query parameters rather than from a stored plan.
func (h *TripHandler) CostChart(c *gin.Context) {
	days, err := strconv.Atoi(c.Query("days"))
	if err != nil || days < 1 {
		writeError(c, http.StatusBadRequest, "days must be a positive integer")
		return
	}
	budget, err := strconv.ParseInt(c.Query("budget"), 10, 64)
	if err != nil || budget < 0 {
		writeError(c, http.StatusBadRequest, "budget must be a non-negative integer")
		return
	}

	png, err := chart.CostPie(trip.ComputeCosts(days, budget))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
