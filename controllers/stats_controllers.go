package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pizzaecia/vendor-pos/stores"
	"github.com/pizzaecia/vendor-pos/utils"
)

type StatsController struct {
	Stats *stores.StatsAggregator
}

func NewStatsController(stats *stores.StatsAggregator) *StatsController {
	return &StatsController{Stats: stats}
}

// GetStats computes the dashboard snapshot for the current day.
func (sc *StatsController) GetStats(c *gin.Context) {
	stats, err := sc.Stats.ComputeStats(time.Now())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
