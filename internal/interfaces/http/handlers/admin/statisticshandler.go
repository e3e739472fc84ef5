// Package admin provides HTTP handlers for administrative operations.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/statsboard/internal/application/statistics/dto"
	"github.com/orris-inc/statsboard/internal/application/statistics/usecases"
	"github.com/orris-inc/statsboard/internal/domain/dashboard"
	"github.com/orris-inc/statsboard/internal/interfaces/http/handlers/common"
	"github.com/orris-inc/statsboard/internal/shared/logger"
	"github.com/orris-inc/statsboard/internal/shared/utils"
)

// StatisticsHandler serves the statistics dashboard as JSON.
type StatisticsHandler struct {
	statisticsUseCase *usecases.GetStatisticsUseCase
	rankingUseCase    *usecases.GetTrafficRankingUseCase
	invalidateUseCase *usecases.InvalidateStatisticsUseCase
	logger            logger.Interface
}

// NewStatisticsHandler creates a new StatisticsHandler.
func NewStatisticsHandler(
	statisticsUC *usecases.GetStatisticsUseCase,
	rankingUC *usecases.GetTrafficRankingUseCase,
	invalidateUC *usecases.InvalidateStatisticsUseCase,
	logger logger.Interface,
) *StatisticsHandler {
	return &StatisticsHandler{
		statisticsUseCase: statisticsUC,
		rankingUseCase:    rankingUC,
		invalidateUseCase: invalidateUC,
		logger:            logger,
	}
}

// GetStatistics handles GET /admin/statistics
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	req, sel, ok := h.bindSelection(c)
	if !ok {
		return
	}

	result, err := h.statisticsUseCase.Execute(c.Request.Context(), usecases.GetStatisticsQuery{
		Selection:      sel,
		Lang:           req.Lang,
		AcceptLanguage: c.GetHeader("Accept-Language"),
	})
	if err != nil {
		h.logger.Errorw("failed to get statistics", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTrafficRanking handles GET /admin/statistics/traffic-ranking
func (h *StatisticsHandler) GetTrafficRanking(c *gin.Context) {
	req, sel, ok := h.bindSelection(c)
	if !ok {
		return
	}

	result, err := h.rankingUseCase.Execute(c.Request.Context(), usecases.GetTrafficRankingQuery{
		Selection:      sel,
		Lang:           req.Lang,
		AcceptLanguage: c.GetHeader("Accept-Language"),
	})
	if err != nil {
		h.logger.Errorw("failed to get traffic ranking", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Invalidate handles POST /admin/statistics/invalidate
func (h *StatisticsHandler) Invalidate(c *gin.Context) {
	var req dto.InvalidateRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for invalidate statistics", "error", err)
			utils.ErrorResponseWithError(c, utils.BindingError(err))
			return
		}
	}

	result, err := h.invalidateUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Statistics cache invalidated", result)
}

func (h *StatisticsHandler) bindSelection(c *gin.Context) (dto.StatisticsQueryRequest, dashboard.Selection, bool) {
	req, sel, err := common.BindSelection(c)
	if err != nil {
		h.logger.Warnw("invalid statistics query", "query", c.Request.URL.RawQuery, "error", err)
		utils.ErrorResponseWithError(c, err)
		return req, sel, false
	}
	return req, sel, true
}
