// Package common provides shared HTTP handler utilities.
package common

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/statsboard/internal/application/statistics/dto"
	"github.com/orris-inc/statsboard/internal/domain/dashboard"
	"github.com/orris-inc/statsboard/internal/shared/utils"
)

// BindSelection reads the type, range and lang query parameters. Missing
// values select the default view; unknown ones are validation errors.
func BindSelection(c *gin.Context) (dto.StatisticsQueryRequest, dashboard.Selection, error) {
	var req dto.StatisticsQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, dashboard.Selection{}, utils.BindingError(err)
	}

	sel, err := dashboard.ParseSelection(req.Type, req.Range)
	if err != nil {
		return req, dashboard.Selection{}, err
	}
	return req, sel, nil
}
