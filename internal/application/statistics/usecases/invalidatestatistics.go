package usecases

import (
	"context"
	"strings"

	"github.com/orris-inc/statsboard/internal/application/statistics/dto"
	"github.com/orris-inc/statsboard/internal/application/statistics/query"
	"github.com/orris-inc/statsboard/internal/shared/errors"
	"github.com/orris-inc/statsboard/internal/shared/logger"
)

// InvalidateStatisticsUseCase drops cached console queries so the next
// dashboard request refetches them.
type InvalidateStatisticsUseCase struct {
	invalidator QueryInvalidator
	logger      logger.Interface
}

// NewInvalidateStatisticsUseCase creates a new InvalidateStatisticsUseCase.
func NewInvalidateStatisticsUseCase(invalidator QueryInvalidator, log logger.Interface) *InvalidateStatisticsUseCase {
	return &InvalidateStatisticsUseCase{
		invalidator: invalidator,
		logger:      log,
	}
}

// Execute invalidates the requested keys, or every query when none is given.
func (uc *InvalidateStatisticsUseCase) Execute(ctx context.Context, req dto.InvalidateRequest) (*dto.InvalidateResponse, error) {
	var unknown []string
	for _, key := range req.Keys {
		if !query.IsKnownKey(key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		return nil, errors.NewValidationError("unknown query key", strings.Join(unknown, ", "))
	}

	if err := uc.invalidator.Invalidate(ctx, req.Keys...); err != nil {
		uc.logger.Errorw("failed to invalidate queries", "keys", req.Keys, "error", err)
		return nil, errors.NewInternalError("failed to invalidate queries", err.Error())
	}

	keys := req.Keys
	if len(keys) == 0 {
		keys = append([]string(nil), query.Keys...)
	}
	return &dto.InvalidateResponse{Keys: keys}, nil
}
