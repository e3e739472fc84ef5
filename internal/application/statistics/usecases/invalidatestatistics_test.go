package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/statsboard/internal/application/statistics/dto"
	"github.com/orris-inc/statsboard/internal/application/statistics/query"
	apperrors "github.com/orris-inc/statsboard/internal/shared/errors"
	"github.com/orris-inc/statsboard/internal/shared/logger"
)

func TestInvalidateStatisticsUseCase(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		wantKeys []string
	}{
		{"all", nil, query.Keys},
		{"one", []string{query.KeyTicketWaitReply}, []string{query.KeyTicketWaitReply}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &mockInvalidator{}
			uc := NewInvalidateStatisticsUseCase(inv, logger.NewNop())

			resp, err := uc.Execute(context.Background(), dto.InvalidateRequest{Keys: tt.keys})

			require.NoError(t, err)
			assert.True(t, inv.called)
			assert.Equal(t, tt.keys, inv.keys)
			assert.Equal(t, tt.wantKeys, resp.Keys)
		})
	}
}

func TestInvalidateStatisticsUseCase_UnknownKey(t *testing.T) {
	inv := &mockInvalidator{}
	uc := NewInvalidateStatisticsUseCase(inv, logger.NewNop())

	_, err := uc.Execute(context.Background(), dto.InvalidateRequest{Keys: []string{"queryOrders"}})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.False(t, inv.called)
}

func TestInvalidateStatisticsUseCase_CacheFailure(t *testing.T) {
	inv := &mockInvalidator{err: errors.New("redis down")}
	uc := NewInvalidateStatisticsUseCase(inv, logger.NewNop())

	_, err := uc.Execute(context.Background(), dto.InvalidateRequest{})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}
