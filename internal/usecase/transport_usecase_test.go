package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/pkg/errors"
	"github.com/ecotravel-admin/internal/pkg/record"
	"github.com/ecotravel-admin/internal/usecase"
)

func TestTransportUseCase_Create(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("bike with defaults", func(t *testing.T) {
		repo := &MockTransportRepository{}
		cache := &MockCacheRepository{}
		stream := &MockStreamRepository{}
		uc := usecase.NewTransportUseCase(repo, cache, stream, logger, time.Minute, time.Hour)

		repo.On("Create", ctx, domain.TransportKindBike, mock.MatchedBy(func(p any) bool {
			bike, ok := p.(domain.BikePayload)
			return ok &&
				bike.TransportName == "Green Bike" &&
				bike.TransportType == "City Bike" &&
				bike.Capacity == 1 &&
				bike.FrameSize == "M"
		})).Return(record.Record{"transportId": "BIKE-1"}, nil)
		cache.On("DeleteByPrefix", mock.Anything, "admin:transports:").Return(3, nil)
		stream.On("PublishToStream", mock.Anything, domain.StreamAdminEvents, mock.MatchedBy(func(e domain.AdminEvent) bool {
			return e.Resource == domain.ResourceTransport && e.Action == domain.ActionCreate && e.EntityID == "BIKE-42"
		})).Return("1-0", nil)

		resp, err := uc.Create(ctx, "bike", record.Record{
			"id":            "BIKE-42",
			"transportName": "Green Bike",
			"pricePerKm":    "0.1",
		})

		require.NoError(t, err)
		assert.Equal(t, "BIKE-42", resp.ID)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
		stream.AssertExpectations(t)
	})

	t.Run("unknown kind", func(t *testing.T) {
		uc := usecase.NewTransportUseCase(&MockTransportRepository{}, nil, nil, logger, 0, 0)

		_, err := uc.Create(ctx, "scooter", record.Record{"transportName": "X"})
		assert.True(t, errors.Is(err, errors.ErrInvalidTransportKind))
	})

	t.Run("negative price", func(t *testing.T) {
		uc := usecase.NewTransportUseCase(&MockTransportRepository{}, nil, nil, logger, 0, 0)

		_, err := uc.Create(ctx, "bike", record.Record{"transportName": "X", "pricePerKm": -1})
		assert.True(t, errors.Is(err, errors.ErrValidationFailed))
	})
}

func TestTransportUseCase_Update(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("only present fields are sent", func(t *testing.T) {
		repo := &MockTransportRepository{}
		uc := usecase.NewTransportUseCase(repo, nil, nil, logger, 0, 0)

		repo.On("Update", ctx, "EV-1", mock.MatchedBy(func(u domain.TransportUpdate) bool {
			return u.TransportName != nil && *u.TransportName == "Tesla" &&
				u.Availability != nil && !*u.Availability &&
				u.PricePerKm == nil && u.OperatingHours == nil
		})).Return(record.Record{}, nil)

		_, err := uc.Update(ctx, "EV-1", record.Record{"transportName": "Tesla", "availability": "false"})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("nothing to update", func(t *testing.T) {
		uc := usecase.NewTransportUseCase(&MockTransportRepository{}, nil, nil, logger, 0, 0)

		_, err := uc.Update(ctx, "EV-1", record.Record{"unknown": 1})
		assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
	})
}

func TestTransportUseCase_Ranking(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("uses ranking ttl", func(t *testing.T) {
		repo := &MockTransportRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewTransportUseCase(repo, cache, nil, logger, time.Minute, time.Hour)

		items := []domain.Transport{{ID: "BIKE-1", Kind: domain.TransportKindBike}}
		cache.On("Get", ctx, "admin:transports:ranking:cheapest").Return(nil, nil)
		repo.On("Ranking", ctx, domain.TransportRankingCheapest).Return(items, nil)
		cache.On("Set", ctx, "admin:transports:ranking:cheapest", mock.Anything, time.Hour).Return(nil)

		resp, err := uc.Ranking(ctx, "cheapest")
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Count)
		cache.AssertExpectations(t)
	})

	t.Run("unknown ranking", func(t *testing.T) {
		uc := usecase.NewTransportUseCase(&MockTransportRepository{}, nil, nil, logger, 0, 0)

		_, err := uc.Ranking(ctx, "slowest")
		assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
	})
}

func TestTransportUseCase_Search(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	repo := &MockTransportRepository{}
	uc := usecase.NewTransportUseCase(repo, nil, nil, logger, 0, 0)

	repo.On("Search", ctx, "bus").Return([]domain.Transport{{ID: "PT-1"}, {ID: "PT-2"}}, nil)

	resp, err := uc.Search(ctx, "  bus ")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)

	_, err = uc.Search(ctx, " ")
	assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
}
