package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/domain/repository"
	"github.com/ecotravel-admin/internal/pkg/errors"
	"github.com/ecotravel-admin/internal/pkg/validator"
	"github.com/ecotravel-admin/internal/usecase/dto"
)

const defaultAuditLimit = 50

// AuditUseCase - чтение журнала действий администраторов
type AuditUseCase struct {
	auditRepo repository.AuditRepository
	logger    *zap.Logger
}

// NewAuditUseCase - создание нового AuditUseCase
func NewAuditUseCase(auditRepo repository.AuditRepository, logger *zap.Logger) *AuditUseCase {
	return &AuditUseCase{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// List - последние записи журнала по фильтру
func (uc *AuditUseCase) List(ctx context.Context, req dto.AuditListRequest) (*dto.AuditListResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultAuditLimit
	}

	entries, err := uc.auditRepo.List(ctx, domain.AuditFilter{
		Resource: req.Resource,
		EntityID: req.EntityID,
		Limit:    limit,
	})
	if err != nil {
		uc.logger.Error("Failed to list audit entries", zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	return &dto.AuditListResponse{Entries: entries, Count: len(entries)}, nil
}
