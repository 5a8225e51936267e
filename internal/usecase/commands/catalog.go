package commands

import (
	"context"
	"log/slog"

	"course-booking-api/internal/domain/lesson"
	"course-booking-api/internal/pkg/errs"
)

type CatalogCommands interface {
	// Import replaces the whole catalog with the given seed list. Destructive:
	// existing records, including any seat decrements, are discarded.
	Import(ctx context.Context, lessons []lesson.Lesson) (int64, error)
}

type catalogUseCaseImpl struct {
	catalogRepo CatalogRepository
	logger      *slog.Logger
}

func NewCatalogUseCase(catalogRepo CatalogRepository, logger *slog.Logger) CatalogCommands {
	return &catalogUseCaseImpl{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (u *catalogUseCaseImpl) Import(ctx context.Context, lessons []lesson.Lesson) (int64, error) {
	count, err := u.catalogRepo.ReplaceAll(ctx, lessons)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrStorageFailure)
	}

	u.logger.Info("catalog reseeded", slog.Int64("count", count))
	return count, nil
}
