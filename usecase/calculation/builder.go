package calculation

import (
	"context"

	"github.com/patrickmn/go-cache"
	"github.com/radhian/commission-system/entity"
	"github.com/radhian/commission-system/infra/db/dao"
	"github.com/radhian/commission-system/infra/db/model"
	"github.com/radhian/commission-system/infra/locker"
)

type CalculationUsecase interface {
	CalculateCommissions(operations []entity.Operation) ([]entity.Commission, error)
	ProcessCalculationInit(inputPath, operator string) (*model.CommissionProcessLog, error)
	ProcessCalculationJob(ctx context.Context, logID int64) error
	GetCalculationResults() ([]model.CommissionProcessLog, error)
	GetCalculationResult(logID int64) (model.CommissionProcessLog, error)
	TryAcquireLock(ctx context.Context) (bool, int64, error)
	UnlockProcess(ctx context.Context, logID int64)
}

type calculationUsecase struct {
	dao       dao.DaoMethod
	locker    *locker.Locker
	cache     *cache.Cache
	uploadDir string
}

func NewCalculationUsecase(d dao.DaoMethod, l *locker.Locker, c *cache.Cache, uploadDir string) CalculationUsecase {
	if l == nil {
		l = locker.New()
	}
	if c == nil {
		c = cache.New(cache.NoExpiration, 0)
	}
	return &calculationUsecase{
		dao:       d,
		locker:    l,
		cache:     c,
		uploadDir: uploadDir,
	}
}
