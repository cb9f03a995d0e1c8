package calculation

import (
	"strconv"

	"github.com/patrickmn/go-cache"
	"github.com/radhian/commission-system/consts"
	"github.com/radhian/commission-system/infra/db/model"
)

func (u *calculationUsecase) GetCalculationResults() ([]model.CommissionProcessLog, error) {
	return u.dao.GetCommissionProcessLog()
}

// GetCalculationResult returns one process log. Finished and failed logs no
// longer change, so they are served from the cache.
func (u *calculationUsecase) GetCalculationResult(logID int64) (model.CommissionProcessLog, error) {
	key := cacheKey(logID)
	if cached, ok := u.cache.Get(key); ok {
		return cached.(model.CommissionProcessLog), nil
	}

	logEntry, err := u.dao.GetCommissionProcessLogByID(logID)
	if err != nil {
		return logEntry, err
	}

	if logEntry.Status == consts.StatusFinished || logEntry.Status == consts.StatusFailed {
		u.cache.Set(key, logEntry, cache.DefaultExpiration)
	}
	return logEntry, nil
}

func cacheKey(logID int64) string {
	return "commission_log:" + strconv.FormatInt(logID, 10)
}
