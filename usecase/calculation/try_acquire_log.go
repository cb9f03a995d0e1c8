package calculation

import (
	"context"

	"github.com/labstack/gommon/log"
	"github.com/radhian/commission-system/consts"
)

func (u *calculationUsecase) TryAcquireLock(ctx context.Context) (bool, int64, error) {
	processLogList, err := u.dao.GetCommissionProcessLogByStatusList([]int{consts.StatusInit, consts.StatusRunning})
	if err != nil {
		return false, 0, err
	}

	for _, processLog := range processLogList {
		if !u.locker.TryMark(processLog.ID) {
			continue
		}

		log.Infof("[LOCK_PROCESS] log_id:%d", processLog.ID)
		return true, processLog.ID, nil
	}

	return false, 0, nil
}

func (u *calculationUsecase) UnlockProcess(ctx context.Context, logID int64) {
	u.locker.Unlock(logID)
	log.Infof("[UNLOCK_PROCESS] log_id:%d", logID)
}
