package calculation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/radhian/commission-system/consts"
	"github.com/radhian/commission-system/entity"
	"github.com/radhian/commission-system/infra/db/model"
	"github.com/radhian/commission-system/infra/reader"
	"github.com/radhian/commission-system/usecase/commission"
)

func (u *calculationUsecase) ProcessCalculationJob(ctx context.Context, logID int64) (err error) {
	var logEntry model.CommissionProcessLog
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[CommissionJob] Panic recovered for LogID %d: %v", logID, r)
			err = fmt.Errorf("commission job %d panicked: %v", logID, r)
			u.failAfterPanic(logEntry, err)
		}
	}()

	log.Infof("[CommissionJob] Starting job for LogID: %d", logID)

	logEntry, err = u.dao.GetCommissionProcessLogByID(logID)
	if err != nil {
		log.Errorf("[CommissionJob] Could not fetch process log %d: %v", logID, err)
		return err
	}

	if logEntry.Status == consts.StatusFinished || logEntry.Status == consts.StatusFailed {
		log.Warnf("[CommissionJob] LogID %d already done with status %d", logID, logEntry.Status)
		return nil
	}

	logEntry = markRunning(logEntry)
	if err := u.dao.UpdateCommissionProcessLog(logEntry); err != nil {
		return fmt.Errorf("failed to update log: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	total, result, jobErr := calculateFile(logEntry.FileUrl)
	logEntry = updateProcessLogAfterJob(logEntry, total, result, jobErr)

	if err := u.dao.UpdateCommissionProcessLog(logEntry); err != nil {
		log.Errorf("[CommissionJob] Failed to update log %d: %v", logID, err)
		return fmt.Errorf("failed to update log: %w", err)
	}

	if jobErr != nil {
		log.Errorf("[CommissionJob] Job failed for LogID %d: %v", logID, jobErr)
		return jobErr
	}

	log.Infof("[CommissionJob] Job completed for LogID %d: %d operations", logID, total)
	return nil
}

// failAfterPanic moves a log that was picked up into the failed state so it
// is not acquired again.
func (u *calculationUsecase) failAfterPanic(logEntry model.CommissionProcessLog, jobErr error) {
	if logEntry.ID == 0 {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[CommissionJob] Could not mark LogID %d as failed: %v", logEntry.ID, r)
		}
	}()

	logEntry = updateProcessLogAfterJob(logEntry, logEntry.TotalOperation, "", jobErr)
	if err := u.dao.UpdateCommissionProcessLog(logEntry); err != nil {
		log.Errorf("[CommissionJob] Could not mark LogID %d as failed: %v", logEntry.ID, err)
	}
}

func calculateFile(fileURL string) (int64, string, error) {
	operations, err := reader.ReadOperations(fileURL)
	if err != nil {
		return 0, "", err
	}

	commissions, err := commission.CalculateCommissions(operations)
	if err != nil {
		return int64(len(operations)), "", err
	}

	resBytes, err := json.Marshal(entity.CommissionLines(commissions))
	if err != nil {
		return int64(len(operations)), "", err
	}
	return int64(len(operations)), string(resBytes), nil
}

func markRunning(logEntry model.CommissionProcessLog) model.CommissionProcessLog {
	logEntry.Status = consts.StatusRunning
	logEntry.UpdateTime = time.Now().Unix()
	logEntry.UpdateBy = consts.DefaultOperator
	return logEntry
}

func updateProcessLogAfterJob(
	logEntry model.CommissionProcessLog,
	total int64,
	result string,
	jobErr error,
) model.CommissionProcessLog {
	logEntry.TotalOperation = total
	logEntry.UpdateTime = time.Now().Unix()
	logEntry.UpdateBy = consts.DefaultOperator

	if jobErr != nil {
		logEntry.Status = consts.StatusFailed
		logEntry.Result = ""
		logEntry.ErrorMessage = jobErr.Error()
		return logEntry
	}

	logEntry.Status = consts.StatusFinished
	logEntry.Result = result
	logEntry.ErrorMessage = ""
	return logEntry
}
