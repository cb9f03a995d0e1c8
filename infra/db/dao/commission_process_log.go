package dao

import (
	"fmt"

	"github.com/radhian/commission-system/infra/db/model"
)

func (d *dao) GetCommissionProcessLog() ([]model.CommissionProcessLog, error) {
	var logs []model.CommissionProcessLog
	if err := d.db.Order("create_time DESC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch process logs: %w", err)
	}

	return logs, nil
}

func (d *dao) GetCommissionProcessLogByStatusList(statusList []int) ([]model.CommissionProcessLog, error) {
	var processLogList []model.CommissionProcessLog
	if err := d.db.
		Select("id").
		Where("status IN (?)", statusList).
		Order("create_time ASC").
		Find(&processLogList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch process logs by status: %w", err)
	}
	return processLogList, nil
}

func (d *dao) CreateCommissionProcessLog(payload *model.CommissionProcessLog) error {
	if err := d.db.Create(payload).Error; err != nil {
		return fmt.Errorf("failed to create process log: %w", err)
	}
	return nil
}

func (d *dao) GetCommissionProcessLogByID(logID int64) (model.CommissionProcessLog, error) {
	var logEntry model.CommissionProcessLog
	if err := d.db.First(&logEntry, logID).Error; err != nil {
		return logEntry, fmt.Errorf("log not found: %w", err)
	}
	return logEntry, nil
}

func (d *dao) UpdateCommissionProcessLog(logEntry model.CommissionProcessLog) error {
	if err := d.db.Save(&logEntry).Error; err != nil {
		return fmt.Errorf("failed to update log: %w", err)
	}
	return nil
}
