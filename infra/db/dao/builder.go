package dao

import (
	"github.com/radhian/commission-system/infra/db/model"

	"github.com/jinzhu/gorm"
)

type DaoMethod interface {
	GetCommissionProcessLog() ([]model.CommissionProcessLog, error)
	GetCommissionProcessLogByStatusList(statusList []int) ([]model.CommissionProcessLog, error)
	CreateCommissionProcessLog(payload *model.CommissionProcessLog) error
	GetCommissionProcessLogByID(logID int64) (model.CommissionProcessLog, error)
	UpdateCommissionProcessLog(logEntry model.CommissionProcessLog) error
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}

// Migrate creates or updates the tables used by the dao.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.CommissionProcessLog{}).Error
}
