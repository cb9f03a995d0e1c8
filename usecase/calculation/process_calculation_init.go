package calculation

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"github.com/radhian/commission-system/consts"
	"github.com/radhian/commission-system/infra/db/model"
)

func (u *calculationUsecase) ProcessCalculationInit(inputPath, operator string) (*model.CommissionProcessLog, error) {
	timeNowUnix := time.Now().Unix()

	fileURL, err := u.uploadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to upload input file: %w", err)
	}

	logEntry := &model.CommissionProcessLog{
		FileUrl:        fileURL,
		TotalOperation: 0, // set once the job has read the file
		Status:         consts.StatusInit,
		Result:         "",
		CreateTime:     timeNowUnix,
		CreateBy:       operator,
		UpdateTime:     timeNowUnix,
		UpdateBy:       operator,
	}

	if err := u.dao.CreateCommissionProcessLog(logEntry); err != nil {
		return nil, fmt.Errorf("failed to create commission process log: %w", err)
	}

	log.Infof("[CommissionInit] Created LogID %d for %s by %s", logEntry.ID, fileURL, operator)
	return logEntry, nil
}

// uploadFile copies the input into the upload directory, standing in for an object storage upload.
func (u *calculationUsecase) uploadFile(filePath string) (string, error) {
	input, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(u.uploadDir, 0o755); err != nil {
		return "", err
	}

	fileName := filepath.Base(filePath)
	destPath := filepath.Join(u.uploadDir, fmt.Sprintf("%s_%s", uuid.NewString(), fileName))

	if err := os.WriteFile(destPath, input, 0o644); err != nil {
		return "", err
	}

	return destPath, nil
}
