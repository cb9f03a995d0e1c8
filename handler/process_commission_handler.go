package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/radhian/commission-system/entity"
)

func (h *CommissionHandler) ProcessCommission(w http.ResponseWriter, r *http.Request) {
	var req entity.ProcessCommissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inputPath, err := h.validateProcessCommissionRequest(req)
	if err != nil {
		log.Warnf("[ProcessCommission] Invalid input: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.Usecase.ProcessCalculationInit(inputPath, req.Operator)
	if err != nil {
		log.Errorf("[ProcessCommission] Failed to init process: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to process commission")
		return
	}

	writeResponse(w, http.StatusOK, APIResponse{
		Status: "success",
		Data:   res,
	})
}

// validateProcessCommissionRequest resolves input_path inside the input
// directory. Absolute paths and paths leaving the directory are rejected.
func (h *CommissionHandler) validateProcessCommissionRequest(req entity.ProcessCommissionRequest) (string, error) {
	if strings.TrimSpace(req.InputPath) == "" {
		return "", errors.New("input path is required")
	}
	if !filepath.IsLocal(req.InputPath) {
		return "", fmt.Errorf("input path must be relative to the input directory: %s", req.InputPath)
	}

	inputPath := filepath.Join(h.InputDir, req.InputPath)
	info, err := os.Stat(inputPath)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("input file does not exist: %s", req.InputPath)
	}
	if err != nil {
		return "", fmt.Errorf("input file is not accessible: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("input path is a directory: %s", req.InputPath)
	}
	if strings.TrimSpace(req.Operator) == "" {
		return "", errors.New("operator must be specified")
	}
	return inputPath, nil
}
