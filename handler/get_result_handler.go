package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jinzhu/gorm"
	"github.com/labstack/gommon/log"
)

func (h *CommissionHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	logIDStr := r.URL.Query().Get("log_id")
	if logIDStr == "" {
		results, err := h.Usecase.GetCalculationResults()
		if err != nil {
			log.Errorf("[GetResult] Failed to list results: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to get results")
			return
		}
		writeResponse(w, http.StatusOK, APIResponse{
			Status: "success",
			Data:   results,
		})
		return
	}

	logID, err := strconv.ParseInt(logIDStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "log_id must be a valid integer")
		return
	}

	result, err := h.Usecase.GetCalculationResult(logID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		writeError(w, http.StatusNotFound, "Result not found")
		return
	}
	if err != nil {
		log.Errorf("[GetResult] Failed to get LogID %d: %v", logID, err)
		writeError(w, http.StatusInternalServerError, "Failed to get result")
		return
	}

	writeResponse(w, http.StatusOK, APIResponse{
		Status: "success",
		Data:   result,
	})
}
