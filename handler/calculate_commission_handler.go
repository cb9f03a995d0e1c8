package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/gommon/log"
	"github.com/radhian/commission-system/entity"
	"github.com/radhian/commission-system/infra/reader"
)

const maxRequestBodyBytes = 10 << 20

// CalculateCommission prices the operation list sent as the request body.
func (h *CommissionHandler) CalculateCommission(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	operations, err := reader.DecodeOperations(body)
	if err != nil {
		log.Warnf("[CalculateCommission] Invalid request body: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	commissions, err := h.Usecase.CalculateCommissions(operations)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidOperation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Errorf("[CalculateCommission] Failed to calculate: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to calculate commission")
		return
	}

	writeResponse(w, http.StatusOK, APIResponse{
		Status: "success",
		Data:   entity.CommissionLines(commissions),
	})
}
