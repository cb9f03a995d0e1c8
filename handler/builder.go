package handler

import (
	"encoding/json"
	"net/http"

	usecase "github.com/radhian/commission-system/usecase/calculation"
)

type CommissionHandler struct {
	Usecase usecase.CalculationUsecase
	// InputDir is the only directory process_commission reads input files from.
	InputDir string
}

func NewCommissionHandler(uc usecase.CalculationUsecase, inputDir string) *CommissionHandler {
	return &CommissionHandler{Usecase: uc, InputDir: inputDir}
}

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeResponse(w http.ResponseWriter, code int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeResponse(w, code, APIResponse{
		Status:  "error",
		Message: message,
	})
}
