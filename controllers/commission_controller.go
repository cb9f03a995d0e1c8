package controllers

import (
	"github.com/radhian/commission-system/handler"
	"github.com/radhian/commission-system/middlewares"

	"github.com/gorilla/mux"
)

func RegisterCommissionRoutes(router *mux.Router, h *handler.CommissionHandler) {
	router.HandleFunc("/calculate_commission", h.CalculateCommission).Methods("POST")
	router.HandleFunc("/process_commission", h.ProcessCommission).Methods("POST")
	router.HandleFunc("/get_result", h.GetResult).Methods("GET")
}

// NewRouter builds the API router around the given handler.
func NewRouter(h *handler.CommissionHandler) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(middlewares.SetContentTypeMiddleware)
	RegisterCommissionRoutes(router, h)
	return router
}
