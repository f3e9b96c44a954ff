package wire

import (
	"event-planner/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBudget(r chi.Router, budgetHandler *adaptor.BudgetHandler) {
	r.Route("/api/budget", func(r chi.Router) {
		r.Post("/breakdown", budgetHandler.Breakdown)
		r.Post("/estimate", budgetHandler.Estimate)
		r.Post("/compare", budgetHandler.Compare)
	})

	r.Route("/api/vendors/{vendorID}", func(r chi.Router) {
		r.Put("/", budgetHandler.SaveVendor)
		r.Post("/quote", budgetHandler.QuoteVendor)
	})
}
