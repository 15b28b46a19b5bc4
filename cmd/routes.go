package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"taskbazaar/internal/metrics"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON, app.countRequests)
	authMiddleware := standardMiddleware.Append(app.requireAuth)

	mux := pat.New()

	// Escrow
	mux.Get("/escrow/task/:task_id/view", authMiddleware.ThenFunc(app.escrowHandler.GetEscrowView))
	mux.Get("/escrow/:id", authMiddleware.ThenFunc(app.escrowHandler.GetEscrowByID))
	mux.Post("/escrow/:id/release", authMiddleware.ThenFunc(app.escrowHandler.ReleaseEscrow))
	mux.Post("/escrow/:id/refund", authMiddleware.ThenFunc(app.escrowHandler.RefundEscrow))

	// Payments
	mux.Post("/payments/initiate", authMiddleware.ThenFunc(app.paymentHandler.InitiatePayment))
	mux.Post("/payments/verify", authMiddleware.ThenFunc(app.paymentHandler.VerifyPayment))
	mux.Post("/fees/quote", authMiddleware.ThenFunc(app.feeHandler.QuoteFees))

	// Saved payment method
	mux.Get("/payment_method", authMiddleware.ThenFunc(app.paymentMethodHandler.GetPaymentMethod))
	mux.Put("/payment_method", authMiddleware.ThenFunc(app.paymentMethodHandler.SavePaymentMethod))
	mux.Del("/payment_method", authMiddleware.ThenFunc(app.paymentMethodHandler.ClearPaymentMethod))

	// Transactions
	mux.Get("/transactions", authMiddleware.ThenFunc(app.transactionHandler.GetTransactions))

	// Home screen decisions
	mux.Get("/home/primary_action", authMiddleware.ThenFunc(app.homeHandler.GetPrimaryAction))
	mux.Get("/home/summary_card", authMiddleware.ThenFunc(app.homeHandler.GetSummaryCard))

	mux.Get("/metrics", standardMiddleware.Then(metrics.Handler()))

	return mux
}
