package main

import (
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"taskbazaar/internal/config"
	"taskbazaar/internal/handlers"
	"taskbazaar/internal/repositories"
	"taskbazaar/internal/services"
	"taskbazaar/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger

	tokens *utils.Manager

	snapshotCache *repositories.SnapshotCache

	escrowHandler        *handlers.EscrowHandler
	paymentHandler       *handlers.PaymentHandler
	transactionHandler   *handlers.TransactionHandler
	feeHandler           *handlers.FeeHandler
	homeHandler          *handlers.HomeHandler
	paymentMethodHandler *handlers.PaymentMethodHandler
}

func initializeApp(cfg config.Config, rdb *redis.Client, ledger *repositories.LedgerClient, errorLog, infoLog *log.Logger) (*application, error) {
	tokens, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(cfg.Snapshot.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}

	// Repositories
	snapshotCache := &repositories.SnapshotCache{Client: rdb, TTL: ttl}
	methodStore := &repositories.RedisPaymentMethodStore{Client: rdb}

	// Services
	snapshotService := &services.SnapshotService{Ledger: ledger, Cache: snapshotCache}
	escrowService := &services.EscrowService{Ledger: ledger, Snapshots: snapshotService}
	paymentService := &services.PaymentService{Ledger: ledger, Methods: methodStore, Snapshots: snapshotService}
	transactionService := &services.TransactionService{Ledger: ledger}
	feeService := &services.FeeService{RateBasisPoints: cfg.Fees.RateBasisPoints, Currency: cfg.Fees.Currency}
	priorityService := &services.PriorityService{}

	// Handlers
	escrowHandler := &handlers.EscrowHandler{Service: escrowService}
	paymentHandler := &handlers.PaymentHandler{Service: paymentService}
	transactionHandler := &handlers.TransactionHandler{Service: transactionService}
	feeHandler := &handlers.FeeHandler{Service: feeService}
	homeHandler := &handlers.HomeHandler{Snapshots: snapshotService, Priority: priorityService}
	paymentMethodHandler := &handlers.PaymentMethodHandler{Store: methodStore}

	return &application{
		errorLog:             errorLog,
		infoLog:              infoLog,
		tokens:               tokens,
		snapshotCache:        snapshotCache,
		escrowHandler:        escrowHandler,
		paymentHandler:       paymentHandler,
		transactionHandler:   transactionHandler,
		feeHandler:           feeHandler,
		homeHandler:          homeHandler,
		paymentMethodHandler: paymentMethodHandler,
	}, nil
}
