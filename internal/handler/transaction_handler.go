package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"zarcaro/internal/middleware"
	"zarcaro/internal/models"
)

type TransactionHandler struct {
	transactions TransactionStore
}

func NewTransactionHandler(transactions TransactionStore) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// List returns the caller's transactions, most recent first.
func (h *TransactionHandler) List(c *gin.Context) {
	uid := middleware.GetUserID(c)
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()
	txs, err := h.transactions.ListByUser(ctx, uid)
	if err != nil {
		log.Printf("[Transactions] list failed for uid=%s: %v", uid, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load transactions"})
		return
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	c.JSON(http.StatusOK, txs)
}
