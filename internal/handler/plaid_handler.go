package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"zarcaro/internal/middleware"
	"zarcaro/pkg/plaidlink"
)

type PlaidHandler struct {
	links plaidlink.Provider
	users UserStore
}

func NewPlaidHandler(links plaidlink.Provider, users UserStore) *PlaidHandler {
	return &PlaidHandler{links: links, users: users}
}

// CreateLinkToken generates a link token scoped to the current user. Nothing
// is stored; the token only seeds the client-side Link flow.
func (h *PlaidHandler) CreateLinkToken(c *gin.Context) {
	uid := middleware.GetUserID(c)
	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamTimeout)
	defer cancel()
	token, err := h.links.CreateLinkToken(ctx, uid)
	if err != nil {
		log.Printf("[Plaid] link token create failed for uid=%s: %v", uid, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, token)
}

// ExchangePublicToken swaps the public token for an access token and
// merge-writes it onto the user document.
func (h *PlaidHandler) ExchangePublicToken(c *gin.Context) {
	uid := middleware.GetUserID(c)
	var req struct {
		PublicToken string `json:"public_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "public_token is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamTimeout)
	defer cancel()
	accessToken, err := h.links.ExchangePublicToken(ctx, req.PublicToken)
	if err != nil {
		log.Printf("[Plaid] public token exchange failed for uid=%s: %v", uid, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	storeCtx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()
	if err := h.users.SetPlaidAccessToken(storeCtx, uid, accessToken); err != nil {
		log.Printf("[Plaid] access token store failed for uid=%s: %v", uid, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store access token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bank account linked"})
}
