package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridelite/internal/domain"
	"ridelite/internal/service"
)

// WalletHandler handles HTTP requests for the wallet.
type WalletHandler struct {
	wallet *service.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(wallet *service.WalletService) *WalletHandler {
	return &WalletHandler{wallet: wallet}
}

// WalletResponse is the HTTP response for wallet state.
type WalletResponse struct {
	Balance float64 `json:"balance"`
	Method  string  `json:"method,omitempty"`
}

// SelectMethodRequest is the HTTP request body for selecting a payment method.
type SelectMethodRequest struct {
	Method string `json:"method"`
}

// TopUpRequest is the HTTP request body for a wallet top-up.
type TopUpRequest struct {
	Amount float64 `json:"amount"`
}

// PaymentResponse is the HTTP response for a confirmed payment.
type PaymentResponse struct {
	Trip       domain.Trip `json:"trip"`
	NewBalance float64     `json:"new_balance"`
}

// PendingPaymentResponse wraps the nullable pending payment record.
type PendingPaymentResponse struct {
	Ride *domain.Ride `json:"ride"`
}

// Get handles GET /v1/wallet
func (h *WalletHandler) Get(c *gin.Context) {
	balance, err := h.wallet.Balance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, WalletResponse{
		Balance: balance,
		Method:  string(h.wallet.Method()),
	})
}

// SelectMethod handles POST /v1/wallet/method
func (h *WalletHandler) SelectMethod(c *gin.Context) {
	var req SelectMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.wallet.SelectMethod(domain.PaymentMethod(req.Method)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// TopUp handles POST /v1/wallet/topup
func (h *WalletHandler) TopUp(c *gin.Context) {
	var req TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	balance, err := h.wallet.TopUp(c.Request.Context(), req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, WalletResponse{
		Balance: balance,
		Method:  string(h.wallet.Method()),
	})
}

// Pending handles GET /v1/wallet/pending
func (h *WalletHandler) Pending(c *gin.Context) {
	ride, err := h.wallet.PendingPayment(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, PendingPaymentResponse{Ride: ride})
}

// Pay handles POST /v1/wallet/pay
func (h *WalletHandler) Pay(c *gin.Context) {
	result, err := h.wallet.ConfirmPayment(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, PaymentResponse{
		Trip:       result.Trip,
		NewBalance: result.NewBalance,
	})
}
