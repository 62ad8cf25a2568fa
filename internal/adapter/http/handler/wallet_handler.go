package handler

import (
	"tokengated-music/internal/adapter/http/dto"
	"tokengated-music/internal/adapter/http/middleware"
	"tokengated-music/internal/core/ports"
	"tokengated-music/pkg/apperror"
	"tokengated-music/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet session endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// Connect handles POST /api/v1/wallet/connect.
func (h *WalletHandler) Connect(c *gin.Context) {
	result, err := h.walletSvc.Connect(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ConnectResponse{
		Address:   result.Session.Address,
		ChainID:   result.Session.ChainID,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Unix(),
	})
}

// Session handles GET /api/v1/wallet/session.
func (h *WalletHandler) Session(c *gin.Context) {
	var q dto.SessionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	session, err := h.walletSvc.Restore(c.Request.Context(), q.Address)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, session)
}

// Disconnect handles POST /api/v1/wallet/disconnect.
func (h *WalletHandler) Disconnect(c *gin.Context) {
	if err := h.walletSvc.Disconnect(c.Request.Context(), middleware.Address(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"disconnected": true})
}
