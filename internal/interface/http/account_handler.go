package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/lawbridge/lawbridge-backend/internal/application"
	"github.com/lawbridge/lawbridge-backend/pkg/response"
	"github.com/lawbridge/lawbridge-backend/pkg/validation"
)

type AccountHandler struct {
	Svc    *app.AccountService
	Logger *logrus.Logger
}

func NewAccountHandler(svc *app.AccountService, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Svc: svc, Logger: logger}
}

type updateAccountRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,min=2"`
	AvatarURL   *string `json:"avatar_url" binding:"omitempty,url"`
}

func (h *AccountHandler) GetProfile(c *gin.Context) {
	account, err := h.Svc.GetAccount(c.Request.Context(), c.GetString("accountID"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, accountView(account), "account profile", nil)
}

func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	account, err := h.Svc.UpdateProfile(c.Request.Context(), c.GetString("accountID"), app.UpdateProfileInput{
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, accountView(account), "profile updated", nil)
}
