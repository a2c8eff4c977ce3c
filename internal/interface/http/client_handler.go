package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/lawbridge/lawbridge-backend/internal/application"
	"github.com/lawbridge/lawbridge-backend/pkg/response"
	"github.com/lawbridge/lawbridge-backend/pkg/validation"
)

type ClientHandler struct {
	Svc    *app.OnboardingService
	Logger *logrus.Logger
}

func NewClientHandler(svc *app.OnboardingService, logger *logrus.Logger) *ClientHandler {
	return &ClientHandler{Svc: svc, Logger: logger}
}

type completeOnboardingRequest struct {
	DisplayName       string   `json:"display_name" binding:"required,min=2"`
	PhoneNumber       string   `json:"phone_number" binding:"omitempty,phone"`
	Country           string   `json:"country" binding:"required"`
	State             string   `json:"state" binding:"required"`
	Company           string   `json:"company"`
	SpecializationIDs []string `json:"specialization_ids" binding:"required,min=1,max=3,dive,uuid"`
}

type updateClientProfileRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,min=2"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,phone"`
	Company     *string `json:"company"`
	Country     *string `json:"country"`
	State       *string `json:"state"`
}

type specializationIDRequest struct {
	SpecializationID string `json:"specialization_id" binding:"required,uuid"`
}

func (h *ClientHandler) CompleteOnboarding(c *gin.Context) {
	var req completeOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.CompleteOnboarding(c.Request.Context(), app.CompleteOnboardingInput{
		AccountID:         c.GetString("accountID"),
		DisplayName:       req.DisplayName,
		EmailVerified:     c.GetBool("emailVerified"),
		PhoneNumber:       req.PhoneNumber,
		Country:           req.Country,
		State:             req.State,
		Company:           req.Company,
		SpecializationIDs: req.SpecializationIDs,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, "onboarding completed", nil)
}

func (h *ClientHandler) GetProfile(c *gin.Context) {
	profile, err := h.Svc.GetClientProfile(c.Request.Context(), c.GetString("accountID"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, clientProfileView(profile), "client profile", nil)
}

func (h *ClientHandler) UpdateProfile(c *gin.Context) {
	var req updateClientProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	profile, err := h.Svc.UpdateClientProfile(c.Request.Context(), c.GetString("accountID"), app.ClientProfileUpdateInput{
		DisplayName: req.DisplayName,
		PhoneNumber: req.PhoneNumber,
		Company:     req.Company,
		Country:     req.Country,
		State:       req.State,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, clientProfileView(profile), "profile updated", nil)
}

func (h *ClientHandler) AddSpecialization(c *gin.Context) {
	var req specializationIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	profile, err := h.Svc.AddSpecialization(c.Request.Context(), c.GetString("accountID"), req.SpecializationID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, clientProfileView(profile), "specialization added", nil)
}

func (h *ClientHandler) RemoveSpecialization(c *gin.Context) {
	profile, err := h.Svc.RemoveSpecialization(c.Request.Context(), c.GetString("accountID"), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, clientProfileView(profile), "specialization removed", nil)
}
