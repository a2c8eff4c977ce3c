package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/lawbridge/lawbridge-backend/internal/application"
	"github.com/lawbridge/lawbridge-backend/pkg/response"
	"github.com/lawbridge/lawbridge-backend/pkg/validation"
)

const maxDocumentSize = 10 << 20 // 10 MiB

type LawyerHandler struct {
	Svc    *app.LawyerOnboardingService
	Logger *logrus.Logger
}

func NewLawyerHandler(svc *app.LawyerOnboardingService, logger *logrus.Logger) *LawyerHandler {
	return &LawyerHandler{Svc: svc, Logger: logger}
}

type startOnboardingRequest struct {
	FirstName   string `json:"first_name" binding:"required,min=2"`
	LastName    string `json:"last_name" binding:"required,min=2"`
	PhoneNumber string `json:"phone_number" binding:"required,phone"`
	Country     string `json:"country" binding:"required"`
	CurrentFirm string `json:"current_firm"`
}

type saveCredentialsRequest struct {
	BarNumber      string    `json:"bar_number" binding:"required,min=5"`
	BarIssuedAt    time.Time `json:"bar_issued_at" binding:"required"`
	School         string    `json:"school" binding:"required,min=3"`
	GraduationYear int       `json:"graduation_year" binding:"required,gte=1900"`
}

type specializationEntry struct {
	SpecializationID  string `json:"specialization_id" binding:"required,uuid"`
	YearsOfExperience int    `json:"years_of_experience" binding:"gte=0,lte=70"`
}

type saveSpecializationsRequest struct {
	Primary     []specializationEntry `json:"primary" binding:"required,min=1,max=5,dive"`
	Secondary   []specializationEntry `json:"secondary" binding:"omitempty,max=3,dive"`
	LanguageIDs []string              `json:"language_ids" binding:"required,min=1,dive,uuid"`
}

func (h *LawyerHandler) StartOnboarding(c *gin.Context) {
	var req startOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	profile, err := h.Svc.StartOnboarding(c.Request.Context(), app.StartOnboardingInput{
		AccountID:   c.GetString("accountID"),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       c.GetString("userEmail"),
		PhoneNumber: req.PhoneNumber,
		Country:     req.Country,
		CurrentFirm: req.CurrentFirm,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, lawyerProfileView(profile), "lawyer onboarding started", nil)
}

func (h *LawyerHandler) SaveCredentials(c *gin.Context) {
	var req saveCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	profile, err := h.Svc.SaveCredentials(c.Request.Context(), app.SaveCredentialsInput{
		AccountID:      c.GetString("accountID"),
		BarNumber:      req.BarNumber,
		BarIssuedAt:    req.BarIssuedAt,
		School:         req.School,
		GraduationYear: req.GraduationYear,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, lawyerProfileView(profile), "credentials saved", nil)
}

func (h *LawyerHandler) SaveSpecializations(c *gin.Context) {
	var req saveSpecializationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	profile, err := h.Svc.SaveSpecializations(c.Request.Context(), app.SaveSpecializationsInput{
		AccountID:   c.GetString("accountID"),
		Primary:     toSpecializationInputs(req.Primary),
		Secondary:   toSpecializationInputs(req.Secondary),
		LanguageIDs: req.LanguageIDs,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, lawyerProfileView(profile), "specializations saved", nil)
}

func (h *LawyerHandler) UploadDocument(c *gin.Context) {
	file, err := c.FormFile("document")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "document file is required", nil)
		return
	}
	if file.Size > maxDocumentSize {
		response.Error[any](c, http.StatusBadRequest, "document exceeds the 10MB limit", nil)
		return
	}
	f, err := file.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unable to read document", nil)
		return
	}
	defer f.Close()

	profile, err := h.Svc.UploadDocument(c.Request.Context(), c.GetString("accountID"), f, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, lawyerProfileView(profile), "document uploaded", nil)
}

func (h *LawyerHandler) SubmitForReview(c *gin.Context) {
	profile, err := h.Svc.SubmitForReview(c.Request.Context(), c.GetString("accountID"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, lawyerProfileView(profile), "application submitted for review", nil)
}

func (h *LawyerHandler) GetProfile(c *gin.Context) {
	profile, err := h.Svc.GetProfile(c.Request.Context(), c.GetString("accountID"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, lawyerProfileView(profile), "lawyer profile", nil)
}

func toSpecializationInputs(entries []specializationEntry) []app.SpecializationInput {
	out := make([]app.SpecializationInput, 0, len(entries))
	for _, e := range entries {
		out = append(out, app.SpecializationInput{
			SpecializationID:  e.SpecializationID,
			YearsOfExperience: e.YearsOfExperience,
		})
	}
	return out
}
