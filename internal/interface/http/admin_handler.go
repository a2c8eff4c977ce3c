package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/lawbridge/lawbridge-backend/internal/application"
	"github.com/lawbridge/lawbridge-backend/pkg/response"
	"github.com/lawbridge/lawbridge-backend/pkg/validation"
)

type AdminHandler struct {
	Svc    *app.AccountService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *app.AccountService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

type listUsersQuery struct {
	Role                *string `form:"role" binding:"omitempty,oneof=client lawyer admin"`
	Banned              *bool   `form:"banned"`
	OnboardingCompleted *bool   `form:"onboarding_completed"`
	Page                int     `form:"page" binding:"omitempty,gte=1"`
	Limit               int     `form:"limit" binding:"omitempty,gte=1,lte=100"`
}

type banUserRequest struct {
	Reason    string     `json:"reason" binding:"required"`
	ExpiresAt *time.Time `json:"expires_at"`
}

type changeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=client lawyer admin"`
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var q listUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid query", validation.ToDetails(err))
		return
	}
	page, err := h.Svc.ListUsers(c.Request.Context(), app.ListUsersInput{
		ActorID:             c.GetString("accountID"),
		Role:                q.Role,
		Banned:              q.Banned,
		OnboardingCompleted: q.OnboardingCompleted,
		Page:                q.Page,
		Limit:               q.Limit,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	items := make([]gin.H, 0, len(page.Items))
	for _, a := range page.Items {
		items = append(items, accountView(a))
	}
	response.Success(c, http.StatusOK, items, "users", gin.H{
		"page":         page.Page,
		"limit":        page.Limit,
		"total":        page.Total,
		"total_pages":  page.TotalPages,
		"has_next":     page.HasNext,
		"has_previous": page.HasPrevious,
	})
}

func (h *AdminHandler) SearchUsers(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	size := 10
	if s, err := strconv.Atoi(c.DefaultQuery("size", "10")); err == nil {
		size = s
	}
	hits, err := h.Svc.SearchUsers(c.Request.Context(), c.GetString("accountID"), q, size)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)})
}

func (h *AdminHandler) BanUser(c *gin.Context) {
	var req banUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	account, err := h.Svc.BanUser(c.Request.Context(), c.GetString("accountID"), c.Param("id"), req.Reason, req.ExpiresAt)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, accountView(account), "user banned", nil)
}

func (h *AdminHandler) UnbanUser(c *gin.Context) {
	account, err := h.Svc.UnbanUser(c.Request.Context(), c.GetString("accountID"), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, accountView(account), "user unbanned", nil)
}

func (h *AdminHandler) ChangeRole(c *gin.Context) {
	var req changeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	account, err := h.Svc.ChangeRole(c.Request.Context(), c.GetString("accountID"), c.Param("id"), req.Role)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, accountView(account), "role updated", nil)
}
