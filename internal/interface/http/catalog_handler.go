package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/lawbridge/lawbridge-backend/internal/application"
	"github.com/lawbridge/lawbridge-backend/pkg/response"
)

type CatalogHandler struct {
	Svc *app.CatalogService
}

func NewCatalogHandler(svc *app.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

func (h *CatalogHandler) ListSpecializations(c *gin.Context) {
	specs, err := h.Svc.ListSpecializations(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	items := make([]gin.H, 0, len(specs))
	for _, s := range specs {
		items = append(items, gin.H{"id": s.ID, "name": s.Name, "active": s.Active})
	}
	response.Success(c, http.StatusOK, items, "specializations", gin.H{"count": len(items)})
}

func (h *CatalogHandler) ListLanguages(c *gin.Context) {
	langs, err := h.Svc.ListLanguages(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	items := make([]gin.H, 0, len(langs))
	for _, l := range langs {
		items = append(items, gin.H{"id": l.ID, "name": l.Name, "code": l.Code})
	}
	response.Success(c, http.StatusOK, items, "languages", gin.H{"count": len(items)})
}
