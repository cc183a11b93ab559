package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	model "gig-market/internal/models"
	"gig-market/services/market/helpers"
	"gig-market/utils"
)

type GigServiceInterface interface {
	CreateGig(ctx context.Context, ownerID, title, description string, budget float64) (model.Gig, error)
	ListOpenGigs(ctx context.Context, keyword string) ([]model.Gig, error)
	GetGig(ctx context.Context, gigID string) (model.Gig, error)
	ListMyGigs(ctx context.Context, ownerID string) ([]model.Gig, error)
	DeleteGig(ctx context.Context, gigID, requesterID string) error
}

type GigHandler struct {
	service GigServiceInterface
}

func NewGigHandler(service GigServiceInterface) *GigHandler {
	return &GigHandler{service: service}
}

// CreateGigHandler handles POST /gigs
func (h *GigHandler) CreateGigHandler(c *gin.Context) {
	var req helpers.CreateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateGigHandler", err)
		return
	}

	ownerID := helpers.CurrentUserID(c)
	gig, err := h.service.CreateGig(c.Request.Context(), ownerID, req.Title, req.Description, req.Budget)
	if err != nil {
		helpers.HandleServiceError(c, "CreateGigHandler", err, map[string]any{"owner_id": ownerID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToGigResponse(gig), "gig created successfully")
	helpers.LogSuccess("CreateGigHandler", "gig created successfully", map[string]any{
		"gig_id":   gig.GigID,
		"owner_id": ownerID,
		"budget":   gig.Budget,
	})
}

// ListGigsHandler handles GET /gigs?keyword=
func (h *GigHandler) ListGigsHandler(c *gin.Context) {
	keyword := c.Query("keyword")
	gigs, err := h.service.ListOpenGigs(c.Request.Context(), keyword)
	if err != nil {
		helpers.HandleServiceError(c, "ListGigsHandler", err, map[string]any{"keyword": keyword})
		return
	}

	if gigs == nil {
		gigs = []model.Gig{}
	}

	utils.JSONResponse(c, http.StatusOK, gigs, "gigs retrieved successfully")
}

// GetGigHandler handles GET /gigs/:gig_id
func (h *GigHandler) GetGigHandler(c *gin.Context) {
	gigID := c.Param("gig_id")
	gig, err := h.service.GetGig(c.Request.Context(), gigID)
	if err != nil {
		helpers.HandleServiceError(c, "GetGigHandler", err, map[string]any{"gig_id": gigID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gig, "gig retrieved successfully")
}

// MyGigsHandler handles GET /gigs/my
func (h *GigHandler) MyGigsHandler(c *gin.Context) {
	ownerID := helpers.CurrentUserID(c)
	gigs, err := h.service.ListMyGigs(c.Request.Context(), ownerID)
	if err != nil {
		helpers.HandleServiceError(c, "MyGigsHandler", err, map[string]any{"owner_id": ownerID})
		return
	}

	if gigs == nil {
		gigs = []model.Gig{}
	}

	utils.JSONResponse(c, http.StatusOK, gigs, "gigs retrieved successfully")
}

// DeleteGigHandler handles DELETE /gigs/:gig_id
func (h *GigHandler) DeleteGigHandler(c *gin.Context) {
	gigID := c.Param("gig_id")
	requesterID := helpers.CurrentUserID(c)

	if err := h.service.DeleteGig(c.Request.Context(), gigID, requesterID); err != nil {
		helpers.HandleServiceError(c, "DeleteGigHandler", err, map[string]any{
			"gig_id":       gigID,
			"requester_id": requesterID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "gig deleted successfully")
	helpers.LogSuccess("DeleteGigHandler", "gig deleted successfully", map[string]any{
		"gig_id":       gigID,
		"requester_id": requesterID,
	})
}
