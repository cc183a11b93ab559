package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	model "gig-market/internal/models"
	"gig-market/services/market/helpers"
	"gig-market/utils"
)

type BidServiceInterface interface {
	SubmitBid(ctx context.Context, gigID, freelancerID, message string, price float64) (model.Bid, error)
	ListBidsForGig(ctx context.Context, gigID, requesterID string) ([]model.BidWithBidder, error)
	ListMyBids(ctx context.Context, freelancerID string) ([]model.BidWithGig, error)
	Hire(ctx context.Context, bidID, requesterID string) (model.Bid, error)
}

type BidHandler struct {
	service BidServiceInterface
}

func NewBidHandler(service BidServiceInterface) *BidHandler {
	return &BidHandler{service: service}
}

// SubmitBidHandler handles POST /gigs/:gig_id/bids
func (h *BidHandler) SubmitBidHandler(c *gin.Context) {
	var req helpers.SubmitBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}

	gigID := c.Param("gig_id")
	freelancerID := helpers.CurrentUserID(c)

	bid, err := h.service.SubmitBid(c.Request.Context(), gigID, freelancerID, req.Message, req.Price)
	if err != nil {
		helpers.HandleServiceError(c, "SubmitBidHandler", err, map[string]any{
			"gig_id":        gigID,
			"freelancer_id": freelancerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid submitted successfully")
	helpers.LogSuccess("SubmitBidHandler", "bid submitted successfully", map[string]any{
		"bid_id":        bid.BidID,
		"gig_id":        gigID,
		"freelancer_id": freelancerID,
		"price":         bid.Price,
	})
}

// ListGigBidsHandler handles GET /gigs/:gig_id/bids
func (h *BidHandler) ListGigBidsHandler(c *gin.Context) {
	gigID := c.Param("gig_id")
	requesterID := helpers.CurrentUserID(c)

	bids, err := h.service.ListBidsForGig(c.Request.Context(), gigID, requesterID)
	if err != nil {
		helpers.HandleServiceError(c, "ListGigBidsHandler", err, map[string]any{
			"gig_id":       gigID,
			"requester_id": requesterID,
		})
		return
	}

	if bids == nil {
		bids = []model.BidWithBidder{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}

// MyBidsHandler handles GET /bids/my
func (h *BidHandler) MyBidsHandler(c *gin.Context) {
	freelancerID := helpers.CurrentUserID(c)

	bids, err := h.service.ListMyBids(c.Request.Context(), freelancerID)
	if err != nil {
		helpers.HandleServiceError(c, "MyBidsHandler", err, map[string]any{"freelancer_id": freelancerID})
		return
	}

	if bids == nil {
		bids = []model.BidWithGig{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}

// HireBidHandler handles POST /bids/:bid_id/hire
func (h *BidHandler) HireBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	requesterID := helpers.CurrentUserID(c)

	bid, err := h.service.Hire(c.Request.Context(), bidID, requesterID)
	if err != nil {
		helpers.HandleServiceError(c, "HireBidHandler", err, map[string]any{
			"bid_id":       bidID,
			"requester_id": requesterID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "freelancer hired successfully")
	helpers.LogSuccess("HireBidHandler", "freelancer hired successfully", map[string]any{
		"bid_id":        bid.BidID,
		"gig_id":        bid.GigID,
		"freelancer_id": bid.FreelancerID,
		"requester_id":  requesterID,
	})
}
