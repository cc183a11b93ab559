package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gig-market/internal/markerrors"
	model "gig-market/internal/models"
	"gig-market/utils"
)

// CurrentUserID returns the authenticated user id set by the auth middleware.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, markerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, markerrors.ErrBadCredentials):
		return http.StatusBadRequest, "incorrect email or password"
	case errors.Is(err, markerrors.ErrEmailTaken):
		return http.StatusBadRequest, "email already registered"
	case errors.Is(err, markerrors.ErrGigNotFound):
		return http.StatusNotFound, "gig not found"
	case errors.Is(err, markerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, markerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, markerrors.ErrForbidden):
		return http.StatusForbidden, "not authorized for this resource"
	case errors.Is(err, markerrors.ErrGigNotOpen):
		return http.StatusBadRequest, "this gig is no longer accepting bids"
	case errors.Is(err, markerrors.ErrSelfBid):
		return http.StatusBadRequest, "you cannot bid on your own gig"
	case errors.Is(err, markerrors.ErrDuplicateBid):
		return http.StatusBadRequest, "you have already submitted a bid for this gig"
	case errors.Is(err, markerrors.ErrGigAssigned):
		return http.StatusBadRequest, "this gig has already been assigned"
	case errors.Is(err, markerrors.ErrContention):
		return http.StatusConflict, "conflicting update, please retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandleServiceError maps the error, responds, and logs it. Internal errors
// are surfaced with a generic message only.
func HandleServiceError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	if status == http.StatusInternalServerError {
		utils.JSONError(c, status, errors.New(message), message)
	} else {
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	}

	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["handler"] = handlerName
	ctx["status"] = status
	ctx["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+message, ctx)
	} else {
		utils.Warn(handlerName+": "+message, ctx)
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToGigResponse converts a gig entity to its response DTO
func ToGigResponse(gig model.Gig) GigResponse {
	return GigResponse{
		GigID:       gig.GigID,
		Title:       gig.Title,
		Description: gig.Description,
		Budget:      gig.Budget,
		Status:      string(gig.Status),
		OwnerID:     gig.OwnerID,
		CreatedAt:   gig.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToBidResponse converts a bid entity to its response DTO
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:        bid.BidID,
		GigID:        bid.GigID,
		FreelancerID: bid.FreelancerID,
		Message:      bid.Message,
		Price:        bid.Price,
		Status:       string(bid.Status),
		CreatedAt:    bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}
