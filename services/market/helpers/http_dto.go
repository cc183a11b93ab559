package helpers

// Context/session keys shared between middleware and handlers
const (
	ContextUserID = "user_id"
	SessionCookie = "token"
)

// Request/Response DTOs
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateGigRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Budget      float64 `json:"budget" binding:"required,gt=0"`
}

type SubmitBidRequest struct {
	Message string  `json:"message" binding:"required"`
	Price   float64 `json:"price" binding:"required,gt=0"`
}

type GigResponse struct {
	GigID       string  `json:"gig_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
	Status      string  `json:"status"`
	OwnerID     string  `json:"owner_id"`
	CreatedAt   string  `json:"created_at"`
}

type BidResponse struct {
	BidID        string  `json:"bid_id"`
	GigID        string  `json:"gig_id"`
	FreelancerID string  `json:"freelancer_id"`
	Message      string  `json:"message"`
	Price        float64 `json:"price"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}
