package domain

// EnforceRequest is one authorization question: may the holder of Role act
// on Resource within SchoolID.
type EnforceRequest struct {
	UserID   string `json:"user_id"`
	SchoolID string `json:"school_id" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
