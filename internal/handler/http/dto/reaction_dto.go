package dto

// GetClientReactionRequest is the body of the get_client_reaction procedure.
type GetClientReactionRequest struct {
	ClientID string `json:"client_id" binding:"required,notblank"`
	PostID   string `json:"post_id" binding:"required,notblank"`
}

// ToggleClientReactionRequest is the body of the toggle_client_reaction procedure.
type ToggleClientReactionRequest struct {
	ClientID string `json:"client_id" binding:"required,notblank"`
	PostID   string `json:"post_id" binding:"required,notblank"`
	Reaction string `json:"reaction" binding:"required,oneof=like dislike"`
}

// ReactionResponse carries the resulting reaction; null means none.
type ReactionResponse struct {
	Reaction *string `json:"reaction" validate:"omitempty,reaction"`
}
