package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	"github.com/mikiasgoitom/Inflo/internal/handler/http/dto"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/metrics"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

// ReactionHandlerInterface is implemented by ReactionHandler.
type ReactionHandlerInterface interface {
	GetClientReactionHandler(*gin.Context)
	ToggleClientReactionHandler(*gin.Context)
}

var _ ReactionHandlerInterface = (*ReactionHandler)(nil)

// ReactionHandler serves the reaction procedures.
type ReactionHandler struct {
	reactionUsecase usecasecontract.IReactionUseCase
}

func NewReactionHandler(reactionUsecase usecasecontract.IReactionUseCase) *ReactionHandler {
	return &ReactionHandler{reactionUsecase: reactionUsecase}
}

func (h *ReactionHandler) GetClientReactionHandler(c *gin.Context) {
	var req dto.GetClientReactionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	reaction, err := h.reactionUsecase.GetClientReaction(c.Request.Context(), req.ClientID, req.PostID)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to get reaction")
		return
	}
	SuccessHandler(c, http.StatusOK, toReactionResponse(reaction))
}

// ToggleClientReactionHandler applies a like or dislike; repeating the current one removes it.
func (h *ReactionHandler) ToggleClientReactionHandler(c *gin.Context) {
	var req dto.ToggleClientReactionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	reaction, err := h.reactionUsecase.ToggleClientReaction(c.Request.Context(), req.ClientID, req.PostID, entity.ReactionType(req.Reaction))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidReaction) {
			ErrorHandler(c, http.StatusBadRequest, err.Error())
			return
		}
		notFoundOr(c, err, "Failed to toggle reaction")
		return
	}

	result := "none"
	if reaction != nil {
		result = string(*reaction)
	}
	metrics.IncReactionToggle(req.Reaction, result)
	SuccessHandler(c, http.StatusOK, toReactionResponse(reaction))
}

func toReactionResponse(reaction *entity.ReactionType) dto.ReactionResponse {
	if reaction == nil {
		return dto.ReactionResponse{}
	}
	s := string(*reaction)
	return dto.ReactionResponse{Reaction: &s}
}
