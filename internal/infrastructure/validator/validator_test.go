package validator_test

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"

	"github.com/mikiasgoitom/Inflo/internal/handler/http/dto"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/validator"
)

func TestValidateStruct_ReactionResponse(t *testing.T) {
	v := validator.NewValidator()
	like, love := "like", "love"

	assert.NoError(t, v.ValidateStruct(dto.ReactionResponse{}))
	assert.NoError(t, v.ValidateStruct(dto.ReactionResponse{Reaction: &like}))
	assert.Error(t, v.ValidateStruct(dto.ReactionResponse{Reaction: &love}))
}

func TestRegisterCustomValidators_NotBlank(t *testing.T) {
	validator.RegisterCustomValidators()

	assert.Error(t, binding.Validator.ValidateStruct(&dto.CreateCommentRequest{Content: "   "}))
	assert.NoError(t, binding.Validator.ValidateStruct(&dto.CreateCommentRequest{Content: "hi"}))
}
