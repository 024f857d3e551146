package validator

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

// AppValidator implements the usecasecontract.IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the custom tags registered.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	registerTags(v)
	return &AppValidator{validate: v}
}

// ValidateStruct validates s against its validate tags.
func (av *AppValidator) ValidateStruct(s interface{}) error {
	return av.validate.Struct(s)
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerTags(v)
	}
}

func registerTags(v *validator.Validate) {
	_ = v.RegisterValidation("reaction", reactionFL)
	_ = v.RegisterValidation("notblank", notBlankFL)
}

// reactionFL accepts the known reaction kinds.
func reactionFL(fl validator.FieldLevel) bool {
	return entity.ReactionType(fl.Field().String()).Valid()
}

// notBlankFL rejects strings made of whitespace only.
func notBlankFL(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
