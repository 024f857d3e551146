package dto

import (
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

// CurrentUserResponse is the optional signed-in user; User is null when anonymous.
type CurrentUserResponse struct {
	User *entity.AuthUser `json:"user"`
}
