package auth

import (
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/pkg/dto/requests"
	"clinicgate-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, session *models.Session) error
	CurrentUser(ctx context.Context, session *models.Session) (*responses.UserProfile, error)
}
