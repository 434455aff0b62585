package utils

import (
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/pkg/dto/responses"
	"time"
)

func BuildUserProfileResponse(user *models.User) *responses.UserProfile {
	if user == nil {
		return nil
	}

	roles := make([]responses.Role, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, responses.Role{ID: role.ID, Name: role.Name})
	}

	return &responses.UserProfile{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		ClinicID:    user.ClinicID,
		Roles:       roles,
		PrimaryRole: user.PrimaryRole().Name,
	}
}

func BuildActivityLogResponses(logs []models.ActivityLog) []responses.ActivityLog {
	result := make([]responses.ActivityLog, 0, len(logs))
	for _, entry := range logs {
		result = append(result, responses.ActivityLog{
			ID:         entry.ID,
			Actor:      entry.Actor,
			ActorEmail: entry.ActorEmail,
			ClinicID:   entry.ClinicID,
			Action:     entry.Action,
			Path:       entry.Path,
			Detail:     entry.Detail,
			CreatedAt:  entry.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}
