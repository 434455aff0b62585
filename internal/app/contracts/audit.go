package contracts

import (
	"clinicgate-service/internal/app/models"
	"context"
)

type AuditPublisher interface {
	PublishAuditEvent(ctx context.Context, event *models.AuditEvent) error
}
