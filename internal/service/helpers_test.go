package service_test

import (
	"salesdesk-backend/internal/database/models"
	"salesdesk-backend/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// newActor builds an actor holding an active membership with the given role
func newActor(orgID uuid.UUID, role models.MembershipRole) *service.Actor {
	userID := uuid.New()
	return &service.Actor{
		UserID: userID,
		Email:  "user-" + userID.String()[:8] + "@example.com",
		Membership: &models.Membership{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: orgID,
			UserID:         userID,
			Role:           role,
			Status:         models.MembershipStatusActive,
		},
	}
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
}
