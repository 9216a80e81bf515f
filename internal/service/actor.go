package service

import (
	"context"
	"fmt"

	"salesdesk-backend/internal/database/models"
	"salesdesk-backend/internal/repository"

	"github.com/google/uuid"
)

// Actor is the authenticated caller. Membership is set for requests scoped
// to an organization and nil otherwise.
type Actor struct {
	UserID     uuid.UUID
	Email      string
	Membership *models.Membership
}

// OrganizationID returns the organization the actor is acting in
func (a *Actor) OrganizationID() uuid.UUID {
	if a.Membership == nil {
		return uuid.Nil
	}
	return a.Membership.OrganizationID
}

// MembershipID returns the actor's membership id in the current organization
func (a *Actor) MembershipID() uuid.UUID {
	if a.Membership == nil {
		return uuid.Nil
	}
	return a.Membership.ID
}

// HasRole reports whether the actor holds one of the roles
func (a *Actor) HasRole(roles ...models.MembershipRole) bool {
	if a.Membership == nil {
		return false
	}
	for _, r := range roles {
		if a.Membership.Role == r {
			return true
		}
	}
	return false
}

// visibleOwnerIDs returns the memberships whose records the actor may see:
// nil (everyone) for org, the leader and their reps for a leader, and only
// the actor for a rep.
func visibleOwnerIDs(ctx context.Context, members repository.MembershipRepositoryInterface, actor *Actor) ([]uuid.UUID, error) {
	switch {
	case actor.HasRole(models.MembershipRoleOrg):
		return nil, nil
	case actor.HasRole(models.MembershipRoleLeader):
		reps, err := members.ListRepIDs(ctx, actor.MembershipID())
		if err != nil {
			return nil, fmt.Errorf("failed to list reps: %w", err)
		}
		return append([]uuid.UUID{actor.MembershipID()}, reps...), nil
	default:
		return []uuid.UUID{actor.MembershipID()}, nil
	}
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// canSee reports whether ownerID is inside the visible set (nil means all)
func canSee(visible []uuid.UUID, ownerID uuid.UUID) bool {
	return visible == nil || containsID(visible, ownerID)
}

// displayNameFor picks a display name, falling back to the local part of the email
func displayNameFor(name, email string) string {
	if name != "" {
		return name
	}
	for i, r := range email {
		if r == '@' {
			return email[:i]
		}
	}
	return email
}
