package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/logger"
	"salesdesk-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	defaultBoardColumnSize = 20
	maxBoardColumnSize     = 100
	bulkConcurrency        = 8
)

// Bulk contact actions
const (
	BulkActionSetStage    = "set_stage"
	BulkActionAddTags     = "add_tags"
	BulkActionRemoveTags  = "remove_tags"
	BulkActionAssignOwner = "assign_owner"
	BulkActionDelete      = "delete"
	BulkActionEnroll      = "enroll"
)

var notesPolicy = bluemonday.UGCPolicy()

// ContactService handles business logic for the CRM board
type ContactService struct {
	contacts  repository.ContactRepositoryInterface
	members   repository.MembershipRepositoryInterface
	enroller  Enroller
	notifier  Notifier
	validator *validator.Validate
}

// NewContactService creates a new contact service
func NewContactService(
	contacts repository.ContactRepositoryInterface,
	members repository.MembershipRepositoryInterface,
	enroller Enroller,
	notifier Notifier,
	validator *validator.Validate,
) *ContactService {
	return &ContactService{
		contacts:  contacts,
		members:   members,
		enroller:  enroller,
		notifier:  notifier,
		validator: validator,
	}
}

// ContactListQuery holds the filters of the contact list
type ContactListQuery struct {
	Stage    string     `form:"stage" json:"stage" validate:"omitempty,oneof=lead contacted qualified proposal won lost"`
	Tag      string     `form:"tag" json:"tag" validate:"omitempty,max=50"`
	OwnerID  *uuid.UUID `form:"owner_id" json:"owner_id"`
	Query    string     `form:"q" json:"q" validate:"omitempty,max=200"`
	Page     int        `form:"page" json:"page"`
	PageSize int        `form:"page_size" json:"page_size"`
}

// CreateContactRequest represents the request to create a contact
type CreateContactRequest struct {
	FullName     string              `json:"full_name" validate:"required,min=1,max=200"`
	Email        string              `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone        string              `json:"phone,omitempty" validate:"omitempty,max=40"`
	Company      string              `json:"company,omitempty" validate:"omitempty,max=200"`
	Stage        models.ContactStage `json:"stage,omitempty" validate:"omitempty,oneof=lead contacted qualified proposal won lost"`
	Tags         []string            `json:"tags,omitempty" validate:"omitempty,max=20,dive,min=1,max=50"`
	Score        int                 `json:"score" validate:"min=0,max=100"`
	NextAction   string              `json:"next_action,omitempty" validate:"omitempty,max=200"`
	NextActionAt *time.Time          `json:"next_action_at,omitempty"`
	ReferredByID *uuid.UUID          `json:"referred_by_id,omitempty"`
	Notes        string              `json:"notes,omitempty" validate:"omitempty,max=10000"`
	Source       string              `json:"source,omitempty" validate:"omitempty,max=100"`
	OwnerID      *uuid.UUID          `json:"owner_id,omitempty"`
	Position     int                 `json:"position" validate:"min=0"`
}

// UpdateContactRequest represents a partial update of a contact
type UpdateContactRequest struct {
	FullName     *string              `json:"full_name,omitempty" validate:"omitempty,min=1,max=200"`
	Email        *string              `json:"email,omitempty" validate:"omitempty,max=255"`
	Phone        *string              `json:"phone,omitempty" validate:"omitempty,max=40"`
	Company      *string              `json:"company,omitempty" validate:"omitempty,max=200"`
	Stage        *models.ContactStage `json:"stage,omitempty" validate:"omitempty,oneof=lead contacted qualified proposal won lost"`
	Tags         *[]string            `json:"tags,omitempty" validate:"omitempty,max=20,dive,min=1,max=50"`
	Score        *int                 `json:"score,omitempty" validate:"omitempty,min=0,max=100"`
	NextAction   *string              `json:"next_action,omitempty" validate:"omitempty,max=200"`
	NextActionAt *time.Time           `json:"next_action_at,omitempty"`
	ReferredByID *uuid.UUID           `json:"referred_by_id,omitempty"`
	Notes        *string              `json:"notes,omitempty" validate:"omitempty,max=10000"`
	Source       *string              `json:"source,omitempty" validate:"omitempty,max=100"`
	OwnerID      *uuid.UUID           `json:"owner_id,omitempty"`
	Position     *int                 `json:"position,omitempty" validate:"omitempty,min=0"`
}

// BulkContactRequest represents a bulk action over contacts
type BulkContactRequest struct {
	Action     string              `json:"action" validate:"required,oneof=set_stage add_tags remove_tags assign_owner delete enroll"`
	ContactIDs []uuid.UUID         `json:"contact_ids" validate:"required,min=1,max=500,dive,required"`
	Stage      models.ContactStage `json:"stage,omitempty" validate:"omitempty,oneof=lead contacted qualified proposal won lost"`
	Tags       []string            `json:"tags,omitempty" validate:"omitempty,max=20,dive,min=1,max=50"`
	OwnerID    *uuid.UUID          `json:"owner_id,omitempty"`
	SequenceID *uuid.UUID          `json:"sequence_id,omitempty"`
}

// ContactResponse represents a contact in API responses
type ContactResponse struct {
	ID                uuid.UUID  `json:"id"`
	OwnerMembershipID uuid.UUID  `json:"owner_membership_id"`
	FullName          string     `json:"full_name"`
	Email             string     `json:"email,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	Company           string     `json:"company,omitempty"`
	Stage             string     `json:"stage"`
	Tags              []string   `json:"tags"`
	Score             int        `json:"score"`
	NextAction        string     `json:"next_action,omitempty"`
	NextActionAt      *string    `json:"next_action_at,omitempty"`
	ReferredByID      *uuid.UUID `json:"referred_by_id,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	Source            string     `json:"source,omitempty"`
	Position          int        `json:"position"`
	CreatedAt         string     `json:"created_at"`
	UpdatedAt         string     `json:"updated_at"`
}

// ContactListResponse represents a page of contacts
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// BoardColumn is one stage of the kanban board
type BoardColumn struct {
	Stage    string            `json:"stage"`
	Total    int64             `json:"total"`
	Contacts []ContactResponse `json:"contacts"`
}

// BoardResponse holds every stage column in funnel order
type BoardResponse struct {
	Columns []BoardColumn `json:"columns"`
}

// BulkContactResponse reports the outcome of a bulk action
type BulkContactResponse struct {
	Action    string `json:"action"`
	Processed int    `json:"processed"`
	Enrolled  int    `json:"enrolled"`
	Skipped   int    `json:"skipped"`
}

// List lists the contacts visible to the actor
func (s *ContactService) List(ctx context.Context, actor *Actor, q *ContactListQuery) (*ContactListResponse, error) {
	if err := validateStruct(s.validator, q); err != nil {
		return nil, err
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 20
	}

	visible, err := visibleOwnerIDs(ctx, s.members, actor)
	if err != nil {
		return nil, err
	}

	filter := repository.ContactFilter{
		OrganizationID: actor.OrganizationID(),
		OwnerIDs:       visible,
		OwnerID:        q.OwnerID,
		Stage:          models.ContactStage(q.Stage),
		Tag:            strings.ToLower(strings.TrimSpace(q.Tag)),
		Query:          q.Query,
	}
	contacts, total, err := s.contacts.List(ctx, filter, q.PageSize, (q.Page-1)*q.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	resp := &ContactListResponse{
		Contacts: make([]ContactResponse, len(contacts)),
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	for i := range contacts {
		resp.Contacts[i] = *toContactResponse(&contacts[i])
	}
	return resp, nil
}

// Board returns one column per stage, each with its total and first contacts
func (s *ContactService) Board(ctx context.Context, actor *Actor, perColumn int) (*BoardResponse, error) {
	if perColumn < 1 || perColumn > maxBoardColumnSize {
		perColumn = defaultBoardColumnSize
	}

	visible, err := visibleOwnerIDs(ctx, s.members, actor)
	if err != nil {
		return nil, err
	}

	columns := make([]BoardColumn, len(models.ContactStages))
	g, gctx := errgroup.WithContext(ctx)
	for i, stage := range models.ContactStages {
		g.Go(func() error {
			contacts, total, err := s.contacts.List(gctx, repository.ContactFilter{
				OrganizationID: actor.OrganizationID(),
				OwnerIDs:       visible,
				Stage:          stage,
				BoardOrder:     true,
			}, perColumn, 0)
			if err != nil {
				return fmt.Errorf("failed to load %s column: %w", stage, err)
			}
			column := BoardColumn{
				Stage:    string(stage),
				Total:    total,
				Contacts: make([]ContactResponse, len(contacts)),
			}
			for j := range contacts {
				column.Contacts[j] = *toContactResponse(&contacts[j])
			}
			columns[i] = column
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &BoardResponse{Columns: columns}, nil
}

// resolveOwner returns the owner a contact should get: the actor by default,
// otherwise a visible active member of the organization
func (s *ContactService) resolveOwner(ctx context.Context, actor *Actor, visible []uuid.UUID, ownerID *uuid.UUID) (*models.Membership, error) {
	if ownerID == nil || *ownerID == actor.MembershipID() {
		return actor.Membership, nil
	}
	if !canSee(visible, *ownerID) {
		return nil, apperrors.ErrForbidden
	}
	owner, err := s.members.GetByID(ctx, actor.OrganizationID(), *ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("owner_id", "must be a member of the organization")
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	if !owner.IsActive() {
		return nil, apperrors.NewValidationError("owner_id", "must be an active member")
	}
	return owner, nil
}

// checkReferral makes sure a referral points at another contact of the organization
func (s *ContactService) checkReferral(ctx context.Context, orgID, selfID uuid.UUID, referredBy *uuid.UUID) error {
	if referredBy == nil {
		return nil
	}
	if *referredBy == selfID {
		return apperrors.NewValidationError("referred_by_id", "a contact cannot refer itself")
	}
	if _, err := s.contacts.GetByID(ctx, orgID, *referredBy); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError("referred_by_id", "must be a contact of the same organization")
		}
		return fmt.Errorf("failed to get referring contact: %w", err)
	}
	return nil
}

// Create creates a contact
func (s *ContactService) Create(ctx context.Context, actor *Actor, req *CreateContactRequest) (*ContactResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	visible, err := visibleOwnerIDs(ctx, s.members, actor)
	if err != nil {
		return nil, err
	}
	owner, err := s.resolveOwner(ctx, actor, visible, req.OwnerID)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferral(ctx, actor.OrganizationID(), uuid.Nil, req.ReferredByID); err != nil {
		return nil, err
	}

	stage := req.Stage
	if stage == "" {
		stage = models.ContactStageLead
	}

	contact := &models.Contact{
		OrganizationID:    actor.OrganizationID(),
		OwnerMembershipID: owner.ID,
		FullName:          strings.TrimSpace(req.FullName),
		Email:             strings.TrimSpace(req.Email),
		Phone:             strings.TrimSpace(req.Phone),
		Company:           strings.TrimSpace(req.Company),
		Stage:             stage,
		Tags:              pq.StringArray(NormalizeTags(req.Tags)),
		Score:             req.Score,
		NextAction:        req.NextAction,
		NextActionAt:      utcPtr(req.NextActionAt),
		ReferredByID:      req.ReferredByID,
		Notes:             notesPolicy.Sanitize(req.Notes),
		Source:            req.Source,
		Position:          req.Position,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrContactExists
		}
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	logger.WithContext(ctx).WithField("contact_id", contact.ID).Info("Contact created")
	if owner.ID != actor.MembershipID() {
		s.notifyAssigned(ctx, actor, owner, contact)
	}
	return toContactResponse(contact), nil
}

// getVisible loads a contact the actor can see. Invisible contacts are
// reported as not found.
func (s *ContactService) getVisible(ctx context.Context, actor *Actor, id uuid.UUID) (*models.Contact, []uuid.UUID, error) {
	contact, err := s.contacts.GetByID(ctx, actor.OrganizationID(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrContactNotFound
		}
		return nil, nil, fmt.Errorf("failed to get contact: %w", err)
	}
	visible, err := visibleOwnerIDs(ctx, s.members, actor)
	if err != nil {
		return nil, nil, err
	}
	if !canSee(visible, contact.OwnerMembershipID) {
		return nil, nil, apperrors.ErrContactNotFound
	}
	return contact, visible, nil
}

// Get returns a contact
func (s *ContactService) Get(ctx context.Context, actor *Actor, id uuid.UUID) (*ContactResponse, error) {
	contact, _, err := s.getVisible(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// Update applies a partial update to a contact
func (s *ContactService) Update(ctx context.Context, actor *Actor, id uuid.UUID, req *UpdateContactRequest) (*ContactResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.Email != nil && *req.Email != "" {
		if err := s.validator.Var(*req.Email, "email"); err != nil {
			return nil, apperrors.NewValidationError("email", "must be a valid email address")
		}
	}

	contact, visible, err := s.getVisible(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	var newOwner *models.Membership
	if req.OwnerID != nil && *req.OwnerID != contact.OwnerMembershipID {
		newOwner, err = s.resolveOwner(ctx, actor, visible, req.OwnerID)
		if err != nil {
			return nil, err
		}
		contact.OwnerMembershipID = newOwner.ID
	}
	if req.ReferredByID != nil {
		if err := s.checkReferral(ctx, actor.OrganizationID(), contact.ID, req.ReferredByID); err != nil {
			return nil, err
		}
		contact.ReferredByID = req.ReferredByID
	}

	if req.FullName != nil {
		contact.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Email != nil {
		contact.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		contact.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Company != nil {
		contact.Company = strings.TrimSpace(*req.Company)
	}
	if req.Stage != nil {
		contact.Stage = *req.Stage
	}
	if req.Tags != nil {
		contact.Tags = pq.StringArray(NormalizeTags(*req.Tags))
	}
	if req.Score != nil {
		contact.Score = *req.Score
	}
	if req.NextAction != nil {
		contact.NextAction = *req.NextAction
	}
	if req.NextActionAt != nil {
		contact.NextActionAt = utcPtr(req.NextActionAt)
	}
	if req.Notes != nil {
		contact.Notes = notesPolicy.Sanitize(*req.Notes)
	}
	if req.Source != nil {
		contact.Source = *req.Source
	}
	if req.Position != nil {
		contact.Position = *req.Position
	}

	if err := s.contacts.Update(ctx, contact); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrContactExists
		}
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	if newOwner != nil && newOwner.ID != actor.MembershipID() {
		s.notifyAssigned(ctx, actor, newOwner, contact)
	}
	return toContactResponse(contact), nil
}

// Delete deletes a contact
func (s *ContactService) Delete(ctx context.Context, actor *Actor, id uuid.UUID) error {
	contact, _, err := s.getVisible(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := s.contacts.Delete(ctx, actor.OrganizationID(), contact.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContactNotFound
		}
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	logger.WithContext(ctx).WithField("contact_id", contact.ID).Info("Contact deleted")
	return nil
}

// Bulk applies one action to many contacts. Every contact must be visible
// to the actor before anything is changed.
func (s *ContactService) Bulk(ctx context.Context, actor *Actor, req *BulkContactRequest) (*BulkContactResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := checkBulkArguments(req); err != nil {
		return nil, err
	}

	ids := uniqueIDs(req.ContactIDs)
	contacts, err := s.contacts.GetByIDs(ctx, actor.OrganizationID(), ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts: %w", err)
	}
	if len(contacts) != len(ids) {
		return nil, apperrors.ErrContactNotVisible
	}
	visible, err := visibleOwnerIDs(ctx, s.members, actor)
	if err != nil {
		return nil, err
	}
	for _, c := range contacts {
		if !canSee(visible, c.OwnerMembershipID) {
			return nil, apperrors.ErrContactNotVisible
		}
	}

	resp := &BulkContactResponse{Action: req.Action, Processed: len(contacts)}

	if req.Action == BulkActionEnroll {
		result, err := s.enroller.EnrollTargets(ctx, actor, *req.SequenceID, models.TargetTypeContact, ids)
		if err != nil {
			return nil, err
		}
		resp.Enrolled = result.Enrolled
		resp.Skipped = result.Skipped
		return resp, nil
	}

	var owner *models.Membership
	if req.Action == BulkActionAssignOwner {
		owner, err = s.resolveOwner(ctx, actor, visible, req.OwnerID)
		if err != nil {
			return nil, err
		}
	}

	tags := NormalizeTags(req.Tags)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkConcurrency)
	for i := range contacts {
		contact := contacts[i]
		g.Go(func() error {
			return s.applyBulk(gctx, actor, req, &contact, tags, owner)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"action":   req.Action,
		"contacts": resp.Processed,
	}).Info("Bulk contact action applied")
	return resp, nil
}

func checkBulkArguments(req *BulkContactRequest) error {
	switch req.Action {
	case BulkActionSetStage:
		if req.Stage == "" {
			return apperrors.NewValidationError("stage", "required for set_stage")
		}
	case BulkActionAddTags, BulkActionRemoveTags:
		if len(req.Tags) == 0 {
			return apperrors.NewValidationError("tags", "required for "+req.Action)
		}
	case BulkActionAssignOwner:
		if req.OwnerID == nil {
			return apperrors.NewValidationError("owner_id", "required for assign_owner")
		}
	case BulkActionEnroll:
		if req.SequenceID == nil {
			return apperrors.NewValidationError("sequence_id", "required for enroll")
		}
	}
	return nil
}

func (s *ContactService) applyBulk(ctx context.Context, actor *Actor, req *BulkContactRequest, contact *models.Contact, tags []string, owner *models.Membership) error {
	orgID := actor.OrganizationID()
	var err error

	switch req.Action {
	case BulkActionSetStage:
		err = s.contacts.UpdateFields(ctx, orgID, contact.ID, map[string]interface{}{"stage": req.Stage})
	case BulkActionAddTags:
		merged := NormalizeTags(append(append([]string{}, contact.Tags...), tags...))
		err = s.contacts.UpdateFields(ctx, orgID, contact.ID, map[string]interface{}{"tags": pq.StringArray(merged)})
	case BulkActionRemoveTags:
		err = s.contacts.UpdateFields(ctx, orgID, contact.ID, map[string]interface{}{"tags": pq.StringArray(removeTags(contact.Tags, tags))})
	case BulkActionAssignOwner:
		if contact.OwnerMembershipID == owner.ID {
			return nil
		}
		err = s.contacts.UpdateFields(ctx, orgID, contact.ID, map[string]interface{}{"owner_membership_id": owner.ID})
		if err == nil && owner.ID != actor.MembershipID() {
			s.notifyAssigned(ctx, actor, owner, contact)
		}
	case BulkActionDelete:
		err = s.contacts.Delete(ctx, orgID, contact.ID)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContactNotFound
		}
		return fmt.Errorf("failed to apply %s to contact %s: %w", req.Action, contact.ID, err)
	}
	return nil
}

func (s *ContactService) notifyAssigned(ctx context.Context, actor *Actor, owner *models.Membership, contact *models.Contact) {
	err := s.notifier.Notify(ctx, NotifyInput{
		OrganizationID: actor.OrganizationID(),
		UserID:         owner.UserID,
		Type:           models.NotificationTypeContactAssigned,
		Tab:            models.NotificationTabActivity,
		Board:          models.BoardContacts,
		SourceType:     "contact",
		SourceID:       &contact.ID,
		ActorUserID:    &actor.UserID,
		Title:          fmt.Sprintf("%s was assigned to you", contact.FullName),
	})
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("contact_id", contact.ID).
			Warn("Failed to emit contact_assigned notification")
	}
}

func removeTags(current []string, remove []string) []string {
	drop := make(map[string]bool, len(remove))
	for _, t := range remove {
		drop[t] = true
	}
	kept := make([]string, 0, len(current))
	for _, t := range current {
		if !drop[t] {
			kept = append(kept, t)
		}
	}
	return kept
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func toContactResponse(c *models.Contact) *ContactResponse {
	tags := []string(c.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &ContactResponse{
		ID:                c.ID,
		OwnerMembershipID: c.OwnerMembershipID,
		FullName:          c.FullName,
		Email:             c.Email,
		Phone:             c.Phone,
		Company:           c.Company,
		Stage:             string(c.Stage),
		Tags:              tags,
		Score:             c.Score,
		NextAction:        c.NextAction,
		NextActionAt:      formatTimePtr(c.NextActionAt),
		ReferredByID:      c.ReferredByID,
		Notes:             c.Notes,
		Source:            c.Source,
		Position:          c.Position,
		CreatedAt:         formatTime(c.CreatedAt),
		UpdatedAt:         formatTime(c.UpdatedAt),
	}
}
