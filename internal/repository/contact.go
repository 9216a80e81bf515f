package repository

import (
	"context"
	"strings"
	"time"

	"salesdesk-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactFilter narrows contact listings. A nil OwnerIDs means every owner
// in the organization is visible.
type ContactFilter struct {
	OrganizationID uuid.UUID
	OwnerIDs       []uuid.UUID
	OwnerID        *uuid.UUID
	Stage          models.ContactStage
	Tag            string
	Query          string
	BoardOrder     bool
}

// ContactRepository handles database operations for contacts
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create creates a new contact
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Omit("Owner", "ReferredBy").Create(contact).Error
}

// CreateBatch inserts contacts in a single statement batch
func (r *ContactRepository) CreateBatch(ctx context.Context, contacts []models.Contact) error {
	if len(contacts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("Owner", "ReferredBy").CreateInBatches(contacts, 200).Error
}

// GetByID retrieves a contact of an organization by ID
func (r *ContactRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.WithContext(ctx).First(&contact, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetByIDs retrieves the contacts of an organization among the given ids
func (r *ContactRepository) GetByIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]models.Contact, error) {
	var contacts []models.Contact
	if len(ids) == 0 {
		return contacts, nil
	}
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND id IN ?", orgID, ids).
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *ContactRepository) applyFilter(query *gorm.DB, filter ContactFilter) *gorm.DB {
	query = query.Where("organization_id = ?", filter.OrganizationID)
	if filter.OwnerIDs != nil {
		query = query.Where("owner_membership_id IN ?", filter.OwnerIDs)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_membership_id = ?", *filter.OwnerID)
	}
	if filter.Stage != "" {
		query = query.Where("stage = ?", filter.Stage)
	}
	if filter.Tag != "" {
		query = query.Where("? = ANY(tags)", filter.Tag)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + q + "%"
		query = query.Where("full_name ILIKE ? OR email ILIKE ? OR company ILIKE ?", like, like, like)
	}
	return query
}

// List retrieves contacts matching the filter with pagination
func (r *ContactRepository) List(ctx context.Context, filter ContactFilter, limit, offset int) ([]models.Contact, int64, error) {
	var contacts []models.Contact
	var total int64

	db := r.db.WithContext(ctx)

	// Get total count
	if err := r.applyFilter(db.Model(&models.Contact{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.applyFilter(db.Model(&models.Contact{}), filter)
	if filter.BoardOrder {
		query = query.Order("position ASC").Order("updated_at DESC")
	} else {
		query = query.Order("created_at DESC").Order("id DESC")
	}

	// Get paginated results
	if err := query.Limit(limit).Offset(offset).Find(&contacts).Error; err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

// ExistingEmails returns which of the given emails (compared case-insensitively)
// already belong to a contact of the organization, in lower case.
func (r *ContactRepository) ExistingEmails(ctx context.Context, orgID uuid.UUID, emails []string) ([]string, error) {
	var found []string
	if len(emails) == 0 {
		return found, nil
	}
	lowered := make([]string, len(emails))
	for i, e := range emails {
		lowered[i] = strings.ToLower(e)
	}
	err := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("organization_id = ? AND lower(email) IN ?", orgID, lowered).
		Pluck("lower(email)", &found).Error
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ListNames retrieves id and full name of every contact in the organization
func (r *ContactRepository) ListNames(ctx context.Context, orgID uuid.UUID) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.WithContext(ctx).
		Select("id", "full_name").
		Where("organization_id = ?", orgID).
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// ListNextActions retrieves contacts of an owner whose next action falls in [from, to)
func (r *ContactRepository) ListNextActions(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.WithContext(ctx).
		Where("owner_membership_id = ? AND next_action_at >= ? AND next_action_at < ?", ownerID, from, to).
		Order("next_action_at ASC").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// Update updates a contact
func (r *ContactRepository) Update(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Omit("Owner", "ReferredBy").Save(contact).Error
}

// UpdateFields updates selected columns of a contact
func (r *ContactRepository) UpdateFields(ctx context.Context, orgID, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("id = ? AND organization_id = ?", id, orgID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a contact together with its enrollments
func (r *ContactRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_type = ? AND target_id = ?", models.TargetTypeContact, id).
			Delete(&models.SequenceEnrollment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Contact{}, "id = ? AND organization_id = ?", id, orgID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
