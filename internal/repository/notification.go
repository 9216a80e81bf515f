package repository

import (
	"context"
	"time"

	"salesdesk-backend/internal/database/models"
	"salesdesk-backend/internal/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feed filter values
const (
	FeedTabAll       = "all"
	FeedShowAll      = "all"
	FeedShowUnread   = "unread"
	FeedShowBookmark = "bookmarked"
)

// FeedQuery selects one page of a user's inbox. Limit is the page size; the
// repository fetches one extra row so the caller can tell whether more exist.
type FeedQuery struct {
	OrganizationID uuid.UUID
	UserID         uuid.UUID
	Tab            string
	Show           string
	Board          string
	Cursor         *pagination.Cursor
	Limit          int
}

// ReadAllScope is the exact (org, user, tab?, board?) scope of a read-all
type ReadAllScope struct {
	OrganizationID uuid.UUID
	UserID         uuid.UUID
	Tab            *models.NotificationTab
	Board          *string
}

// NotificationRepository handles database operations for the inbox
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

// IsMuted reports whether the recipient muted this type, either entirely or
// for the notification's source
func (r *NotificationRepository) IsMuted(ctx context.Context, n *models.Notification) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&models.NotificationMute{}).
		Where("organization_id = ? AND user_id = ? AND type = ?", n.OrganizationID, n.UserID, n.Type)

	if n.SourceID != nil {
		query = query.Where("source_id IS NULL OR (source_type = ? AND source_id = ?)", n.SourceType, *n.SourceID)
	} else {
		query = query.Where("source_id IS NULL")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Feed reads a page of the notification_feed view ordered newest first
func (r *NotificationRepository) Feed(ctx context.Context, q FeedQuery) ([]models.NotificationFeedItem, error) {
	var items []models.NotificationFeedItem

	query := r.db.WithContext(ctx).
		Where("organization_id = ? AND user_id = ?", q.OrganizationID, q.UserID)

	if q.Tab != "" && q.Tab != FeedTabAll {
		query = query.Where("tab = ?", q.Tab)
	}
	switch q.Show {
	case FeedShowUnread:
		query = query.Where("status = ?", models.NotificationStatusUnread)
	case FeedShowBookmark:
		query = query.Where("is_bookmarked")
	}
	if q.Board != "" {
		query = query.Where("board = ?", q.Board)
	}
	if q.Cursor != nil {
		query = query.Where("created_at < ? OR (created_at = ? AND id < ?)",
			q.Cursor.CreatedAt, q.Cursor.CreatedAt, q.Cursor.ID)
	}

	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(q.Limit + 1).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Counters reads the unread counters of a user in an organization
func (r *NotificationRepository) Counters(ctx context.Context, orgID, userID uuid.UUID) ([]models.NotificationCounter, error) {
	var counters []models.NotificationCounter
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		Find(&counters).Error
	if err != nil {
		return nil, err
	}
	return counters, nil
}

// SetStatus changes the status of one of the user's notifications
func (r *NotificationRepository) SetStatus(ctx context.Context, orgID, userID, id uuid.UUID, status models.NotificationStatus, at time.Time) error {
	fields := map[string]interface{}{"status": status}
	switch status {
	case models.NotificationStatusRead:
		fields["read_at"] = at
	case models.NotificationStatusUnread:
		fields["read_at"] = nil
	}

	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND organization_id = ? AND user_id = ?", id, orgID, userID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkAllRead marks unread notifications of exactly the given scope as read
func (r *NotificationRepository) MarkAllRead(ctx context.Context, scope ReadAllScope, at time.Time) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("organization_id = ? AND user_id = ? AND status = ?", scope.OrganizationID, scope.UserID, models.NotificationStatusUnread)
	if scope.Tab != nil {
		query = query.Where("tab = ?", *scope.Tab)
	}
	if scope.Board != nil {
		query = query.Where("board = ?", *scope.Board)
	}

	res := query.Updates(map[string]interface{}{
		"status":  models.NotificationStatusRead,
		"read_at": at,
	})
	return res.RowsAffected, res.Error
}

// AddBookmark bookmarks one of the user's notifications. Bookmarking twice is a no-op.
func (r *NotificationRepository) AddBookmark(ctx context.Context, orgID, userID, notificationID uuid.UUID) error {
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.Notification{}).
		Where("id = ? AND organization_id = ? AND user_id = ?", notificationID, orgID, userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}

	err := db.Omit("Notification").Create(&models.NotificationBookmark{
		UserID:         userID,
		NotificationID: notificationID,
	}).Error
	if IsUniqueViolation(err) {
		return nil
	}
	return err
}

// RemoveBookmark removes a bookmark. Removing a missing bookmark is a no-op.
func (r *NotificationRepository) RemoveBookmark(ctx context.Context, userID, notificationID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.NotificationBookmark{}, "user_id = ? AND notification_id = ?", userID, notificationID).Error
}

// CreateMute creates a new mute
func (r *NotificationRepository) CreateMute(ctx context.Context, mute *models.NotificationMute) error {
	return r.db.WithContext(ctx).Create(mute).Error
}

// ListMutes retrieves the mutes of a user in an organization
func (r *NotificationRepository) ListMutes(ctx context.Context, orgID, userID uuid.UUID) ([]models.NotificationMute, error) {
	var mutes []models.NotificationMute
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		Order("created_at DESC").
		Find(&mutes).Error
	if err != nil {
		return nil, err
	}
	return mutes, nil
}

// DeleteMute deletes one of the user's mutes
func (r *NotificationRepository) DeleteMute(ctx context.Context, orgID, userID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Delete(&models.NotificationMute{}, "id = ? AND organization_id = ? AND user_id = ?", id, orgID, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
