package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/pagination"
	"salesdesk-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100
)

// NotificationService handles the inbox of a user in an organization
type NotificationService struct {
	repo      repository.NotificationRepositoryInterface
	validator *validator.Validate
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface, validator *validator.Validate) *NotificationService {
	return &NotificationService{
		repo:      repo,
		validator: validator,
	}
}

// NotifyInput describes a notification produced by another part of the application
type NotifyInput struct {
	OrganizationID uuid.UUID
	UserID         uuid.UUID
	Type           string
	Tab            models.NotificationTab
	Board          string
	SourceType     string
	SourceID       *uuid.UUID
	ActorUserID    *uuid.UUID
	Title          string
	Body           string
	Link           string
}

// FeedQuery holds the query parameters of the feed endpoint
type FeedQuery struct {
	Tab    string `form:"tab" validate:"omitempty,oneof=all activity tasks mentions"`
	Show   string `form:"show" validate:"omitempty,oneof=all unread bookmarked"`
	Board  string `form:"board" validate:"omitempty,oneof=contacts sequences team"`
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

// ReadAllRequest scopes a read-all to an optional tab and board
type ReadAllRequest struct {
	Tab   *string `json:"tab,omitempty" validate:"omitempty,oneof=activity tasks mentions"`
	Board *string `json:"board,omitempty" validate:"omitempty,oneof=contacts sequences team"`
}

// CreateMuteRequest represents the request to mute notifications
type CreateMuteRequest struct {
	Type       string     `json:"type" validate:"required,max=60"`
	SourceType string     `json:"source_type,omitempty" validate:"required_with=SourceID,max=40"`
	SourceID   *uuid.UUID `json:"source_id,omitempty"`
}

// NotificationResponse represents one inbox row
type NotificationResponse struct {
	ID           uuid.UUID  `json:"id"`
	Type         string     `json:"type"`
	Tab          string     `json:"tab"`
	Board        *string    `json:"board,omitempty"`
	SourceType   string     `json:"source_type,omitempty"`
	SourceID     *uuid.UUID `json:"source_id,omitempty"`
	ActorUserID  *uuid.UUID `json:"actor_user_id,omitempty"`
	ActorName    string     `json:"actor_name,omitempty"`
	Title        string     `json:"title"`
	Body         string     `json:"body,omitempty"`
	Link         string     `json:"link,omitempty"`
	Status       string     `json:"status"`
	IsBookmarked bool       `json:"is_bookmarked"`
	ReadAt       *string    `json:"read_at,omitempty"`
	CreatedAt    string     `json:"created_at"`
}

// FeedResponse is one page of the inbox
type FeedResponse struct {
	Items      []NotificationResponse `json:"items"`
	NextCursor *string                `json:"next_cursor"`
}

// CountsResponse holds unread counts per tab and per board
type CountsResponse struct {
	Total  int64            `json:"total"`
	Tabs   map[string]int64 `json:"tabs"`
	Boards map[string]int64 `json:"boards"`
}

// ReadAllResponse reports how many notifications were marked read
type ReadAllResponse struct {
	Updated int64 `json:"updated"`
}

// MuteResponse represents a mute
type MuteResponse struct {
	ID         uuid.UUID  `json:"id"`
	Type       string     `json:"type"`
	SourceType string     `json:"source_type,omitempty"`
	SourceID   *uuid.UUID `json:"source_id,omitempty"`
	CreatedAt  string     `json:"created_at"`
}

// Notify stores a notification for a user unless the user muted it or is
// the one who caused it
func (s *NotificationService) Notify(ctx context.Context, in NotifyInput) error {
	if in.UserID == uuid.Nil || in.Type == "" {
		return apperrors.NewValidationError("notification", "recipient and type are required")
	}
	if in.ActorUserID != nil && *in.ActorUserID == in.UserID {
		return nil
	}
	if in.Tab == "" {
		in.Tab = models.NotificationTabActivity
	}

	n := &models.Notification{
		OrganizationID: in.OrganizationID,
		UserID:         in.UserID,
		Type:           in.Type,
		Tab:            in.Tab,
		SourceType:     in.SourceType,
		SourceID:       in.SourceID,
		ActorUserID:    in.ActorUserID,
		Title:          in.Title,
		Body:           in.Body,
		Link:           in.Link,
		Status:         models.NotificationStatusUnread,
	}
	if in.Board != "" {
		board := in.Board
		n.Board = &board
	}

	muted, err := s.repo.IsMuted(ctx, n)
	if err != nil {
		return fmt.Errorf("failed to check mutes: %w", err)
	}
	if muted {
		return nil
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// Feed returns one page of the actor's inbox, newest first
func (s *NotificationService) Feed(ctx context.Context, actor *Actor, q *FeedQuery) (*FeedResponse, error) {
	if err := validateStruct(s.validator, q); err != nil {
		return nil, err
	}

	var cursor *pagination.Cursor
	if q.Cursor != "" {
		c, ok := pagination.DecodeCursor(q.Cursor)
		if !ok {
			return nil, apperrors.ErrInvalidCursor
		}
		cursor = &c
	}

	limit := pagination.NormalizeLimit(q.Limit, defaultFeedLimit, maxFeedLimit)
	rows, err := s.repo.Feed(ctx, repository.FeedQuery{
		OrganizationID: actor.OrganizationID(),
		UserID:         actor.UserID,
		Tab:            q.Tab,
		Show:           q.Show,
		Board:          q.Board,
		Cursor:         cursor,
		Limit:          limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}

	page, next := pagination.TrimPage(rows, limit, func(item models.NotificationFeedItem) pagination.Cursor {
		return pagination.Cursor{CreatedAt: item.CreatedAt, ID: item.ID}
	})

	items := make([]NotificationResponse, len(page))
	for i := range page {
		items[i] = toNotificationResponse(&page[i])
	}
	return &FeedResponse{Items: items, NextCursor: next}, nil
}

// Counts returns the actor's unread counters
func (s *NotificationService) Counts(ctx context.Context, actor *Actor) (*CountsResponse, error) {
	counters, err := s.repo.Counters(ctx, actor.OrganizationID(), actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to read counters: %w", err)
	}

	resp := &CountsResponse{
		Tabs:   make(map[string]int64, len(models.NotificationTabs)),
		Boards: map[string]int64{},
	}
	for _, tab := range models.NotificationTabs {
		resp.Tabs[string(tab)] = 0
	}
	for _, c := range counters {
		resp.Total += c.UnreadCount
		resp.Tabs[string(c.Tab)] += c.UnreadCount
		if c.Board != "" {
			resp.Boards[c.Board] += c.UnreadCount
		}
	}
	return resp, nil
}

// SetStatus marks one notification read, unread or hidden
func (s *NotificationService) SetStatus(ctx context.Context, actor *Actor, id uuid.UUID, status models.NotificationStatus) error {
	err := s.repo.SetStatus(ctx, actor.OrganizationID(), actor.UserID, id, status, time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to update notification: %w", err)
	}
	return nil
}

// ReadAll marks every unread notification of the requested scope as read
func (s *NotificationService) ReadAll(ctx context.Context, actor *Actor, req *ReadAllRequest) (*ReadAllResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	scope := repository.ReadAllScope{
		OrganizationID: actor.OrganizationID(),
		UserID:         actor.UserID,
		Board:          req.Board,
	}
	if req.Tab != nil {
		tab := models.NotificationTab(*req.Tab)
		scope.Tab = &tab
	}

	updated, err := s.repo.MarkAllRead(ctx, scope, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return &ReadAllResponse{Updated: updated}, nil
}

// Bookmark bookmarks a notification of the actor
func (s *NotificationService) Bookmark(ctx context.Context, actor *Actor, id uuid.UUID) error {
	if err := s.repo.AddBookmark(ctx, actor.OrganizationID(), actor.UserID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to bookmark notification: %w", err)
	}
	return nil
}

// Unbookmark removes a bookmark of the actor
func (s *NotificationService) Unbookmark(ctx context.Context, actor *Actor, id uuid.UUID) error {
	if err := s.repo.RemoveBookmark(ctx, actor.UserID, id); err != nil {
		return fmt.Errorf("failed to remove bookmark: %w", err)
	}
	return nil
}

// ListMutes lists the actor's mutes
func (s *NotificationService) ListMutes(ctx context.Context, actor *Actor) ([]MuteResponse, error) {
	mutes, err := s.repo.ListMutes(ctx, actor.OrganizationID(), actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mutes: %w", err)
	}
	responses := make([]MuteResponse, len(mutes))
	for i := range mutes {
		responses[i] = toMuteResponse(&mutes[i])
	}
	return responses, nil
}

// CreateMute mutes a notification type, optionally for a single source
func (s *NotificationService) CreateMute(ctx context.Context, actor *Actor, req *CreateMuteRequest) (*MuteResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	mute := &models.NotificationMute{
		OrganizationID: actor.OrganizationID(),
		UserID:         actor.UserID,
		Type:           req.Type,
		SourceType:     req.SourceType,
		SourceID:       req.SourceID,
	}
	if err := s.repo.CreateMute(ctx, mute); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrMuteExists
		}
		return nil, fmt.Errorf("failed to create mute: %w", err)
	}

	resp := toMuteResponse(mute)
	return &resp, nil
}

// DeleteMute deletes one of the actor's mutes
func (s *NotificationService) DeleteMute(ctx context.Context, actor *Actor, id uuid.UUID) error {
	if err := s.repo.DeleteMute(ctx, actor.OrganizationID(), actor.UserID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMuteNotFound
		}
		return fmt.Errorf("failed to delete mute: %w", err)
	}
	return nil
}

func toNotificationResponse(item *models.NotificationFeedItem) NotificationResponse {
	return NotificationResponse{
		ID:           item.ID,
		Type:         item.Type,
		Tab:          string(item.Tab),
		Board:        item.Board,
		SourceType:   item.SourceType,
		SourceID:     item.SourceID,
		ActorUserID:  item.ActorUserID,
		ActorName:    item.ActorName,
		Title:        item.Title,
		Body:         item.Body,
		Link:         item.Link,
		Status:       string(item.Status),
		IsBookmarked: item.IsBookmarked,
		ReadAt:       formatTimePtr(item.ReadAt),
		CreatedAt:    item.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toMuteResponse(m *models.NotificationMute) MuteResponse {
	return MuteResponse{
		ID:         m.ID,
		Type:       m.Type,
		SourceType: m.SourceType,
		SourceID:   m.SourceID,
		CreatedAt:  formatTime(m.CreatedAt),
	}
}
