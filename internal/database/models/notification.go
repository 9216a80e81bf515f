package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationStatus is the read state of a notification
type NotificationStatus string

const (
	NotificationStatusUnread NotificationStatus = "unread"
	NotificationStatusRead   NotificationStatus = "read"
	NotificationStatusHidden NotificationStatus = "hidden"
)

// NotificationTab groups notifications in the inbox
type NotificationTab string

const (
	NotificationTabActivity NotificationTab = "activity"
	NotificationTabTasks    NotificationTab = "tasks"
	NotificationTabMentions NotificationTab = "mentions"
)

// NotificationTabs lists every concrete inbox tab
var NotificationTabs = []NotificationTab{
	NotificationTabActivity,
	NotificationTabTasks,
	NotificationTabMentions,
}

// Notification board values
const (
	BoardContacts  = "contacts"
	BoardSequences = "sequences"
	BoardTeam      = "team"
)

// Notification types emitted by the application
const (
	NotificationTypeMemberJoined      = "member_joined"
	NotificationTypeContactAssigned   = "contact_assigned"
	NotificationTypeAssignmentCreated = "assignment_created"
	NotificationTypeSequencePublished = "sequence_published"
)

// Notification is a per-user inbox event
type Notification struct {
	ID             uuid.UUID          `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID          `json:"organization_id" gorm:"type:uuid;not null;index:idx_notifications_feed,priority:1"`
	UserID         uuid.UUID          `json:"user_id" gorm:"type:uuid;not null;index:idx_notifications_feed,priority:2"`
	Type           string             `json:"type" gorm:"size:60;not null"`
	Tab            NotificationTab    `json:"tab" gorm:"type:varchar(20);not null;default:'activity'"`
	Board          *string            `json:"board,omitempty" gorm:"size:40"`
	SourceType     string             `json:"source_type" gorm:"size:40"`
	SourceID       *uuid.UUID         `json:"source_id,omitempty" gorm:"type:uuid"`
	ActorUserID    *uuid.UUID         `json:"actor_user_id,omitempty" gorm:"type:uuid"`
	Title          string             `json:"title" gorm:"size:200;not null"`
	Body           string             `json:"body" gorm:"type:text"`
	Link           string             `json:"link" gorm:"size:500"`
	Status         NotificationStatus `json:"status" gorm:"type:varchar(20);not null;default:'unread'"`
	ReadAt         *time.Time         `json:"read_at,omitempty"`
	CreatedAt      time.Time          `json:"created_at" gorm:"not null;index:idx_notifications_feed,priority:3,sort:desc"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

// NotificationFeedItem is a row of the notification_feed view
type NotificationFeedItem struct {
	Notification
	IsBookmarked bool   `json:"is_bookmarked"`
	ActorName    string `json:"actor_name,omitempty"`
}

// TableName returns the view the feed is read from
func (NotificationFeedItem) TableName() string {
	return "notification_feed"
}

// NotificationCounter holds the unread count for one (org, user, tab, board)
// scope. Rows are maintained by a database trigger, never by the application.
type NotificationCounter struct {
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `json:"user_id" gorm:"type:uuid;primaryKey"`
	Tab            NotificationTab `json:"tab" gorm:"type:varchar(20);primaryKey"`
	Board          string          `json:"board" gorm:"size:40;primaryKey;default:''"`
	UnreadCount    int64           `json:"unread_count" gorm:"not null;default:0"`
}

// TableName returns the table name for NotificationCounter
func (NotificationCounter) TableName() string {
	return "notification_counters"
}

// NotificationBookmark marks a notification as saved by its recipient
type NotificationBookmark struct {
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	NotificationID uuid.UUID `json:"notification_id" gorm:"type:uuid;primaryKey"`
	CreatedAt      time.Time `json:"created_at"`

	Notification *Notification `json:"-" gorm:"foreignKey:NotificationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for NotificationBookmark
func (NotificationBookmark) TableName() string {
	return "notification_bookmarks"
}

// NotificationMute suppresses new notifications of a type, optionally for a
// single source.
type NotificationMute struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index:idx_notification_mutes_scope"`
	UserID         uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index:idx_notification_mutes_scope"`
	Type           string     `json:"type" gorm:"size:60;not null"`
	SourceType     string     `json:"source_type,omitempty" gorm:"size:40"`
	SourceID       *uuid.UUID `json:"source_id,omitempty" gorm:"type:uuid"`
}

// TableName returns the table name for NotificationMute
func (NotificationMute) TableName() string {
	return "notification_mutes"
}

// BeforeCreate sets the UUID and creation time if not already set
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	return nil
}
