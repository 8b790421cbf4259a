package models

import (
	"time"

	"gorm.io/gorm"
)

// Incident types
const (
	IncidentTypeRedFlag      = "red-flag"
	IncidentTypeIntervention = "intervention"
)

// Incident statuses. New records start as draft; the other three are set
// by admins through the status update endpoint.
const (
	StatusDraft              = "draft"
	StatusUnderInvestigation = "under investigation"
	StatusResolved           = "resolved"
	StatusUnresolved         = "unresolved"
)

// User represents users table. Username is immutable after creation and
// is_admin can only be set at creation (no promotion endpoint).
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password    string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	Email       string    `gorm:"size:100" json:"email,omitempty"`
	FirstName   string    `gorm:"size:50" json:"firstname,omitempty"`
	LastName    string    `gorm:"size:50" json:"lastname,omitempty"`
	OtherNames  string    `gorm:"size:100" json:"othernames,omitempty"`
	PhoneNumber string    `gorm:"size:20" json:"phone_number,omitempty"`
	IsAdmin     bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO. Never carries the password hash.
type UserResponse struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	FirstName   string    `json:"firstname,omitempty"`
	LastName    string    `json:"lastname,omitempty"`
	OtherNames  string    `json:"othernames,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	IsAdmin     bool      `json:"is_admin"`
	Registered  time.Time `json:"registered"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		OtherNames:  u.OtherNames,
		PhoneNumber: u.PhoneNumber,
		IsAdmin:     u.IsAdmin,
		Registered:  u.CreatedAt,
	}
}

// Incident represents records table. Type and created_by are immutable
// after creation; uri is written once after the id is assigned.
type Incident struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"size:20;not null;index" json:"type"`
	Location  string    `gorm:"size:100;not null" json:"location"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	Status    string    `gorm:"size:30;not null;default:'draft'" json:"status"`
	Images    []string  `gorm:"serializer:json" json:"images"`
	Videos    []string  `gorm:"serializer:json" json:"videos"`
	CreatedBy uint      `gorm:"index;not null" json:"created_by"`
	URI       string    `gorm:"size:255" json:"uri"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`

	Creator *User `gorm:"foreignKey:CreatedBy" json:"-"`
}

func (Incident) TableName() string {
	return "records"
}

// IncidentResponse DTO
type IncidentResponse struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type"`
	Location  string    `json:"location"`
	Comment   string    `json:"comment"`
	Status    string    `json:"status"`
	Images    []string  `json:"images"`
	Videos    []string  `json:"videos"`
	CreatedBy uint      `json:"created_by"`
	URI       string    `json:"uri"`
	CreatedAt time.Time `json:"created_at"`
}

func (i *Incident) ToResponse() *IncidentResponse {
	images := i.Images
	if images == nil {
		images = []string{}
	}
	videos := i.Videos
	if videos == nil {
		videos = []string{}
	}
	return &IncidentResponse{
		ID:        i.ID,
		Type:      i.Type,
		Location:  i.Location,
		Comment:   i.Comment,
		Status:    i.Status,
		Images:    images,
		Videos:    videos,
		CreatedBy: i.CreatedBy,
		URI:       i.URI,
		CreatedAt: i.CreatedAt,
	}
}

// BlacklistedToken represents blacklist table. A row's existence makes the
// jti permanently invalid regardless of remaining time-to-expiry; the
// recorded expiry only drives the cleanup sweep, which never removes a row
// before the token itself has expired.
type BlacklistedToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	JTI       string    `gorm:"column:jti;uniqueIndex;size:64;not null" json:"jti"`
	TokenType string    `gorm:"size:10;not null" json:"token_type"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (BlacklistedToken) TableName() string {
	return "blacklist"
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Incident{},
		&BlacklistedToken{},
	)
}
