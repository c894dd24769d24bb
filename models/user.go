package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email         string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name          string    `json:"name" gorm:"type:varchar(255);not null"`
	PasswordHash  *string   `json:"-" gorm:"type:varchar(255)"`
	GithubID      *string   `json:"githubId,omitempty" gorm:"column:github_id;type:varchar(255);uniqueIndex:idx_users_github_id,where:github_id IS NOT NULL"`
	Provider      string    `json:"provider" gorm:"type:varchar(50);default:'email'"`
	Phone         *string   `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Status        string    `json:"status" gorm:"type:varchar(50);default:'active';index"`
	EmailVerified bool      `json:"emailVerified" gorm:"column:email_verified;default:false"`
	Avatar        *string   `json:"avatar,omitempty" gorm:"type:text"`
	Language      string    `json:"language" gorm:"type:varchar(5);default:'ka'"`
	CreatedAt     time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	// Relationships
	Properties []Property `json:"properties,omitempty" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// UserResponse is the public-facing user data
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Phone         *string   `json:"phone"`
	Provider      string    `json:"provider"`
	EmailVerified bool      `json:"email_verified"`
	Avatar        *string   `json:"avatar,omitempty"`
	Language      string    `json:"language"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Phone:         u.Phone,
		Provider:      u.Provider,
		EmailVerified: u.EmailVerified,
		Avatar:        u.Avatar,
		Language:      u.Language,
		CreatedAt:     u.CreatedAt,
	}
}

// GithubUserInfo represents data from the GitHub user API
type GithubUserInfo struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// GithubEmail is one entry of the GitHub /user/emails response, used when
// the profile email is private.
type GithubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// AuthResponse is returned after successful authentication
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// RegisterRequest for email sign-up
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest for email sign-in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest for profile updates
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Avatar   *string `json:"avatar"`
	Language *string `json:"language" binding:"omitempty,oneof=ka en ru"`
}
