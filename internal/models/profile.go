package models

import (
	"time"

	"github.com/google/uuid"
)

// Device classes derived from the User-Agent at login time.
const (
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
)

// ProfileDB represents a user profile row in the database.
// A profile is created on first successful authentication and never hard-deleted.
type ProfileDB struct {
	UserID         uuid.UUID  `json:"user_id" db:"user_id"`                 // Primary key
	DiscordID      string     `json:"discord_id" db:"discord_id"`           // Identity provider account id (unique)
	Name           *string    `json:"name" db:"name"`                       // Display name, editable once
	AvatarURL      *string    `json:"avatar_url" db:"avatar_url"`           // Avatar cached from the identity provider
	NicknameEdited bool       `json:"nickname_edited" db:"nickname_edited"` // Set after the one allowed rename
	IsAdmin        bool       `json:"is_admin" db:"is_admin"`               // Administrator flag; admins are never bannable
	Banned         bool       `json:"banned" db:"banned"`                   // Access restriction flag
	BanReason      *string    `json:"ban_reason" db:"ban_reason"`           // Non-empty iff banned
	IP             *string    `json:"ip" db:"ip"`                           // Last-known network origin
	DeviceType     *string    `json:"device_type" db:"device_type"`         // mobile or desktop
	LastLoginAt    *time.Time `json:"last_login_at" db:"last_login_at"`     // Refreshed on every login
	LastBoostAt    *time.Time `json:"last_boost_at" db:"last_boost_at"`     // Authoritative boost cooldown anchor
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// DiscordUser is the subset of the identity provider's profile endpoint
// response this service cares about.
type DiscordUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name"`
	Avatar     string `json:"avatar"`
}

// DisplayName prefers the provider's global display name over the raw username.
func (u *DiscordUser) DisplayName() string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}
