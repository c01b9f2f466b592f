package domain

import (
	"strings"
	"time"
)

// ProfileIdentity is the lookup key derived from a public path segment.
// RawInput keeps the segment as received; Normalized is what hits the store.
type ProfileIdentity struct {
	RawInput   string
	Normalized string
}

// NewProfileIdentity lower-cases the path segment for lookups. No other
// sanitization happens here; special characters pass through to the query
// layer as parameters.
func NewProfileIdentity(raw string) ProfileIdentity {
	trimmed := strings.TrimSpace(raw)
	return ProfileIdentity{
		RawInput:   raw,
		Normalized: strings.ToLower(trimmed),
	}
}

// LinkBioProfile is the publishable link-in-bio profile.
type LinkBioProfile struct {
	UserID      string            `json:"user_id"`
	Username    string            `json:"username"`
	CustomSlug  *string           `json:"custom_slug,omitempty"`
	DisplayName string            `json:"display_name"`
	Bio         string            `json:"bio,omitempty"`
	Avatar      string            `json:"avatar,omitempty"`
	Socials     map[string]string `json:"socials,omitempty"`
	Blocks      []ContentBlock    `json:"blocks"`
	Theme       *ThemeDescriptor  `json:"theme,omitempty"`
	IsPublished bool              `json:"is_published"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Name returns the display name, falling back to the username.
func (p *LinkBioProfile) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Username
}

// BasicProfile is the minimal row from the profiles table, used as the
// last-resort fallback when no link_bio_profiles row exists.
type BasicProfile struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
}

// FromBasicProfile synthesizes a minimal published profile from a basic
// profile row: a welcome text block, the default theme, a placeholder bio.
func FromBasicProfile(b BasicProfile) *LinkBioProfile {
	name := b.Name
	if name == "" {
		name = b.Username
	}

	avatar := b.Avatar
	if avatar == "" {
		avatar = PlaceholderAvatarURL(b.Username)
	}

	theme := DefaultTheme()
	return &LinkBioProfile{
		UserID:      b.UserID,
		Username:    b.Username,
		DisplayName: name,
		Bio:         "Explorador en Terreta Hub",
		Avatar:      avatar,
		Socials:     map[string]string{},
		Blocks: []ContentBlock{
			{
				ID:        "1",
				Kind:      BlockText,
				Content:   "Bienvenido al perfil de " + name + ".",
				IsVisible: true,
			},
		},
		Theme:       &theme,
		IsPublished: true,
	}
}
