package domain

import (
	"net/url"
	"strings"
)

// PlaceholderAvatarURL returns a generated avatar keyed by seed.
func PlaceholderAvatarURL(seed string) string {
	if seed == "" {
		seed = "user"
	}
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(seed)
}

// PublicAvatarURL resolves a stored avatar value into a URL fetchable by a
// preview consumer. Inline-encoded (data URI) and relative values cannot be
// embedded in Open Graph tags; those map to the canonical object-storage
// location {storageBase}/avatars/{userID}/avatar.jpg when both the user ID
// and the storage endpoint are known, otherwise to a generated placeholder.
// Absolute http(s) URLs pass through unchanged.
func PublicAvatarURL(avatar, userID, storageBase, seed string) string {
	if seed == "" {
		seed = userID
	}

	if avatar == "" {
		return PlaceholderAvatarURL(seed)
	}

	if strings.HasPrefix(avatar, "data:image") {
		if userID != "" && storageBase != "" {
			return storedAvatarURL(storageBase, userID)
		}
		return PlaceholderAvatarURL(seed)
	}

	if strings.HasPrefix(avatar, "http://") || strings.HasPrefix(avatar, "https://") {
		return avatar
	}

	// Relative storage path.
	if userID != "" && storageBase != "" {
		return storedAvatarURL(storageBase, userID)
	}
	return PlaceholderAvatarURL(seed)
}

func storedAvatarURL(storageBase, userID string) string {
	return strings.TrimSuffix(storageBase, "/") + "/avatars/" + userID + "/avatar.jpg"
}
