package repository

import (
	"encoding/json"

	"linkbio-service/internal/domain"
)

// The JSONB columns are written by the profile editor and can drift or be
// absent. Decoding recovers locally: malformed payloads substitute the
// documented defaults instead of failing the whole lookup.

func decodeSocials(raw []byte) map[string]string {
	if len(raw) == 0 {
		return map[string]string{}
	}
	var socials map[string]string
	if err := json.Unmarshal(raw, &socials); err != nil || socials == nil {
		return map[string]string{}
	}
	return socials
}

func decodeBlocks(raw []byte) []domain.ContentBlock {
	if len(raw) == 0 {
		return []domain.ContentBlock{}
	}
	var blocks []domain.ContentBlock
	if err := json.Unmarshal(raw, &blocks); err != nil || blocks == nil {
		return []domain.ContentBlock{}
	}
	return blocks
}

func decodeTheme(raw []byte) *domain.ThemeDescriptor {
	if len(raw) == 0 {
		return nil
	}
	var theme domain.ThemeDescriptor
	if err := json.Unmarshal(raw, &theme); err != nil {
		return nil
	}
	if theme.ID == "" && theme.BgColor == "" && theme.TextColor == "" {
		// Row held "{}" or junk; let the renderer fall back.
		return nil
	}
	return &theme
}
