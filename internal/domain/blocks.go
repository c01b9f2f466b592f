package domain

import "encoding/json"

type BlockKind string

const (
	BlockHeader  BlockKind = "header"
	BlockText    BlockKind = "text"
	BlockLink    BlockKind = "link"
	BlockUnknown BlockKind = "unknown"
)

// ContentBlock is one renderable unit of a profile page, discriminated by
// Kind. Fields beyond ID/Kind/IsVisible are populated per kind: header uses
// Title, text uses Content, link uses Title/URL/Icon.
type ContentBlock struct {
	ID        string    `json:"id"`
	Kind      BlockKind `json:"type"`
	IsVisible bool      `json:"isVisible"`

	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	URL     string `json:"url,omitempty"`
	Icon    string `json:"icon,omitempty"`
}

// UnmarshalJSON maps unrecognized type tags to BlockUnknown so that stored
// blocks written by a newer editor never break rendering.
func (b *ContentBlock) UnmarshalJSON(data []byte) error {
	type alias ContentBlock
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	switch a.Kind {
	case BlockHeader, BlockText, BlockLink:
	default:
		a.Kind = BlockUnknown
	}
	*b = ContentBlock(a)
	return nil
}
