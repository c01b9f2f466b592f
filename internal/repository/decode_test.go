package repository

import (
	"testing"

	"linkbio-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSocials(t *testing.T) {
	assert.Empty(t, decodeSocials(nil))
	assert.Empty(t, decodeSocials([]byte(`not json`)))
	assert.Empty(t, decodeSocials([]byte(`null`)))

	socials := decodeSocials([]byte(`{"twitter":"@maria","website":"https://example.com"}`))
	assert.Equal(t, "@maria", socials["twitter"])
	assert.Equal(t, "https://example.com", socials["website"])
}

func TestDecodeBlocksMalformedSubstitutesDefault(t *testing.T) {
	assert.Empty(t, decodeBlocks(nil))
	assert.Empty(t, decodeBlocks([]byte(`{"oops":true}`)))
	assert.Empty(t, decodeBlocks([]byte(`null`)))
}

func TestDecodeBlocksPreservesOrder(t *testing.T) {
	blocks := decodeBlocks([]byte(`[
		{"id":"1","type":"header","title":"X","isVisible":true},
		{"id":"2","type":"widget","isVisible":true},
		{"id":"3","type":"text","content":"Y","isVisible":true}
	]`))
	require.Len(t, blocks, 3)
	assert.Equal(t, domain.BlockHeader, blocks[0].Kind)
	assert.Equal(t, domain.BlockUnknown, blocks[1].Kind, "unknown tag survives decode as a no-op block")
	assert.Equal(t, domain.BlockText, blocks[2].Kind)
}

func TestDecodeTheme(t *testing.T) {
	assert.Nil(t, decodeTheme(nil))
	assert.Nil(t, decodeTheme([]byte(`not json`)))
	assert.Nil(t, decodeTheme([]byte(`{}`)), "empty object lets the renderer fall back")

	theme := decodeTheme([]byte(`{"id":"arcilla","name":"Arcilla","bgType":"color","bgColor":"#FFF7ED","textColor":"#7C2D12","buttonStyle":"outline","buttonColor":"#9A3412","buttonTextColor":"#FFF7ED","font":"sans"}`))
	require.NotNil(t, theme)
	assert.Equal(t, "arcilla", theme.ID)
	assert.Equal(t, "outline", theme.ButtonStyle)
}
