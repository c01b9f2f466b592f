package domain

// ThemeDescriptor is the stored set of visual parameters for a profile page.
// It is a value object: picking another theme replaces the whole descriptor.
type ThemeDescriptor struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	BgType          string `json:"bgType"` // "color" | "image"
	BgColor         string `json:"bgColor"`
	BgImage         string `json:"bgImage,omitempty"`
	TextColor       string `json:"textColor"`
	ButtonStyle     string `json:"buttonStyle"` // "solid" | "outline"
	ButtonColor     string `json:"buttonColor"`
	ButtonTextColor string `json:"buttonTextColor"`
	Font            string `json:"font"` // "serif" | "sans"
}

// DefaultTheme returns the Terreta Original descriptor applied whenever a
// profile has no stored theme.
func DefaultTheme() ThemeDescriptor {
	return ThemeDescriptor{
		ID:              "terreta",
		Name:            "Terreta Original",
		BgType:          "color",
		BgColor:         "#F9F6F0",
		TextColor:       "#3E2723",
		ButtonStyle:     "solid",
		ButtonColor:     "#3E2723",
		ButtonTextColor: "#FFFFFF",
		Font:            "serif",
	}
}
