package render

import (
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"linkbio-service/internal/domain"
)

// Params are the concrete rendering values derived from a theme descriptor.
type Params struct {
	BackgroundCSS template.CSS
	TextColor     template.CSS
	FontFamily    template.CSS
	ButtonCSS     template.CSS
}

var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ThemeParams maps a stored descriptor to rendering parameters. A nil or
// malformed descriptor falls back to the default theme; theme selection
// never fails.
func ThemeParams(theme *domain.ThemeDescriptor) Params {
	def := domain.DefaultTheme()
	if theme == nil {
		theme = &def
	}

	bgColor := pickColor(theme.BgColor, def.BgColor)
	textColor := pickColor(theme.TextColor, def.TextColor)
	buttonColor := pickColor(theme.ButtonColor, def.ButtonColor)
	buttonTextColor := pickColor(theme.ButtonTextColor, def.ButtonTextColor)

	background := fmt.Sprintf("background-color: %s;", bgColor)
	if theme.BgType == "image" && safeImageURL(theme.BgImage) {
		background = fmt.Sprintf("background-image: url('%s'); background-size: cover; background-position: center;", theme.BgImage)
	}

	font := "Georgia, 'Times New Roman', serif"
	if theme.Font == "sans" {
		font = "'Helvetica Neue', Arial, sans-serif"
	}

	button := fmt.Sprintf("background-color: %s; color: %s; border: none;", buttonColor, buttonTextColor)
	if theme.ButtonStyle == "outline" {
		button = fmt.Sprintf("background-color: transparent; color: %s; border: 2px solid %s;", buttonColor, buttonColor)
	}

	return Params{
		BackgroundCSS: template.CSS(background),
		TextColor:     template.CSS("color: " + textColor + ";"),
		FontFamily:    template.CSS("font-family: " + font + ";"),
		ButtonCSS:     template.CSS(button),
	}
}

func pickColor(value, fallback string) string {
	if colorPattern.MatchString(value) {
		return value
	}
	return fallback
}

// safeImageURL accepts absolute http(s) URLs that cannot terminate the CSS
// url() literal.
func safeImageURL(raw string) bool {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return false
	}
	return !strings.ContainsAny(raw, `'"()\`)
}
