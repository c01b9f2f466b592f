package botdetect

import "strings"

type Classification int

const (
	Human Classification = iota
	Crawler
)

func (c Classification) String() string {
	if c == Crawler {
		return "crawler"
	}
	return "human"
}

// Known crawler signatures: social preview fetchers and search engine bots.
// Matching is allow-by-match; anything unrecognized stays Human so a real
// user is never served the static bot document.
var botSignatures = []string{
	"facebookexternalhit",
	"twitterbot",
	"linkedinbot",
	"whatsapp",
	"telegrambot",
	"slackbot",
	"discordbot",
	"skypeuripreview",
	"googlebot",
	"bingbot",
	"slurp",
	"duckduckbot",
	"baiduspider",
	"yandexbot",
	"sogou",
	"exabot",
	"facebot",
	"ia_archiver",
}

// Classify inspects a raw User-Agent header value. An absent user agent
// classifies as Human.
func Classify(userAgent string) Classification {
	if userAgent == "" {
		return Human
	}
	ua := strings.ToLower(userAgent)
	for _, sig := range botSignatures {
		if strings.Contains(ua, sig) {
			return Crawler
		}
	}
	return Human
}
