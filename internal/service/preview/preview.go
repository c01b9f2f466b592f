package preview

import (
	"html/template"
	"io"

	"linkbio-service/internal/domain"
)

// Document carries everything a social-preview consumer reads.
type Document struct {
	Title       string
	Description string
	Image       string
	URL         string
}

const descriptionLimit = 160

// Renderer synthesizes the static HTML served to crawlers. It never fails a
// request: lookup misses and backend errors both map to the site-wide
// default document, because preview consumers degrade ungracefully on
// anything but a 200 with valid markup.
type Renderer struct {
	siteName    string
	siteURL     string
	storageBase string

	docTmpl      *template.Template
	redirectTmpl *template.Template
}

func NewRenderer(siteName, siteURL, storageBase string) *Renderer {
	return &Renderer{
		siteName:     siteName,
		siteURL:      siteURL,
		storageBase:  storageBase,
		docTmpl:      template.Must(template.New("preview").Parse(previewHTML)),
		redirectTmpl: template.Must(template.New("redirect").Parse(redirectHTML)),
	}
}

// ForProfile builds the document for a resolved, published profile.
func (r *Renderer) ForProfile(p *domain.LinkBioProfile, canonicalURL string) Document {
	name := p.Name()

	description := truncate(p.Bio, descriptionLimit)
	if description == "" {
		description = "Perfil de " + name + " en " + r.siteName
	}

	return Document{
		Title:       name + " | " + r.siteName,
		Description: description,
		Image:       domain.PublicAvatarURL(p.Avatar, p.UserID, r.storageBase, p.Username),
		URL:         canonicalURL,
	}
}

// Default builds the site-wide fallback document used when no profile
// resolved, whatever the reason.
func (r *Renderer) Default(canonicalURL string) Document {
	return Document{
		Title:       r.siteName + " | Red Social Valenciana",
		Description: "Bienvenido al Epicentre de " + r.siteName + ". Reserva tu link personalizado, proyecta tus ideas en nuestro laboratorio digital y forma parte de la vanguardia valenciana.",
		Image:       r.siteURL + "/og-image.jpg",
		URL:         canonicalURL,
	}
}

// Render writes the full preview document. All interpolated text is escaped
// by the template engine, so profile content can never break the markup.
func (r *Renderer) Render(w io.Writer, doc Document) error {
	return r.docTmpl.Execute(w, struct {
		Document
		SiteName string
	}{doc, r.siteName})
}

// RenderRedirect writes the minimal document served to non-crawlers on the
// preview path, handing routing back to the client application.
func (r *Renderer) RenderRedirect(w io.Writer, path string) error {
	return r.redirectTmpl.Execute(w, struct{ Path string }{path})
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

const previewHTML = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />

  <!-- Primary Meta Tags -->
  <title>{{.Title}}</title>
  <meta name="title" content="{{.Title}}" />
  <meta name="description" content="{{.Description}}" />

  <!-- Open Graph / Facebook -->
  <meta property="og:type" content="profile" />
  <meta property="og:url" content="{{.URL}}" />
  <meta property="og:title" content="{{.Title}}" />
  <meta property="og:description" content="{{.Description}}" />
  <meta property="og:image" content="{{.Image}}" />
  <meta property="og:image:width" content="1200" />
  <meta property="og:image:height" content="630" />
  <meta property="og:image:type" content="image/jpeg" />
  <meta property="og:image:secure_url" content="{{.Image}}" />
  <meta property="og:site_name" content="{{.SiteName}}" />
  <meta property="og:locale" content="es_ES" />

  <!-- Twitter -->
  <meta name="twitter:card" content="summary_large_image" />
  <meta name="twitter:url" content="{{.URL}}" />
  <meta name="twitter:title" content="{{.Title}}" />
  <meta name="twitter:description" content="{{.Description}}" />
  <meta name="twitter:image" content="{{.Image}}" />

  <!-- Crawlers never execute this; real users bounce back to the app -->
  <script>
    const isBot = /bot|crawler|spider|crawling/i.test(navigator.userAgent);
    if (!isBot) {
      window.location.href = "{{.URL}}";
    }
  </script>
</head>
<body>
  <div id="root"></div>
</body>
</html>
`

const redirectHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <script>window.location.replace("{{.Path}}");</script>
  <noscript><meta http-equiv="refresh" content="0;url={{.Path}}"></noscript>
</head>
<body>Redirecting...</body>
</html>
`
