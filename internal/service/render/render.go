package render

import (
	"html/template"
	"io"
	"sort"

	"linkbio-service/internal/domain"
)

// Renderer produces the interactive profile page for human visitors, plus
// the not-found and retry pages for the failure paths. It only ever reads
// profile state.
type Renderer struct {
	siteName    string
	storageBase string

	pageTmpl     *template.Template
	notFoundTmpl *template.Template
	retryTmpl    *template.Template
}

func NewRenderer(siteName, storageBase string) *Renderer {
	return &Renderer{
		siteName:     siteName,
		storageBase:  storageBase,
		pageTmpl:     template.Must(template.New("profile").Parse(profileHTML)),
		notFoundTmpl: template.Must(template.New("notfound").Parse(notFoundHTML)),
		retryTmpl:    template.Must(template.New("retry").Parse(retryHTML)),
	}
}

type socialLink struct {
	Platform string
	Target   string
}

type pageData struct {
	SiteName string
	Name     string
	Username string
	Bio      string
	Avatar   string
	Socials  []socialLink
	Blocks   []domain.ContentBlock
	Theme    Params
}

// RenderProfile writes the interactive page: avatar, identity, socials, then
// content blocks in stored order. Hidden blocks are omitted entirely and
// unknown block kinds render nothing.
func (r *Renderer) RenderProfile(w io.Writer, p *domain.LinkBioProfile) error {
	data := pageData{
		SiteName: r.siteName,
		Name:     p.Name(),
		Username: p.Username,
		Bio:      p.Bio,
		Avatar:   domain.PublicAvatarURL(p.Avatar, p.UserID, r.storageBase, p.Username),
		Socials:  sortedSocials(p.Socials),
		Blocks:   visibleBlocks(p.Blocks),
		Theme:    ThemeParams(p.Theme),
	}
	return r.pageTmpl.Execute(w, data)
}

// RenderNotFound writes the "profile not found" page with a link home.
func (r *Renderer) RenderNotFound(w io.Writer) error {
	return r.notFoundTmpl.Execute(w, struct{ SiteName string }{r.siteName})
}

// RenderRetry writes the transient-failure page with a retry affordance,
// keeping it distinguishable from not-found.
func (r *Renderer) RenderRetry(w io.Writer, path string) error {
	return r.retryTmpl.Execute(w, struct {
		SiteName string
		Path     string
	}{r.siteName, path})
}

func visibleBlocks(blocks []domain.ContentBlock) []domain.ContentBlock {
	out := make([]domain.ContentBlock, 0, len(blocks))
	for _, b := range blocks {
		if !b.IsVisible || b.Kind == domain.BlockUnknown {
			continue
		}
		out = append(out, b)
	}
	return out
}

func sortedSocials(socials map[string]string) []socialLink {
	out := make([]socialLink, 0, len(socials))
	for platform, target := range socials {
		if target == "" {
			continue
		}
		out = append(out, socialLink{Platform: platform, Target: target})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Platform < out[j].Platform })
	return out
}

const profileHTML = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>{{.Name}} | {{.SiteName}}</title>
  <style>
    body { margin: 0; {{.Theme.BackgroundCSS}} {{.Theme.TextColor}} {{.Theme.FontFamily}} }
    .profile { max-width: 28rem; margin: 0 auto; min-height: 100vh; padding: 2.5rem 1.5rem; }
    .avatar { width: 96px; height: 96px; border-radius: 50%; display: block; margin: 0 auto 1rem; object-fit: cover; }
    .name { text-align: center; font-size: 1.5rem; margin: 0 0 0.25rem; }
    .bio { text-align: center; margin: 0 0 1.5rem; opacity: 0.85; }
    .socials { text-align: center; margin-bottom: 1.5rem; }
    .socials a { margin: 0 0.5rem; text-decoration: none; {{.Theme.TextColor}} }
    .block-header { font-size: 1.1rem; margin: 1.5rem 0 0.5rem; }
    .block-text { margin: 0.5rem 0; }
    .block-link { display: block; text-align: center; padding: 0.85rem 1rem; margin: 0.6rem 0;
                  border-radius: 0.75rem; text-decoration: none; font-weight: bold; {{.Theme.ButtonCSS}} }
  </style>
</head>
<body>
  <div class="profile">
    <img class="avatar" src="{{.Avatar}}" alt="{{.Name}}" />
    <h1 class="name">{{.Name}}</h1>
    {{if .Bio}}<p class="bio">{{.Bio}}</p>{{end}}
    {{if .Socials}}<div class="socials">
      {{range .Socials}}<a href="{{.Target}}" rel="noopener noreferrer" target="_blank">{{.Platform}}</a>{{end}}
    </div>{{end}}
    {{range .Blocks}}{{if eq .Kind "header"}}
    <h2 class="block-header">{{.Title}}</h2>
    {{else if eq .Kind "text"}}
    <p class="block-text">{{.Content}}</p>
    {{else if eq .Kind "link"}}
    <a class="block-link" href="{{.URL}}" rel="noopener noreferrer" target="_blank">{{.Title}}</a>
    {{end}}{{end}}
  </div>
</body>
</html>
`

const notFoundHTML = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8" />
  <title>Perfil no encontrado | {{.SiteName}}</title>
</head>
<body style="font-family: Georgia, serif; text-align: center; padding: 4rem 1.5rem; background: #F9F6F0; color: #3E2723;">
  <h2>Perfil no encontrado</h2>
  <p>El perfil que buscas no existe o ha sido eliminado.</p>
  <a href="/" style="color: #D97706; font-weight: bold;">Volver al inicio</a>
</body>
</html>
`

const retryHTML = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8" />
  <title>Error temporal | {{.SiteName}}</title>
</head>
<body style="font-family: Georgia, serif; text-align: center; padding: 4rem 1.5rem; background: #F9F6F0; color: #3E2723;">
  <h2>No hemos podido cargar el perfil</h2>
  <p>Ha ocurrido un error temporal al consultar el servidor. El perfil puede existir.</p>
  <a href="{{.Path}}" style="color: #D97706; font-weight: bold;">Reintentar</a>
  <span> &middot; </span>
  <a href="/" style="color: #D97706; font-weight: bold;">Volver al inicio</a>
</body>
</html>
`
