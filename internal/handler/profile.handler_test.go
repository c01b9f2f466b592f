package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"linkbio-service/internal/domain"
	"linkbio-service/internal/service/preview"
	"linkbio-service/internal/service/render"
	"linkbio-service/internal/service/resolver"
	"linkbio-service/internal/xerrors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const (
	botUA   = "facebookexternalhit/1.1"
	humanUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
)

type stubStore struct {
	bySlug     map[string]*domain.LinkBioProfile
	byUsername map[string]*domain.LinkBioProfile
	err        error
}

func (s *stubStore) FindBySlug(ctx context.Context, slug string) (*domain.LinkBioProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	if p, ok := s.bySlug[slug]; ok {
		return p, nil
	}
	return nil, xerrors.ErrNotFound
}

func (s *stubStore) FindByUsername(ctx context.Context, username string) (*domain.LinkBioProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	if p, ok := s.byUsername[username]; ok {
		return p, nil
	}
	return nil, xerrors.ErrNotFound
}

func (s *stubStore) FindBasicByUsername(ctx context.Context, username string) (*domain.BasicProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return nil, xerrors.ErrNotFound
}

func newTestRouter(store *stubStore) chi.Router {
	logger := zap.NewNop()
	res := resolver.NewResolver(store, logger)
	h := NewProfileHandler(
		res,
		preview.NewRenderer("Terreta Hub", "https://terretahub.com", ""),
		render.NewRenderer("Terreta Hub", ""),
		nil,
		"https://terretahub.com",
		2*time.Second,
		logger,
	)

	r := chi.NewRouter()
	r.Get("/p/{extension}", h.PublicProfile)
	r.Get("/api/p/{extension}", h.PreviewAPI)
	return r
}

func doRequest(t *testing.T, router chi.Router, path, userAgent string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func storeWith(p *domain.LinkBioProfile) *stubStore {
	s := &stubStore{
		bySlug:     map[string]*domain.LinkBioProfile{},
		byUsername: map[string]*domain.LinkBioProfile{p.Username: p},
	}
	if p.CustomSlug != nil {
		s.bySlug[*p.CustomSlug] = p
	}
	return s
}

func TestCrawlerGetsPreviewDocument(t *testing.T) {
	slug := "mi-perfil"
	p := &domain.LinkBioProfile{
		UserID:      "u-1",
		Username:    "maria",
		CustomSlug:  &slug,
		DisplayName: "María",
		Bio:         "Arquitecta valenciana",
		IsPublished: true,
	}
	router := newTestRouter(storeWith(p))

	rec := doRequest(t, router, "/p/Mi-Perfil", botUA)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, s-maxage=3600, stale-while-revalidate=86400", rec.Header().Get("Cache-Control"))

	body := rec.Body.String()
	assert.Contains(t, body, "María | Terreta Hub")
	assert.Contains(t, body, "Arquitecta valenciana")
	assert.Contains(t, body, `property="og:type" content="profile"`)
	assert.Contains(t, body, "/p/Mi-Perfil", "canonical URL preserves the raw segment")
}

func TestCrawlerNotFoundStillGets200Defaults(t *testing.T) {
	router := newTestRouter(&stubStore{})

	rec := doRequest(t, router, "/p/nadie", botUA)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Terreta Hub | Red Social Valenciana")
	assert.Contains(t, body, "og-image.jpg")
}

func TestCrawlerBackendErrorStillGets200Defaults(t *testing.T) {
	router := newTestRouter(&stubStore{
		err: fmt.Errorf("%w: down", xerrors.ErrUnavailable),
	})

	rec := doRequest(t, router, "/p/maria", botUA)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Terreta Hub | Red Social Valenciana")
}

func TestHumanGetsInteractivePage(t *testing.T) {
	p := &domain.LinkBioProfile{
		UserID:      "u-1",
		Username:    "maria",
		DisplayName: "María",
		Bio:         "Hola",
		IsPublished: true,
		Blocks: []domain.ContentBlock{
			{ID: "1", Kind: domain.BlockLink, Title: "Portafolio", URL: "https://example.com", IsVisible: true},
		},
	}
	router := newTestRouter(storeWith(p))

	rec := doRequest(t, router, "/p/maria", humanUA)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Portafolio")
	assert.NotContains(t, body, "og:image", "interactive page is not the bot document")
}

func TestHumanNotFoundPage(t *testing.T) {
	router := newTestRouter(&stubStore{})

	rec := doRequest(t, router, "/p/nadie", humanUA)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Perfil no encontrado")
	assert.Contains(t, body, `href="/"`)
}

func TestHumanTransientFailureGetsRetryPage(t *testing.T) {
	router := newTestRouter(&stubStore{
		err: fmt.Errorf("%w: down", xerrors.ErrUnavailable),
	})

	rec := doRequest(t, router, "/p/maria", humanUA)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Reintentar")
	assert.NotContains(t, body, "Perfil no encontrado", "transient failure is not presented as not-found")
}

func TestMissingUserAgentTreatedAsHuman(t *testing.T) {
	router := newTestRouter(&stubStore{})

	rec := doRequest(t, router, "/p/nadie", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Perfil no encontrado")
}

func TestPreviewAPIRedirectsHumans(t *testing.T) {
	router := newTestRouter(&stubStore{})

	rec := doRequest(t, router, "/api/p/maria", humanUA)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "window.location.replace")
	assert.Contains(t, body, "/p/maria")
}

func TestPreviewAPIServesCrawlers(t *testing.T) {
	p := &domain.LinkBioProfile{
		UserID:      "u-1",
		Username:    "maria",
		DisplayName: "María",
		IsPublished: true,
	}
	router := newTestRouter(storeWith(p))

	rec := doRequest(t, router, "/api/p/maria", botUA)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "María | Terreta Hub")
}

func TestLongBioTruncatedInPreview(t *testing.T) {
	p := &domain.LinkBioProfile{
		UserID:      "u-1",
		Username:    "maria",
		DisplayName: "María",
		Bio:         strings.Repeat("x", 300),
		IsPublished: true,
	}
	router := newTestRouter(storeWith(p))

	rec := doRequest(t, router, "/p/maria", botUA)

	body := rec.Body.String()
	assert.Contains(t, body, strings.Repeat("x", 160))
	assert.NotContains(t, body, strings.Repeat("x", 161))
}
