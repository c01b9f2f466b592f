package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"linkbio-service/internal/domain"
	"linkbio-service/internal/handler"
	"linkbio-service/internal/service/preview"
	"linkbio-service/internal/service/render"
	"linkbio-service/internal/service/resolver"
	"linkbio-service/internal/xerrors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type emptyStore struct{}

func (emptyStore) FindBySlug(ctx context.Context, slug string) (*domain.LinkBioProfile, error) {
	return nil, xerrors.ErrNotFound
}
func (emptyStore) FindByUsername(ctx context.Context, username string) (*domain.LinkBioProfile, error) {
	return nil, xerrors.ErrNotFound
}
func (emptyStore) FindBasicByUsername(ctx context.Context, username string) (*domain.BasicProfile, error) {
	return nil, xerrors.ErrNotFound
}

func newRouterUnderTest() chi.Router {
	logger := zap.NewNop()
	h := handler.NewProfileHandler(
		resolver.NewResolver(emptyStore{}, logger),
		preview.NewRenderer("Terreta Hub", "https://terretahub.com", ""),
		render.NewRenderer("Terreta Hub", ""),
		nil,
		"https://terretahub.com",
		time.Second,
		logger,
	)
	return SetupRoutes(chi.NewRouter(), h, nil, logger)
}

func TestHealthEndpoint(t *testing.T) {
	r := newRouterUnderTest()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "running")
}

func TestMetricsEndpoint(t *testing.T) {
	r := newRouterUnderTest()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestIDHeaderSet(t *testing.T) {
	r := newRouterUnderTest()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
