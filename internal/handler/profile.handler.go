package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"linkbio-service/internal/cache"
	"linkbio-service/internal/domain"
	"linkbio-service/internal/metrics"
	"linkbio-service/internal/service/botdetect"
	"linkbio-service/internal/service/preview"
	"linkbio-service/internal/service/render"
	"linkbio-service/internal/service/resolver"
	"linkbio-service/internal/xerrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const previewCacheControl = "public, s-maxage=3600, stale-while-revalidate=86400"

// ProfileHandler serves the public profile surface. The control flow per
// request is strictly classify -> resolve -> render: crawlers get the static
// preview document and the request terminates there; humans get the
// interactive page.
type ProfileHandler struct {
	resolver *resolver.Resolver
	preview  *preview.Renderer
	page     *render.Renderer
	previews *cache.PreviewCache
	logger   *zap.Logger

	siteURL        string
	resolveTimeout time.Duration

	// Last-resolved slot shared across requests. Overwritten on every
	// distinct input; repeated hits on the same segment (preview fetchers
	// tend to arrive in bursts) skip the backend round-trip.
	memo *resolver.Memo
}

func NewProfileHandler(
	res *resolver.Resolver,
	previewRenderer *preview.Renderer,
	pageRenderer *render.Renderer,
	previews *cache.PreviewCache,
	siteURL string,
	resolveTimeout time.Duration,
	logger *zap.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		resolver:       res,
		preview:        previewRenderer,
		page:           pageRenderer,
		previews:       previews,
		logger:         logger,
		siteURL:        siteURL,
		resolveTimeout: resolveTimeout,
		memo:           resolver.NewMemo(),
	}
}

// PublicProfile handles GET /p/{extension}.
func (h *ProfileHandler) PublicProfile(w http.ResponseWriter, r *http.Request) {
	extension := chi.URLParam(r, "extension")

	if botdetect.Classify(r.Header.Get("User-Agent")) == botdetect.Crawler {
		metrics.ProfileRequests.WithLabelValues("crawler").Inc()
		h.servePreview(w, r, extension)
		return
	}

	metrics.ProfileRequests.WithLabelValues("human").Inc()
	h.serveInteractive(w, r, extension)
}

// PreviewAPI handles GET /api/p/{extension}: crawlers get the preview
// document, humans get a minimal redirect document so the client application
// takes over routing.
func (h *ProfileHandler) PreviewAPI(w http.ResponseWriter, r *http.Request) {
	extension := chi.URLParam(r, "extension")

	if botdetect.Classify(r.Header.Get("User-Agent")) == botdetect.Crawler {
		metrics.ProfileRequests.WithLabelValues("crawler").Inc()
		h.servePreview(w, r, extension)
		return
	}

	metrics.ProfileRequests.WithLabelValues("human").Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := h.preview.RenderRedirect(w, "/p/"+url.PathEscape(extension)); err != nil {
		h.logger.Error("failed to render redirect document", zap.Error(err))
	}
}

// servePreview always answers 200 with a valid document: a resolved profile
// when possible, the site-wide defaults otherwise. Preview consumers degrade
// ungracefully on error statuses.
func (h *ProfileHandler) servePreview(w http.ResponseWriter, r *http.Request, extension string) {
	key := domain.NewProfileIdentity(extension).Normalized

	if html, ok := h.previews.Get(r.Context(), key); ok {
		metrics.PreviewCacheHits.Inc()
		writePreview(w, html)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.resolveTimeout)
	defer cancel()

	canonical := h.canonicalURL(r, extension)

	res, err := h.resolver.Resolve(ctx, extension, h.memo)

	var doc preview.Document
	cacheable := true
	switch {
	case err == nil:
		metrics.Resolutions.WithLabelValues("found").Inc()
		doc = h.preview.ForProfile(res.Profile, canonical)
	case errors.Is(err, xerrors.ErrNotFound), errors.Is(err, xerrors.ErrInvalidInput):
		metrics.Resolutions.WithLabelValues("not_found").Inc()
		doc = h.preview.Default(canonical)
	default:
		// Transient failure: still serve the default document, but do not
		// let it stick in the cache.
		metrics.Resolutions.WithLabelValues(outcomeLabel(err)).Inc()
		h.logger.Warn("preview resolution failed",
			zap.String("input", extension),
			zap.Error(err))
		doc = h.preview.Default(canonical)
		cacheable = false
	}

	var buf bytes.Buffer
	if err := h.preview.Render(&buf, doc); err != nil {
		h.logger.Error("failed to render preview document", zap.Error(err))
		writePreview(w, "<!DOCTYPE html><html><head><title>"+h.preview.Default(canonical).Title+"</title></head><body></body></html>")
		return
	}

	if cacheable {
		h.previews.Set(r.Context(), key, buf.String())
	}
	writePreview(w, buf.String())
}

func (h *ProfileHandler) serveInteractive(w http.ResponseWriter, r *http.Request, extension string) {
	ctx, cancel := context.WithTimeout(r.Context(), h.resolveTimeout)
	defer cancel()

	res, err := h.resolver.Resolve(ctx, extension, h.memo)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	switch {
	case err == nil:
		metrics.Resolutions.WithLabelValues("found").Inc()
		w.WriteHeader(http.StatusOK)
		if rerr := h.page.RenderProfile(w, res.Profile); rerr != nil {
			h.logger.Error("failed to render profile page", zap.Error(rerr))
		}
	case errors.Is(err, xerrors.ErrNotFound), errors.Is(err, xerrors.ErrInvalidInput):
		metrics.Resolutions.WithLabelValues("not_found").Inc()
		w.WriteHeader(http.StatusNotFound)
		_ = h.page.RenderNotFound(w)
	default:
		metrics.Resolutions.WithLabelValues(outcomeLabel(err)).Inc()
		h.logger.Warn("interactive resolution failed",
			zap.String("input", extension),
			zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = h.page.RenderRetry(w, "/p/"+url.PathEscape(extension))
	}
}

// canonicalURL reconstructs the request's own public URL, honoring the
// proxy's forwarded protocol as the original deployment did.
func (h *ProfileHandler) canonicalURL(r *http.Request, extension string) string {
	proto := r.Header.Get("X-Forwarded-Proto")
	if proto == "" {
		proto = "https"
	}
	host := r.Host
	if host == "" {
		host = strings.TrimPrefix(strings.TrimPrefix(h.siteURL, "https://"), "http://")
	}
	return proto + "://" + host + "/p/" + url.PathEscape(extension)
}

func outcomeLabel(err error) string {
	if errors.Is(err, xerrors.ErrTimeout) {
		return "timeout"
	}
	return "transient"
}

func writePreview(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", previewCacheControl)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}
