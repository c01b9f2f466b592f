package resolver

import (
	"context"
	"errors"
	"fmt"

	"linkbio-service/internal/domain"
	"linkbio-service/internal/xerrors"

	"go.uber.org/zap"
)

// ProfileStore is the read surface the resolver needs from the repository.
type ProfileStore interface {
	FindBySlug(ctx context.Context, slug string) (*domain.LinkBioProfile, error)
	FindByUsername(ctx context.Context, username string) (*domain.LinkBioProfile, error)
	FindBasicByUsername(ctx context.Context, username string) (*domain.BasicProfile, error)
}

// Resolution is the outcome of resolving one path segment. Profile is nil
// iff NotFound is true.
type Resolution struct {
	Identity domain.ProfileIdentity
	Profile  *domain.LinkBioProfile
	NotFound bool
}

// Resolver maps an inbound path segment to a canonical profile. Lookup
// precedence: custom slug, then username, then the plain profiles table as a
// synthesized minimal profile. Slugs win over usernames because they are
// vanity identifiers the owner explicitly curated.
type Resolver struct {
	store  ProfileStore
	logger *zap.Logger
}

func NewResolver(store ProfileStore, logger *zap.Logger) *Resolver {
	return &Resolver{store: store, logger: logger}
}

// Resolve runs the lookup chain for rawInput. The lookups are sequential,
// not raced: almost every input resolves on the first attempt, and both are
// cheap point reads. Backend failures surface as ErrUnavailable/ErrTimeout,
// never as ErrNotFound. memo may be nil.
func (r *Resolver) Resolve(ctx context.Context, rawInput string, memo *Memo) (*Resolution, error) {
	id := domain.NewProfileIdentity(rawInput)
	if id.Normalized == "" {
		return nil, fmt.Errorf("%w: empty path segment", xerrors.ErrInvalidInput)
	}

	if out, ok := memo.lookup(id.Normalized); ok {
		if out.NotFound {
			return out, xerrors.ErrNotFound
		}
		return out, nil
	}

	profile, err := r.store.FindBySlug(ctx, id.Normalized)
	if err == nil {
		return r.found(id, profile, memo), nil
	}
	if !errors.Is(err, xerrors.ErrNotFound) {
		return nil, err
	}

	profile, err = r.store.FindByUsername(ctx, id.Normalized)
	if err == nil {
		return r.found(id, profile, memo), nil
	}
	if !errors.Is(err, xerrors.ErrNotFound) {
		return nil, err
	}

	basic, err := r.store.FindBasicByUsername(ctx, id.Normalized)
	if err == nil {
		return r.found(id, domain.FromBasicProfile(*basic), memo), nil
	}
	if !errors.Is(err, xerrors.ErrNotFound) {
		return nil, err
	}

	out := &Resolution{Identity: id, NotFound: true}
	memo.remember(id.Normalized, out)
	r.logger.Info("profile not found",
		zap.String("input", id.Normalized))
	return out, xerrors.ErrNotFound
}

func (r *Resolver) found(id domain.ProfileIdentity, profile *domain.LinkBioProfile, memo *Memo) *Resolution {
	out := &Resolution{Identity: id, Profile: profile}
	memo.remember(id.Normalized, out)
	return out
}
