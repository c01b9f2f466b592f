package repository

import (
	"context"
	"errors"
	"fmt"

	"linkbio-service/internal/domain"
	"linkbio-service/internal/xerrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ProfileRepository is the typed accessor over the backend profile tables.
// Every method is a single filtered point read constrained to published
// rows, run under the shared retry policy.
type ProfileRepository struct {
	db     *pgxpool.Pool
	retry  RetryPolicy
	logger *zap.Logger
}

func NewProfileRepository(db *pgxpool.Pool, retry RetryPolicy, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{db: db, retry: retry, logger: logger}
}

const linkBioColumns = `
	user_id, username, custom_slug, COALESCE(display_name, ''), COALESCE(bio, ''),
	COALESCE(avatar, ''), socials, blocks, theme, is_published, updated_at`

// FindBySlug fetches the published profile owning the given custom slug.
func (r *ProfileRepository) FindBySlug(ctx context.Context, slug string) (*domain.LinkBioProfile, error) {
	const q = `
		SELECT` + linkBioColumns + `
		FROM link_bio_profiles
		WHERE custom_slug = $1 AND is_published = TRUE
	`
	return r.queryOne(ctx, "link_bio_profiles.by_slug", q, slug)
}

// FindByUsername fetches the published profile owning the given username.
func (r *ProfileRepository) FindByUsername(ctx context.Context, username string) (*domain.LinkBioProfile, error) {
	const q = `
		SELECT` + linkBioColumns + `
		FROM link_bio_profiles
		WHERE username = $1 AND is_published = TRUE
	`
	return r.queryOne(ctx, "link_bio_profiles.by_username", q, username)
}

// FindBasicByUsername reads the plain profiles table, the last-resort
// fallback when no link-bio row exists for a username.
func (r *ProfileRepository) FindBasicByUsername(ctx context.Context, username string) (*domain.BasicProfile, error) {
	const q = `
		SELECT user_id, username, COALESCE(name, ''), COALESCE(avatar, '')
		FROM profiles
		WHERE username = $1
	`

	basic := &domain.BasicProfile{}
	err := r.retry.Do(ctx, r.logger, "profiles.by_username", func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, q, username).Scan(
			&basic.UserID,
			&basic.Username,
			&basic.Name,
			&basic.Avatar,
		)
		return classifyErr(err)
	})
	if err != nil {
		return nil, err
	}
	return basic, nil
}

func (r *ProfileRepository) queryOne(ctx context.Context, name, q string, arg string) (*domain.LinkBioProfile, error) {
	profile := &domain.LinkBioProfile{}
	err := r.retry.Do(ctx, r.logger, name, func(ctx context.Context) error {
		var (
			socialsJSON []byte
			blocksJSON  []byte
			themeJSON   []byte
		)
		err := r.db.QueryRow(ctx, q, arg).Scan(
			&profile.UserID,
			&profile.Username,
			&profile.CustomSlug,
			&profile.DisplayName,
			&profile.Bio,
			&profile.Avatar,
			&socialsJSON,
			&blocksJSON,
			&themeJSON,
			&profile.IsPublished,
			&profile.UpdatedAt,
		)
		if err != nil {
			return classifyErr(err)
		}

		profile.Socials = decodeSocials(socialsJSON)
		profile.Blocks = decodeBlocks(blocksJSON)
		profile.Theme = decodeTheme(themeJSON)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// classifyErr translates backend failures into the resolution taxonomy.
// A missing row is ErrNotFound; a deadline expiry is ErrTimeout; anything
// else from the transport is ErrUnavailable. Not-found is never conflated
// with "could not check".
func classifyErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return xerrors.ErrNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w after bounded wait: %v", xerrors.ErrTimeout, err)
	case errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%w (pg code %s): %v", xerrors.ErrUnavailable, xerrors.ParsePGErrorCode(err), err)
	}
}
