package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avetrin/go-folio/internal/blob"
	"github.com/avetrin/go-folio/internal/logger"
	"github.com/avetrin/go-folio/internal/store"
	"github.com/avetrin/go-folio/models"
)

// profileService implements [ProfileService]. Besides the caller's own
// profile it serves the two public read paths: username lookup and the
// aggregated portfolio view.
type profileService struct {
	repositories *store.Repositories
	blobStore    blob.Store
	logger       *logger.Logger
}

// NewProfileService constructs a [ProfileService] over the full repository
// set; the portfolio aggregation reads every resource collection.
func NewProfileService(repositories *store.Repositories, blobStore blob.Store, logger *logger.Logger) ProfileService {
	return &profileService{
		repositories: repositories,
		blobStore:    blobStore,
		logger:       logger,
	}
}

// GetUser returns the caller's own account record.
func (s *profileService) GetUser(ctx context.Context, callerID int64) (models.User, error) {
	if callerID <= 0 {
		return models.User{}, ErrIdentityRequired
	}

	return s.repositories.UserRepository.FindUserByID(ctx, callerID)
}

// UpdateProfile replaces the caller's display fields (FullName, Bio).
// Username, email, avatar, and credentials are not touched here.
func (s *profileService) UpdateProfile(ctx context.Context, callerID int64, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if callerID <= 0 {
		return models.User{}, ErrIdentityRequired
	}

	user.FullName = strings.TrimSpace(user.FullName)
	user.Bio = strings.TrimSpace(user.Bio)
	if user.FullName == "" {
		return models.User{}, fmt.Errorf("%w: fullname is required", ErrInvalidDataProvided)
	}

	current, err := s.repositories.UserRepository.FindUserByID(ctx, callerID)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	current.FullName = user.FullName
	current.Bio = user.Bio

	updated, err := s.repositories.UserRepository.UpdateProfile(ctx, current)
	if err != nil {
		log.Err(err).Int64("userID", callerID).Msg("profile update ended with error")
		return models.User{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return updated, nil
}

// UploadAvatar stores a new avatar image and points the profile at it.
// The previous avatar object, if any, is deleted best-effort once the
// profile row references the new key.
func (s *profileService) UploadAvatar(ctx context.Context, callerID int64, upload Upload) (models.User, error) {
	log := logger.FromContext(ctx)

	if callerID <= 0 {
		return models.User{}, ErrIdentityRequired
	}
	if upload.Body == nil {
		return models.User{}, fmt.Errorf("%w: avatar file is required", ErrInvalidDataProvided)
	}

	current, err := s.repositories.UserRepository.FindUserByID(ctx, callerID)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}
	previousKey := current.ImageKey

	key, err := s.blobStore.Put(ctx, upload.Body, upload.Size, upload.ContentType)
	if err != nil {
		log.Err(err).Msg("avatar upload ended with error")
		return models.User{}, fmt.Errorf("avatar upload ended with error: %w", err)
	}

	current.ImageKey = key
	updated, err := s.repositories.UserRepository.UpdateProfile(ctx, current)
	if err != nil {
		if cleanupErr := s.blobStore.Delete(ctx, key); cleanupErr != nil {
			log.Err(cleanupErr).Str("key", key).Msg("compensating blob delete failed, object left for sweeper")
		}
		return models.User{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	if previousKey != "" {
		if err = s.blobStore.Delete(ctx, previousKey); err != nil {
			log.Err(err).Str("key", previousKey).Msg("deleting previous avatar failed, object left for sweeper")
		}
	}

	return updated, nil
}

// LookupUsername resolves a public handle to its visitor-facing profile,
// or [store.ErrNoUserWasFound].
func (s *profileService) LookupUsername(ctx context.Context, username string) (models.PublicProfile, error) {
	if strings.TrimSpace(username) == "" {
		return models.PublicProfile{}, fmt.Errorf("%w: username is required", ErrInvalidDataProvided)
	}

	user, err := s.repositories.UserRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.PublicProfile{}, err
	}

	return user.Public(), nil
}

// Portfolio assembles the complete public portfolio of a username: profile,
// about section, and every resource collection. A portfolio with empty
// sections is a valid result; only an unknown username is an error.
func (s *profileService) Portfolio(ctx context.Context, username string) (models.Portfolio, error) {
	log := logger.FromContext(ctx)

	user, err := s.repositories.UserRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.Portfolio{}, err
	}

	portfolio := models.Portfolio{Profile: user.Public()}
	ownerID := user.UserID

	abouts, err := s.repositories.Abouts.ListByOwner(ctx, ownerID)
	if err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		log.Err(err).Msg("portfolio about lookup failed")
		return models.Portfolio{}, fmt.Errorf("portfolio assembly failed: %w", err)
	}
	if len(abouts) > 0 {
		portfolio.About = abouts[0]
	}

	if portfolio.Skills, err = s.repositories.Skills.ListByOwner(ctx, ownerID); err != nil {
		return models.Portfolio{}, fmt.Errorf("portfolio assembly failed: %w", err)
	}
	if portfolio.Experiences, err = s.repositories.Experiences.ListByOwner(ctx, ownerID); err != nil {
		return models.Portfolio{}, fmt.Errorf("portfolio assembly failed: %w", err)
	}
	if portfolio.Projects, err = s.repositories.Projects.ListByOwner(ctx, ownerID); err != nil {
		return models.Portfolio{}, fmt.Errorf("portfolio assembly failed: %w", err)
	}
	if portfolio.Certificates, err = s.repositories.Certificates.ListByOwner(ctx, ownerID); err != nil {
		return models.Portfolio{}, fmt.Errorf("portfolio assembly failed: %w", err)
	}

	return portfolio, nil
}
