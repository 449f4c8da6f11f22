package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/vibecare/internal/logger"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/repositories"
)

//go:generate mockgen -source=media.go -destination=mock_media.go -package=services

// RandomImageCount is how many pictures the home screen shows at once.
const RandomImageCount = 5

// ImageStore defines the picture library operations.
type ImageStore interface {
	Random(ctx context.Context, n uint64) ([]models.Image, error)
	GetByID(ctx context.Context, id string) (*models.Image, error)
}

// EmojiStore defines the emoji catalogue lookup.
type EmojiStore interface {
	Find(ctx context.Context, symbol string) (*models.EmojiMatch, error)
}

// MediaService serves the picture library and the emoji catalogue.
type MediaService struct {
	images ImageStore
	emojis EmojiStore
}

// NewMediaService creates a new MediaService instance.
func NewMediaService(images ImageStore, emojis EmojiStore) *MediaService {
	return &MediaService{images: images, emojis: emojis}
}

// RandomImages returns a random sample of the library.
func (svc *MediaService) RandomImages(ctx context.Context) ([]models.Image, error) {
	images, err := svc.images.Random(ctx, RandomImageCount)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to sample images", "err", err)
		return nil, err
	}
	return images, nil
}

func (svc *MediaService) Image(ctx context.Context, id string) (*models.Image, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	img, err := svc.images.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrImageNotFound
	}
	return img, err
}

// SearchEmoji finds the category and subcategory an emoji belongs to.
func (svc *MediaService) SearchEmoji(ctx context.Context, symbol string) (*models.EmojiMatch, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, ErrEmojiRequired
	}

	match, err := svc.emojis.Find(ctx, symbol)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil, ErrEmojiNotFound
	case err != nil:
		logger.FromContext(ctx).Errorw("emoji search failed", "emoji", symbol, "err", err)
		return nil, err
	}
	return match, nil
}
