package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vibecare/internal/models"
)

const imageColumns = "id, title, url, description, created_at"

// ImageRepository reads the picture library.
type ImageRepository struct {
	db *sqlx.DB
}

func NewImageRepository(db *sqlx.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// Random returns up to n images in random order.
func (r *ImageRepository) Random(ctx context.Context, n uint64) ([]models.Image, error) {
	b := psql.Select(imageColumns).
		From("images").
		OrderBy("RANDOM()").
		Limit(n)
	return selectAll[models.Image](ctx, r.db, b)
}

func (r *ImageRepository) GetByID(ctx context.Context, id string) (*models.Image, error) {
	return getOne[models.Image](ctx, r.db, psql.Select(imageColumns).From("images").Where(sq.Eq{"id": id}))
}

// emojiSource unnests every emoji of the catalogue with its position.
const emojiSource = "emoji_catalogue ec" +
	" CROSS JOIN LATERAL jsonb_array_elements(ec.categories) WITH ORDINALITY AS c(cat, ci)" +
	" CROSS JOIN LATERAL jsonb_array_elements(c.cat->'subcategories') WITH ORDINALITY AS s(sub, si)" +
	" CROSS JOIN LATERAL jsonb_array_elements(s.sub->'emojis') WITH ORDINALITY AS e(item, ei)"

// EmojiRepository searches the JSONB emoji catalogue.
type EmojiRepository struct {
	db *sqlx.DB
}

func NewEmojiRepository(db *sqlx.DB) *EmojiRepository {
	return &EmojiRepository{db: db}
}

// Find returns the first catalogue entry whose emoji equals symbol.
func (r *EmojiRepository) Find(ctx context.Context, symbol string) (*models.EmojiMatch, error) {
	b := psql.Select(
		"COALESCE(c.cat->>'category', '') AS category",
		"COALESCE(s.sub->>'subcategory', '') AS subcategory",
		"e.item AS emoji_data",
	).
		From(emojiSource).
		Where("e.item->>'emoji' = ?", symbol).
		OrderBy("ec.id", "c.ci", "s.si", "e.ei").
		Limit(1)
	return getOne[models.EmojiMatch](ctx, r.db, b)
}
