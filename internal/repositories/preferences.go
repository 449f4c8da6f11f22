package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vibecare/internal/models"
)

const preferencesColumns = "user_id, gender, age_group, relationship_status, living_situation, updated_at"

type PreferencesRepository struct {
	db *sqlx.DB
}

func NewPreferencesRepository(db *sqlx.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

func (r *PreferencesRepository) Get(ctx context.Context, userID string) (*models.UserPreferences, error) {
	b := psql.Select(preferencesColumns).From("user_preferences").Where(sq.Eq{"user_id": userID})
	return getOne[models.UserPreferences](ctx, r.db, b)
}

// Upsert replaces the stored row of the user.
func (r *PreferencesRepository) Upsert(ctx context.Context, p *models.UserPreferences) error {
	b := psql.Insert("user_preferences").
		Columns("user_id", "gender", "age_group", "relationship_status", "living_situation").
		Values(p.UserID, p.Gender, p.AgeGroup, p.RelationshipStatus, p.LivingSituation).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			gender = EXCLUDED.gender,
			age_group = EXCLUDED.age_group,
			relationship_status = EXCLUDED.relationship_status,
			living_situation = EXCLUDED.living_situation,
			updated_at = NOW()
		RETURNING ` + preferencesColumns)

	saved, err := getOne[models.UserPreferences](ctx, r.db, b)
	if err != nil {
		return err
	}
	*p = *saved
	return nil
}
