package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/pagination"
	"github.com/sbilibin2017/vibecare/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("requires docker")
	}

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	require.NoError(t, migrations.Migrate(db.DB))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestPostgresRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserRepository(db, nil)

	t.Run("UserCreateAndDuplicate", func(t *testing.T) {
		u := &models.User{Name: "Alice", Username: "alice", Email: "alice@example.com", PasswordHash: "h"}
		require.NoError(t, users.Create(ctx, u))
		assert.NotEmpty(t, u.ID)
		assert.Equal(t, models.UserStatusActive, u.Status)

		err := users.Create(ctx, &models.User{Email: "alice@example.com", PasswordHash: "h"})
		assert.ErrorIs(t, err, ErrDuplicate)

		got, err := users.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)

		_, err = users.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("UserPagesAreDisjoint", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			require.NoError(t, users.Create(ctx, &models.User{Email: fmt.Sprintf("p%d@example.com", i), PasswordHash: "h"}))
		}
		total, err := users.Count(ctx)
		require.NoError(t, err)

		seen := map[string]bool{}
		for page := 1; ; page++ {
			res, err := users.List(ctx, pagination.New(page, 2, pagination.DefaultLimit))
			require.NoError(t, err)
			for _, u := range res.Items {
				assert.False(t, seen[u.ID], "user %s returned twice", u.ID)
				seen[u.ID] = true
			}
			if !res.HasMore {
				break
			}
		}
		assert.Equal(t, int(total), len(seen))
	})

	t.Run("UserUpdateAndReset", func(t *testing.T) {
		u := &models.User{Email: "bob@example.com", PasswordHash: "h"}
		require.NoError(t, users.Create(ctx, u))

		name := "Bob"
		updated, err := users.Update(ctx, u.ID, models.UserUpdate{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Bob", updated.Name)
		assert.Equal(t, "bob@example.com", updated.Email)

		taken := "alice@example.com"
		_, err = users.Update(ctx, u.ID, models.UserUpdate{Email: &taken})
		assert.ErrorIs(t, err, ErrDuplicate)

		require.NoError(t, users.SetResetOTP(ctx, u.ID, "otp-hash", time.Now().Add(time.Minute)))
		got, err := users.GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.NotNil(t, got.OTPHash)
		require.NotNil(t, got.ResetTokenExpiration)

		require.NoError(t, users.ResetPassword(ctx, u.ID, "new-hash"))
		got, err = users.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "new-hash", got.PasswordHash)
		assert.Nil(t, got.OTPHash)
		assert.Nil(t, got.ResetTokenExpiration)

		require.NoError(t, users.Delete(ctx, u.ID))
		assert.ErrorIs(t, users.Delete(ctx, u.ID), ErrNotFound)
	})

	t.Run("FeedbackRespondOnce", func(t *testing.T) {
		fb := NewFeedbackRepository(db)
		f := &models.Feedback{UserID: "7c0a3f5e-2a43-4d6b-9d0e-6b3c8d2b1a10", Feedback: "great", TicketNumber: "T-1"}
		require.NoError(t, fb.Create(ctx, f))
		assert.Equal(t, models.FeedbackStatusOpen, f.Status)

		assert.ErrorIs(t, fb.Create(ctx, &models.Feedback{UserID: f.UserID, TicketNumber: "T-1"}), ErrDuplicate)

		closed, err := fb.RespondByTicket(ctx, "T-1", "thanks")
		require.NoError(t, err)
		assert.True(t, closed.Responded)
		assert.Equal(t, models.FeedbackStatusClosed, closed.Status)

		_, err = fb.RespondByID(ctx, f.ID, "again")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("FaceExpressionJSONColumns", func(t *testing.T) {
		fe := NewFaceExpressionRepository(db)
		conf := 90.0
		e := &models.FaceExpression{
			UserID:           "7c0a3f5e-2a43-4d6b-9d0e-6b3c8d2b1a10",
			FacesDetected:    1,
			PredictedEmotion: "Happy",
			Confidence:       &conf,
			AllEmotions:      &models.EmotionBreakdown{Happy: 0.9, Sad: 0.1},
			BoundingBox:      &models.BoundingBox{X: 1, Y: 2, Width: 3, Height: 4},
			RawResult:        models.RawJSON(`{"faces":1}`),
			CapturedAt:       time.Now().UTC(),
		}
		require.NoError(t, fe.Create(ctx, e))
		require.NotNil(t, e.AllEmotions)
		assert.InDelta(t, 0.9, e.AllEmotions.Happy, 1e-9)
		assert.Equal(t, float64(3), e.BoundingBox.Width)
		assert.JSONEq(t, `{"faces":1}`, string(e.RawResult))
	})

	t.Run("CaretakerNameUniquePerUser", func(t *testing.T) {
		ct := NewCaretakerRepository(db)
		owner := "0f3b1d2c-5e6a-4b7c-8d9e-0a1b2c3d4e5f"
		require.NoError(t, ct.Create(ctx, &models.Caretaker{UserID: owner, CaretakerName: "Mom", CodeHash: "h"}))
		assert.ErrorIs(t, ct.Create(ctx, &models.Caretaker{UserID: owner, CaretakerName: " mom ", CodeHash: "h"}), ErrDuplicate)
		require.NoError(t, ct.Create(ctx, &models.Caretaker{UserID: "1f3b1d2c-5e6a-4b7c-8d9e-0a1b2c3d4e5f", CaretakerName: "MOM", CodeHash: "h"}))

		found, err := ct.FindByName(ctx, "mom")
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("PreferencesUpsert", func(t *testing.T) {
		pr := NewPreferencesRepository(db)
		owner := "2f3b1d2c-5e6a-4b7c-8d9e-0a1b2c3d4e5f"
		_, err := pr.Get(ctx, owner)
		assert.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, pr.Upsert(ctx, &models.UserPreferences{UserID: owner, Gender: "female"}))
		require.NoError(t, pr.Upsert(ctx, &models.UserPreferences{UserID: owner, Gender: "female", AgeGroup: "18-24"}))

		got, err := pr.Get(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, "18-24", got.AgeGroup)
	})

	t.Run("MediaLibrary", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `INSERT INTO images (id, title, url) VALUES
			('3f3b1d2c-5e6a-4b7c-8d9e-0a1b2c3d4e5f', 'Lake', 'https://cdn.example.com/lake.jpg'),
			('4f3b1d2c-5e6a-4b7c-8d9e-0a1b2c3d4e5f', 'Forest', 'https://cdn.example.com/forest.jpg')`)
		require.NoError(t, err)

		images := NewImageRepository(db)
		picked, err := images.Random(ctx, 5)
		require.NoError(t, err)
		assert.Len(t, picked, 2)

		img, err := images.GetByID(ctx, "4f3b1d2c-5e6a-4b7c-8d9e-0a1b2c3d4e5f")
		require.NoError(t, err)
		assert.Equal(t, "Forest", img.Title)

		_, err = db.ExecContext(ctx, `INSERT INTO emoji_catalogue (categories) VALUES ($1)`,
			`[{"category":"Smileys & Emotion","subcategories":[{"subcategory":"face-smiling","emojis":[{"emoji":"😀","name":"grinning face"}]}]},
			  {"category":"Animals & Nature","subcategories":[{"subcategory":"animal-mammal","emojis":[{"emoji":"🐶","name":"dog face"}]}]}]`)
		require.NoError(t, err)

		emojis := NewEmojiRepository(db)
		match, err := emojis.Find(ctx, "🐶")
		require.NoError(t, err)
		assert.Equal(t, "Animals & Nature", match.Category)
		assert.Equal(t, "animal-mammal", match.Subcategory)
		assert.JSONEq(t, `{"emoji":"🐶","name":"dog face"}`, string(match.EmojiData))

		_, err = emojis.Find(ctx, "🦄")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
