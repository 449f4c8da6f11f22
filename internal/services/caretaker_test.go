package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCaretakerService_Add(t *testing.T) {
	userID := uuid.NewString()
	ctrl := gomock.NewController(t)
	store := NewMockCaretakerStore(ctrl)
	svc := NewCaretakerService(store, NewMockUserReader(ctrl))

	_, err := svc.Add(context.Background(), userID, "Mom", "")
	assert.ErrorIs(t, err, ErrMissingFields)

	store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *models.Caretaker) error {
		assert.Equal(t, "Mom", c.CaretakerName)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(c.CodeHash), []byte("4321")))
		return nil
	})
	_, err = svc.Add(context.Background(), userID, " Mom ", "4321")
	require.NoError(t, err)

	store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repositories.ErrDuplicate)
	_, err = svc.Add(context.Background(), userID, "mom", "1111")
	assert.ErrorIs(t, err, ErrCaretakerExists)
}

func TestCaretakerService_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockCaretakerStore(ctrl)
	svc := NewCaretakerService(store, NewMockUserReader(ctrl))

	candidates := []models.Caretaker{
		{ID: "c1", UserID: "u1", CaretakerName: "Mom", CodeHash: mustHash(t, "1111")},
		{ID: "c2", UserID: "u2", CaretakerName: "mom", CodeHash: mustHash(t, "2222")},
	}
	store.EXPECT().FindByName(gomock.Any(), "mom").Return(candidates, nil).Times(2)

	c, err := svc.Verify(context.Background(), "mom", "2222")
	require.NoError(t, err)
	assert.Equal(t, "u2", c.UserID)

	_, err = svc.Verify(context.Background(), "mom", "9999")
	assert.ErrorIs(t, err, ErrCaretakerCredentials)
}

func TestCaretakerService_LinkedUser(t *testing.T) {
	caretakerID := uuid.NewString()
	userID := uuid.NewString()
	ctrl := gomock.NewController(t)
	store := NewMockCaretakerStore(ctrl)
	users := NewMockUserReader(ctrl)
	svc := NewCaretakerService(store, users)

	store.EXPECT().GetByID(gomock.Any(), caretakerID).Return(&models.Caretaker{ID: caretakerID, UserID: userID}, nil)
	users.EXPECT().GetByID(gomock.Any(), userID).Return(&models.User{ID: userID, Name: "Jane"}, nil)

	c, u, err := svc.LinkedUser(context.Background(), caretakerID)
	require.NoError(t, err)
	assert.Equal(t, caretakerID, c.ID)
	assert.Equal(t, "Jane", u.Name)

	store.EXPECT().GetByID(gomock.Any(), caretakerID).Return(nil, repositories.ErrNotFound)
	_, _, err = svc.LinkedUser(context.Background(), caretakerID)
	assert.ErrorIs(t, err, ErrCaretakerNotFound)
}
