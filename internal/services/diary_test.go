package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiaryService_Create(t *testing.T) {
	userID := uuid.NewString()

	tests := []struct {
		name    string
		userID  string
		note    string
		wantErr error
	}{
		{name: "blank note", userID: userID, note: "   ", wantErr: ErrMissingFields},
		{name: "missing user", note: "today was fine", wantErr: ErrMissingFields},
		{name: "malformed user", userID: "42", note: "today was fine", wantErr: ErrInvalidID},
		{name: "valid", userID: userID, note: "  today was fine \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := NewMockDiaryStore(ctrl)
			svc := NewDiaryService(store)

			if tt.wantErr == nil {
				store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			}

			entry, err := svc.Create(context.Background(), tt.userID, tt.note)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "today was fine", entry.Note)
			assert.Equal(t, userID, entry.UserID)
		})
	}
}

func TestDiaryService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockDiaryStore(ctrl)
	svc := NewDiaryService(store)
	userID := uuid.NewString()

	_, err := svc.List(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingID)

	store.EXPECT().ListByUser(gomock.Any(), userID).Return([]models.DiaryEntry{{Note: "b"}, {Note: "a"}}, nil)
	entries, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestDiaryService_Delete(t *testing.T) {
	id := uuid.NewString()
	storeErr := errors.New("connection reset")

	tests := []struct {
		name     string
		id       string
		storeErr error
		wantErr  error
	}{
		{name: "malformed id", id: "abc", wantErr: ErrInvalidID},
		{name: "not found", id: id, storeErr: repositories.ErrNotFound, wantErr: ErrDiaryNotFound},
		{name: "store failure", id: id, storeErr: storeErr, wantErr: storeErr},
		{name: "deleted", id: id},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := NewMockDiaryStore(ctrl)
			svc := NewDiaryService(store)

			if !errors.Is(tt.wantErr, ErrInvalidID) {
				store.EXPECT().Delete(gomock.Any(), tt.id).Return(tt.storeErr)
			}

			err := svc.Delete(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
