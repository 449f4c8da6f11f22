package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverviewService_Analytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := NewMockUserCounter(ctrl)
	logins := NewMockLoginCounter(ctrl)
	expressions := NewMockExpressionCounter(ctrl)
	assessments := NewMockAssessmentCounter(ctrl)
	svc := NewOverviewService(users, logins, expressions, assessments)

	users.EXPECT().Count(gomock.Any()).Return(int64(7), nil)
	users.EXPECT().Recent(gomock.Any(), RecentLimit).Return([]models.User{{ID: "u1"}}, nil)
	logins.EXPECT().Count(gomock.Any()).Return(int64(30), nil)
	expressions.EXPECT().Count(gomock.Any()).Return(int64(12), nil)
	expressions.EXPECT().Recent(gomock.Any(), RecentLimit).Return([]models.FaceExpression{{ID: "e1"}}, nil)
	assessments.EXPECT().CountByKind(gomock.Any(), models.AssessmentDepression).Return(int64(3), nil)
	assessments.EXPECT().CountByKind(gomock.Any(), models.AssessmentAnxiety).Return(int64(2), nil)
	assessments.EXPECT().CountByKind(gomock.Any(), models.AssessmentStress).Return(int64(1), nil)

	a, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), a.UserCount)
	assert.Equal(t, int64(30), a.LoginEntries)
	assert.Equal(t, int64(12), a.ExpressionEntries)
	assert.Equal(t, int64(3), a.DepressionResults)
	assert.Equal(t, int64(2), a.AnxietyResults)
	assert.Equal(t, int64(1), a.StressResults)
	assert.Len(t, a.RecentUsers, 1)
	assert.Len(t, a.RecentExpressions, 1)
}

func TestOverviewService_AnalyticsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := NewMockUserCounter(ctrl)
	logins := NewMockLoginCounter(ctrl)
	expressions := NewMockExpressionCounter(ctrl)
	assessments := NewMockAssessmentCounter(ctrl)
	svc := NewOverviewService(users, logins, expressions, assessments)

	users.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("db error")).AnyTimes()
	users.EXPECT().Recent(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	logins.EXPECT().Count(gomock.Any()).Return(int64(0), nil).AnyTimes()
	expressions.EXPECT().Count(gomock.Any()).Return(int64(0), nil).AnyTimes()
	expressions.EXPECT().Recent(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	assessments.EXPECT().CountByKind(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()

	_, err := svc.Analytics(context.Background())
	assert.EqualError(t, err, "db error")
}
