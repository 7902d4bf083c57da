package rituals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/centralia/sales-api/infrastructure/repository"
	"github.com/centralia/sales-api/infrastructure/repository/mocks"
	"github.com/centralia/sales-api/internal/domain"
	"github.com/centralia/sales-api/internal/usecases/alerting"
	"github.com/centralia/sales-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func newTestService(t *testing.T, now time.Time) (*Service, *mocks.MockMeetingRepository, *mocks.MockCoachingSessionRepository) {
	ctrl := gomock.NewController(t)
	meetingRepo := mocks.NewMockMeetingRepository(ctrl)
	sessionRepo := mocks.NewMockCoachingSessionRepository(ctrl)

	return NewService(meetingRepo, sessionRepo, WithClock(func() time.Time { return now })), meetingRepo, sessionRepo
}

func assertRitualError(t *testing.T, err error, base error, code string) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, base)

	var ritualErr *RitualError
	require.True(t, errors.As(err, &ritualErr))
	assert.Equal(t, code, ritualErr.Code)
}

func TestService_CreateMeeting(t *testing.T) {
	now := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		req      *domain.CreateMeetingRequest
		setup    func(repo *mocks.MockMeetingRepository)
		validate func(t *testing.T, meeting *domain.Meeting, err error)
	}{
		{
			name: "Cria RMR agendada por padrão",
			req:  &domain.CreateMeetingRequest{Month: 5, Year: 2024, MonthlyGoal: 120000},
			setup: func(repo *mocks.MockMeetingRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m *domain.Meeting) (*domain.Meeting, error) {
						assert.NotEmpty(t, m.ID)
						assert.Equal(t, 9, m.OwnerID)
						assert.Equal(t, domain.MeetingStatusScheduled, m.Status)
						assert.Equal(t, now, m.CreatedAt)
						return m, nil
					})
			},
			validate: func(t *testing.T, meeting *domain.Meeting, err error) {
				require.NoError(t, err)
				assert.Equal(t, 120000.0, meeting.MonthlyGoal)
			},
		},
		{
			name: "Mês inválido",
			req:  &domain.CreateMeetingRequest{Month: 13, Year: 2024},
			validate: func(t *testing.T, meeting *domain.Meeting, err error) {
				assert.Nil(t, meeting)
				assertRitualError(t, err, ErrInvalidMonth, apiErrors.ErrInvalidRequest)
			},
		},
		{
			name: "Status inválido",
			req:  &domain.CreateMeetingRequest{Month: 5, Year: 2024, Status: stringPtr("cancelada")},
			validate: func(t *testing.T, meeting *domain.Meeting, err error) {
				assertRitualError(t, err, ErrInvalidStatus, apiErrors.ErrInvalidRequest)
			},
		},
		{
			name: "RMR duplicada no mês",
			req:  &domain.CreateMeetingRequest{Month: 5, Year: 2024},
			setup: func(repo *mocks.MockMeetingRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, repository.ErrMeetingAlreadyExists)
			},
			validate: func(t *testing.T, meeting *domain.Meeting, err error) {
				assertRitualError(t, err, ErrMeetingAlreadyExists, apiErrors.ErrMeetingAlreadyExists)
			},
		},
		{
			name: "Erro de banco",
			req:  &domain.CreateMeetingRequest{Month: 5, Year: 2024},
			setup: func(repo *mocks.MockMeetingRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, meeting *domain.Meeting, err error) {
				assertRitualError(t, err, ErrDatabaseOperation, apiErrors.ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, meetingRepo, _ := newTestService(t, now)
			if tt.setup != nil {
				tt.setup(meetingRepo)
			}

			meeting, err := service.CreateMeeting(context.Background(), 9, tt.req)
			tt.validate(t, meeting, err)
		})
	}
}

func TestService_UpdateMeetingStatus(t *testing.T) {
	now := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)

	t.Run("Conclui RMR", func(t *testing.T) {
		service, meetingRepo, _ := newTestService(t, now)
		meetingRepo.EXPECT().UpdateStatus(gomock.Any(), 9, "M1", domain.MeetingStatusCompleted).Return(nil)

		assert.NoError(t, service.UpdateMeetingStatus(context.Background(), 9, "M1", "completed"))
	})

	t.Run("RMR inexistente", func(t *testing.T) {
		service, meetingRepo, _ := newTestService(t, now)
		meetingRepo.EXPECT().UpdateStatus(gomock.Any(), 9, "M1", domain.MeetingStatusCompleted).Return(repository.ErrMeetingNotFound)

		err := service.UpdateMeetingStatus(context.Background(), 9, "M1", "completed")
		assertRitualError(t, err, ErrMeetingNotFound, apiErrors.ErrMeetingNotFound)
	})

	t.Run("Status desconhecido", func(t *testing.T) {
		service, _, _ := newTestService(t, now)

		err := service.UpdateMeetingStatus(context.Background(), 9, "M1", "done")
		assertRitualError(t, err, ErrInvalidStatus, apiErrors.ErrInvalidRequest)
	})
}

func TestService_ListCoachingSessions_SemanaCorrente(t *testing.T) {
	now := time.Date(2024, 5, 16, 10, 0, 0, 0, time.UTC)
	service, _, sessionRepo := newTestService(t, now)

	sessionRepo.EXPECT().List(gomock.Any(), 9, repository.CoachingSessionFilter{
		Year:       2024,
		WeekNumber: alerting.WeekNumber(now),
	}).Return([]*domain.CoachingSession{{ID: "S1"}}, nil)

	sessions, err := service.ListCoachingSessions(context.Background(), 9, repository.CoachingSessionFilter{})

	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestService_CreateCoachingSession(t *testing.T) {
	now := time.Date(2024, 5, 16, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		req      *domain.CreateCoachingSessionRequest
		setup    func(repo *mocks.MockCoachingSessionRepository)
		validate func(t *testing.T, session *domain.CoachingSession, err error)
	}{
		{
			name: "Calcula a semana pela data",
			req:  &domain.CreateCoachingSessionRequest{SalespersonID: "1", SalespersonName: "Ana", Date: "2024-01-07"},
			setup: func(repo *mocks.MockCoachingSessionRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, s *domain.CoachingSession) (*domain.CoachingSession, error) {
						return s, nil
					})
			},
			validate: func(t *testing.T, session *domain.CoachingSession, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, session.WeekNumber)
				assert.Equal(t, domain.CoachingSessionStatusScheduled, session.Status)
				assert.Equal(t, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), session.Date)
			},
		},
		{
			name: "Semana informada prevalece",
			req: &domain.CreateCoachingSessionRequest{
				SalespersonID: "1",
				Date:          "2024-01-07",
				WeekNumber:    func() *int { w := 9; return &w }(),
				Status:        stringPtr("completed"),
			},
			setup: func(repo *mocks.MockCoachingSessionRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, s *domain.CoachingSession) (*domain.CoachingSession, error) {
						return s, nil
					})
			},
			validate: func(t *testing.T, session *domain.CoachingSession, err error) {
				require.NoError(t, err)
				assert.Equal(t, 9, session.WeekNumber)
				assert.True(t, session.IsCompleted())
			},
		},
		{
			name: "Sem vendedor",
			req:  &domain.CreateCoachingSessionRequest{Date: "2024-01-07"},
			validate: func(t *testing.T, session *domain.CoachingSession, err error) {
				assertRitualError(t, err, ErrSalespersonRequired, apiErrors.ErrMissingRequiredData)
			},
		},
		{
			name: "Data fora do formato",
			req:  &domain.CreateCoachingSessionRequest{SalespersonID: "1", Date: "07/01/2024"},
			validate: func(t *testing.T, session *domain.CoachingSession, err error) {
				assertRitualError(t, err, ErrInvalidDate, apiErrors.ErrInvalidFormat)
			},
		},
		{
			name: "Data vazia",
			req:  &domain.CreateCoachingSessionRequest{SalespersonID: "1"},
			validate: func(t *testing.T, session *domain.CoachingSession, err error) {
				assertRitualError(t, err, ErrInvalidDate, apiErrors.ErrInvalidFormat)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, sessionRepo := newTestService(t, now)
			if tt.setup != nil {
				tt.setup(sessionRepo)
			}

			session, err := service.CreateCoachingSession(context.Background(), 9, tt.req)
			tt.validate(t, session, err)
		})
	}
}

func TestService_UpdateCoachingSessionStatus(t *testing.T) {
	now := time.Date(2024, 5, 16, 10, 0, 0, 0, time.UTC)
	service, _, sessionRepo := newTestService(t, now)

	sessionRepo.EXPECT().UpdateStatus(gomock.Any(), 9, "S1", domain.CoachingSessionStatusCancelled).Return(repository.ErrCoachingSessionNotFound)

	err := service.UpdateCoachingSessionStatus(context.Background(), 9, "S1", "cancelled")
	assertRitualError(t, err, ErrSessionNotFound, apiErrors.ErrCoachingNotFound)
}

func TestComputeCommitmentStats(t *testing.T) {
	sessions := []*domain.CoachingSession{
		{SalespersonID: "2", SalespersonName: "Bruno", WeeklyCommitment: 10000, WeeklyRealized: 8000, Status: domain.CoachingSessionStatusCompleted},
		{SalespersonID: "1", SalespersonName: "Ana", WeeklyCommitment: 5000, WeeklyRealized: 6000, Status: domain.CoachingSessionStatusCompleted},
		{SalespersonID: "2", SalespersonName: "Bruno", WeeklyCommitment: 10000, WeeklyRealized: 4000, Status: domain.CoachingSessionStatusCompleted},
		{SalespersonID: "2", SalespersonName: "Bruno", WeeklyCommitment: 99999, WeeklyRealized: 0, Status: domain.CoachingSessionStatusScheduled},
		{SalespersonID: "3", SalespersonName: "Carla", WeeklyCommitment: 0, WeeklyRealized: 100, Status: domain.CoachingSessionStatusCompleted},
	}

	stats := ComputeCommitmentStats(sessions)

	require.Len(t, stats, 3)
	assert.Equal(t, domain.CommitmentStats{
		SalespersonID: "1", SalespersonName: "Ana", Sessions: 1,
		TotalCommitment: 5000, TotalRealized: 6000, Fulfillment: 120,
	}, stats[0])
	assert.Equal(t, domain.CommitmentStats{
		SalespersonID: "2", SalespersonName: "Bruno", Sessions: 2,
		TotalCommitment: 20000, TotalRealized: 12000, Fulfillment: 60,
	}, stats[1])
	assert.Equal(t, 0.0, stats[2].Fulfillment)
}

func TestService_CommitmentStats(t *testing.T) {
	now := time.Date(2024, 5, 16, 10, 0, 0, 0, time.UTC)
	service, _, sessionRepo := newTestService(t, now)

	sessionRepo.EXPECT().List(gomock.Any(), 9, repository.CoachingSessionFilter{
		Year:   2024,
		Status: domain.CoachingSessionStatusCompleted,
	}).Return([]*domain.CoachingSession{
		{SalespersonID: "1", SalespersonName: "Ana", WeeklyCommitment: 100, WeeklyRealized: 50, Status: domain.CoachingSessionStatusCompleted},
	}, nil)

	stats, err := service.CommitmentStats(context.Background(), 9, 0)

	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 50.0, stats[0].Fulfillment)
}
