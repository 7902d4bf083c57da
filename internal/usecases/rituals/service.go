package rituals

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/centralia/sales-api/infrastructure/repository"
	"github.com/centralia/sales-api/internal/domain"
	"github.com/centralia/sales-api/internal/usecases/alerting"
	"github.com/centralia/sales-api/pkg/apiErrors"
	"github.com/centralia/sales-api/pkg/log"
	"github.com/centralia/sales-api/pkg/utils"
)

const minYear = 2000

type Service struct {
	meetingRepo repository.MeetingRepository
	sessionRepo repository.CoachingSessionRepository
	now         func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(meetingRepo repository.MeetingRepository, sessionRepo repository.CoachingSessionRepository, opts ...Option) *Service {
	s := &Service{
		meetingRepo: meetingRepo,
		sessionRepo: sessionRepo,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ListMeetings lista as RMRs do ano; ano zero usa o ano corrente
func (s *Service) ListMeetings(ctx context.Context, ownerID int, year int) ([]*domain.Meeting, error) {
	if year == 0 {
		year = s.now().Year()
	}
	if year < minYear {
		return nil, NewRitualError(ErrInvalidYear, apiErrors.ErrInvalidRequest, "")
	}

	meetings, err := s.meetingRepo.ListByYear(ctx, ownerID, year)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{"owner_id": ownerID, "error": err.Error()}).Error("rituais: erro ao listar RMRs")
		return nil, NewRitualError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar RMRs")
	}

	return meetings, nil
}

func (s *Service) CreateMeeting(ctx context.Context, ownerID int, req *domain.CreateMeetingRequest) (*domain.Meeting, error) {
	if req.Month < 1 || req.Month > 12 {
		return nil, NewRitualError(ErrInvalidMonth, apiErrors.ErrInvalidRequest, "O mês deve estar entre 1 e 12")
	}
	if req.Year < minYear {
		return nil, NewRitualError(ErrInvalidYear, apiErrors.ErrInvalidRequest, "")
	}

	status := domain.MeetingStatusScheduled
	if req.Status != nil {
		status = domain.MeetingStatus(*req.Status)
		if !status.IsValid() {
			return nil, NewRitualError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, *req.Status)
		}
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewRitualError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	meeting, err := s.meetingRepo.Create(ctx, &domain.Meeting{
		ID:                   id,
		OwnerID:              ownerID,
		Month:                req.Month,
		Year:                 req.Year,
		Status:               status,
		MonthlyGoal:          req.MonthlyGoal,
		PreviousMonthRevenue: req.PreviousMonthRevenue,
		MotivationalTheme:    req.MotivationalTheme,
		Strategies:           req.Strategies,
		Notes:                req.Notes,
		HighlightedMember:    req.HighlightedMember,
		CreatedAt:            s.now(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrMeetingAlreadyExists) {
			return nil, NewRitualError(ErrMeetingAlreadyExists, apiErrors.ErrMeetingAlreadyExists, "")
		}

		log.ForContext(ctx).WithFields(log.Fields{"owner_id": ownerID, "error": err.Error()}).Error("rituais: erro ao criar RMR")
		return nil, NewRitualError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar RMR")
	}

	return meeting, nil
}

func (s *Service) UpdateMeetingStatus(ctx context.Context, ownerID int, id string, status string) error {
	meetingStatus := domain.MeetingStatus(status)
	if !meetingStatus.IsValid() {
		return NewRitualError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, status)
	}

	if err := s.meetingRepo.UpdateStatus(ctx, ownerID, id, meetingStatus); err != nil {
		if errors.Is(err, repository.ErrMeetingNotFound) {
			return NewRitualError(ErrMeetingNotFound, apiErrors.ErrMeetingNotFound, "")
		}
		return NewRitualError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar RMR")
	}

	return nil
}

// ListCoachingSessions lista as FIVIs. Sem ano e sem semana usa a semana corrente.
func (s *Service) ListCoachingSessions(ctx context.Context, ownerID int, filter repository.CoachingSessionFilter) ([]*domain.CoachingSession, error) {
	if filter.Year == 0 && filter.WeekNumber == 0 {
		now := s.now()
		filter.Year = now.Year()
		filter.WeekNumber = alerting.WeekNumber(now)
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, NewRitualError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, string(filter.Status))
	}

	sessions, err := s.sessionRepo.List(ctx, ownerID, filter)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{"owner_id": ownerID, "error": err.Error()}).Error("rituais: erro ao listar FIVIs")
		return nil, NewRitualError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar FIVIs")
	}

	return sessions, nil
}

func (s *Service) CreateCoachingSession(ctx context.Context, ownerID int, req *domain.CreateCoachingSessionRequest) (*domain.CoachingSession, error) {
	if req.SalespersonID == "" {
		return nil, NewRitualError(ErrSalespersonRequired, apiErrors.ErrMissingRequiredData, "")
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil || date.IsZero() {
		return nil, NewRitualError(ErrInvalidDate, apiErrors.ErrInvalidFormat, "Use o formato yyyy-mm-dd")
	}

	status := domain.CoachingSessionStatusScheduled
	if req.Status != nil {
		status = domain.CoachingSessionStatus(*req.Status)
		if !status.IsValid() {
			return nil, NewRitualError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, *req.Status)
		}
	}

	weekNumber := alerting.WeekNumber(*date)
	if req.WeekNumber != nil {
		weekNumber = *req.WeekNumber
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewRitualError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	session, err := s.sessionRepo.Create(ctx, &domain.CoachingSession{
		ID:                 id,
		OwnerID:            ownerID,
		SalespersonID:      req.SalespersonID,
		SalespersonName:    req.SalespersonName,
		Date:               *date,
		WeekNumber:         weekNumber,
		WeeklyCommitment:   req.WeeklyCommitment,
		WeeklyGoal:         req.WeeklyGoal,
		WeeklyRealized:     req.WeeklyRealized,
		PreviousCommitment: req.PreviousCommitment,
		PreviousRealized:   req.PreviousRealized,
		Status:             status,
		Transcription:      req.Transcription,
		Summary:            req.Summary,
		Sentiment:          req.Sentiment,
		Commitments:        req.Commitments,
		Concerns:           req.Concerns,
		ConfidenceScore:    req.ConfidenceScore,
		KeyPoints:          req.KeyPoints,
		CreatedAt:          s.now(),
	})
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{"owner_id": ownerID, "error": err.Error()}).Error("rituais: erro ao criar FIVI")
		return nil, NewRitualError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar FIVI")
	}

	return session, nil
}

func (s *Service) UpdateCoachingSessionStatus(ctx context.Context, ownerID int, id string, status string) error {
	sessionStatus := domain.CoachingSessionStatus(status)
	if !sessionStatus.IsValid() {
		return NewRitualError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, status)
	}

	if err := s.sessionRepo.UpdateStatus(ctx, ownerID, id, sessionStatus); err != nil {
		if errors.Is(err, repository.ErrCoachingSessionNotFound) {
			return NewRitualError(ErrSessionNotFound, apiErrors.ErrCoachingNotFound, "")
		}
		return NewRitualError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar FIVI")
	}

	return nil
}

// CommitmentStats consolida, por vendedor, as FIVIs concluídas do ano
func (s *Service) CommitmentStats(ctx context.Context, ownerID int, year int) ([]domain.CommitmentStats, error) {
	if year == 0 {
		year = s.now().Year()
	}

	sessions, err := s.sessionRepo.List(ctx, ownerID, repository.CoachingSessionFilter{
		Year:   year,
		Status: domain.CoachingSessionStatusCompleted,
	})
	if err != nil {
		return nil, NewRitualError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar FIVIs")
	}

	return ComputeCommitmentStats(sessions), nil
}

// ComputeCommitmentStats agrupa as sessões concluídas por vendedor. Sessões em
// outros status são ignoradas.
func ComputeCommitmentStats(sessions []*domain.CoachingSession) []domain.CommitmentStats {
	bySalesperson := make(map[string]*domain.CommitmentStats)
	for _, session := range sessions {
		if !session.IsCompleted() {
			continue
		}

		stats, ok := bySalesperson[session.SalespersonID]
		if !ok {
			stats = &domain.CommitmentStats{
				SalespersonID:   session.SalespersonID,
				SalespersonName: session.SalespersonName,
			}
			bySalesperson[session.SalespersonID] = stats
		}

		stats.Sessions++
		stats.TotalCommitment += session.WeeklyCommitment
		stats.TotalRealized += session.WeeklyRealized
	}

	result := make([]domain.CommitmentStats, 0, len(bySalesperson))
	for _, stats := range bySalesperson {
		if stats.TotalCommitment > 0 {
			stats.Fulfillment = utils.RoundWithTwoDecimalPlace(stats.TotalRealized / stats.TotalCommitment * 100)
		}
		result = append(result, *stats)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].SalespersonName == result[j].SalespersonName {
			return result[i].SalespersonID < result[j].SalespersonID
		}
		return result[i].SalespersonName < result[j].SalespersonName
	})

	return result
}
