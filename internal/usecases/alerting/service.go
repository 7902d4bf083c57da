package alerting

import (
	"context"
	"time"

	"github.com/centralia/sales-api/infrastructure/repository"
	"github.com/centralia/sales-api/internal/domain"
	"github.com/centralia/sales-api/pkg/log"
	"github.com/centralia/sales-api/pkg/metrics"
)

type Service struct {
	meetingRepo repository.MeetingRepository
	sessionRepo repository.CoachingSessionRepository
	leads       LeadSource
	snapshots   SnapshotSource
	rules       []Rule
	now         func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithRules(rules []Rule) Option {
	return func(s *Service) {
		s.rules = rules
	}
}

func NewService(
	meetingRepo repository.MeetingRepository,
	sessionRepo repository.CoachingSessionRepository,
	leads LeadSource,
	snapshots SnapshotSource,
	opts ...Option,
) *Service {
	s := &Service{
		meetingRepo: meetingRepo,
		sessionRepo: sessionRepo,
		leads:       leads,
		snapshots:   snapshots,
		rules:       DefaultRules(),
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Notifications avalia as regras para a conta. Falhas nas fontes de dados viram
// listas vazias e a regra correspondente simplesmente não dispara.
func (s *Service) Notifications(ctx context.Context, ownerID int) domain.NotificationResult {
	result := Evaluate(s.BuildContext(ctx, ownerID), s.rules)

	for _, n := range result.Notifications {
		metrics.NotificationsEmitted.WithLabelValues(n.ID, string(n.Priority)).Inc()
	}

	return result
}

// BuildContext reúne as entradas das regras para a conta
func (s *Service) BuildContext(ctx context.Context, ownerID int) Context {
	now := s.now()
	logger := log.ForContext(ctx).WithFields(log.Fields{"owner_id": ownerID})

	c := Context{
		Now:      now,
		Meetings: make([]*domain.Meeting, 0),
		Sessions: make([]*domain.CoachingSession, 0),
		Leads:    make([]*domain.Lead, 0),
	}

	meetings, err := s.meetingRepo.ListByYear(ctx, ownerID, now.Year())
	if err != nil {
		logger.WithField("error", err.Error()).Warn("alertas: erro ao buscar RMRs, seguindo sem reuniões")
	} else if meetings != nil {
		c.Meetings = meetings
	}

	sessions, err := s.sessionRepo.List(ctx, ownerID, repository.CoachingSessionFilter{
		Year:       now.Year(),
		WeekNumber: WeekNumber(now),
	})
	if err != nil {
		logger.WithField("error", err.Error()).Warn("alertas: erro ao buscar FIVIs, seguindo sem sessões")
	} else if sessions != nil {
		c.Sessions = sessions
	}

	if leads := s.leads.Leads(ctx, ownerID); leads != nil {
		c.Leads = leads
	}

	snapshot, err := s.snapshots.Snapshot(ctx, ownerID)
	if err != nil {
		logger.WithField("error", err.Error()).Warn("alertas: erro ao montar dashboard, seguindo sem snapshot")
	} else {
		c.Snapshot = snapshot
	}

	return c
}
