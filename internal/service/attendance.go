package service

import (
	"context"
	"database/sql"
	"errors"

	"clubmanager/internal/domain"
	"clubmanager/internal/storage"

	"github.com/sirupsen/logrus"
)

type AttendanceService struct {
	ledger storage.AttendanceStorage
	log    *logrus.Entry
}

func NewAttendanceService(ledger storage.AttendanceStorage, l *logrus.Logger) *AttendanceService {
	return &AttendanceService{
		ledger: ledger,
		log:    l.WithField("from", "attendance-service"),
	}
}

// Confirmation reports the player's stated intent; no ledger row reads as
// false, not as an error.
func (s *AttendanceService) Confirmation(ctx context.Context, userID int64, event domain.EventRef) (bool, error) {
	att, err := s.ledger.GetAttendance(ctx, userID, event)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return att.Confirmed, nil
}

func (s *AttendanceService) SetConfirmation(ctx context.Context, userID int64, event domain.EventRef, value bool) error {
	return s.ledger.SetConfirmation(ctx, userID, event, value)
}

// Toggle flips the player's confirmation and returns the new value.
func (s *AttendanceService) Toggle(ctx context.Context, userID int64, event domain.EventRef) (bool, error) {
	confirmed, err := s.ledger.ToggleConfirmation(ctx, userID, event)
	if err != nil {
		return false, err
	}
	s.log.WithFields(logrus.Fields{
		"user_id":   userID,
		"event":     event.Kind,
		"event_id":  event.ID,
		"confirmed": confirmed,
	}).Debug("confirmation toggled")
	return confirmed, nil
}

// SetPresence is the coach's record of who actually showed up. It never
// touches the confirmation flag.
func (s *AttendanceService) SetPresence(ctx context.Context, userID int64, event domain.EventRef, value bool) error {
	return s.ledger.SetPresence(ctx, userID, event, value)
}

func (s *AttendanceService) Attendees(ctx context.Context, event domain.EventRef) ([]domain.AttendeeStatus, error) {
	return s.ledger.ListAttendees(ctx, event)
}
