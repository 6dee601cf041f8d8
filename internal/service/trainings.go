package service

import (
	"context"

	"clubmanager/internal/domain"
	"clubmanager/internal/notify"
	"clubmanager/internal/storage"

	"github.com/sirupsen/logrus"
)

type TrainingService struct {
	trainings storage.TrainingStorage
	notifier  notify.Notifier
	log       *logrus.Entry
}

func NewTrainingService(trainings storage.TrainingStorage, notifier notify.Notifier, l *logrus.Logger) *TrainingService {
	return &TrainingService{
		trainings: trainings,
		notifier:  notifier,
		log:       l.WithField("from", "training-service"),
	}
}

func (s *TrainingService) List(ctx context.Context) ([]domain.Training, error) {
	return s.trainings.ListTrainings(ctx)
}

func (s *TrainingService) Get(ctx context.Context, id int64) (domain.Training, error) {
	return s.trainings.GetTraining(ctx, id)
}

func (s *TrainingService) Create(ctx context.Context, date, location, description string) (domain.Training, error) {
	if err := invalid(validateDate(date), validateLocation(location)); err != nil {
		return domain.Training{}, err
	}
	training, err := s.trainings.CreateTraining(ctx, domain.Training{
		Date:        date,
		Location:    location,
		Description: description,
		TeamID:      defaultTeamID,
	})
	if err != nil {
		return domain.Training{}, err
	}
	s.log.WithField("training_id", training.ID).Info("training created")
	s.notifier.EventCreated(domain.EventTraining, training.Date+", "+training.Location)
	return training, nil
}

func (s *TrainingService) Update(ctx context.Context, id int64, date, location, description string) error {
	if err := invalid(validateDate(date), validateLocation(location)); err != nil {
		return err
	}
	return s.trainings.UpdateTraining(ctx, domain.Training{
		ID:          id,
		Date:        date,
		Location:    location,
		Description: description,
	})
}

func (s *TrainingService) Delete(ctx context.Context, id int64) error {
	if err := s.trainings.DeleteTraining(ctx, id); err != nil {
		return err
	}
	s.log.WithField("training_id", id).Info("training deleted")
	return nil
}
