package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"clubmanager/gen/model"
	"clubmanager/gen/table"
	"clubmanager/internal/domain"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
)

func (s *Storage) ListTrainings(ctx context.Context) ([]domain.Training, error) {
	var dbTrainings []model.Trainings
	err := table.Trainings.
		SELECT(table.Trainings.AllColumns).
		FROM(table.Trainings).
		ORDER_BY(table.Trainings.Date.DESC()).
		QueryContext(ctx, s.db, &dbTrainings)
	if err != nil {
		return nil, err
	}
	trainings := make([]domain.Training, 0, len(dbTrainings))
	for _, t := range dbTrainings {
		trainings = append(trainings, convertTrainingToDomain(t))
	}
	return trainings, nil
}

func (s *Storage) GetTraining(ctx context.Context, id int64) (domain.Training, error) {
	var dbTraining model.Trainings
	err := table.Trainings.
		SELECT(table.Trainings.AllColumns).
		FROM(table.Trainings).
		WHERE(table.Trainings.ID.EQ(sqlite.Int(id))).
		QueryContext(ctx, s.db, &dbTraining)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Training{}, sql.ErrNoRows
		}
		return domain.Training{}, err
	}
	return convertTrainingToDomain(dbTraining), nil
}

func (s *Storage) CreateTraining(ctx context.Context, training domain.Training) (domain.Training, error) {
	var inserted model.Trainings
	err := table.Trainings.
		INSERT(table.Trainings.MutableColumns).
		MODEL(convertTrainingFromDomain(training)).
		RETURNING(table.Trainings.AllColumns).
		QueryContext(ctx, s.db, &inserted)
	if err != nil {
		return domain.Training{}, err
	}
	return convertTrainingToDomain(inserted), nil
}

func (s *Storage) UpdateTraining(ctx context.Context, training domain.Training) error {
	_, err := table.Trainings.
		UPDATE(
			table.Trainings.Date,
			table.Trainings.Location,
			table.Trainings.Description,
		).
		MODEL(convertTrainingFromDomain(training)).
		WHERE(table.Trainings.ID.EQ(sqlite.Int(training.ID))).
		ExecContext(ctx, s.db)
	return err
}

// DeleteTraining removes the training and its attendance rows in one
// transaction.
func (s *Storage) DeleteTraining(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollback(tx, s.log)

	_, err = table.Attendance.
		DELETE().
		WHERE(table.Attendance.TrainingID.EQ(sqlite.Int(id))).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	_, err = table.Trainings.
		DELETE().
		WHERE(table.Trainings.ID.EQ(sqlite.Int(id))).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	return tx.Commit()
}
