package sqlite

import (
	"database/sql"

	authstorage "clubmanager/auth/storage"
	"clubmanager/internal/storage"

	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.UserStorage = (*Storage)(nil)
var _ storage.MatchStorage = (*Storage)(nil)
var _ storage.TrainingStorage = (*Storage)(nil)
var _ storage.AttendanceStorage = (*Storage)(nil)
var _ storage.EvaluationStorage = (*Storage)(nil)
var _ storage.ItemStorage = (*Storage)(nil)
var _ storage.StatsStorage = (*Storage)(nil)
var _ authstorage.AuthStorage = (*Storage)(nil)

func New(db *sql.DB, l *logrus.Logger) *Storage {
	return &Storage{
		db:  db,
		log: l.WithField("from", "storage"),
	}
}

// Open connects to the sqlite file the way the rest of the app expects it:
// shared cache and a single connection, since sqlite serializes writers
// anyway.
func Open(fileName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+fileName+"?cache=shared")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

func rollback(tx *sql.Tx, log *logrus.Entry) {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		log.WithError(err).Warn("rollback failed")
	}
}
