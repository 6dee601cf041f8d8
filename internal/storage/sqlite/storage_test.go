package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"clubmanager/auth/users"
	"clubmanager/internal/domain"
	"clubmanager/internal/migrate"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	require.NoError(t, migrate.Up(db))
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return New(db, l)
}

func createPlayer(t *testing.T, s *Storage, username string) users.User {
	t.Helper()
	player, err := s.CreateUser(context.Background(), users.User{
		Username: username,
		Role:     users.RolePlayer,
		TeamID:   1,
	}, "hash")
	require.NoError(t, err)
	return player
}

func createMatch(t *testing.T, s *Storage) domain.Match {
	t.Helper()
	match, err := s.CreateMatch(context.Background(), domain.Match{
		Date:     "2026-04-12T17:00",
		Opponent: "TJ Sokol",
		Location: "Mestský štadión",
		TeamID:   1,
	})
	require.NoError(t, err)
	return match
}

func createTraining(t *testing.T, s *Storage) domain.Training {
	t.Helper()
	training, err := s.CreateTraining(context.Background(), domain.Training{
		Date:     "2026-04-14T18:30",
		Location: "Telocvičňa",
		TeamID:   1,
	})
	require.NoError(t, err)
	return training
}

func TestUsersCRUD(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, users.User{
		Username:  "novak",
		Role:      users.RolePlayer,
		FirstName: "Ján",
		LastName:  "Novák",
		Position:  "útočník",
		TeamID:    1,
	}, "hash")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := s.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "novak", got.Username)
	assert.Equal(t, users.RolePlayer, got.Role)
	assert.Equal(t, "Ján Novák", got.FullName())

	got.Position = "obranca"
	require.NoError(t, s.UpdateProfile(ctx, got))
	got, err = s.GetPlayer(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "obranca", got.Position)

	_, err = s.GetUser(ctx, 9999)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestGetPlayerIgnoresOtherRoles(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	coach, err := s.CreateUser(ctx, users.User{Username: "coach", Role: users.RoleCoach}, "hash")
	require.NoError(t, err)

	_, err = s.GetPlayer(ctx, coach.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	players, err := s.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestGetCredentials(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, users.User{Username: "admin", Role: users.RoleAdmin}, "secret-hash")
	require.NoError(t, err)

	user, hash, err := s.GetCredentials(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "secret-hash", hash)

	_, _, err = s.GetCredentials(ctx, "nobody")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUpdateScoreAndClear(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	match := createMatch(t, s)

	home, away := int32(3), int32(1)
	require.NoError(t, s.UpdateScore(ctx, match.ID, &home, &away))

	got, err := s.GetMatch(ctx, match.ID)
	require.NoError(t, err)
	require.NotNil(t, got.HomeScore)
	require.NotNil(t, got.AwayScore)
	assert.EqualValues(t, 3, *got.HomeScore)
	assert.EqualValues(t, 1, *got.AwayScore)

	require.NoError(t, s.UpdateScore(ctx, match.ID, nil, nil))
	got, err = s.GetMatch(ctx, match.ID)
	require.NoError(t, err)
	assert.Nil(t, got.HomeScore)
	assert.Nil(t, got.AwayScore)
}

func TestListMatchesNewestFirst(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.CreateMatch(ctx, domain.Match{Date: "2026-03-01T15:00", Opponent: "A", Location: "x", TeamID: 1})
	require.NoError(t, err)
	_, err = s.CreateMatch(ctx, domain.Match{Date: "2026-05-01T15:00", Opponent: "B", Location: "x", TeamID: 1})
	require.NoError(t, err)

	matches, err := s.ListMatches(ctx)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "B", matches[0].Opponent)
	assert.Equal(t, "A", matches[1].Opponent)
}

func TestAttendanceFlagsAreIndependent(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	player := createPlayer(t, s, "p1")
	match := createMatch(t, s)

	require.NoError(t, s.SetConfirmation(ctx, player.ID, match.Ref(), true))
	att, err := s.GetAttendance(ctx, player.ID, match.Ref())
	require.NoError(t, err)
	assert.True(t, att.Confirmed)
	assert.False(t, att.Present)

	require.NoError(t, s.SetPresence(ctx, player.ID, match.Ref(), true))
	require.NoError(t, s.SetConfirmation(ctx, player.ID, match.Ref(), false))

	att, err = s.GetAttendance(ctx, player.ID, match.Ref())
	require.NoError(t, err)
	assert.False(t, att.Confirmed)
	assert.True(t, att.Present)
}

func TestSetPresenceWithoutConfirmation(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	player := createPlayer(t, s, "p1")
	training := createTraining(t, s)

	require.NoError(t, s.SetPresence(ctx, player.ID, training.Ref(), true))

	att, err := s.GetAttendance(ctx, player.ID, training.Ref())
	require.NoError(t, err)
	assert.False(t, att.Confirmed)
	assert.True(t, att.Present)
}

func TestToggleConfirmation(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	player := createPlayer(t, s, "p1")
	match := createMatch(t, s)

	// No record yet, toggle creates one and confirms.
	confirmed, err := s.ToggleConfirmation(ctx, player.ID, match.Ref())
	require.NoError(t, err)
	assert.True(t, confirmed)

	confirmed, err = s.ToggleConfirmation(ctx, player.ID, match.Ref())
	require.NoError(t, err)
	assert.False(t, confirmed)

	confirmed, err = s.ToggleConfirmation(ctx, player.ID, match.Ref())
	require.NoError(t, err)
	assert.True(t, confirmed)
}

func TestTogglePreservesPresence(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	player := createPlayer(t, s, "p1")
	match := createMatch(t, s)

	require.NoError(t, s.SetPresence(ctx, player.ID, match.Ref(), true))
	_, err := s.ToggleConfirmation(ctx, player.ID, match.Ref())
	require.NoError(t, err)

	att, err := s.GetAttendance(ctx, player.ID, match.Ref())
	require.NoError(t, err)
	assert.True(t, att.Present)
	assert.True(t, att.Confirmed)
}

func TestMatchAndTrainingAttendanceDoNotMix(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	player := createPlayer(t, s, "p1")
	match := createMatch(t, s)
	training := createTraining(t, s)

	require.NoError(t, s.SetConfirmation(ctx, player.ID, match.Ref(), true))

	_, err := s.GetAttendance(ctx, player.ID, training.Ref())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListAttendeesIncludesEveryPlayer(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	first, err := s.CreateUser(ctx, users.User{Username: "a", Role: users.RolePlayer, LastName: "Adam"}, "hash")
	require.NoError(t, err)
	_, err = s.CreateUser(ctx, users.User{Username: "b", Role: users.RolePlayer, LastName: "Beno"}, "hash")
	require.NoError(t, err)
	_, err = s.CreateUser(ctx, users.User{Username: "c", Role: users.RoleCoach, LastName: "Cibula"}, "hash")
	require.NoError(t, err)

	match := createMatch(t, s)
	require.NoError(t, s.SetConfirmation(ctx, first.ID, match.Ref(), true))

	attendees, err := s.ListAttendees(ctx, match.Ref())
	require.NoError(t, err)
	require.Len(t, attendees, 2)
	assert.Equal(t, "Adam", attendees[0].Player.LastName)
	assert.True(t, attendees[0].Confirmed)
	assert.Equal(t, "Beno", attendees[1].Player.LastName)
	assert.False(t, attendees[1].Confirmed)
	assert.False(t, attendees[1].Present)
}

func TestEvaluationUpsert(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	player := createPlayer(t, s, "p1")
	coach, err := s.CreateUser(ctx, users.User{Username: "coach", Role: users.RoleCoach}, "hash")
	require.NoError(t, err)
	match := createMatch(t, s)

	require.NoError(t, s.UpsertEvaluation(ctx, domain.Evaluation{
		MatchID:  match.ID,
		PlayerID: player.ID,
		CoachID:  coach.ID,
		Rating:   6,
		Comment:  "solídny výkon",
	}))
	require.NoError(t, s.UpsertEvaluation(ctx, domain.Evaluation{
		MatchID:  match.ID,
		PlayerID: player.ID,
		CoachID:  coach.ID,
		Rating:   8.5,
		Comment:  "po prepočítaní lepšie",
	}))

	eval, err := s.GetEvaluation(ctx, match.ID, player.ID)
	require.NoError(t, err)
	assert.Equal(t, 8.5, eval.Rating)
	assert.Equal(t, "po prepočítaní lepšie", eval.Comment)

	list, err := s.ListMatchEvaluations(ctx, match.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEvaluationRatingCheckedInStorage(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	player := createPlayer(t, s, "p1")
	match := createMatch(t, s)

	err := s.UpsertEvaluation(ctx, domain.Evaluation{
		MatchID:  match.ID,
		PlayerID: player.ID,
		CoachID:  player.ID,
		Rating:   11,
	})
	assert.Error(t, err)
}

func TestDeleteMatchCascades(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	player := createPlayer(t, s, "p1")
	match := createMatch(t, s)

	require.NoError(t, s.SetConfirmation(ctx, player.ID, match.Ref(), true))
	require.NoError(t, s.UpsertEvaluation(ctx, domain.Evaluation{
		MatchID:  match.ID,
		PlayerID: player.ID,
		CoachID:  player.ID,
		Rating:   5,
	}))

	require.NoError(t, s.DeleteMatch(ctx, match.ID))

	_, err := s.GetMatch(ctx, match.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	_, err = s.GetAttendance(ctx, player.ID, match.Ref())
	assert.ErrorIs(t, err, sql.ErrNoRows)
	_, err = s.GetEvaluation(ctx, match.ID, player.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDeleteTrainingCascades(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	player := createPlayer(t, s, "p1")
	training := createTraining(t, s)

	require.NoError(t, s.SetConfirmation(ctx, player.ID, training.Ref(), true))
	require.NoError(t, s.DeleteTraining(ctx, training.ID))

	_, err := s.GetTraining(ctx, training.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	_, err = s.GetAttendance(ctx, player.ID, training.Ref())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDeleteUserCascades(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	player := createPlayer(t, s, "p1")
	match := createMatch(t, s)

	require.NoError(t, s.SetConfirmation(ctx, player.ID, match.Ref(), true))
	require.NoError(t, s.UpsertEvaluation(ctx, domain.Evaluation{
		MatchID:  match.ID,
		PlayerID: player.ID,
		CoachID:  player.ID,
		Rating:   5,
	}))

	require.NoError(t, s.DeleteUser(ctx, player.ID))

	_, err := s.GetUser(ctx, player.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	_, err = s.GetAttendance(ctx, player.ID, match.Ref())
	assert.ErrorIs(t, err, sql.ErrNoRows)
	_, err = s.GetEvaluation(ctx, match.ID, player.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStatsCounts(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	player := createPlayer(t, s, "p1")
	other := createPlayer(t, s, "p2")

	matchA := createMatch(t, s)
	matchB := createMatch(t, s)
	training := createTraining(t, s)

	require.NoError(t, s.SetConfirmation(ctx, player.ID, matchA.Ref(), true))
	require.NoError(t, s.SetConfirmation(ctx, player.ID, matchB.Ref(), false))
	require.NoError(t, s.SetConfirmation(ctx, player.ID, training.Ref(), true))
	require.NoError(t, s.SetConfirmation(ctx, other.ID, matchA.Ref(), true))

	confirmedMatches, err := s.CountConfirmed(ctx, player.ID, domain.EventMatch)
	require.NoError(t, err)
	assert.EqualValues(t, 1, confirmedMatches)

	confirmedTrainings, err := s.CountConfirmed(ctx, player.ID, domain.EventTraining)
	require.NoError(t, err)
	assert.EqualValues(t, 1, confirmedTrainings)

	totalMatches, err := s.CountEvents(ctx, domain.EventMatch)
	require.NoError(t, err)
	assert.EqualValues(t, 2, totalMatches)

	totalTrainings, err := s.CountEvents(ctx, domain.EventTraining)
	require.NoError(t, err)
	assert.EqualValues(t, 1, totalTrainings)
}

func TestItems(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	first, err := s.CreateItem(ctx, domain.Item{Name: "Dres", Description: "zápasový dres", Price: 25})
	require.NoError(t, err)
	require.NotZero(t, first.ID)
	second, err := s.CreateItem(ctx, domain.Item{Name: "Lopta", Price: 18.5})
	require.NoError(t, err)

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID, "newest item comes first")
	assert.Equal(t, first.ID, items[1].ID)
	assert.Equal(t, "zápasový dres", items[1].Description)

	total, err := s.TotalPrice(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 43.5, total, 0.001)
}

func TestTotalPriceEmpty(t *testing.T) {
	s := newTestStorage(t)

	total, err := s.TotalPrice(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCreateItemRejectsNonPositivePrice(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.CreateItem(context.Background(), domain.Item{Name: "Šatka", Price: 0})
	assert.Error(t, err)
}
