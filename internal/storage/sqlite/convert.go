package sqlite

import (
	"clubmanager/auth/users"
	"clubmanager/gen/model"
	"clubmanager/internal/domain"
)

func convertUserToDomain(u model.Users) (users.User, error) {
	role, err := users.ParseRole(u.Role)
	if err != nil {
		return users.User{}, err
	}
	return users.User{
		ID:        int64(u.ID),
		Username:  u.Username,
		Role:      role,
		FirstName: fromPtr(u.FirstName),
		LastName:  fromPtr(u.LastName),
		Position:  fromPtr(u.Position),
		BirthDate: fromPtr(u.BirthDate),
		TeamID:    fromPtrInt(u.TeamID),
	}, nil
}

func convertUsersToDomain(dbUsers []model.Users) ([]users.User, error) {
	converted := make([]users.User, 0, len(dbUsers))
	for _, u := range dbUsers {
		user, err := convertUserToDomain(u)
		if err != nil {
			return nil, err
		}
		converted = append(converted, user)
	}
	return converted, nil
}

func convertUserFromDomain(u users.User) model.Users {
	return model.Users{
		ID:        int32(u.ID),
		Username:  u.Username,
		Role:      u.Role.String(),
		FirstName: toPtr(u.FirstName),
		LastName:  toPtr(u.LastName),
		Position:  toPtr(u.Position),
		BirthDate: toPtr(u.BirthDate),
		TeamID:    toPtrInt(u.TeamID),
	}
}

func convertMatchToDomain(m model.Matches) domain.Match {
	return domain.Match{
		ID:        int64(m.ID),
		Date:      m.Date,
		Opponent:  m.Opponent,
		Location:  m.Location,
		HomeScore: m.HomeScore,
		AwayScore: m.AwayScore,
		TeamID:    int64(m.TeamID),
	}
}

func convertMatchFromDomain(m domain.Match) model.Matches {
	return model.Matches{
		ID:        int32(m.ID),
		Date:      m.Date,
		Opponent:  m.Opponent,
		Location:  m.Location,
		HomeScore: m.HomeScore,
		AwayScore: m.AwayScore,
		TeamID:    int32(m.TeamID),
	}
}

func convertTrainingToDomain(t model.Trainings) domain.Training {
	return domain.Training{
		ID:          int64(t.ID),
		Date:        t.Date,
		Location:    t.Location,
		Description: t.Description,
		TeamID:      int64(t.TeamID),
	}
}

func convertTrainingFromDomain(t domain.Training) model.Trainings {
	return model.Trainings{
		ID:          int32(t.ID),
		Date:        t.Date,
		Location:    t.Location,
		Description: t.Description,
		TeamID:      int32(t.TeamID),
	}
}

func convertEvaluationToDomain(e model.Evaluations) domain.Evaluation {
	return domain.Evaluation{
		MatchID:  int64(e.MatchID),
		PlayerID: int64(e.PlayerID),
		CoachID:  int64(e.CoachID),
		Rating:   e.Rating,
		Comment:  e.Comment,
	}
}

func convertEvaluationFromDomain(e domain.Evaluation) model.Evaluations {
	return model.Evaluations{
		MatchID:  int32(e.MatchID),
		PlayerID: int32(e.PlayerID),
		CoachID:  int32(e.CoachID),
		Rating:   e.Rating,
		Comment:  e.Comment,
	}
}

func convertItemToDomain(i model.Items) domain.Item {
	return domain.Item{
		ID:          int64(i.ID),
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
	}
}

func convertItemFromDomain(i domain.Item) model.Items {
	return model.Items{
		ID:          int32(i.ID),
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
	}
}

func convertAttendanceToDomain(a model.Attendance) domain.Attendance {
	att := domain.Attendance{
		UserID:    int64(a.UserID),
		Confirmed: a.Confirmed,
		Present:   a.Present,
	}
	switch {
	case a.MatchID != nil:
		att.Event = domain.EventRef{Kind: domain.EventMatch, ID: int64(*a.MatchID)}
	case a.TrainingID != nil:
		att.Event = domain.EventRef{Kind: domain.EventTraining, ID: int64(*a.TrainingID)}
	}
	return att
}

func convertAttendanceFromDomain(a domain.Attendance) model.Attendance {
	dbAtt := model.Attendance{
		UserID:    int32(a.UserID),
		Confirmed: a.Confirmed,
		Present:   a.Present,
	}
	id := int32(a.Event.ID)
	switch a.Event.Kind {
	case domain.EventMatch:
		dbAtt.MatchID = &id
	case domain.EventTraining:
		dbAtt.TrainingID = &id
	}
	return dbAtt
}

func toPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fromPtr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toPtrInt(i int64) *int32 {
	if i == 0 {
		return nil
	}
	v := int32(i)
	return &v
}

func fromPtrInt(i *int32) int64 {
	if i == nil {
		return 0
	}
	return int64(*i)
}
