package web

import (
	"testing"

	"clubmanager/internal/domain"
)

func Test_upcomingEvents(t *testing.T) {
	matches := []domain.Match{
		{ID: 1, Date: "2099-06-01T18:00", Opponent: "FC X", Location: "doma"},
		{ID: 2, Date: "2000-01-01T10:00", Opponent: "FC Y", Location: "vonku"},
	}
	trainings := []domain.Training{
		{ID: 3, Date: "2099-05-01T19:00", Location: "telocvičňa"},
		{ID: 4, Date: "1999-12-31T19:00", Location: "telocvičňa"},
	}

	events := upcomingEvents(matches, trainings)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Ref.Kind != domain.EventTraining || events[0].Ref.ID != 3 {
		t.Errorf("first event = %+v, want training 3", events[0].Ref)
	}
	if events[1].Ref.Kind != domain.EventMatch || events[1].Ref.ID != 1 {
		t.Errorf("second event = %+v, want match 1", events[1].Ref)
	}
}
