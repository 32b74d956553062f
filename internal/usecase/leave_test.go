package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
)

func newLeaveFixture() (*LeaveService, *personRepoMock, *leaveRepoMock, *eventPublisherMock) {
	people := &personRepoMock{people: map[string]domain.Person{
		"p1": activePerson("p1", "Maria Silva", domain.RankCaptain),
	}}
	leaves := &leaveRepoMock{}
	events := &eventPublisherMock{}
	svc := NewLeaveService(leaves, people, events)
	return svc, people, leaves, events
}

func TestRecordLeave(t *testing.T) {
	svc, _, leaves, events := newLeaveFixture()

	record, err := svc.Record(context.Background(), RecordLeaveInput{
		PersonID:  "p1",
		Type:      domain.LeaveVacation,
		StartDate: date(2024, time.July, 1),
		EndDate:   date(2024, time.July, 30),
		Note:      "  annual leave  ",
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	if record.ID == "" {
		t.Fatal("record should get a generated ID")
	}
	if record.Note != "annual leave" {
		t.Fatalf("note should be trimmed, got %q", record.Note)
	}
	if record.PersonName != "Maria Silva" {
		t.Fatalf("person name should be resolved, got %q", record.PersonName)
	}
	if len(leaves.records) != 1 {
		t.Fatal("record should be persisted")
	}
	if len(events.leaveEvents) != 1 {
		t.Fatalf("expected 1 leave event, got %d", len(events.leaveEvents))
	}
}

func TestRecordLeave_SingleDayIsValid(t *testing.T) {
	svc, _, _, _ := newLeaveFixture()

	day := date(2024, time.July, 1)
	if _, err := svc.Record(context.Background(), RecordLeaveInput{
		PersonID:  "p1",
		Type:      domain.LeaveMedical,
		StartDate: day,
		EndDate:   day,
	}); err != nil {
		t.Fatalf("single-day leave should be accepted: %v", err)
	}
}

func TestRecordLeave_Validation(t *testing.T) {
	svc, people, _, _ := newLeaveFixture()

	if _, err := svc.Record(context.Background(), RecordLeaveInput{
		Type:      domain.LeaveVacation,
		StartDate: date(2024, time.July, 1),
		EndDate:   date(2024, time.July, 30),
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("missing person: got %v, want ErrValidation", err)
	}

	if _, err := svc.Record(context.Background(), RecordLeaveInput{
		PersonID: "p1",
		Type:     domain.LeaveVacation,
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("missing dates: got %v, want ErrValidation", err)
	}

	if _, err := svc.Record(context.Background(), RecordLeaveInput{
		PersonID:  "p1",
		Type:      domain.LeaveVacation,
		StartDate: date(2024, time.July, 30),
		EndDate:   date(2024, time.July, 1),
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("inverted dates: got %v, want ErrValidation", err)
	}

	if _, err := svc.Record(context.Background(), RecordLeaveInput{
		PersonID:  "ghost",
		Type:      domain.LeaveVacation,
		StartDate: date(2024, time.July, 1),
		EndDate:   date(2024, time.July, 30),
	}); !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("unknown person: got %v, want ErrPersonNotFound", err)
	}

	retired := activePerson("p2", "Retired", domain.RankSoldier)
	retired.Active = false
	people.people["p2"] = retired

	if _, err := svc.Record(context.Background(), RecordLeaveInput{
		PersonID:  "p2",
		Type:      domain.LeaveVacation,
		StartDate: date(2024, time.July, 1),
		EndDate:   date(2024, time.July, 30),
	}); !errors.Is(err, ErrPersonInactive) {
		t.Fatalf("inactive person: got %v, want ErrPersonInactive", err)
	}
}

func TestListLeaves(t *testing.T) {
	svc, _, leaves, _ := newLeaveFixture()

	leaves.records = []domain.LeaveRecord{
		{ID: "l1", PersonID: "p1", Type: domain.LeaveVacation},
		{ID: "l2", PersonID: "p1", Type: domain.LeaveMedical},
	}

	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}
