package usecase

import (
	"context"
	"time"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/port"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/repository"
)

// Mock repositories shared by the service tests.

type personRepoMock struct {
	people    map[string]domain.Person
	createErr error
	updateErr error
	deleteErr error
	listErr   error
	deleted   []string
}

func (m *personRepoMock) Create(_ context.Context, person domain.Person) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.people == nil {
		m.people = make(map[string]domain.Person)
	}
	m.people[person.ID] = person
	return nil
}

func (m *personRepoMock) GetByID(_ context.Context, id string) (*domain.Person, error) {
	if person, ok := m.people[id]; ok {
		return &person, nil
	}
	return nil, repository.ErrNotFound
}

func (m *personRepoMock) Update(_ context.Context, person domain.Person) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.people[person.ID]; !ok {
		return repository.ErrNotFound
	}
	m.people[person.ID] = person
	return nil
}

func (m *personRepoMock) Delete(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.people[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.people, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *personRepoMock) List(_ context.Context, filter port.PersonFilter) ([]domain.Person, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	people := make([]domain.Person, 0, len(m.people))
	for _, person := range m.people {
		if filter.ActiveOnly && !person.Active {
			continue
		}
		people = append(people, person)
	}
	return people, nil
}

type assignmentRepoMock struct {
	entries        []domain.RoleAssignment
	insertErr      error
	successionErr  error
	closeErr       error
	countByPerson  map[string]int
	successionUsed bool
	insertUsed     bool
}

func (m *assignmentRepoMock) Insert(_ context.Context, entry domain.RoleAssignment) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.insertUsed = true
	m.entries = append(m.entries, entry)
	return nil
}

func (m *assignmentRepoMock) AssignWithSuccession(_ context.Context, entry domain.RoleAssignment) ([]string, error) {
	if m.successionErr != nil {
		return nil, m.successionErr
	}
	m.successionUsed = true

	closed := make([]string, 0, 1)
	for i := range m.entries {
		if m.entries[i].Role == entry.Role && m.entries[i].EndDate == nil {
			end := entry.StartDate
			m.entries[i].EndDate = &end
			closed = append(closed, m.entries[i].ID)
		}
	}

	m.entries = append(m.entries, entry)
	return closed, nil
}

func (m *assignmentRepoMock) CloseOpen(_ context.Context, role domain.Role, endDate time.Time) ([]string, error) {
	if m.closeErr != nil {
		return nil, m.closeErr
	}

	closed := make([]string, 0, 1)
	for i := range m.entries {
		if m.entries[i].Role == role && m.entries[i].EndDate == nil {
			end := endDate
			m.entries[i].EndDate = &end
			closed = append(closed, m.entries[i].ID)
		}
	}
	return closed, nil
}

func (m *assignmentRepoMock) ListOpenByRole(_ context.Context, role domain.Role) ([]domain.RoleAssignment, error) {
	open := make([]domain.RoleAssignment, 0)
	for _, entry := range m.entries {
		if entry.Role == role && entry.EndDate == nil {
			open = append(open, entry)
		}
	}
	return open, nil
}

func (m *assignmentRepoMock) ListHistory(_ context.Context, role *domain.Role) ([]domain.RoleAssignment, error) {
	history := make([]domain.RoleAssignment, 0, len(m.entries))
	for _, entry := range m.entries {
		if role != nil && entry.Role != *role {
			continue
		}
		history = append(history, entry)
	}
	return history, nil
}

func (m *assignmentRepoMock) CountByPerson(_ context.Context, personID string) (int, error) {
	if m.countByPerson != nil {
		return m.countByPerson[personID], nil
	}
	count := 0
	for _, entry := range m.entries {
		if entry.PersonID == personID {
			count++
		}
	}
	return count, nil
}

type leaveRepoMock struct {
	records   []domain.LeaveRecord
	insertErr error
	listErr   error
}

func (m *leaveRepoMock) Insert(_ context.Context, record domain.LeaveRecord) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.records = append(m.records, record)
	return nil
}

func (m *leaveRepoMock) List(_ context.Context) ([]domain.LeaveRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.records, nil
}

func (m *leaveRepoMock) CountByPerson(_ context.Context, personID string) (int, error) {
	count := 0
	for _, record := range m.records {
		if record.PersonID == personID {
			count++
		}
	}
	return count, nil
}

type eventPublisherMock struct {
	personEvents []domain.PersonRegisteredEvent
	roleEvents   []domain.RoleAssignedEvent
	leaveEvents  []domain.LeaveRecordedEvent
	publishErr   error
}

func (m *eventPublisherMock) PublishPersonRegistered(_ context.Context, event domain.PersonRegisteredEvent) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.personEvents = append(m.personEvents, event)
	return nil
}

func (m *eventPublisherMock) PublishRoleAssigned(_ context.Context, event domain.RoleAssignedEvent) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.roleEvents = append(m.roleEvents, event)
	return nil
}

func (m *eventPublisherMock) PublishLeaveRecorded(_ context.Context, event domain.LeaveRecordedEvent) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.leaveEvents = append(m.leaveEvents, event)
	return nil
}

type occupancyCacheMock struct {
	store       map[domain.Role][]domain.RoleAssignment
	getErr      error
	setErr      error
	invalidated []domain.Role
	hits        int
	misses      int
}

func (m *occupancyCacheMock) Get(_ context.Context, role domain.Role) ([]domain.RoleAssignment, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	if entries, ok := m.store[role]; ok {
		m.hits++
		return entries, true, nil
	}
	m.misses++
	return nil, false, nil
}

func (m *occupancyCacheMock) Set(_ context.Context, role domain.Role, entries []domain.RoleAssignment, _ time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	if m.store == nil {
		m.store = make(map[domain.Role][]domain.RoleAssignment)
	}
	m.store[role] = entries
	return nil
}

func (m *occupancyCacheMock) Invalidate(_ context.Context, role domain.Role) error {
	delete(m.store, role)
	m.invalidated = append(m.invalidated, role)
	return nil
}

var (
	_ port.PersonRepository     = (*personRepoMock)(nil)
	_ port.AssignmentRepository = (*assignmentRepoMock)(nil)
	_ port.LeaveRepository      = (*leaveRepoMock)(nil)
	_ port.EventPublisher       = (*eventPublisherMock)(nil)
	_ port.OccupancyCache       = (*occupancyCacheMock)(nil)
)
