package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/events"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/repository"
)

type fakeEventRepo struct {
	mu     sync.Mutex
	nextID int
	events map[string]*domain.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]*domain.Event)}
}

func (f *fakeEventRepo) Create(_ context.Context, event *domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	event.ID = fmt.Sprintf("evt-%d", f.nextID)
	event.SubmittedAt = time.Now()
	copied := *event
	f.events[event.ID] = &copied
	return nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventRepo) List(_ context.Context, status *domain.SubmissionStatus) ([]domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Event
	for _, event := range f.events {
		if status != nil && event.Status != *status {
			continue
		}
		out = append(out, *event)
	}
	return out, nil
}

func (f *fakeEventRepo) Update(_ context.Context, event *domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.events[event.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *event
	f.events[event.ID] = &copied
	return nil
}

func (f *fakeEventRepo) Approve(_ context.Context, id string, now time.Time) error {
	return f.transition(id, domain.SubmissionStatusApproved, nil, now)
}

func (f *fakeEventRepo) Reject(_ context.Context, id string, notes *string, now time.Time) error {
	return f.transition(id, domain.SubmissionStatusRejected, notes, now)
}

func (f *fakeEventRepo) transition(id string, to domain.SubmissionStatus, notes *string, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[id]
	if !ok {
		return pgx.ErrNoRows
	}
	if event.Status != domain.SubmissionStatusPending {
		return repository.ErrNotPending
	}
	event.Status = to
	event.ReviewedAt = &now
	if notes != nil {
		event.ReviewNotes = notes
	}
	return nil
}

func (f *fakeEventRepo) SoftDelete(_ context.Context, id string, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[id]
	if !ok {
		return pgx.ErrNoRows
	}
	event.Status = domain.SubmissionStatusRejected
	event.IsActive = false
	event.ReviewedAt = &now
	return nil
}

func (f *fakeEventRepo) ListUpcoming(_ context.Context, from time.Time, limit int) ([]domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Event
	for _, event := range f.events {
		if event.Status != domain.SubmissionStatusApproved || !event.IsActive {
			continue
		}
		if event.StartDate.Before(from) {
			continue
		}
		out = append(out, *event)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Stats(_ context.Context) (domain.SubmissionStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stats := domain.SubmissionStats{}
	for _, event := range f.events {
		stats.Total++
		switch event.Status {
		case domain.SubmissionStatusPending:
			stats.Pending++
		case domain.SubmissionStatusApproved:
			stats.Approved++
		case domain.SubmissionStatusRejected:
			stats.Rejected++
		}
	}
	return stats, nil
}

func newEventFixture() (*EventService, *fakeEventRepo, *recordingDispatcher) {
	repo := newFakeEventRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewEventService(EventDependencies{EventRepo: repo, Dispatcher: dispatcher})
	return svc, repo, dispatcher
}

func submitEvent(t *testing.T, svc *EventService, title string, start time.Time) *domain.Event {
	t.Helper()
	event, err := svc.Submit(context.Background(), "dev-1", EventSubmitInput{
		Title:     title,
		Category:  "festival",
		City:      "Auckland",
		StartDate: start,
		StartTime: "18:00",
	})
	if err != nil {
		t.Fatalf("submit event: %v", err)
	}
	return event
}

func TestEventSubmitValidation(t *testing.T) {
	svc, _, _ := newEventFixture()

	_, err := svc.Submit(context.Background(), "dev-1", EventSubmitInput{StartDate: time.Now()})
	if code := domainCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("code = %q", code)
	}
	_, err = svc.Submit(context.Background(), "dev-1", EventSubmitInput{Title: "Diwali Mela"})
	if code := domainCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("code = %q", code)
	}
}

func TestEventSubmitStartsPendingAndActive(t *testing.T) {
	svc, _, dispatcher := newEventFixture()
	event := submitEvent(t, svc, "Diwali Mela", time.Now().AddDate(0, 1, 0))

	if event.Status != domain.SubmissionStatusPending {
		t.Fatalf("status = %q", event.Status)
	}
	if !event.IsActive {
		t.Fatal("new events start active")
	}
	if event.OrganizerDevoteeID != "dev-1" {
		t.Fatalf("organizer = %q", event.OrganizerDevoteeID)
	}
	if types := dispatcher.types(); len(types) != 1 || types[0] != events.EventEventSubmitted {
		t.Fatalf("published = %v", types)
	}
}

func TestEventApproveOnlyOnce(t *testing.T) {
	svc, _, _ := newEventFixture()
	event := submitEvent(t, svc, "Diwali Mela", time.Now().AddDate(0, 1, 0))

	approved, err := svc.Approve(context.Background(), event.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != domain.SubmissionStatusApproved {
		t.Fatalf("status = %q", approved.Status)
	}

	_, err = svc.Approve(context.Background(), event.ID)
	if code := domainCode(t, err); code != "CONFLICT" {
		t.Fatalf("code = %q, want CONFLICT", code)
	}
}

func TestEventSoftDelete(t *testing.T) {
	svc, repo, _ := newEventFixture()
	event := submitEvent(t, svc, "Diwali Mela", time.Now().AddDate(0, 1, 0))
	if _, err := svc.Approve(context.Background(), event.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	if err := svc.SoftDelete(context.Background(), event.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	stored := repo.events[event.ID]
	if stored.Status != domain.SubmissionStatusRejected || stored.IsActive {
		t.Fatalf("after delete: status=%q active=%v", stored.Status, stored.IsActive)
	}

	// The row remains readable for moderation views.
	if _, err := svc.Get(context.Background(), event.ID); err != nil {
		t.Fatalf("get after delete: %v", err)
	}
}

func TestUpcomingFiltersStatusActivityAndDate(t *testing.T) {
	svc, _, _ := newEventFixture()
	future := submitEvent(t, svc, "Diwali Mela", time.Now().AddDate(0, 1, 0))
	past := submitEvent(t, svc, "Holi 2020", time.Now().AddDate(-1, 0, 0))
	pending := submitEvent(t, svc, "Navaratri Night", time.Now().AddDate(0, 2, 0))
	deleted := submitEvent(t, svc, "Cancelled Satsang", time.Now().AddDate(0, 1, 0))

	for _, id := range []string{future.ID, past.ID, deleted.ID} {
		if _, err := svc.Approve(context.Background(), id); err != nil {
			t.Fatalf("approve %s: %v", id, err)
		}
	}
	if err := svc.SoftDelete(context.Background(), deleted.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_ = pending

	upcoming, err := svc.Upcoming(context.Background(), 10)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].ID != future.ID {
		t.Fatalf("upcoming = %+v, want only %s", upcoming, future.ID)
	}
}

func TestEventRejectKeepsNotes(t *testing.T) {
	svc, _, _ := newEventFixture()
	event := submitEvent(t, svc, "Diwali Mela", time.Now().AddDate(0, 1, 0))

	notes := "venue double booked"
	rejected, err := svc.Reject(context.Background(), event.ID, &notes)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != domain.SubmissionStatusRejected {
		t.Fatalf("status = %q", rejected.Status)
	}
	if rejected.ReviewNotes == nil || *rejected.ReviewNotes != notes {
		t.Fatalf("notes = %v", rejected.ReviewNotes)
	}
}

func TestEventUpdatePatch(t *testing.T) {
	svc, _, _ := newEventFixture()
	event := submitEvent(t, svc, "Diwali Mela", time.Now().AddDate(0, 1, 0))

	venue := "Mahatma Gandhi Centre"
	updated, err := svc.Update(context.Background(), event.ID, EventUpdateInput{Venue: &venue})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Venue != venue {
		t.Fatalf("venue = %q", updated.Venue)
	}
	if updated.Title != "Diwali Mela" {
		t.Fatalf("title changed: %q", updated.Title)
	}
}
