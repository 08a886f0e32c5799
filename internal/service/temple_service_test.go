package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
)

type fakeTempleRepo struct {
	temples map[string]*domain.Temple
}

func (f *fakeTempleRepo) ListVerified(_ context.Context, city *string, limit int) ([]domain.Temple, error) {
	var out []domain.Temple
	for _, temple := range f.temples {
		if !temple.IsVerified || !temple.IsActive {
			continue
		}
		if city != nil && temple.City != *city {
			continue
		}
		out = append(out, *temple)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeTempleRepo) GetByID(_ context.Context, id string) (*domain.Temple, error) {
	temple, ok := f.temples[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *temple
	return &copied, nil
}

func TestTempleGetHidesUnverifiedAndInactive(t *testing.T) {
	svc := NewTempleService(&fakeTempleRepo{temples: map[string]*domain.Temple{
		"t1": {ID: "t1", Name: "Shri Ganesh Mandir", City: "Auckland", IsVerified: true, IsActive: true},
		"t2": {ID: "t2", Name: "Unverified Mandir", City: "Auckland", IsVerified: false, IsActive: true},
		"t3": {ID: "t3", Name: "Closed Mandir", City: "Auckland", IsVerified: true, IsActive: false},
	}})

	if _, err := svc.Get(context.Background(), "t1"); err != nil {
		t.Fatalf("get visible temple: %v", err)
	}
	for _, id := range []string{"t2", "t3", "missing"} {
		_, err := svc.Get(context.Background(), id)
		if code := domainCode(t, err); code != "NOT_FOUND" {
			t.Fatalf("Get(%s) code = %q, want NOT_FOUND", id, code)
		}
	}
}

func TestTempleListFiltersByCity(t *testing.T) {
	svc := NewTempleService(&fakeTempleRepo{temples: map[string]*domain.Temple{
		"t1": {ID: "t1", City: "Auckland", IsVerified: true, IsActive: true},
		"t2": {ID: "t2", City: "Wellington", IsVerified: true, IsActive: true},
		"t3": {ID: "t3", City: "Auckland", IsVerified: false, IsActive: true},
	}})

	city := "Auckland"
	temples, err := svc.List(context.Background(), &city, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(temples) != 1 || temples[0].ID != "t1" {
		t.Fatalf("temples = %+v", temples)
	}
}
