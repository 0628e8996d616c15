package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dsavelev/garagekeeper/internal/common"
	"github.com/dsavelev/garagekeeper/internal/server/models"
)

type fakeObjectRemover struct {
	deleted []string
	err     error
}

func (f *fakeObjectRemover) DeleteObject(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return f.err
}

func validTestVehicle() *models.Vehicle {
	return &models.Vehicle{
		UserID: "u1",
		Make:   "Toyota",
		Model:  "Corolla",
		Year:   2020,
	}
}

func TestVehicleCreate_Validation(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{vehicles: &fakeVehiclesRepo{}}
	s := NewVehicleService(db, rm, &fakeObjectRemover{}, discardLogger())

	tests := []struct {
		name   string
		mutate func(*models.Vehicle)
	}{
		{"missing make", func(v *models.Vehicle) { v.Make = "" }},
		{"missing model", func(v *models.Vehicle) { v.Model = "" }},
		{"year too early", func(v *models.Vehicle) { v.Year = 1800 }},
		{"year too late", func(v *models.Vehicle) { v.Year = 3000 }},
		{"negative mileage", func(v *models.Vehicle) { v.Mileage = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validTestVehicle()
			tt.mutate(v)
			if _, err := s.Create(context.Background(), v); !errors.Is(err, common.ErrorValidation) {
				t.Fatalf("want ErrorValidation, got %v", err)
			}
		})
	}
}

func TestVehicleCreate_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		vehicles: &fakeVehiclesRepo{createOut: &models.Vehicle{ID: "v1", Make: "Toyota"}},
	}
	s := NewVehicleService(db, rm, &fakeObjectRemover{}, discardLogger())

	v, err := s.Create(context.Background(), validTestVehicle())
	if err != nil || v.ID != "v1" {
		t.Fatalf("Create: got (%v, %v)", v, err)
	}
}

func TestVehicleUpdate_DeletesSupersededPhoto(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	remover := &fakeObjectRemover{}
	rm := &fakeRepoManager{
		vehicles: &fakeVehiclesRepo{
			getOut:    &models.Vehicle{ID: "v1", UserID: "u1", PhotoKey: "photos/old"},
			updateOut: &models.Vehicle{ID: "v1", UserID: "u1", PhotoKey: "photos/new"},
		},
	}
	s := NewVehicleService(db, rm, remover, discardLogger())

	v := validTestVehicle()
	v.ID = "v1"
	v.PhotoKey = "photos/new"
	if _, err := s.Update(context.Background(), v); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if len(remover.deleted) != 1 || remover.deleted[0] != "photos/old" {
		t.Fatalf("superseded photo not removed: %v", remover.deleted)
	}
}

func TestVehicleUpdate_KeepsUnchangedPhoto(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	remover := &fakeObjectRemover{}
	rm := &fakeRepoManager{
		vehicles: &fakeVehiclesRepo{
			getOut:    &models.Vehicle{ID: "v1", UserID: "u1", PhotoKey: "photos/same"},
			updateOut: &models.Vehicle{ID: "v1", UserID: "u1", PhotoKey: "photos/same"},
		},
	}
	s := NewVehicleService(db, rm, remover, discardLogger())

	v := validTestVehicle()
	v.ID = "v1"
	v.PhotoKey = "photos/same"
	if _, err := s.Update(context.Background(), v); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if len(remover.deleted) != 0 {
		t.Fatalf("unexpected object delete: %v", remover.deleted)
	}
}

func TestVehicleDelete_RemovesPhoto(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	remover := &fakeObjectRemover{}
	rm := &fakeRepoManager{
		vehicles: &fakeVehiclesRepo{
			getOut: &models.Vehicle{ID: "v1", UserID: "u1", PhotoKey: "photos/2026/1/1/abc"},
		},
	}
	s := NewVehicleService(db, rm, remover, discardLogger())

	if err := s.Delete(context.Background(), "u1", "v1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if len(remover.deleted) != 1 || remover.deleted[0] != "photos/2026/1/1/abc" {
		t.Fatalf("photo not cleaned up: %v", remover.deleted)
	}
}

func TestVehicleDelete_PhotoCleanupFailureIsNonFatal(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	remover := &fakeObjectRemover{err: errBoom{}}
	rm := &fakeRepoManager{
		vehicles: &fakeVehiclesRepo{
			getOut: &models.Vehicle{ID: "v1", UserID: "u1", PhotoKey: "photos/x"},
		},
	}
	s := NewVehicleService(db, rm, remover, discardLogger())

	if err := s.Delete(context.Background(), "u1", "v1"); err != nil {
		t.Fatalf("cleanup failure must not fail the delete, got %v", err)
	}
}

func TestVehicleDelete_NoPhotoSkipsCleanup(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	remover := &fakeObjectRemover{}
	rm := &fakeRepoManager{
		vehicles: &fakeVehiclesRepo{getOut: &models.Vehicle{ID: "v1", UserID: "u1"}},
	}
	s := NewVehicleService(db, rm, remover, discardLogger())

	if err := s.Delete(context.Background(), "u1", "v1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if len(remover.deleted) != 0 {
		t.Fatalf("unexpected object delete: %v", remover.deleted)
	}
}

func TestVehicleDelete_NotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{vehicles: &fakeVehiclesRepo{getErr: common.ErrorNotFound}}
	s := NewVehicleService(db, rm, &fakeObjectRemover{}, discardLogger())

	if err := s.Delete(context.Background(), "u1", "ghost"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}
