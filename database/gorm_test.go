package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gecampus/apply-api/model"
)

// newMockStore opens a GORMStore over a sqlmock connection
func newMockStore(t *testing.T) (*GORMStore, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}

	return &GORMStore{db: db}, mock
}

func minimalApplication() *model.Application {
	return &model.Application{
		Email:               "student@geu.ac.in",
		FullName:            "Asha Negi",
		University:          model.UniversityDeemed,
		EnrollmentNumber:    "GE2110245",
		ContactNumber:       "+91-9876543210",
		AppleDevices:        []byte("[]"),
		CGPA:                8.5,
		ProgrammingSkills:   []byte("{}"),
		PlanAfterGraduation: ptr(model.PlanJob),
		Motivation:          "I want to build iOS apps.",
	}
}

func ptr(s string) *string { return &s }

func TestCreateApplicationInsertsOneRow(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	record := minimalApplication()
	if err := store.CreateApplication(record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ID != 1 {
		t.Errorf("id = %d, want 1", record.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestIdenticalSubmissionsProduceDistinctRows(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	first := minimalApplication()
	second := minimalApplication()

	if err := store.CreateApplication(first); err != nil {
		t.Fatal(err)
	}
	if err := store.CreateApplication(second); err != nil {
		t.Fatal(err)
	}

	if first.ID == second.ID {
		t.Errorf("identical submissions must still get distinct ids, both got %d", first.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateApplicationSurfacesStoreFailure(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO "applications"`).
		WillReturnError(errors.New("connection reset"))

	if err := store.CreateApplication(minimalApplication()); err == nil {
		t.Error("expected store failure to propagate")
	}
}

func TestHealthCheck(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectPing()
	if err := store.HealthCheck(); err != nil {
		t.Errorf("healthy store reported unhealthy: %v", err)
	}

	store, mock = newMockStore(t)
	mock.ExpectPing().WillReturnError(errors.New("dial tcp: connection refused"))
	if err := store.HealthCheck(); err == nil {
		t.Error("unreachable store reported healthy")
	}
}

func TestListResumePaths(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT "resume_path" FROM "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"resume_path"}).
			AddRow("/uploads/100-a.pdf").
			AddRow("/uploads/200-b.pdf"))

	paths, err := store.ListResumePaths()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 || paths[0] != "/uploads/100-a.pdf" {
		t.Errorf("paths = %v", paths)
	}
}
