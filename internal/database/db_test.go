package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
)

func TestHealthCheck(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	db := Wrap(sqlDB, zerolog.Nop())

	mock.ExpectPing()
	if err := db.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck failed: %v", err)
	}

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	if err := db.HealthCheck(context.Background()); err == nil {
		t.Error("Expected HealthCheck to report the failed ping")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
