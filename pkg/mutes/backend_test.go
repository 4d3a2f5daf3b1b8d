package mutes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"github.com/soapboxsocial/stories/pkg/mutes"
)

func TestBackend_Toggle(t *testing.T) {
	var tests = []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		expected bool
	}{
		{
			"mutes when no entry exists",
			func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare("^DELETE FROM story_mutes").
					ExpectExec().
					WithArgs(1, 2).
					WillReturnResult(sqlmock.NewResult(0, 0))

				mock.ExpectPrepare("^INSERT INTO story_mutes").
					ExpectExec().
					WithArgs(1, 2).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			true,
		},
		{
			"unmutes when an entry exists",
			func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare("^DELETE FROM story_mutes").
					ExpectExec().
					WithArgs(1, 2).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			false,
		},
		{
			"retries when a concurrent toggle inserted first",
			func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare("^DELETE FROM story_mutes").
					ExpectExec().
					WithArgs(1, 2).
					WillReturnResult(sqlmock.NewResult(0, 0))

				mock.ExpectPrepare("^INSERT INTO story_mutes").
					ExpectExec().
					WithArgs(1, 2).
					WillReturnResult(sqlmock.NewResult(0, 0))

				mock.ExpectPrepare("^DELETE FROM story_mutes").
					ExpectExec().
					WithArgs(1, 2).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
			}
			defer db.Close()

			tt.setup(mock)

			muted, err := mutes.NewBackend(db).Toggle(context.Background(), 1, 2)
			if err != nil {
				t.Fatal(err)
			}

			if muted != tt.expected {
				t.Fatalf("expected %v got %v", tt.expected, muted)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestBackend_Toggle_Contended(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	for i := 0; i < 3; i++ {
		mock.ExpectPrepare("^DELETE FROM story_mutes").
			ExpectExec().
			WillReturnResult(sqlmock.NewResult(0, 0))

		mock.ExpectPrepare("^INSERT INTO story_mutes").
			ExpectExec().
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	_, err = mutes.NewBackend(db).Toggle(context.Background(), 1, 2)
	if !errors.Is(err, mutes.ErrContended) {
		t.Fatalf("unexpected err %v", err)
	}
}

func TestBackend_Toggle_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	mock.ExpectPrepare("^DELETE FROM story_mutes").
		ExpectExec().
		WillReturnError(errors.New("boom"))

	_, err = mutes.NewBackend(db).Toggle(context.Background(), 1, 2)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestBackend_Toggle_UnknownOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	mock.ExpectPrepare("^DELETE FROM story_mutes").
		ExpectExec().
		WithArgs(1, 9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectPrepare("^INSERT INTO story_mutes").
		ExpectExec().
		WithArgs(1, 9).
		WillReturnError(&pq.Error{Code: "23503"})

	_, err = mutes.NewBackend(db).Toggle(context.Background(), 1, 9)
	if !errors.Is(err, mutes.ErrUnknownUser) {
		t.Fatalf("unexpected err %v", err)
	}
}

func TestBackend_GetMutedBy(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	mock.ExpectPrepare("^SELECT muted FROM story_mutes").
		ExpectQuery().
		WithArgs(1).
		WillReturnRows(mock.NewRows([]string{"muted"}).AddRow(4).AddRow(7))

	result, err := mutes.NewBackend(db).GetMutedBy(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(result) != 2 || result[0] != 4 || result[1] != 7 {
		t.Fatalf("unexpected result %v", result)
	}
}

func TestBackend_IsMuted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	mock.ExpectPrepare("^SELECT EXISTS").
		ExpectQuery().
		WithArgs(1, 2).
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(true))

	muted, err := mutes.NewBackend(db).IsMuted(context.Background(), 1, 2)
	if err != nil {
		t.Fatal(err)
	}

	if !muted {
		t.Fatal("expected muted")
	}
}
