package blog

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm open error: %v", err)
	}
	return db, mock
}

func TestRecordViewAtomicIncrement(t *testing.T) {
	db, mock := newMockDB(t)

	// The counter must be bumped in one UPDATE against the stored value, not
	// read-modify-write from a loaded struct.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "posts" SET "views"=views \+ \$1 WHERE id = \$2`).
		WithArgs(1, 42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	service := NewService(db)
	if err := service.RecordView(42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestResolveByPID(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT "slug" FROM "posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"slug"}).AddRow("the-great-migration-when-and-where-to-see-it"))

	service := NewService(db)
	slug, err := service.ResolveByPID("AbC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slug != "the-great-migration-when-and-where-to-see-it" {
		t.Errorf("slug = %q", slug)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestResolveByPIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT "slug" FROM "posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"slug"}))

	service := NewService(db)
	if _, err := service.ResolveByPID("gone"); err != ErrNotFound {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestSearchEmptyQueryListsAllPublished(t *testing.T) {
	db, mock := newMockDB(t)

	// No substring filter, only the published-status clause.
	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE status = \$1`).
		WithArgs("published").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "slug"}).
			AddRow(1, "Great Migration Guide", "great-migration-guide").
			AddRow(2, "Diani on a Budget", "diani-on-a-budget"))

	service := NewService(db)
	posts, err := service.Search("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	if posts[0].Slug != "great-migration-guide" {
		t.Errorf("got first slug %q", posts[0].Slug)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
