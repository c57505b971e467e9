package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"portfolio-backend/internal/domain/entity"
	"portfolio-backend/internal/infra/adapter/persistence/postgres"
)

var caseStudyCols = []string{
	"id", "title", "subtitle", "slug", "summary", "content", "cover_image",
	"category", "duration", "tags", "featured", "published", "published_at",
	"created_at", "updated_at",
}

func TestCaseStudyRepo_GetBySlug(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(`WHERE slug = \$1`).
		WithArgs("checkout-redesign").
		WillReturnRows(sqlmock.NewRows(caseStudyCols).AddRow(
			int64(1), "Checkout Redesign", "Friction audit to launch", "checkout-redesign",
			"A summary", "## Body", "", "UX", "3 months", []byte("{ux,web}"),
			true, true, &now, now, now,
		))

	repo := postgres.NewCaseStudyRepo(db)
	got, err := repo.GetBySlug(context.Background(), "checkout-redesign")
	if err != nil {
		t.Fatalf("GetBySlug err=%v", err)
	}
	if got.Slug != "checkout-redesign" || !got.Published {
		t.Fatalf("GetBySlug got=%+v", got)
	}
	if got.Subtitle != "Friction audit to launch" || got.Category != "UX" ||
		got.Duration != "3 months" || !got.Featured {
		t.Fatalf("GetBySlug got=%+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCaseStudyRepo_ListPublished(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`WHERE published = TRUE`).
		WillReturnRows(sqlmock.NewRows(caseStudyCols))

	repo := postgres.NewCaseStudyRepo(db)
	got, err := repo.ListPublished(context.Background())
	if err != nil || len(got) != 0 {
		t.Fatalf("ListPublished err=%v len=%d", err, len(got))
	}
}

func TestCaseStudyRepo_Create_DuplicateSlug(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO case_studies`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	repo := postgres.NewCaseStudyRepo(db)
	err := repo.Create(context.Background(), &entity.CaseStudy{
		Title: "Dup", Slug: "dup",
	})
	if !errors.Is(err, entity.ErrAlreadyExists) {
		t.Fatalf("Create err=%v, want ErrAlreadyExists", err)
	}
}
