package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/shelftrack/reading-tracker/internal/core/domain"
	"github.com/shelftrack/reading-tracker/internal/core/ports"
)

func newBookFixture() (*BookService, *stubBookRepo, *domain.User, *domain.User, *domain.User) {
	repo := newStubBookRepo()
	now := time.Now().UTC()
	creator := domain.NewUser("creator", "creator@example.com", "", now)
	other := domain.NewUser("other", "other2@example.com", "", now)
	admin := domain.NewUser("admin", "admin2@example.com", "", now)
	admin.Role = domain.RoleAdmin
	return NewBookService(repo, discardLogger), repo, creator, other, admin
}

func TestBookService_Create(t *testing.T) {
	svc, repo, creator, _, _ := newBookFixture()

	book, err := svc.Create(context.Background(), creator, ports.CreateBookInput{
		Title:  "Dune",
		Author: "Frank Herbert",
		ISBN:   "9780441172719",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if book.CreatedBy != creator.ID {
		t.Errorf("expected creator %s, got %s", creator.ID, book.CreatedBy)
	}
	if len(repo.byID) != 1 {
		t.Errorf("expected 1 stored book, got %d", len(repo.byID))
	}
}

func TestBookService_Create_RequiresTitleAndAuthor(t *testing.T) {
	svc, _, creator, _, _ := newBookFixture()

	if _, err := svc.Create(context.Background(), creator, ports.CreateBookInput{Author: "x"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("missing title: expected ErrValidation, got %v", err)
	}
	if _, err := svc.Create(context.Background(), creator, ports.CreateBookInput{Title: "x"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("missing author: expected ErrValidation, got %v", err)
	}
}

func TestBookService_Update_Ownership(t *testing.T) {
	svc, _, creator, other, admin := newBookFixture()

	book, err := svc.Create(context.Background(), creator, ports.CreateBookInput{Title: "Dune", Author: "Frank Herbert"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newTitle := "Dune Messiah"

	// Non-creator standard user lacks edit_book.
	if _, err := svc.Update(context.Background(), other, book.ID, ports.UpdateBookInput{Title: &newTitle}); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}

	// Creator edits their own book.
	updated, err := svc.Update(context.Background(), creator, book.ID, ports.UpdateBookInput{Title: &newTitle})
	if err != nil {
		t.Fatalf("creator update: %v", err)
	}
	if updated.Title != newTitle {
		t.Errorf("expected title %q, got %q", newTitle, updated.Title)
	}

	// Admin holds edit_book and edits anyone's book.
	author := "F. Herbert"
	if _, err := svc.Update(context.Background(), admin, book.ID, ports.UpdateBookInput{Author: &author}); err != nil {
		t.Errorf("admin update: %v", err)
	}
}

func TestBookService_Delete_Ownership(t *testing.T) {
	svc, repo, creator, other, _ := newBookFixture()

	book, err := svc.Create(context.Background(), creator, ports.CreateBookInput{Title: "Dune", Author: "Frank Herbert"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), other, book.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), creator, book.ID); err != nil {
		t.Fatalf("creator delete: %v", err)
	}
	if len(repo.byID) != 0 {
		t.Error("book must be removed")
	}
}

func TestBookService_Get_NotFound(t *testing.T) {
	svc, _, _, _, _ := newBookFixture()

	if _, err := svc.Get(context.Background(), uuid.New()); !errors.Is(err, domain.ErrBookNotFound) {
		t.Errorf("expected ErrBookNotFound, got %v", err)
	}
}

func TestBookService_Search_EmptyQuery(t *testing.T) {
	svc, _, _, _, _ := newBookFixture()

	if _, err := svc.Search(context.Background(), ""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}
