package service

import (
	"errors"
	"testing"

	"github.com/jiftek/website/internal/db"
)

func TestInsightDefaultsToDraft(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewInsightService(gdb)
	insight, err := svc.Create(InsightInput{
		ContentInput: ContentInput{Title: "Quarterly Outlook"},
		Content:      "# Outlook",
	}, 0)
	if err != nil {
		t.Fatalf("create insight: %v", err)
	}
	if insight.Status != db.InsightStatusDraft {
		t.Fatalf("expected draft status, got %q", insight.Status)
	}
	if insight.PublishedAt != nil {
		t.Fatal("draft must not carry published_at")
	}
}

func TestPublishingStampsPublishedAt(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewInsightService(gdb)
	insight, err := svc.Create(InsightInput{
		ContentInput: ContentInput{Title: "Launch Notes"},
		Status:       db.InsightStatusPublished,
	}, 0)
	if err != nil {
		t.Fatalf("create insight: %v", err)
	}
	if insight.PublishedAt == nil {
		t.Fatal("expected published_at to be stamped")
	}
}

func TestListPublishedExcludesDrafts(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewInsightService(gdb)
	if _, err := svc.Create(InsightInput{
		ContentInput: ContentInput{Title: "Draft Piece"},
	}, 0); err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if _, err := svc.Create(InsightInput{
		ContentInput: ContentInput{Title: "Published Piece"},
		Status:       db.InsightStatusPublished,
	}, 0); err != nil {
		t.Fatalf("create published: %v", err)
	}

	published, err := svc.ListPublished()
	if err != nil {
		t.Fatalf("list published: %v", err)
	}
	if len(published) != 1 || published[0].Title != "Published Piece" {
		t.Fatalf("unexpected published list: %+v", published)
	}
}

func TestGetPublishedBySlugIgnoresDrafts(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewInsightService(gdb)
	draft, err := svc.Create(InsightInput{
		ContentInput: ContentInput{Title: "Hidden Draft"},
	}, 0)
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}

	if _, err := svc.GetPublishedBySlug(draft.Slug); !errors.Is(err, ErrInsightNotFound) {
		t.Fatalf("expected ErrInsightNotFound for draft, got %v", err)
	}
}

func TestInsightRejectsInvalidStatus(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewInsightService(gdb)
	_, err := svc.Create(InsightInput{
		ContentInput: ContentInput{Title: "Bad Status"},
		Status:       "archived",
	}, 0)
	if !errors.Is(err, ErrInsightStatusInvalid) {
		t.Fatalf("expected ErrInsightStatusInvalid, got %v", err)
	}
}
