package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jiftek/website/internal/db"
)

func heroContent(title string) []byte {
	raw, _ := json.Marshal(map[string]interface{}{
		"items": []map[string]string{{"title": title}},
	})
	return raw
}

func missionContent(body string) []byte {
	raw, _ := json.Marshal(map[string]string{"title": "Mission", "body": body})
	return raw
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewPageService(gdb)
	first, err := svc.GetOrCreate(db.PageSlugHome)
	if err != nil {
		t.Fatalf("first get-or-create: %v", err)
	}
	second, err := svc.GetOrCreate(db.PageSlugHome)
	if err != nil {
		t.Fatalf("second get-or-create: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same page row, got ids %d and %d", first.ID, second.ID)
	}

	var count int64
	gdb.Model(&db.Page{}).Where("slug = ?", db.PageSlugHome).Count(&count)
	if count != 1 {
		t.Fatalf("expected one home page, found %d", count)
	}
}

func TestUpsertSectionIsIdempotent(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewPageService(gdb)
	content := heroContent("Welcome")

	for i := 0; i < 2; i++ {
		if _, err := svc.UpsertSection(db.PageSlugHome, SectionKeyHero, content, 0, 0); err != nil {
			t.Fatalf("upsert %d: %v", i, err)
		}
	}

	var count int64
	gdb.Model(&db.ContentSection{}).Where("section_key = ?", SectionKeyHero).Count(&count)
	if count != 1 {
		t.Fatalf("expected one hero section, found %d", count)
	}

	section, err := svc.GetSection(db.PageSlugHome, SectionKeyHero)
	if err != nil {
		t.Fatalf("get section: %v", err)
	}
	if string(section.Content) != string(content) {
		t.Fatalf("unexpected content after double upsert: %s", section.Content)
	}
}

func TestUpsertSectionFullyReplacesContent(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewPageService(gdb)
	first, _ := json.Marshal(map[string]interface{}{
		"title": "Get in touch",
		"phone": "+1 555 0100",
	})
	if _, err := svc.UpsertSection(db.PageSlugContact, SectionKeyContact, first, 0, 0); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, _ := json.Marshal(map[string]interface{}{"title": "Contact us"})
	if _, err := svc.UpsertSection(db.PageSlugContact, SectionKeyContact, second, 0, 0); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	section, err := svc.GetSection(db.PageSlugContact, SectionKeyContact)
	if err != nil {
		t.Fatalf("get section: %v", err)
	}

	var stored map[string]interface{}
	if err := json.Unmarshal(section.Content, &stored); err != nil {
		t.Fatalf("unmarshal stored content: %v", err)
	}
	if _, stale := stored["phone"]; stale {
		t.Fatal("expected stale phone key to be dropped by full-replace upsert")
	}
	if stored["title"] != "Contact us" {
		t.Fatalf("unexpected title %v", stored["title"])
	}
}

func TestSectionWritesAreIsolated(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewPageService(gdb)
	mission := missionContent("original mission")
	if _, err := svc.UpsertSection(db.PageSlugHome, SectionKeyMission, mission, 1, 0); err != nil {
		t.Fatalf("seed mission on home: %v", err)
	}
	if _, err := svc.UpsertSection(db.PageSlugAbout, SectionKeyMission, missionContent("about mission"), 0, 0); err != nil {
		t.Fatalf("seed mission on about: %v", err)
	}

	if _, err := svc.UpsertSection(db.PageSlugHome, SectionKeyHero, heroContent("new hero"), 0, 0); err != nil {
		t.Fatalf("write hero on home: %v", err)
	}

	got, err := svc.GetSection(db.PageSlugHome, SectionKeyMission)
	if err != nil {
		t.Fatalf("get home mission: %v", err)
	}
	if string(got.Content) != string(mission) {
		t.Fatalf("home mission mutated by hero write: %s", got.Content)
	}

	other, err := svc.GetSection(db.PageSlugAbout, SectionKeyMission)
	if err != nil {
		t.Fatalf("get about mission: %v", err)
	}
	if string(other.Content) != string(missionContent("about mission")) {
		t.Fatalf("about mission mutated by home write: %s", other.Content)
	}
}

func TestUpsertSectionRejectsUnknownKey(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewPageService(gdb)
	_, err := svc.UpsertSection(db.PageSlugHome, "carousel-v2", heroContent("x"), 0, 0)
	if !errors.Is(err, ErrUnknownSectionKey) {
		t.Fatalf("expected ErrUnknownSectionKey, got %v", err)
	}
}

func TestUpsertSectionValidatesShape(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewPageService(gdb)
	missingItems, _ := json.Marshal(map[string]string{"title": "no items"})
	_, err := svc.UpsertSection(db.PageSlugHome, SectionKeyFAQ, missingItems, 0, 0)
	if !errors.Is(err, ErrInvalidSectionContent) {
		t.Fatalf("expected ErrInvalidSectionContent, got %v", err)
	}

	var count int64
	gdb.Model(&db.ContentSection{}).Count(&count)
	if count != 0 {
		t.Fatalf("invalid write must not persist, found %d sections", count)
	}
}

func TestReorderSectionsUpdatesSortOrder(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewPageService(gdb)
	if _, err := svc.UpsertSection(db.PageSlugHome, SectionKeyHero, heroContent("h"), 0, 0); err != nil {
		t.Fatalf("seed hero: %v", err)
	}
	if _, err := svc.UpsertSection(db.PageSlugHome, SectionKeyMission, missionContent("m"), 1, 0); err != nil {
		t.Fatalf("seed mission: %v", err)
	}

	if err := svc.ReorderSections(db.PageSlugHome, []string{SectionKeyMission, SectionKeyHero}); err != nil {
		t.Fatalf("reorder: %v", err)
	}

	sections, err := svc.ListSections(db.PageSlugHome)
	if err != nil {
		t.Fatalf("list sections: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].SectionKey != SectionKeyMission || sections[1].SectionKey != SectionKeyHero {
		t.Fatalf("unexpected order: %s, %s", sections[0].SectionKey, sections[1].SectionKey)
	}
}

func TestUpdateMetaSavesSeoAndContentBlob(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewPageService(gdb)
	blob, _ := json.Marshal(map[string]string{"theme": "dark"})
	page, err := svc.UpdateMeta(db.PageSlugAbout, PageMetaInput{
		MetaTitle:    "About Jiftek",
		MetaKeywords: "jiftek, about",
		Content:      blob,
	}, 3)
	if err != nil {
		t.Fatalf("update meta: %v", err)
	}
	if page.MetaTitle != "About Jiftek" {
		t.Fatalf("unexpected meta title %q", page.MetaTitle)
	}

	// A follow-up save without a content blob keeps the stored one.
	page, err = svc.UpdateMeta(db.PageSlugAbout, PageMetaInput{MetaTitle: "About"}, 3)
	if err != nil {
		t.Fatalf("second update meta: %v", err)
	}
	if string(page.Content) != string(blob) {
		t.Fatalf("content blob lost on meta-only update: %s", page.Content)
	}
	if page.UpdatedByID == nil || *page.UpdatedByID != 3 {
		t.Fatalf("expected updated_by 3, got %v", page.UpdatedByID)
	}
}

func TestDeleteSectionsClearsWholePage(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewPageService(gdb)
	if _, err := svc.UpsertSection(db.PageSlugHome, SectionKeyHero, heroContent("h"), 0, 0); err != nil {
		t.Fatalf("seed hero: %v", err)
	}
	if _, err := svc.UpsertSection(db.PageSlugHome, SectionKeyMission, missionContent("m"), 1, 0); err != nil {
		t.Fatalf("seed mission: %v", err)
	}
	if _, err := svc.UpsertSection(db.PageSlugAbout, SectionKeyMission, missionContent("a"), 0, 0); err != nil {
		t.Fatalf("seed about mission: %v", err)
	}

	if err := svc.DeleteSections(db.PageSlugHome); err != nil {
		t.Fatalf("delete sections: %v", err)
	}

	sections, err := svc.ListSections(db.PageSlugHome)
	if err != nil {
		t.Fatalf("list home sections: %v", err)
	}
	if len(sections) != 0 {
		t.Fatalf("expected no home sections, got %d", len(sections))
	}

	if _, err := svc.GetSection(db.PageSlugAbout, SectionKeyMission); err != nil {
		t.Fatalf("about page must keep its sections: %v", err)
	}
}

func TestUpsertSectionStampsPageUpdatedBy(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewPageService(gdb)
	if _, err := svc.UpsertSection(db.PageSlugHome, SectionKeyHero, heroContent("h"), 0, 42); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	var page db.Page
	if err := gdb.Where("slug = ?", db.PageSlugHome).First(&page).Error; err != nil {
		t.Fatalf("load page: %v", err)
	}
	if page.UpdatedByID == nil || *page.UpdatedByID != 42 {
		t.Fatalf("expected updated_by 42, got %v", page.UpdatedByID)
	}
}
