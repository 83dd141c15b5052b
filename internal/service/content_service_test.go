package service

import (
	"errors"
	"testing"
)

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewCaseStudyService(gdb)
	study, err := svc.Create(CaseStudyInput{
		ContentInput: ContentInput{Title: "Digital Transformation for Financial Services"},
	}, 0)
	if err != nil {
		t.Fatalf("create case study: %v", err)
	}
	if study.Slug != "digital-transformation-for-financial-services" {
		t.Fatalf("unexpected slug %q", study.Slug)
	}

	second, err := svc.Create(CaseStudyInput{
		ContentInput: ContentInput{Title: "Digital Transformation for Financial Services"},
	}, 0)
	if err != nil {
		t.Fatalf("create second case study: %v", err)
	}
	if second.Slug != "digital-transformation-for-financial-services-1" {
		t.Fatalf("unexpected second slug %q", second.Slug)
	}
}

func TestUpdateWithoutTitleChangeKeepsSlug(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewCaseStudyService(gdb)
	study, err := svc.Create(CaseStudyInput{ContentInput: ContentInput{Title: "Keep My Slug"}}, 0)
	if err != nil {
		t.Fatalf("create case study: %v", err)
	}

	updated, err := svc.Update(study.ID, CaseStudyInput{
		ContentInput: ContentInput{Title: "Keep My Slug", Description: "new description"},
	}, 0)
	if err != nil {
		t.Fatalf("update case study: %v", err)
	}
	if updated.Slug != "keep-my-slug" {
		t.Fatalf("slug changed on no-op title edit: %q", updated.Slug)
	}
}

func TestUpdateWithTitleChangeRederivesSlug(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewCaseStudyService(gdb)
	study, err := svc.Create(CaseStudyInput{ContentInput: ContentInput{Title: "Old Title"}}, 0)
	if err != nil {
		t.Fatalf("create case study: %v", err)
	}

	updated, err := svc.Update(study.ID, CaseStudyInput{
		ContentInput: ContentInput{Title: "Brand New Title"},
	}, 0)
	if err != nil {
		t.Fatalf("update case study: %v", err)
	}
	if updated.Slug != "brand-new-title" {
		t.Fatalf("expected rederived slug, got %q", updated.Slug)
	}
}

func TestExplicitSlugWinsOverTitle(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewCaseStudyService(gdb)
	study, err := svc.Create(CaseStudyInput{
		ContentInput: ContentInput{Title: "Some Long Generated Name", Slug: "short"},
	}, 0)
	if err != nil {
		t.Fatalf("create case study: %v", err)
	}
	if study.Slug != "short" {
		t.Fatalf("expected explicit slug to win, got %q", study.Slug)
	}

	// Explicit slugs are still uniqued.
	second, err := svc.Create(CaseStudyInput{
		ContentInput: ContentInput{Title: "Another Entry", Slug: "short"},
	}, 0)
	if err != nil {
		t.Fatalf("create second case study: %v", err)
	}
	if second.Slug != "short-1" {
		t.Fatalf("expected uniqued explicit slug, got %q", second.Slug)
	}
}

func TestSlugRetryPolicyIsUniformAcrossEntityTypes(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	// Service entities use the same retry loop as case studies, including on
	// update.
	services := NewServiceService(gdb)
	first, err := services.Create(ServiceInput{ContentInput: ContentInput{Title: "Managed Hosting"}}, 0)
	if err != nil {
		t.Fatalf("create first service: %v", err)
	}
	if first.Slug != "managed-hosting" {
		t.Fatalf("unexpected first slug %q", first.Slug)
	}

	second, err := services.Create(ServiceInput{ContentInput: ContentInput{Title: "Penetration Testing"}}, 0)
	if err != nil {
		t.Fatalf("create second service: %v", err)
	}

	updated, err := services.Update(second.ID, ServiceInput{
		ContentInput: ContentInput{Title: "Managed Hosting"},
	}, 0)
	if err != nil {
		t.Fatalf("update second service: %v", err)
	}
	if updated.Slug != "managed-hosting-1" {
		t.Fatalf("expected suffixed slug on update collision, got %q", updated.Slug)
	}
}

func TestPunctuationOnlyTitleYieldsUnaddressableRow(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewPartnerService(gdb)
	partner, err := svc.Create(PartnerInput{ContentInput: ContentInput{Title: "!!!"}}, 0)
	if err != nil {
		t.Fatalf("create partner: %v", err)
	}
	if partner.Slug != "" {
		t.Fatalf("expected empty slug, got %q", partner.Slug)
	}

	// A second slugless row is still persistable.
	if _, err := svc.Create(PartnerInput{ContentInput: ContentInput{Title: "???"}}, 0); err != nil {
		t.Fatalf("create second slugless partner: %v", err)
	}
}

func TestCreateStampsActingUser(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewTeamService(gdb)
	member, err := svc.Create(TeamMemberInput{
		ContentInput: ContentInput{Title: "Jordan Reyes"},
		Position:     "CTO",
	}, 7)
	if err != nil {
		t.Fatalf("create team member: %v", err)
	}
	if member.CreatedByID == nil || *member.CreatedByID != 7 {
		t.Fatalf("expected created_by 7, got %v", member.CreatedByID)
	}

	updated, err := svc.Update(member.ID, TeamMemberInput{
		ContentInput: ContentInput{Title: "Jordan Reyes"},
		Position:     "CEO",
	}, 9)
	if err != nil {
		t.Fatalf("update team member: %v", err)
	}
	if updated.CreatedByID == nil || *updated.CreatedByID != 7 {
		t.Fatalf("created_by must not change on update, got %v", updated.CreatedByID)
	}
	if updated.UpdatedByID == nil || *updated.UpdatedByID != 9 {
		t.Fatalf("expected updated_by 9, got %v", updated.UpdatedByID)
	}
}

func TestCreateRequiresTitle(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewCaseStudyService(gdb)
	if _, err := svc.Create(CaseStudyInput{}, 0); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
}

func TestSolutionDeleteRefusedWhileServicesAttached(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	solutions := NewSolutionService(gdb)
	services := NewServiceService(gdb)

	solution, err := solutions.Create(SolutionInput{ContentInput: ContentInput{Title: "Digital Platform"}}, 0)
	if err != nil {
		t.Fatalf("create solution: %v", err)
	}

	svc, err := services.Create(ServiceInput{
		ContentInput: ContentInput{Title: "API Development"},
		SolutionID:   &solution.ID,
	}, 0)
	if err != nil {
		t.Fatalf("create service: %v", err)
	}

	if err := solutions.Delete(solution.ID); !errors.Is(err, ErrSolutionInUse) {
		t.Fatalf("expected ErrSolutionInUse, got %v", err)
	}

	if err := services.Delete(svc.ID); err != nil {
		t.Fatalf("delete service: %v", err)
	}
	if err := solutions.Delete(solution.ID); err != nil {
		t.Fatalf("delete solution after detaching: %v", err)
	}
}
