package service

import "testing"

func TestSlugifyNormalizesTitles(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Digital Transformation for Financial Services", "digital-transformation-for-financial-services"},
		{"  Cloud   Engineering  ", "cloud-engineering"},
		{"What's New in 2024?", "what-s-new-in-2024"},
		{"UPPER case Title", "upper-case-title"},
		{"--already--hyphenated--", "already-hyphenated"},
		{"symbols & punctuation!!!", "symbols-punctuation"},
		{"数字化转型", ""},
		{"", ""},
		{"!!!", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUniqueSlugAppendsNumericSuffix(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewCaseStudyService(gdb)
	for _, want := range []string{"repeat-title", "repeat-title-1", "repeat-title-2"} {
		study, err := svc.Create(CaseStudyInput{
			ContentInput: ContentInput{Title: "Repeat Title"},
		}, 0)
		if err != nil {
			t.Fatalf("create case study: %v", err)
		}
		if study.Slug != want {
			t.Fatalf("expected slug %q, got %q", want, study.Slug)
		}
	}
}

func TestUniqueSlugExcludesSelfOnUpdate(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewCaseStudyService(gdb)
	study, err := svc.Create(CaseStudyInput{ContentInput: ContentInput{Title: "Stable Title"}}, 0)
	if err != nil {
		t.Fatalf("create case study: %v", err)
	}

	updated, err := svc.Update(study.ID, CaseStudyInput{
		ContentInput: ContentInput{Title: "Stable Title", Slug: "stable-title"},
	}, 0)
	if err != nil {
		t.Fatalf("update case study: %v", err)
	}
	if updated.Slug != "stable-title" {
		t.Fatalf("expected slug to stay stable-title, got %q", updated.Slug)
	}
}
