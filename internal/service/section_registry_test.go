package service

import (
	"errors"
	"testing"
)

func TestValidateSectionContentAcceptsRegisteredShapes(t *testing.T) {
	cases := []struct {
		key  string
		raw  string
		want error
	}{
		{SectionKeyHero, `{"items":[{"title":"Welcome","subtitle":"extra members are fine"}]}`, nil},
		{SectionKeyFAQ, `{"items":[{"question":"How?","answer":"Like this."}]}`, nil},
		{SectionKeyStats, `{"items":[{"label":"Clients","value":"120"}]}`, nil},
		{SectionKeyMission, `{"title":"Mission","body":"Ship reliable software."}`, nil},
		{SectionKeyFAQ, `{"items":[{"question":"How?"}]}`, ErrInvalidSectionContent},
		{SectionKeyHero, `{"items":[]}`, ErrInvalidSectionContent},
		{SectionKeyMission, `{"title":"Mission"}`, ErrInvalidSectionContent},
		{SectionKeyCTA, `not json`, ErrInvalidSectionContent},
		{"sidebar", `{}`, ErrUnknownSectionKey},
	}

	for _, tc := range cases {
		err := ValidateSectionContent(tc.key, []byte(tc.raw))
		if tc.want == nil && err != nil {
			t.Errorf("ValidateSectionContent(%q, %s) = %v, want nil", tc.key, tc.raw, err)
		}
		if tc.want != nil && !errors.Is(err, tc.want) {
			t.Errorf("ValidateSectionContent(%q, %s) = %v, want %v", tc.key, tc.raw, err, tc.want)
		}
	}
}
