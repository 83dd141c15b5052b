package service

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnknownSectionKey     = errors.New("unknown section key")
	ErrInvalidSectionContent = errors.New("invalid section content")
)

// Section keys accepted by the page editor. Adding a new section type means
// adding a key and a validator here; no schema migration is involved.
const (
	SectionKeyHero    = "hero"
	SectionKeyIntro   = "intro"
	SectionKeyMission = "mission"
	SectionKeyVision  = "vision"
	SectionKeyValues  = "values"
	SectionKeyStats   = "stats"
	SectionKeyCTA     = "cta"
	SectionKeyFAQ     = "faq"
	SectionKeyContact = "contact"
)

type sectionValidator func(map[string]interface{}) error

var sectionRegistry = map[string]sectionValidator{
	SectionKeyHero:    requireItems("title"),
	SectionKeyIntro:   requireFields("body"),
	SectionKeyMission: requireFields("body"),
	SectionKeyVision:  requireFields("body"),
	SectionKeyValues:  requireItems("title"),
	SectionKeyStats:   requireItems("label", "value"),
	SectionKeyCTA:     requireFields("title"),
	SectionKeyFAQ:     requireItems("question", "answer"),
	SectionKeyContact: requireFields("title"),
}

// KnownSectionKeys returns the section keys the editor may write, in no
// particular order.
func KnownSectionKeys() []string {
	keys := make([]string, 0, len(sectionRegistry))
	for key := range sectionRegistry {
		keys = append(keys, key)
	}
	return keys
}

// ValidateSectionContent checks that raw is a JSON object matching the shape
// registered for key. The payload may carry extra members; only the
// registered ones are enforced.
func ValidateSectionContent(key string, raw []byte) error {
	validate, ok := sectionRegistry[key]
	if !ok {
		return ErrUnknownSectionKey
	}

	var content map[string]interface{}
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSectionContent, err)
	}

	return validate(content)
}

// requireFields builds a validator demanding non-empty string members at the
// top level of the section object.
func requireFields(fields ...string) sectionValidator {
	return func(content map[string]interface{}) error {
		for _, field := range fields {
			value, ok := content[field].(string)
			if !ok || value == "" {
				return fmt.Errorf("%w: missing field %q", ErrInvalidSectionContent, field)
			}
		}
		return nil
	}
}

// requireItems builds a validator demanding a non-empty "items" array whose
// entries are objects carrying the given non-empty string members.
func requireItems(fields ...string) sectionValidator {
	return func(content map[string]interface{}) error {
		rawItems, ok := content["items"].([]interface{})
		if !ok || len(rawItems) == 0 {
			return fmt.Errorf("%w: missing items array", ErrInvalidSectionContent)
		}
		for idx, rawItem := range rawItems {
			item, ok := rawItem.(map[string]interface{})
			if !ok {
				return fmt.Errorf("%w: item %d is not an object", ErrInvalidSectionContent, idx)
			}
			for _, field := range fields {
				value, ok := item[field].(string)
				if !ok || value == "" {
					return fmt.Errorf("%w: item %d missing %q", ErrInvalidSectionContent, idx, field)
				}
			}
		}
		return nil
	}
}
