package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrSlugExhausted is returned when the collision-retry loop gives up.
var ErrSlugExhausted = errors.New("could not allocate a unique slug")

const maxSlugAttempts = 5

// Slugify normalizes a title to a lowercase, hyphenated ASCII slug. Runs of
// whitespace, punctuation and non-ASCII characters collapse to a single
// hyphen; leading and trailing hyphens are trimmed. An empty or
// punctuation-only input yields an empty slug.
func Slugify(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	hyphenPending := false
	for _, r := range title {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			if hyphenPending && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			hyphenPending = false
			continue
		}
		hyphenPending = true
	}

	return b.String()
}

// slugged is satisfied by every model embedding db.SluggedContent.
type slugged interface {
	GetSlug() string
	SetSlug(string)
}

// uniqueSlug returns base, or base with the lowest numeric suffix ("-1",
// "-2", ...) that does not collide with an existing row of model's table.
// excludeID skips the entity's own row on update. An empty base stays empty:
// such rows are persisted but not publicly addressable.
func uniqueSlug(gdb *gorm.DB, model interface{}, base string, excludeID uint) (string, error) {
	if base == "" {
		return "", nil
	}

	candidate := base
	for i := 0; ; i++ {
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}

		var count int64
		query := gdb.Model(model).Where("slug = ?", candidate)
		if excludeID != 0 {
			query = query.Where("id <> ?", excludeID)
		}
		if err := query.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
}

// resolveSlug applies the assignment policy shared by all content entities:
// an explicit slug from input always wins; otherwise the slug is derived from
// the title only when the stored slug is empty or the title changed. The
// returned slug is already uniqued against the table.
func resolveSlug(gdb *gorm.DB, model interface{}, explicit, current, title string, titleChanged bool, excludeID uint) (string, error) {
	if explicit = Slugify(explicit); explicit != "" {
		return uniqueSlug(gdb, model, explicit, excludeID)
	}
	if current == "" || titleChanged {
		return uniqueSlug(gdb, model, Slugify(title), excludeID)
	}
	return current, nil
}

// persistWithSlugRetry runs save, and on a unique violation of the slug
// column re-derives the next free suffix and tries again. The check-then-write
// in uniqueSlug is not atomic; the unique index plus this retry closes the
// race between concurrent writers with identical titles.
func persistWithSlugRetry(gdb *gorm.DB, row slugged, model interface{}, base string, excludeID uint, save func() error) error {
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		err := save()
		if err == nil {
			return nil
		}
		if base == "" || row.GetSlug() == "" || !isSlugConflict(err) {
			return err
		}

		next, derr := uniqueSlug(gdb, model, base, excludeID)
		if derr != nil {
			return derr
		}
		if next == row.GetSlug() {
			next = fmt.Sprintf("%s-%d", base, attempt+1)
		}
		row.SetSlug(next)
	}
	return ErrSlugExhausted
}

func isSlugConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") && strings.Contains(msg, ".slug")
}
