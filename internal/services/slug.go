package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"eventsapi/internal/domain"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxSlugLen leaves room under the 255-char column for a numeric suffix.
const maxSlugLen = 200

// errSlugSpaceExhausted marks a conflict that retrying cannot fix.
var errSlugSpaceExhausted = fmt.Errorf("%w: slug suffixes exhausted", domain.ErrConflict)

// Slugify returns the lowercase, hyphen-separated ASCII form of title.
// Accents are stripped ("Café" -> "cafe"); any other non-alphanumeric run becomes one hyphen.
// The result may be empty when title has no ASCII letters or digits.
func Slugify(title string) string {
	// transformers are stateful, so the chain is built per call
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	slug := b.String()
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
		if i := strings.LastIndexByte(slug, '-'); i > 0 {
			slug = slug[:i]
		}
		slug = strings.TrimRight(slug, "-")
	}
	return slug
}

// pickSlug returns base, or base-N for the smallest N not in taken.
// With k taken slugs some N <= k is free, so the search never runs past len(taken).
func pickSlug(base string, taken []string, maxSuffix int) (string, error) {
	used := make(map[string]struct{}, len(taken))
	for _, s := range taken {
		used[s] = struct{}{}
	}
	if _, ok := used[base]; !ok {
		return base, nil
	}
	for n := 1; n <= len(taken); n++ {
		if n > maxSuffix {
			break
		}
		candidate := fmt.Sprintf("%s-%d", base, n)
		if _, ok := used[candidate]; !ok {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: no free slug for %q within %d suffixes", errSlugSpaceExhausted, base, maxSuffix)
}

// assignSlug derives the slug for an existing event row and stores it with one update.
// Titles without slug characters fall back to "event-<id>".
func assignSlug(ctx context.Context, events domain.EventRepository, id int64, title string, maxSuffix int) (string, error) {
	base := Slugify(title)
	if base == "" {
		base = fmt.Sprintf("event-%d", id)
	}
	taken, err := events.ListSlugs(ctx, base, id)
	if err != nil {
		return "", fmt.Errorf("list slugs: %w", err)
	}
	slug, err := pickSlug(base, taken, maxSuffix)
	if err != nil {
		return "", err
	}
	if err := events.SetSlug(ctx, id, slug); err != nil {
		return "", fmt.Errorf("set slug: %w", err)
	}
	return slug, nil
}

// isSlugRace reports whether err is a unique-index collision another attempt may avoid.
func isSlugRace(err error) bool {
	return errors.Is(err, domain.ErrConflict) && !errors.Is(err, errSlugSpaceExhausted)
}
