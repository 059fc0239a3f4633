// Package slug derives URL-safe identifiers from human-entered titles.
package slug

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxSuffix bounds the numeric suffix search in Unique.
const MaxSuffix = 1000

var (
	ErrEmpty     = errors.New("slug: title yields an empty slug")
	ErrExhausted = errors.New("slug: collision suffixes exhausted")
)

var (
	invalidChars = regexp.MustCompile(`[^\w\s-]`)
	separators   = regexp.MustCompile(`[-\s]+`)
	valid        = regexp.MustCompile(`^[a-z0-9_]+(?:-[a-z0-9_]+)*$`)
)

// ExistsFunc reports whether a slug is already taken in the caller's table.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Make converts s to a lowercase, hyphenated ASCII slug.
// Accents are folded ("Déjà vu" -> "deja-vu"), other non-ASCII runes are dropped.
func Make(s string) string {
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)

	ascii, _, err := transform.String(t, s)
	if err != nil {
		ascii = s
	}

	ascii = strings.ToLower(ascii)
	ascii = invalidChars.ReplaceAllString(ascii, "")
	ascii = separators.ReplaceAllString(ascii, "-")

	return strings.Trim(ascii, "-_")
}

// Unique returns base if it is free, otherwise the first free base-1, base-2, ...
// When maxLen is positive every candidate is at most maxLen bytes: the base is
// cut short to leave room for the suffix.
func Unique(ctx context.Context, base string, maxLen int, exists ExistsFunc) (string, error) {
	const op = "slug.Unique"

	if base == "" {
		return "", ErrEmpty
	}

	candidate := fit(base, "", maxLen)
	if candidate == "" {
		return "", ErrEmpty
	}
	for i := 1; ; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		if !taken {
			return candidate, nil
		}
		if i > MaxSuffix {
			return "", fmt.Errorf("%s: %q: %w", op, base, ErrExhausted)
		}

		suffix := fmt.Sprintf("-%d", i)
		head := fit(base, suffix, maxLen)
		if head == "" {
			return "", fmt.Errorf("%s: %q: %w", op, base, ErrExhausted)
		}
		candidate = head + suffix
	}
}

// fit trims base so that base+suffix stays within maxLen. Slugs are ASCII,
// so cutting at a byte offset is safe.
func fit(base, suffix string, maxLen int) string {
	if maxLen <= 0 || len(base)+len(suffix) <= maxLen {
		return base
	}
	n := maxLen - len(suffix)
	if n <= 0 {
		return ""
	}
	return strings.TrimRight(base[:n], "-_")
}

// Valid reports whether s is already in slug form.
func Valid(s string) bool {
	return valid.MatchString(s)
}

// Derive builds a unique slug of at most maxLen bytes from title. When title
// has nothing to slugify, fallback is used as the base instead.
func Derive(ctx context.Context, title, fallback string, maxLen int, exists ExistsFunc) (string, error) {
	base := Make(title)
	if base == "" {
		base = fallback
	}

	return Unique(ctx, base, maxLen, exists)
}
