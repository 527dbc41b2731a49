// Package identifier derives URL-safe store slugs from display names.
//
// Disambiguation counts existing colliding slugs: with N matches of
// base(-digits)? the new slug is base-(N+1). The count is read before the
// write, so two concurrent creations of the same name can compute the same
// slug; the unique index on stores.slug rejects the loser, which resolves again.
// The count policy can also reuse a suffix freed by a rename.
package identifier

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	domainerrors "delicious/internal/domain/errors"
	"delicious/internal/errors"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Lookup lists existing slugs starting with base. Over-matching is fine.
type Lookup interface {
	SlugsWithPrefix(ctx context.Context, base string, excludeID uuid.UUID) ([]string, error)
}

// Base normalizes a name into a lowercase hyphen-delimited slug.
func Base(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}

	base := slug.Make(name)
	if base == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("name must contain letters or digits")
	}

	return base, nil
}

// Resolve returns the slug for name given the slugs already in use.
// excludeID is the store being renamed, uuid.Nil on create.
func Resolve(ctx context.Context, name string, lookup Lookup, excludeID uuid.UUID) (string, error) {
	base, err := Base(name)
	if err != nil {
		return "", err
	}

	candidates, err := lookup.SlugsWithPrefix(ctx, base, excludeID)
	if err != nil {
		return "", errors.Wrap(err, "failed to look up existing slugs")
	}

	return Disambiguate(base, candidates), nil
}

// Disambiguate applies the count policy to base over the existing slugs.
func Disambiguate(base string, existing []string) string {
	pattern := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(base) + `(-[0-9]*)?$`)

	matches := 0
	for _, s := range existing {
		if pattern.MatchString(s) {
			matches++
		}
	}

	if matches == 0 {
		return base
	}

	return base + "-" + strconv.Itoa(matches+1)
}
