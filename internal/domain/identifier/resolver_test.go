package identifier

import (
	"context"
	"strings"
	"testing"

	domainerrors "delicious/internal/domain/errors"
	"delicious/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLookup struct {
	slugs     []string
	err       error
	gotBase   string
	gotID     uuid.UUID
	callCount int
}

func (s *stubLookup) SlugsWithPrefix(_ context.Context, base string, excludeID uuid.UUID) ([]string, error) {
	s.callCount++
	s.gotBase = base
	s.gotID = excludeID

	return s.slugs, s.err
}

func TestBase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "spaces and case", in: "Wild Wings Cafe", want: "wild-wings-cafe"},
		{name: "surrounding whitespace", in: "  Pizza Place  ", want: "pizza-place"},
		{name: "punctuation collapses", in: "Sushi -- Bar!!", want: "sushi-bar"},
		{name: "accents transliterate", in: "Café Crème", want: "cafe-creme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Base(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBase_RejectsEmptyNames(t *testing.T) {
	for _, in := range []string{"", "   ", "!!!"} {
		_, err := Base(in)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "input %q", in)
	}
}

func TestResolve_NoCollisionReturnsBase(t *testing.T) {
	lookup := &stubLookup{slugs: []string{"pizza-palace", "pizzas"}}

	got, err := Resolve(context.Background(), "Pizza", lookup, uuid.Nil)

	require.NoError(t, err)
	assert.Equal(t, "pizza", got)
	assert.Equal(t, "pizza", lookup.gotBase)
}

func TestResolve_CountsCollisions(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{name: "one collision", existing: []string{"pizza"}, want: "pizza-2"},
		{name: "two collisions", existing: []string{"pizza", "pizza-2"}, want: "pizza-3"},
		{name: "case insensitive", existing: []string{"PIZZA", "Pizza-2"}, want: "pizza-3"},
		{name: "count not max suffix", existing: []string{"pizza", "pizza-7"}, want: "pizza-3"},
		{name: "bare hyphen counts", existing: []string{"pizza-"}, want: "pizza-2"},
		{name: "longer names ignored", existing: []string{"pizza", "pizza-palace", "pizza-2b"}, want: "pizza-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(context.Background(), "Pizza", &stubLookup{slugs: tt.existing}, uuid.Nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_KCollisionsYieldsKPlusOne(t *testing.T) {
	existing := []string{"taco"}
	for k := 1; k <= 5; k++ {
		got, err := Resolve(context.Background(), "Taco", &stubLookup{slugs: existing}, uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, "taco-"+string(rune('0'+k+1)), got)
		existing = append(existing, got)
	}
}

func TestResolve_PassesExcludeID(t *testing.T) {
	id := uuid.New()
	lookup := &stubLookup{}

	_, err := Resolve(context.Background(), "Bakery", lookup, id)

	require.NoError(t, err)
	assert.Equal(t, id, lookup.gotID)
}

func TestResolve_InvalidNameSkipsLookup(t *testing.T) {
	lookup := &stubLookup{}

	_, err := Resolve(context.Background(), "   ", lookup, uuid.Nil)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Zero(t, lookup.callCount)
}

func TestResolve_LookupError(t *testing.T) {
	lookup := &stubLookup{err: errors.New("db down")}

	_, err := Resolve(context.Background(), "Bakery", lookup, uuid.Nil)

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "db down"))
}

func TestDisambiguate_QuotesRegexMeta(t *testing.T) {
	assert.Equal(t, "a_b", Disambiguate("a_b", []string{"axb"}))
}
