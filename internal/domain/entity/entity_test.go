package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_HasPendingReset(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	token := "abc"
	future := now.Add(time.Minute)
	past := now.Add(-time.Minute)

	tests := []struct {
		name string
		user User
		want bool
	}{
		{name: "no token", user: User{}, want: false},
		{name: "token without expiry", user: User{ResetToken: &token}, want: false},
		{name: "future expiry", user: User{ResetToken: &token, ResetTokenExpiresAt: &future}, want: true},
		{name: "past expiry", user: User{ResetToken: &token, ResetTokenExpiresAt: &past}, want: false},
		{name: "expiry equal to now", user: User{ResetToken: &token, ResetTokenExpiresAt: &now}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.HasPendingReset(now))
		})
	}
}

func TestUser_GravatarURL(t *testing.T) {
	u := &User{Email: "  MyEmailAddress@example.com "}

	assert.Equal(t, "https://gravatar.com/avatar/0bc83cb571cd1c50ba6f3e8a78ef1346?s=200", u.GravatarURL())
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"Wifi", "Vegan"}, NormalizeTags([]string{" Wifi", "", "Vegan", "Wifi"}))
	assert.Empty(t, NormalizeTags(nil))
}

func TestLocation_Valid(t *testing.T) {
	assert.True(t, NewLocation(-79.38, 43.65, "Toronto").Valid())
	assert.False(t, NewLocation(-190, 43.65, "").Valid())
	assert.False(t, NewLocation(10, 91, "").Valid())
}

func TestStore_AverageRating(t *testing.T) {
	s := &Store{Reviews: []*Review{{Rating: 5}, {Rating: 4}}}
	assert.InDelta(t, 4.5, s.AverageRating(), 1e-9)
	assert.Zero(t, (&Store{}).AverageRating())
}

func TestStore_IsOwnedBy(t *testing.T) {
	owner := uuid.New()
	s := &Store{AuthorID: owner}

	assert.True(t, s.IsOwnedBy(owner))
	assert.False(t, s.IsOwnedBy(uuid.New()))
}

func TestValidRating(t *testing.T) {
	assert.False(t, ValidRating(0))
	assert.True(t, ValidRating(1))
	assert.True(t, ValidRating(5))
	assert.False(t, ValidRating(6))
}
