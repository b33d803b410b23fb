package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullBookmark(name string) Bookmark {
	return Bookmark{Name: name, Host: "example.com", Port: 22, User: "deploy", Path: "/srv", Key: "/home/me/.ssh/id_ed25519"}
}

func TestValidateMissingFields(t *testing.T) {
	tests := []struct {
		name     string
		bookmark Bookmark
		want     []string
	}{
		{
			name:     "complete with key",
			bookmark: fullBookmark("a"),
			want:     []string{},
		},
		{
			name:     "complete with password",
			bookmark: Bookmark{Name: "a", Host: "h", Port: 22, User: "u", Path: "/", Pass: "secret"},
			want:     []string{},
		},
		{
			name:     "key and password together",
			bookmark: Bookmark{Name: "a", Host: "h", Port: 22, User: "u", Path: "/", Key: "/k", Pass: "secret"},
			want:     []string{},
		},
		{
			name:     "no credential",
			bookmark: Bookmark{Name: "a", Host: "h", Port: 22, User: "u", Path: "/"},
			want:     []string{MissingCredential},
		},
		{
			name:     "missing host and user",
			bookmark: Bookmark{Name: "a", Port: 22, Path: "/", Key: "/k"},
			want:     []string{"host", "user"},
		},
		{
			name:     "empty bookmark",
			bookmark: Bookmark{},
			want:     []string{"name", "host", "port", "user", "path", MissingCredential},
		},
		{
			name:     "name escaping the mount root",
			bookmark: Bookmark{Name: "../../escaped", Host: "h", Port: 22, User: "u", Path: "/", Key: "/k"},
			want:     []string{"name"},
		},
		{
			name:     "name with separator",
			bookmark: Bookmark{Name: "team/web", Host: "h", Port: 22, User: "u", Path: "/", Key: "/k"},
			want:     []string{"name"},
		},
		{
			name:     "dot dot name",
			bookmark: Bookmark{Name: "..", Host: "h", Port: 22, User: "u", Path: "/", Key: "/k"},
			want:     []string{"name"},
		},
		{
			name:     "dotted name",
			bookmark: Bookmark{Name: "web.prod", Host: "h", Port: 22, User: "u", Path: "/", Key: "/k"},
			want:     []string{},
		},
		{
			name:     "port out of range",
			bookmark: Bookmark{Name: "a", Host: "h", Port: 70000, User: "u", Path: "/", Key: "/k"},
			want:     []string{"port"},
		},
		{
			name:     "negative port",
			bookmark: Bookmark{Name: "a", Host: "h", Port: -1, User: "u", Path: "/", Key: "/k"},
			want:     []string{"port"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{Source: "settings.json", HasBookmarks: true, Bookmarks: []Bookmark{tt.bookmark}}
			r := Validate(s)

			require.Len(t, r.Entries, 1)
			assert.Equal(t, 1, r.Entries[0].Index)
			assert.Equal(t, tt.want, r.Entries[0].Missing)
			assert.Equal(t, len(tt.want) > 0, r.HasError)
		})
	}
}

func TestValidateReportsPerEntry(t *testing.T) {
	s := &Settings{
		Source:       "settings.json",
		HasBookmarks: true,
		Bookmarks: []Bookmark{
			fullBookmark("a"),
			{Name: "b", Host: "h", Port: 22, User: "u"},
			fullBookmark("c"),
		},
	}

	r := Validate(s)
	assert.True(t, r.HasError)
	require.Len(t, r.Entries, 3)
	assert.Empty(t, r.Entries[0].Missing)
	assert.Equal(t, []string{"path", MissingCredential}, r.Entries[1].Missing)
	assert.Empty(t, r.Entries[2].Missing)

	invalid := r.Invalid()
	require.Len(t, invalid, 1)
	assert.Equal(t, 2, invalid[0].Index)
	assert.True(t, errors.Is(r.Err(), ErrInvalidSettings))
}

func TestValidateNoBookmarks(t *testing.T) {
	r := Validate(&Settings{Source: "settings.json"})
	assert.True(t, r.HasError)
	assert.Empty(t, r.Entries)
	assert.Contains(t, r.Problem, "no bookmarks list")
	assert.ErrorIs(t, r.Err(), ErrInvalidSettings)
}

func TestValidateEmptyList(t *testing.T) {
	r := Validate(&Settings{Source: "settings.json", HasBookmarks: true})
	assert.False(t, r.HasError)
	assert.NoError(t, r.Err())
}

func TestValidateUnreadable(t *testing.T) {
	r := Validate(Unreadable("missing.json", ErrNoSettings))
	assert.True(t, r.HasError)
	assert.Empty(t, r.Entries)
	assert.Equal(t, ErrNoSettings.Error(), r.Problem)
}

func TestValidateDuplicates(t *testing.T) {
	s := &Settings{
		HasBookmarks: true,
		Bookmarks:    []Bookmark{fullBookmark("a"), fullBookmark("b"), fullBookmark("a"), fullBookmark("a")},
	}

	r := Validate(s)
	assert.False(t, r.HasError)
	assert.Equal(t, []string{"a"}, r.Duplicates)
}

func TestFindFirstMatch(t *testing.T) {
	first := fullBookmark("a")
	second := fullBookmark("a")
	second.Host = "other.example.com"
	s := &Settings{HasBookmarks: true, Bookmarks: []Bookmark{first, second}}

	got, ok := s.Find("a")
	require.True(t, ok)
	assert.Equal(t, "example.com", got.Host)

	_, ok = s.Find("A")
	assert.False(t, ok)
}
