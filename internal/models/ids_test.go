package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendUniqueID(t *testing.T) {
	ids := []string{"a"}
	ids = AppendUniqueID(ids, "b")
	ids = AppendUniqueID(ids, "a")
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestRemoveID(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, RemoveID([]string{"a", "b", "c"}, "b"))
	assert.Equal(t, []string{"a", "b"}, RemoveID([]string{"a", "b"}, "x"))
	assert.Empty(t, RemoveID([]string{"a"}, "a"))
}

func TestChatSameMembers(t *testing.T) {
	c := &Chat{Members: []string{"a", "b"}}
	assert.True(t, c.SameMembers([]string{"b", "a"}))
	assert.True(t, c.SameMembers([]string{"a", "b"}))
	assert.False(t, c.SameMembers([]string{"a", "c"}))
	assert.False(t, c.SameMembers([]string{"a"}))
}

func TestUserHasBlocked(t *testing.T) {
	u := &User{BlockedUsers: []string{"x"}}
	assert.True(t, u.HasBlocked("x"))
	assert.False(t, u.HasBlocked("y"))
}
