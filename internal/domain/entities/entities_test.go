package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainErrorMatchesKind(t *testing.T) {
	err := NewNotFoundError("List not found")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrAlreadyExists))
	assert.Equal(t, "List not found", err.Error())

	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, ErrNotFound, domainErr.Kind)
}

func TestNewValidatedUser(t *testing.T) {
	user := NewUser("alice", "hash")
	validated, err := NewValidatedUser(user)
	require.NoError(t, err)
	assert.Same(t, user, validated.GetUser())

	_, err = NewValidatedUser(NewUser("", "hash"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewValidatedUser(NewUser("alice", ""))
	assert.ErrorIs(t, err, ErrInvalidInput)

	broken := NewUser("alice", "hash")
	broken.CreatedAt = broken.UpdatedAt.Add(time.Hour)
	_, err = NewValidatedUser(broken)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewTodoList(t *testing.T) {
	list, err := NewTodoList("Groceries", 7)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", list.Title)
	assert.Equal(t, int64(7), list.OwnerId)

	_, err = NewTodoList("   ", 7)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewTodoList("Groceries", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewTodoListItem(t *testing.T) {
	item, err := NewTodoListItem("Milk", nil, 3)
	require.NoError(t, err)
	assert.False(t, item.IsDone)
	assert.Equal(t, int64(3), item.ListId)

	done := true
	item, err = NewTodoListItem("Milk", &done, 3)
	require.NoError(t, err)
	assert.True(t, item.IsDone)

	item.ToggleDone()
	assert.False(t, item.IsDone)
	item.ToggleDone()
	assert.True(t, item.IsDone)

	_, err = NewTodoListItem("", nil, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewTodoListItem("Milk", nil, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
