package services_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"todo-service/internal/application/command"
	"todo-service/internal/application/services"
	"todo-service/internal/config"
	"todo-service/internal/domain/entities"
	"todo-service/internal/domain/repositories"
	"todo-service/internal/infrastructure"
	"todo-service/internal/infrastructure/db"
	"todo-service/internal/infrastructure/db/dbtest"
)

type fixture struct {
	uow      repositories.UnitOfWork
	users    *services.UserService
	register *services.RegisterService
	auth     *services.AuthService
	lists    *services.TodoListService
	items    *services.TodoListItemService
	tokens   *infrastructure.JWTService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithDB(t, dbtest.Open(t))
}

func newFixtureWithDB(t *testing.T, gdb *gorm.DB) *fixture {
	t.Helper()

	logger := zerolog.Nop()
	uow := db.NewUnitOfWork(gdb, db.DriverSQLite)
	hasher := infrastructure.NewBcryptHasher(bcrypt.MinCost)
	tokens := infrastructure.NewJWTService("secret", "todo-service", time.Hour)
	throttle := infrastructure.NewRateLimiter(time.Minute, 3)
	users := services.NewUserService(uow, hasher, logger)

	return &fixture{
		uow:      uow,
		users:    users,
		register: services.NewRegisterService(uow, users, logger),
		auth:     services.NewAuthService(uow.Users(), hasher, tokens, throttle, logger),
		lists:    services.NewTodoListService(uow, logger),
		items:    services.NewTodoListItemService(uow, logger),
		tokens:   tokens,
	}
}

func (f *fixture) registerUser(t *testing.T, userName string) {
	t.Helper()
	require.NoError(t, f.register.Register(context.Background(), &command.RegisterUserCommand{
		UserName: userName,
		Password: "pw1",
	}))
}

func (f *fixture) createList(t *testing.T, userName, title string) int64 {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.lists.CreateTodoList(ctx, &command.CreateTodoListCommand{Title: title, OwnerUserName: userName}))

	result, err := f.lists.ListAllForUser(ctx, userName)
	require.NoError(t, err)
	for _, list := range result.Result {
		if list.Title == title {
			return list.Id
		}
	}
	t.Fatalf("list %q not found for %s", title, userName)
	return 0
}

func TestRegisterRejectsDuplicateUserName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.registerUser(t, "alice")

	err := f.register.Register(ctx, &command.RegisterUserCommand{UserName: "alice", Password: "other"})
	require.ErrorIs(t, err, entities.ErrAlreadyExists)
	assert.EqualError(t, err, "username is already exist")

	_, err = f.users.CreateUser(ctx, &command.CreateUserCommand{UserName: "alice", Password: "other"})
	require.ErrorIs(t, err, entities.ErrAlreadyExists)
	assert.EqualError(t, err, "username already exist.")

	// the first password still works, nothing was overwritten
	_, err = f.auth.LoginUser(ctx, &command.LoginUserCommand{UserName: "alice", Password: "pw1"})
	assert.NoError(t, err)
}

func TestCreateUserStoresHashNotPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.users.CreateUser(ctx, &command.CreateUserCommand{UserName: "bob", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "bob", result.Result.UserName)
	assert.NotZero(t, result.Result.Id)

	stored, err := f.uow.Users().FindByUserName(ctx, "bob")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "pw1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw1")))
}

func TestCreateUserRejectsBlankCredentials(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.CreateUser(context.Background(), &command.CreateUserCommand{UserName: " ", Password: "pw1"})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	err = f.register.Register(context.Background(), &command.RegisterUserCommand{UserName: "carol"})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}

func TestLoginUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerUser(t, "alice")

	result, err := f.auth.LoginUser(ctx, &command.LoginUserCommand{UserName: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "alice", result.User.UserName)

	_, err = f.auth.LoginUser(ctx, &command.LoginUserCommand{UserName: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, entities.ErrAuthenticationFailed)

	_, err = f.auth.LoginUser(ctx, &command.LoginUserCommand{UserName: "nobody", Password: "pw1"})
	assert.ErrorIs(t, err, entities.ErrAuthenticationFailed)
}

func TestLoginUserThrottlesRepeatedFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerUser(t, "alice")

	for i := 0; i < 3; i++ {
		_, err := f.auth.LoginUser(ctx, &command.LoginUserCommand{UserName: "alice", Password: "wrong"})
		require.ErrorIs(t, err, entities.ErrAuthenticationFailed)
	}

	_, err := f.auth.LoginUser(ctx, &command.LoginUserCommand{UserName: "alice", Password: "pw1"})
	assert.ErrorIs(t, err, entities.ErrTooManyAttempts)
}

func TestIssueToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerUser(t, "alice")

	result, err := f.auth.IssueToken(ctx, &command.LoginUserCommand{UserName: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.True(t, result.ExpiresAt.After(time.Now()))

	subject, err := f.tokens.ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	_, err = f.auth.IssueToken(ctx, &command.LoginUserCommand{UserName: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, entities.ErrAuthenticationFailed)
}

func TestListTitlesAreUniquePerOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerUser(t, "alice")
	f.registerUser(t, "bob")

	f.createList(t, "alice", "Groceries")
	f.createList(t, "bob", "Groceries")

	err := f.lists.CreateTodoList(ctx, &command.CreateTodoListCommand{Title: "Groceries", OwnerUserName: "alice"})
	require.ErrorIs(t, err, entities.ErrAlreadyExists)
	assert.EqualError(t, err, "title is exist for this user")

	err = f.lists.CreateTodoList(ctx, &command.CreateTodoListCommand{Title: "Groceries", OwnerUserName: "nobody"})
	assert.ErrorIs(t, err, entities.ErrNotFound)

	err = f.lists.CreateTodoList(ctx, &command.CreateTodoListCommand{Title: "", OwnerUserName: "alice"})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}

func TestListAllForUserOnlyReturnsOwnLists(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerUser(t, "alice")
	f.registerUser(t, "bob")

	f.createList(t, "alice", "Groceries")
	f.createList(t, "alice", "Chores")
	f.createList(t, "bob", "Work")

	result, err := f.lists.ListAllForUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, result.Result, 2)
	assert.Equal(t, "Groceries", result.Result[0].Title)
	assert.Equal(t, "Chores", result.Result[1].Title)

	fresh := "carol"
	f.registerUser(t, fresh)
	result, err = f.lists.ListAllForUser(ctx, fresh)
	require.NoError(t, err)
	assert.NotNil(t, result.Result)
	assert.Empty(t, result.Result)

	_, err = f.lists.ListAllForUser(ctx, "nobody")
	require.ErrorIs(t, err, entities.ErrNotFound)
	assert.EqualError(t, err, "User not found with username: nobody")
}

func TestDeleteTodoListRemovesItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerUser(t, "alice")
	listId := f.createList(t, "alice", "Groceries")

	require.NoError(t, f.lists.AddItemToList(ctx, &command.AddItemToListCommand{ListId: listId, Title: "Milk"}))
	require.NoError(t, f.items.CreateItem(ctx, &command.CreateTodoListItemCommand{ListId: listId, Title: "Bread"}))

	require.NoError(t, f.lists.DeleteTodoList(ctx, &command.DeleteTodoListCommand{ListId: listId}))

	items, err := f.items.ListItems(ctx, listId)
	require.NoError(t, err)
	assert.Empty(t, items.Result)

	err = f.lists.DeleteTodoList(ctx, &command.DeleteTodoListCommand{ListId: listId})
	require.ErrorIs(t, err, entities.ErrNotFound)
	assert.EqualError(t, err, "List not found")
}

func TestAddItemRequiresExistingList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.lists.AddItemToList(ctx, &command.AddItemToListCommand{ListId: 42, Title: "Milk"})
	assert.ErrorIs(t, err, entities.ErrNotFound)

	err = f.items.CreateItem(ctx, &command.CreateTodoListItemCommand{ListId: 42, Title: "Milk"})
	require.ErrorIs(t, err, entities.ErrNotFound)
	assert.EqualError(t, err, "Todolist not found")
}

func TestItemsDefaultToNotDone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerUser(t, "alice")
	listId := f.createList(t, "alice", "Groceries")

	done := true
	require.NoError(t, f.items.CreateItem(ctx, &command.CreateTodoListItemCommand{ListId: listId, Title: "Milk"}))
	require.NoError(t, f.items.CreateItem(ctx, &command.CreateTodoListItemCommand{ListId: listId, Title: "Eggs", IsDone: &done}))

	items, err := f.items.ListItems(ctx, listId)
	require.NoError(t, err)
	require.Len(t, items.Result, 2)
	assert.False(t, items.Result[0].IsDone)
	assert.True(t, items.Result[1].IsDone)
}

func TestToggleDoneIsAnInvolution(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerUser(t, "alice")
	listId := f.createList(t, "alice", "Groceries")
	require.NoError(t, f.lists.AddItemToList(ctx, &command.AddItemToListCommand{ListId: listId, Title: "Milk"}))

	items, err := f.items.ListItems(ctx, listId)
	require.NoError(t, err)
	require.Len(t, items.Result, 1)
	itemId := items.Result[0].Id

	toggled, err := f.items.ToggleDone(ctx, &command.ToggleTodoListItemCommand{ItemId: itemId})
	require.NoError(t, err)
	assert.True(t, toggled.Result.IsDone)

	toggled, err = f.items.ToggleDone(ctx, &command.ToggleTodoListItemCommand{ItemId: itemId})
	require.NoError(t, err)
	assert.False(t, toggled.Result.IsDone)

	items, err = f.items.ListItems(ctx, listId)
	require.NoError(t, err)
	assert.False(t, items.Result[0].IsDone)

	_, err = f.items.ToggleDone(ctx, &command.ToggleTodoListItemCommand{ItemId: 9999})
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestItemDeleteContracts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerUser(t, "alice")
	listId := f.createList(t, "alice", "Groceries")
	require.NoError(t, f.lists.AddItemToList(ctx, &command.AddItemToListCommand{ListId: listId, Title: "Milk"}))
	require.NoError(t, f.lists.AddItemToList(ctx, &command.AddItemToListCommand{ListId: listId, Title: "Bread"}))

	items, err := f.items.ListItems(ctx, listId)
	require.NoError(t, err)
	require.Len(t, items.Result, 2)
	milk, bread := items.Result[0].Id, items.Result[1].Id

	// unchecked delete
	require.NoError(t, f.items.DeleteItem(ctx, &command.DeleteTodoListItemCommand{ItemId: milk}))
	require.NoError(t, f.items.DeleteItem(ctx, &command.DeleteTodoListItemCommand{ItemId: milk}))

	// checked delete
	require.NoError(t, f.lists.RemoveItemFromList(ctx, &command.RemoveItemFromListCommand{ItemId: bread}))
	err = f.lists.RemoveItemFromList(ctx, &command.RemoveItemFromListCommand{ItemId: bread})
	require.ErrorIs(t, err, entities.ErrNotFound)
	assert.EqualError(t, err, "Item not found")

	items, err = f.items.ListItems(ctx, listId)
	require.NoError(t, err)
	assert.Empty(t, items.Result)
}

func TestListItemsForUnknownListIsEmpty(t *testing.T) {
	f := newFixture(t)

	items, err := f.items.ListItems(context.Background(), 12345)
	require.NoError(t, err)
	assert.NotNil(t, items.Result)
	assert.Empty(t, items.Result)
}

func TestConcurrentListCreationOnFileDatabase(t *testing.T) {
	gdb, err := db.Open(db.Options{
		Driver:       db.DriverSQLite,
		DSN:          config.SQLiteFileDSN(filepath.Join(t.TempDir(), "todo.db")),
		MaxOpenConns: 10,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })
	require.NoError(t, db.Migrate(gdb))

	f := newFixtureWithDB(t, gdb)
	f.registerUser(t, "alice")
	ctx := context.Background()

	const writers = 30
	errs := make(chan error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- f.lists.CreateTodoList(ctx, &command.CreateTodoListCommand{
				Title:         fmt.Sprintf("list-%d", i),
				OwnerUserName: "alice",
			})
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	result, err := f.lists.ListAllForUser(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, result.Result, writers)
}
