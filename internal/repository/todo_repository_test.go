package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"todo-service/internal/model"
)

func newTestRepo(t *testing.T) (*TodoRepository, *gorm.DB) {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "data", "todos.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewTodoRepository(db), db
}

func Test_NewDB_Creates_Table_Idempotently(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "todos.db")

	first, err := NewDB(path)
	require.NoError(t, err)
	require.NoError(t, NewTodoRepository(first).Create(context.Background(), &model.Todo{Name: "keep", Priority: "low", IsFun: true}))
	sqlDB, err := first.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	second, err := NewDB(path)
	require.NoError(t, err)
	todos, err := NewTodoRepository(second).List(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "keep", todos[0].Name)
}

func Test_NewDB_Applies_Column_Defaults(t *testing.T) {
	t.Parallel()

	repo, db := newTestRepo(t)
	require.NoError(t, db.Exec("INSERT INTO todos (name) VALUES (?)", "raw").Error)

	todo, err := repo.FindByID(context.Background(), "1")
	require.NoError(t, err)

	want := model.Todo{ID: 1, Name: "raw", Priority: "low", IsComplete: false, IsFun: true}
	if diff := cmp.Diff(want, *todo); diff != "" {
		t.Fatalf("todo mismatch (-want +got):\n%s", diff)
	}
}

func Test_TodoRepository_Create_Assigns_Sequential_IDs(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepo(t)
	ctx := context.Background()

	a := model.Todo{Name: "a", Priority: "low", IsFun: true}
	b := model.Todo{Name: "b", Priority: "high", IsFun: false}
	require.NoError(t, repo.Create(ctx, &a))
	require.NoError(t, repo.Create(ctx, &b))

	assert.Equal(t, uint(1), a.ID)
	assert.Equal(t, uint(2), b.ID)

	got, err := repo.FindByID(ctx, "2")
	require.NoError(t, err)
	assert.False(t, got.IsFun)
	assert.Equal(t, "high", got.Priority)
}

func Test_TodoRepository_List_Is_Ordered_And_Stable(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepo(t)
	ctx := context.Background()

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, name := range []string{"one", "two", "three"} {
		require.NoError(t, repo.Create(ctx, &model.Todo{Name: name, Priority: "low", IsFun: true}))
	}

	first, err := repo.List(ctx)
	require.NoError(t, err)
	second, err := repo.List(ctx)
	require.NoError(t, err)

	require.Len(t, first, 3)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("list order changed (-first +second):\n%s", diff)
	}
	for i, todo := range first {
		assert.Equal(t, uint(i+1), todo.ID)
	}
}

func Test_TodoRepository_FindByID_Misses(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &model.Todo{Name: "x", Priority: "low", IsFun: true}))

	for _, id := range []string{"2", "abc", "", "1 OR 1=1"} {
		_, err := repo.FindByID(ctx, id)
		assert.Truef(t, errors.Is(err, gorm.ErrRecordNotFound), "id %q: got %v", id, err)
	}
}

func Test_TodoRepository_Delete_Reports_Rows_Affected(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &model.Todo{Name: "x", Priority: "low", IsFun: true}))

	n, err := repo.Delete(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Delete(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = repo.Delete(ctx, "nope")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func Test_TodoRepository_Stats(t *testing.T) {
	t.Parallel()

	repo, db := newTestRepo(t)
	ctx := context.Background()

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Total)
	assert.Empty(t, stats.ByPriority)

	require.NoError(t, repo.Create(ctx, &model.Todo{Name: "a", Priority: "low", IsFun: true}))
	require.NoError(t, repo.Create(ctx, &model.Todo{Name: "b", Priority: "low", IsFun: false}))
	require.NoError(t, repo.Create(ctx, &model.Todo{Name: "c", Priority: "high", IsFun: true}))
	require.NoError(t, db.Exec("UPDATE todos SET isComplete = 1 WHERE id = 3").Error)

	stats, err = repo.Stats(ctx)
	require.NoError(t, err)

	want := model.Stats{
		Total:     3,
		Completed: 1,
		Fun:       2,
		ByPriority: []model.PriorityCount{
			{Priority: "low", Count: 2},
			{Priority: "high", Count: 1},
		},
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, int64(2), stats.Open())
}

func Test_EnsureDirForSQLite_Skips_Memory_DSNs(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ensureDirForSQLite(":memory:"))
	assert.NoError(t, ensureDirForSQLite("file:x?mode=memory&cache=shared"))
	assert.NoError(t, ensureDirForSQLite("todos.db"))
}
