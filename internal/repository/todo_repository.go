package repository

import (
	"context"

	"gorm.io/gorm"

	"todo-service/internal/model"
)

type statsTotals struct {
	Total     int64
	Completed int64
	Fun       int64
}

// TodoRepository runs the single-statement queries behind the todo API.
type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create inserts todo and fills in the id assigned by the store.
func (r *TodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// List returns every row ordered by id.
func (r *TodoRepository) List(ctx context.Context) ([]model.Todo, error) {
	var todos []model.Todo
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// FindByID binds id verbatim; SQLite's numeric affinity makes "7" match row 7
// while a non-numeric id matches nothing. Returns gorm.ErrRecordNotFound on miss.
func (r *TodoRepository) FindByID(ctx context.Context, id string) (*model.Todo, error) {
	var todo model.Todo
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// Delete removes the row matching id and reports how many rows went away.
func (r *TodoRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Todo{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Stats aggregates the table for the digest.
func (r *TodoRepository) Stats(ctx context.Context) (model.Stats, error) {
	var stats model.Stats
	db := r.db.WithContext(ctx)

	var totals statsTotals
	if err := db.Model(&model.Todo{}).
		Select("COUNT(*) AS total, COALESCE(SUM(isComplete), 0) AS completed, COALESCE(SUM(isFun), 0) AS fun").
		Scan(&totals).Error; err != nil {
		return stats, err
	}
	stats.Total = totals.Total
	stats.Completed = totals.Completed
	stats.Fun = totals.Fun

	if err := db.Model(&model.Todo{}).
		Select("COALESCE(priority, '') AS priority, COUNT(*) AS count").
		Group("priority").
		Order("count DESC, priority ASC").
		Scan(&stats.ByPriority).Error; err != nil {
		return stats, err
	}
	return stats, nil
}
