package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"todo-service/internal/model"
)

const (
	defaultPriority = "low"
	notifyTimeout   = 5 * time.Second
)

// TodoStore is the persistence the service needs. Every method is a single
// statement against the store.
type TodoStore interface {
	Create(ctx context.Context, todo *model.Todo) error
	List(ctx context.Context) ([]model.Todo, error)
	FindByID(ctx context.Context, id string) (*model.Todo, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// TodoInput represents data required to create a todo. Nil optional fields
// take their defaults.
type TodoInput struct {
	Name     string
	Priority *string
	IsFun    *bool
}

// TodoService wraps todo-related business logic.
type TodoService struct {
	store    TodoStore
	notifier Notifier
}

func NewTodoService(store TodoStore, notifier Notifier) *TodoService {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &TodoService{store: store, notifier: notifier}
}

func (s *TodoService) Create(ctx context.Context, input TodoInput) (*model.Todo, error) {
	if input.Name == "" {
		return nil, &ValidationError{Message: "Name is required"}
	}

	todo := model.Todo{
		Name:     input.Name,
		Priority: defaultPriority,
		IsFun:    true,
	}
	if input.Priority != nil {
		todo.Priority = *input.Priority
	}
	if input.IsFun != nil {
		todo.IsFun = *input.IsFun
	}

	if err := s.store.Create(ctx, &todo); err != nil {
		return nil, &StorageError{Op: "create todo", Err: err}
	}

	s.notify(ctx, fmt.Sprintf("New todo #%d: %s (priority %s)", todo.ID, todo.Name, todo.Priority))
	return &todo, nil
}

// List returns every stored todo in id order.
func (s *TodoService) List(ctx context.Context) ([]model.Todo, error) {
	todos, err := s.store.List(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list todos", Err: err}
	}
	return todos, nil
}

// Get returns ErrNotFound when no row matches id, including non-numeric ids.
func (s *TodoService) Get(ctx context.Context, id string) (*model.Todo, error) {
	todo, err := s.store.FindByID(ctx, id)
	switch {
	case err == nil:
		return todo, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	default:
		return nil, &StorageError{Op: "get todo", Err: err}
	}
}

// Delete removes the todo permanently. Deleting an unknown id is ErrNotFound.
func (s *TodoService) Delete(ctx context.Context, id string) error {
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return &StorageError{Op: "delete todo", Err: err}
	}
	if n == 0 {
		return ErrNotFound
	}

	s.notify(ctx, fmt.Sprintf("Todo #%s deleted", id))
	return nil
}

// notify is best effort: a failing notifier never fails the request.
func (s *TodoService) notify(ctx context.Context, text string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()
	if err := s.notifier.Notify(ctx, text); err != nil {
		log.Printf("[warn] notify: %v", err)
	}
}
