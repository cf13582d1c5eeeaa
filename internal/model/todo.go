package model

// Todo is the single persisted entity. Flags are booleans in Go and 0/1
// integers in the todos table and on the JSON wire.
type Todo struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Name       string `gorm:"column:name;not null"`
	Priority   string `gorm:"column:priority"`
	IsComplete bool   `gorm:"column:isComplete;type:integer"`
	IsFun      bool   `gorm:"column:isFun;type:integer"`
}

func (Todo) TableName() string {
	return "todos"
}

// TodoView is the JSON representation served to clients.
type TodoView struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Priority   string `json:"priority"`
	IsComplete int    `json:"isComplete"`
	IsFun      int    `json:"isFun"`
}

func (t Todo) View() TodoView {
	return TodoView{
		ID:         t.ID,
		Name:       t.Name,
		Priority:   t.Priority,
		IsComplete: flag(t.IsComplete),
		IsFun:      flag(t.IsFun),
	}
}

// Views converts a slice of todos, never returning nil.
func Views(todos []Todo) []TodoView {
	views := make([]TodoView, 0, len(todos))
	for _, t := range todos {
		views = append(views, t.View())
	}
	return views
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
