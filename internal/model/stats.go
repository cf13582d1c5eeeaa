package model

// PriorityCount is the number of todos sharing a priority label.
type PriorityCount struct {
	Priority string
	Count    int64
}

// Stats aggregates the todos table for the periodic digest.
type Stats struct {
	Total      int64
	Completed  int64
	Fun        int64
	ByPriority []PriorityCount
}

// Open counts todos that are not complete.
func (s Stats) Open() int64 {
	return s.Total - s.Completed
}
