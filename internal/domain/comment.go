package domain

import "time"

// Comment is a note attached to a task by a user.
type Comment struct {
	ID        int64
	TaskID    int64
	UserID    int64
	Content   string
	CreatedAt time.Time
}
