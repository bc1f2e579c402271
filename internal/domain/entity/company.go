package entity

import "time"

// Company representa una empresa/tenant del marketplace. Es dueña de cero o
// más productos; solo usuarios empresa de esa Company pueden mutarlos.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
