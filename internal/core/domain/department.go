package domain

import (
	"errors"
	"time"
)

var ErrDepartmentNotFound = errors.New("department not found")
var ErrDepartmentNameTaken = errors.New("department name already in use")

// Department represents an organizational unit employees belong to.
type Department struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Location  string    `json:"location,omitempty" bson:"location,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
