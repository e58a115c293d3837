package database

import (
	"errors"
	"fmt"
)

var (
	ErrNotOpen = errors.New("database is not open")
)

// Entity names the resource an operation touched.
type Entity string

const (
	EntitySetting   Entity = "setting"
	EntitySelection Entity = "selection"
)

type OpError struct {
	Op       string
	Resource Entity
	ID       int64
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(entity Entity, op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: entity, ID: id, Err: err}
}
