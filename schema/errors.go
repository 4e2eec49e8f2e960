package schema

import (
	"errors"
	"fmt"
)

// Shape errors. They are fatal for generation: no partial record is returned.
var (
	ErrNotStruct       = errors.New("not a struct type")
	ErrNoFields        = errors.New("record has no named fields")
	ErrUnnamedField    = errors.New("embedded fields are not supported")
	ErrInvalidTag      = errors.New("invalid variant tag")
	ErrDuplicateField  = errors.New("duplicate field name")
	ErrUnknownOverride = errors.New("override refers to an unknown field")
)

// ShapeError reports a record declaration that is outside the supported shape.
type ShapeError struct {
	Record string // record type name, if known
	Field  string // offending field, if any
	Err    error
}

func (e *ShapeError) Error() string {
	switch {
	case e.Record != "" && e.Field != "":
		return fmt.Sprintf("record %s, field %s: %v", e.Record, e.Field, e.Err)
	case e.Record != "":
		return fmt.Sprintf("record %s: %v", e.Record, e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

func shapeErr(record, field string, err error) error {
	return &ShapeError{Record: record, Field: field, Err: err}
}
