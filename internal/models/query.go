package models

import "errors"

// ErrRecordNotFound is returned by repositories when a lookup matches no row.
var ErrRecordNotFound = errors.New("record not found")

// Filter is one SQL condition with its placeholder arguments.
type Filter struct {
	Query string
	Args  []interface{}
}

func Where(query string, args ...interface{}) Filter {
	return Filter{Query: query, Args: args}
}

type ListOptions struct {
	Filters []Filter
	Order   string
	Limit   int
	Offset  int
}
