package models

import (
	"reflect"
	"strings"
)

// Table is a kind-agnostic projection of a listing, used by the generic
// list endpoint and the spreadsheet export.
type Table struct {
	Kind    string   `json:"kind"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// TableOf projects struct rows using their db tags as column names.
// Fields tagged db:"-" or without a db tag are skipped; nil pointers become nil.
func TableOf[T any](kind string, rows []T) Table {
	t := Table{Kind: kind, Rows: make([][]any, 0, len(rows))}

	typ := reflect.TypeOf((*T)(nil)).Elem()
	var idx []int
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag := strings.Split(f.Tag.Get("db"), ",")[0]
		if tag == "" || tag == "-" || !f.IsExported() {
			continue
		}
		t.Columns = append(t.Columns, tag)
		idx = append(idx, i)
	}

	for _, r := range rows {
		v := reflect.ValueOf(r)
		row := make([]any, 0, len(idx))
		for _, i := range idx {
			fv := v.Field(i)
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					row = append(row, nil)
					continue
				}
				fv = fv.Elem()
			}
			row = append(row, fv.Interface())
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
