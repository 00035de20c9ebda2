package utils

import (
	"database/sql"
	"fmt"
	"reflect"

	"github.com/lib/pq"
)

// ScanStructByDBTags scans a single row into dest by walking the struct
// fields carrying a `db` tag, in declaration order. Queries using it must
// SELECT columns in the same order the struct declares them (SELECT * against
// the migration column order).
func ScanStructByDBTags(row *sql.Row, dest any) error {
	targets, err := scanTargets(dest)
	if err != nil {
		return err
	}

	return row.Scan(targets...)
}

// ScanStructByDBTagsForRows is the rows variant of ScanStructByDBTags.
func ScanStructByDBTagsForRows(rows *sql.Rows, dest any) error {
	targets, err := scanTargets(dest)
	if err != nil {
		return err
	}

	return rows.Scan(targets...)
}

func scanTargets(dest any) ([]any, error) {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return nil, fmt.Errorf("scan destination must be a non-nil struct pointer")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("scan destination must point to a struct")
	}

	t := v.Type()
	var targets []any

	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}

		addr := v.Field(i).Addr().Interface()

		// text[] columns need the pq array adapter
		if _, ok := addr.(*[]string); ok {
			targets = append(targets, pq.Array(addr))
			continue
		}

		targets = append(targets, addr)
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("scan destination has no db-tagged fields")
	}

	return targets, nil
}
