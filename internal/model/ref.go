package model

import (
	"database/sql/driver"
	"fmt"
)

// Ref is a nullable reference to another entity. The empty string is written
// to the store as SQL NULL, so foreign keys declared ON DELETE SET NULL
// round-trip back to "" instead of failing the scan.
type Ref string

// Value implements driver.Valuer.
func (r Ref) Value() (driver.Value, error) {
	if r == "" {
		return nil, nil
	}
	return string(r), nil
}

// Scan implements sql.Scanner.
func (r *Ref) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*r = ""
	case string:
		*r = Ref(v)
	case []byte:
		*r = Ref(v)
	default:
		return fmt.Errorf("cannot scan %T into Ref", src)
	}
	return nil
}

// IsZero reports whether the reference is unset.
func (r Ref) IsZero() bool {
	return r == ""
}
