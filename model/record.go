package model

import "database/sql"

// Record is a stored field map decoded to text. Every field, including
// binary ones such as an author photo, goes through the same decoding.
type Record map[string]string

// Fields is the field map written to the store. It always carries the
// entity's complete field set.
type Fields map[string]interface{}

// nullToStore maps an absent optional value to the store's empty value.
func nullToStore(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

// nullFromStore treats the store's empty value as absent.
func nullFromStore(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
