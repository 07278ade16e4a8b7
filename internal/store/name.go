package store

import "strings"

// checkName rejects names that are not a single flat path element.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." {
		return ErrUnsafeName
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return ErrUnsafeName
	}
	return nil
}
