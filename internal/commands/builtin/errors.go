package builtin

import (
	"errors"
	"fmt"

	"kvshell/internal/logger"
	"kvshell/internal/store"
)

// SupportedTypesMessage is reported for every literal the parser rejects,
// malformed or unsupported alike.
const SupportedTypesMessage = "Unsupported value type. Supported types: String, Integer, Boolean, Map, List, Set"

var errUnsupported = errors.New(SupportedTypesMessage)

// requireKeyAndValue reports which of key and literal is missing.
func requireKeyAndValue(usage, key, literal string) error {
	switch {
	case key == "" && literal == "":
		return fmt.Errorf("Usage: %s (missing key and value)", usage)
	case key == "":
		return fmt.Errorf("Usage: %s (missing key)", usage)
	case literal == "":
		return fmt.Errorf("Usage: %s (missing value)", usage)
	}
	return nil
}

// keyError turns a store error into the message shown for key.
func keyError(usage, key string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("Key '%s' not found", key)
	case errors.Is(err, store.ErrNotExist):
		return fmt.Errorf("Key '%s' does not exist", key)
	case errors.Is(err, store.ErrKeyRequired):
		return fmt.Errorf("Usage: %s", usage)
	default:
		logger.Error("Store operation failed", "key", key, "error", err)
		return err
	}
}
