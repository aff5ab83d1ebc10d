package commands

import (
	"fmt"

	"github.com/wizzomafizzo/ficedit/internal/settings"
)

// ReconcileMode decides how unequal find/replace lists are treated before save.
type ReconcileMode string

const (
	// ReconcileStrict rejects unequal lists.
	ReconcileStrict ReconcileMode = "strict"
	// ReconcileEmptyReplace also accepts an empty replace list.
	ReconcileEmptyReplace ReconcileMode = "empty-replace"
	// ReconcilePad pads replace with empty strings, or rejects a longer replace.
	ReconcilePad ReconcileMode = "pad"
	// ReconcileTruncate cuts both lists to the shorter length.
	ReconcileTruncate ReconcileMode = "truncate"
)

// ReconcileModes lists the accepted mode names.
var ReconcileModes = []ReconcileMode{ReconcileStrict, ReconcileEmptyReplace, ReconcilePad, ReconcileTruncate}

// ParseReconcileMode converts a flag value.
func ParseReconcileMode(name string) (ReconcileMode, error) {
	if name == "" {
		return ReconcileStrict, nil
	}
	for _, mode := range ReconcileModes {
		if string(mode) == name {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unknown reconcile mode %q (want one of %v)", name, ReconcileModes)
}

// Validate checks that find and replace form complete pairs.
func Validate(key string, rec settings.CommandRecord) error {
	if len(rec.Find) != len(rec.Replace) {
		return mismatch(key, rec)
	}
	return nil
}

// Reconcile applies mode to rec and returns the record to save.
func Reconcile(key string, rec settings.CommandRecord, mode ReconcileMode) (settings.CommandRecord, error) {
	if err := Validate(key, rec); err == nil {
		return rec, nil
	}
	find, replace := len(rec.Find), len(rec.Replace)
	switch mode {
	case ReconcileEmptyReplace:
		if replace == 0 {
			rec.Replace = []string{}
			return rec, nil
		}
	case ReconcilePad:
		if replace < find {
			padded := make([]string, find)
			copy(padded, rec.Replace)
			rec.Replace = padded
			return rec, nil
		}
	case ReconcileTruncate:
		n := min(find, replace)
		rec.Find = rec.Find[:n:n]
		rec.Replace = rec.Replace[:n:n]
		return rec, nil
	case ReconcileStrict:
	default:
		return rec, fmt.Errorf("unknown reconcile mode %q", mode)
	}

	return rec, mismatch(key, rec)
}

func mismatch(key string, rec settings.CommandRecord) error {
	return &settings.ValidationError{
		Key: key,
		Message: fmt.Sprintf("number of find (%d) and replace (%d) entries must match",
			len(rec.Find), len(rec.Replace)),
	}
}
