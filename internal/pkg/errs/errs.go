package errs

import (
	"errors"
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark tags err so that Is(err, reference) holds without changing its message.
func Mark(err error, reference error) error {
	if err == nil {
		return nil
	}
	return cr.Mark(err, reference)
}

// Is matches both wrapped chains and marks added by Mark.
func Is(err, reference error) bool {
	return errors.Is(err, reference) || cr.Is(err, reference)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
