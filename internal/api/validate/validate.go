package validate

import (
	"strconv"
	"strings"
	"time"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Helpers
func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func PositiveInt(field, value string) (int, *ErrField) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0, &ErrField{Field: field, Msg: "must be a positive integer"}
	}
	return n, nil
}

// Date parses a YYYY-MM-DD value. Empty input is not an error; the
// caller decides what an absent date means.
func Date(field, value string) (*time.Time, *ErrField) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return nil, &ErrField{Field: field, Msg: "must be a date in YYYY-MM-DD form"}
	}
	return &t, nil
}
