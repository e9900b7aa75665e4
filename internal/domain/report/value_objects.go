package report

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	MinContentLength = 10
	MaxContentLength = 2000
)

var (
	ErrContentTooShort = errors.New("content must be at least 10 characters")
	ErrContentTooLong  = errors.New("content must be at most 2000 characters")
)

type Content struct {
	text string
}

func NewContent(s string) (Content, error) {
	t := strings.TrimSpace(s)
	n := utf8.RuneCountInString(t)
	if n < MinContentLength {
		return Content{}, ErrContentTooShort
	}
	if n > MaxContentLength {
		return Content{}, ErrContentTooLong
	}
	return Content{text: t}, nil
}

func (c Content) String() string { return c.text }
