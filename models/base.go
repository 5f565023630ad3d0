package models

import "errors"

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
)
