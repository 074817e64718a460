package model

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrUnknownUser = errors.New("unknown user")
var ErrDuplicateEmail = errors.New("email already registered")
var ErrRequestNotFound = errors.New("swap request not found")
var ErrMessageNotFound = errors.New("message not found")
var ErrPostNotFound = errors.New("post not found")
var ErrForbidden = errors.New("forbidden")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrEmptyContent = errors.New("empty content")
var ErrSessionNotFound = errors.New("session not found")
