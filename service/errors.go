package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidAmount      = errors.New("credit amount must be positive")
	ErrInvalidTarget      = errors.New("invalid target")
	ErrContentRequired    = errors.New("content is required")
	ErrFileRequired       = errors.New("file is required")
	ErrFileTooLarge       = errors.New("file exceeds size limit")
	ErrFileType           = errors.New("unsupported file type")
	ErrFileNotFound       = errors.New("file not found")
)
