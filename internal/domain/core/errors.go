package core

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
