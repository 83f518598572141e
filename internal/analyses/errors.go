package analyses

import "errors"

var (
	ErrNoFile        = errors.New("no resume file provided")
	ErrFileTooLarge  = errors.New("resume file exceeds the maximum size")
	ErrEmptyText     = errors.New("no text extracted from resume")
	ErrExtractFailed = errors.New("could not process file")
)
