package resumegen

import "errors"

// Sentinel errors for pipeline operations.
var (
	ErrDataNotFound        = errors.New("data file not found")
	ErrDataMalformed       = errors.New("data file is not valid JSON")
	ErrSchemaViolation     = errors.New("data file matches no known resume schema")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrCompilerFailure     = errors.New("latex compiler failed")
	ErrOutputMissing       = errors.New("compiler reported success but output file is missing")
)
