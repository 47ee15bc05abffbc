package errors

import "fmt"

// WrapParseError wraps an error with a "failed to parse" message
func WrapParseError(item string, cause error) *SyntaxError {
	message := fmt.Sprintf("failed to parse %s", item)
	return &SyntaxError{
		BaseError: Wrap(SyntaxErrorCode, message, cause),
	}
}

// WrapExtractionError wraps errors raised while pulling declarations out of a source file
func WrapExtractionError(path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to extract declarations from '%s'", path)
	return Wrap(ExtractionErrorCode, message, cause).
		WithContext("path", path)
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s file '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// ConfigurationError reports an invalid CLI or server setting
func ConfigurationError(setting, message string) *BaseError {
	return New(ConfigurationErrorCode, fmt.Sprintf("invalid %s: %s", setting, message)).
		WithContext("setting", setting)
}

// AsTextsigError converts any error into a TextsigError, wrapping foreign errors
func AsTextsigError(err error) TextsigError {
	if err == nil {
		return nil
	}
	if te, ok := err.(TextsigError); ok {
		return te
	}
	return Wrap(UnknownErrorCode, "unexpected error", err)
}
