package uploads

import (
	"errors"
	"fmt"
)

// Client input failures. Each is returned wrapped in a RejectionError.
var (
	ErrBodyMissing         = errors.New("body missing")
	ErrInvalidBody         = errors.New("invalid body encoding")
	ErrInvalidContentType  = errors.New("invalid content type")
	ErrMalformedForm       = errors.New("malformed multipart body")
	ErrMissingFields       = errors.New("missing required fields")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)

const (
	msgUploaded         = "Resume uploaded successfully"
	msgBodyMissing      = "Request body missing"
	msgInvalidBase64    = "Request body is not valid base64"
	msgInvalidType      = "Invalid Content-Type"
	msgMalformedForm    = "Malformed multipart body"
	msgMissingFields    = "Missing required fields"
	msgInternal         = "Internal server error"
	pdfContentType      = "application/pdf"
	subjectResumeUpload = "New Resume Uploaded"
)

// Dependency operations reported in DependencyError.Op.
const (
	OpReadBody    = "read_body"
	OpStoreObject = "store_object"
	OpPutRecord   = "put_record"
)

// RejectionError is a client input failure mapped to 400 with Message as the body.
type RejectionError struct {
	Kind    error
	Message string
}

func (e *RejectionError) Error() string { return e.Kind.Error() + ": " + e.Message }

func (e *RejectionError) Unwrap() error { return e.Kind }

func reject(kind error, message string) error {
	return &RejectionError{Kind: kind, Message: message}
}

// DependencyError is a failed write to the object or record store, mapped to 500.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *DependencyError) Unwrap() error { return e.Err }

func unsupportedTypeMessage(allowed string) string {
	if allowed == pdfContentType {
		return "Only PDF files are allowed"
	}
	return fmt.Sprintf("Only %s files are allowed", allowed)
}

func fileTooLargeMessage(maxMB int) string {
	return fmt.Sprintf("File size exceeds %d MB limit", maxMB)
}
