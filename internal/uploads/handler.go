package uploads

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-intake/internal/notify"
	"resume-intake/internal/resumes"
	"resume-intake/internal/shared/metrics"
	"resume-intake/internal/shared/storage/object"
	"resume-intake/internal/shared/telemetry"
)

// Limits bounds what a submission may contain.
type Limits struct {
	MaxFileMB          int
	AllowedContentType string
}

func (l Limits) maxBytes() int64 {
	return int64(l.MaxFileMB) << 20
}

// Handler runs the intake sequence for one invocation. It holds only read-only
// configuration and long-lived clients, so one value serves every invocation.
type Handler struct {
	objects   object.ObjectStore
	records   resumes.Repo
	publisher notify.Publisher
	limits    Limits
	now       func() time.Time
	newID     func() string
}

// Option customizes a Handler.
type Option func(*Handler)

// WithClock overrides the time source used for uploadedAt.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// WithIDGenerator overrides resume id generation.
func WithIDGenerator(newID func() string) Option {
	return func(h *Handler) { h.newID = newID }
}

// NewHandler constructs a Handler.
func NewHandler(objects object.ObjectStore, records resumes.Repo, publisher notify.Publisher, limits Limits, opts ...Option) *Handler {
	h := &Handler{
		objects:   objects,
		records:   records,
		publisher: publisher,
		limits:    limits,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NotifyOutcome is the result of the best-effort notification step.
type NotifyOutcome struct {
	MessageID string
	Err       error
}

// Delivered reports whether the publish call succeeded.
func (o NotifyOutcome) Delivered() bool { return o.Err == nil }

// Receipt describes a successful upload.
type Receipt struct {
	Record       resumes.Record
	Notification NotifyOutcome
}

// Handle processes ev and maps the outcome to a response. It never panics.
func (h *Handler) Handle(ctx context.Context, ev Event) (resp Response) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Error("uploads.panic", map[string]any{
				"request_id": ev.RequestID,
				"error":      fmt.Sprint(rec),
				"stack":      string(debug.Stack()),
			})
			metrics.IncUploadFailed()
			resp = Response{StatusCode: 500, Body: msgInternal}
		}
		durationMs := float64(time.Since(start).Microseconds()) / 1000.0
		metrics.ObserveUploadDurationMs(durationMs)
		telemetry.Info("uploads.complete", map[string]any{
			"request_id":  ev.RequestID,
			"status":      resp.StatusCode,
			"duration_ms": durationMs,
		})
	}()

	telemetry.Info("uploads.request", map[string]any{
		"request_id": ev.RequestID,
		"body_len":   len(ev.Body),
		"base64":     ev.IsBase64Encoded,
	})

	if _, err := h.Process(ctx, ev); err != nil {
		return h.errorResponse(ev, err)
	}
	metrics.IncUploadAccepted()
	return Response{StatusCode: 200, Body: msgUploaded}
}

func (h *Handler) errorResponse(ev Event, err error) Response {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		metrics.IncUploadRejected()
		telemetry.Info("uploads.rejected", map[string]any{
			"request_id": ev.RequestID,
			"reason":     rejection.Kind.Error(),
		})
		return Response{StatusCode: 400, Body: rejection.Message}
	}

	fields := map[string]any{
		"request_id": ev.RequestID,
		"err":        err.Error(),
	}
	var depErr *DependencyError
	if errors.As(err, &depErr) {
		fields["op"] = depErr.Op
	}
	metrics.IncUploadFailed()
	telemetry.Error("uploads.failed", fields)
	return Response{StatusCode: 500, Body: msgInternal}
}

// Process validates ev, stores the file and its record, then attempts a notification.
// Validation failures return a *RejectionError; store failures a *DependencyError.
func (h *Handler) Process(ctx context.Context, ev Event) (Receipt, error) {
	if ev.Body == "" {
		return Receipt{}, reject(ErrBodyMissing, msgBodyMissing)
	}

	body := []byte(ev.Body)
	if ev.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(ev.Body)
		if err != nil {
			return Receipt{}, reject(ErrInvalidBody, msgInvalidBase64)
		}
		body = decoded
	}

	contentType := ev.Header("content-type")
	if contentType == "" || !strings.Contains(strings.ToLower(contentType), "multipart/form-data") {
		return Receipt{}, reject(ErrInvalidContentType, msgInvalidType)
	}

	sub, err := parseSubmission(body, contentType)
	if err != nil {
		telemetry.Debug("uploads.form.malformed", map[string]any{"request_id": ev.RequestID, "err": err.Error()})
		return Receipt{}, reject(ErrMalformedForm, msgMalformedForm)
	}
	if !sub.Complete() {
		return Receipt{}, reject(ErrMissingFields, msgMissingFields)
	}
	if sub.File.ContentType != h.limits.AllowedContentType {
		return Receipt{}, reject(ErrUnsupportedFileType, unsupportedTypeMessage(h.limits.AllowedContentType))
	}
	if int64(len(sub.File.Data)) > h.limits.maxBytes() {
		return Receipt{}, reject(ErrFileTooLarge, fileTooLargeMessage(h.limits.MaxFileMB))
	}

	resumeID := h.newID()
	filename := resumes.FilenameFor(resumeID)

	if err := h.objects.SaveWithKey(ctx, filename, h.limits.AllowedContentType, sub.File.Data); err != nil {
		return Receipt{}, &DependencyError{Op: OpStoreObject, Err: err}
	}
	telemetry.Info("uploads.stored", map[string]any{
		"request_id": ev.RequestID,
		"key":        filename,
		"size_bytes": len(sub.File.Data),
	})

	rec := resumes.Record{
		ResumeID:   resumeID,
		Name:       sub.Name,
		Email:      sub.Email,
		Filename:   filename,
		UploadedAt: resumes.FormatTimestamp(h.now()),
	}
	if err := h.records.Put(ctx, rec); err != nil {
		// The object written above stays in place without a record.
		telemetry.Error("uploads.orphaned_object", map[string]any{
			"request_id": ev.RequestID,
			"key":        filename,
		})
		return Receipt{}, &DependencyError{Op: OpPutRecord, Err: err}
	}

	return Receipt{Record: rec, Notification: h.notify(ctx, ev.RequestID, rec)}, nil
}

func (h *Handler) notify(ctx context.Context, requestID string, rec resumes.Record) (outcome NotifyOutcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = NotifyOutcome{Err: fmt.Errorf("publish panic: %v", r)}
		}
		if outcome.Err != nil {
			metrics.IncNotificationFailed()
			telemetry.Warn("uploads.notify.failed", map[string]any{
				"request_id": requestID,
				"resume_id":  rec.ResumeID,
				"err":        outcome.Err.Error(),
			})
		}
	}()

	id, err := h.publisher.Publish(ctx, newUploadMessage(rec))
	return NotifyOutcome{MessageID: id, Err: err}
}
