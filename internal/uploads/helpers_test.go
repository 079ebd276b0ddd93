package uploads

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"sync"
	"testing"

	"resume-intake/internal/notify"
	"resume-intake/internal/resumes"
)

type storedObject struct {
	contentType string
	data        []byte
}

type fakeObjects struct {
	mu      sync.Mutex
	objects  map[string]storedObject
	err      error
	panicMsg string
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: make(map[string]storedObject)}
}

func (f *fakeObjects) SaveWithKey(ctx context.Context, storageKey string, contentType string, data []byte) error {
	_ = ctx
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[storageKey] = storedObject{contentType: contentType, data: append([]byte(nil), data...)}
	return nil
}

type failingRepo struct{ err error }

func (r failingRepo) Put(ctx context.Context, rec resumes.Record) error { return r.err }

type fakePublisher struct {
	mu       sync.Mutex
	messages []notify.Message
	err      error
	panicMsg string
}

func (p *fakePublisher) Publish(ctx context.Context, msg notify.Message) (string, error) {
	if p.panicMsg != "" {
		panic(p.panicMsg)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	if p.err != nil {
		return "", p.err
	}
	return fmt.Sprintf("msg-%d", len(p.messages)), nil
}

var errBoom = errors.New("boom")

type formField struct {
	name  string
	value string
}

type formFile struct {
	filename    string
	contentType string
	data        []byte
}

// buildForm writes a multipart body. A nil file omits the file part.
func buildForm(t *testing.T, fields []formField, file *formFile) ([]byte, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, f := range fields {
		if err := writer.WriteField(f.name, f.value); err != nil {
			t.Fatalf("write field %s: %v", f.name, err)
		}
	}
	if file != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.filename))
		if file.contentType != "" {
			header.Set("Content-Type", file.contentType)
		}
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write(file.data); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body.Bytes(), writer.FormDataContentType()
}

func janeFields() []formField {
	return []formField{{name: "name", value: "Jane Doe"}, {name: "email", value: "jane@example.com"}}
}

func pdfFile(size int) *formFile {
	return &formFile{filename: "resume.pdf", contentType: "application/pdf", data: bytes.Repeat([]byte("a"), size)}
}

func base64Event(body []byte, contentType string) Event {
	return Event{
		Body:            base64.StdEncoding.EncodeToString(body),
		IsBase64Encoded: true,
		Headers:         map[string]string{"content-type": contentType},
		RequestID:       "req-test",
	}
}
