package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	_ = ctx
	_ = optFns
	f.input = params
	if params.Body != nil {
		b, err := io.ReadAll(params.Body)
		if err != nil {
			return nil, err
		}
		f.body = b
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "abc.pdf", want: "abc.pdf"},
		{name: "simple prefix", prefix: "resumes", key: "abc.pdf", want: "resumes/abc.pdf"},
		{name: "prefix trailing slash", prefix: "resumes/", key: "abc.pdf", want: "resumes/abc.pdf"},
		{name: "prefix and key slashes", prefix: "/resumes/", key: "/abc.pdf", want: "resumes/abc.pdf"},
		{name: "nested prefix", prefix: "resumes/2026", key: "abc.pdf", want: "resumes/2026/abc.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestSaveWithKeyPutsBytesAndContentType(t *testing.T) {
	client := &fakeS3{}
	store, err := NewWithClient(client, "resume-uploads", "", "")
	if err != nil {
		t.Fatalf("NewWithClient: %v", err)
	}

	data := []byte("%PDF-1.4\n")
	if err := store.SaveWithKey(context.Background(), "abc.pdf", "application/pdf", data); err != nil {
		t.Fatalf("SaveWithKey: %v", err)
	}

	if got := aws.ToString(client.input.Bucket); got != "resume-uploads" {
		t.Fatalf("unexpected bucket: %s", got)
	}
	if got := aws.ToString(client.input.Key); got != "abc.pdf" {
		t.Fatalf("unexpected key: %s", got)
	}
	if got := aws.ToString(client.input.ContentType); got != "application/pdf" {
		t.Fatalf("unexpected content type: %s", got)
	}
	if client.input.ServerSideEncryption != s3types.ServerSideEncryptionAes256 {
		t.Fatalf("expected AES256 encryption, got %s", client.input.ServerSideEncryption)
	}
	if !bytes.Equal(client.body, data) {
		t.Fatalf("unexpected body: %q", client.body)
	}
}

func TestSaveWithKeyUsesKMSWhenConfigured(t *testing.T) {
	client := &fakeS3{}
	store, err := NewWithClient(client, "resume-uploads", "resumes", "kms-key-1")
	if err != nil {
		t.Fatalf("NewWithClient: %v", err)
	}
	if err := store.SaveWithKey(context.Background(), "abc.pdf", "application/pdf", []byte("x")); err != nil {
		t.Fatalf("SaveWithKey: %v", err)
	}
	if client.input.ServerSideEncryption != s3types.ServerSideEncryptionAwsKms {
		t.Fatalf("expected aws:kms encryption, got %s", client.input.ServerSideEncryption)
	}
	if got := aws.ToString(client.input.SSEKMSKeyId); got != "kms-key-1" {
		t.Fatalf("unexpected kms key: %s", got)
	}
	if got := aws.ToString(client.input.Key); got != "resumes/abc.pdf" {
		t.Fatalf("unexpected key: %s", got)
	}
}

func TestSaveWithKeyWrapsClientError(t *testing.T) {
	boom := errors.New("access denied")
	store, err := NewWithClient(&fakeS3{err: boom}, "resume-uploads", "", "")
	if err != nil {
		t.Fatalf("NewWithClient: %v", err)
	}
	err = store.SaveWithKey(context.Background(), "abc.pdf", "application/pdf", []byte("x"))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped client error, got %v", err)
	}
}

func TestNewWithClientRequiresBucket(t *testing.T) {
	if _, err := NewWithClient(&fakeS3{}, " ", "", ""); err == nil {
		t.Fatalf("expected error for empty bucket")
	}
}
