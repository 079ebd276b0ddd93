package uploads

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"strings"
)

// Submission is the parsed multipart form. Only the first occurrence of each field is kept.
type Submission struct {
	Name     string
	Email    string
	HasName  bool
	HasEmail bool
	File     *FilePart
}

// FilePart is the uploaded file. ContentType is the declared media type without parameters.
type FilePart struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Complete reports whether name, email and file were all present. Blank values count as present.
func (s Submission) Complete() bool {
	return s.HasName && s.HasEmail && s.File != nil
}

func parseSubmission(body []byte, contentType string) (Submission, error) {
	mediaType, params, err := parseMediaType(contentType)
	if err != nil {
		return Submission{}, fmt.Errorf("parse content type: %w", err)
	}
	if !strings.HasPrefix(mediaType, "multipart/") {
		return Submission{}, fmt.Errorf("unexpected media type %q", mediaType)
	}
	boundary := params["boundary"]
	if boundary == "" {
		return Submission{}, fmt.Errorf("missing multipart boundary")
	}

	var sub Submission
	mr := multipart.NewReader(bytes.NewReader(body), boundary)
	for {
		part, err := mr.NextPart()
		// NextPart wraps unexpected EOFs, so only the bare sentinel marks a clean end.
		if err == io.EOF {
			break
		}
		if err != nil {
			return Submission{}, fmt.Errorf("next part: %w", err)
		}
		data, err := io.ReadAll(part)
		_ = part.Close()
		if err != nil {
			return Submission{}, fmt.Errorf("read part %q: %w", part.FormName(), err)
		}

		switch part.FormName() {
		case "name":
			if !sub.HasName {
				sub.Name, sub.HasName = string(data), true
			}
		case "email":
			if !sub.HasEmail {
				sub.Email, sub.HasEmail = string(data), true
			}
		case "file":
			if sub.File == nil {
				sub.File = &FilePart{
					Filename:    part.FileName(),
					ContentType: partMediaType(part.Header.Get("Content-Type")),
					Data:        data,
				}
			}
		}
	}
	return sub, nil
}

// parseMediaType tolerates malformed trailing parameters by retrying with the
// well-formed key=value parameters only.
func parseMediaType(v string) (string, map[string]string, error) {
	mediaType, params, err := mime.ParseMediaType(v)
	if !errors.Is(err, mime.ErrInvalidMediaParameter) {
		return mediaType, params, err
	}
	segments := strings.Split(v, ";")
	kept := []string{segments[0]}
	for _, seg := range segments[1:] {
		if strings.Contains(seg, "=") {
			kept = append(kept, seg)
		}
	}
	return mime.ParseMediaType(strings.Join(kept, ";"))
}

// partMediaType drops parameters from a part's Content-Type. Case is preserved.
func partMediaType(v string) string {
	if i := strings.Index(v, ";"); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}
