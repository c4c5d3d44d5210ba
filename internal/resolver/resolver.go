package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"google.golang.org/genai"
)

const DefaultVideoMIMEType = "video/mp4"

var ErrInvalidInput = errors.New("provide either a video file or a URL")

var videoExtensions = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
	".3gp":  "video/3gpp",
	".flv":  "video/x-flv",
	".wmv":  "video/x-ms-wmv",
}

// File is a local video the caller has already opened.
type File struct {
	Name     string
	MIMEType string
	Reader   io.Reader
}

// Input holds exactly one of File or URL.
type Input struct {
	File *File
	URL  string
}

func (in Input) validate() error {
	hasURL := strings.TrimSpace(in.URL) != ""
	if (in.File == nil) == !hasURL {
		return ErrInvalidInput
	}
	return nil
}

// FallbackKind tells why a URL could not be fetched directly.
type FallbackKind string

const (
	FallbackTransport FallbackKind = "transport"
	FallbackStatus    FallbackKind = "status"
	FallbackBody      FallbackKind = "body"
)

// Fallback describes a failed direct fetch that switched the request to
// search grounding.
type Fallback struct {
	Kind   FallbackKind
	Status int
	Err    error
}

func (f *Fallback) String() string {
	switch f.Kind {
	case FallbackStatus:
		return fmt.Sprintf("remote returned %d", f.Status)
	default:
		return fmt.Sprintf("%s: %v", f.Kind, f.Err)
	}
}

// Resolution is the request parts for one video plus whether the model
// must be allowed to search the web for it.
type Resolution struct {
	Parts          []*genai.Part
	SearchRequired bool
	Fallback       *Fallback
}

type Resolver struct {
	http   *http.Client
	logger *slog.Logger
}

func New(httpClient *http.Client, logger *slog.Logger) *Resolver {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{http: httpClient, logger: logger}
}

func (r *Resolver) Resolve(ctx context.Context, in Input) (*Resolution, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.File != nil {
		return r.resolveFile(in.File)
	}
	return r.resolveURL(ctx, strings.TrimSpace(in.URL)), nil
}

func (r *Resolver) resolveFile(f *File) (*Resolution, error) {
	data, err := io.ReadAll(f.Reader)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Name, err)
	}
	r.logger.Debug("inline video from file", "name", f.Name, "mime_type", f.MIMEType, "bytes", len(data))
	return &Resolution{
		Parts: []*genai.Part{genai.NewPartFromBytes(data, f.MIMEType)},
	}, nil
}

func (r *Resolver) resolveURL(ctx context.Context, rawURL string) *Resolution {
	data, mimeType, fb := r.fetch(ctx, rawURL)
	if fb != nil {
		r.logger.Info("direct fetch failed, using search grounding", "url", rawURL, "reason", fb.String())
		return &Resolution{
			Parts:          []*genai.Part{genai.NewPartFromText(searchPrompt(rawURL))},
			SearchRequired: true,
			Fallback:       fb,
		}
	}
	r.logger.Debug("inline video from url", "url", rawURL, "mime_type", mimeType, "bytes", len(data))
	return &Resolution{
		Parts: []*genai.Part{genai.NewPartFromBytes(data, mimeType)},
	}
}

func (r *Resolver) fetch(ctx context.Context, rawURL string) ([]byte, string, *Fallback) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", &Fallback{Kind: FallbackTransport, Err: err}
	}

	resp, err := r.http.Do(req)
	if err != nil {
		return nil, "", &Fallback{Kind: FallbackTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", &Fallback{Kind: FallbackStatus, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &Fallback{Kind: FallbackBody, Err: err}
	}
	return data, contentType(resp.Header.Get("Content-Type")), nil
}

func contentType(header string) string {
	if header == "" {
		return DefaultVideoMIMEType
	}
	mt, _, err := mime.ParseMediaType(header)
	if err != nil || mt == "" {
		return DefaultVideoMIMEType
	}
	return mt
}

func searchPrompt(rawURL string) string {
	return fmt.Sprintf(`The user provided this video URL for analysis: %s
Use Google Search to locate the video content, transcript, or a detailed description.
Then, evaluate the mentor based on any learner-mentor interactions found in that content.`, rawURL)
}

// OpenFile opens a local video. The declared media type comes from the file
// extension, falling back to content sniffing when the extension is unknown.
func OpenFile(path string) (*File, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open video: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	mimeType, ok := videoExtensions[ext]
	if !ok {
		mimeType = mime.TypeByExtension(ext)
	}
	if mimeType == "" {
		detected, err := mimetype.DetectReader(f)
		if err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("detect media type: %w", err)
		}
		mimeType = detected.String()
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("rewind video: %w", err)
		}
	}
	if mt, _, err := mime.ParseMediaType(mimeType); err == nil {
		mimeType = mt
	}

	return &File{Name: filepath.Base(path), MIMEType: mimeType, Reader: f}, f, nil
}

// LooksLikeURL reports whether s should be resolved as a remote URL rather
// than a local path.
func LooksLikeURL(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
