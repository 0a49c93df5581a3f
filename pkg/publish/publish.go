// Package publish writes rendered page snapshots to a destination: a local
// file, standard output or an S3 object.
//
// Destinations are written as URLs or paths. A single dash selects
// standard output, an s3://bucket/key URL selects an S3 object and anything
// else is a local file path.
package publish

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/wcbridge/internal/errors"
)

const tracerName = "wcbridge/publish"

// ContentType is the MIME type of published snapshots.
const ContentType = "text/html; charset=utf-8"

// Publisher stores a snapshot and returns where it was written.
type Publisher interface {
	Publish(ctx context.Context, data []byte) (string, error)
}

// Open returns the publisher for dest. S3 destinations use a client
// configured from the environment; see NewS3ClientFromEnv.
func Open(dest string) (Publisher, error) {
	switch {
	case dest == "":
		return nil, errors.New("E120").WithDetail("empty destination")
	case dest == "-":
		return NewWriterPublisher(os.Stdout, "stdout"), nil
	case strings.HasPrefix(dest, "s3://"):
		bucket, key, err := ParseS3URL(dest)
		if err != nil {
			return nil, err
		}
		return NewS3Publisher(NewS3ClientFromEnv(), bucket, key), nil
	case strings.Contains(dest, "://"):
		return nil, errors.New("E120").WithDetailf("unsupported scheme in %q", dest).
			WithSuggestion("Use a file path, - for stdout, or s3://bucket/key")
	default:
		return NewFilePublisher(dest), nil
	}
}

// ParseS3URL splits s3://bucket/key.
func ParseS3URL(dest string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(dest, "s3://")
	if !ok {
		return "", "", errors.New("E120").WithDetailf("%q is not an s3:// URL", dest)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return "", "", errors.New("E120").WithDetailf("%q needs a bucket and an object key", dest)
	}
	return bucket, key, nil
}

// FilePublisher writes snapshots to a local path, creating parent
// directories. The file is replaced atomically.
type FilePublisher struct {
	path string
}

// NewFilePublisher creates a FilePublisher for path.
func NewFilePublisher(path string) *FilePublisher {
	return &FilePublisher{path: path}
}

// Publish implements Publisher.
func (p *FilePublisher) Publish(ctx context.Context, data []byte) (string, error) {
	_, span := startSpan(ctx, "publish.file", attribute.String("publish.path", p.path))
	defer span.End()

	if err := p.write(data); err != nil {
		failSpan(span, err)
		return "", errors.New("E122").WithDetail(p.path).Wrap(err)
	}
	return p.path, nil
}

func (p *FilePublisher) write(data []byte) error {
	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".wcbridge-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), p.path)
}

// WriterPublisher writes snapshots to an io.Writer.
type WriterPublisher struct {
	w    io.Writer
	name string
}

// NewWriterPublisher creates a WriterPublisher reporting name as its
// location.
func NewWriterPublisher(w io.Writer, name string) *WriterPublisher {
	return &WriterPublisher{w: w, name: name}
}

// Publish implements Publisher.
func (p *WriterPublisher) Publish(ctx context.Context, data []byte) (string, error) {
	_, span := startSpan(ctx, "publish.writer", attribute.String("publish.name", p.name))
	defer span.End()

	if _, err := p.w.Write(data); err != nil {
		failSpan(span, err)
		return "", errors.New("E122").WithDetail(p.name).Wrap(err)
	}
	return p.name, nil
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

func failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
