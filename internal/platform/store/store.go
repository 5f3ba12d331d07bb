// Package store persists entity collections as JSON documents. Each
// collection lives in its own file holding one object with a single named
// array; the array order is the collection order.
package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/koildeeee/HospitalManagerApp/internal/platform/codec"
)

var (
	// ErrFileNotFound covers a missing file as well as one that cannot be
	// created, opened or read.
	ErrFileNotFound = errors.New("file not found")

	// ErrDecode is codec.ErrDecode, re-exported so callers need one import.
	ErrDecode = codec.ErrDecode

	errNotOpen = errors.New("writer is not open")
)

// Collection is anything that can be written as one JSON array.
type Collection interface {
	ToJSON() []map[string]interface{}
}

// Validator is implemented by collections that can check their objects
// against the shape the reader will enforce.
type Validator interface {
	Validate() error
}

// Writer writes one collection document. Open, WriteList and Close must be
// called in that order; Save wraps the sequence.
type Writer struct {
	fs   afero.Fs
	path string
	file afero.File
	buf  *bufio.Writer
}

func NewWriter(fs afero.Fs, path string) *Writer {
	return &Writer{fs: fs, path: path}
}

// Path returns the destination file path.
func (w *Writer) Path() string { return w.path }

// Open creates or truncates the destination file. The parent directory must
// already exist.
func (w *Writer) Open() error {
	f, err := w.fs.OpenFile(w.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFileNotFound, w.path, err)
	}
	w.file = f
	w.buf = bufio.NewWriter(f)
	return nil
}

// WriteList encodes c under key as pretty-printed JSON. Nothing reaches the
// file until Close.
func (w *Writer) WriteList(key string, c Collection) error {
	if w.file == nil {
		return fmt.Errorf("%s: %w", w.path, errNotOpen)
	}

	objects := c.ToJSON()
	if objects == nil {
		objects = []map[string]interface{}{}
	}

	data, err := json.MarshalIndent(map[string]interface{}{key: objects}, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", w.path, err)
	}
	if _, err := w.buf.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", w.path, err)
	}
	return nil
}

// Close flushes buffered output and releases the file. Calling Close on a
// writer that is not open is a no-op.
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	flushErr := w.buf.Flush()
	closeErr := w.file.Close()
	w.file, w.buf = nil, nil

	if flushErr != nil {
		return fmt.Errorf("flush %s: %w", w.path, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", w.path, closeErr)
	}
	return nil
}

// Save writes c to path under key. A collection that fails its own
// Validate is rejected before the file is touched. The file is closed even
// when writing fails.
func Save(fs afero.Fs, path, key string, c Collection) (err error) {
	if v, ok := c.(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	w := NewWriter(fs, path)
	if err := w.Open(); err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return w.WriteList(key, c)
}

// Reader reads one collection document.
type Reader struct {
	fs   afero.Fs
	path string
}

func NewReader(fs afero.Fs, path string) *Reader {
	return &Reader{fs: fs, path: path}
}

// Path returns the source file path.
func (r *Reader) Path() string { return r.path }

// ReadList parses the file and returns the objects of the array stored under
// key, in file order. Numbers are returned as json.Number.
func (r *Reader) ReadList(key string) ([]map[string]interface{}, error) {
	f, err := r.fs.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotFound, r.path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotFound, r.path, err)
	}
	return decodeDocument(r.path, key, data)
}

func decodeDocument(path, key string, data []byte) ([]map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc map[string]interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: %s: unexpected data after document", ErrDecode, path)
	}

	raw, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s: missing %q array", ErrDecode, path, key)
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s: %q is not an array", ErrDecode, path, key)
	}

	objects := make([]map[string]interface{}, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: %s: %s[%d] is not an object", ErrDecode, path, key, i)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}
