package io

import (
	"errors"
	"io"
	"os"
)

var errIsDir = errors.New("is a directory")

// TailFile is a read-only handle on a file that grows at the end. It remembers
// how far it has read. Positioned reads are used instead of a memory mapping
// because the file may be truncated at any time.
type TailFile struct {
	file   *os.File
	offset int64
	path   string
}

// OpenTail opens path for tailing, positioned at the start of the file
func OpenTail(path string) (*TailFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, &os.PathError{Op: "open", Path: path, Err: errIsDir}
	}

	return &TailFile{
		file: file,
		path: path,
	}, nil
}

// ReadToEnd reads everything from the current offset to end of file
func (t *TailFile) ReadToEnd() ([]byte, error) {
	data, err := io.ReadAll(t.file)
	t.offset += int64(len(data))
	return data, err
}

// SeekEnd positions the handle at end of file and returns the new offset
func (t *TailFile) SeekEnd() (int64, error) {
	off, err := t.file.Seek(0, io.SeekEnd)
	if err != nil {
		return t.offset, err
	}
	t.offset = off
	return off, nil
}

// SeekTo positions the handle at an absolute offset
func (t *TailFile) SeekTo(offset int64) error {
	off, err := t.file.Seek(offset, io.SeekStart)
	if err != nil {
		return err
	}
	t.offset = off
	return nil
}

// Offset returns the remembered read offset
func (t *TailFile) Offset() int64 {
	return t.offset
}

// Size returns the current file size
func (t *TailFile) Size() (int64, error) {
	info, err := t.file.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Path returns the file path
func (t *TailFile) Path() string {
	return t.path
}

// Close closes the file
func (t *TailFile) Close() error {
	return t.file.Close()
}
