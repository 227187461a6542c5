package ioutil

import (
	"bufio"
	"bytes"
	"io"
	"sync"
)

// AtomicWriter is a simple buffer writer for testing.
// It implements these interfaces:
// - io.Writer
// - io.WriteCloser
// - io.Closer.
type AtomicWriter struct {
	mutex   *sync.Mutex
	writers []io.Writer
	buffer  *bytes.Buffer
	flush   *bufio.Writer
}

func NewAtomicWriter() *AtomicWriter {
	var buffer bytes.Buffer
	flush := bufio.NewWriter(&buffer)
	return &AtomicWriter{&sync.Mutex{}, []io.Writer{flush}, &buffer, flush}
}

// ConnectTo allows writes to multiple targets.
func (w *AtomicWriter) ConnectTo(writer io.Writer) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.writers = append(w.writers, writer)
}

func (w *AtomicWriter) Write(p []byte) (n int, err error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	for _, writer := range w.writers {
		if _, err = writer.Write(p); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}

func (w *AtomicWriter) WriteString(s string) (n int, err error) {
	return w.Write([]byte(s))
}

func (w *AtomicWriter) Close() error {
	return w.Flush()
}

func (w *AtomicWriter) Flush() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.flush.Flush()
}

func (w *AtomicWriter) String() string {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if err := w.flush.Flush(); err != nil {
		panic(err)
	}
	return w.buffer.String()
}
