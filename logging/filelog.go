package logging

import (
	"fmt"
	"os"
	"time"
)

// FileLog is a scoped log file sink. It stamps the file with open and
// close times so each process run is delimited in the output.
type FileLog struct {
	f *os.File
}

// OpenFileLog opens (or creates) the file in append mode and writes the
// opening stamp.
func OpenFileLog(path string) (*FileLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	fl := &FileLog{f: f}
	fl.stamp("log opened")
	return fl, nil
}

func (fl *FileLog) stamp(msg string) {
	fmt.Fprintf(fl.f, "[%s] %s\n", time.Now().Format("2006-01-02 15:04:05"), msg)
}

func (fl *FileLog) Write(p []byte) (int, error) {
	return fl.f.Write(p)
}

func (fl *FileLog) Sync() error {
	return fl.f.Sync()
}

// Close writes the closing stamp before releasing the file.
func (fl *FileLog) Close() error {
	fl.stamp("log closed")
	return fl.f.Close()
}
