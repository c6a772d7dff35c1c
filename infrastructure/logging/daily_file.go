package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const dateLayout = "2006-01-02"

// DailyFile appends to <dir>/<prefix>.YYYY-MM-DD and switches to a new file
// when the local date changes.
type DailyFile struct {
	dir    string
	prefix string
	now    func() time.Time

	mu   sync.Mutex
	day  string
	file *os.File
}

func NewDailyFile(dir, prefix string) (*DailyFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	return &DailyFile{dir: dir, prefix: prefix, now: time.Now}, nil
}

func (d *DailyFile) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	day := d.now().Format(dateLayout)
	if d.file == nil || day != d.day {
		if err := d.rotate(day); err != nil {
			return 0, err
		}
	}
	return d.file.Write(p)
}

func (d *DailyFile) rotate(day string) error {
	if d.file != nil {
		_ = d.file.Close()
		d.file = nil
	}
	name := filepath.Join(d.dir, d.prefix+"."+day)
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	d.file = f
	d.day = day
	return nil
}

// Path is the file the next write goes to.
func (d *DailyFile) Path() string {
	return filepath.Join(d.dir, d.prefix+"."+d.now().Format(dateLayout))
}

func (d *DailyFile) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}
