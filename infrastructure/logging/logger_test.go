package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestResolveLevel(t *testing.T) {
	cases := []struct {
		env  string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{" TRACE ", zerolog.TraceLevel},
		{"warn", zerolog.WarnLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		if got := ResolveLevel(zerolog.InfoLevel, tc.env); got != tc.want {
			t.Fatalf("env %q: expected %v, got %v", tc.env, tc.want, got)
		}
	}
}

func TestNew_ConsoleAndFile(t *testing.T) {
	t.Setenv(LevelEnv, "")
	dir := t.TempDir()
	var console bytes.Buffer
	logger, closer, err := New("jerry", Options{Dir: dir, Console: true, Stdout: &console, Level: zerolog.InfoLevel})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info().Msg("Program start")
	logger.Debug().Msg("hidden")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if !strings.Contains(console.String(), "Program start") {
		t.Fatalf("console output missing message: %q", console.String())
	}
	if strings.Contains(console.String(), "hidden") {
		t.Fatal("debug message must be filtered at info level")
	}

	data, err := os.ReadFile(filepath.Join(dir, "dbg."+time.Now().Format(dateLayout)))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"message":"Program start"`) {
		t.Fatalf("file output missing message: %q", data)
	}
}

func TestNew_EnvOverridesLevel(t *testing.T) {
	t.Setenv(LevelEnv, "debug")
	var console bytes.Buffer
	logger, _, err := New("jerry", Options{Console: true, Stdout: &console, Level: zerolog.InfoLevel})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug().Msg("visible")
	if !strings.Contains(console.String(), "visible") {
		t.Fatalf("expected debug output, got %q", console.String())
	}
}

func TestNew_NoWriters(t *testing.T) {
	logger, closer, err := New("jerry", Options{})
	if err != nil || closer == nil {
		t.Fatalf("unexpected result: %v %v", closer, err)
	}
	logger.Info().Msg("discarded")
}

func TestDailyFile_Rotates(t *testing.T) {
	dir := t.TempDir()
	d, err := NewDailyFile(dir, "dbg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	day := time.Date(2024, 3, 1, 23, 59, 0, 0, time.Local)
	d.now = func() time.Time { return day }
	_, _ = d.Write([]byte("first\n"))
	day = day.Add(2 * time.Minute)
	_, _ = d.Write([]byte("second\n"))
	_ = d.Close()

	first, _ := os.ReadFile(filepath.Join(dir, "dbg.2024-03-01"))
	second, _ := os.ReadFile(filepath.Join(dir, "dbg.2024-03-02"))
	if string(first) != "first\n" || string(second) != "second\n" {
		t.Fatalf("unexpected contents: %q / %q", first, second)
	}
}
