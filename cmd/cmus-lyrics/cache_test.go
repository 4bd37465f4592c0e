package main

import (
	"strings"
	"testing"
	"time"

	"github.com/mzivic7/cmus-auto-lyrics/internal/cache"
)

func TestCacheListRow(t *testing.T) {
	expires := time.Date(2026, 9, 28, 12, 0, 0, 0, time.Local)
	entry := &cache.Entry{
		Artist:    "Pink Floyd",
		Title:     "Time",
		Synced:    true,
		Source:    "lrclib",
		ExpiresAt: expires.Unix(),
	}

	row := cacheListRow(entry)
	fields := strings.Split(row, "\t")
	if len(fields) != 5 {
		t.Fatalf("row has %d fields, want 5: %q", len(fields), row)
	}
	if fields[0] != "Pink Floyd" || fields[1] != "Time" {
		t.Errorf("key fields = %q / %q", fields[0], fields[1])
	}
	if fields[2] != "true" || fields[3] != "lrclib" {
		t.Errorf("synced/source = %q / %q", fields[2], fields[3])
	}
	if fields[4] != "2026-09-28" {
		t.Errorf("expiry = %q, want 2026-09-28", fields[4])
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
