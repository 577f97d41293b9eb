package main

import (
	"bytes"
	"strings"
	"testing"

	"cnoiddev/internal/buildinfo"
)

func TestVersionCmdPrintsBuildInfo(t *testing.T) {
	cmd := versionCmd()
	if cmd.Use != "version" {
		t.Fatalf("unexpected use: %q", cmd.Use)
	}

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.Run(cmd, nil)

	if got := strings.TrimSpace(buf.String()); got != buildinfo.String() {
		t.Fatalf("output = %q, want %q", got, buildinfo.String())
	}
}

func TestVersionCmdRejectsArgs(t *testing.T) {
	cmd := versionCmd()
	if err := cmd.Args(cmd, []string{"extra"}); err == nil {
		t.Fatal("expected args validation error")
	}
}
