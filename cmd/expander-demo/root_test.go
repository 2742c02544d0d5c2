package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	drifterrors "github.com/go-drift/expandable/pkg/errors"
)

func TestExecute_ValidateBuiltIn(t *testing.T) {
	isolate(t)
	if err := Execute([]string{"validate"}); err != nil {
		t.Errorf("validate built-in screens: %v", err)
	}
}

func TestExecute_ValidateRejectsBadConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("expanders:\n  - name: x\n    parallax: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := Execute([]string{"--config", path, "validate"})
	if !errors.Is(err, drifterrors.ErrParallaxRange) {
		t.Errorf("err = %v, want ErrParallaxRange", err)
	}
}

func TestExecute_MissingConfig(t *testing.T) {
	dir := isolate(t)
	err := Execute([]string{"--config=" + filepath.Join(dir, "absent.yaml"), "validate"})
	if !drifterrors.IsKind(err, drifterrors.KindConfigLoad) {
		t.Errorf("err = %v, want KindConfigLoad", err)
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	isolate(t)
	if err := Execute([]string{"bogus"}); err == nil {
		t.Error("expected an error for an unknown command")
	}
}

func TestExecute_FlagNeedsValue(t *testing.T) {
	isolate(t)
	if err := Execute([]string{"--state"}); err == nil {
		t.Error("expected an error for a flag without a value")
	}
}
