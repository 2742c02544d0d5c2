package errors

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "expander.Frame.SetOrientation",
		Kind: KindInvalidConfiguration,
		Err:  ErrInvalidOrientation,
	}
	want := "expander.Frame.SetOrientation [invalid_configuration]: orientation must be horizontal or vertical"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindInvalidConfiguration, "invalid_configuration"},
		{KindStaleChild, "stale_child"},
		{KindConfigLoad, "config_load"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestInvalidConfigurationUnwraps(t *testing.T) {
	err := error(InvalidConfiguration("op", ErrNegativeDuration))
	if !errors.Is(err, ErrNegativeDuration) {
		t.Error("expected errors.Is to find ErrNegativeDuration")
	}
	if !IsKind(err, KindInvalidConfiguration) {
		t.Error("expected KindInvalidConfiguration")
	}
	if IsKind(err, KindStaleChild) {
		t.Error("did not expect KindStaleChild")
	}
	if IsKind(ErrNegativeDuration, KindInvalidConfiguration) {
		t.Error("a bare sentinel has no kind")
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "expander.Frame.listener"
	if got, want := err.Error(), "panic in expander.Frame.listener: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *Error
	prev := SetHandler(&testHandler{onError: func(err *Error) { captured = err }})
	defer SetHandler(prev)

	Report(&Error{Op: "test.op", Kind: KindStaleChild, Err: ErrUnknownChild})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	prev := SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(prev)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestSetHandlerNil(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", Handler())
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&Error{Op: "config.Parse", Kind: KindConfigLoad, Err: ErrUnknownKind})
	if !strings.Contains(buf.String(), "[expandable error] config.Parse: unknown expander kind") {
		t.Errorf("unexpected log output %q", buf.String())
	}

	buf.Reset()
	h.Verbose = true
	h.HandlePanic(&PanicError{Op: "listener", Value: "x", StackTrace: "frames"})
	out := buf.String()
	if !strings.Contains(out, "[expandable panic] listener: x") || !strings.Contains(out, "frames") {
		t.Errorf("unexpected verbose panic output %q", out)
	}
}

type testHandler struct {
	onError func(*Error)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
