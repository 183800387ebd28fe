package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

// recordingHandler captures reported errors for assertions.
type recordingHandler struct {
	errors []*AuraError
	panics []*PanicError
}

func (h *recordingHandler) HandleError(err *AuraError)  { h.errors = append(h.errors, err) }
func (h *recordingHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func installRecorder(t *testing.T) *recordingHandler {
	t.Helper()
	recorder := &recordingHandler{}
	SetHandler(recorder)
	t.Cleanup(func() { SetHandler(nil) })
	return recorder
}

func TestAuraError_MessageAndUnwrap(t *testing.T) {
	underlying := stderrors.New("file not found")
	err := &AuraError{Op: "theme.LoadPack", Kind: KindTheme, Err: underlying}

	if got := err.Error(); !strings.Contains(got, "theme.LoadPack") || !strings.Contains(got, "[theme]") {
		t.Errorf("Error() = %q", got)
	}
	if !stderrors.Is(err, underlying) {
		t.Error("errors.Is should reach the underlying error")
	}
}

func TestErrorKind_String(t *testing.T) {
	cases := map[ErrorKind]string{
		KindUnknown:   "unknown",
		KindLayout:    "layout",
		KindTheme:     "theme",
		KindAnimation: "animation",
		KindPanic:     "panic",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(kind), got, want)
		}
	}
}

func TestReport_SetsTimestampAndDelivers(t *testing.T) {
	recorder := installRecorder(t)

	Report(&AuraError{Op: "layout.ItemRow", Kind: KindLayout, Err: stderrors.New("bad grow config")})
	if len(recorder.errors) != 1 {
		t.Fatalf("reported %d errors, want 1", len(recorder.errors))
	}
	if recorder.errors[0].Timestamp.IsZero() {
		t.Error("Report should stamp the error time")
	}

	Report(nil)
	if len(recorder.errors) != 1 {
		t.Error("nil report should be ignored")
	}
}

func TestRecover_CapturesPanic(t *testing.T) {
	recorder := installRecorder(t)

	func() {
		defer Recover("widgets.test")
		panic("boom")
	}()

	if len(recorder.panics) != 1 {
		t.Fatalf("recovered %d panics, want 1", len(recorder.panics))
	}
	p := recorder.panics[0]
	if p.Op != "widgets.test" || p.Value != "boom" {
		t.Errorf("panic = %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
	if !strings.Contains(p.Error(), "widgets.test") {
		t.Errorf("Error() = %q", p.Error())
	}
}

func TestSetHandler_NilRestoresDefault(t *testing.T) {
	SetHandler(&recordingHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("DefaultHandler = %T, want *LogHandler", DefaultHandler)
	}
}
