package platform

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

type nopSurface struct{}

func (nopSurface) Open(int, int, string) error      { return nil }
func (nopSurface) PollKeys(dst []string) []string   { return dst }
func (nopSurface) Present([]uint32, int, int) error { return nil }
func (nopSurface) Close()                           {}

func TestRegistry(t *testing.T) {
	Register("nop-test", func() Surface { return nopSurface{} })

	s, err := New("nop-test")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, ok := s.(nopSurface); !ok {
		t.Errorf("Expected nopSurface, got %T", s)
	}

	found := false
	for _, name := range Names() {
		if name == "nop-test" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected nop-test in %v", Names())
	}

	_, err = New("does-not-exist")
	if err == nil || !strings.Contains(err.Error(), "unknown backend") {
		t.Errorf("Expected unknown backend error, got %v", err)
	}
}

func TestCheckFrame(t *testing.T) {
	pixels := make([]uint32, 6)

	if err := CheckFrame(pixels, 3, 2, 3, 2); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	for _, tc := range []struct{ w, h int }{{2, 3}, {3, 3}, {4, 2}} {
		err := CheckFrame(pixels, tc.w, tc.h, 3, 2)
		if errors.Cause(err) != ErrSizeMismatch {
			t.Errorf("%dx%d: expected ErrSizeMismatch, got %v", tc.w, tc.h, err)
		}
	}

	if err := CheckFrame(pixels[:5], 3, 2, 3, 2); errors.Cause(err) != ErrSizeMismatch {
		t.Errorf("Expected short buffer to fail, got %v", err)
	}
}
