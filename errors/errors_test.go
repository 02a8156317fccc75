package errors

import (
	"fmt"
	"testing"
)

func TestLayoutError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeBreakpointNotFound, "breakpoint not found")
	if err.Code != ErrCodeBreakpointNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeBreakpointNotFound, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeConfigInvalid, "config parse failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeConfigInvalid) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeBreakpointNotFound) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("alias", "md").WithDetail("priority", 800)
	if detailed.Details["alias"] != "md" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	// Test BreakpointNotFound
	err := BreakpointNotFound("md")
	if err.Code != ErrCodeBreakpointNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeBreakpointNotFound, err.Code)
	}
	if err.Details["alias"] != "md" {
		t.Error("BreakpointNotFound should include alias detail")
	}

	// Test InvalidQuery
	err = InvalidQuery("screen and (", "unterminated expression")
	if err.Code != ErrCodeInvalidQuery {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidQuery, err.Code)
	}
	if err.Details["query"] != "screen and (" {
		t.Error("InvalidQuery should include query detail")
	}

	// Test ConfigNotFound
	err = ConfigNotFound("/tmp/flexlayout.yml")
	if err.Code != ErrCodeConfigNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeConfigNotFound, err.Code)
	}
	if err.Details["path"] != "/tmp/flexlayout.yml" {
		t.Error("ConfigNotFound should include path detail")
	}
}

func TestGetCode(t *testing.T) {
	if GetCode(nil) != "" {
		t.Error("GetCode(nil) should return empty code")
	}

	err := ScenarioInvalid("events.yml", fmt.Errorf("bad yaml"))
	if GetCode(err) != ErrCodeScenarioInvalid {
		t.Errorf("expected code %s, got %s", ErrCodeScenarioInvalid, GetCode(err))
	}
}
