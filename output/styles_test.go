package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/harborgrid-justin/appropriations/finding"
)

func TestNewStyles(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	if styles == nil {
		t.Fatal("NewStyles should return non-nil Styles")
	}

	if styles.output == nil {
		t.Error("Styles should have non-nil output")
	}
}

func TestStylesSuccess(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	result := styles.Success("obligation cleared")

	if !strings.Contains(result, "obligation cleared") {
		t.Errorf("Success() result should contain message, got: %s", result)
	}
}

func TestStylesError(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	result := styles.Error("funds expired")

	if !strings.Contains(result, "funds expired") {
		t.Errorf("Error() result should contain message, got: %s", result)
	}
}

func TestStylesWarning(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	result := styles.Warning("nearing expiration")

	if !strings.Contains(result, "nearing expiration") {
		t.Errorf("Warning() result should contain message, got: %s", result)
	}
}

func TestStylesSeverity(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	for _, sev := range []finding.Severity{
		finding.SeverityLow,
		finding.SeverityMedium,
		finding.SeverityHigh,
		finding.SeverityCritical,
	} {
		label := sev.String()
		result := styles.Severity(sev, label)

		if !strings.Contains(result, label) {
			t.Errorf("Severity(%s) result should contain label, got: %s", label, result)
		}
	}
}

func TestStylesCode(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	result := styles.Code("bona-fide-need")

	if !strings.Contains(result, "bona-fide-need") {
		t.Errorf("Code() result should contain code, got: %s", result)
	}
}

func TestStylesStatute(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	result := styles.Statute("31 U.S.C. 1341(a)(1)(A)")

	if !strings.Contains(result, "31 U.S.C. 1341(a)(1)(A)") {
		t.Errorf("Statute() result should contain citation, got: %s", result)
	}
}

func TestStylesState(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	result := styles.State("PLANNING_REVIEW")

	if !strings.Contains(result, "PLANNING_REVIEW") {
		t.Errorf("State() result should contain state name, got: %s", result)
	}
}

func TestStylesKeyword(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	result := styles.Keyword("apportioned")

	if !strings.Contains(result, "apportioned") {
		t.Errorf("Keyword() result should contain keyword, got: %s", result)
	}
}

func TestStylesDim(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	result := styles.Dim("secondary detail")

	if !strings.Contains(result, "secondary detail") {
		t.Errorf("Dim() result should contain text, got: %s", result)
	}
}

func TestStylesTiming(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	t.Run("FastOperation", func(t *testing.T) {
		result := styles.Timing("5ms", false)

		if !strings.Contains(result, "5ms") {
			t.Errorf("Timing() result should contain timing, got: %s", result)
		}
	})

	t.Run("SlowOperation", func(t *testing.T) {
		result := styles.Timing("500ms", true)

		if !strings.Contains(result, "500ms") {
			t.Errorf("Timing() result should contain timing, got: %s", result)
		}
	})
}

func TestStylesOutput(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	output := styles.Output()

	if output == nil {
		t.Error("Output() should return non-nil termenv.Output")
	}
}
