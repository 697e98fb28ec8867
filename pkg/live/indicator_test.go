package live

import (
	"bytes"
	"strings"
	"testing"
)

func TestIndicator_DrawPlain(t *testing.T) {
	var buf bytes.Buffer
	ind := NewIndicator(&buf, "phone> ", false)

	if err := ind.Draw("801", "red"); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	want := "\r\033[2Kphone> 801 [red]"
	if buf.String() != want {
		t.Errorf("Draw() wrote %q, want %q", buf.String(), want)
	}
}

func TestIndicator_DrawColored(t *testing.T) {
	tests := []struct {
		class string
		code  string
	}{
		{class: "green", code: "\x1b[32m"},
		{class: "red", code: "\x1b[31m"},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			var buf bytes.Buffer
			ind := NewIndicator(&buf, "", true)

			if err := ind.Draw("801-766-9754", tt.class); err != nil {
				t.Fatalf("Draw() error = %v", err)
			}
			if !strings.Contains(buf.String(), tt.code+"801-766-9754") {
				t.Errorf("expected %q color around value, got %q", tt.code, buf.String())
			}
		})
	}
}

func TestIndicator_UnknownClassIsUncolored(t *testing.T) {
	var buf bytes.Buffer
	ind := NewIndicator(&buf, "", true)

	_ = ind.Draw("x", "blue")
	if strings.Contains(buf.String(), "\x1b[3") {
		t.Errorf("expected no color for unknown class, got %q", buf.String())
	}
}

func TestIndicator_NilWriter(t *testing.T) {
	ind := NewIndicator(nil, "", false)
	if err := ind.Draw("x", "red"); err != nil {
		t.Errorf("Draw() with nil writer error = %v", err)
	}
	if err := ind.Finish(); err != nil {
		t.Errorf("Finish() with nil writer error = %v", err)
	}
}
