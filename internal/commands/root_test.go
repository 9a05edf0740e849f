package commands

import (
	"os"
	"testing"
)

func TestPipedInput_ReadsPipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if _, err := w.WriteString("piped prompt"); err != nil {
		t.Fatal(err)
	}
	w.Close()

	text, piped, err := pipedInput(r)
	if err != nil {
		t.Fatalf("pipedInput() error: %v", err)
	}
	if !piped {
		t.Fatal("pipedInput() piped = false for a pipe")
	}
	if text != "piped prompt" {
		t.Errorf("pipedInput() = %q, want %q", text, "piped prompt")
	}
}

func TestPipedInput_StatFailure(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	w.Close()
	r.Close()

	text, piped, err := pipedInput(r)
	if err != nil {
		t.Errorf("pipedInput() error = %v, want nil on stat failure", err)
	}
	if piped || text != "" {
		t.Errorf("pipedInput() = %q, %v; want no input when the file cannot be inspected", text, piped)
	}
}
