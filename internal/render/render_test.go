package render

import (
	"strings"
	"testing"
)

func TestMarkdownWithWidth_RendersContent(t *testing.T) {
	out, err := MarkdownWithWidth("# Hello\n\nSome **bold** text.", 60)
	if err != nil {
		t.Fatalf("MarkdownWithWidth() error: %v", err)
	}
	if !strings.Contains(out, "Hello") {
		t.Errorf("output missing heading text: %q", out)
	}
	if !strings.Contains(out, "bold") {
		t.Errorf("output missing body text: %q", out)
	}
}

func TestMarkdownWithWidth_InvalidWidthFallsBack(t *testing.T) {
	out, err := MarkdownWithWidth("plain text", 0)
	if err != nil {
		t.Fatalf("MarkdownWithWidth() error: %v", err)
	}
	// Words may be separated by styling escapes, so check them one at
	// a time.
	for _, word := range []string{"plain", "text"} {
		if !strings.Contains(out, word) {
			t.Errorf("output = %q, missing %q", out, word)
		}
	}
}

func TestMarkdownWithWidth_ConcurrentUse(t *testing.T) {
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 20; j++ {
				if _, err := MarkdownWithWidth("- a\n- b\n- c", 40); err != nil {
					t.Errorf("concurrent render: %v", err)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
