package provider

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/diogo/vertexchat/internal/config"
	apierrors "github.com/diogo/vertexchat/internal/errors"
)

func TestNewGemini_Unconfigured(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Project = ""
	cfg.APIKey = ""

	_, err := NewGemini(context.Background(), cfg)
	if !errors.Is(err, apierrors.ErrNotConfigured) {
		t.Errorf("NewGemini with no scope = %v, want ErrNotConfigured", err)
	}
}

func TestGemini_CloseIsSafe(t *testing.T) {
	g := &Gemini{}
	if err := g.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
}

type fakeNetError struct{}

func (fakeNetError) Error() string   { return "dial tcp 1.2.3.4:443: connection refused" }
func (fakeNetError) Timeout() bool   { return false }
func (fakeNetError) Temporary() bool { return false }

var _ net.Error = fakeNetError{}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apierrors.ProviderErrorKind
	}{
		{"net error", fakeNetError{}, apierrors.KindNetwork},
		{"permission denied text", errors.New("rpc error: PERMISSION_DENIED"), apierrors.KindAuth},
		{"unauthenticated text", errors.New("unauthenticated request"), apierrors.KindAuth},
		{"resource exhausted text", errors.New("RESOURCE_EXHAUSTED: quota"), apierrors.KindQuota},
		{"anything else", errors.New("boom"), apierrors.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			if !apierrors.IsProviderError(got) {
				t.Fatalf("classify(%v) is not a ProviderError", tt.err)
			}
			if kind := apierrors.ProviderKind(got); kind != tt.want {
				t.Errorf("kind = %q, want %q", kind, tt.want)
			}
			if !errors.Is(got, tt.err) {
				t.Error("classified error should wrap the original")
			}
		})
	}
}

func TestMockGenerator_RecordsPrompt(t *testing.T) {
	m := &MockGenerator{GenerateVal: "reply"}

	got, err := m.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got != "reply" {
		t.Errorf("Generate() = %q, want %q", got, "reply")
	}
	if m.LastPrompt != "hello" || m.GenerateCalled != 1 {
		t.Errorf("recorder: prompt=%q calls=%d", m.LastPrompt, m.GenerateCalled)
	}
}
