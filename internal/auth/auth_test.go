package auth

import (
	"errors"
	"testing"

	"google.golang.org/genai"
)

func TestEnvVar(t *testing.T) {
	if got := EnvVar("gemini"); got != "GEMINI_API_KEY" {
		t.Errorf("EnvVar(gemini) = %q", got)
	}
	if got := EnvVar("openai"); got != "OPENAI_API_KEY" {
		t.Errorf("EnvVar(openai) = %q", got)
	}
}

func TestGetAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	key, err := GetAPIKey("gemini")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "test-key" {
		t.Errorf("got key %q, want test-key", key)
	}
}

func TestGetAPIKeyMissing(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := GetAPIKey("openai")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Type != ErrTypeNoKey {
		t.Errorf("expected ErrTypeNoKey, got %v", verr.Type)
	}
}

func TestClassifyStringMatching(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ValidationErrorType
	}{
		{"invalid key", errors.New("API key not valid. Please pass a valid key"), ErrTypeInvalidKey},
		{"permission denied", errors.New("permission denied"), ErrTypeInvalidKey},
		{"quota", errors.New("quota exceeded for metric"), ErrTypeQuotaExceeded},
		{"rate limit", errors.New("rate limit reached"), ErrTypeQuotaExceeded},
		{"network", errors.New("dial tcp: no such host"), ErrTypeNetworkError},
		{"timeout", errors.New("context deadline exceeded: timeout"), ErrTypeNetworkError},
		{"unknown", errors.New("something odd happened"), ErrTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if got.Type != tt.want {
				t.Errorf("Classify(%v).Type = %v, want %v", tt.err, got.Type, tt.want)
			}
			if !errors.Is(got, tt.err) {
				t.Error("classified error must unwrap to its cause")
			}
		})
	}
}

func TestClassifyAPIErrorCodes(t *testing.T) {
	tests := []struct {
		code int
		want ValidationErrorType
	}{
		{401, ErrTypeInvalidKey},
		{403, ErrTypeInvalidKey},
		{429, ErrTypeQuotaExceeded},
		{503, ErrTypeNetworkError},
		{418, ErrTypeUnknown},
	}

	for _, tt := range tests {
		apiErr := &genai.APIError{Code: tt.code, Message: "status"}
		got := Classify(apiErr)
		if got.Type != tt.want {
			t.Errorf("code %d classified as %v, want %v", tt.code, got.Type, tt.want)
		}
	}
}

func TestClassifyNil(t *testing.T) {
	if got := Classify(nil); got != nil {
		t.Errorf("Classify(nil) = %v, want nil", got)
	}
}
