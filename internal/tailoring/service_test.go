package tailoring

import (
	"context"
	"errors"
	"testing"

	"tailor-backend/internal/jobs"
	"tailor-backend/internal/llm"
	"tailor-backend/internal/session"
	"tailor-backend/internal/shared/config"
)

type fakeBackend struct {
	response string
	err      error
	calls    int
	lastIn   llm.TailorInput
}

func (f *fakeBackend) TailorResume(ctx context.Context, in llm.TailorInput) (string, error) {
	f.calls++
	f.lastIn = in
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeBackend) Provider() string { return "fake" }

func newTestService(t *testing.T, limit int, backend llm.Client, backendErr error) *Service {
	t.Helper()
	return &Service{
		Providers:       config.Providers(),
		DefaultProvider: "google",
		Gate:            session.NewService(limit),
		Fetcher:         jobs.NewFetcher(),
		newBackend: func(ctx context.Context, providers map[string]config.ProviderConfig, name, callerKey string) (llm.Client, error) {
			if backendErr != nil {
				return nil, backendErr
			}
			return backend, nil
		},
	}
}

func TestTailorHappyPath(t *testing.T) {
	backend := &fakeBackend{response: fullResponse}
	svc := newTestService(t, 3, backend, nil)

	result, counter, err := svc.Tailor(context.Background(), TailorRequest{
		SessionID:  "s1",
		ResumeText: "resume body",
		JobText:    "  job   description  ",
	})
	if err != nil {
		t.Fatalf("Tailor: %v", err)
	}
	if !result.Valid() {
		t.Errorf("defaulted fields: %v", result.DefaultedFields)
	}
	if counter.Used != 1 || counter.Remaining() != 2 {
		t.Errorf("counter = %+v", counter)
	}
	if backend.lastIn.ResumeText != "resume body" {
		t.Errorf("resume text = %q", backend.lastIn.ResumeText)
	}
	if backend.lastIn.JobText != "job description" {
		t.Errorf("job text not normalized: %q", backend.lastIn.JobText)
	}
}

func TestTailorGateExhaustion(t *testing.T) {
	backend := &fakeBackend{response: fullResponse}
	svc := newTestService(t, 2, backend, nil)
	ctx := context.Background()
	req := TailorRequest{SessionID: "s1", ResumeText: "r", JobText: "j"}

	for i := 0; i < 2; i++ {
		if _, _, err := svc.Tailor(ctx, req); err != nil {
			t.Fatalf("call %d: %v", i+1, err)
		}
	}
	_, counter, err := svc.Tailor(ctx, req)
	if !errors.Is(err, session.ErrLimitReached) {
		t.Fatalf("want ErrLimitReached, got %v", err)
	}
	if counter.Used != 2 {
		t.Errorf("rejection must not advance counter: %+v", counter)
	}
	if backend.calls != 2 {
		t.Errorf("backend called %d times past the gate", backend.calls)
	}
}

func TestTailorOwnKeyBypassesGate(t *testing.T) {
	backend := &fakeBackend{response: fullResponse}
	svc := newTestService(t, 1, backend, nil)
	ctx := context.Background()
	req := TailorRequest{SessionID: "s1", ResumeText: "r", JobText: "j", APIKey: "sk-own"}

	for i := 0; i < 4; i++ {
		_, counter, err := svc.Tailor(ctx, req)
		if err != nil {
			t.Fatalf("call %d: %v", i+1, err)
		}
		if counter.Used != 0 {
			t.Errorf("own-key call consumed the counter: %+v", counter)
		}
	}
}

func TestTailorBackendErrorStillConsumes(t *testing.T) {
	backend := &fakeBackend{err: errors.New("upstream 500")}
	svc := newTestService(t, 3, backend, nil)

	_, counter, err := svc.Tailor(context.Background(), TailorRequest{SessionID: "s1", ResumeText: "r", JobText: "j"})
	if err == nil {
		t.Fatal("expected backend error")
	}
	if counter.Used != 1 {
		t.Errorf("failed call should still count: %+v", counter)
	}
}

func TestTailorConfigErrorDoesNotConsume(t *testing.T) {
	svc := newTestService(t, 3, nil, llm.ErrMissingCredential)

	_, _, err := svc.Tailor(context.Background(), TailorRequest{SessionID: "s1", ResumeText: "r", JobText: "j"})
	if !errors.Is(err, llm.ErrMissingCredential) {
		t.Fatalf("want ErrMissingCredential, got %v", err)
	}
	counter, err := svc.Gate.Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if counter.Used != 0 {
		t.Errorf("credential failure consumed the counter: %+v", counter)
	}
}

func TestTailorDefaultProvider(t *testing.T) {
	var seen string
	svc := newTestService(t, 3, &fakeBackend{response: fullResponse}, nil)
	inner := svc.newBackend
	svc.newBackend = func(ctx context.Context, providers map[string]config.ProviderConfig, name, callerKey string) (llm.Client, error) {
		seen = name
		return inner(ctx, providers, name, callerKey)
	}

	if _, _, err := svc.Tailor(context.Background(), TailorRequest{SessionID: "s1", ResumeText: "r", JobText: "j"}); err != nil {
		t.Fatalf("Tailor: %v", err)
	}
	if seen != "google" {
		t.Errorf("default provider = %q", seen)
	}
}

func TestTailorMalformedBackendOutput(t *testing.T) {
	svc := newTestService(t, 3, &fakeBackend{response: "not json"}, nil)

	_, counter, err := svc.Tailor(context.Background(), TailorRequest{SessionID: "s1", ResumeText: "r", JobText: "j"})
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("want ErrMalformedResponse, got %v", err)
	}
	if counter.Used != 1 {
		t.Errorf("malformed response should still count: %+v", counter)
	}
}
