package mailer

import (
	"strings"
	"testing"
)

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage(
		"noreply@example.com",
		"Shift swap",
		"Can anyone cover Tuesday?",
		[]string{"ops@example.com", "crew@example.com"},
	))

	headers, body, ok := strings.Cut(msg, "\r\n\r\n")
	if !ok {
		t.Fatal("message must separate headers from body with a blank line")
	}
	for _, want := range []string{
		"From: noreply@example.com",
		"To: ops@example.com, crew@example.com",
		"Subject: Shift swap",
		"Content-Type: text/plain; charset=UTF-8",
	} {
		if !strings.Contains(headers, want) {
			t.Errorf("headers missing %q", want)
		}
	}
	if body != "Can anyone cover Tuesday?" {
		t.Errorf("unexpected body %q", body)
	}
}
