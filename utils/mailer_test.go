package utils

import "testing"

func TestSendResetEmailUnconfiguredReturnsError(t *testing.T) {
	saved := sesClient
	sesClient = nil
	defer func() { sesClient = saved }()

	// Handlers rely on this error to avoid claiming a code was sent.
	if err := SendResetEmail("ngo@example.org", "abc123"); err == nil {
		t.Fatal("SendResetEmail returned nil with no SES client configured")
	}
	if err := SendPartnershipEmail("ngo@example.org", "accepted"); err == nil {
		t.Fatal("SendPartnershipEmail returned nil with no SES client configured")
	}
}
