package mail

import (
	"strings"
	"testing"
)

func TestCreateEmail(t *testing.T) {
	factory := NewEmailFactory("hr@yourcompany.com")

	tests := []struct {
		name        string
		status      Status
		subject     string
		mentionName bool
	}{
		{"new", StatusNew, "We Received Your Application", false},
		{"interview", StatusInterview, "We Want to Interview You", true},
		{"hired", StatusHired, "We Want to Hire You", true},
		{"rejected", StatusRejected, "Thanks for Your Application", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applicant := JobApplicant{
				Name:         "Jackson",
				EmailAddress: "jacksonadams@gmail.com",
				Status:       tt.status,
			}

			email := factory.CreateEmail(applicant)

			if email.Subject != tt.subject {
				t.Errorf("Subject = %q, want %q", email.Subject, tt.subject)
			}
			if email.RecipientEmail != applicant.EmailAddress {
				t.Errorf("RecipientEmail = %q, want %q", email.RecipientEmail, applicant.EmailAddress)
			}
			if email.SenderEmail != "hr@yourcompany.com" {
				t.Errorf("SenderEmail = %q", email.SenderEmail)
			}
			if got := strings.Contains(email.Message, "Jackson"); got != tt.mentionName {
				t.Errorf("message mentions name = %v, want %v: %q", got, tt.mentionName, email.Message)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	if StatusHired.String() != "hired" {
		t.Errorf("StatusHired.String() = %q", StatusHired.String())
	}
	if Status(99).String() != "unknown" {
		t.Errorf("Status(99).String() = %q", Status(99).String())
	}
}

func TestEmailString(t *testing.T) {
	email := NewEmailFactory("hr@yourcompany.com").CreateEmail(JobApplicant{
		Name:         "Jackson",
		EmailAddress: "jacksonadams@gmail.com",
	})

	out := email.String()
	if !strings.HasPrefix(out, "From: hr@yourcompany.com\nTo: jacksonadams@gmail.com\n") {
		t.Errorf("unexpected header: %q", out)
	}
	if !strings.HasSuffix(out, email.Message) {
		t.Errorf("body missing from %q", out)
	}
}
