// Package mail writes templated emails to job applicants.
package mail

import "fmt"

// Status is where an applicant stands in the hiring process
type Status int

const (
	StatusNew Status = iota
	StatusInterview
	StatusHired
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusInterview:
		return "interview"
	case StatusHired:
		return "hired"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// JobApplicant is a person who applied for a job
type JobApplicant struct {
	Name         string
	EmailAddress string
	Status       Status
}

// Email is a single outgoing message
type Email struct {
	Subject        string
	Message        string
	RecipientEmail string
	SenderEmail    string
}

func (e Email) String() string {
	return fmt.Sprintf("From: %s\nTo: %s\nSubject: %s\n\n%s", e.SenderEmail, e.RecipientEmail, e.Subject, e.Message)
}

// EmailFactory creates the email matching an applicant's status. All
// emails are sent from SenderEmail.
type EmailFactory struct {
	SenderEmail string
}

func NewEmailFactory(senderEmail string) *EmailFactory {
	return &EmailFactory{SenderEmail: senderEmail}
}

// CreateEmail writes the email for the recipient's current status
func (f *EmailFactory) CreateEmail(recipient JobApplicant) Email {
	var subject, body string

	switch recipient.Status {
	case StatusInterview:
		subject = "We Want to Interview You"
		body = fmt.Sprintf("Thanks for your resume, %s! "+
			"Can you come in for an interview in 30 minutes?", recipient.Name)
	case StatusHired:
		subject = "We Want to Hire You"
		body = fmt.Sprintf("Congratulations, %s! "+
			"We liked your code, and you smelled nice. "+
			"We want to offer you a position! Cha-ching! $$$", recipient.Name)
	case StatusRejected:
		subject = "Thanks for Your Application"
		body = fmt.Sprintf("Thank you for applying, %s! "+
			"We have decided to move forward with other candidates. "+
			"Please remember to wear pants next time!", recipient.Name)
	default:
		subject = "We Received Your Application"
		body = "Thanks for applying for a job here! " +
			"You should hear from us in 17-42 business days."
	}

	return Email{
		Subject:        subject,
		Message:        body,
		RecipientEmail: recipient.EmailAddress,
		SenderEmail:    f.SenderEmail,
	}
}
