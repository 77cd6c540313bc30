package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// emailSender is the part of the SES v2 client the service uses
type emailSender interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// EmailService handles sending emails via Amazon SES
type EmailService struct {
	client     emailSender
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
	debug      bool
}

// NewEmailService creates a new email service. An empty fromEmail yields a
// disabled service whose sends are no-ops.
func NewEmailService(ctx context.Context, awsRegion, fromEmail, fromName, appBaseURL string, debug bool) (*EmailService, error) {
	if fromEmail == "" {
		slog.Info("email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false, debug: debug}, nil
	}

	if debug {
		slog.Debug("initializing email service", "region", awsRegion, "from", fromEmail, "from_name", fromName, "base_url", appBaseURL)
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(awsRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	slog.Info("email service enabled", "from", fromEmail, "region", awsRegion)

	return newEmailService(sesv2.NewFromConfig(cfg), fromEmail, fromName, appBaseURL, debug), nil
}

func newEmailService(client emailSender, fromEmail, fromName, appBaseURL string, debug bool) *EmailService {
	return &EmailService{
		client:     client,
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		enabled:    true,
		debug:      debug,
	}
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendWelcomeEmail sends a welcome email to new members
func (s *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, toName string) error {
	if !s.enabled {
		if s.debug {
			slog.DebugContext(ctx, "skipping welcome email, service disabled", "to", toEmail)
		}
		return nil
	}

	subject := "Welcome to our church community"
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #6b4f9e; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>Welcome!</h1>
		</div>
		<div class="content">
			<p>Hi %s,</p>
			<p>Your account is ready. From now on you can:</p>
			<ul>
				<li>Register your children and check them in at events</li>
				<li>Follow the calendar and announcements</li>
				<li>Share prayer requests</li>
				<li>Keep track of your donations</li>
			</ul>
			<p>Visit us at <a href="%s">%s</a>.</p>
		</div>
		<div class="footer">
			<p>This is an automated email. Please do not reply.</p>
		</div>
	</div>
</body>
</html>
`, html.EscapeString(toName), html.EscapeString(s.appBaseURL), html.EscapeString(s.appBaseURL))

	textBody := fmt.Sprintf(`Hi %s,

Your account is ready. From now on you can:
- Register your children and check them in at events
- Follow the calendar and announcements
- Share prayer requests
- Keep track of your donations

Visit us at %s

---
This is an automated email. Please do not reply.
`, toName, s.appBaseURL)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// sendEmail sends an email using Amazon SES
func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	if s.debug && result.MessageId != nil {
		slog.DebugContext(ctx, "SES accepted email", "message_id", *result.MessageId)
	}
	slog.InfoContext(ctx, "email sent", "to", toEmail, "subject", subject)
	return nil
}
