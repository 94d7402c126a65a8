package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/futureblog/newsletter/internal/core/ports"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

// EmailConfig holds email service configuration
type EmailConfig struct {
	SendGridAPIKey string
	FromEmail      string
	FromName       string
	NewsletterName string
	// BaseURL is the externally visible address embedded in confirmation
	// links.
	BaseURL string
}

// EmailService implements the EmailService interface
type EmailService struct {
	config    *EmailConfig
	logger    *logrus.Logger
	client    *sendgrid.Client
	templates map[string]*template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(config *EmailConfig, logger *logrus.Logger) (ports.EmailService, error) {
	client := sendgrid.NewSendClient(config.SendGridAPIKey)

	// Load email templates
	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	return &EmailService{
		config:    config,
		logger:    logger,
		client:    client,
		templates: templates,
	}, nil
}

// loadTemplates loads all email templates from the template directory
func loadTemplates() (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template)

	templateDir := "templates/email"

	templateFiles := []string{
		"confirmation.html",
	}

	for _, file := range templateFiles {
		name := filepath.Base(file)
		name = name[:len(name)-len(filepath.Ext(name))] // Remove .html extension

		tmpl, err := template.ParseFiles(filepath.Join(templateDir, file))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", file, err)
		}

		templates[name] = tmpl
	}

	return templates, nil
}

// sendEmail sends an email with both plain-text and html bodies using SendGrid
func (e *EmailService) sendEmail(to, subject, textContent, htmlContent string) error {
	from := mail.NewEmail(e.config.FromName, e.config.FromEmail)
	recipient := mail.NewEmail("", to)

	message := mail.NewSingleEmail(from, subject, recipient, textContent, htmlContent)

	response, err := e.client.Send(message)
	if err != nil {
		e.logger.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
			"error":   err,
		}).Error("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	e.logger.WithFields(logrus.Fields{
		"to":          to,
		"subject":     subject,
		"status_code": response.StatusCode,
	}).Info("Email sent successfully")

	return nil
}

// renderTemplate renders an email template with the provided data
func (e *EmailService) renderTemplate(templateName string, data interface{}) (string, error) {
	tmpl, exists := e.templates[templateName]
	if !exists {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}

	return buf.String(), nil
}

// ConfirmationEmailData holds data for the subscription confirmation template
type ConfirmationEmailData struct {
	NewsletterName   string
	SubscriberName   string
	ConfirmationLink string
}

// SendConfirmationEmail sends the double opt-in confirmation message. The
// html and plain-text bodies carry the same confirmation link.
func (e *EmailService) SendConfirmationEmail(ctx context.Context, email, name, token string) error {
	confirmationLink := fmt.Sprintf("%s/subscriptions/confirm?subscription_token=%s", e.config.BaseURL, token)

	data := ConfirmationEmailData{
		NewsletterName:   e.config.NewsletterName,
		SubscriberName:   name,
		ConfirmationLink: confirmationLink,
	}

	htmlContent, err := e.renderTemplate("confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render confirmation email template: %w", err)
	}

	textContent := fmt.Sprintf(
		"Welcome to %s!\nVisit %s to confirm your subscription.",
		e.config.NewsletterName, confirmationLink,
	)

	subject := fmt.Sprintf("Confirm Your Subscription - %s", e.config.NewsletterName)

	return e.sendEmail(email, subject, textContent, htmlContent)
}
