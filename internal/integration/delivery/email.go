package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// MethodEmail tags exports sent as an email attachment.
const MethodEmail = "email"

// emailDelivery sends the payload as an attachment via Resend.
type emailDelivery struct {
	client    *resend.Client
	fromName  string
	fromEmail string
	toEmail   string
}

// NewEmailDelivery creates a new email delivery instance.
func NewEmailDelivery(apiKey, fromName, fromEmail, toEmail string) adapter.Delivery {
	return &emailDelivery{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}
}

// Deliver emails the export as an attachment to the configured recipient.
func (d *emailDelivery) Deliver(ctx context.Context, payload []byte, filename, mimeType string) (*adapter.DeliveryResult, error) {
	if err := ctx.Err(); err != nil {
		return &adapter.DeliveryResult{Status: adapter.DeliveryStatusCancelled, Method: MethodEmail}, nil
	}

	from := fmt.Sprintf("%s <%s>", d.fromName, d.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{d.toEmail},
		Subject: "Your transaction export: " + filename,
		Text:    "The requested transaction export is attached.",
		Attachments: []*resend.Attachment{
			{
				Filename:    filename,
				Content:     payload,
				ContentType: mimeType,
			},
		},
	}

	if _, err := d.client.Emails.SendWithContext(ctx, params); err != nil {
		if errors.Is(err, context.Canceled) {
			return &adapter.DeliveryResult{Status: adapter.DeliveryStatusCancelled, Method: MethodEmail}, nil
		}
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeDeliveryFailed,
			"failed to send export email",
			errors.Join(domainerror.ErrDeliveryFailed, err),
		)
	}

	return &adapter.DeliveryResult{Status: adapter.DeliveryStatusDelivered, Method: MethodEmail}, nil
}
