package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mpeshop/config"
	"mpeshop/internal/domain/entity"
	"mpeshop/internal/domain/repository"
	"mpeshop/internal/domain/service"
	"mpeshop/internal/infra/settings"
	"mpeshop/internal/metrics"
	"mpeshop/internal/usecase"
)

const (
	channelCustomer = "customer"
	channelInternal = "internal"
)

type notificationService struct {
	orders    repository.OrderRepository
	mailer    service.Mailer
	documents usecase.DocumentUsecase
	settings  *settings.Store
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewNotificationService creates the post-checkout email dispatcher.
func NewNotificationService(
	orders repository.OrderRepository,
	mailer service.Mailer,
	documents usecase.DocumentUsecase,
	store *settings.Store,
	m *metrics.Metrics,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		orders:    orders,
		mailer:    mailer,
		documents: documents,
		settings:  store,
		metrics:   m,
		logger:    logger,
	}
}

func (s *notificationService) Dispatch(ctx context.Context, order *entity.Order) entity.EmailDelivery {
	cfg := s.settings.Current().Email

	var attachments []service.Attachment
	if cfg.AttachOrderPDF {
		if doc, ok := s.documents.ForAttachment(ctx, order); ok {
			attachments = append(attachments, service.Attachment{
				Filename: doc.Filename,
				Content:  doc.Content,
				MIMEType: "application/pdf",
			})
		}
	}

	var delivery entity.EmailDelivery
	var failures []string

	// The two channels are independent: a provider rejection on one must
	// not stop the other.
	if cfg.SendToCustomer {
		if ok, reason := s.sendCustomer(ctx, order, cfg, attachments); ok {
			delivery.SentToCustomer = true
		} else {
			failures = append(failures, reason)
		}
	}
	if cfg.SendToInternal {
		if ok, reason := s.sendInternal(ctx, order, cfg, attachments); ok {
			delivery.SentToInternal = true
		} else {
			failures = append(failures, reason)
		}
	}

	if delivery.SentToCustomer || delivery.SentToInternal {
		now := time.Now()
		delivery.SentAt = &now
	}
	delivery.LastError = strings.Join(failures, " | ")

	if err := s.orders.UpdateEmailDelivery(ctx, order.ID, delivery); err != nil {
		// Tracking is diagnostic data; losing it must not fail the dispatch.
		s.logger.ErrorContext(ctx, "failed to persist email delivery outcome",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)
	}

	return delivery
}

func (s *notificationService) sendCustomer(ctx context.Context, order *entity.Order, cfg config.EmailConfig, attachments []service.Attachment) (bool, string) {
	if order.Contact == nil || order.Contact.Email == "" {
		s.metrics.ObserveEmail(channelCustomer, false)

		return false, "customer: no contact email on order"
	}

	subject := applyOrderTemplate(
		templateOrDefault(cfg.CustomerSubjectTemplate, defaultCustomerSubjectTemplate), order)

	err := s.mailer.Send(ctx, service.Message{
		FromEmail:   cfg.FromEmail,
		FromName:    cfg.FromName,
		ReplyTo:     cfg.ReplyTo,
		To:          []string{order.Contact.Email},
		Subject:     subject,
		TextBody:    customerBody(order, cfg.FooterNote),
		Attachments: attachments,
	})
	s.metrics.ObserveEmail(channelCustomer, err == nil)
	if err != nil {
		s.logger.ErrorContext(ctx, "customer confirmation failed",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)

		return false, "customer: " + err.Error()
	}

	return true, ""
}

func (s *notificationService) sendInternal(ctx context.Context, order *entity.Order, cfg config.EmailConfig, attachments []service.Attachment) (bool, string) {
	recipients := parseRecipients(cfg.InternalRecipients)
	if len(recipients) == 0 {
		s.metrics.ObserveEmail(channelInternal, false)

		return false, "internal: no internal recipients configured"
	}

	subject := applyOrderTemplate(
		templateOrDefault(cfg.InternalSubjectTemplate, defaultInternalSubjectTemplate), order)

	err := s.mailer.Send(ctx, service.Message{
		FromEmail:   cfg.FromEmail,
		FromName:    cfg.FromName,
		To:          recipients,
		Subject:     subject,
		TextBody:    internalBody(order),
		Attachments: attachments,
	})
	s.metrics.ObserveEmail(channelInternal, err == nil)
	if err != nil {
		s.logger.ErrorContext(ctx, "internal order alert failed",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)

		return false, "internal: " + err.Error()
	}

	return true, ""
}

func customerBody(order *entity.Order, footerNote string) string {
	var b strings.Builder
	name := "there"
	if order.Contact != nil && order.Contact.Name != "" {
		name = order.Contact.Name
	}
	fmt.Fprintf(&b, "Hello %s,\n\n", name)
	fmt.Fprintf(&b, "Thank you for your order. Your reference is %s.\n\n", order.Reference())
	writeItemLines(&b, order)
	b.WriteString("\nWe will be in touch to confirm availability and delivery.\n")
	if footerNote != "" {
		b.WriteString("\n" + footerNote + "\n")
	}

	return b.String()
}

func internalBody(order *entity.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A new order has been placed on the website.\n\n")
	fmt.Fprintf(&b, "Reference: %s\n", order.Reference())
	if order.Contact != nil {
		fmt.Fprintf(&b, "Customer:  %s", order.Contact.Name)
		if order.Contact.Company != "" {
			fmt.Fprintf(&b, " (%s)", order.Contact.Company)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "Email:     %s\n", order.Contact.Email)
		if order.Contact.Phone != "" {
			fmt.Fprintf(&b, "Phone:     %s\n", order.Contact.Phone)
		}
	}
	b.WriteString("\n")
	writeItemLines(&b, order)
	if order.Notes != "" {
		fmt.Fprintf(&b, "\nNotes:\n%s\n", order.Notes)
	}

	return b.String()
}

func writeItemLines(b *strings.Builder, order *entity.Order) {
	for _, item := range order.Items {
		fmt.Fprintf(b, "  %d x %s", item.Quantity, item.ProductName)
		if item.SKU != "" {
			fmt.Fprintf(b, " [%s]", item.SKU)
		}
		b.WriteString("\n")
	}
}
