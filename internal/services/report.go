package services

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/adenmarket/adenmarket/internal/logger"
	"github.com/adenmarket/adenmarket/internal/models"
)

// MaxEvidenceSize is the caller-enforced limit on evidence images, checked
// before any upload is attempted.
const MaxEvidenceSize = 5 << 20 // 5 MB

// Webhook sender identities for the two message kinds.
const (
	webhookReportSender   = "report"
	webhookFeedbackSender = "feedback"
)

// ReportWriter persists reports with store-level reporter/item dedup.
type ReportWriter interface {
	Save(ctx context.Context, rep *models.ReportDB) (bool, error)
}

// EvidenceUploader stores an evidence image and returns its public URL.
type EvidenceUploader interface {
	Upload(ctx context.Context, objectPath string, data []byte) (string, error)
}

// Notifier is the fire-and-forget webhook sink.
type Notifier interface {
	Send(ctx context.Context, username, content string) error
}

// SubmitReportParams carries one report submission.
type SubmitReportParams struct {
	ItemID       uuid.UUID
	ReporterName string
	ReportedName string
	Reason       string
	Description  string
	ImageName    string // original filename, used for the stored extension
	Image        []byte // optional evidence image
}

// ReportService handles report and feedback submission. Unlike the access-log
// append, the webhook send here is the point of the action: its failure fails
// the submission overall. Nothing is ever retried.
type ReportService struct {
	reports  ReportWriter
	uploader EvidenceUploader
	webhook  Notifier
}

// NewReportService creates a new ReportService.
func NewReportService(reports ReportWriter, uploader EvidenceUploader, webhook Notifier) *ReportService {
	return &ReportService{
		reports:  reports,
		uploader: uploader,
		webhook:  webhook,
	}
}

// SubmitReport validates, uploads the optional evidence image, persists the
// report, and notifies the webhook sink.
func (svc *ReportService) SubmitReport(ctx context.Context, reporterID uuid.UUID, p SubmitReportParams) error {
	if strings.TrimSpace(p.Reason) == "" {
		return ErrReasonRequired
	}
	if len(p.Image) > MaxEvidenceSize {
		return ErrUploadTooLarge
	}

	var imageURL *string
	if len(p.Image) > 0 {
		objectPath := fmt.Sprintf("reports/%s%s", uuid.NewString(), path.Ext(p.ImageName))
		url, err := svc.uploader.Upload(ctx, objectPath, p.Image)
		if err != nil {
			logger.Log.Errorw("evidence upload failed", "reporterID", reporterID, "error", err)
			return ErrUploadFailed
		}
		imageURL = &url
	}

	saved, err := svc.reports.Save(ctx, &models.ReportDB{
		ItemID:       p.ItemID,
		ReporterID:   reporterID,
		ReporterName: p.ReporterName,
		ReportedName: p.ReportedName,
		Reason:       p.Reason,
		Description:  p.Description,
		ImageURL:     imageURL,
	})
	if err != nil {
		logger.Log.Errorw("failed to save report", "reporterID", reporterID, "itemID", p.ItemID, "error", err)
		return err
	}
	if !saved {
		return ErrDuplicateReport
	}

	content := formatReportContent(p, imageURL)
	if err := svc.webhook.Send(ctx, webhookReportSender, content); err != nil {
		logger.Log.Errorw("report webhook failed", "reporterID", reporterID, "error", err)
		return ErrNotificationFailed
	}

	return nil
}

// SendFeedback forwards a feedback message to the webhook sink.
func (svc *ReportService) SendFeedback(ctx context.Context, userID uuid.UUID, userName, message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrMessageRequired
	}

	content := fmt.Sprintf("New feedback\nUser: %s (%s)\nMessage: %s", userName, userID, message)
	if err := svc.webhook.Send(ctx, webhookFeedbackSender, content); err != nil {
		logger.Log.Errorw("feedback webhook failed", "userID", userID, "error", err)
		return ErrNotificationFailed
	}

	return nil
}

func formatReportContent(p SubmitReportParams, imageURL *string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Report received\nReporter: %s\nReported: %s\nReason: %s", p.ReporterName, p.ReportedName, p.Reason)
	if p.Description != "" {
		fmt.Fprintf(&b, "\nDetails: %s", p.Description)
	}
	if imageURL != nil {
		fmt.Fprintf(&b, "\nEvidence: %s", *imageURL)
	}
	return b.String()
}
