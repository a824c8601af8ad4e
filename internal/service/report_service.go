package service

import (
	"alcyxob/athlete-tracker/internal/analytics"
	"alcyxob/athlete-tracker/internal/domain"
	"alcyxob/athlete-tracker/internal/metrics"
	"alcyxob/athlete-tracker/internal/repository"
	"alcyxob/athlete-tracker/internal/storage"
	"alcyxob/athlete-tracker/internal/tracing"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxReportDays bounds the history length of an export.
const MaxReportDays = 366

const reportContentType = "text/csv"

// ReportLink is a report with a temporary download URL.
type ReportLink struct {
	Report domain.Report `json:"report"`
	URL    string        `json:"url"`
}

type ReportService interface {
	// Export writes the athlete's ratio history over days ending today as CSV to object storage.
	Export(ctx context.Context, adminID, athleteID primitive.ObjectID, days int) (*ReportLink, error)
	List(ctx context.Context, athleteID primitive.ObjectID) ([]ReportLink, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
	analytics  AnalyticsService
	storage    storage.FileStorage
	metrics    *metrics.Manager
	urlExpiry  time.Duration
}

func NewReportService(
	reportRepo repository.ReportRepository,
	analyticsService AnalyticsService,
	fileStorage storage.FileStorage,
	metricsManager *metrics.Manager,
	urlExpiry time.Duration,
) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		analytics:  analyticsService,
		storage:    fileStorage,
		metrics:    metricsManager,
		urlExpiry:  urlExpiry,
	}
}

func (s *reportService) Export(ctx context.Context, adminID, athleteID primitive.ObjectID, days int) (link *ReportLink, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reportService.export")
	defer func() { tracing.EndSpan(span, err) }()

	if days <= 0 || days > MaxReportDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", ErrValidationFailed, MaxReportDays)
	}

	points, err := s.analytics.History(ctx, athleteID, days)
	if err != nil {
		return nil, err
	}
	data, err := encodeHistoryCSV(points)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	objectKey := fmt.Sprintf("reports/%s/%s.csv", athleteID.Hex(), uuid.NewString())
	if err := s.storage.PutObject(ctx, objectKey, reportContentType, bytes.NewReader(data), int64(len(data))); err != nil {
		return nil, fmt.Errorf("upload report: %w", err)
	}

	report := &domain.Report{
		AthleteID:   athleteID,
		CreatedBy:   adminID,
		S3ObjectKey: objectKey,
		Days:        days,
		Points:      len(points),
		Size:        int64(len(data)),
	}
	id, err := s.reportRepo.Create(ctx, report)
	if err != nil {
		// keep storage consistent with the metadata
		if delErr := s.storage.DeleteObject(ctx, objectKey); delErr != nil {
			log.Errorf("delete orphan report %s: %s", objectKey, delErr)
		}
		return nil, fmt.Errorf("save report: %w", err)
	}
	report.ID = id
	s.metrics.CounterReportsExported.Inc()

	url, err := s.storage.GeneratePresignedDownloadURL(ctx, objectKey, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign report: %w", err)
	}

	log.WithFields(log.Fields{"athlete": athleteID.Hex(), "by": adminID.Hex(), "points": len(points)}).Info("acwr report exported")
	return &ReportLink{Report: *report, URL: url}, nil
}

func (s *reportService) List(ctx context.Context, athleteID primitive.ObjectID) ([]ReportLink, error) {
	reports, err := s.reportRepo.ListByAthlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	links := make([]ReportLink, 0, len(reports))
	for _, r := range reports {
		url, err := s.storage.GeneratePresignedDownloadURL(ctx, r.S3ObjectKey, s.urlExpiry)
		if err != nil {
			return nil, fmt.Errorf("presign report %s: %w", r.ID.Hex(), err)
		}
		links = append(links, ReportLink{Report: r, URL: url})
	}
	return links, nil
}

// encodeHistoryCSV writes one row per day with a ratio: date, acwr, band.
func encodeHistoryCSV(points []analytics.Point) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"date", "acwr", "band"}); err != nil {
		return nil, err
	}
	for _, p := range points {
		row := []string{
			p.Date,
			strconv.FormatFloat(p.Ratio, 'f', 2, 64),
			string(analytics.Classify(p.Ratio)),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
