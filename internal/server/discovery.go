package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/machinehub/discovery-pipeline/constants"
	v1 "github.com/machinehub/discovery-pipeline/gen/proto/discovery/v1"
	"github.com/machinehub/discovery-pipeline/internal/classify"
	"github.com/machinehub/discovery-pipeline/internal/common"
	"github.com/machinehub/discovery-pipeline/internal/dedup"
	"github.com/machinehub/discovery-pipeline/internal/entity"
	"github.com/machinehub/discovery-pipeline/internal/export"
	"github.com/machinehub/discovery-pipeline/internal/ledger"
	"github.com/machinehub/discovery-pipeline/internal/repository"
	"github.com/machinehub/discovery-pipeline/internal/scrape"
)

type DiscoveryService struct {
	v1.UnimplementedDiscoveryServiceServer
	ledger        *ledger.Service
	orchestrator  *scrape.Orchestrator
	resolver      *dedup.Resolver
	gate          *classify.Gate
	exporter      *export.Service
	manufacturers repository.ManufacturerRepository
	logger        *slog.Logger
}

func NewDiscoveryService(
	lg *ledger.Service,
	orch *scrape.Orchestrator,
	resolver *dedup.Resolver,
	gate *classify.Gate,
	exporter *export.Service,
	manufacturers repository.ManufacturerRepository,
	logger *slog.Logger,
) *DiscoveryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DiscoveryService{
		ledger:        lg,
		orchestrator:  orch,
		resolver:      resolver,
		gate:          gate,
		exporter:      exporter,
		manufacturers: manufacturers,
		logger:        logger,
	}
}

// ScrapeDiscoveredURLs implements v1.DiscoveryServiceServer. The call is
// accepted as soon as the batch is dispatched; callers poll
// ListDiscoveredURLs for per-URL outcomes.
func (s *DiscoveryService) ScrapeDiscoveredURLs(ctx context.Context, req *v1.ScrapeDiscoveredURLsRequest) (*v1.ScrapeDiscoveredURLsResponse, error) {
	manufacturerID, err := parseRequiredUUID(req.GetManufacturerId(), "manufacturer_id")
	if err != nil {
		return nil, err
	}
	if exists, _ := s.manufacturers.Exists(ctx, manufacturerID); !exists {
		s.logger.Error("manufacturer not found for scrape", "manufacturer_id", manufacturerID)
		return nil, status.Error(codes.InvalidArgument, "manufacturer not found")
	}
	if len(req.GetUrlIds()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "url_ids is required")
	}

	var urls []*entity.DiscoveredURL
	rejected := 0
	for _, raw := range req.GetUrlIds() {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "url id %q must be a UUID", raw)
		}
		u, err := s.ledger.Get(ctx, id)
		if err != nil {
			return nil, common.GRPCStatus(err)
		}
		if u.Status != constants.ScrapePending {
			s.logger.Warn("url not pending, excluded from batch", "url_id", id, "status", u.Status)
			rejected++
			continue
		}
		urls = append(urls, u)
	}
	if len(urls) == 0 {
		return nil, status.Error(codes.FailedPrecondition, "no pending urls in selection")
	}

	s.logger.Info("starting scrape batch", "manufacturer_id", manufacturerID, "urls", len(urls))
	handle, err := s.orchestrator.Dispatch(ctx, urls, manufacturerID, int(req.GetMaxWorkers()))
	if err != nil {
		s.logger.Error("scrape dispatch failed", "manufacturer_id", manufacturerID, "error", err)
		return nil, common.GRPCStatus(err)
	}

	return &v1.ScrapeDiscoveredURLsResponse{
		BatchId:  handle.ID.String(),
		Accepted: int32(handle.Total),
		Rejected: int32(rejected),
	}, nil
}

func (s *DiscoveryService) RunDuplicateDetection(ctx context.Context, req *v1.RunDuplicateDetectionRequest) (*v1.RunDuplicateDetectionResponse, error) {
	manufacturerID, err := parseOptionalUUID(req.GetManufacturerId(), "manufacturer_id")
	if err != nil {
		return nil, err
	}

	stats, err := s.resolver.RunDuplicateCheck(ctx, manufacturerID)
	if err != nil {
		s.logger.Error("duplicate detection failed", "error", err)
		return nil, common.GRPCStatus(err)
	}
	return &v1.RunDuplicateDetectionResponse{
		Checked:         int32(stats.Checked),
		DuplicatesFound: int32(stats.DuplicatesFound),
	}, nil
}

// UpdateURLDuplicateStatus is the human override entry point.
func (s *DiscoveryService) UpdateURLDuplicateStatus(ctx context.Context, req *v1.UpdateURLDuplicateStatusRequest) (*v1.DiscoveredURLResponse, error) {
	id, err := parseRequiredUUID(req.GetId(), "id")
	if err != nil {
		return nil, err
	}

	var u *entity.DiscoveredURL
	switch constants.DuplicateStatus(req.GetDuplicateStatus()) {
	case constants.DuplicateConfirmed:
		u, err = s.ledger.ConfirmDuplicate(ctx, id)
	case constants.DuplicateUnique:
		u, err = s.ledger.MarkAsUnique(ctx, id)
	case constants.DuplicateManualReview:
		u, err = s.ledger.MarkForReview(ctx, id)
	default:
		return nil, status.Errorf(codes.InvalidArgument, "duplicate_status %q is not settable", req.GetDuplicateStatus())
	}
	if err != nil {
		s.logger.Warn("duplicate status update failed", "url_id", id, "error", err)
		return nil, common.GRPCStatus(err)
	}
	return &v1.DiscoveredURLResponse{Url: urlToProto(u)}, nil
}

func (s *DiscoveryService) LinkURLToMachine(ctx context.Context, req *v1.LinkURLToMachineRequest) (*v1.DiscoveredURLResponse, error) {
	urlID, err := parseRequiredUUID(req.GetUrlId(), "url_id")
	if err != nil {
		return nil, err
	}
	machineID, err := parseRequiredUUID(req.GetMachineId(), "machine_id")
	if err != nil {
		return nil, err
	}

	u, err := s.ledger.LinkToMachine(ctx, urlID, machineID)
	if err != nil {
		s.logger.Warn("manual link failed", "url_id", urlID, "machine_id", machineID, "error", err)
		return nil, common.GRPCStatus(err)
	}
	return &v1.DiscoveredURLResponse{Url: urlToProto(u)}, nil
}

func (s *DiscoveryService) ListDiscoveredURLs(ctx context.Context, req *v1.ListDiscoveredURLsRequest) (*v1.ListDiscoveredURLsResponse, error) {
	f := repository.URLFilter{ExcludeAutoSkip: req.GetExcludeAutoSkip()}

	manufacturerID, err := parseOptionalUUID(req.GetManufacturerId(), "manufacturer_id")
	if err != nil {
		return nil, err
	}
	f.ManufacturerID = manufacturerID

	if raw := strings.TrimSpace(req.GetStatus()); raw != "" {
		st := constants.ScrapeStatus(raw)
		f.Status = &st
	}
	if raw := strings.TrimSpace(req.GetDuplicateStatus()); raw != "" {
		ds := constants.DuplicateStatus(raw)
		f.DuplicateStatus = &ds
	}

	urls, err := s.ledger.List(ctx, f)
	if err != nil {
		s.logger.Error("list discovered urls failed", "error", err)
		return nil, common.GRPCStatus(err)
	}

	out := make([]*v1.DiscoveredURL, 0, len(urls))
	for _, u := range urls {
		out = append(out, urlToProto(u))
	}
	return &v1.ListDiscoveredURLsResponse{Urls: out}, nil
}

func (s *DiscoveryService) ClassifyPendingURLs(ctx context.Context, req *v1.ClassifyPendingURLsRequest) (*v1.ClassifyPendingURLsResponse, error) {
	manufacturerID, err := parseOptionalUUID(req.GetManufacturerId(), "manufacturer_id")
	if err != nil {
		return nil, err
	}

	stats, err := s.gate.ClassifyPending(ctx, manufacturerID)
	if err != nil {
		s.logger.Error("classification pass failed", "error", err)
		return nil, common.GRPCStatus(err)
	}
	return &v1.ClassifyPendingURLsResponse{
		Classified:  int32(stats.Classified),
		AutoSkipped: int32(stats.AutoSkipped),
		Failed:      int32(stats.Failed),
	}, nil
}

func (s *DiscoveryService) RequeueURL(ctx context.Context, req *v1.URLRequest) (*v1.DiscoveredURLResponse, error) {
	id, err := parseRequiredUUID(req.GetId(), "id")
	if err != nil {
		return nil, err
	}
	u, err := s.ledger.Requeue(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &v1.DiscoveredURLResponse{Url: urlToProto(u)}, nil
}

func (s *DiscoveryService) SkipURL(ctx context.Context, req *v1.URLRequest) (*v1.DiscoveredURLResponse, error) {
	id, err := parseRequiredUUID(req.GetId(), "id")
	if err != nil {
		return nil, err
	}
	u, err := s.ledger.Skip(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &v1.DiscoveredURLResponse{Url: urlToProto(u)}, nil
}

func (s *DiscoveryService) RecheckURL(ctx context.Context, req *v1.URLRequest) (*v1.DiscoveredURLResponse, error) {
	id, err := parseRequiredUUID(req.GetId(), "id")
	if err != nil {
		return nil, err
	}
	u, err := s.resolver.RecheckURL(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &v1.DiscoveredURLResponse{Url: urlToProto(u)}, nil
}

func (s *DiscoveryService) ExportReview(ctx context.Context, req *v1.ExportReviewRequest) (*v1.ExportReviewResponse, error) {
	f := repository.URLFilter{}
	manufacturerID, err := parseOptionalUUID(req.GetManufacturerId(), "manufacturer_id")
	if err != nil {
		return nil, err
	}
	f.ManufacturerID = manufacturerID
	if raw := strings.TrimSpace(req.GetDuplicateStatus()); raw != "" {
		ds := constants.DuplicateStatus(raw)
		f.DuplicateStatus = &ds
	}

	xlsx, err := s.exporter.ExportReviewXLSX(ctx, f)
	if err != nil {
		s.logger.Error("review export failed", "error", err)
		return nil, common.GRPCStatus(err)
	}
	return &v1.ExportReviewResponse{Xlsx: xlsx}, nil
}

func parseRequiredUUID(raw, field string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}

func parseOptionalUUID(raw, field string) (*uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return &id, nil
}

func urlToProto(u *entity.DiscoveredURL) *v1.DiscoveredURL {
	out := &v1.DiscoveredURL{
		Id:              u.ID.String(),
		ManufacturerId:  u.ManufacturerID.String(),
		Url:             u.URL,
		Status:          string(u.Status),
		DiscoveredAt:    u.DiscoveredAt.UTC().Format(time.RFC3339Nano),
		DuplicateStatus: string(u.DuplicateStatus),
		ShouldAutoSkip:  u.ShouldAutoSkip,
	}
	if u.Category != nil {
		out.Category = *u.Category
	}
	if u.ScrapedAt != nil {
		out.ScrapedAt = u.ScrapedAt.UTC().Format(time.RFC3339Nano)
	}
	if u.ErrorMessage != nil {
		out.ErrorMessage = *u.ErrorMessage
	}
	if u.ExistingMachineID != nil {
		out.ExistingMachineId = u.ExistingMachineID.String()
	}
	if u.SimilarityScore != nil {
		out.SimilarityScore = *u.SimilarityScore
		out.HasSimilarityScore = true
	}
	if u.DuplicateReason != nil {
		out.DuplicateReason = *u.DuplicateReason
	}
	if u.CheckedAt != nil {
		out.CheckedAt = u.CheckedAt.UTC().Format(time.RFC3339Nano)
	}
	if u.MLClassification != nil {
		out.MlClassification = string(*u.MLClassification)
	}
	if u.MLConfidence != nil {
		out.MlConfidence = *u.MLConfidence
		out.HasMlConfidence = true
	}
	if u.MLReason != nil {
		out.MlReason = *u.MLReason
	}
	if u.MachineType != nil {
		out.MachineType = *u.MachineType
	}
	return out
}
