package usecase

import (
	"context"
	"fmt"

	"github.com/prototypevg/VeriGuard-AI-app/internal/application/dto"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/model"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/port"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/service"
)

// ScanAccountSecurity is the use case for reporting account security posture.
type ScanAccountSecurity struct {
	scanner service.AccountSecurityScanner
	pipeline
}

// NewScanAccountSecurity creates a new ScanAccountSecurity use case.
func NewScanAccountSecurity(
	scanner service.AccountSecurityScanner,
	publisher port.EventPublisher,
	metrics port.MetricsRecorder,
	opts ...Option,
) *ScanAccountSecurity {
	return &ScanAccountSecurity{
		scanner:  scanner,
		pipeline: newPipeline(publisher, metrics, opts),
	}
}

// Execute takes a snapshot and publishes the assessment events.
func (uc *ScanAccountSecurity) Execute(ctx context.Context) (dto.SecuritySnapshotResponse, error) {
	ctx, span := uc.start(ctx, "ScanAccountSecurity")
	defer span.End()

	snap := uc.scanner.Scan()

	assessment, err := uc.finish(ctx, span, model.KindSecurity,
		snap.SecurityScore, snap.Status, securityFindings(snap), false,
	)
	if err != nil {
		return dto.SecuritySnapshotResponse{}, fail(span, err)
	}

	return dto.FromSecuritySnapshot(assessment, snap), nil
}

func securityFindings(snap model.SecuritySnapshot) []string {
	findings := make([]string, 0, len(snap.Devices)+1)
	for _, d := range snap.BlockedDevices() {
		findings = append(findings, fmt.Sprintf("blocked access from %s (%s, %s)", d.Name, d.Location, d.IP))
	}
	return append(findings, snap.Logistics.AlertMessage)
}
