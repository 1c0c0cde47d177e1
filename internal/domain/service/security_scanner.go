package service

import "github.com/prototypevg/VeriGuard-AI-app/internal/domain/model"

// SecurityScanner reports a fixed account security posture. It performs no
// real inspection; the snapshot is a deterministic template.
type SecurityScanner struct{}

// NewSecurityScanner creates a new SecurityScanner.
func NewSecurityScanner() *SecurityScanner {
	return &SecurityScanner{}
}

// Scan returns a freshly built snapshot on every call.
func (s *SecurityScanner) Scan() model.SecuritySnapshot {
	return model.SecuritySnapshot{
		SecurityScore:   88,
		Status:          "PROTECTED",
		BlockedAttempts: 3,
		Devices: []model.Device{
			{Name: "MacBook Pro (this device)", Location: "São Paulo, BR", Status: model.DeviceActive, IP: "192.168.1.12"},
			{Name: "iPhone 13", Location: "São Paulo, BR", Status: model.DeviceActive, IP: "172.16.0.5"},
			{Name: "Windows PC (attempt)", Location: "Moscow, RU", Status: model.DeviceBlocked, IP: "45.22.19.112"},
		},
		Logistics: model.LogisticsAnalysis{
			DeliveryScore:          92,
			UntrackedOrdersPercent: 0,
			Status:                 "validated own inventory",
			AlertMessage:           "no dropshipping-without-shipment pattern detected",
		},
	}
}
