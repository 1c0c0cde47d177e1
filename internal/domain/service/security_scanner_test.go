package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/model"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/service"
)

func TestSecurityScanner_Scan(t *testing.T) {
	snap := service.NewSecurityScanner().Scan()

	assert.Equal(t, 88, snap.SecurityScore)
	assert.Equal(t, "PROTECTED", snap.Status)
	assert.Equal(t, 3, snap.BlockedAttempts)

	require.Len(t, snap.Devices, 3)
	assert.Equal(t, model.Device{
		Name: "MacBook Pro (this device)", Location: "São Paulo, BR", Status: model.DeviceActive, IP: "192.168.1.12",
	}, snap.Devices[0])
	assert.Equal(t, "iPhone 13", snap.Devices[1].Name)
	assert.Equal(t, model.DeviceBlocked, snap.Devices[2].Status)
	assert.Equal(t, "Moscow, RU", snap.Devices[2].Location)
	assert.Equal(t, "45.22.19.112", snap.Devices[2].IP)

	assert.Equal(t, model.LogisticsAnalysis{
		DeliveryScore:          92,
		UntrackedOrdersPercent: 0,
		Status:                 "validated own inventory",
		AlertMessage:           "no dropshipping-without-shipment pattern detected",
	}, snap.Logistics)
}

func TestSecurityScanner_ReturnsFreshCopies(t *testing.T) {
	scanner := service.NewSecurityScanner()

	first := scanner.Scan()
	first.Devices[0].Name = "tampered"
	first.SecurityScore = 0

	second := scanner.Scan()
	assert.Equal(t, "MacBook Pro (this device)", second.Devices[0].Name)
	assert.Equal(t, 88, second.SecurityScore)
}
