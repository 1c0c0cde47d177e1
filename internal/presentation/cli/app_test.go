package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prototypevg/VeriGuard-AI-app/internal/application/dto"
	"github.com/prototypevg/VeriGuard-AI-app/internal/application/usecase"
	"github.com/prototypevg/VeriGuard-AI-app/internal/infrastructure/config"
	"github.com/prototypevg/VeriGuard-AI-app/internal/presentation/cli"
	"github.com/prototypevg/VeriGuard-AI-app/pkg/testutil"
	"github.com/prototypevg/VeriGuard-AI-app/pkg/tlsutil"
)

type harness struct {
	app    *cli.App
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newHarness(stdin string) *harness {
	h := &harness{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	h.app = &cli.App{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(h.stderr, nil)),
		Stdin:  strings.NewReader(stdin),
		Stdout: h.stdout,
		Stderr: h.stderr,
		Options: []usecase.Option{
			usecase.WithClock(testutil.FixedClock()),
			usecase.WithIDGenerator(func() uuid.UUID { return testutil.FixedAssessmentID }),
		},
	}
	return h
}

func (h *harness) run(args ...string) int {
	return h.app.Run(context.Background(), args)
}

func TestApp_Transaction(t *testing.T) {
	h := newHarness("")

	code := h.run("transaction", "-amount", "R$ 60000", "-type", "crypto transfer", "-origin", "Tor exit node", "-time", "02:30")
	require.Equal(t, 0, code, h.stderr.String())

	var resp dto.TransactionRiskResponse
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &resp))
	assert.Equal(t, 99, resp.Score)
	assert.Equal(t, "CRITICAL", resp.RiskLevel)
	assert.Equal(t, testutil.FixedAssessmentID, resp.AssessmentID)
	assert.Contains(t, h.stderr.String(), "risk.high_risk.detected")
}

func TestApp_Product(t *testing.T) {
	h := newHarness("")

	code := h.run("product", "-name", "Rolex Submariner", "-price", "300", "-description", "réplica primeira linha", "-category", "Moda & Acessórios")
	require.Equal(t, 0, code, h.stderr.String())

	var resp dto.ProductLegitimacyResponse
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &resp))
	assert.Equal(t, "REJECTED", resp.Status)
	assert.Equal(t, "R$ 1500.00 - R$ 2400.00", resp.PriceRecommendation)
}

func TestApp_Seller(t *testing.T) {
	h := newHarness("")

	code := h.run("seller", "-tax-id", "12.345.678/0001-00", "-months", "36", "-complaints", "0", "-revenue", "20000")
	require.Equal(t, 0, code, h.stderr.String())

	var resp dto.SellerReputationResponse
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &resp))
	assert.Equal(t, 95, resp.Score)
	assert.Equal(t, "PREMIUM", resp.Classification)
}

func TestApp_Security(t *testing.T) {
	h := newHarness("")

	require.Equal(t, 0, h.run("security"))

	var resp dto.SecuritySnapshotResponse
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &resp))
	assert.Equal(t, 88, resp.SecurityScore)
	assert.Len(t, resp.Devices, 3)
}

func TestApp_Validation(t *testing.T) {
	t.Run("lenient by default", func(t *testing.T) {
		h := newHarness("")

		require.Equal(t, 0, h.run("transaction", "-amount", "lots", "-time", "noon"))

		var resp dto.TransactionRiskResponse
		require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &resp))
		assert.Equal(t, 1, resp.Score)
	})

	t.Run("strict flag rejects malformed input", func(t *testing.T) {
		h := newHarness("")

		code := h.run("-strict", "transaction", "-amount", "lots", "-time", "02:30")

		assert.Equal(t, 1, code)
		assert.Empty(t, h.stdout.String())
		assert.Contains(t, h.stderr.String(), "invalid amount")
	})

	t.Run("strict from config", func(t *testing.T) {
		h := newHarness("")
		h.app.Config.Strict = true

		assert.Equal(t, 1, h.run("seller", "-months", "-3"))
	})
}

func TestApp_Usage(t *testing.T) {
	t.Run("no command", func(t *testing.T) {
		h := newHarness("")
		assert.Equal(t, 1, h.run())
		assert.Contains(t, h.stderr.String(), "Usage:")
	})

	t.Run("unknown command", func(t *testing.T) {
		h := newHarness("")
		assert.Equal(t, 1, h.run("invoice"))
		assert.Contains(t, h.stderr.String(), `unknown command "invoice"`)
	})

	t.Run("help", func(t *testing.T) {
		h := newHarness("")
		assert.Equal(t, 0, h.run("-h"))
		assert.Contains(t, h.stderr.String(), "transaction")
	})

	t.Run("bad subcommand flag", func(t *testing.T) {
		h := newHarness("")
		assert.Equal(t, 1, h.run("seller", "-bogus"))
	})
}

func TestApp_RulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("transaction:\n  crypto_keywords: [usdt]\n"), 0o600))

	h := newHarness("")
	require.Equal(t, 0, h.run("-rules", path, "transaction", "-amount", "100", "-type", "USDT wallet", "-time", "12:00"))

	var resp dto.TransactionRiskResponse
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &resp))
	assert.Equal(t, 35, resp.Score)

	h = newHarness("")
	assert.Equal(t, 1, h.run("-rules", filepath.Join(t.TempDir(), "missing.yaml"), "security"))
	assert.Contains(t, h.stderr.String(), "failed to load rules")
}

func TestApp_MetricsAddr(t *testing.T) {
	h := newHarness("")

	require.Equal(t, 0, h.run("-metrics-addr", "127.0.0.1:0", "security"))
	assert.Contains(t, h.stderr.String(), "metrics server listening")
}

func TestApp_MetricsOverTLS(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, tlsutil.GenerateSelfSigned([]string{"127.0.0.1"}, dir))

	h := newHarness("")
	code := h.run("-metrics-addr", "127.0.0.1:0",
		"-metrics-tls-cert", filepath.Join(dir, "server.pem"),
		"-metrics-tls-key", filepath.Join(dir, "server-key.pem"),
		"security")

	require.Equal(t, 0, code, h.stderr.String())
	assert.Contains(t, h.stderr.String(), "tls=true")

	h = newHarness("")
	assert.Equal(t, 1, h.run("-metrics-addr", "127.0.0.1:0", "-metrics-tls-cert", filepath.Join(dir, "absent.pem"), "security"))
}
