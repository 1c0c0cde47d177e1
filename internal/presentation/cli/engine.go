package cli

import (
	"github.com/prototypevg/VeriGuard-AI-app/internal/application/usecase"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/policy"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/port"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/service"
)

// Engine bundles the four scoring use cases behind one value.
type Engine struct {
	Transaction *usecase.ScoreTransaction
	Product     *usecase.ScoreProduct
	Seller      *usecase.ScoreSeller
	Security    *usecase.ScanAccountSecurity
}

// NewEngine wires the scorers for catalog into use cases sharing one
// publisher and one metrics recorder.
func NewEngine(
	catalog policy.Catalog,
	publisher port.EventPublisher,
	recorder port.MetricsRecorder,
	opts ...usecase.Option,
) *Engine {
	return &Engine{
		Transaction: usecase.NewScoreTransaction(service.NewTransactionScorer(catalog), publisher, recorder, opts...),
		Product:     usecase.NewScoreProduct(service.NewProductScorer(catalog), publisher, recorder, opts...),
		Seller:      usecase.NewScoreSeller(service.NewSellerScorer(catalog), publisher, recorder, opts...),
		Security:    usecase.NewScanAccountSecurity(service.NewSecurityScanner(), publisher, recorder, opts...),
	}
}
