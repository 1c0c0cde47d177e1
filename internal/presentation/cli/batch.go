package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/prototypevg/VeriGuard-AI-app/internal/application/dto"
)

const maxLineSize = 1 << 20

// field accepts a JSON string or number; numbers keep their literal text.
type field string

func (f *field) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = field(s)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = field(n.String())
	return nil
}

// BatchRequest is one JSON Lines entry. Kind selects the scorer; the other
// fields are read according to it.
type BatchRequest struct {
	Kind string `json:"kind"`

	Amount           field `json:"amount"`
	TransactionType  field `json:"transaction_type"`
	OriginDescriptor field `json:"origin_descriptor"`
	TimeOfDay        field `json:"time_of_day"`

	Name        field `json:"name"`
	Price       field `json:"price"`
	Description field `json:"description"`
	Category    field `json:"category"`

	TaxID           field `json:"tax_id"`
	ActivityMonths  field `json:"activity_months"`
	ComplaintsCount field `json:"complaints_count"`
	MonthlyRevenue  field `json:"monthly_revenue"`
}

// BatchResult is one output line, in the same order as the input.
type BatchResult struct {
	Result any    `json:"result,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Error  string `json:"error,omitempty"`
	Line   int    `json:"line"`
}

// Dispatch runs the use case selected by req.Kind.
func (e *Engine) Dispatch(ctx context.Context, req BatchRequest) (any, error) {
	switch req.Kind {
	case "transaction":
		return e.Transaction.Execute(ctx, dto.ScoreTransactionRequest{
			Amount:           string(req.Amount),
			TransactionType:  string(req.TransactionType),
			OriginDescriptor: string(req.OriginDescriptor),
			TimeOfDay:        string(req.TimeOfDay),
		})
	case "product":
		return e.Product.Execute(ctx, dto.ScoreProductRequest{
			Name:        string(req.Name),
			Price:       string(req.Price),
			Description: string(req.Description),
			Category:    string(req.Category),
		})
	case "seller":
		return e.Seller.Execute(ctx, dto.ScoreSellerRequest{
			TaxID:           string(req.TaxID),
			ActivityMonths:  string(req.ActivityMonths),
			ComplaintsCount: string(req.ComplaintsCount),
			MonthlyRevenue:  string(req.MonthlyRevenue),
		})
	case "security":
		return e.Security.Execute(ctx)
	default:
		return nil, fmt.Errorf("unknown kind %q", req.Kind)
	}
}

type batchLine struct {
	data   []byte
	number int
}

func readLines(r io.Reader) ([]batchLine, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lines := make([]batchLine, 0)
	for n := 1; sc.Scan(); n++ {
		data := bytes.TrimSpace(sc.Bytes())
		if len(data) == 0 {
			continue
		}
		lines = append(lines, batchLine{data: bytes.Clone(data), number: n})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}
	return lines, nil
}

// RunBatch scores every line of r with up to workers concurrent calls.
// Per-line failures are reported in the result; only read errors and
// cancellation abort the batch.
func RunBatch(ctx context.Context, engine *Engine, r io.Reader, workers int) ([]BatchResult, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]BatchResult, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, line := range lines {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res := BatchResult{Line: line.number}
			var req BatchRequest
			if err := json.Unmarshal(line.data, &req); err != nil {
				res.Error = fmt.Sprintf("malformed request: %v", err)
				results[i] = res
				return nil
			}

			res.Kind = req.Kind
			out, err := engine.Dispatch(gctx, req)
			if err != nil {
				res.Error = err.Error()
			} else {
				res.Result = out
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (a *App) runBatch(ctx context.Context, engine *Engine, args []string) int {
	fs := a.subcommand("batch")
	in := fs.String("in", "-", `JSON Lines input file, "-" for stdin`)
	workers := fs.Int("workers", runtime.NumCPU(), "number of concurrent scoring workers")
	if err := fs.Parse(args); err != nil {
		return parseExit(err)
	}

	src := a.Stdin
	if *in != "-" {
		f, err := os.Open(*in)
		if err != nil {
			a.Logger.Error("failed to open batch input", "error", err)
			return exitFailure
		}
		defer f.Close()
		src = f
	}

	results, err := RunBatch(ctx, engine, src, *workers)
	if err != nil {
		a.Logger.Error("batch aborted", "error", err)
		return exitFailure
	}

	enc := json.NewEncoder(a.Stdout)
	failed := 0
	for _, res := range results {
		if res.Error != "" {
			failed++
		}
		if err := enc.Encode(res); err != nil {
			a.Logger.Error("failed to write result", "line", res.Line, "error", err)
			return exitFailure
		}
	}

	a.Logger.Info("batch complete",
		"requests", len(results),
		"failed", failed,
		"workers", *workers,
	)
	if failed > 0 {
		return exitFailure
	}
	return exitOK
}
