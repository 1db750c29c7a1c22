package benchmark

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Result is a claim with the service's estimate next to the historical amount.
type Result struct {
	Input
	APIAmount *float64 `json:"apiAmount"`
	ErrorPct  *float64 `json:"errorPct"`
	Err       string   `json:"error,omitempty"`
}

type Runner struct {
	Endpoint   string
	Parallel   int
	HTTPClient *http.Client
	// OnResult is called once per finished claim, from worker goroutines.
	OnResult func(Result)
}

type caseSubmission struct {
	Description string      `json:"description"`
	Category    string      `json:"category"`
	CaseImages  []CaseImage `json:"case_images"`
	SaveToDB    bool        `json:"saveToDb"`
}

// Run submits every input with saveToDb=false using up to Parallel workers.
// Per-claim failures are recorded on the result; only cancellation aborts.
func (r Runner) Run(ctx context.Context, inputs []Input) ([]Result, error) {
	parallel := r.Parallel
	if parallel < 1 {
		parallel = 1
	}
	client := r.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Minute}
	}

	results := make([]Result, len(inputs))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, in := range inputs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res := Result{Input: in}
			amount, err := r.submit(gCtx, client, in)
			if err != nil {
				res.Err = err.Error()
				log.Printf("[benchmark][runner] case failed kundenNr=%d err=%v", in.CustomerNr, err)
			} else {
				res.APIAmount = &amount
				res.ErrorPct = ErrorPct(amount, in.HistoricalAmount)
			}
			results[i] = res
			if r.OnResult != nil {
				mu.Lock()
				r.OnResult(res)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (r Runner) submit(ctx context.Context, client *http.Client, in Input) (float64, error) {
	body, err := json.Marshal(caseSubmission{
		Description: in.Description,
		Category:    in.Category,
		CaseImages:  in.CaseImages,
		SaveToDB:    false,
	})
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(data))
	}

	var out struct {
		Estimation *float64 `json:"estimation"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}
	if out.Estimation == nil {
		return 0, fmt.Errorf("response carried no estimation")
	}
	return *out.Estimation, nil
}

// ErrorPct is (api-historical)/historical*100, or nil when it is undefined.
func ErrorPct(api float64, historical *float64) *float64 {
	if historical == nil || *historical == 0 {
		return nil
	}
	v := (api - *historical) / *historical * 100
	return &v
}
