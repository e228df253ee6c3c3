package queue_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shashiranjanraj/tradeport/pkg/queue"
)

// ─── Job types ────────────────────────────────────────────────────────────────

// notified collects the seller IDs handled by submittedJob, so tests can
// verify the payload survives the marshal round-trip through the driver.
var notified = struct {
	sync.Mutex
	sellers []string
}{}

// submittedJob mirrors the shape of the seller-submission notification job:
// only the exported payload travels through the queue.
type submittedJob struct {
	SellerID string `json:"sellerId"`
}

func (j *submittedJob) Handle() error {
	notified.Lock()
	notified.sellers = append(notified.sellers, j.SellerID)
	notified.Unlock()
	return nil
}

// webhookJob stands in for a delivery that never succeeds.
type webhookJob struct {
	OrderID string `json:"orderId"`
}

func (j *webhookJob) Handle() error {
	return errors.New("webhook endpoint unreachable")
}

func init() {
	// Start workers so jobs actually get processed in tests.
	ctx, cancel := context.WithCancel(context.Background())
	_ = cancel
	queue.StartWorkers(ctx, 2)

	queue.Register("*queue_test.submittedJob", func() queue.Job { return &submittedJob{} })
	queue.Register("*queue_test.webhookJob", func() queue.Job { return &webhookJob{} })
}

// ─── Tests ────────────────────────────────────────────────────────────────────

func TestDispatchCarriesPayloadToHandler(t *testing.T) {
	if err := queue.Dispatch(&submittedJob{SellerID: "seller-77"}); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	time.Sleep(200 * time.Millisecond)

	notified.Lock()
	defer notified.Unlock()
	for _, id := range notified.sellers {
		if id == "seller-77" {
			return
		}
	}
	t.Errorf("seller-77 not handled; got %v", notified.sellers)
}

func TestFailedJobRetry(t *testing.T) {
	queue.SetMaxRetry(1)
	defer queue.SetMaxRetry(3)

	if err := queue.Dispatch(&webhookJob{OrderID: "ord-1"}); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	// 1 attempt + 1s backoff + slack.
	time.Sleep(2500 * time.Millisecond)

	if len(queue.FailedJobs()) == 0 {
		t.Error("expected at least one failed job")
	}
}

func TestDispatchConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(20)
	for i := 0; i < 20; i++ {
		i := i
		go func() {
			defer wg.Done()
			queue.Dispatch(&submittedJob{SellerID: "seller-" + string(rune('a'+i%26))}) //nolint:errcheck
		}()
	}
	wg.Wait()
}
