package scrape

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/machinehub/discovery-pipeline/constants"
	"github.com/machinehub/discovery-pipeline/internal/common"
	"github.com/machinehub/discovery-pipeline/internal/entity"
	"github.com/machinehub/discovery-pipeline/internal/ledger"
	"github.com/machinehub/discovery-pipeline/internal/repository"
)

// fakeExtractor drives the orchestrator without HTTP. failSubstr marks URLs
// whose extraction should fail; delay simulates a slow extraction service.
type fakeExtractor struct {
	failSubstr string
	pingErr    error
	delay      time.Duration

	mu          sync.Mutex
	calls       int
	inFlight    int64
	maxObserved int64
}

func (f *fakeExtractor) Extract(_ context.Context, url string, _ *string) (map[string]any, error) {
	cur := atomic.AddInt64(&f.inFlight, 1)
	defer atomic.AddInt64(&f.inFlight, -1)
	for {
		prev := atomic.LoadInt64(&f.maxObserved)
		if cur <= prev || atomic.CompareAndSwapInt64(&f.maxObserved, prev, cur) {
			break
		}
	}

	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.failSubstr != "" && strings.Contains(url, f.failSubstr) {
		return nil, errors.New("extraction failed upstream")
	}
	return map[string]any{"name": url}, nil
}

func (f *fakeExtractor) Ping(context.Context) error { return f.pingErr }

func (f *fakeExtractor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func setup(t *testing.T, n int) (*ledger.Service, []*entity.DiscoveredURL) {
	t.Helper()
	store := repository.NewMemoryStore()
	lg := ledger.NewService(store.URLs(), store.Machines(), nil)
	mf := store.AddManufacturer(&entity.Manufacturer{Name: "Haas"})

	urls := make([]*entity.DiscoveredURL, 0, n)
	for i := 0; i < n; i++ {
		u, err := lg.Register(context.Background(), mf.ID, fmt.Sprintf("https://haas.example/machine-%02d", i), nil)
		if err != nil {
			t.Fatalf("register: %v", err)
		}
		urls = append(urls, u)
	}
	return lg, urls
}

func TestDispatchEveryURLReachesTerminalStatus(t *testing.T) {
	lg, urls := setup(t, 8)
	ext := &fakeExtractor{failSubstr: "machine-03"}
	o := NewOrchestrator(lg, ext, nil)

	ctx := context.Background()
	h, err := o.Dispatch(ctx, urls, urls[0].ManufacturerID, 3)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if err := h.Wait(ctx); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if h.Status() != constants.BatchCompleted {
		t.Errorf("batch status = %q, want COMPLETED", h.Status())
	}

	outcomes := h.Snapshot()
	if len(outcomes) != len(urls) {
		t.Fatalf("outcomes = %d, want %d", len(outcomes), len(urls))
	}

	for _, u := range urls {
		got, err := lg.Get(ctx, u.ID)
		if err != nil {
			t.Fatalf("get %s: %v", u.ID, err)
		}
		switch {
		case strings.Contains(u.URL, "machine-03"):
			if got.Status != constants.ScrapeFailed {
				t.Errorf("url %s status = %q, want failed", u.URL, got.Status)
			}
			if got.ErrorMessage == nil {
				t.Errorf("url %s has no error message", u.URL)
			}
		default:
			if got.Status != constants.ScrapeScraped {
				t.Errorf("url %s status = %q, want scraped", u.URL, got.Status)
			}
		}
	}
}

func TestDispatchRespectsWorkerCap(t *testing.T) {
	lg, urls := setup(t, 12)
	ext := &fakeExtractor{delay: 20 * time.Millisecond}
	o := NewOrchestrator(lg, ext, nil)

	ctx := context.Background()
	h, err := o.Dispatch(ctx, urls, urls[0].ManufacturerID, 3)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if err := h.Wait(ctx); err != nil {
		t.Fatalf("wait: %v", err)
	}

	if got := atomic.LoadInt64(&ext.maxObserved); got > 3 {
		t.Errorf("max concurrent extractions = %d, want <= 3", got)
	}
	if ext.callCount() != len(urls) {
		t.Errorf("extract calls = %d, want %d", ext.callCount(), len(urls))
	}
}

func TestDispatchRejectedWhenServiceUnreachable(t *testing.T) {
	lg, urls := setup(t, 3)
	ext := &fakeExtractor{pingErr: errors.New("connection refused")}
	o := NewOrchestrator(lg, ext, nil)

	ctx := context.Background()
	_, err := o.Dispatch(ctx, urls, urls[0].ManufacturerID, 2)
	if err == nil {
		t.Fatal("dispatch succeeded with unreachable extraction service")
	}
	if ext.callCount() != 0 {
		t.Errorf("extract calls = %d, want 0", ext.callCount())
	}

	// rejection must leave every URL selectable for a later batch
	for _, u := range urls {
		got, _ := lg.Get(ctx, u.ID)
		if got.Status != constants.ScrapePending {
			t.Errorf("url %s status = %q, want pending", u.URL, got.Status)
		}
	}
}

func TestDispatchEmptyBatchRejected(t *testing.T) {
	lg, _ := setup(t, 0)
	o := NewOrchestrator(lg, &fakeExtractor{}, nil)

	_, err := o.Dispatch(context.Background(), nil, uuid.Nil, 2)
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestDispatchDeduplicatesWithinBatch(t *testing.T) {
	lg, urls := setup(t, 1)
	ext := &fakeExtractor{}
	o := NewOrchestrator(lg, ext, nil)

	ctx := context.Background()
	h, err := o.Dispatch(ctx, []*entity.DiscoveredURL{urls[0], urls[0], urls[0]}, urls[0].ManufacturerID, 3)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if err := h.Wait(ctx); err != nil {
		t.Fatalf("wait: %v", err)
	}

	if h.Total != 1 {
		t.Errorf("batch total = %d, want 1 after in-batch dedupe", h.Total)
	}
	if ext.callCount() != 1 {
		t.Errorf("extract calls = %d, want 1", ext.callCount())
	}
}

func TestDispatchDropsResultForAlreadyTerminalURL(t *testing.T) {
	lg, urls := setup(t, 1)
	ctx := context.Background()

	// land a first outcome out of band
	first, err := lg.ApplyScrapeResult(ctx, urls[0].ID, ledger.Success(map[string]any{"name": "original"}))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	ext := &fakeExtractor{}
	o := NewOrchestrator(lg, ext, nil)
	h, err := o.Dispatch(ctx, urls, urls[0].ManufacturerID, 1)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if err := h.Wait(ctx); err != nil {
		t.Fatalf("wait: %v", err)
	}

	got, _ := lg.Get(ctx, urls[0].ID)
	if got.ScrapedFields["name"] != "original" {
		t.Errorf("first outcome clobbered: %v", got.ScrapedFields)
	}
	if !got.ScrapedAt.Equal(*first.ScrapedAt) {
		t.Error("scraped_at changed by dropped second result")
	}

	outcomes := h.Snapshot()
	if len(outcomes) != 1 || outcomes[0].Success {
		t.Errorf("dropped result must surface as a failed outcome: %+v", outcomes)
	}
}

func TestBatchLookup(t *testing.T) {
	lg, urls := setup(t, 2)
	o := NewOrchestrator(lg, &fakeExtractor{}, nil)

	ctx := context.Background()
	h, err := o.Dispatch(ctx, urls, urls[0].ManufacturerID, 2)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	got, ok := o.Batch(h.ID)
	if !ok || got != h {
		t.Error("dispatched batch not retrievable by id")
	}
	if err := h.Wait(ctx); err != nil {
		t.Fatalf("wait: %v", err)
	}
}
