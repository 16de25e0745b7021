package queue

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/unclebandit/formatkit/internal/model"
)

func newTestQueue() *InMemoryQueue {
	q := NewInMemoryQueue(nil)
	q.Backoff = func(int) time.Duration { return 0 }
	return q
}

func TestPublishWithoutSubscribers(t *testing.T) {
	q := newTestQueue()
	if err := q.Publish("nobody", 1); err == nil {
		t.Fatal("expected error when no subscriber is registered")
	}
}

func TestPublishFansOut(t *testing.T) {
	defer goleak.VerifyNone(t)

	q := newTestQueue()
	var calls atomic.Int32
	for i := 0; i < 3; i++ {
		_ = q.Subscribe("t", func(payload any) error {
			if payload.(int) != 42 {
				t.Errorf("unexpected payload %v", payload)
			}
			calls.Add(1)
			return nil
		})
	}
	if err := q.Publish("t", 42); err != nil {
		t.Fatalf("publish: %v", err)
	}
	q.Wait()
	if calls.Load() != 3 {
		t.Errorf("expected 3 deliveries, got %d", calls.Load())
	}
}

func TestRetryUntilSuccess(t *testing.T) {
	defer goleak.VerifyNone(t)

	q := newTestQueue()
	var calls atomic.Int32
	_ = q.Subscribe("t", func(any) error {
		if calls.Add(1) < 3 {
			return errors.New("transient")
		}
		return nil
	})
	_ = q.Publish("t", "x")
	q.Wait()
	if calls.Load() != 3 {
		t.Errorf("expected 3 attempts, got %d", calls.Load())
	}
}

func TestRetryGivesUp(t *testing.T) {
	defer goleak.VerifyNone(t)

	q := newTestQueue()
	var calls atomic.Int32
	_ = q.Subscribe("t", func(any) error {
		calls.Add(1)
		return errors.New("always")
	})
	_ = q.Publish("t", "x")
	q.Wait()
	if want := int32(DefaultMaxRetries + 1); calls.Load() != want {
		t.Errorf("expected %d attempts, got %d", want, calls.Load())
	}
}

type recordingImporter struct {
	mu    sync.Mutex
	got   [][]model.Customer
	fails int
}

func (r *recordingImporter) Import(_ context.Context, customers []model.Customer) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fails > 0 {
		r.fails--
		return 0, errors.New("db down")
	}
	r.got = append(r.got, customers)
	return len(customers), nil
}

func TestImportSubscriber(t *testing.T) {
	defer goleak.VerifyNone(t)

	q := newTestQueue()
	imp := &recordingImporter{fails: 1}
	if err := StartImportSubscriber(context.Background(), q, TopicCustomerImports, imp, nil); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	batch := model.ImportBatch{Customers: []model.Customer{{ID: "1", Name: "A"}}}
	_ = q.Publish(TopicCustomerImports, batch)
	_ = q.Publish(TopicCustomerImports, "garbage")
	q.Wait()

	if diff := cmp.Diff([][]model.Customer{batch.Customers}, imp.got); diff != "" {
		t.Errorf("imported batches mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeBatch(t *testing.T) {
	customers := []model.Customer{{ID: "1", Name: "A", Age: model.NumericAge(20), IsSubscribed: true}}
	raw, _ := json.Marshal(model.ImportBatch{Customers: customers})

	for name, payload := range map[string]any{
		"value":   model.ImportBatch{Customers: customers},
		"pointer": &model.ImportBatch{Customers: customers},
		"slice":   customers,
		"raw":     json.RawMessage(raw),
		"bytes":   raw,
	} {
		got, err := DecodeBatch(payload)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if diff := cmp.Diff(customers, got.Customers); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}

	if _, err := DecodeBatch(17); err == nil {
		t.Error("expected error for int payload")
	}
	if _, err := DecodeBatch(json.RawMessage(`{"customers": 3}`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
