package sqsqueue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	dto "github.com/prometheus/client_model/go"

	"advocates/internal/domain"
	"advocates/internal/observability"
)

func TestMessageGroupIDBucketed(t *testing.T) {
	got1 := messageGroupIDBucketed("adv_1", 16)
	got2 := messageGroupIDBucketed("adv_1", 16)
	if got1 != got2 {
		t.Fatalf("expected stable group id, got %q vs %q", got1, got2)
	}
	if len(got1) == 0 {
		t.Fatalf("expected non-empty group id")
	}

	// buckets<=0 should use default.
	if got3 := messageGroupIDBucketed("adv_1", 0); got3 != messageGroupIDBucketed("adv_1", defaultGroupBuckets) {
		t.Fatalf("expected default bucket count, got %q", got3)
	}
}

type captureSQS struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (c *captureSQS) SendMessage(ctx context.Context, in *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	c.inputs = append(c.inputs, in)
	if c.err != nil {
		return nil, c.err
	}
	return &sqs.SendMessageOutput{}, nil
}

func enqueueCount(t *testing.T, result string) float64 {
	t.Helper()
	var m dto.Metric
	if err := observability.Enqueues.WithLabelValues(result).Write(&m); err != nil {
		t.Fatalf("read enqueue counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

func TestEnqueueAdvocateCountsResults(t *testing.T) {
	okBefore, errBefore := enqueueCount(t, "ok"), enqueueCount(t, "error")
	job := AdvocateJob{JobID: "job_2", Advocate: domain.Advocate{ID: "adv_2", FirstName: "Sam", LastName: "Park"}}

	p := &Producer{SQS: &captureSQS{}, QueueURL: "q"}
	if err := p.EnqueueAdvocate(context.Background(), job); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	boom := errors.New("throttled")
	p.SQS = &captureSQS{err: boom}
	if err := p.EnqueueAdvocate(context.Background(), job); !errors.Is(err, boom) {
		t.Fatalf("expected send error, got %v", err)
	}

	if got := enqueueCount(t, "ok") - okBefore; got != 1 {
		t.Fatalf("ok enqueues counted %v, want 1", got)
	}
	if got := enqueueCount(t, "error") - errBefore; got != 1 {
		t.Fatalf("failed enqueues counted %v, want 1", got)
	}
}

func TestEnqueueAdvocate(t *testing.T) {
	fake := &captureSQS{}
	p := &Producer{SQS: fake, QueueURL: "https://sqs.local/advocates.fifo", GroupBuckets: 8}

	job := AdvocateJob{
		JobID:      "job_1",
		Advocate:   domain.Advocate{ID: "adv_1", FirstName: "Jane", LastName: "Doe", PhoneNumber: domain.NewPhone(5551234567)},
		EnqueuedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := p.EnqueueAdvocate(context.Background(), job); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if len(fake.inputs) != 1 {
		t.Fatalf("expected one send, got %d", len(fake.inputs))
	}
	in := fake.inputs[0]
	if *in.QueueUrl != p.QueueURL || *in.MessageDeduplicationId != "job_1" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if *in.MessageGroupId != messageGroupIDBucketed("adv_1", 8) {
		t.Fatalf("group id = %q", *in.MessageGroupId)
	}

	var decoded AdvocateJob
	if err := json.Unmarshal([]byte(*in.MessageBody), &decoded); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if decoded.Advocate.PhoneNumber.Digits != "5551234567" || decoded.Advocate.FullName() != "Jane Doe" {
		t.Fatalf("unexpected body: %+v", decoded)
	}
}
