package sqsqueue

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/google/go-cmp/cmp"
)

type scriptedSQS struct {
	mu       sync.Mutex
	batches  [][]types.Message
	cancel   context.CancelFunc
	receives int
	deleted  []string
}

func (s *scriptedSQS) ReceiveMessage(ctx context.Context, in *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receives++
	if len(s.batches) == 0 {
		s.cancel()
		return &sqs.ReceiveMessageOutput{}, nil
	}
	b := s.batches[0]
	s.batches = s.batches[1:]
	return &sqs.ReceiveMessageOutput{Messages: b}, nil
}

func (s *scriptedSQS) DeleteMessage(ctx context.Context, in *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, *in.ReceiptHandle)
	return &sqs.DeleteMessageOutput{}, nil
}

func msg(receipt string, body *string) types.Message {
	return types.Message{ReceiptHandle: str(receipt), Body: body}
}

func TestPollConcurrentDeletesOnlyFinishedOrPoison(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fake := &scriptedSQS{
		cancel: cancel,
		batches: [][]types.Message{{
			msg("ok", str(`{"jobId":"j1","advocate":{"id":"adv_1","firstName":"Jane","lastName":"Doe"}}`)),
			msg("retry", str(`{"jobId":"j2","advocate":{"id":"adv_2","firstName":"Sam","lastName":"Park"}}`)),
			msg("garbage", str(`{not json`)),
			msg("empty", nil),
		}},
	}
	c := &Consumer{SQS: fake, QueueURL: "q"}

	var mu sync.Mutex
	var handled []string
	err := c.PollConcurrent(ctx, 2, func(ctx context.Context, job AdvocateJob) error {
		mu.Lock()
		handled = append(handled, job.JobID)
		mu.Unlock()
		if job.JobID == "j2" {
			return errors.New("db unavailable")
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	sort.Strings(handled)
	if diff := cmp.Diff([]string{"j1", "j2"}, handled); diff != "" {
		t.Fatalf("handled mismatch (-want +got):\n%s", diff)
	}
	sort.Strings(fake.deleted)
	if diff := cmp.Diff([]string{"empty", "garbage", "ok"}, fake.deleted); diff != "" {
		t.Fatalf("deleted mismatch (-want +got):\n%s", diff)
	}
}
