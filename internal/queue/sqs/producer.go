package sqsqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"advocates/internal/domain"
	"advocates/internal/observability"
)

type SendAPI interface {
	SendMessage(ctx context.Context, in *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

type Producer struct {
	SQS      SendAPI
	QueueURL string
	// GroupBuckets spreads FIFO message groups; updates to one advocate always share a group.
	GroupBuckets int
}

// AdvocateJob asks the worker to upsert one advocate.
type AdvocateJob struct {
	JobID      string          `json:"jobId"`
	Advocate   domain.Advocate `json:"advocate"`
	EnqueuedAt time.Time       `json:"enqueuedAt"`
}

func (p *Producer) EnqueueAdvocate(ctx context.Context, job AdvocateJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return err
	}
	_, err = p.SQS.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:               &p.QueueURL,
		MessageBody:            str(string(body)),
		MessageGroupId:         str(messageGroupIDBucketed(job.Advocate.ID, p.GroupBuckets)),
		MessageDeduplicationId: str(job.JobID),
	})
	if err != nil {
		observability.Enqueues.WithLabelValues("error").Inc()
		return err
	}
	observability.Enqueues.WithLabelValues("ok").Inc()
	return nil
}

const defaultGroupBuckets = 64

func messageGroupIDBucketed(advocateID string, buckets int) string {
	if buckets <= 0 {
		buckets = defaultGroupBuckets
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(advocateID))
	return fmt.Sprintf("advocates-%d", h.Sum32()%uint32(buckets))
}

func str(s string) *string { return &s }
