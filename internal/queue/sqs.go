package queue

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

const (
	sqsRegion      = "us-east-1"
	maxSQSWaitSecs = 20
)

type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// SQSQueue pushes and receives analysis jobs over AWS SQS. Messages are
// deleted as soon as they are received, so a job is delivered at most once
// even if processing later fails.
type SQSQueue struct {
	client   sqsAPI
	queueURL string
}

// NewSQSQueue constructs an SQS-backed queue from the environment.
// DF_SQS_QUEUE_URL must be set.
func NewSQSQueue(ctx context.Context) (*SQSQueue, error) {
	queueURL := strings.TrimSpace(os.Getenv("DF_SQS_QUEUE_URL"))
	if queueURL == "" {
		return nil, fmt.Errorf("DF_SQS_QUEUE_URL is required")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(sqsRegion))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &SQSQueue{
		client:   sqs.NewFromConfig(cfg),
		queueURL: queueURL,
	}, nil
}

// Push delivers a job to the configured SQS queue.
func (s *SQSQueue) Push(ctx context.Context, job Job) error {
	payload, err := EncodeJob(job)
	if err != nil {
		return fmt.Errorf("encode sqs job: %w", err)
	}

	_, err = s.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.queueURL),
		MessageBody: aws.String(string(payload)),
	})
	if err != nil {
		return fmt.Errorf("sqs send message: %w", err)
	}
	return nil
}

// Receive long-polls for a single job. The message is deleted before the
// job is returned; the caller is the sole consumer.
func (s *SQSQueue) Receive(ctx context.Context, wait time.Duration) (Job, bool, error) {
	waitSecs := int32(wait / time.Second)
	if waitSecs < 0 {
		waitSecs = 0
	}
	if waitSecs > maxSQSWaitSecs {
		waitSecs = maxSQSWaitSecs
	}

	resp, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(s.queueURL),
		MaxNumberOfMessages: 1,
		WaitTimeSeconds:     waitSecs,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Job{}, false, ctx.Err()
		}
		return Job{}, false, fmt.Errorf("sqs receive message: %w", err)
	}
	if len(resp.Messages) == 0 {
		return Job{}, false, nil
	}

	msg := resp.Messages[0]
	if _, err := s.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(s.queueURL),
		ReceiptHandle: msg.ReceiptHandle,
	}); err != nil {
		return Job{}, false, fmt.Errorf("sqs delete message: %w", err)
	}

	job, err := DecodeJob([]byte(aws.ToString(msg.Body)))
	if err != nil {
		return Job{}, false, fmt.Errorf("decode sqs job: %w", err)
	}
	return job, true, nil
}

var (
	_ Producer = (*SQSQueue)(nil)
	_ Consumer = (*SQSQueue)(nil)
)
