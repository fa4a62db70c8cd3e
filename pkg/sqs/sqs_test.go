package sqs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testQueueURL = "http://localhost:4566/000000000000/todo-commands"

type fakeClient struct {
	mutex       sync.Mutex
	urlLookups  int
	urlErr      error
	sent        []*sqs.SendMessageInput
	deleted     []string
	pending     chan types.Message
	receiveErrs int
}

func newFakeClient(messages ...types.Message) *fakeClient {
	pending := make(chan types.Message, len(messages)+1)
	for _, message := range messages {
		pending <- message
	}
	return &fakeClient{pending: pending}
}

func (c *fakeClient) GetQueueUrl(_ context.Context, _ *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.urlLookups++
	if c.urlErr != nil {
		return nil, c.urlErr
	}
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String(testQueueURL)}, nil
}

func (c *fakeClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.sent = append(c.sent, params)
	return &sqs.SendMessageOutput{MessageId: aws.String("id")}, nil
}

func (c *fakeClient) ReceiveMessage(ctx context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	c.mutex.Lock()
	if c.receiveErrs > 0 {
		c.receiveErrs--
		c.mutex.Unlock()
		return nil, errors.New("receive failed")
	}
	c.mutex.Unlock()

	select {
	case message := <-c.pending:
		return &sqs.ReceiveMessageOutput{Messages: []types.Message{message}}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *fakeClient) DeleteMessage(_ context.Context, params *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.deleted = append(c.deleted, aws.ToString(params.ReceiptHandle))
	return &sqs.DeleteMessageOutput{}, nil
}

func (c *fakeClient) deletedHandles() []string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return append([]string(nil), c.deleted...)
}

func message(id string) types.Message {
	return types.Message{
		MessageId:     aws.String(id),
		ReceiptHandle: aws.String("rh-" + id),
		Body:          aws.String(`{"action":"create"}`),
	}
}

func TestSender_SendMessage(t *testing.T) {
	client := newFakeClient()
	sender := NewSender(client)
	ctx := context.Background()

	body := map[string]string{"type": "todo.created"}
	require.NoError(t, sender.SendMessage(ctx, "todo-events", body, map[string]string{"event_type": "todo.created"}))
	require.NoError(t, sender.SendMessage(ctx, "todo-events", body, nil))

	assert.Equal(t, 1, client.urlLookups)
	require.Len(t, client.sent, 2)
	assert.Equal(t, testQueueURL, aws.ToString(client.sent[0].QueueUrl))
	assert.JSONEq(t, `{"type":"todo.created"}`, aws.ToString(client.sent[0].MessageBody))
	assert.Equal(t, "todo.created", aws.ToString(client.sent[0].MessageAttributes["event_type"].StringValue))
	assert.Equal(t, "String", aws.ToString(client.sent[0].MessageAttributes["event_type"].DataType))
	assert.Nil(t, client.sent[1].MessageAttributes)
}

func TestSender_QueueLookupFails(t *testing.T) {
	client := newFakeClient()
	client.urlErr = errors.New("no such queue")

	err := NewSender(client).SendMessage(context.Background(), "missing", "x", nil)
	assert.ErrorIs(t, err, client.urlErr)
	assert.Empty(t, client.sent)
}

func TestSender_UnserializableBody(t *testing.T) {
	err := NewSender(newFakeClient()).SendMessage(context.Background(), "q", make(chan int), nil)
	assert.Error(t, err)
}

func TestNewWorker_Validation(t *testing.T) {
	ctx := context.Background()
	handler := HandlerFunc(func(*types.Message) error { return nil })

	_, err := NewWorker(ctx, newFakeClient(), "q", handler, &WorkerConfig{MaxNumberOfMessages: 11})
	assert.Error(t, err)
	_, err = NewWorker(ctx, newFakeClient(), "q", handler, &WorkerConfig{WaitTimeSeconds: 21})
	assert.Error(t, err)
	_, err = NewWorker(ctx, newFakeClient(), "q", handler, &WorkerConfig{PoolSize: -1})
	assert.Error(t, err)

	failing := newFakeClient()
	failing.urlErr = errors.New("no such queue")
	_, err = NewWorker(ctx, failing, "q", handler, nil)
	assert.ErrorIs(t, err, failing.urlErr)
}

func TestWorker_ProcessesAndDeletes(t *testing.T) {
	client := newFakeClient(message("1"), message("2"), message("3"))
	handled := make(chan string, 3)
	handler := HandlerFunc(func(msg *types.Message) error {
		id := aws.ToString(msg.MessageId)
		handled <- id
		if id == "2" {
			return errors.New("bad command")
		}
		return nil
	})

	worker, err := NewWorker(context.Background(), client, "todo-commands", handler, &WorkerConfig{WaitTimeSeconds: 1})
	require.NoError(t, err)
	assert.Equal(t, StatusDown, worker.HealthCheck().Status)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	for i := 0; i < 3; i++ {
		select {
		case <-handled:
		case <-time.After(2 * time.Second):
			t.Fatal("message was not handled")
		}
	}

	require.Eventually(t, func() bool {
		return len(client.deletedHandles()) == 2
	}, time.Second, 10*time.Millisecond)
	assert.ElementsMatch(t, []string{"rh-1", "rh-3"}, client.deletedHandles())

	health := worker.HealthCheck()
	assert.Equal(t, StatusUp, health.Status)
	assert.Equal(t, "2", health.Details["processed"])
	assert.Equal(t, "1", health.Details["failed"])
	assert.Equal(t, "todo-commands", health.Details["queue"])

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
	assert.Equal(t, StatusDown, worker.HealthCheck().Status)
}

func TestWorker_RecordsReceiveErrors(t *testing.T) {
	client := newFakeClient(message("1"))
	client.receiveErrs = 1
	handled := make(chan struct{}, 1)

	worker, err := NewWorker(context.Background(), client, "q", HandlerFunc(func(*types.Message) error {
		handled <- struct{}{}
		return nil
	}), &WorkerConfig{ErrorBackoff: time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Start(ctx)

	select {
	case <-handled:
	case <-time.After(2 * time.Second):
		t.Fatal("message was not handled after a receive error")
	}
	assert.Equal(t, "receive failed", worker.HealthCheck().Details["last_error"])
}

func TestStringAttribute(t *testing.T) {
	msg := &types.Message{MessageAttributes: map[string]types.MessageAttributeValue{
		"event_type": {DataType: aws.String("String"), StringValue: aws.String("todo.deleted")},
	}}

	assert.Equal(t, "todo.deleted", StringAttribute(msg, "event_type"))
	assert.Equal(t, "", StringAttribute(msg, "missing"))
	assert.Equal(t, "", StringAttribute(nil, "event_type"))
}
