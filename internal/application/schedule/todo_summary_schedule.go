package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"todo-api/internal/domain/gateway/lock"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

// TodoSummaryScheduler periodically publishes the todo.summary event. The job runs under locker;
// with a RedisLeaseLocker a single replica publishes per tick.
type TodoSummaryScheduler struct {
	cron           *cron.Cron
	useCase        todo.UseCase
	locker         lock.Locker
	cronExpression string
	timeout        time.Duration
}

// NewTodoSummaryScheduler creates the scheduler. A nil locker runs the job without coordination.
func NewTodoSummaryScheduler(useCase todo.UseCase, locker lock.Locker, cronExpression string) *TodoSummaryScheduler {
	if locker == nil {
		locker = lock.NewLocalLocker()
	}
	return &TodoSummaryScheduler{
		cron:           cron.New(),
		useCase:        useCase,
		locker:         locker,
		cronExpression: cronExpression,
		timeout:        time.Minute,
	}
}

// InitTodoSummaryScheduleTasks registers the summary job and starts the cron.
func (s *TodoSummaryScheduler) InitTodoSummaryScheduleTasks() error {
	if _, err := s.cron.AddFunc(s.cronExpression, s.PublishSummary); err != nil {
		return fmt.Errorf("invalid summary cron %q: %w", s.cronExpression, err)
	}

	s.cron.Start()
	log.Infof("Todo summary scheduler started with cron expression: %s", s.cronExpression)
	return nil
}

// PublishSummary executes one summary run.
func (s *TodoSummaryScheduler) PublishSummary() {
	requestID := uuid.New().String()
	log.Info(msg.GetMessage("todo.summary.start"), zap.String("request_id", requestID))

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	err := s.locker.WithLock(ctx, func(ctx context.Context) error {
		summary, err := s.useCase.PublishSummary(ctx)
		if err != nil {
			return err
		}
		log.Info(msg.GetMessage("todo.summary.end", summary), zap.String("request_id", requestID))
		return nil
	})
	switch {
	case errors.Is(err, lock.ErrNotAcquired):
		log.Info(msg.GetMessage("todo.summary.skipped"), zap.String("request_id", requestID))
	case err != nil:
		log.Error(msg.GetMessage("todo.summary.failed", err), zap.String("request_id", requestID))
	}
}

// Stop gracefully stops the scheduler, waiting for a running job.
func (s *TodoSummaryScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
