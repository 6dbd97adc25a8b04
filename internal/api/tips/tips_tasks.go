package tips

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/FACorreiaa/go-itinerary-map/internal/types"
)

// TaskManager runs tip generations in the background and keeps their state
// for polling. Records expire after the configured TTL.
type TaskManager struct {
	logger  *slog.Logger
	service Service
	tasks   *cache.Cache
	wg      sync.WaitGroup
	now     func() time.Time
}

func NewTaskManager(service Service, ttl, cleanupInterval time.Duration, logger *slog.Logger) *TaskManager {
	return &TaskManager{
		logger:  logger,
		service: service,
		tasks:   cache.New(ttl, cleanupInterval),
		now:     time.Now,
	}
}

// Start launches one generation for loc and returns the pending task. When
// the generator is disabled it returns types.ErrConfigurationMissing and
// nothing is launched. Each call issues a fresh request.
func (m *TaskManager) Start(ctx context.Context, loc types.Location) (types.TipTask, error) {
	if !m.service.Enabled() {
		return types.TipTask{}, types.ErrConfigurationMissing
	}

	task := types.TipTask{
		ID:           uuid.New(),
		LocationID:   loc.ID,
		LocationName: loc.Name,
		Status:       types.TipTaskPending,
		CreatedAt:    m.now(),
	}
	m.tasks.Set(task.ID.String(), task, cache.DefaultExpiration)

	// Outlives the request; generation is never cancelled once issued.
	bg := context.WithoutCancel(ctx)
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.run(bg, task)
	}()

	m.logger.InfoContext(ctx, "Tip task started",
		slog.String("task_id", task.ID.String()), slog.Int("location_id", loc.ID))
	return task, nil
}

func (m *TaskManager) run(ctx context.Context, task types.TipTask) {
	text, err := m.service.Generate(ctx, task.LocationName)
	done := m.now()
	task.CompletedAt = &done
	if err != nil {
		task.Status = types.TipTaskFailed
		task.Error = err.Error()
	} else {
		task.Status = types.TipTaskSucceeded
		task.Text = text
	}
	m.tasks.Set(task.ID.String(), task, cache.DefaultExpiration)
}

// Get returns the current state of a task.
func (m *TaskManager) Get(id uuid.UUID) (types.TipTask, error) {
	v, ok := m.tasks.Get(id.String())
	if !ok {
		return types.TipTask{}, fmt.Errorf("%w: %s", types.ErrTaskNotFound, id)
	}
	return v.(types.TipTask), nil
}

// Wait blocks until every started task has finished.
func (m *TaskManager) Wait() {
	m.wg.Wait()
}
