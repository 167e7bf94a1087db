package roadmap

import (
	"context"
	"strings"
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/i18n"
	"github.com/fomolabs/fomo-cms/internal/ordering"
)

// Service describes roadmap task management capabilities.
type Service interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	ListTasksByCategory(ctx context.Context, category string) ([]*Task, error)
	UpdateTask(ctx context.Context, input UpdateTaskInput) (*Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
	ReorderTasks(ctx context.Context, updates []ordering.Update) ([]*Task, error)
	MoveTask(ctx context.Context, id uuid.UUID, dir ordering.Direction) ([]*Task, error)
}

type CreateTaskInput struct {
	Name     i18n.Text `json:"name"`
	Status   Status    `json:"status"`
	Category string    `json:"category"`
}

type UpdateTaskInput struct {
	ID       uuid.UUID  `json:"id"`
	Name     *i18n.Text `json:"name,omitempty"`
	Status   *Status    `json:"status,omitempty"`
	Category *string    `json:"category,omitempty"`
}

// ServiceOption configures roadmap service behaviour.
type ServiceOption func(*service)

func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

func WithIDGenerator(generator func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.newID = generator
		}
	}
}

type service struct {
	repo  Repository
	now   func() time.Time
	newID func() uuid.UUID
}

// NewService constructs a roadmap service instance.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{repo: repo, now: time.Now, newID: uuid.New}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CreateTask(ctx context.Context, input CreateTaskInput) (*Task, error) {
	status := input.Status
	if status == "" {
		status = StatusProgress
	}

	errs := ozzo.Errors{}
	if input.Name.IsZero() {
		errs["name"] = ozzo.NewError("roadmap.name_required", "name is required in at least one language")
	}
	if !status.Valid() {
		errs["status"] = ozzo.NewError("roadmap.status_invalid", "status must be done or progress")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	task := &Task{
		ID:        s.newID(),
		Name:      i18n.Mirror(input.Name),
		Status:    status,
		Category:  strings.TrimSpace(input.Category),
		Position:  ordering.Next(existing),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.repo.Create(ctx, task)
}

func (s *service) GetTask(ctx context.Context, id uuid.UUID) (*Task, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListTasks(ctx context.Context) ([]*Task, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ordering.Sort(records)
	return records, nil
}

func (s *service) ListTasksByCategory(ctx context.Context, category string) ([]*Task, error) {
	records, err := s.repo.ListByCategory(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, err
	}
	ordering.Sort(records)
	return records, nil
}

func (s *service) UpdateTask(ctx context.Context, input UpdateTaskInput) (*Task, error) {
	errs := ozzo.Errors{}
	if input.ID == uuid.Nil {
		errs["id"] = ozzo.NewError("roadmap.id_required", "task id is required")
	}
	if input.Name != nil && input.Name.IsZero() {
		errs["name"] = ozzo.NewError("roadmap.name_required", "name is required in at least one language")
	}
	if input.Status != nil && !input.Status.Valid() {
		errs["status"] = ozzo.NewError("roadmap.status_invalid", "status must be done or progress")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	task, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		task.Name = i18n.Mirror(*input.Name)
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Category != nil {
		task.Category = strings.TrimSpace(*input.Category)
	}
	task.UpdatedAt = s.now()
	return s.repo.Update(ctx, task)
}

func (s *service) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) ReorderTasks(ctx context.Context, updates []ordering.Update) ([]*Task, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := ordering.Plan("roadmap", records, updates)
	if err != nil {
		return nil, err
	}
	if err := s.applyUpdates(ctx, records, plan); err != nil {
		return nil, err
	}
	return s.ListTasks(ctx)
}

func (s *service) MoveTask(ctx context.Context, id uuid.UUID, dir ordering.Direction) ([]*Task, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	updates, err := ordering.Move("roadmap", records, id, dir)
	if err != nil {
		return nil, err
	}
	if updates == nil {
		ordering.Sort(records)
		return records, nil
	}
	if err := s.applyUpdates(ctx, records, updates); err != nil {
		return nil, err
	}
	return s.ListTasks(ctx)
}

func (s *service) applyUpdates(ctx context.Context, records []*Task, updates []ordering.Update) error {
	if len(updates) == 0 || !ordering.Changed(records, updates) {
		return nil
	}

	byID := make(map[uuid.UUID]*Task, len(records))
	for _, record := range records {
		byID[record.ID] = record
	}

	now := s.now()
	dirty := make([]*Task, 0, len(updates))
	for _, upd := range updates {
		record, ok := byID[upd.ID]
		if !ok {
			return &NotFoundError{Resource: "roadmap_task", Key: upd.ID.String()}
		}
		record.Position = upd.Order
		record.UpdatedAt = now
		dirty = append(dirty, record)
	}
	return s.repo.BulkUpdatePositions(ctx, dirty)
}
