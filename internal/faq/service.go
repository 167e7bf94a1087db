package faq

import (
	"context"
	"strings"
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/ordering"
)

// Service describes FAQ management capabilities.
type Service interface {
	CreateItem(ctx context.Context, input CreateItemInput) (*Item, error)
	GetItem(ctx context.Context, id uuid.UUID) (*Item, error)
	ListItems(ctx context.Context) ([]*Item, error)
	UpdateItem(ctx context.Context, input UpdateItemInput) (*Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ReorderItems(ctx context.Context, updates []ordering.Update) ([]*Item, error)
	MoveItem(ctx context.Context, id uuid.UUID, dir ordering.Direction) ([]*Item, error)
}

type CreateItemInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type UpdateItemInput struct {
	ID       uuid.UUID `json:"id"`
	Question *string   `json:"question,omitempty"`
	Answer   *string   `json:"answer,omitempty"`
}

// ServiceOption configures FAQ service behaviour.
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

// NewService constructs a FAQ service instance.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{repo: repo, now: time.Now, newID: uuid.New}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CreateItem(ctx context.Context, input CreateItemInput) (*Item, error) {
	errs := ozzo.Errors{}
	if strings.TrimSpace(input.Question) == "" {
		errs["question"] = ozzo.NewError("faq.question_required", "question is required")
	}
	if strings.TrimSpace(input.Answer) == "" {
		errs["answer"] = ozzo.NewError("faq.answer_required", "answer is required")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	item := &Item{
		ID:        s.newID(),
		Question:  strings.TrimSpace(input.Question),
		Answer:    strings.TrimSpace(input.Answer),
		Position:  ordering.Next(existing),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.repo.Create(ctx, item)
}

func (s *service) GetItem(ctx context.Context, id uuid.UUID) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListItems(ctx context.Context) ([]*Item, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ordering.Sort(records)
	return records, nil
}

func (s *service) UpdateItem(ctx context.Context, input UpdateItemInput) (*Item, error) {
	errs := ozzo.Errors{}
	if input.ID == uuid.Nil {
		errs["id"] = ozzo.NewError("faq.id_required", "item id is required")
	}
	if input.Question != nil && strings.TrimSpace(*input.Question) == "" {
		errs["question"] = ozzo.NewError("faq.question_required", "question cannot be cleared")
	}
	if input.Answer != nil && strings.TrimSpace(*input.Answer) == "" {
		errs["answer"] = ozzo.NewError("faq.answer_required", "answer cannot be cleared")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	item, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if input.Question != nil {
		item.Question = strings.TrimSpace(*input.Question)
	}
	if input.Answer != nil {
		item.Answer = strings.TrimSpace(*input.Answer)
	}
	item.UpdatedAt = s.now()
	return s.repo.Update(ctx, item)
}

func (s *service) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) ReorderItems(ctx context.Context, updates []ordering.Update) ([]*Item, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := ordering.Plan("faq", records, updates)
	if err != nil {
		return nil, err
	}
	if err := s.applyUpdates(ctx, records, plan); err != nil {
		return nil, err
	}
	return s.ListItems(ctx)
}

func (s *service) MoveItem(ctx context.Context, id uuid.UUID, dir ordering.Direction) ([]*Item, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	updates, err := ordering.Move("faq", records, id, dir)
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
	return s.ListItems(ctx)
}

func (s *service) applyUpdates(ctx context.Context, records []*Item, updates []ordering.Update) error {
	if len(updates) == 0 || !ordering.Changed(records, updates) {
		return nil
	}

	byID := make(map[uuid.UUID]*Item, len(records))
	for _, record := range records {
		byID[record.ID] = record
	}

	now := s.now()
	dirty := make([]*Item, 0, len(updates))
	for _, upd := range updates {
		record, ok := byID[upd.ID]
		if !ok {
			return &NotFoundError{Resource: "faq_item", Key: upd.ID.String()}
		}
		record.Position = upd.Order
		record.UpdatedAt = now
		dirty = append(dirty, record)
	}
	return s.repo.BulkUpdatePositions(ctx, dirty)
}
