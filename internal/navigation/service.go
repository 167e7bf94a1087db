package navigation

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/i18n"
	"github.com/fomolabs/fomo-cms/internal/ordering"
)

var keyPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// Service describes navigation menu management capabilities.
type Service interface {
	CreateItem(ctx context.Context, input CreateItemInput) (*Item, error)
	GetItem(ctx context.Context, id uuid.UUID) (*Item, error)
	ListItems(ctx context.Context) ([]*Item, error)
	ListActiveItems(ctx context.Context) ([]*Item, error)
	UpdateItem(ctx context.Context, input UpdateItemInput) (*Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ReorderItems(ctx context.Context, updates []ordering.Update) ([]*Item, error)
	MoveItem(ctx context.Context, id uuid.UUID, dir ordering.Direction) ([]*Item, error)
}

type CreateItemInput struct {
	Key      string    `json:"key"`
	Label    i18n.Text `json:"label"`
	Href     string    `json:"href"`
	IsActive *bool     `json:"is_active,omitempty"`
}

type UpdateItemInput struct {
	ID       uuid.UUID  `json:"id"`
	Label    *i18n.Text `json:"label,omitempty"`
	Href     *string    `json:"href,omitempty"`
	IsActive *bool      `json:"is_active,omitempty"`
}

// ServiceOption configures navigation service behaviour.
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

type cacheInvalidator interface {
	InvalidateCache(ctx context.Context) error
}

func (s *service) invalidateCache(ctx context.Context) error {
	if invalidator, ok := s.repo.(cacheInvalidator); ok {
		return invalidator.InvalidateCache(ctx)
	}
	return nil
}

// NewService constructs a navigation service instance.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{repo: repo, now: time.Now, newID: uuid.New}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CreateItem(ctx context.Context, input CreateItemInput) (*Item, error) {
	errs := ozzo.Errors{}
	key := strings.TrimSpace(input.Key)
	if key == "" {
		errs["key"] = ozzo.NewError("navigation.key_required", "key is required")
	} else if !keyPattern.MatchString(key) {
		errs["key"] = ozzo.NewError("navigation.key_invalid", "key must be lowercase alphanumeric")
	}
	if input.Label.IsZero() {
		errs["label"] = ozzo.NewError("navigation.label_required", "label is required")
	}
	if strings.TrimSpace(input.Href) == "" {
		errs["href"] = ozzo.NewError("navigation.href_required", "href is required")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.repo.GetByKey(ctx, key); err == nil {
		return nil, ozzo.Errors{"key": ozzo.NewError("navigation.key_taken", "key already in use")}
	} else {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	active := input.IsActive == nil || *input.IsActive
	now := s.now()
	item := &Item{
		ID:        s.newID(),
		Key:       key,
		Label:     i18n.Mirror(input.Label),
		Href:      strings.TrimSpace(input.Href),
		IsActive:  active,
		Position:  ordering.Next(existing),
		CreatedAt: now,
		UpdatedAt: now,
	}
	record, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	if err := s.invalidateCache(ctx); err != nil {
		return nil, err
	}
	return record, nil
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

func (s *service) ListActiveItems(ctx context.Context) ([]*Item, error) {
	records, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	ordering.Sort(records)
	return records, nil
}

func (s *service) UpdateItem(ctx context.Context, input UpdateItemInput) (*Item, error) {
	errs := ozzo.Errors{}
	if input.ID == uuid.Nil {
		errs["id"] = ozzo.NewError("navigation.id_required", "item id is required")
	}
	if input.Label != nil && input.Label.IsZero() {
		errs["label"] = ozzo.NewError("navigation.label_required", "label cannot be cleared")
	}
	if input.Href != nil && strings.TrimSpace(*input.Href) == "" {
		errs["href"] = ozzo.NewError("navigation.href_required", "href cannot be cleared")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	item, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if input.Label != nil {
		item.Label = i18n.Mirror(*input.Label)
	}
	if input.Href != nil {
		item.Href = strings.TrimSpace(*input.Href)
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	item.UpdatedAt = s.now()
	record, err := s.repo.Update(ctx, item)
	if err != nil {
		return nil, err
	}
	if err := s.invalidateCache(ctx); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *service) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.invalidateCache(ctx)
}

func (s *service) ReorderItems(ctx context.Context, updates []ordering.Update) ([]*Item, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := ordering.Plan("navigation", records, updates)
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

	updates, err := ordering.Move("navigation", records, id, dir)
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
			return &NotFoundError{Resource: "navigation_item", Key: upd.ID.String()}
		}
		record.Position = upd.Order
		record.UpdatedAt = now
		dirty = append(dirty, record)
	}
	if err := s.repo.BulkUpdatePositions(ctx, dirty); err != nil {
		return err
	}
	return s.invalidateCache(ctx)
}
