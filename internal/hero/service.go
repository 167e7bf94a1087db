package hero

import (
	"context"
	"strings"
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/ordering"
	"github.com/fomolabs/fomo-cms/internal/validation"
)

// Service describes hero button management capabilities.
type Service interface {
	CreateButton(ctx context.Context, input CreateButtonInput) (*Button, error)
	GetButton(ctx context.Context, id uuid.UUID) (*Button, error)
	ListButtons(ctx context.Context) ([]*Button, error)
	ListActiveButtons(ctx context.Context) ([]*Button, error)
	UpdateButton(ctx context.Context, input UpdateButtonInput) (*Button, error)
	DeleteButton(ctx context.Context, id uuid.UUID) error
	ReorderButtons(ctx context.Context, updates []ordering.Update) ([]*Button, error)
	MoveButton(ctx context.Context, id uuid.UUID, dir ordering.Direction) ([]*Button, error)
}

type CreateButtonInput struct {
	Label    string      `json:"label"`
	URL      string      `json:"url"`
	Style    ButtonStyle `json:"style"`
	IsActive *bool       `json:"is_active,omitempty"`
}

type UpdateButtonInput struct {
	ID       uuid.UUID    `json:"id"`
	Label    *string      `json:"label,omitempty"`
	URL      *string      `json:"url,omitempty"`
	Style    *ButtonStyle `json:"style,omitempty"`
	IsActive *bool        `json:"is_active,omitempty"`
}

// ServiceOption configures hero service behaviour.
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

// WithActiveLimit overrides the cap on simultaneously active buttons.
func WithActiveLimit(limit int) ServiceOption {
	return func(s *service) {
		if limit > 0 {
			s.activeLimit = limit
		}
	}
}

const defaultActiveLimit = 3

type service struct {
	repo        Repository
	now         func() time.Time
	newID       func() uuid.UUID
	activeLimit int
}

// NewService constructs a hero button service instance.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:        repo,
		now:         time.Now,
		newID:       uuid.New,
		activeLimit: defaultActiveLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateButton appends a button. Adding an active button past the cap fails
// with a CapacityError before anything is written.
func (s *service) CreateButton(ctx context.Context, input CreateButtonInput) (*Button, error) {
	style := input.Style
	if style == "" {
		style = StylePrimary
	}

	errs := ozzo.Errors{}
	if strings.TrimSpace(input.Label) == "" {
		errs["label"] = ozzo.NewError("hero.label_required", "label is required")
	}
	if strings.TrimSpace(input.URL) == "" {
		errs["url"] = ozzo.NewError("hero.url_required", "url is required")
	}
	if !style.Valid() {
		errs["style"] = ozzo.NewError("hero.style_invalid", "style must be primary, secondary, or outline")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	active := input.IsActive == nil || *input.IsActive
	if active {
		if err := s.checkActiveCapacity(ctx, uuid.Nil); err != nil {
			return nil, err
		}
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	button := &Button{
		ID:        s.newID(),
		Label:     strings.TrimSpace(input.Label),
		URL:       strings.TrimSpace(input.URL),
		Style:     style,
		IsActive:  active,
		Position:  ordering.Next(existing),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.repo.Create(ctx, button)
}

func (s *service) GetButton(ctx context.Context, id uuid.UUID) (*Button, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListButtons(ctx context.Context) ([]*Button, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ordering.Sort(records)
	return records, nil
}

func (s *service) ListActiveButtons(ctx context.Context) ([]*Button, error) {
	records, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	ordering.Sort(records)
	return records, nil
}

func (s *service) UpdateButton(ctx context.Context, input UpdateButtonInput) (*Button, error) {
	errs := ozzo.Errors{}
	if input.ID == uuid.Nil {
		errs["id"] = ozzo.NewError("hero.id_required", "button id is required")
	}
	if input.Label != nil && strings.TrimSpace(*input.Label) == "" {
		errs["label"] = ozzo.NewError("hero.label_required", "label cannot be cleared")
	}
	if input.URL != nil && strings.TrimSpace(*input.URL) == "" {
		errs["url"] = ozzo.NewError("hero.url_required", "url cannot be cleared")
	}
	if input.Style != nil && !input.Style.Valid() {
		errs["style"] = ozzo.NewError("hero.style_invalid", "style must be primary, secondary, or outline")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	button, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.IsActive != nil && *input.IsActive && !button.IsActive {
		if err := s.checkActiveCapacity(ctx, button.ID); err != nil {
			return nil, err
		}
	}

	if input.Label != nil {
		button.Label = strings.TrimSpace(*input.Label)
	}
	if input.URL != nil {
		button.URL = strings.TrimSpace(*input.URL)
	}
	if input.Style != nil {
		button.Style = *input.Style
	}
	if input.IsActive != nil {
		button.IsActive = *input.IsActive
	}

	button.UpdatedAt = s.now()
	return s.repo.Update(ctx, button)
}

func (s *service) DeleteButton(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) ReorderButtons(ctx context.Context, updates []ordering.Update) ([]*Button, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := ordering.Plan("hero buttons", records, updates)
	if err != nil {
		return nil, err
	}
	if err := s.applyUpdates(ctx, records, plan); err != nil {
		return nil, err
	}
	return s.ListButtons(ctx)
}

func (s *service) MoveButton(ctx context.Context, id uuid.UUID, dir ordering.Direction) ([]*Button, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	updates, err := ordering.Move("hero buttons", records, id, dir)
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
	return s.ListButtons(ctx)
}

func (s *service) checkActiveCapacity(ctx context.Context, exclude uuid.UUID) error {
	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return err
	}
	count := 0
	for _, button := range active {
		if button.ID != exclude {
			count++
		}
	}
	if count >= s.activeLimit {
		return &validation.CapacityError{Resource: "active hero buttons", Limit: s.activeLimit}
	}
	return nil
}

func (s *service) applyUpdates(ctx context.Context, records []*Button, updates []ordering.Update) error {
	if len(updates) == 0 || !ordering.Changed(records, updates) {
		return nil
	}

	byID := make(map[uuid.UUID]*Button, len(records))
	for _, record := range records {
		byID[record.ID] = record
	}

	now := s.now()
	dirty := make([]*Button, 0, len(updates))
	for _, upd := range updates {
		record, ok := byID[upd.ID]
		if !ok {
			return &NotFoundError{Resource: "hero_button", Key: upd.ID.String()}
		}
		record.Position = upd.Order
		record.UpdatedAt = now
		dirty = append(dirty, record)
	}
	return s.repo.BulkUpdatePositions(ctx, dirty)
}
