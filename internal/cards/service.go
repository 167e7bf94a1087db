package cards

import (
	"context"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/i18n"
	"github.com/fomolabs/fomo-cms/internal/logging"
	"github.com/fomolabs/fomo-cms/internal/ordering"
	"github.com/fomolabs/fomo-cms/pkg/interfaces"
)

// Service describes drawer card management capabilities.
type Service interface {
	CreateCard(ctx context.Context, input CreateCardInput) (*Card, error)
	GetCard(ctx context.Context, id uuid.UUID) (*Card, error)
	ListCards(ctx context.Context) ([]*Card, error)
	UpdateCard(ctx context.Context, input UpdateCardInput) (*Card, error)
	DeleteCard(ctx context.Context, id uuid.UUID) error
	ReorderCards(ctx context.Context, updates []ordering.Update) ([]*Card, error)
	MoveCard(ctx context.Context, id uuid.UUID, dir ordering.Direction) ([]*Card, error)
}

// CreateCardInput captures the information required to add a drawer card.
type CreateCardInput struct {
	Title    i18n.Text `json:"title"`
	Link     string    `json:"link"`
	ImageURL string    `json:"image_url"`
}

// Validate checks the payload before any repository work happens.
func (in CreateCardInput) Validate() error {
	errs := validation.Errors{}
	if in.Title.IsZero() {
		errs["title"] = validation.NewError("cards.title_required", "title is required in at least one language")
	}
	if strings.TrimSpace(in.Link) == "" {
		errs["link"] = validation.NewError("cards.link_required", "link is required")
	}
	if strings.TrimSpace(in.ImageURL) == "" {
		errs["image_url"] = validation.NewError("cards.image_url_required", "image_url is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateCardInput captures mutable fields for a drawer card. Nil pointers
// leave the stored value untouched.
type UpdateCardInput struct {
	ID       uuid.UUID  `json:"id"`
	Title    *i18n.Text `json:"title,omitempty"`
	Link     *string    `json:"link,omitempty"`
	ImageURL *string    `json:"image_url,omitempty"`
}

// Validate checks the payload before any repository work happens.
func (in UpdateCardInput) Validate() error {
	errs := validation.Errors{}
	if in.ID == uuid.Nil {
		errs["id"] = validation.NewError("cards.id_required", "card id is required")
	}
	if in.Title != nil && in.Title.IsZero() {
		errs["title"] = validation.NewError("cards.title_required", "title is required in at least one language")
	}
	if in.Link != nil && strings.TrimSpace(*in.Link) == "" {
		errs["link"] = validation.NewError("cards.link_required", "link cannot be cleared")
	}
	if in.ImageURL != nil && strings.TrimSpace(*in.ImageURL) == "" {
		errs["image_url"] = validation.NewError("cards.image_url_required", "image_url cannot be cleared")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ServiceOption configures card service behaviour.
type ServiceOption func(*service)

// WithClock overrides the internal time source.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides the record ID generator.
func WithIDGenerator(generator func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.newID = generator
		}
	}
}

// WithLogger wires the logger used for service diagnostics.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	repo   Repository
	now    func() time.Time
	newID  func() uuid.UUID
	logger interfaces.Logger
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

// NewService constructs a drawer card service instance.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		now:    time.Now,
		newID:  uuid.New,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateCard appends a new card to the end of the drawer strip. Language
// variants are mirrored so a single-language submission renders in both.
func (s *service) CreateCard(ctx context.Context, input CreateCardInput) (*Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	card := &Card{
		ID:        s.newID(),
		Title:     i18n.Mirror(input.Title),
		Link:      strings.TrimSpace(input.Link),
		ImageURL:  strings.TrimSpace(input.ImageURL),
		Position:  ordering.Next(existing),
		CreatedAt: now,
		UpdatedAt: now,
	}

	record, err := s.repo.Create(ctx, card)
	if err != nil {
		return nil, err
	}
	if err := s.invalidateCache(ctx); err != nil {
		return nil, err
	}
	s.logger.Debug("drawer card created", "id", record.ID, "position", record.Position)
	return record, nil
}

func (s *service) GetCard(ctx context.Context, id uuid.UUID) (*Card, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListCards(ctx context.Context) ([]*Card, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ordering.Sort(records)
	return records, nil
}

func (s *service) UpdateCard(ctx context.Context, input UpdateCardInput) (*Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	card, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		card.Title = i18n.Mirror(*input.Title)
	}
	if input.Link != nil {
		card.Link = strings.TrimSpace(*input.Link)
	}
	if input.ImageURL != nil {
		card.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	card.UpdatedAt = s.now()

	record, err := s.repo.Update(ctx, card)
	if err != nil {
		return nil, err
	}
	if err := s.invalidateCache(ctx); err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteCard removes a card. Remaining positions keep their gaps until the
// next reorder normalizes them.
func (s *service) DeleteCard(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.invalidateCache(ctx)
}

// ReorderCards applies a full-set reorder submission. Positions are
// normalized to the dense 0..n-1 range before persisting.
func (s *service) ReorderCards(ctx context.Context, updates []ordering.Update) ([]*Card, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := ordering.Plan("cards", records, updates)
	if err != nil {
		return nil, err
	}
	if err := s.applyUpdates(ctx, records, plan); err != nil {
		return nil, err
	}
	return s.ListCards(ctx)
}

// MoveCard shifts one card a single step. Moves past either boundary leave
// the collection untouched.
func (s *service) MoveCard(ctx context.Context, id uuid.UUID, dir ordering.Direction) ([]*Card, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	updates, err := ordering.Move("cards", records, id, dir)
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
	return s.ListCards(ctx)
}

// applyUpdates submits the full position set in one bulk write so every
// successful reorder leaves the collection a dense 0..n-1 permutation.
func (s *service) applyUpdates(ctx context.Context, records []*Card, updates []ordering.Update) error {
	if len(updates) == 0 || !ordering.Changed(records, updates) {
		return nil
	}

	byID := make(map[uuid.UUID]*Card, len(records))
	for _, record := range records {
		byID[record.ID] = record
	}

	now := s.now()
	dirty := make([]*Card, 0, len(updates))
	for _, upd := range updates {
		record, ok := byID[upd.ID]
		if !ok {
			return &NotFoundError{Resource: "drawer_card", Key: upd.ID.String()}
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
