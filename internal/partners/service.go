package partners

import (
	"context"
	"strings"
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/i18n"
	"github.com/fomolabs/fomo-cms/internal/logging"
	"github.com/fomolabs/fomo-cms/internal/ordering"
	"github.com/fomolabs/fomo-cms/pkg/interfaces"
)

// Service describes partner management capabilities. Ordering is scoped to a
// category: each of the three grids keeps its own dense position sequence.
type Service interface {
	CreatePartner(ctx context.Context, input CreatePartnerInput) (*Partner, error)
	GetPartner(ctx context.Context, id uuid.UUID) (*Partner, error)
	ListPartners(ctx context.Context) ([]*Partner, error)
	ListPartnersByCategory(ctx context.Context, category Category) ([]*Partner, error)
	UpdatePartner(ctx context.Context, input UpdatePartnerInput) (*Partner, error)
	DeletePartner(ctx context.Context, id uuid.UUID) error
	ReorderPartners(ctx context.Context, category Category, updates []ordering.Update) ([]*Partner, error)
	MovePartner(ctx context.Context, id uuid.UUID, dir ordering.Direction) ([]*Partner, error)
}

// CreatePartnerInput captures the information required to add a partner.
type CreatePartnerInput struct {
	Name        i18n.Text `json:"name"`
	Description i18n.Text `json:"description"`
	Link        string    `json:"link"`
	ImageURL    string    `json:"image_url"`
	Category    Category  `json:"category"`
}

// UpdatePartnerInput captures mutable fields for a partner.
type UpdatePartnerInput struct {
	ID          uuid.UUID  `json:"id"`
	Name        *i18n.Text `json:"name,omitempty"`
	Description *i18n.Text `json:"description,omitempty"`
	Link        *string    `json:"link,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	Category    *Category  `json:"category,omitempty"`
}

// ServiceOption configures partner service behaviour.
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

// NewService constructs a partner service instance.
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

func (s *service) CreatePartner(ctx context.Context, input CreatePartnerInput) (*Partner, error) {
	category := input.Category
	if category == "" {
		category = CategoryPartners
	}

	errs := ozzo.Errors{}
	if input.Name.IsZero() {
		errs["name"] = ozzo.NewError("partners.name_required", "name is required in at least one language")
	}
	if !category.Valid() {
		errs["category"] = ozzo.NewError("partners.category_invalid", "category must be partners, media, or portfolio")
	}
	if strings.TrimSpace(input.ImageURL) == "" {
		errs["image_url"] = ozzo.NewError("partners.image_url_required", "image_url is required")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	siblings, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	now := s.now()
	partner := &Partner{
		ID:          s.newID(),
		Name:        i18n.Mirror(input.Name),
		Description: i18n.Mirror(input.Description),
		Link:        strings.TrimSpace(input.Link),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		Category:    category,
		Position:    ordering.Next(siblings),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	record, err := s.repo.Create(ctx, partner)
	if err != nil {
		return nil, err
	}
	if err := s.invalidateCache(ctx); err != nil {
		return nil, err
	}
	s.logger.Debug("partner created", "id", record.ID, "category", record.Category)
	return record, nil
}

func (s *service) GetPartner(ctx context.Context, id uuid.UUID) (*Partner, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListPartners(ctx context.Context) ([]*Partner, error) {
	return s.repo.List(ctx)
}

func (s *service) ListPartnersByCategory(ctx context.Context, category Category) ([]*Partner, error) {
	records, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	ordering.Sort(records)
	return records, nil
}

// UpdatePartner merges the submitted fields. Moving a partner to another
// category appends it at the end of that category's grid.
func (s *service) UpdatePartner(ctx context.Context, input UpdatePartnerInput) (*Partner, error) {
	errs := ozzo.Errors{}
	if input.ID == uuid.Nil {
		errs["id"] = ozzo.NewError("partners.id_required", "partner id is required")
	}
	if input.Name != nil && input.Name.IsZero() {
		errs["name"] = ozzo.NewError("partners.name_required", "name is required in at least one language")
	}
	if input.Category != nil && !input.Category.Valid() {
		errs["category"] = ozzo.NewError("partners.category_invalid", "category must be partners, media, or portfolio")
	}
	if input.ImageURL != nil && strings.TrimSpace(*input.ImageURL) == "" {
		errs["image_url"] = ozzo.NewError("partners.image_url_required", "image_url cannot be cleared")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	partner, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		partner.Name = i18n.Mirror(*input.Name)
	}
	if input.Description != nil {
		partner.Description = i18n.Mirror(*input.Description)
	}
	if input.Link != nil {
		partner.Link = strings.TrimSpace(*input.Link)
	}
	if input.ImageURL != nil {
		partner.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.Category != nil && *input.Category != partner.Category {
		siblings, err := s.repo.ListByCategory(ctx, *input.Category)
		if err != nil {
			return nil, err
		}
		partner.Category = *input.Category
		partner.Position = ordering.Next(siblings)
	}

	partner.UpdatedAt = s.now()
	record, err := s.repo.Update(ctx, partner)
	if err != nil {
		return nil, err
	}
	if err := s.invalidateCache(ctx); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *service) DeletePartner(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.invalidateCache(ctx)
}

func (s *service) ReorderPartners(ctx context.Context, category Category, updates []ordering.Update) ([]*Partner, error) {
	records, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	plan, err := ordering.Plan("partners", records, updates)
	if err != nil {
		return nil, err
	}
	if err := s.applyUpdates(ctx, records, plan); err != nil {
		return nil, err
	}
	return s.ListPartnersByCategory(ctx, category)
}

func (s *service) MovePartner(ctx context.Context, id uuid.UUID, dir ordering.Direction) ([]*Partner, error) {
	partner, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListByCategory(ctx, partner.Category)
	if err != nil {
		return nil, err
	}

	updates, err := ordering.Move("partners", records, id, dir)
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
	return s.ListPartnersByCategory(ctx, partner.Category)
}

func (s *service) applyUpdates(ctx context.Context, records []*Partner, updates []ordering.Update) error {
	if len(updates) == 0 || !ordering.Changed(records, updates) {
		return nil
	}

	byID := make(map[uuid.UUID]*Partner, len(records))
	for _, record := range records {
		byID[record.ID] = record
	}

	now := s.now()
	dirty := make([]*Partner, 0, len(updates))
	for _, upd := range updates {
		record, ok := byID[upd.ID]
		if !ok {
			return &NotFoundError{Resource: "partner", Key: upd.ID.String()}
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
