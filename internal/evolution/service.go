package evolution

import (
	"context"
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/i18n"
	"github.com/fomolabs/fomo-cms/internal/ordering"
)

// Service describes evolution level and badge management capabilities.
type Service interface {
	CreateLevel(ctx context.Context, input CreateLevelInput) (*Level, error)
	GetLevel(ctx context.Context, id uuid.UUID) (*Level, error)
	ListLevels(ctx context.Context) ([]*Level, error)
	UpdateLevel(ctx context.Context, input UpdateLevelInput) (*Level, error)
	DeleteLevel(ctx context.Context, id uuid.UUID) error
	ReorderLevels(ctx context.Context, updates []ordering.Update) ([]*Level, error)
	MoveLevel(ctx context.Context, id uuid.UUID, dir ordering.Direction) ([]*Level, error)

	CreateBadge(ctx context.Context, input CreateBadgeInput) (*Badge, error)
	GetBadge(ctx context.Context, id uuid.UUID) (*Badge, error)
	ListBadges(ctx context.Context) ([]*Badge, error)
	UpdateBadge(ctx context.Context, input UpdateBadgeInput) (*Badge, error)
	DeleteBadge(ctx context.Context, id uuid.UUID) error
	ReorderBadges(ctx context.Context, updates []ordering.Update) ([]*Badge, error)
	MoveBadge(ctx context.Context, id uuid.UUID, dir ordering.Direction) ([]*Badge, error)
}

// CreateLevelInput captures the information required to add a level.
type CreateLevelInput struct {
	Tier               i18n.Text      `json:"rank"`
	Description        i18n.Text      `json:"description"`
	FomoScoreMin       int            `json:"fomo_score_min"`
	FomoScoreMax       int            `json:"fomo_score_max"`
	NextLevel          string         `json:"next_level"`
	AnimationType      LevelAnimation `json:"animation_type"`
	AnimationSpeed     float64        `json:"animation_speed"`
	AnimationIntensity float64        `json:"animation_intensity"`
	GradientFrom       string         `json:"gradient_from"`
	GradientTo         string         `json:"gradient_to"`
}

// UpdateLevelInput captures mutable fields for a level.
type UpdateLevelInput struct {
	ID                 uuid.UUID       `json:"id"`
	Tier               *i18n.Text      `json:"rank,omitempty"`
	Description        *i18n.Text      `json:"description,omitempty"`
	FomoScoreMin       *int            `json:"fomo_score_min,omitempty"`
	FomoScoreMax       *int            `json:"fomo_score_max,omitempty"`
	NextLevel          *string         `json:"next_level,omitempty"`
	AnimationType      *LevelAnimation `json:"animation_type,omitempty"`
	AnimationSpeed     *float64        `json:"animation_speed,omitempty"`
	AnimationIntensity *float64        `json:"animation_intensity,omitempty"`
	GradientFrom       *string         `json:"gradient_from,omitempty"`
	GradientTo         *string         `json:"gradient_to,omitempty"`
}

// CreateBadgeInput captures the information required to add a badge.
type CreateBadgeInput struct {
	Name          i18n.Text      `json:"name"`
	Description   i18n.Text      `json:"description"`
	XPRequirement int            `json:"xp_requirement"`
	Condition     string         `json:"condition"`
	AnimationType BadgeAnimation `json:"animation_type"`
	GradientFrom  string         `json:"gradient_from"`
	GradientTo    string         `json:"gradient_to"`
}

// UpdateBadgeInput captures mutable fields for a badge.
type UpdateBadgeInput struct {
	ID            uuid.UUID       `json:"id"`
	Name          *i18n.Text      `json:"name,omitempty"`
	Description   *i18n.Text      `json:"description,omitempty"`
	XPRequirement *int            `json:"xp_requirement,omitempty"`
	Condition     *string         `json:"condition,omitempty"`
	AnimationType *BadgeAnimation `json:"animation_type,omitempty"`
	GradientFrom  *string         `json:"gradient_from,omitempty"`
	GradientTo    *string         `json:"gradient_to,omitempty"`
}

// ServiceOption configures evolution service behaviour.
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
	levels LevelRepository
	badges BadgeRepository
	now    func() time.Time
	newID  func() uuid.UUID
}

// NewService constructs an evolution service instance.
func NewService(levels LevelRepository, badges BadgeRepository, opts ...ServiceOption) Service {
	s := &service{
		levels: levels,
		badges: badges,
		now:    time.Now,
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CreateLevel(ctx context.Context, input CreateLevelInput) (*Level, error) {
	animation := input.AnimationType
	if animation == "" {
		animation = LevelAnimationStellar
	}

	errs := ozzo.Errors{}
	if input.Tier.IsZero() {
		errs["rank"] = ozzo.NewError("evolution.rank_required", "rank is required in at least one language")
	}
	if input.FomoScoreMin > input.FomoScoreMax {
		errs["fomo_score_min"] = ozzo.NewError("evolution.score_range_invalid", "fomo_score_min must not exceed fomo_score_max")
	}
	if !animation.Valid() {
		errs["animation_type"] = ozzo.NewError("evolution.animation_invalid", "unknown level animation type")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	existing, err := s.levels.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	speed := input.AnimationSpeed
	if speed == 0 {
		speed = 1
	}
	intensity := input.AnimationIntensity
	if intensity == 0 {
		intensity = 1
	}
	level := &Level{
		ID:                 s.newID(),
		Tier:               i18n.Mirror(input.Tier),
		Description:        i18n.Mirror(input.Description),
		FomoScoreMin:       input.FomoScoreMin,
		FomoScoreMax:       input.FomoScoreMax,
		NextLevel:          input.NextLevel,
		AnimationType:      animation,
		AnimationSpeed:     speed,
		AnimationIntensity: intensity,
		GradientFrom:       input.GradientFrom,
		GradientTo:         input.GradientTo,
		Position:           ordering.Next(existing),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	return s.levels.Create(ctx, level)
}

func (s *service) GetLevel(ctx context.Context, id uuid.UUID) (*Level, error) {
	return s.levels.GetByID(ctx, id)
}

func (s *service) ListLevels(ctx context.Context) ([]*Level, error) {
	records, err := s.levels.List(ctx)
	if err != nil {
		return nil, err
	}
	ordering.Sort(records)
	return records, nil
}

func (s *service) UpdateLevel(ctx context.Context, input UpdateLevelInput) (*Level, error) {
	errs := ozzo.Errors{}
	if input.ID == uuid.Nil {
		errs["id"] = ozzo.NewError("evolution.id_required", "level id is required")
	}
	if input.Tier != nil && input.Tier.IsZero() {
		errs["rank"] = ozzo.NewError("evolution.rank_required", "rank is required in at least one language")
	}
	if input.AnimationType != nil && !input.AnimationType.Valid() {
		errs["animation_type"] = ozzo.NewError("evolution.animation_invalid", "unknown level animation type")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	level, err := s.levels.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Tier != nil {
		level.Tier = i18n.Mirror(*input.Tier)
	}
	if input.Description != nil {
		level.Description = i18n.Mirror(*input.Description)
	}
	if input.FomoScoreMin != nil {
		level.FomoScoreMin = *input.FomoScoreMin
	}
	if input.FomoScoreMax != nil {
		level.FomoScoreMax = *input.FomoScoreMax
	}
	if level.FomoScoreMin > level.FomoScoreMax {
		return nil, ozzo.Errors{
			"fomo_score_min": ozzo.NewError("evolution.score_range_invalid", "fomo_score_min must not exceed fomo_score_max"),
		}
	}
	if input.NextLevel != nil {
		level.NextLevel = *input.NextLevel
	}
	if input.AnimationType != nil {
		level.AnimationType = *input.AnimationType
	}
	if input.AnimationSpeed != nil {
		level.AnimationSpeed = *input.AnimationSpeed
	}
	if input.AnimationIntensity != nil {
		level.AnimationIntensity = *input.AnimationIntensity
	}
	if input.GradientFrom != nil {
		level.GradientFrom = *input.GradientFrom
	}
	if input.GradientTo != nil {
		level.GradientTo = *input.GradientTo
	}

	level.UpdatedAt = s.now()
	return s.levels.Update(ctx, level)
}

func (s *service) DeleteLevel(ctx context.Context, id uuid.UUID) error {
	if _, err := s.levels.GetByID(ctx, id); err != nil {
		return err
	}
	return s.levels.Delete(ctx, id)
}

func (s *service) ReorderLevels(ctx context.Context, updates []ordering.Update) ([]*Level, error) {
	records, err := s.levels.List(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := ordering.Plan("evolution levels", records, updates)
	if err != nil {
		return nil, err
	}
	if err := s.applyLevelUpdates(ctx, records, plan); err != nil {
		return nil, err
	}
	return s.ListLevels(ctx)
}

func (s *service) MoveLevel(ctx context.Context, id uuid.UUID, dir ordering.Direction) ([]*Level, error) {
	records, err := s.levels.List(ctx)
	if err != nil {
		return nil, err
	}

	updates, err := ordering.Move("evolution levels", records, id, dir)
	if err != nil {
		return nil, err
	}
	if updates == nil {
		ordering.Sort(records)
		return records, nil
	}
	if err := s.applyLevelUpdates(ctx, records, updates); err != nil {
		return nil, err
	}
	return s.ListLevels(ctx)
}

func (s *service) CreateBadge(ctx context.Context, input CreateBadgeInput) (*Badge, error) {
	animation := input.AnimationType
	if animation == "" {
		animation = BadgeAnimationPioneer
	}

	errs := ozzo.Errors{}
	if input.Name.IsZero() {
		errs["name"] = ozzo.NewError("evolution.name_required", "name is required in at least one language")
	}
	if input.XPRequirement < 0 {
		errs["xp_requirement"] = ozzo.NewError("evolution.xp_invalid", "xp_requirement must be zero or positive")
	}
	if !animation.Valid() {
		errs["animation_type"] = ozzo.NewError("evolution.animation_invalid", "unknown badge animation type")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	existing, err := s.badges.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	badge := &Badge{
		ID:            s.newID(),
		Name:          i18n.Mirror(input.Name),
		Description:   i18n.Mirror(input.Description),
		XPRequirement: input.XPRequirement,
		Condition:     input.Condition,
		AnimationType: animation,
		GradientFrom:  input.GradientFrom,
		GradientTo:    input.GradientTo,
		Position:      ordering.Next(existing),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return s.badges.Create(ctx, badge)
}

func (s *service) GetBadge(ctx context.Context, id uuid.UUID) (*Badge, error) {
	return s.badges.GetByID(ctx, id)
}

func (s *service) ListBadges(ctx context.Context) ([]*Badge, error) {
	records, err := s.badges.List(ctx)
	if err != nil {
		return nil, err
	}
	ordering.Sort(records)
	return records, nil
}

func (s *service) UpdateBadge(ctx context.Context, input UpdateBadgeInput) (*Badge, error) {
	errs := ozzo.Errors{}
	if input.ID == uuid.Nil {
		errs["id"] = ozzo.NewError("evolution.id_required", "badge id is required")
	}
	if input.Name != nil && input.Name.IsZero() {
		errs["name"] = ozzo.NewError("evolution.name_required", "name is required in at least one language")
	}
	if input.XPRequirement != nil && *input.XPRequirement < 0 {
		errs["xp_requirement"] = ozzo.NewError("evolution.xp_invalid", "xp_requirement must be zero or positive")
	}
	if input.AnimationType != nil && !input.AnimationType.Valid() {
		errs["animation_type"] = ozzo.NewError("evolution.animation_invalid", "unknown badge animation type")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	badge, err := s.badges.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		badge.Name = i18n.Mirror(*input.Name)
	}
	if input.Description != nil {
		badge.Description = i18n.Mirror(*input.Description)
	}
	if input.XPRequirement != nil {
		badge.XPRequirement = *input.XPRequirement
	}
	if input.Condition != nil {
		badge.Condition = *input.Condition
	}
	if input.AnimationType != nil {
		badge.AnimationType = *input.AnimationType
	}
	if input.GradientFrom != nil {
		badge.GradientFrom = *input.GradientFrom
	}
	if input.GradientTo != nil {
		badge.GradientTo = *input.GradientTo
	}

	badge.UpdatedAt = s.now()
	return s.badges.Update(ctx, badge)
}

func (s *service) DeleteBadge(ctx context.Context, id uuid.UUID) error {
	if _, err := s.badges.GetByID(ctx, id); err != nil {
		return err
	}
	return s.badges.Delete(ctx, id)
}

func (s *service) ReorderBadges(ctx context.Context, updates []ordering.Update) ([]*Badge, error) {
	records, err := s.badges.List(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := ordering.Plan("evolution badges", records, updates)
	if err != nil {
		return nil, err
	}
	if err := s.applyBadgeUpdates(ctx, records, plan); err != nil {
		return nil, err
	}
	return s.ListBadges(ctx)
}

func (s *service) MoveBadge(ctx context.Context, id uuid.UUID, dir ordering.Direction) ([]*Badge, error) {
	records, err := s.badges.List(ctx)
	if err != nil {
		return nil, err
	}

	updates, err := ordering.Move("evolution badges", records, id, dir)
	if err != nil {
		return nil, err
	}
	if updates == nil {
		ordering.Sort(records)
		return records, nil
	}
	if err := s.applyBadgeUpdates(ctx, records, updates); err != nil {
		return nil, err
	}
	return s.ListBadges(ctx)
}

func (s *service) applyLevelUpdates(ctx context.Context, records []*Level, updates []ordering.Update) error {
	if len(updates) == 0 || !ordering.Changed(records, updates) {
		return nil
	}

	byID := make(map[uuid.UUID]*Level, len(records))
	for _, record := range records {
		byID[record.ID] = record
	}

	now := s.now()
	dirty := make([]*Level, 0, len(updates))
	for _, upd := range updates {
		record, ok := byID[upd.ID]
		if !ok {
			return &NotFoundError{Resource: "evolution_level", Key: upd.ID.String()}
		}
		record.Position = upd.Order
		record.UpdatedAt = now
		dirty = append(dirty, record)
	}
	return s.levels.BulkUpdatePositions(ctx, dirty)
}

func (s *service) applyBadgeUpdates(ctx context.Context, records []*Badge, updates []ordering.Update) error {
	if len(updates) == 0 || !ordering.Changed(records, updates) {
		return nil
	}

	byID := make(map[uuid.UUID]*Badge, len(records))
	for _, record := range records {
		byID[record.ID] = record
	}

	now := s.now()
	dirty := make([]*Badge, 0, len(updates))
	for _, upd := range updates {
		record, ok := byID[upd.ID]
		if !ok {
			return &NotFoundError{Resource: "evolution_badge", Key: upd.ID.String()}
		}
		record.Position = upd.Order
		record.UpdatedAt = now
		dirty = append(dirty, record)
	}
	return s.badges.BulkUpdatePositions(ctx, dirty)
}
