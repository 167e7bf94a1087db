package team

import (
	"context"
	"maps"
	"slices"
	"strings"
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/i18n"
	"github.com/fomolabs/fomo-cms/internal/logging"
	"github.com/fomolabs/fomo-cms/internal/ordering"
	"github.com/fomolabs/fomo-cms/internal/validation"
	"github.com/fomolabs/fomo-cms/pkg/interfaces"
)

// Service describes team member management capabilities.
type Service interface {
	CreateMember(ctx context.Context, input CreateMemberInput) (*Member, error)
	GetMember(ctx context.Context, id uuid.UUID) (*Member, error)
	ListMembers(ctx context.Context) ([]*Member, error)
	ListMembersByType(ctx context.Context, memberType MemberType) ([]*Member, error)
	UpdateMember(ctx context.Context, input UpdateMemberInput) (*Member, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error
	ReorderMembers(ctx context.Context, updates []ordering.Update) ([]*Member, error)
	MoveMember(ctx context.Context, id uuid.UUID, dir ordering.Direction) ([]*Member, error)
}

// CreateMemberInput captures the information required to add a team member.
type CreateMemberInput struct {
	Name             i18n.Text                 `json:"name"`
	Role             i18n.Text                 `json:"role"`
	Bio              i18n.Text                 `json:"bio"`
	ImageURL         string                    `json:"image_url"`
	SocialLinks      map[SocialPlatform]string `json:"social_links"`
	DisplayedSocials []SocialPlatform          `json:"displayed_socials"`
	MemberType       MemberType                `json:"member_type"`
}

// UpdateMemberInput captures mutable fields for a team member.
type UpdateMemberInput struct {
	ID               uuid.UUID                 `json:"id"`
	Name             *i18n.Text                `json:"name,omitempty"`
	Role             *i18n.Text                `json:"role,omitempty"`
	Bio              *i18n.Text                `json:"bio,omitempty"`
	ImageURL         *string                   `json:"image_url,omitempty"`
	SocialLinks      map[SocialPlatform]string `json:"social_links,omitempty"`
	DisplayedSocials []SocialPlatform          `json:"displayed_socials,omitempty"`
	MemberType       *MemberType               `json:"member_type,omitempty"`
}

// ServiceOption configures team service behaviour.
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

// WithDisplayedSocialsLimit overrides the cap on publicly shown socials.
func WithDisplayedSocialsLimit(limit int) ServiceOption {
	return func(s *service) {
		if limit > 0 {
			s.socialsLimit = limit
		}
	}
}

const defaultSocialsLimit = 4

type service struct {
	repo         Repository
	now          func() time.Time
	newID        func() uuid.UUID
	logger       interfaces.Logger
	socialsLimit int
}

// NewService constructs a team member service instance.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:         repo,
		now:          time.Now,
		newID:        uuid.New,
		logger:       logging.NoOp(),
		socialsLimit: defaultSocialsLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CreateMember(ctx context.Context, input CreateMemberInput) (*Member, error) {
	memberType := input.MemberType
	if memberType == "" {
		memberType = MemberTypeRegular
	}

	errs := ozzo.Errors{}
	if input.Name.IsZero() {
		errs["name"] = ozzo.NewError("team.name_required", "name is required in at least one language")
	}
	if !memberType.Valid() {
		errs["member_type"] = ozzo.NewError("team.member_type_invalid", "member type must be main or team_member")
	}
	if strings.TrimSpace(input.ImageURL) == "" {
		errs["image_url"] = ozzo.NewError("team.image_url_required", "image_url is required")
	}
	validateSocials(errs, input.SocialLinks, input.DisplayedSocials)
	if len(errs) > 0 {
		return nil, errs
	}
	if len(input.DisplayedSocials) > s.socialsLimit {
		return nil, &validation.CapacityError{Resource: "team member displayed socials", Limit: s.socialsLimit}
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	member := &Member{
		ID:               s.newID(),
		Name:             i18n.Mirror(input.Name),
		Role:             i18n.Mirror(input.Role),
		Bio:              i18n.Mirror(input.Bio),
		ImageURL:         strings.TrimSpace(input.ImageURL),
		SocialLinks:      maps.Clone(input.SocialLinks),
		DisplayedSocials: slices.Clone(input.DisplayedSocials),
		MemberType:       memberType,
		Position:         ordering.Next(existing),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	record, err := s.repo.Create(ctx, member)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("team member created", "id", record.ID, "type", record.MemberType)
	return record, nil
}

func (s *service) GetMember(ctx context.Context, id uuid.UUID) (*Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListMembers(ctx context.Context) ([]*Member, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ordering.Sort(records)
	return records, nil
}

func (s *service) ListMembersByType(ctx context.Context, memberType MemberType) ([]*Member, error) {
	records, err := s.repo.ListByType(ctx, memberType)
	if err != nil {
		return nil, err
	}
	ordering.Sort(records)
	return records, nil
}

func (s *service) UpdateMember(ctx context.Context, input UpdateMemberInput) (*Member, error) {
	errs := ozzo.Errors{}
	if input.ID == uuid.Nil {
		errs["id"] = ozzo.NewError("team.id_required", "member id is required")
	}
	if input.Name != nil && input.Name.IsZero() {
		errs["name"] = ozzo.NewError("team.name_required", "name is required in at least one language")
	}
	if input.MemberType != nil && !input.MemberType.Valid() {
		errs["member_type"] = ozzo.NewError("team.member_type_invalid", "member type must be main or team_member")
	}
	if input.ImageURL != nil && strings.TrimSpace(*input.ImageURL) == "" {
		errs["image_url"] = ozzo.NewError("team.image_url_required", "image_url cannot be cleared")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	member, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		member.Name = i18n.Mirror(*input.Name)
	}
	if input.Role != nil {
		member.Role = i18n.Mirror(*input.Role)
	}
	if input.Bio != nil {
		member.Bio = i18n.Mirror(*input.Bio)
	}
	if input.ImageURL != nil {
		member.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.SocialLinks != nil {
		member.SocialLinks = maps.Clone(input.SocialLinks)
	}
	if input.DisplayedSocials != nil {
		member.DisplayedSocials = slices.Clone(input.DisplayedSocials)
	}
	if input.MemberType != nil {
		member.MemberType = *input.MemberType
	}

	socialErrs := ozzo.Errors{}
	validateSocials(socialErrs, member.SocialLinks, member.DisplayedSocials)
	if len(socialErrs) > 0 {
		return nil, socialErrs
	}
	if len(member.DisplayedSocials) > s.socialsLimit {
		return nil, &validation.CapacityError{Resource: "team member displayed socials", Limit: s.socialsLimit}
	}

	member.UpdatedAt = s.now()
	return s.repo.Update(ctx, member)
}

func (s *service) DeleteMember(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) ReorderMembers(ctx context.Context, updates []ordering.Update) ([]*Member, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := ordering.Plan("team", records, updates)
	if err != nil {
		return nil, err
	}
	if err := s.applyUpdates(ctx, records, plan); err != nil {
		return nil, err
	}
	return s.ListMembers(ctx)
}

func (s *service) MoveMember(ctx context.Context, id uuid.UUID, dir ordering.Direction) ([]*Member, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	updates, err := ordering.Move("team", records, id, dir)
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
	return s.ListMembers(ctx)
}

func (s *service) applyUpdates(ctx context.Context, records []*Member, updates []ordering.Update) error {
	if len(updates) == 0 || !ordering.Changed(records, updates) {
		return nil
	}

	byID := make(map[uuid.UUID]*Member, len(records))
	for _, record := range records {
		byID[record.ID] = record
	}

	now := s.now()
	dirty := make([]*Member, 0, len(updates))
	for _, upd := range updates {
		record, ok := byID[upd.ID]
		if !ok {
			return &NotFoundError{Resource: "team_member", Key: upd.ID.String()}
		}
		record.Position = upd.Order
		record.UpdatedAt = now
		dirty = append(dirty, record)
	}
	return s.repo.BulkUpdatePositions(ctx, dirty)
}

func validateSocials(errs ozzo.Errors, links map[SocialPlatform]string, displayed []SocialPlatform) {
	for platform := range links {
		if !platform.Valid() {
			errs["social_links"] = ozzo.NewError("team.social_platform_invalid", "unknown social platform "+string(platform))
		}
	}
	seen := make(map[SocialPlatform]struct{}, len(displayed))
	for _, platform := range displayed {
		if !platform.Valid() {
			errs["displayed_socials"] = ozzo.NewError("team.social_platform_invalid", "unknown social platform "+string(platform))
			continue
		}
		if _, dup := seen[platform]; dup {
			errs["displayed_socials"] = ozzo.NewError("team.social_duplicate", "duplicate displayed social "+string(platform))
			continue
		}
		seen[platform] = struct{}{}
		if links[platform] == "" {
			errs["displayed_socials"] = ozzo.NewError("team.social_unlinked", "displayed social has no configured link: "+string(platform))
		}
	}
}
