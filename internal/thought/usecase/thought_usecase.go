package usecase

import (
	"fmt"

	authdomain "happy-thoughts-backend/internal/auth/domain"
	"happy-thoughts-backend/internal/common"
	"happy-thoughts-backend/internal/thought/domain"
	"happy-thoughts-backend/internal/thought/dto"
	"happy-thoughts-backend/internal/thought/repository"

	"github.com/google/uuid"
)

// ListLimit caps the feed at the most recent 20 thoughts.
const ListLimit = 20

// thoughtUsecase implements ThoughtUsecase interface
type thoughtUsecase struct {
	thoughtRepo repository.ThoughtRepository
	authEnabled bool
}

// NewThoughtUsecase creates a new instance of thoughtUsecase. authEnabled
// selects the full variant (attribution + ownership checks) over the
// simplified one (anonymous thoughts, anyone may edit or delete).
func NewThoughtUsecase(thoughtRepo repository.ThoughtRepository, authEnabled bool) ThoughtUsecase {
	return &thoughtUsecase{
		thoughtRepo: thoughtRepo,
		authEnabled: authEnabled,
	}
}

func (u *thoughtUsecase) List() ([]*dto.ThoughtResponse, error) {
	thoughts, err := u.thoughtRepo.FindRecent(ListLimit)
	if err != nil {
		return nil, err
	}
	return dto.NewThoughtResponseList(thoughts), nil
}

func (u *thoughtUsecase) Get(id string) (*dto.ThoughtResponse, error) {
	thought, err := u.findByValidID(id)
	if err != nil {
		return nil, err
	}
	return dto.NewThoughtResponse(thought), nil
}

func (u *thoughtUsecase) Create(req *dto.CreateThoughtRequest, user *authdomain.User) (*dto.ThoughtResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	thought := &domain.Thought{
		Message: req.Message,
		Hearts:  0,
	}
	if u.authEnabled && user != nil {
		thought.UserID = user.ID
		thought.User = user
	}

	if err := u.thoughtRepo.Create(thought); err != nil {
		return nil, err
	}

	return dto.NewThoughtResponse(thought), nil
}

func (u *thoughtUsecase) Update(id string, req *dto.UpdateThoughtRequest, user *authdomain.User) (*dto.ThoughtResponse, error) {
	thought, err := u.findByValidID(id)
	if err != nil {
		return nil, err
	}

	if err := u.checkOwnership(thought, user); err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := u.thoughtRepo.UpdateMessage(thought.ID, req.Message); err != nil {
		return nil, err
	}
	thought.Message = req.Message

	return dto.NewThoughtResponse(thought), nil
}

func (u *thoughtUsecase) Delete(id string, user *authdomain.User) (*dto.ThoughtResponse, error) {
	thought, err := u.findByValidID(id)
	if err != nil {
		return nil, err
	}

	if err := u.checkOwnership(thought, user); err != nil {
		return nil, err
	}

	if err := u.thoughtRepo.Delete(thought.ID); err != nil {
		return nil, err
	}

	return dto.NewThoughtResponse(thought), nil
}

func (u *thoughtUsecase) Like(id string) (*dto.ThoughtResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrInvalidID
	}

	ok, err := u.thoughtRepo.IncrementHearts(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("thought not found: %w", common.ErrNotFound)
	}

	thought, err := u.thoughtRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if thought == nil {
		// Deleted between the increment and the read-back
		return nil, fmt.Errorf("thought not found: %w", common.ErrNotFound)
	}

	return dto.NewThoughtResponse(thought), nil
}

// findByValidID parses the path identifier and loads the thought, mapping a
// malformed identifier to ErrInvalidID and a missing row to ErrNotFound.
func (u *thoughtUsecase) findByValidID(id string) (*domain.Thought, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrInvalidID
	}

	thought, err := u.thoughtRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if thought == nil {
		return nil, fmt.Errorf("thought not found: %w", common.ErrNotFound)
	}
	return thought, nil
}

// checkOwnership enforces that only the creator mutates a thought. Skipped
// entirely in the simplified variant.
func (u *thoughtUsecase) checkOwnership(thought *domain.Thought, user *authdomain.User) error {
	if !u.authEnabled {
		return nil
	}
	if user == nil {
		return fmt.Errorf("authentication required: %w", common.ErrUnauthorized)
	}
	if thought.UserID != user.ID {
		return fmt.Errorf("not the owner of this thought: %w", common.ErrForbidden)
	}
	return nil
}
