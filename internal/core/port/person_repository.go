package port

import (
	"context"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
)

// PersonFilter narrows roster listings.
type PersonFilter struct {
	ActiveOnly bool
}

// PersonRepository persists roster members.
type PersonRepository interface {
	Create(ctx context.Context, person domain.Person) error
	GetByID(ctx context.Context, id string) (*domain.Person, error)
	Update(ctx context.Context, person domain.Person) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter PersonFilter) ([]domain.Person, error)
}
