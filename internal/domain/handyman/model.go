package handyman

import (
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/types"
)

// Handyman is a worker jobs can be assigned to. Jobs reference handymen by
// id and carry a display-name snapshot; they never own the handyman record.
type Handyman struct {
	ID    string `firestore:"id" json:"id"`
	Name  string `firestore:"name" json:"name"`
	Phone string `firestore:"phone,omitempty" json:"phone,omitempty"`
	Email string `firestore:"email,omitempty" json:"email,omitempty"`

	types.BaseModel
}

func (h *Handyman) Validate() error {
	if h.Name == "" {
		return ierr.NewError("handyman name is required").
			WithHint("Please provide a name").
			Mark(ierr.ErrValidation)
	}
	return nil
}
