package primary

import (
	"context"

	"github.com/example/asreorder/internal/models"
)

// ValidationService performs the pre-flight existence and accessibility
// checks. It classifies and counts; it never gates execution itself — the
// go/no-go decision belongs to the operator.
type ValidationService interface {
	Validate(ctx context.Context, parent models.ParentRef, m *models.OrderedManifest) *models.ValidationReport
}
