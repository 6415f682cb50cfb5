package tips

import "context"

// Repository cachea el último Record por (user, pet).
// Get devuelve found=false si no hay nada guardado.
type Repository interface {
	Get(ctx context.Context, userID, petID string) (rec Record, found bool, err error)
	Save(ctx context.Context, rec Record) error
}
