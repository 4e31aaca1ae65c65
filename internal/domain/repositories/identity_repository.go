package repositories

import "context"

// IdentityRepository resolves the author written into a new manifest.
type IdentityRepository interface {
	// Author returns "name <email>", "name", or an empty string when nothing is known.
	Author(ctx context.Context) string
}
