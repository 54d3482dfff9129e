package translate

import "context"

// Translator converts text over the one (source, target) language pair the
// process is configured with.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}
