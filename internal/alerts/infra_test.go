package alerts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingNotifier struct {
	errs    []error
	details []string
}

func (r *recordingNotifier) Notify(ctx context.Context, err error, details string) {
	r.errs = append(r.errs, err)
	r.details = append(r.details, details)
}

func TestNotifyWithoutBotDoesNotPanic(t *testing.T) {
	n := NewTelegramNotifier(0)
	assert.NotPanics(t, func() {
		n.Notify(context.Background(), errors.New("boom"), "stage: download")
	})

	// configured chat but bot never injected
	n = NewTelegramNotifier(1139929360)
	assert.NotPanics(t, func() {
		n.Notify(context.Background(), errors.New("boom"), "stage: download")
	})
}

func TestServiceForwardsToInfra(t *testing.T) {
	rec := &recordingNotifier{}
	svc := NewService(rec)

	svc.Notify(context.Background(), errors.New("quota exhausted"), "Stage: translate")

	assert.Len(t, rec.errs, 1)
	assert.EqualError(t, rec.errs[0], "quota exhausted")
	assert.Equal(t, []string{"Stage: translate"}, rec.details)
}
