package alerts

import "context"

type Service struct {
	infra Notifier
}

func NewService(infra Notifier) *Service {
	return &Service{infra: infra}
}

func (s *Service) Notify(ctx context.Context, err error, details string) {
	s.infra.Notify(ctx, err, details)
}
