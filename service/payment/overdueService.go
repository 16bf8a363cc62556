package paymentsvc

import (
	"context"
	"time"
)

// Sweeper flips Pending payments past their due date to Overdue.
type Sweeper interface {
	MarkOverdue(ctx context.Context) (int64, error)
}

type sweeper struct {
	r Repo
}

func NewSweeper(r Repo) Sweeper { return &sweeper{r: r} }

func (s *sweeper) MarkOverdue(ctx context.Context) (int64, error) {
	return s.r.MarkOverdue(ctx, time.Now().UTC())
}
