package feedback

import "context"

type Repository interface {
	Insert(ctx context.Context, f *Feedback) error
	ListAll(ctx context.Context) ([]*Feedback, error)
}
