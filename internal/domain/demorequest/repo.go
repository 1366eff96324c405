package demorequest

import "context"

type Repository interface {
	Create(ctx context.Context, dr *DemoRequest) error
	List(ctx context.Context) ([]*DemoRequest, error)
}
