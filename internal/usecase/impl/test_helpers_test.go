package impl

import (
	"context"
	"io"
	"log/slog"

	"brewmenu/internal/domain/entity"
	"brewmenu/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type listReply struct {
	products []*entity.Product
	err      error
}

// pendingList is one in-flight List call waiting for the test to answer it.
type pendingList struct {
	reply chan listReply
}

func (p *pendingList) respond(products []*entity.Product, err error) {
	p.reply <- listReply{products: products, err: err}
}

// gatedProductRepo hands every List call to the test, which decides when and how it completes.
// List honours ctx, so an unanswered call ends at the fetch deadline.
type gatedProductRepo struct {
	repository.ProductRepository

	calls chan *pendingList
}

func newGatedProductRepo() *gatedProductRepo {
	return &gatedProductRepo{calls: make(chan *pendingList, 8)}
}

func (r *gatedProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	call := &pendingList{reply: make(chan listReply, 1)}
	r.calls <- call

	select {
	case res := <-call.reply:
		return res.products, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// stuckProductRepo never returns until released and ignores ctx.
type stuckProductRepo struct {
	repository.ProductRepository

	release chan struct{}
}

func (r *stuckProductRepo) List(context.Context) ([]*entity.Product, error) {
	<-r.release

	return nil, nil
}
