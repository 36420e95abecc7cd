package ffsets

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/ffsets/sets"
)

// factBatch is a scratch buffer for facts flowing from one set into
// another. Copying a source set into a batch before inserting makes
// self-referencing rules like <A> --> <A> x safe.
type factBatch struct {
	facts  []sets.Fact
	pooled bool // created by the pool and to be returned to it
}

// Batches are short-lived; every iteration needs one. To avoid repeated
// allocation we will pool them.
type batchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBatchPool *batchPool

func init() {
	globalBatchPool = &batchPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			b := &factBatch{facts: make([]sets.Fact, 0, 32), pooled: true}
			return b, nil
		})
	globalBatchPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBatchPool.opool = pool.NewObjectPool(globalBatchPool.ctx, factory, config)
}

// borrowBatch returns an empty batch from the pool.
func borrowBatch() *factBatch {
	o, err := globalBatchPool.opool.BorrowObject(globalBatchPool.ctx)
	if err != nil {
		CT().Errorf("cannot borrow fact batch: %v", err)
		return &factBatch{facts: make([]sets.Fact, 0, 32)}
	}
	b := o.(*factBatch)
	b.facts = b.facts[:0]
	return b
}

// release clears the batch and puts it back into the pool. Batches not
// created by the pool are left to the garbage collector.
func (b *factBatch) release() {
	b.facts = b.facts[:0]
	if !b.pooled {
		return
	}
	if err := globalBatchPool.opool.ReturnObject(globalBatchPool.ctx, b); err != nil {
		CT().Errorf("cannot return fact batch: %v", err)
	}
}
