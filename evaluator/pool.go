package evaluator

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Expression stacks are short-lived objects, one per evaluation. To avoid
// re-allocation we will pool them.
type stackPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalStackPool *stackPool

func init() {
	globalStackPool = &stackPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			es := NewExprStack()
			es.pooled = true
			return es, nil
		})
	globalStackPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalStackPool.opool = pool.NewObjectPool(globalStackPool.ctx, factory, config)
}

// borrowStack returns an empty expression stack from the pool.
func borrowStack() *ExprStack {
	o, err := globalStackPool.opool.BorrowObject(globalStackPool.ctx)
	if err != nil {
		tracer().Errorf("cannot borrow expression stack: %v", err)
		return NewExprStack()
	}
	es := o.(*ExprStack)
	es.Reset()
	return es
}

// releaseStack clears an expression stack and puts it back into the pool.
// Stacks not created by the pool are left to the garbage collector.
func releaseStack(es *ExprStack) {
	es.Reset()
	if !es.pooled {
		return
	}
	if err := globalStackPool.opool.ReturnObject(globalStackPool.ctx, es); err != nil {
		tracer().Errorf("cannot return expression stack to pool: %v", err)
	}
}
