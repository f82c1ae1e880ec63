package mocks

import (
	"context"

	"hotel/shared/transaction"

	"github.com/jmoiron/sqlx"
)

type transactorImpl struct {
}

// WithinTx implements transaction.Transactor. It runs fn without a database transaction.
func (t *transactorImpl) WithinTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	return fn(ctx, nil)
}

func NewTransactor() transaction.Transactor {
	return &transactorImpl{}
}
