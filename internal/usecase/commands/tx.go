package commands

import (
	"context"
	"log/slog"
	"time"

	"kelurahan-booking/internal/infra"
	"kelurahan-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type pgxTx = infra.DBTX

// withSlotLock runs fn inside a transaction holding the per-room-per-date
// advisory lock, which closes the check-then-write race between concurrent
// submissions for the same slot.
func (c *reservationCommandsImpl) withSlotLock(
	ctx context.Context,
	roomID uuid.UUID,
	loanDate time.Time,
	fn func(tx pgxTx) error,
) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && rollbackErr != pgx.ErrTxClosed {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := c.reservationRepo.AcquireSlotLock(ctx, tx, roomID, loanDate); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
