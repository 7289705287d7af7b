package leavebalance

import (
	"context"
	"errors"

	"gorm.io/gorm"

	leavebalanceerrors "hrapp/internal/leavebalance/errors"
	"hrapp/internal/shared/apperror"
)

// Debit mengurangi saldo untuk approval cuti. Harus dipanggil dengan
// repo yang sudah terikat transaksi (WithTx) agar lock FOR UPDATE
// bertahan sampai status request ikut di-commit.
func Debit(ctx context.Context, repo Repository, userID string, year int, leaveTypeID uint, days int) (*LeaveBalance, error) {
	b, err := repo.FindByUserYearTypeForUpdate(ctx, userID, year, leaveTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leavebalanceerrors.ErrNoBalanceConfigured
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to lock leave balance", 500)
	}

	if days > b.RemainingBalance {
		return nil, leavebalanceerrors.ErrInsufficientBalance
	}

	b.UsedBalance += days
	b.RemainingBalance -= days

	if err := repo.Update(ctx, b); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to debit leave balance", 500)
	}
	return b, nil
}
