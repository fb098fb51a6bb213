package domain

import (
	"context"

	"github.com/swapapp/backend/internal/model"
	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/errorx"
	"github.com/swapapp/backend/pkg/xcontext"
)

type TransactionDomain interface {
	GetMine(ctx context.Context, req *model.GetMyTransactionsRequest) (*model.GetMyTransactionsResponse, error)
}

type transactionDomain struct {
	transactionRepo repository.TransactionRepository
}

func NewTransactionDomain(transactionRepo repository.TransactionRepository) *transactionDomain {
	return &transactionDomain{transactionRepo: transactionRepo}
}

func (d *transactionDomain) GetMine(
	ctx context.Context, req *model.GetMyTransactionsRequest,
) (*model.GetMyTransactionsResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit %d", req.Limit)
	}

	transactions, err := d.transactionRepo.GetListByUserID(
		ctx, xcontext.RequestUserID(ctx), req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list transactions: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetMyTransactionsResponse{Transactions: []model.PointsTransaction{}}
	for i := range transactions {
		resp.Transactions = append(resp.Transactions, convertTransaction(&transactions[i]))
	}

	return resp, nil
}
