package validate_promo

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

type PromoService interface {
	ValidatePromoCode(ctx context.Context, code string, orderValue domain.Money, pctx domain.PromoContext) (domain.PromoValidation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
