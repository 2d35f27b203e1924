package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/infra/storage/catalog"
)

// ValidatePromoCode проверяет промокод и рассчитывает скидку для суммы заказа.
// Отказ возвращается значением с Valid=false и причиной; ошибка - только при сбое реестра.
func (s *Service) ValidatePromoCode(ctx context.Context, code string, orderValue domain.Money, pctx domain.PromoContext) (domain.PromoValidation, error) {
	normalized := domain.NormalizePromoCode(code)

	// 1. Ищем код
	promo, err := s.catalog.GetPromoCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, catalog.ErrPromoCodeNotFound) {
			s.logger.Info("ValidatePromoCode: code=%s not found", normalized)
			return rejectPromo(normalized, msgPromoNotFound), nil
		}
		s.logger.Error("ValidatePromoCode: failed to get code=%s: %v", normalized, err)
		return domain.PromoValidation{}, fmt.Errorf("%w: failed to get promo code: %v", ErrInternal, err)
	}

	// 2. Проверяем условия
	if reason, ok := s.checkPromo(promo, orderValue, pctx); !ok {
		s.logger.Info("ValidatePromoCode: code=%s rejected: %s", normalized, reason)
		return rejectPromo(normalized, reason), nil
	}

	// 3. Считаем скидку
	discount := s.promoDiscount(promo, orderValue)
	if discount <= 0 {
		return rejectPromo(normalized, msgPromoNothingToReduce), nil
	}

	return domain.PromoValidation{
		Valid:    true,
		Code:     normalized,
		Discount: discount,
	}, nil
}

// checkPromo проверяет условия промокода в фиксированном порядке
func (s *Service) checkPromo(promo *domain.PromoCode, orderValue domain.Money, pctx domain.PromoContext) (string, bool) {
	if promo.MinOrderValue != nil {
		minOrder := domain.MoneyFromPounds(*promo.MinOrderValue)
		if orderValue < minOrder {
			return fmt.Sprintf(msgPromoMinOrderFmt, minOrder), false
		}
	}

	if promo.IsExpired(s.timeProvider.Now()) {
		return msgPromoExpired, false
	}

	if promo.IsExhausted() {
		return msgPromoExhausted, false
	}

	cond := promo.Conditions
	if cond.FirstTimeCustomerOnly && !pctx.IsFirstTimeCustomer {
		return msgPromoFirstTimeOnly, false
	}
	if pctx.ServiceType != "" && !cond.AllowsServiceType(pctx.ServiceType) {
		return msgPromoServiceType, false
	}
	if cond.MinDistanceKm > 0 && pctx.Distance < cond.MinDistanceKm {
		return fmt.Sprintf(msgPromoMinDistanceFmt, cond.MinDistanceKm), false
	}

	return "", true
}

// promoDiscount скидка по типу кода, ограниченная собственным потолком кода,
// глобальными потолками и суммой заказа
func (s *Service) promoDiscount(promo *domain.PromoCode, orderValue domain.Money) domain.Money {
	var discount domain.Money

	switch promo.Type {
	case domain.DiscountPercentage:
		discount = orderValue.MulRound(promo.Value / 100)
		if promo.MaxDiscount != nil {
			discount = discount.Min(domain.MoneyFromPounds(*promo.MaxDiscount))
		}
	case domain.DiscountFixed, domain.DiscountFreeService:
		discount = domain.MoneyFromPounds(promo.Value)
	}

	return s.clampDiscount(discount, orderValue)
}

// clampDiscount применяет глобальные потолки скидки
func (s *Service) clampDiscount(discount, orderValue domain.Money) domain.Money {
	discount = discount.
		Min(domain.MoneyFromPounds(s.cfg.MaxDiscountAmount)).
		Min(orderValue.MulRound(s.cfg.MaxDiscountPercent)).
		Min(orderValue)
	return discount.NonNegative()
}

func rejectPromo(code, reason string) domain.PromoValidation {
	return domain.PromoValidation{Valid: false, Code: code, Error: reason}
}
