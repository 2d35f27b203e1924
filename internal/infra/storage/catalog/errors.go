package catalog

import "errors"

var (
	// ErrServiceTypeNotFound возвращается, когда тариф не найден
	ErrServiceTypeNotFound = errors.New("catalog.repository: service type not found")

	// ErrPromoCodeNotFound возвращается, когда промокод не найден
	ErrPromoCodeNotFound = errors.New("catalog.repository: promo code not found")

	// ErrPromoUsageExhausted возвращается, когда лимит использований промокода исчерпан
	ErrPromoUsageExhausted = errors.New("catalog.repository: promo code usage limit reached")

	// ErrReadFile возвращается при ошибке чтения файла каталога
	ErrReadFile = errors.New("catalog.loader: failed to read file")

	// ErrParseFile возвращается при ошибке разбора YAML
	ErrParseFile = errors.New("catalog.loader: failed to parse file")

	// ErrInvalidCatalog возвращается, если каталог не прошел валидацию
	ErrInvalidCatalog = errors.New("catalog.loader: invalid catalog")
)
