package pricing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// cacheKey ключ кэша расчета. Порядок вещей на ключ не влияет.
// В ключ входят и атрибуты вещей: одна и та же позиция каталога с другим объемом - другой расчет.
func cacheKey(in *domain.PricingInput) string {
	items := make([]string, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, fmt.Sprintf("%s:%d:%s:%g:%g:%t:%t",
			item.ID, item.Quantity, item.Category, item.Volume, item.Weight, item.Fragile, item.Valuable))
	}
	sort.Strings(items)

	return fmt.Sprintf("%s|%s|%.3f|%.3f|%s|%s|%s|%s|%s|%t",
		strings.Join(items, ","),
		in.ServiceType,
		in.Distance,
		in.EstimatedDuration,
		in.SlotID(),
		in.Date.Format(domain.DateFormat),
		domain.NormalizePromoCode(in.PromoCode),
		accessKey(in.Pickup),
		accessKey(in.Dropoff),
		in.IsFirstTimeCustomer,
	)
}

func accessKey(a domain.PropertyAccessDetails) string {
	return fmt.Sprintf("%d:%t:%t:%t", a.Floor, a.HasLift, a.NarrowAccess, a.LongCarry)
}
