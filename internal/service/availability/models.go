package availability

import (
	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// SlotOptions параметры выдачи слотов на дату
type SlotOptions struct {
	// TravelTimeMinutes время переезда бригады между заказами.
	// Слот отбрасывается, если начинается раньше, чем через TravelTimeMinutes после конца занятого слота,
	// а на сегодня - раньше now + TravelTimeMinutes.
	TravelTimeMinutes int
}

// ScheduleOptions параметры подбора даты и слота
type ScheduleOptions struct {
	Flexibility       domain.FlexibilityMode
	PreferredTime     types.TimeString // пусто - без предпочтения
	ExcludeWeekends   bool
	WeekendsRequested bool
	Limit             int
	TravelTimeMinutes int
}
