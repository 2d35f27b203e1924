package recommendation

// Config веса оценки тарифов
type Config struct {
	LongDistanceKm float64

	VolumeFits    int
	VolumeExceeds int
	WeightFits    int
	WeightExceeds int

	LongDistancePremium int
	FragileCrew         int
	ValuablePremium     int

	WithinBudget int
	OverBudget   int

	TimePreferenceBonus int

	HelpNoneSelfDrive int
	HelpLoadingCrew   int
	HelpFullCrew      int
}

// DefaultConfig веса по умолчанию
func DefaultConfig() Config {
	return Config{
		LongDistanceKm: 50,

		VolumeFits:    20,
		VolumeExceeds: -30,
		WeightFits:    15,
		WeightExceeds: -20,

		LongDistancePremium: 10,
		FragileCrew:         15,
		ValuablePremium:     10,

		WithinBudget: 10,
		OverBudget:   -15,

		TimePreferenceBonus: 10,

		HelpNoneSelfDrive: 10,
		HelpLoadingCrew:   5,
		HelpFullCrew:      10,
	}
}
