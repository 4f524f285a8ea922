package vitals

import "fmt"

const (
	defaultHeartRate        = 72
	defaultBloodPressure    = "120/80"
	defaultTemperature      = 36.5
	defaultOxygenSaturation = 98
)

// BuildStatusCard fills the family card from the latest reading, falling
// back per field when the reading (or a field of it) is missing.
func BuildStatusCard(latest *VitalSigns) StatusCard {
	card := StatusCard{
		HeartRate:        defaultHeartRate,
		BloodPressure:    defaultBloodPressure,
		Temperature:      defaultTemperature,
		OxygenSaturation: defaultOxygenSaturation,
	}
	if latest == nil {
		return card
	}
	if latest.HeartRate != nil {
		card.HeartRate = *latest.HeartRate
	}
	if latest.SystolicBP != nil && latest.DiastolicBP != nil {
		card.BloodPressure = fmt.Sprintf("%d/%d", *latest.SystolicBP, *latest.DiastolicBP)
	}
	if latest.Temperature != nil {
		card.Temperature = *latest.Temperature
	}
	if latest.OxygenSaturation != nil {
		card.OxygenSaturation = *latest.OxygenSaturation
	}
	return card
}
