package vitals

import "time"

// VitalSigns maps to the signos_vitales table. Every reading is nullable;
// nurses record what they measured.
type VitalSigns struct {
	ID               int64     `db:"id" json:"id"`
	PatientID        int64     `db:"paciente_id" json:"paciente_id"`
	RecordedAt       time.Time `db:"fecha_registro" json:"fecha_registro"`
	SystolicBP       *int      `db:"presion_sistolica" json:"presion_sistolica,omitempty"`
	DiastolicBP      *int      `db:"presion_diastolica" json:"presion_diastolica,omitempty"`
	HeartRate        *int      `db:"frecuencia_cardiaca" json:"frecuencia_cardiaca,omitempty"`
	Temperature      *float64  `db:"temperatura" json:"temperatura,omitempty"`
	OxygenSaturation *int      `db:"saturacion_oxigeno" json:"saturacion_oxigeno,omitempty"`
	PainScale        *int      `db:"dolor_escala" json:"dolor_escala,omitempty"`
	RecordedByID     *int64    `db:"registrado_por_medico_id" json:"registrado_por_medico_id,omitempty"`
}

// StatusCard is the family-facing vitals block. Missing readings fall back
// to resting-adult reference values so the card never renders nulls.
type StatusCard struct {
	HeartRate        int     `json:"heart_rate"`
	BloodPressure    string  `json:"blood_pressure"`
	Temperature      float64 `json:"temperature"`
	OxygenSaturation int     `json:"oxygen_saturation"`
}
