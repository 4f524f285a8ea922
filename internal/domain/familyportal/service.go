package familyportal

import (
	"context"
	"time"

	"github.com/mvega09/SIACOM/internal/domain/notification"
	"github.com/mvega09/SIACOM/internal/domain/patient"
	"github.com/mvega09/SIACOM/internal/domain/surgery"
	"github.com/mvega09/SIACOM/internal/domain/vitals"
)

const notificationLimit = 5

// SurgeryStatus is the family-facing status block: the phase and progress
// derived from the latest surgery, the elapsed operating time, and the
// latest vitals with reference-value fallbacks.
type SurgeryStatus struct {
	CurrentStatus    string              `json:"current_status"`
	Progress         int                 `json:"progress"`
	ElapsedTime      string              `json:"elapsed_time"`
	HeartRate        int                 `json:"heart_rate"`
	BloodPressure    string              `json:"blood_pressure"`
	Temperature      float64             `json:"temperature"`
	OxygenSaturation int                 `json:"oxygen_saturation"`
	Notifications    []NotificationEntry `json:"notifications"`
}

type NotificationEntry struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// PatientView is everything the family sees about one patient.
type PatientView struct {
	Patient       *patient.Patient `json:"patient"`
	SurgeryStatus SurgeryStatus    `json:"surgery_status"`
}

type Service struct {
	patients      patient.Repository
	surgeries     surgery.Repository
	vitals        vitals.Repository
	notifications notification.Repository
	now           func() time.Time
}

func NewService(patients patient.Repository, surgeries surgery.Repository, vitalsRepo vitals.Repository, notifications notification.Repository) *Service {
	return &Service{
		patients:      patients,
		surgeries:     surgeries,
		vitals:        vitalsRepo,
		notifications: notifications,
		now:           time.Now,
	}
}

// PatientView composes the family view: the active patient, the most
// recently scheduled surgery mapped to its family-facing phase, the latest
// vitals, and the five most recent notifications. A patient without any
// surgery reads as preparacion/0/"00:00".
func (s *Service) PatientView(ctx context.Context, patientID int64) (*PatientView, error) {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	latest, err := s.surgeries.LatestByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	status := SurgeryStatus{
		CurrentStatus: surgery.PhasePreparing,
		ElapsedTime:   surgery.FormatElapsed(0),
	}
	if latest != nil {
		status.CurrentStatus, status.Progress = surgery.MapState(latest.State)
		minutes := surgery.ElapsedMinutes(latest.StartedAt, latest.EndedAt, s.now())
		status.ElapsedTime = surgery.FormatElapsed(minutes)
	}

	reading, err := s.vitals.LatestByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	card := vitals.BuildStatusCard(reading)
	status.HeartRate = card.HeartRate
	status.BloodPressure = card.BloodPressure
	status.Temperature = card.Temperature
	status.OxygenSaturation = card.OxygenSaturation

	recent, err := s.notifications.ListRecentByPatient(ctx, patientID, notificationLimit)
	if err != nil {
		return nil, err
	}
	status.Notifications = make([]NotificationEntry, 0, len(recent))
	for _, n := range recent {
		status.Notifications = append(status.Notifications, NotificationEntry{
			Message:   n.Title,
			Timestamp: n.SentAt,
		})
	}

	return &PatientView{Patient: p, SurgeryStatus: status}, nil
}
