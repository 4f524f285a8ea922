package surgery

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/mvega09/SIACOM/internal/domain/contact"
	"github.com/mvega09/SIACOM/internal/domain/notification"
	"github.com/mvega09/SIACOM/internal/platform/db"
)

// TxRunner runs fn inside a transactional unit of work. Production wiring
// uses db.WithTx; tests substitute a passthrough.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// PoolTxRunner returns a TxRunner backed by a pgx pool.
func PoolTxRunner(pool *pgxpool.Pool) TxRunner {
	return func(ctx context.Context, fn func(ctx context.Context) error) error {
		return db.WithTx(ctx, pool, fn)
	}
}

type Service struct {
	surgeries     Repository
	contacts      contact.Repository
	notifications notification.Repository
	runTx         TxRunner
	log           zerolog.Logger
	now           func() time.Time
}

func NewService(surgeries Repository, contacts contact.Repository, notifications notification.Repository, runTx TxRunner, log zerolog.Logger) *Service {
	return &Service{
		surgeries:     surgeries,
		contacts:      contacts,
		notifications: notifications,
		runTx:         runTx,
		log:           log,
		now:           time.Now,
	}
}

// ErrInvalidState is returned when a transition names an unknown state.
var ErrInvalidState = fmt.Errorf("invalid surgery state")

// TransitionState moves a surgery to newState and notifies the patient's
// notification-enabled contacts, atomically. The surgery row is locked for
// the duration so concurrent transitions on the same surgery serialize;
// a second transition to En_proceso observes the start timestamp already
// set and leaves it alone.
func (s *Service) TransitionState(ctx context.Context, surgeryID int64, newState string) error {
	if !ValidState(newState) {
		return fmt.Errorf("%w: %s", ErrInvalidState, newState)
	}

	err := s.runTx(ctx, func(txCtx context.Context) error {
		sur, err := s.surgeries.GetForUpdate(txCtx, surgeryID)
		if err != nil {
			return err
		}
		if err := s.surgeries.UpdateState(txCtx, surgeryID, newState, s.now()); err != nil {
			return err
		}

		contacts, err := s.contacts.ListNotifiableByPatient(txCtx, sur.PatientID)
		if err != nil {
			return err
		}
		if len(contacts) == 0 {
			return nil
		}

		batch := make([]*notification.Notification, 0, len(contacts))
		for _, ct := range contacts {
			batch = append(batch, &notification.Notification{
				ContactID: ct.ID,
				PatientID: sur.PatientID,
				SurgeryID: &surgeryID,
				Type:      notification.TypeStateChange,
				Title:     "Cambio de estado en cirugía",
				Message:   "La cirugía ha cambiado a estado: " + newState,
			})
		}
		return s.notifications.CreateBatch(txCtx, batch)
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Int64("surgery_id", surgeryID).
		Str("state", newState).
		Msg("surgery state updated")
	return nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Surgery, error) {
	return s.surgeries.ListByPatient(ctx, patientID)
}

func (s *Service) LatestByPatient(ctx context.Context, patientID int64) (*Surgery, error) {
	return s.surgeries.LatestByPatient(ctx, patientID)
}
