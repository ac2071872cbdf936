package shifts

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// UseCase resolutor de asignaciones de turno: decide qué furgoneta lleva cada
// trabajador en cada fecha y turno, con las reglas de partición de jornada
// completa cuando llega una media jornada encima.
type UseCase struct {
	txRunner     TxRunner
	shiftRepo    repository.ShiftAssignmentRepository
	locationRepo repository.LocationRepository
}

// NewUseCase construye el resolutor de turnos.
func NewUseCase(
	txRunner TxRunner,
	shiftRepo repository.ShiftAssignmentRepository,
	locationRepo repository.LocationRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		shiftRepo:    shiftRepo,
		locationRepo: locationRepo,
	}
}

// AssignInput petición de asignación. Force solo se consulta cuando la petición
// es una jornada completa y ya existe otra jornada completa ese día.
type AssignInput struct {
	WorkerID string
	VanID    string
	Date     time.Time
	Shift    string
	Force    bool
}

// Assign aplica la tabla de transiciones sobre el estado del (trabajador, fecha):
//
//	sin filas            -> inserta sin conflicto
//	FULL_DAY  + FULL_DAY -> ErrFullDayConflict salvo force (reemplaza la furgoneta)
//	FULL_DAY  + AFTERNOON-> la fila FULL_DAY pasa a MORNING con su furgoneta y se inserta la tarde
//	FULL_DAY  + MORNING  -> simétrico: la fila pasa a AFTERNOON y se inserta la mañana
//	media + la otra media-> inserta normal (estado estable de día partido)
//	media + misma media  -> upsert: reemplaza la furgoneta de ese turno
//	medias + FULL_DAY    -> borra las medias e inserta la completa
//
// El choque de jornadas completas es el único caso que pide confirmación; el
// resto de transiciones son deterministas. Todo ocurre en una transacción que
// bloquea primero la fila del trabajador como ancla, de modo que dos Assign
// concurrentes sobre el mismo (trabajador, fecha) se serialicen aunque el día
// aún no tenga filas de turno que bloquear.
func (uc *UseCase) Assign(ctx context.Context, in AssignInput) error {
	if !entity.ValidShift(in.Shift) {
		return domain.ErrInvalidInput
	}
	if in.WorkerID == "" || in.VanID == "" || in.Date.IsZero() {
		return domain.ErrInvalidInput
	}

	van, err := uc.locationRepo.GetByID(ctx, in.VanID)
	if err != nil {
		return err
	}
	if van == nil {
		return domain.ErrNotFound
	}
	if !van.IsVan() {
		return domain.ErrInvalidLocationKind
	}

	return uc.txRunner.RunShifts(ctx, func(repo repository.ShiftAssignmentRepository, userRepo repository.UserRepository) error {
		worker, err := userRepo.GetByIDForUpdate(ctx, in.WorkerID)
		if err != nil {
			return err
		}
		if worker == nil {
			return domain.ErrNotFound
		}

		current, err := repo.ListForWorkerDateForUpdate(ctx, in.WorkerID, in.Date)
		if err != nil {
			return err
		}

		now := time.Now()
		requested := &entity.ShiftAssignment{
			WorkerID:  in.WorkerID,
			Date:      in.Date,
			Shift:     in.Shift,
			VanID:     in.VanID,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if len(current) == 0 {
			return repo.Insert(ctx, requested)
		}

		var fullDay *entity.ShiftAssignment
		held := make(map[string]*entity.ShiftAssignment, len(current))
		for _, a := range current {
			held[a.Shift] = a
			if a.Shift == entity.ShiftFullDay {
				fullDay = a
			}
		}

		if fullDay != nil {
			switch in.Shift {
			case entity.ShiftFullDay:
				if !in.Force {
					return domain.ErrFullDayConflict
				}
				// Reemplazo explícito: misma PK, cambia la furgoneta.
				return repo.Upsert(ctx, requested)
			case entity.ShiftMorning, entity.ShiftAfternoon:
				// Partición: la jornada completa conserva su furgoneta en la
				// media complementaria y la solicitada entra con la nueva.
				keep := entity.OtherHalf(in.Shift)
				if err := repo.UpdateShift(ctx, in.WorkerID, in.Date, entity.ShiftFullDay, keep); err != nil {
					return err
				}
				return repo.Insert(ctx, requested)
			}
		}

		// Solo medias jornadas en el estado actual: la completa las reemplaza
		// sin confirmación, el día entero queda para la furgoneta pedida.
		if in.Shift == entity.ShiftFullDay {
			for _, a := range current {
				if err := repo.Delete(ctx, in.WorkerID, in.Date, a.Shift); err != nil {
					return err
				}
			}
			return repo.Insert(ctx, requested)
		}
		if _, ok := held[in.Shift]; ok {
			// Mismo turno otra vez: upsert de furgoneta.
			return repo.Upsert(ctx, requested)
		}
		return repo.Insert(ctx, requested)
	})
}

// Get devuelve la asignación de un (trabajador, fecha, turno); nil si no existe.
func (uc *UseCase) Get(ctx context.Context, workerID string, date time.Time, shift string) (*entity.ShiftAssignment, error) {
	if !entity.ValidShift(shift) {
		return nil, domain.ErrInvalidInput
	}
	return uc.shiftRepo.Get(ctx, workerID, date, shift)
}

// ListForWorker asignaciones del trabajador en un rango, fecha descendente.
func (uc *UseCase) ListForWorker(ctx context.Context, workerID string, from, to time.Time) ([]*entity.ShiftAssignment, error) {
	return uc.shiftRepo.ListForWorkerRange(ctx, workerID, from, to)
}

// ListForDate cuadrante completo de una fecha.
func (uc *UseCase) ListForDate(ctx context.Context, date time.Time) ([]*entity.ShiftAssignment, error) {
	return uc.shiftRepo.ListForDate(ctx, date)
}

// Remove elimina una asignación; ErrNotFound si no existía.
func (uc *UseCase) Remove(ctx context.Context, workerID string, date time.Time, shift string) error {
	if !entity.ValidShift(shift) {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunShifts(ctx, func(repo repository.ShiftAssignmentRepository, _ repository.UserRepository) error {
		return repo.Delete(ctx, workerID, date, shift)
	})
}
