package shifts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/shifts"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

const (
	whID     = "00000000-0000-0000-0000-000000000001"
	van1ID   = "00000000-0000-0000-0000-000000000002"
	van2ID   = "00000000-0000-0000-0000-000000000003"
	workerID = "00000000-0000-0000-0000-0000000000aa"
)

var day = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *shifts.UseCase {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	now := time.Now()

	locRepo := memory.NewLocationRepository(store)
	require.NoError(t, locRepo.Create(ctx, &entity.Location{
		ID: whID, Name: "Almacén central", Kind: entity.LocationKindWarehouse, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, locRepo.Create(ctx, &entity.Location{
		ID: van1ID, Name: "Furgoneta 1", Kind: entity.LocationKindVan, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, locRepo.Create(ctx, &entity.Location{
		ID: van2ID, Name: "Furgoneta 2", Kind: entity.LocationKindVan, CreatedAt: now, UpdatedAt: now,
	}))

	userRepo := memory.NewUserRepository(store)
	require.NoError(t, userRepo.Create(ctx, &entity.User{
		ID: workerID, Email: "operario@test.local", Name: "Operario Uno",
		Role: entity.RoleOperario, Status: "active", CreatedAt: now, UpdatedAt: now,
	}))

	return shifts.NewUseCase(memory.NewTxRunner(store), memory.NewShiftAssignmentRepository(store), locRepo)
}

func assign(t *testing.T, uc *shifts.UseCase, shift, vanID string, force bool) error {
	t.Helper()
	return uc.Assign(context.Background(), shifts.AssignInput{
		WorkerID: workerID,
		VanID:    vanID,
		Date:     day,
		Shift:    shift,
		Force:    force,
	})
}

func dayState(t *testing.T, uc *shifts.UseCase) map[string]string {
	t.Helper()
	list, err := uc.ListForDate(context.Background(), day)
	require.NoError(t, err)
	state := make(map[string]string, len(list))
	for _, a := range list {
		state[a.Shift] = a.VanID
	}
	return state
}

func TestAssign_SinEstadoPrevio(t *testing.T) {
	uc := newFixture(t)

	require.NoError(t, assign(t, uc, entity.ShiftFullDay, van1ID, false))
	assert.Equal(t, map[string]string{entity.ShiftFullDay: van1ID}, dayState(t, uc))
}

// La media jornada parte la jornada completa: la fila FULL_DAY conserva su
// furgoneta en la media complementaria y la solicitada entra con la nueva.
func TestAssign_MediaJornadaParteLaCompleta(t *testing.T) {
	uc := newFixture(t)

	require.NoError(t, assign(t, uc, entity.ShiftFullDay, van1ID, false))
	require.NoError(t, assign(t, uc, entity.ShiftAfternoon, van2ID, false))

	assert.Equal(t, map[string]string{
		entity.ShiftMorning:   van1ID,
		entity.ShiftAfternoon: van2ID,
	}, dayState(t, uc))
}

func TestAssign_MananaParteLaCompletaSimetrico(t *testing.T) {
	uc := newFixture(t)

	require.NoError(t, assign(t, uc, entity.ShiftFullDay, van1ID, false))
	require.NoError(t, assign(t, uc, entity.ShiftMorning, van2ID, false))

	assert.Equal(t, map[string]string{
		entity.ShiftMorning:   van2ID,
		entity.ShiftAfternoon: van1ID,
	}, dayState(t, uc))
}

func TestAssign_ChoqueDeCompletasRequiereForce(t *testing.T) {
	uc := newFixture(t)

	require.NoError(t, assign(t, uc, entity.ShiftFullDay, van1ID, false))

	err := assign(t, uc, entity.ShiftFullDay, van2ID, false)
	assert.ErrorIs(t, err, domain.ErrFullDayConflict)
	assert.Equal(t, map[string]string{entity.ShiftFullDay: van1ID}, dayState(t, uc),
		"el rechazo no altera el estado")

	require.NoError(t, assign(t, uc, entity.ShiftFullDay, van2ID, true))
	assert.Equal(t, map[string]string{entity.ShiftFullDay: van2ID}, dayState(t, uc))
}

// El choque de completas es el único caso que pide confirmación: una completa
// sobre medias jornadas las reemplaza de forma determinista, sin force.
func TestAssign_CompletaReemplazaLasMedias(t *testing.T) {
	uc := newFixture(t)

	require.NoError(t, assign(t, uc, entity.ShiftMorning, van1ID, false))
	require.NoError(t, assign(t, uc, entity.ShiftAfternoon, van2ID, false))

	require.NoError(t, assign(t, uc, entity.ShiftFullDay, van1ID, false))
	assert.Equal(t, map[string]string{entity.ShiftFullDay: van1ID}, dayState(t, uc),
		"la completa borra las medias y se queda con el día entero")
}

func TestAssign_CompletaSobreUnaSolaMedia(t *testing.T) {
	uc := newFixture(t)

	require.NoError(t, assign(t, uc, entity.ShiftMorning, van1ID, false))
	require.NoError(t, assign(t, uc, entity.ShiftFullDay, van2ID, false))

	assert.Equal(t, map[string]string{entity.ShiftFullDay: van2ID}, dayState(t, uc))
}

func TestAssign_MismoTurnoReemplazaFurgoneta(t *testing.T) {
	uc := newFixture(t)

	require.NoError(t, assign(t, uc, entity.ShiftMorning, van1ID, false))
	require.NoError(t, assign(t, uc, entity.ShiftMorning, van2ID, false))

	assert.Equal(t, map[string]string{entity.ShiftMorning: van2ID}, dayState(t, uc))
}

func TestAssign_MediasComplementariasConviven(t *testing.T) {
	uc := newFixture(t)

	require.NoError(t, assign(t, uc, entity.ShiftMorning, van1ID, false))
	require.NoError(t, assign(t, uc, entity.ShiftAfternoon, van1ID, false))

	assert.Equal(t, map[string]string{
		entity.ShiftMorning:   van1ID,
		entity.ShiftAfternoon: van1ID,
	}, dayState(t, uc))
}

func TestAssign_Validaciones(t *testing.T) {
	uc := newFixture(t)
	ctx := context.Background()

	err := uc.Assign(ctx, shifts.AssignInput{WorkerID: workerID, VanID: van1ID, Date: day, Shift: "NOCHE"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = assign(t, uc, entity.ShiftMorning, whID, false)
	assert.ErrorIs(t, err, domain.ErrInvalidLocationKind, "el almacén central no es asignable como furgoneta")

	err = uc.Assign(ctx, shifts.AssignInput{WorkerID: "no-existe", VanID: van1ID, Date: day, Shift: entity.ShiftMorning})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Assign(ctx, shifts.AssignInput{WorkerID: workerID, VanID: "no-existe", Date: day, Shift: entity.ShiftMorning})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetYListas(t *testing.T) {
	uc := newFixture(t)
	ctx := context.Background()

	require.NoError(t, assign(t, uc, entity.ShiftMorning, van1ID, false))

	a, err := uc.Get(ctx, workerID, day, entity.ShiftMorning)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, van1ID, a.VanID)

	missing, err := uc.Get(ctx, workerID, day, entity.ShiftAfternoon)
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, err := uc.ListForWorker(ctx, workerID, day.AddDate(0, 0, -7), day)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRemove(t *testing.T) {
	uc := newFixture(t)
	ctx := context.Background()

	require.NoError(t, assign(t, uc, entity.ShiftMorning, van1ID, false))
	require.NoError(t, uc.Remove(ctx, workerID, day, entity.ShiftMorning))
	assert.Empty(t, dayState(t, uc))

	err := uc.Remove(ctx, workerID, day, entity.ShiftMorning)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
