package appointment

import (
	"testing"
	"time"

	"mycare/models"
	"mycare/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCitaRepo struct {
	citas   []models.Cita
	created []models.Cita
}

func (f *fakeCitaRepo) GetByID(id int64) (*models.Cita, error) {
	for i := range f.citas {
		if f.citas[i].ID == id {
			return &f.citas[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCitaRepo) GetAll() ([]models.Cita, error) { return f.citas, nil }

func (f *fakeCitaRepo) GetByNutricionista(nutricionistaID int64) ([]models.Cita, error) {
	var out []models.Cita
	for _, c := range f.citas {
		if c.NutricionistaID == nutricionistaID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCitaRepo) GetProgramadasByNutricionista(nutricionistaID int64, desde, hasta string) ([]models.Cita, error) {
	var out []models.Cita
	for _, c := range f.citas {
		if c.NutricionistaID == nutricionistaID && c.Estado == models.CitaProgramada &&
			c.Fecha >= desde && c.Fecha <= hasta {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCitaRepo) GetByUsuario(usuarioID int64) ([]models.Cita, error) {
	var out []models.Cita
	for _, c := range f.citas {
		if c.UsuarioID == usuarioID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCitaRepo) Create(cita *models.Cita) error {
	f.created = append(f.created, *cita)
	f.citas = append(f.citas, *cita)
	return nil
}

func (f *fakeCitaRepo) Update(cita *models.Cita) error {
	for i := range f.citas {
		if f.citas[i].ID == cita.ID {
			f.citas[i] = *cita
			return nil
		}
	}
	return nil
}

func (f *fakeCitaRepo) Delete(id int64) error        { return nil }
func (f *fakeCitaRepo) MarkRecordada(id int64) error { return nil }

type fakeNutriRepo struct {
	nutricionistas []models.Nutricionista
}

func (f *fakeNutriRepo) GetByID(id int64) (*models.Nutricionista, error) {
	for i := range f.nutricionistas {
		if f.nutricionistas[i].ID == id {
			return &f.nutricionistas[i], nil
		}
	}
	return nil, nil
}

func (f *fakeNutriRepo) GetAll() ([]models.Nutricionista, error) { return f.nutricionistas, nil }
func (f *fakeNutriRepo) Create(n *models.Nutricionista) error    { return nil }
func (f *fakeNutriRepo) Update(n *models.Nutricionista) error    { return nil }
func (f *fakeNutriRepo) Delete(id int64) error                   { return nil }

func today() string {
	return scheduling.AgendaDays(time.Now())[0].Fecha
}

func newServiceWith(citas ...models.Cita) (*DefaultAppointmentService, *fakeCitaRepo) {
	repo := &fakeCitaRepo{citas: citas}
	nextID := int64(100)
	return &DefaultAppointmentService{
		Repo:      repo,
		NutriRepo: &fakeNutriRepo{nutricionistas: []models.Nutricionista{{ID: 1, Nombres: "Ana"}}},
		NewID: func(string) (int64, error) {
			nextID++
			return nextID, nil
		},
	}, repo
}

func TestCreateCita_RejectsExactSlotTaken(t *testing.T) {
	svc, repo := newServiceWith(models.Cita{
		ID: 10, Fecha: today(), Hora: "09:00",
		Estado: models.CitaProgramada, UsuarioID: 5, NutricionistaID: 1,
	})

	_, err := svc.CreateCita(7, models.CrearCitaRequest{
		Fecha: today(), Hora: "09:00",
		TipoConsulta: models.ConsultaSeguimiento, NutricionistaID: 1,
	})
	require.Error(t, err)

	conflict, ok := err.(SlotConflictError)
	require.True(t, ok, "expected SlotConflictError, got %T", err)
	assert.Equal(t, scheduling.MotivoHorarioOcupado, conflict.Motivo)
	assert.Empty(t, repo.created)
}

func TestCreateCita_RejectsSecondBookingSameDay(t *testing.T) {
	svc, repo := newServiceWith(models.Cita{
		ID: 10, Fecha: today(), Hora: "09:00",
		Estado: models.CitaProgramada, UsuarioID: 5, NutricionistaID: 1,
	})

	// Same user, free slot, same day: the per-day rule wins and its reason is
	// the one surfaced.
	_, err := svc.CreateCita(5, models.CrearCitaRequest{
		Fecha: today(), Hora: "10:30",
		TipoConsulta: models.ConsultaSeguimiento, NutricionistaID: 1,
	})
	require.Error(t, err)

	conflict, ok := err.(SlotConflictError)
	require.True(t, ok)
	assert.Equal(t, scheduling.MotivoCitaMismoDia, conflict.Motivo)
	assert.Empty(t, repo.created)
}

func TestCreateCita_CancelledCitaDoesNotBlock(t *testing.T) {
	svc, _ := newServiceWith(models.Cita{
		ID: 10, Fecha: today(), Hora: "09:00",
		Estado: models.CitaCancelada, UsuarioID: 5, NutricionistaID: 1,
	})

	// Only PROGRAMADA citas occupy slots, so the freed slot books normally.
	cita, err := svc.CreateCita(7, models.CrearCitaRequest{
		Fecha: today(), Hora: "09:00",
		TipoConsulta: models.ConsultaEvaluacionInicial, NutricionistaID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, models.CitaProgramada, cita.Estado)
	assert.NotEmpty(t, cita.Referencia)
	assert.Equal(t, int64(7), cita.UsuarioID)
}

func TestCreateCita_AllocatesIDOnce(t *testing.T) {
	repo := &fakeCitaRepo{}
	allocations := 0
	svc := &DefaultAppointmentService{
		Repo:      repo,
		NutriRepo: &fakeNutriRepo{nutricionistas: []models.Nutricionista{{ID: 1, Nombres: "Ana"}}},
		NewID: func(string) (int64, error) {
			allocations++
			return 501, nil
		},
	}

	cita, err := svc.CreateCita(7, models.CrearCitaRequest{
		Fecha: today(), Hora: "09:00",
		TipoConsulta: models.ConsultaSeguimiento, NutricionistaID: 1,
	})
	require.NoError(t, err)

	// The service owns allocation: exactly one sequence number per booking,
	// and the stored record carries it unchanged.
	assert.Equal(t, 1, allocations)
	assert.Equal(t, int64(501), cita.ID)
	require.Len(t, repo.created, 1)
	assert.Equal(t, int64(501), repo.created[0].ID)
	assert.False(t, repo.created[0].FechaRegistro.IsZero())
}

func TestCreateCita_ValidatesRequest(t *testing.T) {
	svc, _ := newServiceWith()

	cases := []models.CrearCitaRequest{
		{Fecha: "not-a-date", Hora: "09:00", TipoConsulta: models.ConsultaSeguimiento, NutricionistaID: 1},
		{Fecha: "2020-01-01", Hora: "09:00", TipoConsulta: models.ConsultaSeguimiento, NutricionistaID: 1}, // outside window
		{Fecha: today(), Hora: "14:00", TipoConsulta: models.ConsultaSeguimiento, NutricionistaID: 1},      // not in grid
		{Fecha: today(), Hora: "09:00", TipoConsulta: "MASAJE", NutricionistaID: 1},
	}
	for _, req := range cases {
		_, err := svc.CreateCita(5, req)
		require.Error(t, err, "%+v", req)
		_, isValidation := err.(ValidationError)
		assert.True(t, isValidation, "validation failures carry ValidationError: %+v", req)
	}
}

func TestCreateCita_UnknownNutricionista(t *testing.T) {
	svc, _ := newServiceWith()

	_, err := svc.CreateCita(5, models.CrearCitaRequest{
		Fecha: today(), Hora: "09:00",
		TipoConsulta: models.ConsultaSeguimiento, NutricionistaID: 99,
	})
	require.Error(t, err)
	notFound, ok := err.(NotFoundError)
	require.True(t, ok, "expected NotFoundError, got %T", err)
	assert.Equal(t, int64(99), notFound.ID)
}

func TestCancelCita_OnlyHolderAndOnlyProgramada(t *testing.T) {
	svc, _ := newServiceWith(models.Cita{
		ID: 10, Fecha: today(), Hora: "09:00",
		Estado: models.CitaProgramada, UsuarioID: 5, NutricionistaID: 1,
	})

	_, err := svc.CancelCita(10, 7)
	assert.Error(t, err, "another user cannot cancel")

	cita, err := svc.CancelCita(10, 5)
	require.NoError(t, err)
	assert.Equal(t, models.CitaCancelada, cita.Estado)

	_, err = svc.CancelCita(10, 5)
	assert.Error(t, err, "already cancelled")
}
