package nutrition

import (
	"testing"
	"time"

	"mycare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGoalRepo struct {
	objetivos    []models.Objetivo
	niveles      []models.NivelActividad
	asignaciones []models.UsuarioObjetivo
}

func (f *fakeGoalRepo) GetObjetivos() ([]models.Objetivo, error) { return f.objetivos, nil }

func (f *fakeGoalRepo) GetObjetivoByID(id int64) (*models.Objetivo, error) {
	for i := range f.objetivos {
		if f.objetivos[i].ID == id {
			return &f.objetivos[i], nil
		}
	}
	return nil, nil
}

func (f *fakeGoalRepo) GetNivelesActividad() ([]models.NivelActividad, error) { return f.niveles, nil }

func (f *fakeGoalRepo) GetNivelActividadByID(id int64) (*models.NivelActividad, error) {
	for i := range f.niveles {
		if f.niveles[i].ID == id {
			return &f.niveles[i], nil
		}
	}
	return nil, nil
}

func (f *fakeGoalRepo) AssignObjetivo(uo *models.UsuarioObjetivo) error {
	// Newest first, matching the mongo repo's sort.
	f.asignaciones = append([]models.UsuarioObjetivo{*uo}, f.asignaciones...)
	return nil
}

func (f *fakeGoalRepo) GetObjetivosByUsuario(usuarioID int64) ([]models.UsuarioObjetivo, error) {
	var out []models.UsuarioObjetivo
	for _, uo := range f.asignaciones {
		if uo.UsuarioID == usuarioID {
			out = append(out, uo)
		}
	}
	return out, nil
}

type fakeIntakeRepo struct {
	ingestas map[int64]models.UsuarioIngesta
	comidas  []models.Comer
}

func (f *fakeIntakeRepo) GetIngesta(usuarioID int64) (*models.UsuarioIngesta, error) {
	if ing, ok := f.ingestas[usuarioID]; ok {
		return &ing, nil
	}
	return nil, nil
}

func (f *fakeIntakeRepo) GetAllIngestas() ([]models.UsuarioIngesta, error) { return nil, nil }

func (f *fakeIntakeRepo) GetIngestasByIMCRange(minIMC, maxIMC float64) ([]models.UsuarioIngesta, error) {
	var out []models.UsuarioIngesta
	for _, ing := range f.ingestas {
		if ing.IMC >= minIMC && ing.IMC <= maxIMC {
			out = append(out, ing)
		}
	}
	return out, nil
}

func (f *fakeIntakeRepo) UpsertIngesta(ingesta *models.UsuarioIngesta) error {
	if f.ingestas == nil {
		f.ingestas = make(map[int64]models.UsuarioIngesta)
	}
	f.ingestas[ingesta.UsuarioID] = *ingesta
	return nil
}

func (f *fakeIntakeRepo) DeleteIngesta(usuarioID int64) error { return nil }

func (f *fakeIntakeRepo) CreateComer(comer *models.Comer) error {
	f.comidas = append(f.comidas, *comer)
	return nil
}

func (f *fakeIntakeRepo) GetComerByID(id int64) (*models.Comer, error) {
	for i := range f.comidas {
		if f.comidas[i].ID == id {
			return &f.comidas[i], nil
		}
	}
	return nil, nil
}

func (f *fakeIntakeRepo) GetComerByUsuario(usuarioID int64) ([]models.Comer, error) {
	var out []models.Comer
	for _, c := range f.comidas {
		if c.UsuarioID == usuarioID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeIntakeRepo) GetComerByUsuarioFecha(usuarioID int64, fecha string) ([]models.Comer, error) {
	var out []models.Comer
	for _, c := range f.comidas {
		if c.UsuarioID == usuarioID && c.FechaConsumo == fecha {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeIntakeRepo) DeleteComer(id int64) error {
	for i := range f.comidas {
		if f.comidas[i].ID == id {
			f.comidas = append(f.comidas[:i], f.comidas[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeUserRepo struct {
	informacion map[int64]models.UsuarioInformacion
}

func (f *fakeUserRepo) GetByID(id int64) (*models.Usuario, error)               { return nil, nil }
func (f *fakeUserRepo) GetByUsername(username string) (*models.Usuario, error)  { return nil, nil }
func (f *fakeUserRepo) GetAll() ([]models.Usuario, error)                       { return nil, nil }
func (f *fakeUserRepo) Create(usuario *models.Usuario) error                    { return nil }
func (f *fakeUserRepo) Update(usuario *models.Usuario) error                    { return nil }
func (f *fakeUserRepo) Delete(id int64) error                                   { return nil }
func (f *fakeUserRepo) UpsertInformacion(info *models.UsuarioInformacion) error { return nil }

func (f *fakeUserRepo) GetInformacion(usuarioID int64) (*models.UsuarioInformacion, error) {
	if info, ok := f.informacion[usuarioID]; ok {
		return &info, nil
	}
	return nil, nil
}

type fakeFoodService struct {
	alimentos map[int64]models.Alimento
}

func (f *fakeFoodService) GetAlimentoByID(id int64) (*models.Alimento, error) {
	if a, ok := f.alimentos[id]; ok {
		return &a, nil
	}
	return nil, assert.AnError
}

func (f *fakeFoodService) GetAllAlimentos() ([]models.Alimento, error)               { return nil, nil }
func (f *fakeFoodService) GetAlimentosByCategoria(string) ([]models.Alimento, error) { return nil, nil }
func (f *fakeFoodService) CreateAlimento(models.Alimento) (*models.Alimento, error)  { return nil, nil }
func (f *fakeFoodService) UpdateAlimento(models.Alimento) (*models.Alimento, error)  { return nil, nil }
func (f *fakeFoodService) DeleteAlimento(int64) error                                { return nil }
func (f *fakeFoodService) GetCategorias() ([]models.Categoria, error)                { return nil, nil }

func newNutritionService() *DefaultNutritionService {
	nextID := int64(0)
	svc := &DefaultNutritionService{
		GoalRepo: &fakeGoalRepo{
			objetivos: []models.Objetivo{
				{ID: 1, Nombre: "Bajar de peso", AjusteCalorias: -0.15},
				{ID: 2, Nombre: "Mantener", AjusteCalorias: 0},
			},
			niveles: []models.NivelActividad{
				{ID: 1, Nombre: "Sedentario", Factor: 1.2},
				{ID: 2, Nombre: "Moderado", Factor: 1.55},
			},
		},
		IntakeRepo: &fakeIntakeRepo{},
		UserRepo: &fakeUserRepo{informacion: map[int64]models.UsuarioInformacion{
			5: {UsuarioID: 5, FechaNacimiento: "1994-03-10", Sexo: "M", AlturaCm: 175, PesoKg: 70, NivelActividadID: 2},
		}},
		Foods: &fakeFoodService{alimentos: map[int64]models.Alimento{
			1: {ID: 1, Nombre: "Arroz", Calorias: 130, Proteina: 2.7, Carbohidrato: 28, Grasa: 0.3, Fibra: 0.4},
		}},
		NewID: func(string) (int64, error) {
			nextID++
			return nextID, nil
		},
	}
	return svc
}

func TestCalcularIngesta_MifflinStJeor(t *testing.T) {
	svc := newNutritionService()
	_, err := svc.AssignObjetivo(5, 1)
	require.NoError(t, err)

	ingesta, err := svc.CalcularIngesta(5)
	require.NoError(t, err)

	edad, err := edadFromFecha("1994-03-10", time.Now())
	require.NoError(t, err)

	bmr := 10*70.0 + 6.25*175 - 5*float64(edad) + 5
	wantCal := bmr * 1.55 * 0.85

	assert.InDelta(t, wantCal, ingesta.Calorias, 0.51)
	assert.InDelta(t, 22.9, ingesta.IMC, 0.01)
	assert.InDelta(t, wantCal*0.25/4, ingesta.Proteina, 1)
	assert.InDelta(t, wantCal*0.50/4, ingesta.Carbohidrato, 1)
	assert.InDelta(t, wantCal*0.25/9, ingesta.Grasa, 1)
}

func TestCalcularIngesta_RequiresProfileAndGoal(t *testing.T) {
	svc := newNutritionService()

	// No goal yet.
	_, err := svc.CalcularIngesta(5)
	assert.Error(t, err)

	// No profile at all.
	_, err = svc.CalcularIngesta(99)
	assert.Error(t, err)
}

func TestGetIngesta_ComputesOnFirstAccess(t *testing.T) {
	svc := newNutritionService()
	_, err := svc.AssignObjetivo(5, 2)
	require.NoError(t, err)

	first, err := svc.GetIngesta(5)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := svc.GetIngesta(5)
	require.NoError(t, err)
	assert.Equal(t, first.Calorias, second.Calorias)
}

func TestEdadFromFecha(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	edad, err := edadFromFecha("1994-06-15", now)
	require.NoError(t, err)
	assert.Equal(t, 30, edad)

	edad, err = edadFromFecha("1994-06-16", now)
	require.NoError(t, err)
	assert.Equal(t, 29, edad, "birthday not reached yet")

	_, err = edadFromFecha("2030-01-01", now)
	assert.Error(t, err)

	_, err = edadFromFecha("hace tiempo", now)
	assert.Error(t, err)
}

func TestRegistrarComer_ScalesMacros(t *testing.T) {
	svc := newNutritionService()

	comer, err := svc.RegistrarComer(5, models.ComerRequest{
		AlimentoID: 1, Cantidad: 150, Unidad: "g", FechaConsumo: "2024-06-10",
	})
	require.NoError(t, err)

	assert.Equal(t, "Arroz", comer.AlimentoNombre)
	assert.InDelta(t, 195, comer.CaloriasCalculadas, 0.001)   // 130 * 1.5
	assert.InDelta(t, 4.05, comer.ProteinasCalculadas, 0.001) // 2.7 * 1.5
	assert.InDelta(t, 42, comer.CarbohidratosCalculados, 0.001)
	assert.InDelta(t, 0.45, comer.GrasasCalculadas, 0.001)
}

func TestRegistrarComer_RejectsUnknownUnit(t *testing.T) {
	svc := newNutritionService()
	_, err := svc.RegistrarComer(5, models.ComerRequest{AlimentoID: 1, Cantidad: 200, Unidad: "ml"})
	assert.Error(t, err)
}

func TestBuildProgreso_Estados(t *testing.T) {
	ingesta := &models.UsuarioIngesta{Calorias: 2000, Proteina: 125, Carbohidrato: 250, Grasa: 56}

	deficit := buildProgreso(5, "2024-06-10", ingesta, []models.Comer{
		{CaloriasCalculadas: 1000},
	})
	assert.Equal(t, models.ProgresoDeficit, deficit.Estado)
	assert.InDelta(t, 50, deficit.PorcentajeCalorias, 0.1)
	assert.InDelta(t, 1000, deficit.RestanteCalorias, 0.001)

	enMeta := buildProgreso(5, "2024-06-10", ingesta, []models.Comer{
		{CaloriasCalculadas: 1950},
	})
	assert.Equal(t, models.ProgresoEnMeta, enMeta.Estado)

	exceso := buildProgreso(5, "2024-06-10", ingesta, []models.Comer{
		{CaloriasCalculadas: 2500},
	})
	assert.Equal(t, models.ProgresoExceso, exceso.Estado)
}

func TestGetHistorialProgreso_Aggregates(t *testing.T) {
	svc := newNutritionService()
	_, err := svc.AssignObjetivo(5, 2)
	require.NoError(t, err)

	repo := svc.IntakeRepo.(*fakeIntakeRepo)
	repo.comidas = append(repo.comidas,
		models.Comer{ID: 50, UsuarioID: 5, FechaConsumo: "2024-06-10", CaloriasCalculadas: 800},
		models.Comer{ID: 51, UsuarioID: 5, FechaConsumo: "2024-06-12", CaloriasCalculadas: 1200},
	)

	historial, err := svc.GetHistorialProgreso(5, "2024-06-09", "2024-06-13")
	require.NoError(t, err)

	assert.Equal(t, 2, historial.DiasRegistrados, "days without entries are skipped")
	assert.Len(t, historial.ProgresosPorFecha, 2)
	assert.InDelta(t, 1000, historial.PromedioCalorias, 0.001)
	assert.Equal(t, 2, historial.DiasDeficit)
}

func TestGetHistorialProgreso_ValidatesRange(t *testing.T) {
	svc := newNutritionService()
	_, err := svc.AssignObjetivo(5, 2)
	require.NoError(t, err)

	_, err = svc.GetHistorialProgreso(5, "2024-06-10", "2024-06-01")
	assert.Error(t, err)

	_, err = svc.GetHistorialProgreso(5, "2024-01-01", "2024-12-31")
	assert.Error(t, err, "range cap")
}
