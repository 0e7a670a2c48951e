package catalog

import (
	"testing"

	"mycare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFoods struct {
	alimentos map[int64]models.Alimento
}

func (f *fakeFoods) GetAlimentoByID(id int64) (*models.Alimento, error) {
	if a, ok := f.alimentos[id]; ok {
		return &a, nil
	}
	return nil, assert.AnError
}

func (f *fakeFoods) GetAllAlimentos() ([]models.Alimento, error)               { return nil, nil }
func (f *fakeFoods) GetAlimentosByCategoria(string) ([]models.Alimento, error) { return nil, nil }
func (f *fakeFoods) CreateAlimento(models.Alimento) (*models.Alimento, error)  { return nil, nil }
func (f *fakeFoods) UpdateAlimento(models.Alimento) (*models.Alimento, error)  { return nil, nil }
func (f *fakeFoods) DeleteAlimento(int64) error                                { return nil }
func (f *fakeFoods) GetCategorias() ([]models.Categoria, error)                { return nil, nil }

func TestRecomputeMacros_SumsScaledItems(t *testing.T) {
	svc := &DefaultDishService{Foods: &fakeFoods{alimentos: map[int64]models.Alimento{
		1: {ID: 1, Nombre: "Arroz", Calorias: 130, Proteina: 2.7, Carbohidrato: 28, Grasa: 0.3, Fibra: 0.4},
		2: {ID: 2, Nombre: "Pollo", Calorias: 165, Proteina: 31, Carbohidrato: 0, Grasa: 3.6, Fibra: 0},
	}}}

	plato := models.Plato{
		Nombre: "Arroz con pollo",
		Items: []models.PlatoItem{
			{AlimentoID: 1, Cantidad: 200}, // 2x
			{AlimentoID: 2, Cantidad: 150}, // 1.5x
		},
	}
	require.NoError(t, svc.recomputeMacros(&plato))

	assert.InDelta(t, 130*2+165*1.5, plato.Calorias, 0.001)
	assert.InDelta(t, 2.7*2+31*1.5, plato.Proteina, 0.001)
	assert.InDelta(t, 28*2, plato.Carbohidrato, 0.001)
	assert.InDelta(t, 0.3*2+3.6*1.5, plato.Grasa, 0.001)
	assert.Equal(t, "Arroz", plato.Items[0].AlimentoNombre)
	assert.Equal(t, "Pollo", plato.Items[1].AlimentoNombre)
}

func TestRecomputeMacros_RejectsBadItems(t *testing.T) {
	svc := &DefaultDishService{Foods: &fakeFoods{alimentos: map[int64]models.Alimento{
		1: {ID: 1, Nombre: "Arroz"},
	}}}

	err := svc.recomputeMacros(&models.Plato{Items: []models.PlatoItem{{AlimentoID: 1, Cantidad: 0}}})
	assert.Error(t, err, "non-positive cantidad")

	err = svc.recomputeMacros(&models.Plato{Items: []models.PlatoItem{{AlimentoID: 9, Cantidad: 100}}})
	assert.Error(t, err, "unknown alimento")
}
