package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gmao-api/internal/application/dto"
	"github.com/jhoicas/Gmao-api/internal/application/usecase"
	"github.com/jhoicas/Gmao-api/internal/domain"
	"github.com/jhoicas/Gmao-api/internal/domain/entity"
)

type memIncidentRepo struct {
	incidents map[string]*entity.Incident
}

func newMemIncidentRepo() *memIncidentRepo {
	return &memIncidentRepo{incidents: map[string]*entity.Incident{}}
}

func (r *memIncidentRepo) Create(i *entity.Incident) error {
	copia := *i
	r.incidents[i.ID] = &copia
	return nil
}

func (r *memIncidentRepo) GetByID(id string) (*entity.Incident, error) {
	i, ok := r.incidents[id]
	if !ok {
		return nil, nil
	}
	copia := *i
	return &copia, nil
}

func (r *memIncidentRepo) ListBySite(siteID, status string, limit, offset int) ([]*entity.Incident, error) {
	var out []*entity.Incident
	for _, i := range r.incidents {
		if i.SiteID != siteID {
			continue
		}
		if status != "" && i.Status != status {
			continue
		}
		copia := *i
		out = append(out, &copia)
	}
	return out, nil
}

func (r *memIncidentRepo) Update(i *entity.Incident) error {
	copia := *i
	r.incidents[i.ID] = &copia
	return nil
}

func (r *memIncidentRepo) Delete(id string) error { delete(r.incidents, id); return nil }

type memZoneRepo struct {
	zones map[string]*entity.Zone
}

func (r *memZoneRepo) Create(z *entity.Zone) error { r.zones[z.ID] = z; return nil }

func (r *memZoneRepo) GetByID(id string) (*entity.Zone, error) {
	z, ok := r.zones[id]
	if !ok {
		return nil, nil
	}
	return z, nil
}

func (r *memZoneRepo) ListBySite(string, int, int) ([]*entity.Zone, error) { return nil, nil }
func (r *memZoneRepo) Update(*entity.Zone) error                           { return nil }
func (r *memZoneRepo) Delete(string) error                                 { return nil }

func setupIncidentUseCase() *usecase.IncidentUseCase {
	zones := &memZoneRepo{zones: map[string]*entity.Zone{
		"zone-1": {ID: "zone-1", SiteID: "site-1", Name: "Planta baja"},
	}}
	return usecase.NewIncidentUseCase(newMemIncidentRepo(), zones)
}

var incidentTenant = domain.TenantContext{SiteID: "site-1"}

func TestIncidentCreate_NaceAbiertaConPrioridadPorDefecto(t *testing.T) {
	uc := setupIncidentUseCase()

	resp, err := uc.Create(incidentTenant, "user-1", dto.CreateIncidentRequest{
		Title: "Fuga de agua en el baño",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.IncidentStatusOpen, resp.Status)
	assert.Equal(t, entity.IncidentPriorityMedium, resp.Priority)
	assert.Nil(t, resp.ResolvedAt)
	assert.Equal(t, "user-1", resp.ReportedBy)
}

func TestIncidentCreate_ZonaDeOtraSedeRechazada(t *testing.T) {
	uc := setupIncidentUseCase()

	zona := "zone-1"
	_, err := uc.Create(domain.TenantContext{SiteID: "site-otra"}, "user-1", dto.CreateIncidentRequest{
		Title:  "Cristal roto",
		ZoneID: &zona,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIncidentUpdate_FijarResolvedAtPasaAResolved(t *testing.T) {
	uc := setupIncidentUseCase()
	created, err := uc.Create(incidentTenant, "user-1", dto.CreateIncidentRequest{Title: "Ascensor parado"})
	require.NoError(t, err)

	resuelto := time.Now()
	resp, err := uc.Update(incidentTenant, created.ID, dto.UpdateIncidentRequest{ResolvedAt: &resuelto})
	require.NoError(t, err)
	assert.Equal(t, entity.IncidentStatusResolved, resp.Status, "fijar la fecha de resolución pasa la incidencia a resolved")
	require.NotNil(t, resp.ResolvedAt)
	assert.WithinDuration(t, resuelto, *resp.ResolvedAt, time.Second)
}

func TestIncidentUpdate_ClearResolvedReabre(t *testing.T) {
	uc := setupIncidentUseCase()
	created, err := uc.Create(incidentTenant, "user-1", dto.CreateIncidentRequest{Title: "Ascensor parado"})
	require.NoError(t, err)

	resuelto := time.Now()
	_, err = uc.Update(incidentTenant, created.ID, dto.UpdateIncidentRequest{ResolvedAt: &resuelto})
	require.NoError(t, err)

	resp, err := uc.Update(incidentTenant, created.ID, dto.UpdateIncidentRequest{ClearResolved: true})
	require.NoError(t, err)
	assert.Equal(t, entity.IncidentStatusOpen, resp.Status, "limpiar la fecha de resolución reabre la incidencia")
	assert.Nil(t, resp.ResolvedAt)
}

func TestIncidentUpdate_SinTocarResolvedAtNoAlteraEstado(t *testing.T) {
	uc := setupIncidentUseCase()
	created, err := uc.Create(incidentTenant, "user-1", dto.CreateIncidentRequest{Title: "Luz fundida"})
	require.NoError(t, err)

	alta := entity.IncidentPriorityHigh
	resp, err := uc.Update(incidentTenant, created.ID, dto.UpdateIncidentRequest{Priority: &alta})
	require.NoError(t, err)
	assert.Equal(t, entity.IncidentStatusOpen, resp.Status)
	assert.Equal(t, entity.IncidentPriorityHigh, resp.Priority)
}

func TestIncidentList_FiltraPorEstado(t *testing.T) {
	uc := setupIncidentUseCase()
	a, err := uc.Create(incidentTenant, "user-1", dto.CreateIncidentRequest{Title: "A"})
	require.NoError(t, err)
	_, err = uc.Create(incidentTenant, "user-1", dto.CreateIncidentRequest{Title: "B"})
	require.NoError(t, err)

	resuelto := time.Now()
	_, err = uc.Update(incidentTenant, a.ID, dto.UpdateIncidentRequest{ResolvedAt: &resuelto})
	require.NoError(t, err)

	abiertas, err := uc.List(incidentTenant, entity.IncidentStatusOpen, 50, 0)
	require.NoError(t, err)
	require.Len(t, abiertas.Items, 1)
	assert.Equal(t, "B", abiertas.Items[0].Title)

	resueltas, err := uc.List(incidentTenant, entity.IncidentStatusResolved, 50, 0)
	require.NoError(t, err)
	require.Len(t, resueltas.Items, 1)
	assert.Equal(t, "A", resueltas.Items[0].Title)
}
