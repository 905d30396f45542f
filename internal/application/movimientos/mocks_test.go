package movimientos_test

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jcastano/almacen-admin/internal/domain"
	"github.com/jcastano/almacen-admin/internal/domain/entity"
)

// Mocks en memoria de los puertos remotos. Registran cada escritura para que
// los tests puedan afirmar qué llamadas salieron y con qué payload completo.

var errRemoto = errors.New("api remoto: 500")

type articuloRepoMock struct {
	porID   map[int64]*entity.Articulo
	ultimo  int64
	Updates []entity.Articulo // payloads completos enviados en cada Update
	Creates []entity.Articulo

	FailList   bool
	FailUpdate string // nombre de artículo cuyo Update falla
}

func newArticuloRepoMock(arts ...*entity.Articulo) *articuloRepoMock {
	m := &articuloRepoMock{porID: map[int64]*entity.Articulo{}}
	for _, a := range arts {
		cp := *a
		m.porID[a.ID] = &cp
		if a.ID > m.ultimo {
			m.ultimo = a.ID
		}
	}
	return m
}

func (m *articuloRepoMock) List(_ context.Context) ([]*entity.Articulo, error) {
	if m.FailList {
		return nil, errRemoto
	}
	out := make([]*entity.Articulo, 0, len(m.porID))
	for _, a := range m.porID {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (m *articuloRepoMock) GetByID(_ context.Context, id int64) (*entity.Articulo, error) {
	a, ok := m.porID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *articuloRepoMock) Create(_ context.Context, a *entity.Articulo) (*entity.Articulo, error) {
	m.ultimo++
	cp := *a
	cp.ID = m.ultimo
	m.porID[cp.ID] = &cp
	m.Creates = append(m.Creates, cp)
	out := cp
	return &out, nil
}

func (m *articuloRepoMock) Update(_ context.Context, a *entity.Articulo) (*entity.Articulo, error) {
	if m.FailUpdate != "" && a.Nombre == m.FailUpdate {
		return nil, errRemoto
	}
	if _, ok := m.porID[a.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	m.porID[cp.ID] = &cp
	m.Updates = append(m.Updates, cp)
	out := cp
	return &out, nil
}

func (m *articuloRepoMock) Delete(_ context.Context, id int64) error {
	delete(m.porID, id)
	return nil
}

type proveedorRepoMock struct {
	lista   []*entity.Proveedor
	ultimo  int64
	Creates []entity.Proveedor
}

func newProveedorRepoMock(provs ...*entity.Proveedor) *proveedorRepoMock {
	m := &proveedorRepoMock{}
	for _, p := range provs {
		cp := *p
		m.lista = append(m.lista, &cp)
		if p.ID > m.ultimo {
			m.ultimo = p.ID
		}
	}
	return m
}

func (m *proveedorRepoMock) List(_ context.Context) ([]*entity.Proveedor, error) {
	out := make([]*entity.Proveedor, len(m.lista))
	for i, p := range m.lista {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

func (m *proveedorRepoMock) GetByID(_ context.Context, id int64) (*entity.Proveedor, error) {
	for _, p := range m.lista {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *proveedorRepoMock) Create(_ context.Context, p *entity.Proveedor) (*entity.Proveedor, error) {
	m.ultimo++
	cp := *p
	cp.ID = m.ultimo
	m.lista = append(m.lista, &cp)
	m.Creates = append(m.Creates, cp)
	out := cp
	return &out, nil
}

type registroRepoMock struct {
	Cabeceras []entity.Registro
	Detalles  []entity.Detalle
	ultimo    int64

	FailCabecera      bool
	FailDetalleDesde  int // falla el detalle N (1-based); 0 = nunca
}

func (m *registroRepoMock) CreateCabecera(_ context.Context, r *entity.Registro) (*entity.Registro, error) {
	if m.FailCabecera {
		return nil, errRemoto
	}
	m.ultimo++
	cp := *r
	cp.ID = m.ultimo
	m.Cabeceras = append(m.Cabeceras, cp)
	out := cp
	return &out, nil
}

func (m *registroRepoMock) CreateDetalle(_ context.Context, d *entity.Detalle) (*entity.Detalle, error) {
	if m.FailDetalleDesde > 0 && len(m.Detalles)+1 >= m.FailDetalleDesde {
		return nil, errRemoto
	}
	m.ultimo++
	cp := *d
	cp.ID = m.ultimo
	m.Detalles = append(m.Detalles, cp)
	out := cp
	return &out, nil
}

func (m *registroRepoMock) ListConDetalles(_ context.Context) ([]*entity.RegistroConDetalles, error) {
	out := make([]*entity.RegistroConDetalles, 0, len(m.Cabeceras))
	for _, r := range m.Cabeceras {
		rc := &entity.RegistroConDetalles{Registro: r}
		for _, d := range m.Detalles {
			if d.RegistroID == r.ID {
				rc.Detalles = append(rc.Detalles, d)
			}
		}
		out = append(out, rc)
	}
	return out, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
