package catalogo

import (
	"context"
	"strings"

	"github.com/jcastano/almacen-admin/internal/application/dto"
	"github.com/jcastano/almacen-admin/internal/domain"
	"github.com/jcastano/almacen-admin/internal/domain/entity"
	"github.com/jcastano/almacen-admin/internal/domain/repository"
)

// ClienteUseCase CRUD de clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// List lista los clientes.
func (uc *ClienteUseCase) List(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, len(clientes))
	for i, c := range clientes {
		out[i] = clienteResponse(c)
	}
	return out, nil
}

// Crear crea un cliente. El documento no puede repetirse.
func (uc *ClienteUseCase) Crear(ctx context.Context, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" || strings.TrimSpace(in.Documento) == "" {
		return nil, domain.ErrInvalidInput
	}
	existentes, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range existentes {
		if c.Documento == in.Documento {
			return nil, domain.ErrDuplicate
		}
	}
	creado, err := uc.repo.Create(ctx, &entity.Cliente{
		Nombre:        in.Nombre,
		Documento:     in.Documento,
		Direccion:     in.Direccion,
		Telefono:      in.Telefono,
		ResponsableID: in.ResponsableID,
		ListaPrecioID: in.ListaPrecioID,
	})
	if err != nil {
		return nil, err
	}
	r := clienteResponse(creado)
	return &r, nil
}

// Actualizar reemplazo completo sobre el último registro leído.
func (uc *ClienteUseCase) Actualizar(ctx context.Context, id int64, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	actual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Nombre) == "" || strings.TrimSpace(in.Documento) == "" {
		return nil, domain.ErrInvalidInput
	}
	editado := *actual
	editado.Nombre = in.Nombre
	editado.Documento = in.Documento
	editado.Direccion = in.Direccion
	editado.Telefono = in.Telefono
	editado.ResponsableID = in.ResponsableID
	editado.ListaPrecioID = in.ListaPrecioID

	guardado, err := uc.repo.Update(ctx, &editado)
	if err != nil {
		return nil, err
	}
	r := clienteResponse(guardado)
	return &r, nil
}

func clienteResponse(c *entity.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Documento:     c.Documento,
		Direccion:     c.Direccion,
		Telefono:      c.Telefono,
		ResponsableID: c.ResponsableID,
		ListaPrecioID: c.ListaPrecioID,
	}
}
