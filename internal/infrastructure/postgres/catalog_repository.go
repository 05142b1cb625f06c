package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/jhoicas/stock-status-reset/internal/domain"
	"github.com/jhoicas/stock-status-reset/internal/domain/entity"
	"github.com/jhoicas/stock-status-reset/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

var dialect = goqu.Dialect("postgres")

// CatalogRepo implementación del puerto CatalogRepository sobre PostgreSQL (usable con pool o tx).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// listCompositesSQL arma el SELECT de productos compuestos del tipo indicado.
func listCompositesSQL(filter repository.ProductFilter) (string, []any, error) {
	if strings.TrimSpace(filter.TypeID) == "" {
		return "", nil, fmt.Errorf("tipo de producto vacío: %w", domain.ErrInvalidInput)
	}
	return dialect.From(goqu.T("products").As("p")).
		Select(goqu.I("p.id"), goqu.I("p.sku"), goqu.I("p.name"), goqu.I("p.type_id")).
		Where(goqu.Ex{"p.type_id": filter.TypeID}).
		Order(goqu.I("p.id").Asc()).
		Prepared(true).
		ToSQL()
}

// ListComposites lista los productos compuestos ordenados por id (orden estable de escaneo).
func (r *CatalogRepo) ListComposites(ctx context.Context, filter repository.ProductFilter) ([]*entity.CompositeProduct, error) {
	query, args, err := listCompositesSQL(filter)
	if err != nil {
		return nil, fmt.Errorf("build list composites: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list composites: %w", err)
	}
	defer rows.Close()

	var list []*entity.CompositeProduct
	for rows.Next() {
		var p entity.CompositeProduct
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.TypeID); err != nil {
			return nil, fmt.Errorf("scan composite: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetChildIDs devuelve los ids de los hijos del producto padre (vacío si no tiene).
func (r *CatalogRepo) GetChildIDs(ctx context.Context, parentID int64) ([]int64, error) {
	rows, err := r.q.Query(ctx,
		`SELECT child_id FROM product_relations WHERE parent_id = $1 ORDER BY child_id`,
		parentID,
	)
	if err != nil {
		return nil, fmt.Errorf("get child ids: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan child id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
