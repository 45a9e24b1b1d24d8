package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventario-desktop/internal/domain"
	"github.com/tu-usuario/inventario-desktop/internal/domain/entity"
	"github.com/tu-usuario/inventario-desktop/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre SQLite.
// El precio se guarda como TEXT para ida y vuelta exacta del decimal.
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un nuevo producto y asigna product.ID con el id generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	res, err := r.db.Exec(
		`INSERT INTO products (name, description, price, stock, warehouse_id, created_at, updated_at, updated_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		product.Name, product.Description, product.Price.String(), product.Stock,
		product.WarehouseID, formatTime(product.CreatedAt), formatTime(product.UpdatedAt),
		product.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("id de product insertado: %w", err)
	}
	product.ID = id
	return nil
}

// List devuelve todos los productos ordenados por id, con el nombre del
// almacén resuelto (vacío si la referencia quedó huérfana).
func (r *ProductRepo) List() ([]*entity.Product, error) {
	rows, err := r.db.Query(
		`SELECT p.id, p.name, p.description, p.price, p.stock, p.warehouse_id,
		        COALESCE(w.name, ''), p.created_at, p.updated_at, p.updated_by
		 FROM products p
		 LEFT JOIN warehouses w ON w.id = p.warehouse_id
		 ORDER BY p.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var (
			p         entity.Product
			price     string
			createdAt sql.NullString
			updatedAt sql.NullString
			updatedBy sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &price, &p.Stock,
			&p.WarehouseID, &p.WarehouseName, &createdAt, &updatedAt, &updatedBy); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("precio almacenado inválido %q: %w", price, err)
		}
		p.Price = d
		p.CreatedAt = parseTime(createdAt)
		p.UpdatedAt = parseTime(updatedAt)
		p.UpdatedBy = updatedBy.String
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update sobreescribe los campos mutables más la auditoría de modificación.
// created_at no se toca. Si el id no existe devuelve domain.ErrNotFound.
func (r *ProductRepo) Update(product *entity.Product) error {
	res, err := r.db.Exec(
		`UPDATE products
		 SET name = ?, description = ?, price = ?, stock = ?, warehouse_id = ?,
		     updated_at = ?, updated_by = ?
		 WHERE id = ?`,
		product.Name, product.Description, product.Price.String(), product.Stock,
		product.WarehouseID, formatTime(product.UpdatedAt), product.UpdatedBy, product.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected de update product: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por id. Un borrado de cero filas no es error.
func (r *ProductRepo) Delete(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// GetAudit devuelve solo los campos de auditoría, nil si el id no existe.
func (r *ProductRepo) GetAudit(id int64) (*entity.Audit, error) {
	return getAudit(r.db, "products", id)
}

// getAudit es la consulta puntual de auditoría compartida por ambas tablas.
func getAudit(db *sql.DB, table string, id int64) (*entity.Audit, error) {
	query := fmt.Sprintf(
		`SELECT created_at, updated_at, updated_by FROM %s WHERE id = ?`, table)
	var createdAt, updatedAt, updatedBy sql.NullString
	err := db.QueryRow(query, id).Scan(&createdAt, &updatedAt, &updatedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get audit de %s: %w", table, err)
	}
	return &entity.Audit{
		CreatedAt: parseTime(createdAt),
		UpdatedAt: parseTime(updatedAt),
		UpdatedBy: updatedBy.String,
	}, nil
}
