package repos

import (
	"agrosite/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// List materializes the full collection; the dataset is small by contract and
// derived views are computed in memory.
func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT id, name, description, image, price, category, unit, created_at
	  FROM products
	  ORDER BY created_at DESC, id DESC`)
	return out, err
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, name, description, image, price, category, unit, created_at
	  FROM products WHERE id = ?`, id)
	return p, err
}

// Add assigns the id from the store's own counter.
func (r *ProductRepo) Add(p domain.Product) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO products(name, description, image, price, category, unit)
	  VALUES(?,?,?,?,?,?)`,
		p.Name, p.Description, p.Image, p.Price, p.Category, p.Unit)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Edit is an unconditional full replace by id; last writer wins.
func (r *ProductRepo) Edit(p domain.Product) error {
	_, err := r.db.Exec(`
	  UPDATE products SET name=?, description=?, image=?, price=?, category=?, unit=?
	  WHERE id=?`,
		p.Name, p.Description, p.Image, p.Price, p.Category, p.Unit, p.ID)
	return err
}

// Remove deletes by id. Deleting a missing id is not an error.
func (r *ProductRepo) Remove(id int64) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	return err
}
