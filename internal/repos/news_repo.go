package repos

import (
	"agrosite/internal/domain"

	"github.com/jmoiron/sqlx"
)

type NewsRepo struct{ db *sqlx.DB }

func NewNewsRepo(db *sqlx.DB) *NewsRepo { return &NewsRepo{db: db} }

func (r *NewsRepo) List() ([]domain.News, error) {
	out := []domain.News{}
	err := r.db.Select(&out, `
	  SELECT id, title, content, image, created_at
	  FROM news
	  ORDER BY created_at DESC, id DESC`)
	return out, err
}

func (r *NewsRepo) Get(id int64) (domain.News, error) {
	var n domain.News
	err := r.db.Get(&n, `
	  SELECT id, title, content, image, created_at
	  FROM news WHERE id = ?`, id)
	return n, err
}

func (r *NewsRepo) Add(n domain.News) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO news(title, content, image) VALUES(?,?,?)`,
		n.Title, n.Content, n.Image)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *NewsRepo) Edit(n domain.News) error {
	_, err := r.db.Exec(`
	  UPDATE news SET title=?, content=?, image=? WHERE id=?`,
		n.Title, n.Content, n.Image, n.ID)
	return err
}

func (r *NewsRepo) Remove(id int64) error {
	_, err := r.db.Exec(`DELETE FROM news WHERE id=?`, id)
	return err
}
