package repos

import (
	"agrosite/internal/domain"

	"github.com/jmoiron/sqlx"
)

type VacancyRepo struct{ db *sqlx.DB }

func NewVacancyRepo(db *sqlx.DB) *VacancyRepo { return &VacancyRepo{db: db} }

func (r *VacancyRepo) List() ([]domain.Vacancy, error) {
	out := []domain.Vacancy{}
	err := r.db.Select(&out, `
	  SELECT id, title, department, location, salary, description, requirements, created_at
	  FROM vacancies
	  ORDER BY created_at DESC, id DESC`)
	return out, err
}

func (r *VacancyRepo) Get(id int64) (domain.Vacancy, error) {
	var v domain.Vacancy
	err := r.db.Get(&v, `
	  SELECT id, title, department, location, salary, description, requirements, created_at
	  FROM vacancies WHERE id = ?`, id)
	return v, err
}

func (r *VacancyRepo) Add(v domain.Vacancy) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO vacancies(title, department, location, salary, description, requirements)
	  VALUES(?,?,?,?,?,?)`,
		v.Title, v.Department, v.Location, v.Salary, v.Description, v.RequirementsRaw)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *VacancyRepo) Edit(v domain.Vacancy) error {
	_, err := r.db.Exec(`
	  UPDATE vacancies SET title=?, department=?, location=?, salary=?, description=?, requirements=?
	  WHERE id=?`,
		v.Title, v.Department, v.Location, v.Salary, v.Description, v.RequirementsRaw, v.ID)
	return err
}

func (r *VacancyRepo) Remove(id int64) error {
	_, err := r.db.Exec(`DELETE FROM vacancies WHERE id=?`, id)
	return err
}
