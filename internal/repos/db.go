package repos

import (
	"log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the default site content when the store is empty, the same way the
	// legacy site fell back to its built-in collections.
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Fixed product category label set
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  image TEXT NOT NULL DEFAULT '',
  price TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL REFERENCES categories(id),
  unit TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_category   ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

CREATE TABLE IF NOT EXISTS vacancies(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  department TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  salary TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  requirements TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_vacancies_created_at ON vacancies(created_at);

CREATE TABLE IF NOT EXISTS news(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  content TEXT NOT NULL DEFAULT '',
  image TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_news_created_at ON news(created_at);

CREATE TABLE IF NOT EXISTS inquiries(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  type TEXT NOT NULL CHECK (type IN ('product','vacancy','contact')),
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  message TEXT NOT NULL DEFAULT '',
  product_name TEXT NOT NULL DEFAULT '',
  vacancy_title TEXT NOT NULL DEFAULT '',
  resume_file TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  status TEXT NOT NULL DEFAULT 'new' CHECK (status IN ('new','in-progress','completed'))
);
CREATE INDEX IF NOT EXISTS idx_inquiries_created_at ON inquiries(created_at);
CREATE INDEX IF NOT EXISTS idx_inquiries_status     ON inquiries(status);

-- Editors & sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('ADMIN'))
);

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n == 0 {
		tx := db.MustBegin()
		tx.MustExec(`INSERT INTO categories(id,name) VALUES
		  ('grain','Зерновые культуры'),
		  ('beans','Бобовые культуры'),
		  ('livestock','Животноводство'),
		  ('services','Услуги')`)
		if err := tx.Commit(); err != nil {
			return err
		}
	}

	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting default products/vacancies/news")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO products(name,description,image,price,category,unit) VALUES
	  ('Пшеница озимая','Высококачественная озимая пшеница сортов Элегия, Капэлла и Августина. Подходит для пищевой промышленности.','https://images.unsplash.com/photo-1574323347407-f5e1ed40c3e2?auto=format&fit=crop','от 650 руб/т','grain','т'),
	  ('Ячмень','Яровой и озимый ячмень высокого качества. Используется для кормовых целей и пивоваренной промышленности.','https://images.unsplash.com/photo-1591117207239-788bf8de6c3b?auto=format&fit=crop','от 550 руб/т','grain','т'),
	  ('Рапс','Озимый и яровой рапс. Используется для производства растительного масла и биотоплива.','https://images.unsplash.com/photo-1599371625276-1aadef22311b?auto=format&fit=crop','от 1200 руб/т','grain','т'),
	  ('Горох','Горох для пищевой промышленности и кормовых целей. Высокое содержание белка.','https://images.unsplash.com/photo-1563635707507-5d44cadb2b48?auto=format&fit=crop','от 750 руб/т','beans','т'),
	  ('Соя','Высококачественная соя для пищевой промышленности и производства комбикормов.','https://images.unsplash.com/photo-1620636875061-73b99318f12b?auto=format&fit=crop','от 950 руб/т','beans','т'),
	  ('Молоко','Свежее коровье молоко высшего сорта. Поставляется на молокоперерабатывающие предприятия.','https://images.unsplash.com/photo-1563636619-e9143da7973b?auto=format&fit=crop','Договорная','livestock','л'),
	  ('Мясо говядины','Качественное мясо говядины от собственного животноводческого комплекса.','https://images.unsplash.com/photo-1551028150-64b9f398f678?auto=format&fit=crop','Договорная','livestock','кг'),
	  ('Аренда сельхозтехники','Предоставление в аренду современной сельскохозяйственной техники с операторами.','https://images.unsplash.com/photo-1588464083885-8abe494ab4dd?auto=format&fit=crop','от 100 руб/час','services','час'),
	  ('Хранение зерна','Услуги по временному хранению зерна в специально оборудованных складских помещениях.','https://images.unsplash.com/photo-1557690756-59716d0a4cdc?auto=format&fit=crop','от 5 руб/т в день','services','т')`)

	tx.MustExec(`INSERT INTO vacancies(title,department,location,salary,description,requirements) VALUES
	  ('Агроном','Растениеводство','д. Больтиники','от 1500 руб.','Мы ищем опытного агронома для организации и контроля полевых работ, разработки технологических карт и мониторинга состояния посевов.','Высшее образование по специальности "Агрономия"
Опыт работы в сельском хозяйстве от 3 лет
Знание современных агротехнологий
Умение работать с сельскохозяйственной техникой
Ответственность, организованность, нацеленность на результат'),
	  ('Механизатор','Механизация','д. Больтиники','от 1200 руб.','Требуется механизатор для выполнения различных сельскохозяйственных работ на современной технике.','Опыт работы на сельскохозяйственной технике от 2 лет
Наличие водительского удостоверения категории В, С
Навыки работы с современной сельхозтехникой
Ответственность, исполнительность, трудолюбие'),
	  ('Зоотехник','Животноводство','д. Больтиники','от 1400 руб.','Приглашаем на работу зоотехника для организации и контроля процессов кормления, содержания и разведения сельскохозяйственных животных.','Высшее образование по специальности "Зоотехния"
Опыт работы в животноводстве от 2 лет
Знание современных методов разведения и содержания КРС
Умение вести учетную документацию
Ответственность, инициативность, аналитические способности'),
	  ('Бухгалтер','Бухгалтерия','д. Больтиники','от 1300 руб.','Требуется бухгалтер для ведения учета в сельскохозяйственном предприятии.','Высшее экономическое образование
Опыт работы в бухгалтерии от 3 лет
Знание программы 1С:Бухгалтерия
Опыт работы в сельскохозяйственных предприятиях (желательно)
Внимательность, ответственность, аккуратность')`)

	tx.MustExec(`INSERT INTO news(title,content,image,created_at) VALUES
	  ('Завершена уборочная кампания','Наше предприятие успешно завершило уборку зерновых культур. Намолочено свыше 12 тысяч тонн зерна, урожайность выше прошлогодней.','https://images.unsplash.com/photo-1500937386664-56d1dfef3854?auto=format&fit=crop','2024-08-20 10:00:00'),
	  ('Обновление машинно-тракторного парка','Приобретены два новых энергонасыщенных трактора и зерноуборочный комбайн. Техника выйдет в поля уже в этом сезоне.','https://images.unsplash.com/photo-1592982537447-7440770cbfc9?auto=format&fit=crop','2024-06-11 09:30:00'),
	  ('Открыт новый молочно-товарный комплекс','Введен в эксплуатацию современный молочно-товарный комплекс на 600 голов с доильным залом и системой управления стадом.','https://images.unsplash.com/photo-1500595046743-cd271d694d30?auto=format&fit=crop','2024-03-05 14:15:00')`)

	return tx.Commit()
}

// EnsureAdmin creates or refreshes the single editor account. Idempotent; safe
// to run on every start.
func EnsureAdmin(db *sqlx.DB, username, password string) error {
	h, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO users(id,username,name,password_hash,role)
		VALUES(?,?,?,?,'ADMIN')
		ON CONFLICT(username) DO UPDATE SET password_hash=excluded.password_hash
	`, uuid.NewString(), username, "Администратор", string(h))
	return err
}
