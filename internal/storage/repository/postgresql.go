// Package repository реализует хранилище данных на основе PostgreSQL
// для сервиса шаблонов документов. Предоставляет методы работы с
// пользователями, каталогом шаблонов, документами пользователей и покупками.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Ошибки-маркеры слоя хранения. Сервисы и обработчики различают их
// через errors.Is, не разбирая текст ошибки.
var (
	// ErrNotFound возвращается, когда запись с указанным идентификатором отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken возвращается при нарушении уникальности электронной почты пользователя.
	ErrEmailTaken = errors.New("email already taken")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'templates'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table templates missing or query error: %w", err)
	}
	return nil
}

// rowScanner покрывает *sql.Row и *sql.Rows для общих функций сканирования.
type rowScanner interface {
	Scan(dest ...any) error
}

// isUniqueViolation сообщает о нарушении уникального ограничения.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
