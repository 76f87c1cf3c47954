package models

import "time"

// Статусы документа пользователя. Удаление моделируется как статус trashed,
// физического удаления записей нет.
const (
	DocumentStatusDraft     = "draft"
	DocumentStatusCompleted = "completed"
	DocumentStatusTrashed   = "trashed"
)

// Допустимые типы файла документа.
const (
	FileTypePDF  = "pdf"
	FileTypeDoc  = "doc"
	FileTypeDocx = "docx"
)

// UserDocument представляет документ пользователя: либо заполненный по шаблону
// каталога (TemplateID указывает на шаблон), либо загруженный файл (TemplateID nil).
type UserDocument struct {
	ID           int            `json:"id"`
	UserID       int            `json:"user_id"`
	TemplateID   *int           `json:"template_id"`
	Title        string         `json:"title"`
	DocumentData map[string]any `json:"document_data"` // Заполненные значения полей
	FileURL      *string        `json:"file_url"`      // Ссылка на файл, в рамках сервиса не заполняется
	FileType     *string        `json:"file_type"`     // pdf, doc или docx
	Status       string         `json:"status"`        // draft, completed или trashed
	IsFavorite   bool           `json:"is_favorite"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// CreateDocumentRequest используется для приёма данных нового документа из JSON-запроса.
type CreateDocumentRequest struct {
	UserID       int            `json:"user_id" validate:"required,gt=0"`                               // Владелец документа
	TemplateID   *int           `json:"template_id" validate:"omitempty,gt=0"`                          // Исходный шаблон (опционально)
	Title        string         `json:"title" validate:"required"`                                      // Название документа
	DocumentData map[string]any `json:"document_data" validate:"required"`                              // Значения полей
	FileType     *string        `json:"file_type" validate:"omitempty,oneof=pdf doc docx"`              // Тип файла (опционально)
	Status       string         `json:"status" validate:"omitempty,oneof=draft completed trashed"`      // Статус (по умолчанию draft)
}

// DocumentFilter представляет параметры выборки документов пользователя.
// Status и IsFavorite — необязательные фильтры, nil означает отсутствие фильтра.
// Заданные фильтры применяются одновременно (логическое И).
type DocumentFilter struct {
	UserID     int     // Владелец документов
	Status     *string // Фильтр по статусу
	IsFavorite *bool   // Фильтр по признаку избранного
	Limit      int     // Размер страницы
	Offset     int     // Смещение от начала выборки
}
