package models

import "time"

// TemplateCategory представляет категорию каталога шаблонов.
// Категории создаются административно и доступны сервису только на чтение.
type TemplateCategory struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`        // Уникальный слаг категории
	Description *string   `json:"description"` // Описание категории
	IconURL     *string   `json:"icon_url"`    // Ссылка на иконку
	SortOrder   int       `json:"sort_order"`  // Порядок отображения, по возрастанию
	CreatedAt   time.Time `json:"created_at"`
}

// Template представляет шаблон документа из каталога.
// TemplateData хранит структуру полей и секций формы в свободном виде.
// Price может быть nil — шаблон бесплатный либо цена не задана.
type Template struct {
	ID             int            `json:"id"`
	Title          string         `json:"title"`
	Description    *string        `json:"description"`
	CategoryID     int            `json:"category_id"`
	TemplateData   map[string]any `json:"template_data"`   // Описание полей и секций формы
	PreviewURL     *string        `json:"preview_url"`     // Ссылка на превью
	IsPremium      bool           `json:"is_premium"`      // Признак платного шаблона
	Price          *float64       `json:"price"`           // Цена, numeric(10,2) в хранилище
	DownloadsCount int            `json:"downloads_count"` // Счётчик скачиваний, справочный
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// TemplateFilter представляет параметры выборки шаблонов по категории,
// которые передаются в слой доступа к данным.
type TemplateFilter struct {
	CategoryID int // Идентификатор категории
	Limit      int // Размер страницы
	Offset     int // Смещение от начала выборки
}
