// Package catalog содержит бизнес-логику чтения каталога шаблонов
// с кешированием горячих данных. Каталог доступен сервису только на чтение.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/template-hub/internal/models"
)

// Значения пагинации по умолчанию для списка шаблонов.
const (
	DefaultLimit = 20
	cacheTTL     = time.Hour
)

// Repository определяет методы для работы с каталогом в хранилище.
type Repository interface {
	// ListCategories возвращает все категории по возрастанию sort_order.
	ListCategories(ctx context.Context) ([]*models.TemplateCategory, error)
	// ListTemplates возвращает шаблоны категории с пагинацией.
	ListTemplates(ctx context.Context, filter models.TemplateFilter) ([]*models.Template, error)
	// ReadTemplate возвращает шаблон по ID.
	ReadTemplate(ctx context.Context, id int) (*models.Template, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// Service реализует бизнес-логику чтения каталога, включая кеширование.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Categories возвращает все категории каталога, используя кеш или репозиторий.
func (s *Service) Categories(ctx context.Context) ([]*models.TemplateCategory, error) {
	const cacheKey = "catalog:categories"

	var cached []*models.TemplateCategory
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read categories from cache", slog.Any("err", err))
	}
	if found {
		return cached, nil
	}

	result, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*models.TemplateCategory{}
	}

	if err := s.cache.Set(cacheKey, result, cacheTTL); err != nil {
		s.log.Warn("failed to cache categories", slog.Any("err", err))
	}
	return result, nil
}

// TemplatesByCategory возвращает шаблоны категории с пагинацией.
// Неположительный limit заменяется значением по умолчанию, отрицательный
// offset — нулём. Для неизвестной категории возвращается пустой список.
func (s *Service) TemplatesByCategory(ctx context.Context, categoryID, limit, offset int) ([]*models.Template, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}

	filter := models.TemplateFilter{
		CategoryID: categoryID,
		Limit:      limit,
		Offset:     offset,
	}
	result, err := s.repo.ListTemplates(ctx, filter)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*models.Template{}
	}
	return result, nil
}

// TemplateByID возвращает шаблон по ID, используя кеш или репозиторий.
func (s *Service) TemplateByID(ctx context.Context, id int) (*models.Template, error) {
	cacheKey := fmt.Sprintf("template:%d", id)

	var cached *models.Template
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read template from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return cached, nil
	}

	result, err := s.repo.ReadTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, cacheTTL); err != nil {
		s.log.Warn("failed to cache template", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}
