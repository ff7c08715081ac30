package repositories

import "github.com/prepstock/prepstock/pkg/domain/entities"

// TemplateRepository provides access to the recommended-item catalog
type TemplateRepository interface {
	GetTemplate(id entities.TemplateID) (*entities.RecommendedItemTemplate, error)
	GetTemplatesByCategory(category entities.Category) ([]*entities.RecommendedItemTemplate, error)
	GetAllTemplates() ([]*entities.RecommendedItemTemplate, error)
	LoadTemplates(templates []*entities.RecommendedItemTemplate) error
}
