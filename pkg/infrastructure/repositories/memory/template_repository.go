package memory

import (
	"fmt"

	"github.com/prepstock/prepstock/pkg/domain/entities"
	"github.com/prepstock/prepstock/pkg/domain/repositories"
)

// TemplateRepository provides in-memory storage of the recommendation catalog
type TemplateRepository struct {
	templates []entities.RecommendedItemTemplate
	byID      map[entities.TemplateID]int
}

// NewTemplateRepository creates a new in-memory template repository
func NewTemplateRepository() *TemplateRepository {
	return &TemplateRepository{
		byID: make(map[entities.TemplateID]int),
	}
}

// Verify interface compliance
var _ repositories.TemplateRepository = (*TemplateRepository)(nil)

// LoadTemplates loads templates into the repository. Template ids must be
// unique; a duplicate id is a catalog defect.
func (r *TemplateRepository) LoadTemplates(templates []*entities.RecommendedItemTemplate) error {
	for _, template := range templates {
		if err := template.Validate(); err != nil {
			return fmt.Errorf("invalid template %s: %w", template.ID, err)
		}
		if _, exists := r.byID[template.ID]; exists {
			return fmt.Errorf("duplicate template id: %s", template.ID)
		}
		r.byID[template.ID] = len(r.templates)
		r.templates = append(r.templates, *template)
	}
	return nil
}

// GetTemplate returns the template with the given id
func (r *TemplateRepository) GetTemplate(id entities.TemplateID) (*entities.RecommendedItemTemplate, error) {
	idx, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("template not found: %s", id)
	}
	template := r.templates[idx]
	return &template, nil
}

// GetTemplatesByCategory returns the templates of one category in load order
func (r *TemplateRepository) GetTemplatesByCategory(category entities.Category) ([]*entities.RecommendedItemTemplate, error) {
	var matches []*entities.RecommendedItemTemplate
	for i := range r.templates {
		if r.templates[i].Category == category {
			template := r.templates[i]
			matches = append(matches, &template)
		}
	}
	return matches, nil
}

// GetAllTemplates returns every template in load order
func (r *TemplateRepository) GetAllTemplates() ([]*entities.RecommendedItemTemplate, error) {
	all := make([]*entities.RecommendedItemTemplate, 0, len(r.templates))
	for i := range r.templates {
		template := r.templates[i]
		all = append(all, &template)
	}
	return all, nil
}
