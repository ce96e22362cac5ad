package category

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(category *Category) error
	List() ([]Category, error)
	FindBySlug(slug string) (*Category, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(category *Category) error {
	return r.db.Create(category).Error
}

// List returns all categories ordered by name
func (r *repository) List() ([]Category, error) {
	var categories []Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *repository) FindBySlug(slug string) (*Category, error) {
	var c Category
	err := r.db.Where("slug = ?", slug).First(&c).Error
	return &c, err
}
