package category

import (
	"errors"

	"gorm.io/gorm"

	"github.com/eventra/eventra-backend/utils"
)

var ErrNotFound = errors.New("category not found")

type Service interface {
	Create(req *CreateCategoryRequest) (*Category, error)
	List() ([]Category, error)
	GetBySlug(slug string) (*Category, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(req *CreateCategoryRequest) (*Category, error) {
	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	category := &Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
	}

	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *service) List() ([]Category, error) {
	return s.repo.List()
}

func (s *service) GetBySlug(slug string) (*Category, error) {
	category, err := s.repo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return category, nil
}
