package ticket

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(t *Ticket) error
	Update(t *Ticket) error
	Delete(id uint) error
	FindByID(id uint) (*Ticket, error)
	ListByEvent(eventID uint) ([]Ticket, error)
	FindEventBySlug(slug string) (*EventRef, error)
	FindEventByID(id uint) (*EventRef, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(t *Ticket) error {
	return r.db.Create(t).Error
}

func (r *repository) Update(t *Ticket) error {
	return r.db.Save(t).Error
}

func (r *repository) Delete(id uint) error {
	return r.db.Delete(&Ticket{}, id).Error
}

func (r *repository) FindByID(id uint) (*Ticket, error) {
	var t Ticket
	err := r.db.First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) ListByEvent(eventID uint) ([]Ticket, error) {
	var tickets []Ticket
	err := r.db.Where("event_id = ?", eventID).Order("id ASC").Find(&tickets).Error
	return tickets, err
}

// FindEventBySlug reads the owning event row directly; only the fields needed
// for the ownership guard are selected
func (r *repository) FindEventBySlug(slug string) (*EventRef, error) {
	var ref EventRef
	err := r.db.Table("events").
		Select("id, slug, organizer_id").
		Where("slug = ?", slug).
		First(&ref).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *repository) FindEventByID(id uint) (*EventRef, error) {
	var ref EventRef
	err := r.db.Table("events").
		Select("id, slug, organizer_id").
		Where("id = ?", id).
		First(&ref).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
