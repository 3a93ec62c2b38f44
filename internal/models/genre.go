package models

type Genre struct {
	UUIDMixin
	Name        string `gorm:"size:255;not null" json:"name" validate:"required,max=255" example:"Drama"`
	Description string `gorm:"type:text" json:"description" example:"Serious, plot-driven stories"`
	TimeStampedMixin
}

func (g Genre) String() string {
	return g.Name
}

func (g *Genre) DisplayValue(column string) (any, bool) {
	switch column {
	case "id":
		return g.ID, true
	case "name":
		return g.Name, true
	case "description":
		return g.Description, true
	case "created_at":
		return g.CreatedAt, true
	case "modified_at":
		return g.ModifiedAt, true
	}
	return nil, false
}
