package models

type Person struct {
	UUIDMixin
	FullName string `gorm:"size:255;not null" json:"full_name" validate:"required,max=255" example:"Andrei Tarkovsky"`
	TimeStampedMixin
}

func (p Person) String() string {
	return p.FullName
}

func (p *Person) DisplayValue(column string) (any, bool) {
	switch column {
	case "id":
		return p.ID, true
	case "full_name":
		return p.FullName, true
	case "created_at":
		return p.CreatedAt, true
	case "modified_at":
		return p.ModifiedAt, true
	}
	return nil, false
}
