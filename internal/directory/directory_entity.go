package directory

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Code      string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_companies_code"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
	Sites     []Site    `gorm:"foreignKey:CompanyID"`
}

func (Company) TableName() string {
	return "companies"
}

type Site struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(150);not null"`
	Latitude       *float64  `gorm:"column:latitude"`
	Longitude      *float64  `gorm:"column:longitude"`
	Timezone       *string   `gorm:"type:varchar(64)"`
	DayStartHour   int       `gorm:"column:day_start_hour;not null;default:4"`
	CheckoutPolicy string    `gorm:"column:checkout_policy;type:varchar(20);not null;default:AUTO_8H"`
	SeniorAge      int       `gorm:"column:senior_age_threshold;not null;default:65"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time `gorm:"not null;default:now()"`
	UpdatedAt      time.Time `gorm:"not null;default:now()"`
	Company        *Company  `gorm:"foreignKey:CompanyID;references:ID"`
	Teams          []Team    `gorm:"foreignKey:SiteID"`
}

func (Site) TableName() string {
	return "sites"
}

type Team struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	SiteID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(150);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
	Site      *Site     `gorm:"foreignKey:SiteID;references:ID"`
	Company   *Company  `gorm:"foreignKey:CompanyID;references:ID"`
}

func (Team) TableName() string {
	return "teams"
}
