package models

import (
	"time"

	"github.com/lestahub/lestahub-backend/pkg/enums"
)

// Counterparty is a payable entity with its banking and tax details.
type Counterparty struct {
	ID                   int64                          `gorm:"column:id;primaryKey;autoIncrement"`
	Name                 string                         `gorm:"column:name;type:text;not null"`
	Type                 enums.CounterpartyType         `gorm:"column:type;type:text;not null"`
	RelationshipType     enums.CounterpartyRelationship `gorm:"column:relationship_type;type:text;not null"`
	ContactName          *string                        `gorm:"column:contact_name"`
	Email                *string                        `gorm:"column:email"`
	Phone                *string                        `gorm:"column:phone"`
	INN                  *string                        `gorm:"column:inn"`
	KPP                  *string                        `gorm:"column:kpp"`
	OGRN                 *string                        `gorm:"column:ogrn"`
	OGRNIP               *string                        `gorm:"column:ogrnip"`
	LegalAddress         *string                        `gorm:"column:legal_address"`
	RegistrationAddress  *string                        `gorm:"column:registration_address"`
	CheckingAccount      *string                        `gorm:"column:checking_account"`
	BankName             *string                        `gorm:"column:bank_name"`
	BIK                  *string                        `gorm:"column:bik"`
	CorrespondentAccount *string                        `gorm:"column:correspondent_account"`
	TaxPhone             *string                        `gorm:"column:tax_phone"`
	PaymentDetails       *string                        `gorm:"column:payment_details"`
	IsActive             bool                           `gorm:"column:is_active;not null;default:true"`
	Bloggers             []Blogger                      `gorm:"many2many:blogger_counterparties"`
	Placements           []Placement                    `gorm:"foreignKey:CounterpartyID"`
	CreatedAt            time.Time                      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time                      `gorm:"column:updated_at;autoUpdateTime"`
}
