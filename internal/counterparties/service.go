package counterparties

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
)

// CreateInput carries a new counterparty. BloggerIDs links the record to
// existing blogger profiles.
type CreateInput struct {
	Name                 string
	Type                 enums.CounterpartyType
	RelationshipType     enums.CounterpartyRelationship
	ContactName          *string
	Email                *string
	Phone                *string
	INN                  *string
	KPP                  *string
	OGRN                 *string
	OGRNIP               *string
	LegalAddress         *string
	RegistrationAddress  *string
	CheckingAccount      *string
	BankName             *string
	BIK                  *string
	CorrespondentAccount *string
	TaxPhone             *string
	PaymentDetails       *string
	IsActive             *bool
	BloggerIDs           []int64
}

// UpdateInput carries counterparty changes. Nil pointers mean unchanged; a
// non-nil BloggerIDs slice replaces the whole link set.
type UpdateInput struct {
	Name                 *string
	Type                 *enums.CounterpartyType
	RelationshipType     *enums.CounterpartyRelationship
	ContactName          *string
	Email                *string
	Phone                *string
	INN                  *string
	KPP                  *string
	OGRN                 *string
	OGRNIP               *string
	LegalAddress         *string
	RegistrationAddress  *string
	CheckingAccount      *string
	BankName             *string
	BIK                  *string
	CorrespondentAccount *string
	TaxPhone             *string
	PaymentDetails       *string
	IsActive             *bool
	BloggerIDs           []int64
}

// Detail pairs a counterparty with the merged comment thread of the record
// itself and its linked bloggers.
type Detail struct {
	Counterparty *models.Counterparty
	Comments     []models.Comment
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type commentThreadLister interface {
	ListForCounterpartyThread(ctx context.Context, counterpartyID int64, bloggerIDs []int64) ([]models.Comment, error)
}

// Service exposes counterparty operations.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Counterparty, error)
	Get(ctx context.Context, counterpartyID int64) (*Detail, error)
	List(ctx context.Context, filters Filters) ([]models.Counterparty, error)
	Update(ctx context.Context, counterpartyID int64, input UpdateInput) (*models.Counterparty, error)
}

type service struct {
	repo     Repository
	tx       txRunner
	comments commentThreadLister
}

// NewService builds a counterparties service with the required dependencies.
func NewService(repo Repository, tx txRunner, comments commentThreadLister) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("counterparties repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if comments == nil {
		return nil, fmt.Errorf("comment lister required")
	}
	return &service{repo: repo, tx: tx, comments: comments}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Counterparty, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name required")
	}
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid counterparty type")
	}
	if !input.RelationshipType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid relationship type")
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	counterparty := &models.Counterparty{
		Name:                 input.Name,
		Type:                 input.Type,
		RelationshipType:     input.RelationshipType,
		ContactName:          input.ContactName,
		Email:                input.Email,
		Phone:                input.Phone,
		INN:                  input.INN,
		KPP:                  input.KPP,
		OGRN:                 input.OGRN,
		OGRNIP:               input.OGRNIP,
		LegalAddress:         input.LegalAddress,
		RegistrationAddress:  input.RegistrationAddress,
		CheckingAccount:      input.CheckingAccount,
		BankName:             input.BankName,
		BIK:                  input.BIK,
		CorrespondentAccount: input.CorrespondentAccount,
		TaxPhone:             input.TaxPhone,
		PaymentDetails:       input.PaymentDetails,
		IsActive:             isActive,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		created, err := repo.Create(ctx, counterparty)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create counterparty")
		}
		if len(input.BloggerIDs) > 0 {
			if err := repo.ReplaceBloggers(ctx, created.ID, input.BloggerIDs); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "link bloggers")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.reload(ctx, counterparty.ID)
}

func (s *service) Get(ctx context.Context, counterpartyID int64) (*Detail, error) {
	if counterpartyID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid counterparty id")
	}
	counterparty, err := s.repo.FindDetail(ctx, counterpartyID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find counterparty")
	}
	if counterparty == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Counterparty not found")
	}

	bloggerIDs := make([]int64, 0, len(counterparty.Bloggers))
	for _, blogger := range counterparty.Bloggers {
		bloggerIDs = append(bloggerIDs, blogger.ID)
	}

	thread, err := s.comments.ListForCounterpartyThread(ctx, counterpartyID, bloggerIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list counterparty comments")
	}

	return &Detail{Counterparty: counterparty, Comments: thread}, nil
}

func (s *service) List(ctx context.Context, filters Filters) ([]models.Counterparty, error) {
	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list counterparties")
	}
	return rows, nil
}

func (s *service) Update(ctx context.Context, counterpartyID int64, input UpdateInput) (*models.Counterparty, error) {
	if counterpartyID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid counterparty id")
	}
	if input.Type != nil && !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid counterparty type")
	}
	if input.RelationshipType != nil && !input.RelationshipType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid relationship type")
	}

	counterparty, err := s.repo.FindByID(ctx, counterpartyID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find counterparty")
	}
	if counterparty == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Counterparty not found")
	}

	applyUpdate(counterparty, input)

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if input.BloggerIDs != nil {
			if err := repo.ReplaceBloggers(ctx, counterpartyID, input.BloggerIDs); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace blogger links")
			}
		}
		if _, err := repo.Save(ctx, counterparty); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save counterparty")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.reload(ctx, counterpartyID)
}

func applyUpdate(counterparty *models.Counterparty, input UpdateInput) {
	if input.Name != nil {
		counterparty.Name = *input.Name
	}
	if input.Type != nil {
		counterparty.Type = *input.Type
	}
	if input.RelationshipType != nil {
		counterparty.RelationshipType = *input.RelationshipType
	}
	if input.ContactName != nil {
		counterparty.ContactName = input.ContactName
	}
	if input.Email != nil {
		counterparty.Email = input.Email
	}
	if input.Phone != nil {
		counterparty.Phone = input.Phone
	}
	if input.INN != nil {
		counterparty.INN = input.INN
	}
	if input.KPP != nil {
		counterparty.KPP = input.KPP
	}
	if input.OGRN != nil {
		counterparty.OGRN = input.OGRN
	}
	if input.OGRNIP != nil {
		counterparty.OGRNIP = input.OGRNIP
	}
	if input.LegalAddress != nil {
		counterparty.LegalAddress = input.LegalAddress
	}
	if input.RegistrationAddress != nil {
		counterparty.RegistrationAddress = input.RegistrationAddress
	}
	if input.CheckingAccount != nil {
		counterparty.CheckingAccount = input.CheckingAccount
	}
	if input.BankName != nil {
		counterparty.BankName = input.BankName
	}
	if input.BIK != nil {
		counterparty.BIK = input.BIK
	}
	if input.CorrespondentAccount != nil {
		counterparty.CorrespondentAccount = input.CorrespondentAccount
	}
	if input.TaxPhone != nil {
		counterparty.TaxPhone = input.TaxPhone
	}
	if input.PaymentDetails != nil {
		counterparty.PaymentDetails = input.PaymentDetails
	}
	if input.IsActive != nil {
		counterparty.IsActive = *input.IsActive
	}
}

func (s *service) reload(ctx context.Context, counterpartyID int64) (*models.Counterparty, error) {
	counterparty, err := s.repo.FindByID(ctx, counterpartyID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload counterparty")
	}
	if counterparty == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Counterparty not found")
	}
	return counterparty, nil
}
