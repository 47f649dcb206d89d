package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

type ClientKind string

const (
	ClientKindIndividual ClientKind = "INDIVIDUAL"
	ClientKindBusiness   ClientKind = "BUSINESS"
)

func (k ClientKind) String() string {
	return string(k)
}

func (k ClientKind) Validate() error {
	switch k {
	case ClientKindIndividual, ClientKindBusiness:
		return nil
	default:
		return fmt.Errorf("%w: unknown client kind %s", ErrInvalidArgument, k)
	}
}

// Client is either an individual or a business, discriminated by Kind.
// Exactly one of Individual and Business is set.
type Client struct {
	ID         uuid.UUID
	Kind       ClientKind
	Email      string
	Address    string
	Phone      string
	Returning  bool
	Individual *Individual
	Business   *Business
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Individual struct {
	FirstName string
	LastName  string
	PESEL     string
	DeletedAt *time.Time
}

type Business struct {
	Name string
	KRS  string
}

type NewIndividual struct {
	Email     string
	Address   string
	Phone     string
	FirstName string
	LastName  string
	PESEL     string
}

type NewBusiness struct {
	Email   string
	Address string
	Phone   string
	Name    string
	KRS     string
}

// IndividualUpdate carries a partial update: empty fields keep the stored value.
type IndividualUpdate struct {
	Email     string
	Address   string
	Phone     string
	FirstName string
	LastName  string
}

// BusinessUpdate carries a partial update: empty fields keep the stored value.
type BusinessUpdate struct {
	Email   string
	Address string
	Phone   string
	Name    string
}
