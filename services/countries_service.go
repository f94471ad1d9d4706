package services

import (
	"context"

	"github.com/grigorishin/course-platform-api/model"
	"github.com/grigorishin/course-platform-api/store"
	"gorm.io/gorm"
)

// CountriesService manages countries and country blocks. Listing countries
// of a block fails on an empty result; listing blocks never does - the
// asymmetry is deliberate and mirrors how the frontend consumes the two.
type CountriesService struct {
	store *store.CountryStore
}

func NewCountriesService(db *gorm.DB) *CountriesService {
	return &CountriesService{store: store.NewCountryStore(db)}
}

// CountryPatch lists the country fields a partial update may touch.
type CountryPatch struct {
	Name           *string `json:"name"`
	CountryBlockID *uint   `json:"country_block_id"`
}

func (p CountryPatch) Apply(country model.Country) model.Country {
	if p.Name != nil {
		country.Name = *p.Name
	}
	if p.CountryBlockID != nil {
		country.CountryBlockID = *p.CountryBlockID
	}
	return country
}

// CountryBlockPatch lists the block fields a partial update may touch.
type CountryBlockPatch struct {
	Name *string `json:"name"`
}

func (p CountryBlockPatch) Apply(block model.CountryBlock) model.CountryBlock {
	if p.Name != nil {
		block.Name = *p.Name
	}
	return block
}

// GetCountries returns the countries of a block ordered by name, failing
// with ErrCountriesNotFound when the block has none.
func (s *CountriesService) GetCountries(ctx context.Context, countryBlockID uint) ([]model.Country, error) {
	countries, err := s.store.ListCountries(ctx, countryBlockID)
	if err != nil {
		return nil, err
	}
	if len(countries) == 0 {
		return nil, ErrCountriesNotFound
	}
	return countries, nil
}

// GetCountryBlocks returns all blocks with nested countries. An empty store
// yields an empty list, not an error.
func (s *CountriesService) GetCountryBlocks(ctx context.Context) ([]model.CountryBlock, error) {
	return s.store.ListBlocks(ctx)
}

// CreateCountry inserts a country. There is no duplicate-name check and no
// block existence pre-check; a dangling block id surfaces as a storage
// integrity error.
func (s *CountriesService) CreateCountry(ctx context.Context, name string, countryBlockID uint) (*model.Country, error) {
	country := model.Country{Name: name, CountryBlockID: countryBlockID}
	if err := s.store.CreateCountry(ctx, &country); err != nil {
		return nil, err
	}
	return s.store.GetCountry(ctx, country.ID)
}

// CreateCountryBlock inserts a block unconditionally.
func (s *CountriesService) CreateCountryBlock(ctx context.Context, name string) (*model.CountryBlock, error) {
	block := model.CountryBlock{Name: name}
	if err := s.store.CreateBlock(ctx, &block); err != nil {
		return nil, err
	}
	return s.store.GetBlock(ctx, block.ID)
}

func (s *CountriesService) UpdateCountry(ctx context.Context, countryID uint, patch CountryPatch) (*model.Country, error) {
	country, err := s.store.GetCountry(ctx, countryID)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, ErrCountryNotExist
	}

	updated := patch.Apply(*country)
	if err := s.store.SaveCountry(ctx, &updated); err != nil {
		return nil, err
	}
	return s.store.GetCountry(ctx, countryID)
}

func (s *CountriesService) UpdateCountryBlock(ctx context.Context, blockID uint, patch CountryBlockPatch) (*model.CountryBlock, error) {
	block, err := s.store.GetBlock(ctx, blockID)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, ErrCountryBlockNotExist
	}

	updated := patch.Apply(*block)
	if err := s.store.SaveBlock(ctx, &updated); err != nil {
		return nil, err
	}
	return s.store.GetBlock(ctx, blockID)
}

// DeleteCountry removes a country after checking it exists. Dependent
// courses are not checked here; the store's RESTRICT foreign key rejects
// the delete when any remain.
func (s *CountriesService) DeleteCountry(ctx context.Context, countryID uint) error {
	country, err := s.store.GetCountry(ctx, countryID)
	if err != nil {
		return err
	}
	if country == nil {
		return ErrCountryNotExist
	}
	return s.store.DeleteCountry(ctx, country)
}

// DeleteCountryBlock removes a block after checking it exists. Same
// RESTRICT policy as DeleteCountry for blocks that still hold countries.
func (s *CountriesService) DeleteCountryBlock(ctx context.Context, blockID uint) error {
	block, err := s.store.GetBlock(ctx, blockID)
	if err != nil {
		return err
	}
	if block == nil {
		return ErrCountryBlockNotExist
	}
	return s.store.DeleteBlock(ctx, block)
}
