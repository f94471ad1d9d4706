package store

import (
	"context"

	"github.com/grigorishin/course-platform-api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CountryStore issues country and country-block queries.
type CountryStore struct {
	db *gorm.DB
}

func NewCountryStore(db *gorm.DB) *CountryStore {
	return &CountryStore{db: db}
}

func (s *CountryStore) GetCountry(ctx context.Context, id uint) (*model.Country, error) {
	var country model.Country
	err := s.db.WithContext(ctx).First(&country, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// ListCountries returns the countries of a block ordered by name.
func (s *CountryStore) ListCountries(ctx context.Context, countryBlockID uint) ([]model.Country, error) {
	var countries []model.Country
	err := s.db.WithContext(ctx).
		Where("country_block_id = ?", countryBlockID).
		Order("name").
		Find(&countries).Error
	return countries, err
}

func (s *CountryStore) GetBlock(ctx context.Context, id uint) (*model.CountryBlock, error) {
	var block model.CountryBlock
	err := s.db.WithContext(ctx).Preload("Countries").First(&block, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &block, nil
}

// ListBlocks returns every country block with its countries nested.
func (s *CountryStore) ListBlocks(ctx context.Context) ([]model.CountryBlock, error) {
	var blocks []model.CountryBlock
	err := s.db.WithContext(ctx).Preload("Countries").Find(&blocks).Error
	return blocks, err
}

func (s *CountryStore) CreateCountry(ctx context.Context, country *model.Country) error {
	return s.db.WithContext(ctx).Create(country).Error
}

func (s *CountryStore) SaveCountry(ctx context.Context, country *model.Country) error {
	return s.db.WithContext(ctx).Save(country).Error
}

func (s *CountryStore) DeleteCountry(ctx context.Context, country *model.Country) error {
	return s.db.WithContext(ctx).Delete(country).Error
}

func (s *CountryStore) CreateBlock(ctx context.Context, block *model.CountryBlock) error {
	return s.db.WithContext(ctx).Create(block).Error
}

func (s *CountryStore) SaveBlock(ctx context.Context, block *model.CountryBlock) error {
	// Loaded associations must not be written back with the row.
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(block).Error
}

func (s *CountryStore) DeleteBlock(ctx context.Context, block *model.CountryBlock) error {
	return s.db.WithContext(ctx).Delete(&model.CountryBlock{ID: block.ID}).Error
}
