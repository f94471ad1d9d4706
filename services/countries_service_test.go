package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCountries_EmptyBlockFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewCountriesService(db)

	block := seedCountryBlock(t, db, "Europe")

	_, err := svc.GetCountries(context.Background(), block.ID)
	assert.ErrorIs(t, err, ErrCountriesNotFound)
}

func TestGetCountries_OrderedByName(t *testing.T) {
	db := newTestDB(t)
	svc := NewCountriesService(db)

	block := seedCountryBlock(t, db, "Europe")
	seedCountry(t, db, "Spain", block.ID)
	seedCountry(t, db, "Austria", block.ID)
	seedCountry(t, db, "Germany", block.ID)

	countries, err := svc.GetCountries(context.Background(), block.ID)
	require.NoError(t, err)
	require.Len(t, countries, 3)
	assert.Equal(t, "Austria", countries[0].Name)
	assert.Equal(t, "Germany", countries[1].Name)
	assert.Equal(t, "Spain", countries[2].Name)
}

func TestGetCountryBlocks_EmptyStoreIsNotAnError(t *testing.T) {
	db := newTestDB(t)
	svc := NewCountriesService(db)

	// Listing countries of a missing block fails, listing blocks does not.
	blocks, err := svc.GetCountryBlocks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestGetCountryBlocks_NestsCountries(t *testing.T) {
	db := newTestDB(t)
	svc := NewCountriesService(db)

	block := seedCountryBlock(t, db, "Europe")
	seedCountry(t, db, "Germany", block.ID)
	seedCountry(t, db, "France", block.ID)

	blocks, err := svc.GetCountryBlocks(context.Background())
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Len(t, blocks[0].Countries, 2)
}

func TestUpdateCountry_MergePatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewCountriesService(db)

	block := seedCountryBlock(t, db, "Europe")
	other := seedCountryBlock(t, db, "Asia")
	country := seedCountry(t, db, "Germany", block.ID)

	unchanged, err := svc.UpdateCountry(context.Background(), country.ID, CountryPatch{})
	require.NoError(t, err)
	assert.Equal(t, "Germany", unchanged.Name)
	assert.Equal(t, block.ID, unchanged.CountryBlockID)

	moved, err := svc.UpdateCountry(context.Background(), country.ID, CountryPatch{CountryBlockID: uintPtr(other.ID)})
	require.NoError(t, err)
	assert.Equal(t, "Germany", moved.Name)
	assert.Equal(t, other.ID, moved.CountryBlockID)
}

func TestUpdateCountry_MissingTargetFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewCountriesService(db)

	_, err := svc.UpdateCountry(context.Background(), 404, CountryPatch{Name: strPtr("Nowhere")})
	assert.ErrorIs(t, err, ErrCountryNotExist)
}

func TestDeleteCountryBlock_RestrictedWhileCountriesRemain(t *testing.T) {
	db := newTestDB(t)
	svc := NewCountriesService(db)

	block := seedCountryBlock(t, db, "Europe")
	country := seedCountry(t, db, "Germany", block.ID)

	// The foreign key rejects deleting a block that still has countries.
	err := svc.DeleteCountryBlock(context.Background(), block.ID)
	assert.Error(t, err)

	require.NoError(t, svc.DeleteCountry(context.Background(), country.ID))
	require.NoError(t, svc.DeleteCountryBlock(context.Background(), block.ID))
}

func TestDeleteCountry_MissingTargetFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewCountriesService(db)

	assert.ErrorIs(t, svc.DeleteCountry(context.Background(), 404), ErrCountryNotExist)
	assert.ErrorIs(t, svc.DeleteCountryBlock(context.Background(), 404), ErrCountryBlockNotExist)
}

func TestCreateCountryAndBlock(t *testing.T) {
	db := newTestDB(t)
	svc := NewCountriesService(db)

	block, err := svc.CreateCountryBlock(context.Background(), "Europe")
	require.NoError(t, err)
	assert.NotZero(t, block.ID)

	country, err := svc.CreateCountry(context.Background(), "Germany", block.ID)
	require.NoError(t, err)
	assert.Equal(t, "Germany", country.Name)
	assert.Equal(t, block.ID, country.CountryBlockID)
}
