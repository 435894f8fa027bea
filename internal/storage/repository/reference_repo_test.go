package repository

import (
	"context"
	"testing"

	"github.com/flightperf/flightdash/internal/storage/models"
)

func TestReferenceLookups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReferenceRepository(db, "sqlite")
	ctx := context.Background()

	airports := []*models.Airport{
		{Code: "JFK", Name: "John F. Kennedy International", City: "New York", State: "NY", Country: "USA"},
		{Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", State: "CA", Country: "USA"},
	}
	for _, ap := range airports {
		if err := repo.UpsertAirport(ctx, ap); err != nil {
			t.Fatalf("UpsertAirport(%s): %v", ap.Code, err)
		}
	}
	if err := repo.UpsertAirline(ctx, &models.Airline{Code: "AA", Name: "American Airlines"}); err != nil {
		t.Fatalf("UpsertAirline: %v", err)
	}

	got, err := repo.GetAirport(ctx, "JFK")
	if err != nil {
		t.Fatalf("GetAirport: %v", err)
	}
	if got == nil || got.State != "NY" {
		t.Errorf("GetAirport(JFK) = %+v, want NY entry", got)
	}

	airline, err := repo.GetAirline(ctx, "AA")
	if err != nil {
		t.Fatalf("GetAirline: %v", err)
	}
	if airline == nil || airline.Name != "American Airlines" {
		t.Errorf("GetAirline(AA) = %+v, want American Airlines", airline)
	}
}

func TestReferenceUnknownCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReferenceRepository(db, "sqlite")
	ctx := context.Background()

	// Unknown codes are not an error.
	ap, err := repo.GetAirport(ctx, "XXX")
	if err != nil {
		t.Fatalf("GetAirport: %v", err)
	}
	if ap != nil {
		t.Errorf("GetAirport(unknown) = %+v, want nil", ap)
	}

	al, err := repo.GetAirline(ctx, "ZZ")
	if err != nil {
		t.Fatalf("GetAirline: %v", err)
	}
	if al != nil {
		t.Errorf("GetAirline(unknown) = %+v, want nil", al)
	}
}

func TestListAirportsOrdered(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReferenceRepository(db, "sqlite")
	ctx := context.Background()

	// Inserted out of order; the listing is ordered by code.
	for _, ap := range []*models.Airport{
		{Code: "ORD", Name: "Chicago O'Hare International"},
		{Code: "ATL", Name: "Hartsfield-Jackson Atlanta International"},
		{Code: "JFK", Name: "John F. Kennedy International"},
	} {
		if err := repo.UpsertAirport(ctx, ap); err != nil {
			t.Fatalf("UpsertAirport(%s): %v", ap.Code, err)
		}
	}

	got, err := repo.ListAirports(ctx)
	if err != nil {
		t.Fatalf("ListAirports: %v", err)
	}
	want := []string{"ATL", "JFK", "ORD"}
	if len(got) != len(want) {
		t.Fatalf("got %d airports, want %d", len(got), len(want))
	}
	for i, code := range want {
		if got[i].Code != code {
			t.Errorf("airports[%d] = %s, want %s", i, got[i].Code, code)
		}
	}
}

func TestUpsertAirportReplaces(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	seed := NewReferenceRepository(db, "sqlite")
	if err := seed.UpsertAirport(ctx, &models.Airport{Code: "JFK", Name: "Kennedy"}); err != nil {
		t.Fatalf("UpsertAirport: %v", err)
	}
	if err := seed.UpsertAirport(ctx, &models.Airport{Code: "JFK", Name: "John F. Kennedy International", State: "NY"}); err != nil {
		t.Fatalf("UpsertAirport update: %v", err)
	}

	// A fresh repository sees the updated row; the seeding repository's
	// cache may not, so reads go through a new instance.
	repo := NewReferenceRepository(db, "sqlite")
	got, err := repo.GetAirport(ctx, "JFK")
	if err != nil {
		t.Fatalf("GetAirport: %v", err)
	}
	if got == nil || got.Name != "John F. Kennedy International" || got.State != "NY" {
		t.Errorf("GetAirport after upsert = %+v, want updated entry", got)
	}

	list, err := repo.ListAirports(ctx)
	if err != nil {
		t.Fatalf("ListAirports: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("got %d airports, want 1 (upsert must not duplicate)", len(list))
	}
}

func TestReferenceCacheStable(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	repo := NewReferenceRepository(db, "sqlite")
	if err := repo.UpsertAirline(ctx, &models.Airline{Code: "AA", Name: "American Airlines"}); err != nil {
		t.Fatalf("UpsertAirline: %v", err)
	}

	// First lookup populates the cache.
	if _, err := repo.GetAirline(ctx, "AA"); err != nil {
		t.Fatalf("GetAirline: %v", err)
	}

	// A write after load is invisible to this instance.
	if err := repo.UpsertAirline(ctx, &models.Airline{Code: "DL", Name: "Delta Air Lines"}); err != nil {
		t.Fatalf("UpsertAirline: %v", err)
	}
	dl, err := repo.GetAirline(ctx, "DL")
	if err != nil {
		t.Fatalf("GetAirline: %v", err)
	}
	if dl != nil {
		t.Errorf("GetAirline(DL) = %+v, want nil from the pre-load cache", dl)
	}
}
