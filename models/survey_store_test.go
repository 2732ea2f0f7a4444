package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testStore(t *testing.T) *SurveyStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&Survey{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewSurveyStore(db)
}

func seedSurvey(t *testing.T, store *SurveyStore, brandName string, submittedAt time.Time) Survey {
	t.Helper()
	survey := Survey{
		BrandName:    brandName,
		BrandService: brandName + " service",
		Description:  brandName + " service",
		Responses:    datatypes.JSON(`{"target_audience":"","business_why":"","customer_impression":"","contact":""}`),
		IsSubmitted:  true,
		SubmittedAt:  submittedAt,
	}
	if err := store.Create(&survey); err != nil {
		t.Fatalf("failed to seed survey: %v", err)
	}
	return survey
}

func TestSurveyStoreCreateAssignsID(t *testing.T) {
	store := testStore(t)
	survey := seedSurvey(t, store, "Acme", time.Now())
	if survey.ID == 0 {
		t.Error("Create did not assign an id")
	}
	if survey.CreatedAt.IsZero() {
		t.Error("Create did not set created_at")
	}
}

func TestSurveyStoreGet(t *testing.T) {
	store := testStore(t)
	created := seedSurvey(t, store, "Acme", time.Now())

	got, err := store.Get(created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.BrandName != "Acme" {
		t.Errorf("BrandName = %q, want %q", got.BrandName, "Acme")
	}

	if _, err := store.Get(created.ID + 1000); err != gorm.ErrRecordNotFound {
		t.Errorf("Get(missing) error = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestSurveyStoreDelete(t *testing.T) {
	store := testStore(t)
	created := seedSurvey(t, store, "Acme", time.Now())

	affected, err := store.Delete(created.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if affected != 1 {
		t.Errorf("Delete() affected = %d, want 1", affected)
	}

	if _, err := store.Get(created.ID); err != gorm.ErrRecordNotFound {
		t.Errorf("Get after delete error = %v, want gorm.ErrRecordNotFound", err)
	}

	affected, err = store.Delete(created.ID)
	if err != nil {
		t.Fatalf("second Delete() error = %v", err)
	}
	if affected != 0 {
		t.Errorf("Delete(missing) affected = %d, want 0", affected)
	}
}

func TestSurveyStoreListOrdering(t *testing.T) {
	store := testStore(t)
	base := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	oldest := seedSurvey(t, store, "Oldest", base)
	middle := seedSurvey(t, store, "Middle", base.Add(time.Hour))
	newest := seedSurvey(t, store, "Newest", base.Add(2*time.Hour))

	result, err := store.List(ListParams{Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if result.Total != 3 {
		t.Fatalf("Total = %d, want 3", result.Total)
	}
	wantOrder := []uint{newest.ID, middle.ID, oldest.ID}
	for i, want := range wantOrder {
		if result.Items[i].ID != want {
			t.Errorf("Items[%d].ID = %d, want %d", i, result.Items[i].ID, want)
		}
	}
}

func TestSurveyStoreListTieBreakByID(t *testing.T) {
	store := testStore(t)
	at := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	first := seedSurvey(t, store, "First", at)
	second := seedSurvey(t, store, "Second", at)

	result, err := store.List(ListParams{Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	// Equal timestamps break ties on id descending.
	if result.Items[0].ID != second.ID || result.Items[1].ID != first.ID {
		t.Errorf("tie-break order = [%d %d], want [%d %d]",
			result.Items[0].ID, result.Items[1].ID, second.ID, first.ID)
	}
}

func TestSurveyStoreListPagination(t *testing.T) {
	store := testStore(t)
	base := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		seedSurvey(t, store, fmt.Sprintf("Brand %02d", i), base.Add(time.Duration(i)*time.Minute))
	}

	page1, err := store.List(ListParams{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(page1.Items) != 10 {
		t.Errorf("page 1 len = %d, want 10", len(page1.Items))
	}
	if page1.Total != 25 {
		t.Errorf("Total = %d, want 25", page1.Total)
	}

	page3, err := store.List(ListParams{Page: 3, Limit: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(page3.Items) != 5 {
		t.Errorf("page 3 len = %d, want 5", len(page3.Items))
	}

	// Newest first: page 3 holds the oldest five.
	if page3.Items[len(page3.Items)-1].BrandName != "Brand 00" {
		t.Errorf("last item = %q, want %q", page3.Items[len(page3.Items)-1].BrandName, "Brand 00")
	}

	// Pages do not overlap.
	seen := map[uint]bool{}
	for _, item := range append(page1.Items, page3.Items...) {
		if seen[item.ID] {
			t.Errorf("id %d returned on two pages", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestSurveyStoreListSearch(t *testing.T) {
	store := testStore(t)
	now := time.Now()

	seedSurvey(t, store, "Acme Pizza", now)
	seedSurvey(t, store, "Bolt Couriers", now.Add(time.Minute))
	// Same-case seed so the expectation holds under both sqlite and postgres
	// LIKE semantics.
	matchService := Survey{
		BrandName:    "Plain Name",
		BrandService: "Pizza delivery",
		Description:  "Pizza delivery",
		IsSubmitted:  true,
		SubmittedAt:  now.Add(2 * time.Minute),
	}
	if err := store.Create(&matchService); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	result, err := store.List(ListParams{Page: 1, Limit: 20, Search: "Pizza"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("Total = %d, want 2 (brand_name match + brand_service match)", result.Total)
	}
	for _, item := range result.Items {
		if item.BrandName == "Bolt Couriers" {
			t.Error("search returned an item with no matching field")
		}
	}

	empty, err := store.List(ListParams{Page: 1, Limit: 20, Search: "nomatch"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if empty.Total != 0 || len(empty.Items) != 0 {
		t.Errorf("Total = %d, items = %d, want 0, 0", empty.Total, len(empty.Items))
	}
}

func TestSurveyStoreListAll(t *testing.T) {
	store := testStore(t)
	now := time.Now()
	seedSurvey(t, store, "Acme", now)
	seedSurvey(t, store, "Bolt", now.Add(time.Minute))

	all, err := store.ListAll("")
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("len = %d, want 2", len(all))
	}

	filtered, err := store.ListAll("Acme")
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(filtered) != 1 || filtered[0].BrandName != "Acme" {
		t.Errorf("filtered = %v, want one Acme row", filtered)
	}
}
