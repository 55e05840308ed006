// SPDX-License-Identifier: MIT
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/thatcatcamp/palettekit/internal/colors"
	"github.com/thatcatcamp/palettekit/internal/db"
	"github.com/thatcatcamp/palettekit/internal/palettes"
)

var dbCounter atomic.Int64

// setupTestDB gives every call its own shared-cache in-memory database
func setupTestDB(t *testing.T) *gorm.DB {
	testDB, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), dbCounter.Add(1))), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(testDB); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return testDB
}

func brandConfig(name string) palettes.Config {
	cfg, _ := palettes.PresetConfig("corporate", colors.MustParseHex("#3b82f6"))
	cfg.Name = name
	return cfg
}

func TestCreateAndGet(t *testing.T) {
	testDB := setupTestDB(t)

	saved, err := Create(testDB, brandConfig("brand"), Options{Notes: "main"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(saved.PublicID) != 36 {
		t.Errorf("Expected uuid public ID, got %q", saved.PublicID)
	}
	if saved.BaseHex != "#3b82f6" {
		t.Errorf("Expected base #3b82f6, got %s", saved.BaseHex)
	}

	byID, err := Get(testDB, saved.PublicID)
	if err != nil {
		t.Fatalf("Get by ID failed: %v", err)
	}
	byName, err := Get(testDB, "brand")
	if err != nil {
		t.Fatalf("Get by name failed: %v", err)
	}
	if byID.ID != byName.ID {
		t.Error("Lookup by ID and name returned different rows")
	}
}

func TestCreateRejectsDuplicatesAndInvalid(t *testing.T) {
	testDB := setupTestDB(t)

	if _, err := Create(testDB, brandConfig("brand"), Options{}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := Create(testDB, brandConfig("brand"), Options{}); !errors.Is(err, ErrNameTaken) {
		t.Errorf("Expected ErrNameTaken, got %v", err)
	}

	bad := brandConfig("bad")
	bad.Steps = 0
	if _, err := Create(testDB, bad, Options{}); !errors.Is(err, palettes.ErrInvalidSteps) {
		t.Errorf("Expected ErrInvalidSteps, got %v", err)
	}

	if _, err := Create(testDB, brandConfig("  "), Options{}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
}

func TestGetMissing(t *testing.T) {
	testDB := setupTestDB(t)
	if _, err := Get(testDB, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestListOrderedByName(t *testing.T) {
	testDB := setupTestDB(t)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := Create(testDB, brandConfig(name), Options{}); err != nil {
			t.Fatalf("Create %s failed: %v", name, err)
		}
	}

	list, err := List(testDB)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 || list[0].Name != "alpha" || list[2].Name != "zeta" {
		t.Errorf("Unexpected order: %+v", list)
	}
}

func TestDeleteFreesName(t *testing.T) {
	testDB := setupTestDB(t)
	Create(testDB, brandConfig("brand"), Options{})

	if err := Delete(testDB, "brand"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := Get(testDB, "brand"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if _, err := Create(testDB, brandConfig("brand"), Options{}); err != nil {
		t.Errorf("Name should be reusable after delete: %v", err)
	}
	if err := Delete(testDB, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestGenerateMatchesDirectGeneration(t *testing.T) {
	testDB := setupTestDB(t)
	cfg := brandConfig("brand")
	cfg.PreserveAccessibility = false
	saved, _ := Create(testDB, cfg, Options{})

	loaded, _ := Get(testDB, "brand")
	if loaded.PreserveAccessibility {
		t.Error("PreserveAccessibility=false was not persisted")
	}

	got, err := Generate(loaded, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	want := palettes.Generate(cfg)
	if len(got.Scale) != len(want.Scale) || got.Scale[5].Hex != want.Scale[5].Hex {
		t.Errorf("Regenerated palette differs for %s", saved.Name)
	}

	cache := palettes.NewCache(4)
	if _, err := Generate(loaded, cache); err != nil {
		t.Fatalf("Generate with cache failed: %v", err)
	}
	if cache.Len() != 1 {
		t.Errorf("Expected cache to hold 1 entry, got %d", cache.Len())
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	source := setupTestDB(t)
	Create(source, brandConfig("brand"), Options{DarkMode: true, Notes: "hello"})
	minimal, _ := palettes.PresetConfig("minimal", colors.MustParseHex("#e11d48"))
	minimal.Name = "rose"
	Create(source, minimal, Options{})

	data, err := Export(source)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("Export is not valid JSON: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	target := setupTestDB(t)
	Create(target, brandConfig("brand"), Options{})

	result, err := Import(target, data)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(result.Imported) != 1 || result.Imported[0] != "rose" {
		t.Errorf("Expected rose to be imported, got %v", result.Imported)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != "brand" {
		t.Errorf("Expected brand to be skipped, got %v", result.Skipped)
	}

	rose, err := Get(target, "rose")
	if err != nil {
		t.Fatalf("Imported palette missing: %v", err)
	}
	if rose.Steps != 5 || rose.SemanticColors {
		t.Errorf("Imported palette lost settings: %+v", rose)
	}
}

func TestImportIsAtomic(t *testing.T) {
	testDB := setupTestDB(t)
	data := []byte(`[{"name":"ok","base":"#3b82f6","mode":"monochromatic","steps":11},{"name":"bad","base":"#zzzzzz","mode":"monochromatic","steps":11}]`)

	_, err := Import(testDB, data)
	if !errors.Is(err, colors.ErrInvalidColor) {
		t.Fatalf("Expected ErrInvalidColor, got %v", err)
	}
	list, _ := List(testDB)
	if len(list) != 0 {
		t.Errorf("Expected rollback, found %d palettes", len(list))
	}
}
