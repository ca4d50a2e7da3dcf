package writer

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/joydb-catalog/internal/catalog"
	"github.com/leengari/joydb-catalog/internal/storage"
	"github.com/leengari/joydb-catalog/internal/storage/blocks"
)

func TestSaveAndLoadRelationCatalog(t *testing.T) {
	dir := t.TempDir()

	rel := catalog.NewRelation("users")
	err := rel.AddIndex("users_email_btree", []blocks.IndexSubBlockDescription{
		{SubBlockType: blocks.IndexSubBlockTypeBTree, AttributeIDs: []int{1}},
	})
	assert.NilError(t, err)
	err = rel.AddIndex("users_bloom", []blocks.IndexSubBlockDescription{
		{SubBlockType: blocks.IndexSubBlockTypeBloomFilter, AttributeIDs: []int{0, 2},
			Properties: map[string]int64{"num_hashes": 4}},
	})
	assert.NilError(t, err)

	assert.NilError(t, SaveRelationCatalog(rel, dir))

	catalogPath := filepath.Join(dir, CatalogFileName)
	loaded, err := storage.LoadRelationCatalog(catalogPath)
	assert.NilError(t, err)

	assert.Equal(t, rel.ID, loaded.ID)
	assert.Equal(t, "users", loaded.Name)
	assert.Equal(t, 2, loaded.NumIndices())
	assert.DeepEqual(t, rel.IndexNames(), loaded.IndexNames())
	assert.DeepEqual(t,
		rel.IndexDescriptions("users_bloom"),
		loaded.IndexDescriptions("users_bloom"))
}

// Saving twice must replace the file in place, not append or corrupt it
func TestSaveRelationCatalogOverwrites(t *testing.T) {
	dir := t.TempDir()

	rel := catalog.NewRelation("orders")
	assert.NilError(t, SaveRelationCatalog(rel, dir))

	err := rel.AddIndex("orders_hash", []blocks.IndexSubBlockDescription{
		{SubBlockType: blocks.IndexSubBlockTypeHash, AttributeIDs: []int{0}},
	})
	assert.NilError(t, err)
	assert.NilError(t, SaveRelationCatalog(rel, dir))

	loaded, err := storage.LoadRelationCatalog(filepath.Join(dir, CatalogFileName))
	assert.NilError(t, err)
	assert.Equal(t, 1, loaded.NumIndices())

	// No temp file left behind
	_, statErr := os.Stat(filepath.Join(dir, CatalogFileName+".tmp"))
	assert.Equal(t, true, os.IsNotExist(statErr))
}

func TestSaveRelationCatalogRejectsNil(t *testing.T) {
	if err := SaveRelationCatalog(nil, t.TempDir()); err == nil {
		t.Fatal("expected error for nil relation")
	}
}
