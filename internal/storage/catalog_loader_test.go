package storage

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

// writeCatalogFile drops raw bytes into a temp catalog.json
func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}
	return path
}

const validCatalogJSON = `{
  "relation_id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
  "relation_name": "users",
  "version": 1,
  "index_scheme": {
    "entries": [
      {
        "index_name": "users_email_btree",
        "descriptions": [
          {"sub_block_type": "BTREE", "attribute_ids": [1]}
        ]
      }
    ]
  }
}`

func TestLoadRelationCatalog(t *testing.T) {
	path := writeCatalogFile(t, validCatalogJSON)

	rel, err := LoadRelationCatalog(path)
	assert.NilError(t, err)
	assert.Equal(t, "users", rel.Name)
	assert.Equal(t, 1, rel.NumIndices())
	assert.Equal(t, true, rel.HasIndex("users_email_btree"))
}

func TestLoadRelationCatalogMissingFile(t *testing.T) {
	_, err := LoadRelationCatalog(filepath.Join(t.TempDir(), "catalog.json"))
	if err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}

func TestLoadRelationCatalogMalformed(t *testing.T) {
	path := writeCatalogFile(t, `{"relation_id": "nope", "relation_name": "users"}`)
	if _, err := LoadRelationCatalog(path); err == nil {
		t.Fatal("expected error for malformed catalog")
	}
}

func TestValidateRelationCatalog(t *testing.T) {
	valid, err := ValidateRelationCatalog(writeCatalogFile(t, validCatalogJSON))
	assert.NilError(t, err)
	assert.Equal(t, true, valid)
}

// Malformed content is a false verdict, not an error
func TestValidateRelationCatalogMalformed(t *testing.T) {
	cases := map[string]string{
		"truncated json":    `{"relation_name": "users"`,
		"bad relation id":   `{"relation_id": "nope", "relation_name": "users", "index_scheme": {}}`,
		"missing name":      `{"relation_id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8", "index_scheme": {}}`,
		"unknown sub-block": `{"relation_id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8", "relation_name": "users", "index_scheme": {"entries": [{"index_name": "i", "descriptions": [{"sub_block_type": "ROPE"}]}]}}`,
		"empty index name":  `{"relation_id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8", "relation_name": "users", "index_scheme": {"entries": [{"index_name": ""}]}}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			valid, err := ValidateRelationCatalog(writeCatalogFile(t, content))
			assert.NilError(t, err)
			assert.Equal(t, false, valid)
		})
	}
}

func TestValidateRelationCatalogMissingFile(t *testing.T) {
	_, err := ValidateRelationCatalog(filepath.Join(t.TempDir(), "catalog.json"))
	if err == nil {
		t.Fatal("expected I/O error for missing file")
	}
}
