package storage

import (
	"strconv"

	"finance-tracker/internal/models"
)

var categoryFields = []string{"id", "name"}

// CSVCategoryRepository stores categories in one flat file (id,name).
type CSVCategoryRepository struct {
	file *CSVFile
}

// NewCSVCategoryRepository creates a category repository backed by path.
func NewCSVCategoryRepository(path string) *CSVCategoryRepository {
	return &CSVCategoryRepository{file: NewCSVFile(path, categoryFields)}
}

// List returns all categories in file order.
func (r *CSVCategoryRepository) List() ([]models.Category, error) {
	records, err := r.file.ReadAll()
	if err != nil {
		return nil, err
	}
	categories := make([]models.Category, 0, len(records))
	for _, rec := range records {
		categories = append(categories, categoryFromRecord(rec))
	}
	return categories, nil
}

// Get returns the category with the given id, or ErrNotFound.
func (r *CSVCategoryRepository) Get(id int64) (*models.Category, error) {
	records, err := r.file.ReadAll()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec["id"] == strconv.FormatInt(id, 10) {
			c := categoryFromRecord(rec)
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// Add appends a new category. IDs are assigned max(id)+1 so deleting the
// highest-numbered category can never produce a duplicate on the next add.
func (r *CSVCategoryRepository) Add(name string) (*models.Category, error) {
	records, err := r.file.ReadAll()
	if err != nil {
		return nil, err
	}
	c := models.Category{ID: nextID(records), Name: name}
	if err := r.file.Append(Record{
		"id":   strconv.FormatInt(c.ID, 10),
		"name": c.Name,
	}); err != nil {
		return nil, err
	}
	return &c, nil
}

// Update renames the category with the given id, rewriting the whole file.
// Returns ErrNotFound when the id is absent.
func (r *CSVCategoryRepository) Update(id int64, name string) error {
	records, err := r.file.ReadAll()
	if err != nil {
		return err
	}
	target := strconv.FormatInt(id, 10)
	found := false
	for _, rec := range records {
		if rec["id"] == target {
			rec["name"] = name
			found = true
			break
		}
	}
	if !found {
		return ErrNotFound
	}
	return r.file.WriteAll(records)
}

// Delete removes the category. Transactions referencing it are left alone;
// the handlers render them as uncategorized.
func (r *CSVCategoryRepository) Delete(id int64) error {
	return r.file.Delete(strconv.FormatInt(id, 10))
}

func categoryFromRecord(rec Record) models.Category {
	id, _ := strconv.ParseInt(rec["id"], 10, 64)
	return models.Category{ID: id, Name: rec["name"]}
}

// nextID returns max(id)+1 over the given records, starting at 1 for an
// empty store.
func nextID(records []Record) int64 {
	var max int64
	for _, rec := range records {
		if id, err := strconv.ParseInt(rec["id"], 10, 64); err == nil && id > max {
			max = id
		}
	}
	return max + 1
}
