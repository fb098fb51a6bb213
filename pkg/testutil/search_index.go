package testutil

// MockSearchIndex implements search.Index. A nil func field behaves as a
// no-op that finds nothing.
type MockSearchIndex struct {
	IndexFunc  func(document, id string, data any) error
	DeleteFunc func(document, id string) error
	SearchFunc func(document, query string, offset, limit int) ([]string, error)
}

func (i *MockSearchIndex) Index(document, id string, data any) error {
	if i.IndexFunc != nil {
		return i.IndexFunc(document, id, data)
	}

	return nil
}

func (i *MockSearchIndex) Delete(document, id string) error {
	if i.DeleteFunc != nil {
		return i.DeleteFunc(document, id)
	}

	return nil
}

func (i *MockSearchIndex) Search(document, query string, offset, limit int) ([]string, error) {
	if i.SearchFunc != nil {
		return i.SearchFunc(document, query, offset, limit)
	}

	return nil, nil
}

func (i *MockSearchIndex) Close() {}
