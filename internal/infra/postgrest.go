package infra

import (
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
)

const restPath = "/rest/v1"

// NewPostgrestClient builds the REST client for a Supabase project. The key is
// sent both as apikey and as bearer token so row-level security evaluates it.
func NewPostgrestClient(projectURL, key string) (*postgrest.Client, error) {
	client := postgrest.NewClient(projectURL+restPath, "public", map[string]string{
		"apikey":        key,
		"Authorization": "Bearer " + key,
	})
	if client.ClientError != nil {
		return nil, fmt.Errorf("postgrest client: %w", client.ClientError)
	}
	return client, nil
}

// RestTable issues typed operations against one PostgREST table.
type RestTable[T any] struct {
	client *postgrest.Client
	name   string
}

func NewRestTable[T any](client *postgrest.Client, name string) *RestTable[T] {
	return &RestTable[T]{client: client, name: name}
}

// Insert sends row and returns the store's representation of what was
// inserted. An empty slice means the store acknowledged without data.
func (t *RestTable[T]) Insert(row any) ([]T, error) {
	body, _, err := t.client.From(t.name).
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", t.name, err)
	}
	return decodeRows[T](t.name, body)
}

// List returns rows [offset, offset+limit) ordered by each orderBy column
// descending, in the given precedence.
func (t *RestTable[T]) List(offset, limit int, orderBy ...string) ([]T, error) {
	query := t.client.From(t.name).Select("*", "", false)
	for _, column := range orderBy {
		query = query.Order(column, &postgrest.OrderOpts{Ascending: false})
	}

	body, _, err := query.Range(offset, offset+limit-1, "").Execute()
	if err != nil {
		return nil, fmt.Errorf("select from %s: %w", t.name, err)
	}
	return decodeRows[T](t.name, body)
}

// FindBy returns at most limit rows whose column equals value, lowest id first.
func (t *RestTable[T]) FindBy(column, value string, limit int) ([]T, error) {
	body, _, err := t.client.From(t.name).
		Select("*", "", false).
		Eq(column, value).
		Order("id", &postgrest.OrderOpts{Ascending: true}).
		Limit(limit, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("select from %s: %w", t.name, err)
	}
	return decodeRows[T](t.name, body)
}

func decodeRows[T any](table string, body []byte) ([]T, error) {
	rows := []T{}
	if len(body) == 0 {
		return rows, nil
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode %s rows: %w", table, err)
	}
	return rows, nil
}
