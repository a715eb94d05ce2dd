package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table layouts mirror the definitions in ent/schema. Columns are listed in
// the order the repositories select them.
var (
	kvColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString},
		{Name: "value", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	kvTable = &schema.Table{
		Name:       "kv",
		Columns:    kvColumns,
		PrimaryKey: []*schema.Column{kvColumns[0]},
	}

	attemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "quiz_id", Type: field.TypeString},
		{Name: "date", Type: field.TypeString},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"choice", "typing"}},
		{Name: "score", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
	}
	attemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    attemptsColumns,
		PrimaryKey: []*schema.Column{attemptsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "attempt_sequence", Columns: []*schema.Column{attemptsColumns[1]}},
			{Name: "attempt_timestamp", Columns: []*schema.Column{attemptsColumns[2]}},
			{Name: "attempt_date", Columns: []*schema.Column{attemptsColumns[4]}},
		},
	}

	llmRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	llmRequestsTable = &schema.Table{
		Name:       "llm_requests",
		Columns:    llmRequestsColumns,
		PrimaryKey: []*schema.Column{llmRequestsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequest_sequence", Columns: []*schema.Column{llmRequestsColumns[1]}},
			{Name: "llmrequest_timestamp", Columns: []*schema.Column{llmRequestsColumns[2]}},
			{Name: "llmrequest_provider", Columns: []*schema.Column{llmRequestsColumns[3]}},
			{Name: "llmrequest_purpose", Columns: []*schema.Column{llmRequestsColumns[5]}},
			{Name: "llmrequest_success", Columns: []*schema.Column{llmRequestsColumns[9]}},
		},
	}

	tables = []*schema.Table{kvTable, attemptsTable, llmRequestsTable}
)

// columnNames returns the names of cols in order.
func columnNames(cols []*schema.Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}
