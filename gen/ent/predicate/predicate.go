// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// EntityRelation is the predicate function for entityrelation builders.
type EntityRelation func(*sql.Selector)

// KnowledgeEntity is the predicate function for knowledgeentity builders.
type KnowledgeEntity func(*sql.Selector)
