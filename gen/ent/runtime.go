// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/evgenyd/docs-metadata-enhancer/db/ent/schema"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/document"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/entityrelation"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/knowledgeentity"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescName is the schema descriptor for name field.
	documentDescName := documentFields[1].Descriptor()
	// document.NameValidator is a validator for the "name" field. It is called by the builders before save.
	document.NameValidator = documentDescName.Validators[0].(func(string) error)
	// documentDescSourcePath is the schema descriptor for source_path field.
	documentDescSourcePath := documentFields[2].Descriptor()
	// document.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	document.SourcePathValidator = documentDescSourcePath.Validators[0].(func(string) error)
	// documentDescFormat is the schema descriptor for format field.
	documentDescFormat := documentFields[3].Descriptor()
	// document.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	document.FormatValidator = func() func(string) error {
		validators := documentDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[4].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[9].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[10].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	entityrelationFields := schema.EntityRelation{}.Fields()
	_ = entityrelationFields
	// entityrelationDescFieldCategory is the schema descriptor for field_category field.
	entityrelationDescFieldCategory := entityrelationFields[3].Descriptor()
	// entityrelation.FieldCategoryValidator is a validator for the "field_category" field. It is called by the builders before save.
	entityrelation.FieldCategoryValidator = func() func(string) error {
		validators := entityrelationDescFieldCategory.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(field_category string) error {
			for _, fn := range fns {
				if err := fn(field_category); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// entityrelationDescName is the schema descriptor for name field.
	entityrelationDescName := entityrelationFields[4].Descriptor()
	// entityrelation.NameValidator is a validator for the "name" field. It is called by the builders before save.
	entityrelation.NameValidator = entityrelationDescName.Validators[0].(func(string) error)
	// entityrelationDescFieldKey is the schema descriptor for field_key field.
	entityrelationDescFieldKey := entityrelationFields[5].Descriptor()
	// entityrelation.FieldKeyValidator is a validator for the "field_key" field. It is called by the builders before save.
	entityrelation.FieldKeyValidator = entityrelationDescFieldKey.Validators[0].(func(string) error)
	// entityrelationDescFieldValue is the schema descriptor for field_value field.
	entityrelationDescFieldValue := entityrelationFields[6].Descriptor()
	// entityrelation.FieldValueValidator is a validator for the "field_value" field. It is called by the builders before save.
	entityrelation.FieldValueValidator = entityrelationDescFieldValue.Validators[0].(func(string) error)
	// entityrelationDescConfidence is the schema descriptor for confidence field.
	entityrelationDescConfidence := entityrelationFields[7].Descriptor()
	// entityrelation.DefaultConfidence holds the default value on creation for the confidence field.
	entityrelation.DefaultConfidence = entityrelationDescConfidence.Default.(float32)
	// entityrelationDescCreatedAt is the schema descriptor for created_at field.
	entityrelationDescCreatedAt := entityrelationFields[9].Descriptor()
	// entityrelation.DefaultCreatedAt holds the default value on creation for the created_at field.
	entityrelation.DefaultCreatedAt = entityrelationDescCreatedAt.Default.(func() time.Time)
	// entityrelationDescID is the schema descriptor for id field.
	entityrelationDescID := entityrelationFields[0].Descriptor()
	// entityrelation.DefaultID holds the default value on creation for the id field.
	entityrelation.DefaultID = entityrelationDescID.Default.(func() uuid.UUID)
	knowledgeentityFields := schema.KnowledgeEntity{}.Fields()
	_ = knowledgeentityFields
	// knowledgeentityDescQid is the schema descriptor for qid field.
	knowledgeentityDescQid := knowledgeentityFields[1].Descriptor()
	// knowledgeentity.QidValidator is a validator for the "qid" field. It is called by the builders before save.
	knowledgeentity.QidValidator = knowledgeentityDescQid.Validators[0].(func(string) error)
	// knowledgeentityDescCreatedAt is the schema descriptor for created_at field.
	knowledgeentityDescCreatedAt := knowledgeentityFields[7].Descriptor()
	// knowledgeentity.DefaultCreatedAt holds the default value on creation for the created_at field.
	knowledgeentity.DefaultCreatedAt = knowledgeentityDescCreatedAt.Default.(func() time.Time)
	// knowledgeentityDescUpdatedAt is the schema descriptor for updated_at field.
	knowledgeentityDescUpdatedAt := knowledgeentityFields[8].Descriptor()
	// knowledgeentity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	knowledgeentity.DefaultUpdatedAt = knowledgeentityDescUpdatedAt.Default.(func() time.Time)
	// knowledgeentity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	knowledgeentity.UpdateDefaultUpdatedAt = knowledgeentityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// knowledgeentityDescID is the schema descriptor for id field.
	knowledgeentityDescID := knowledgeentityFields[0].Descriptor()
	// knowledgeentity.DefaultID holds the default value on creation for the id field.
	knowledgeentity.DefaultID = knowledgeentityDescID.Default.(func() uuid.UUID)
}
