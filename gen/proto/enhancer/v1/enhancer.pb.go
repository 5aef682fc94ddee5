// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: enhancer/v1/enhancer.proto

package v1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type CreateDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	SourcePath    string                 `protobuf:"bytes,2,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Format        string                 `protobuf:"bytes,3,opt,name=format,proto3" json:"format,omitempty"` // optional, derived from the file extension when empty
	Owner         string                 `protobuf:"bytes,4,opt,name=owner,proto3" json:"owner,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateDocumentRequest) Reset() {
	*x = CreateDocumentRequest{}
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDocumentRequest) ProtoMessage() {}

func (x *CreateDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDocumentRequest.ProtoReflect.Descriptor instead.
func (*CreateDocumentRequest) Descriptor() ([]byte, []int) {
	return file_enhancer_v1_enhancer_proto_rawDescGZIP(), []int{0}
}

func (x *CreateDocumentRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateDocumentRequest) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *CreateDocumentRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *CreateDocumentRequest) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_enhancer_v1_enhancer_proto_rawDescGZIP(), []int{1}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Owner         string                 `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"` // empty lists every document
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_enhancer_v1_enhancer_proto_rawDescGZIP(), []int{2}
}

func (x *ListDocumentsRequest) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_enhancer_v1_enhancer_proto_rawDescGZIP(), []int{3}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type DeleteDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentRequest) Reset() {
	*x = DeleteDocumentRequest{}
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentRequest) ProtoMessage() {}

func (x *DeleteDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentRequest.ProtoReflect.Descriptor instead.
func (*DeleteDocumentRequest) Descriptor() ([]byte, []int) {
	return file_enhancer_v1_enhancer_proto_rawDescGZIP(), []int{4}
}

func (x *DeleteDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type DeleteDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentResponse) Reset() {
	*x = DeleteDocumentResponse{}
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentResponse) ProtoMessage() {}

func (x *DeleteDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentResponse.ProtoReflect.Descriptor instead.
func (*DeleteDocumentResponse) Descriptor() ([]byte, []int) {
	return file_enhancer_v1_enhancer_proto_rawDescGZIP(), []int{5}
}

type Document struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name             string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	SourcePath       string                 `protobuf:"bytes,3,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Format           string                 `protobuf:"bytes,4,opt,name=format,proto3" json:"format,omitempty"`
	Status           string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	Owner            string                 `protobuf:"bytes,6,opt,name=owner,proto3" json:"owner,omitempty"`
	MetadataJson     string                 `protobuf:"bytes,7,opt,name=metadata_json,json=metadataJson,proto3" json:"metadata_json,omitempty"`               // canonical metadata object, empty until extraction
	MetaWikidataJson string                 `protobuf:"bytes,8,opt,name=meta_wikidata_json,json=metaWikidataJson,proto3" json:"meta_wikidata_json,omitempty"` // field -> value -> QID mirror, empty until enrichment
	ProcessingError  string                 `protobuf:"bytes,9,opt,name=processing_error,json=processingError,proto3" json:"processing_error,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt        string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_enhancer_v1_enhancer_proto_rawDescGZIP(), []int{6}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Document) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *Document) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

func (x *Document) GetMetadataJson() string {
	if x != nil {
		return x.MetadataJson
	}
	return ""
}

func (x *Document) GetMetaWikidataJson() string {
	if x != nil {
		return x.MetaWikidataJson
	}
	return ""
}

func (x *Document) GetProcessingError() string {
	if x != nil {
		return x.ProcessingError
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListEntityLinksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEntityLinksRequest) Reset() {
	*x = ListEntityLinksRequest{}
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEntityLinksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEntityLinksRequest) ProtoMessage() {}

func (x *ListEntityLinksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEntityLinksRequest.ProtoReflect.Descriptor instead.
func (*ListEntityLinksRequest) Descriptor() ([]byte, []int) {
	return file_enhancer_v1_enhancer_proto_rawDescGZIP(), []int{7}
}

func (x *ListEntityLinksRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type EntityLink struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Qid           string                 `protobuf:"bytes,1,opt,name=qid,proto3" json:"qid,omitempty"`
	FieldCategory string                 `protobuf:"bytes,2,opt,name=field_category,json=fieldCategory,proto3" json:"field_category,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	FieldKey      string                 `protobuf:"bytes,4,opt,name=field_key,json=fieldKey,proto3" json:"field_key,omitempty"`
	FieldValue    string                 `protobuf:"bytes,5,opt,name=field_value,json=fieldValue,proto3" json:"field_value,omitempty"`
	Confidence    float32                `protobuf:"fixed32,6,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Context       string                 `protobuf:"bytes,7,opt,name=context,proto3" json:"context,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EntityLink) Reset() {
	*x = EntityLink{}
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EntityLink) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EntityLink) ProtoMessage() {}

func (x *EntityLink) ProtoReflect() protoreflect.Message {
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EntityLink.ProtoReflect.Descriptor instead.
func (*EntityLink) Descriptor() ([]byte, []int) {
	return file_enhancer_v1_enhancer_proto_rawDescGZIP(), []int{8}
}

func (x *EntityLink) GetQid() string {
	if x != nil {
		return x.Qid
	}
	return ""
}

func (x *EntityLink) GetFieldCategory() string {
	if x != nil {
		return x.FieldCategory
	}
	return ""
}

func (x *EntityLink) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *EntityLink) GetFieldKey() string {
	if x != nil {
		return x.FieldKey
	}
	return ""
}

func (x *EntityLink) GetFieldValue() string {
	if x != nil {
		return x.FieldValue
	}
	return ""
}

func (x *EntityLink) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *EntityLink) GetContext() string {
	if x != nil {
		return x.Context
	}
	return ""
}

type ListEntityLinksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Links         []*EntityLink          `protobuf:"bytes,1,rep,name=links,proto3" json:"links,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEntityLinksResponse) Reset() {
	*x = ListEntityLinksResponse{}
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEntityLinksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEntityLinksResponse) ProtoMessage() {}

func (x *ListEntityLinksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEntityLinksResponse.ProtoReflect.Descriptor instead.
func (*ListEntityLinksResponse) Descriptor() ([]byte, []int) {
	return file_enhancer_v1_enhancer_proto_rawDescGZIP(), []int{9}
}

func (x *ListEntityLinksResponse) GetLinks() []*EntityLink {
	if x != nil {
		return x.Links
	}
	return nil
}

type RunStageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunStageRequest) Reset() {
	*x = RunStageRequest{}
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunStageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunStageRequest) ProtoMessage() {}

func (x *RunStageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunStageRequest.ProtoReflect.Descriptor instead.
func (*RunStageRequest) Descriptor() ([]byte, []int) {
	return file_enhancer_v1_enhancer_proto_rawDescGZIP(), []int{10}
}

func (x *RunStageRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type RunStageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Stage         string                 `protobuf:"bytes,2,opt,name=stage,proto3" json:"stage,omitempty"`
	Queued        bool                   `protobuf:"varint,3,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunStageResponse) Reset() {
	*x = RunStageResponse{}
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunStageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunStageResponse) ProtoMessage() {}

func (x *RunStageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunStageResponse.ProtoReflect.Descriptor instead.
func (*RunStageResponse) Descriptor() ([]byte, []int) {
	return file_enhancer_v1_enhancer_proto_rawDescGZIP(), []int{11}
}

func (x *RunStageResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *RunStageResponse) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *RunStageResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type ExportDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Owner         string                 `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"` // empty exports every document
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsRequest) Reset() {
	*x = ExportDocumentsRequest{}
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsRequest) ProtoMessage() {}

func (x *ExportDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_enhancer_v1_enhancer_proto_rawDescGZIP(), []int{12}
}

func (x *ExportDocumentsRequest) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

type ExportDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsResponse) Reset() {
	*x = ExportDocumentsResponse{}
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsResponse) ProtoMessage() {}

func (x *ExportDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_enhancer_v1_enhancer_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_enhancer_v1_enhancer_proto_rawDescGZIP(), []int{13}
}

func (x *ExportDocumentsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_enhancer_v1_enhancer_proto protoreflect.FileDescriptor

const file_enhancer_v1_enhancer_proto_rawDesc = "" +
	"\n" +
	"\x1aenhancer/v1/enhancer.proto\x12\venhancer.v1\"z\n" +
	"\x15CreateDocumentRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1f\n" +
	"\vsource_path\x18\x02 \x01(\tR\n" +
	"sourcePath\x12\x16\n" +
	"\x06format\x18\x03 \x01(\tR\x06format\x12\x14\n" +
	"\x05owner\x18\x04 \x01(\tR\x05owner\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\",\n" +
	"\x14ListDocumentsRequest\x12\x14\n" +
	"\x05owner\x18\x01 \x01(\tR\x05owner\"L\n" +
	"\x15ListDocumentsResponse\x123\n" +
	"\tdocuments\x18\x01 \x03(\v2\x15.enhancer.v1.DocumentR\tdocuments\"8\n" +
	"\x15DeleteDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\x18\n" +
	"\x16DeleteDocumentResponse\"\xd1\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1f\n" +
	"\vsource_path\x18\x03 \x01(\tR\n" +
	"sourcePath\x12\x16\n" +
	"\x06format\x18\x04 \x01(\tR\x06format\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x14\n" +
	"\x05owner\x18\x06 \x01(\tR\x05owner\x12#\n" +
	"\rmetadata_json\x18\a \x01(\tR\fmetadataJson\x12,\n" +
	"\x12meta_wikidata_json\x18\b \x01(\tR\x10metaWikidataJson\x12)\n" +
	"\x10processing_error\x18\t \x01(\tR\x0fprocessingError\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"9\n" +
	"\x16ListEntityLinksRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\xd1\x01\n" +
	"\n" +
	"EntityLink\x12\x10\n" +
	"\x03qid\x18\x01 \x01(\tR\x03qid\x12%\n" +
	"\x0efield_category\x18\x02 \x01(\tR\rfieldCategory\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x1b\n" +
	"\tfield_key\x18\x04 \x01(\tR\bfieldKey\x12\x1f\n" +
	"\vfield_value\x18\x05 \x01(\tR\n" +
	"fieldValue\x12\x1e\n" +
	"\n" +
	"confidence\x18\x06 \x01(\x02R\n" +
	"confidence\x12\x18\n" +
	"\acontext\x18\a \x01(\tR\acontext\"H\n" +
	"\x17ListEntityLinksResponse\x12-\n" +
	"\x05links\x18\x01 \x03(\v2\x17.enhancer.v1.EntityLinkR\x05links\"2\n" +
	"\x0fRunStageRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"a\n" +
	"\x10RunStageResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x14\n" +
	"\x05stage\x18\x02 \x01(\tR\x05stage\x12\x16\n" +
	"\x06queued\x18\x03 \x01(\bR\x06queued\".\n" +
	"\x16ExportDocumentsRequest\x12\x14\n" +
	"\x05owner\x18\x01 \x01(\tR\x05owner\"-\n" +
	"\x17ExportDocumentsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xb7\x03\n" +
	"\x10DocumentsService\x12K\n" +
	"\x0eCreateDocument\x12\".enhancer.v1.CreateDocumentRequest\x1a\x15.enhancer.v1.Document\x12E\n" +
	"\vGetDocument\x12\x1f.enhancer.v1.GetDocumentRequest\x1a\x15.enhancer.v1.Document\x12V\n" +
	"\rListDocuments\x12!.enhancer.v1.ListDocumentsRequest\x1a\".enhancer.v1.ListDocumentsResponse\x12Y\n" +
	"\x0eDeleteDocument\x12\".enhancer.v1.DeleteDocumentRequest\x1a#.enhancer.v1.DeleteDocumentResponse\x12\\\n" +
	"\x0fListEntityLinks\x12#.enhancer.v1.ListEntityLinksRequest\x1a$.enhancer.v1.ListEntityLinksResponse2\xfb\x01\n" +
	"\x11ProcessingService\x12L\n" +
	"\rRunExtraction\x12\x1c.enhancer.v1.RunStageRequest\x1a\x1d.enhancer.v1.RunStageResponse\x12L\n" +
	"\rRunEnrichment\x12\x1c.enhancer.v1.RunStageRequest\x1a\x1d.enhancer.v1.RunStageResponse\x12J\n" +
	"\vResyncLinks\x12\x1c.enhancer.v1.RunStageRequest\x1a\x1d.enhancer.v1.RunStageResponse2m\n" +
	"\rExportService\x12\\\n" +
	"\x0fExportDocuments\x12#.enhancer.v1.ExportDocumentsRequest\x1a$.enhancer.v1.ExportDocumentsResponseBDZBgithub.com/evgenyd/docs-metadata-enhancer/gen/proto/enhancer/v1;v1b\x06proto3"

var (
	file_enhancer_v1_enhancer_proto_rawDescOnce sync.Once
	file_enhancer_v1_enhancer_proto_rawDescData []byte
)

func file_enhancer_v1_enhancer_proto_rawDescGZIP() []byte {
	file_enhancer_v1_enhancer_proto_rawDescOnce.Do(func() {
		file_enhancer_v1_enhancer_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_enhancer_v1_enhancer_proto_rawDesc), len(file_enhancer_v1_enhancer_proto_rawDesc)))
	})
	return file_enhancer_v1_enhancer_proto_rawDescData
}

var file_enhancer_v1_enhancer_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_enhancer_v1_enhancer_proto_goTypes = []any{
	(*CreateDocumentRequest)(nil),   // 0: enhancer.v1.CreateDocumentRequest
	(*GetDocumentRequest)(nil),      // 1: enhancer.v1.GetDocumentRequest
	(*ListDocumentsRequest)(nil),    // 2: enhancer.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),   // 3: enhancer.v1.ListDocumentsResponse
	(*DeleteDocumentRequest)(nil),   // 4: enhancer.v1.DeleteDocumentRequest
	(*DeleteDocumentResponse)(nil),  // 5: enhancer.v1.DeleteDocumentResponse
	(*Document)(nil),                // 6: enhancer.v1.Document
	(*ListEntityLinksRequest)(nil),  // 7: enhancer.v1.ListEntityLinksRequest
	(*EntityLink)(nil),              // 8: enhancer.v1.EntityLink
	(*ListEntityLinksResponse)(nil), // 9: enhancer.v1.ListEntityLinksResponse
	(*RunStageRequest)(nil),         // 10: enhancer.v1.RunStageRequest
	(*RunStageResponse)(nil),        // 11: enhancer.v1.RunStageResponse
	(*ExportDocumentsRequest)(nil),  // 12: enhancer.v1.ExportDocumentsRequest
	(*ExportDocumentsResponse)(nil), // 13: enhancer.v1.ExportDocumentsResponse
}
var file_enhancer_v1_enhancer_proto_depIdxs = []int32{
	6,  // 0: enhancer.v1.ListDocumentsResponse.documents:type_name -> enhancer.v1.Document
	8,  // 1: enhancer.v1.ListEntityLinksResponse.links:type_name -> enhancer.v1.EntityLink
	0,  // 2: enhancer.v1.DocumentsService.CreateDocument:input_type -> enhancer.v1.CreateDocumentRequest
	1,  // 3: enhancer.v1.DocumentsService.GetDocument:input_type -> enhancer.v1.GetDocumentRequest
	2,  // 4: enhancer.v1.DocumentsService.ListDocuments:input_type -> enhancer.v1.ListDocumentsRequest
	4,  // 5: enhancer.v1.DocumentsService.DeleteDocument:input_type -> enhancer.v1.DeleteDocumentRequest
	7,  // 6: enhancer.v1.DocumentsService.ListEntityLinks:input_type -> enhancer.v1.ListEntityLinksRequest
	10, // 7: enhancer.v1.ProcessingService.RunExtraction:input_type -> enhancer.v1.RunStageRequest
	10, // 8: enhancer.v1.ProcessingService.RunEnrichment:input_type -> enhancer.v1.RunStageRequest
	10, // 9: enhancer.v1.ProcessingService.ResyncLinks:input_type -> enhancer.v1.RunStageRequest
	12, // 10: enhancer.v1.ExportService.ExportDocuments:input_type -> enhancer.v1.ExportDocumentsRequest
	6,  // 11: enhancer.v1.DocumentsService.CreateDocument:output_type -> enhancer.v1.Document
	6,  // 12: enhancer.v1.DocumentsService.GetDocument:output_type -> enhancer.v1.Document
	3,  // 13: enhancer.v1.DocumentsService.ListDocuments:output_type -> enhancer.v1.ListDocumentsResponse
	5,  // 14: enhancer.v1.DocumentsService.DeleteDocument:output_type -> enhancer.v1.DeleteDocumentResponse
	9,  // 15: enhancer.v1.DocumentsService.ListEntityLinks:output_type -> enhancer.v1.ListEntityLinksResponse
	11, // 16: enhancer.v1.ProcessingService.RunExtraction:output_type -> enhancer.v1.RunStageResponse
	11, // 17: enhancer.v1.ProcessingService.RunEnrichment:output_type -> enhancer.v1.RunStageResponse
	11, // 18: enhancer.v1.ProcessingService.ResyncLinks:output_type -> enhancer.v1.RunStageResponse
	13, // 19: enhancer.v1.ExportService.ExportDocuments:output_type -> enhancer.v1.ExportDocumentsResponse
	11, // [11:20] is the sub-list for method output_type
	2,  // [2:11] is the sub-list for method input_type
	2,  // [2:2] is the sub-list for extension type_name
	2,  // [2:2] is the sub-list for extension extendee
	0,  // [0:2] is the sub-list for field type_name
}

func init() { file_enhancer_v1_enhancer_proto_init() }
func file_enhancer_v1_enhancer_proto_init() {
	if File_enhancer_v1_enhancer_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_enhancer_v1_enhancer_proto_rawDesc), len(file_enhancer_v1_enhancer_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_enhancer_v1_enhancer_proto_goTypes,
		DependencyIndexes: file_enhancer_v1_enhancer_proto_depIdxs,
		MessageInfos:      file_enhancer_v1_enhancer_proto_msgTypes,
	}.Build()
	File_enhancer_v1_enhancer_proto = out.File
	file_enhancer_v1_enhancer_proto_goTypes = nil
	file_enhancer_v1_enhancer_proto_depIdxs = nil
}
