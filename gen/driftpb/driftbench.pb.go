// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: driftbench.proto

package driftpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type OpenStreamRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Setting     string   `protobuf:"bytes,1,opt,name=setting,proto3" json:"setting,omitempty"`
	Dataset     string   `protobuf:"bytes,2,opt,name=dataset,proto3" json:"dataset,omitempty"`
	Domain      string   `protobuf:"bytes,3,opt,name=domain,proto3" json:"domain,omitempty"`
	DomainsAll  []string `protobuf:"bytes,4,rep,name=domains_all,json=domainsAll,proto3" json:"domains_all,omitempty"`
	Severity    int32    `protobuf:"varint,5,opt,name=severity,proto3" json:"severity,omitempty"`
	NumExamples int32    `protobuf:"varint,6,opt,name=num_examples,json=numExamples,proto3" json:"num_examples,omitempty"`
	BatchSize   int32    `protobuf:"varint,7,opt,name=batch_size,json=batchSize,proto3" json:"batch_size,omitempty"`
	NViews      int32    `protobuf:"varint,8,opt,name=n_views,json=nViews,proto3" json:"n_views,omitempty"`
	Seed        int64    `protobuf:"varint,9,opt,name=seed,proto3" json:"seed,omitempty"`
}

func (x *OpenStreamRequest) Reset() {
	*x = OpenStreamRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_driftbench_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *OpenStreamRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OpenStreamRequest) ProtoMessage() {}

func (x *OpenStreamRequest) ProtoReflect() protoreflect.Message {
	mi := &file_driftbench_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OpenStreamRequest.ProtoReflect.Descriptor instead.
func (*OpenStreamRequest) Descriptor() ([]byte, []int) {
	return file_driftbench_proto_rawDescGZIP(), []int{0}
}

func (x *OpenStreamRequest) GetSetting() string {
	if x != nil {
		return x.Setting
	}
	return ""
}

func (x *OpenStreamRequest) GetDataset() string {
	if x != nil {
		return x.Dataset
	}
	return ""
}

func (x *OpenStreamRequest) GetDomain() string {
	if x != nil {
		return x.Domain
	}
	return ""
}

func (x *OpenStreamRequest) GetDomainsAll() []string {
	if x != nil {
		return x.DomainsAll
	}
	return nil
}

func (x *OpenStreamRequest) GetSeverity() int32 {
	if x != nil {
		return x.Severity
	}
	return 0
}

func (x *OpenStreamRequest) GetNumExamples() int32 {
	if x != nil {
		return x.NumExamples
	}
	return 0
}

func (x *OpenStreamRequest) GetBatchSize() int32 {
	if x != nil {
		return x.BatchSize
	}
	return 0
}

func (x *OpenStreamRequest) GetNViews() int32 {
	if x != nil {
		return x.NViews
	}
	return 0
}

func (x *OpenStreamRequest) GetSeed() int64 {
	if x != nil {
		return x.Seed
	}
	return 0
}

type OpenStreamResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	StreamId   string `protobuf:"bytes,1,opt,name=stream_id,json=streamId,proto3" json:"stream_id,omitempty"`
	NumSamples int32  `protobuf:"varint,2,opt,name=num_samples,json=numSamples,proto3" json:"num_samples,omitempty"`
}

func (x *OpenStreamResponse) Reset() {
	*x = OpenStreamResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_driftbench_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *OpenStreamResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OpenStreamResponse) ProtoMessage() {}

func (x *OpenStreamResponse) ProtoReflect() protoreflect.Message {
	mi := &file_driftbench_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OpenStreamResponse.ProtoReflect.Descriptor instead.
func (*OpenStreamResponse) Descriptor() ([]byte, []int) {
	return file_driftbench_proto_rawDescGZIP(), []int{1}
}

func (x *OpenStreamResponse) GetStreamId() string {
	if x != nil {
		return x.StreamId
	}
	return ""
}

func (x *OpenStreamResponse) GetNumSamples() int32 {
	if x != nil {
		return x.NumSamples
	}
	return 0
}

type NextBatchRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	StreamId string `protobuf:"bytes,1,opt,name=stream_id,json=streamId,proto3" json:"stream_id,omitempty"`
}

func (x *NextBatchRequest) Reset() {
	*x = NextBatchRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_driftbench_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *NextBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NextBatchRequest) ProtoMessage() {}

func (x *NextBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_driftbench_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NextBatchRequest.ProtoReflect.Descriptor instead.
func (*NextBatchRequest) Descriptor() ([]byte, []int) {
	return file_driftbench_proto_rawDescGZIP(), []int{2}
}

func (x *NextBatchRequest) GetStreamId() string {
	if x != nil {
		return x.StreamId
	}
	return ""
}

type NextBatchResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	BatchId   string   `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	Labels    []int32  `protobuf:"varint,2,rep,packed,name=labels,proto3" json:"labels,omitempty"`
	Domains   []string `protobuf:"bytes,3,rep,name=domains,proto3" json:"domains,omitempty"`
	Exhausted bool     `protobuf:"varint,4,opt,name=exhausted,proto3" json:"exhausted,omitempty"`
}

func (x *NextBatchResponse) Reset() {
	*x = NextBatchResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_driftbench_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *NextBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NextBatchResponse) ProtoMessage() {}

func (x *NextBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_driftbench_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NextBatchResponse.ProtoReflect.Descriptor instead.
func (*NextBatchResponse) Descriptor() ([]byte, []int) {
	return file_driftbench_proto_rawDescGZIP(), []int{3}
}

func (x *NextBatchResponse) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *NextBatchResponse) GetLabels() []int32 {
	if x != nil {
		return x.Labels
	}
	return nil
}

func (x *NextBatchResponse) GetDomains() []string {
	if x != nil {
		return x.Domains
	}
	return nil
}

func (x *NextBatchResponse) GetExhausted() bool {
	if x != nil {
		return x.Exhausted
	}
	return false
}

type ForwardRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	BatchId string `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
}

func (x *ForwardRequest) Reset() {
	*x = ForwardRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_driftbench_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ForwardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ForwardRequest) ProtoMessage() {}

func (x *ForwardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_driftbench_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ForwardRequest.ProtoReflect.Descriptor instead.
func (*ForwardRequest) Descriptor() ([]byte, []int) {
	return file_driftbench_proto_rawDescGZIP(), []int{4}
}

func (x *ForwardRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

// Logits are row-major float32, num_classes columns per sample.
type LogitMatrix struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Values     []float32 `protobuf:"fixed32,1,rep,packed,name=values,proto3" json:"values,omitempty"`
	NumClasses int32     `protobuf:"varint,2,opt,name=num_classes,json=numClasses,proto3" json:"num_classes,omitempty"`
}

func (x *LogitMatrix) Reset() {
	*x = LogitMatrix{}
	if protoimpl.UnsafeEnabled {
		mi := &file_driftbench_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *LogitMatrix) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LogitMatrix) ProtoMessage() {}

func (x *LogitMatrix) ProtoReflect() protoreflect.Message {
	mi := &file_driftbench_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LogitMatrix.ProtoReflect.Descriptor instead.
func (*LogitMatrix) Descriptor() ([]byte, []int) {
	return file_driftbench_proto_rawDescGZIP(), []int{5}
}

func (x *LogitMatrix) GetValues() []float32 {
	if x != nil {
		return x.Values
	}
	return nil
}

func (x *LogitMatrix) GetNumClasses() int32 {
	if x != nil {
		return x.NumClasses
	}
	return 0
}

type ForwardResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Student  *LogitMatrix `protobuf:"bytes,1,opt,name=student,proto3" json:"student,omitempty"`
	Teacher1 *LogitMatrix `protobuf:"bytes,2,opt,name=teacher1,proto3" json:"teacher1,omitempty"`
	Teacher2 *LogitMatrix `protobuf:"bytes,3,opt,name=teacher2,proto3" json:"teacher2,omitempty"`
	Aug      *LogitMatrix `protobuf:"bytes,4,opt,name=aug,proto3" json:"aug,omitempty"`
}

func (x *ForwardResponse) Reset() {
	*x = ForwardResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_driftbench_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ForwardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ForwardResponse) ProtoMessage() {}

func (x *ForwardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_driftbench_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ForwardResponse.ProtoReflect.Descriptor instead.
func (*ForwardResponse) Descriptor() ([]byte, []int) {
	return file_driftbench_proto_rawDescGZIP(), []int{6}
}

func (x *ForwardResponse) GetStudent() *LogitMatrix {
	if x != nil {
		return x.Student
	}
	return nil
}

func (x *ForwardResponse) GetTeacher1() *LogitMatrix {
	if x != nil {
		return x.Teacher1
	}
	return nil
}

func (x *ForwardResponse) GetTeacher2() *LogitMatrix {
	if x != nil {
		return x.Teacher2
	}
	return nil
}

func (x *ForwardResponse) GetAug() *LogitMatrix {
	if x != nil {
		return x.Aug
	}
	return nil
}

type AdaptRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	BatchId     string             `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	LossWeights map[string]float32 `protobuf:"bytes,2,rep,name=loss_weights,json=lossWeights,proto3" json:"loss_weights,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"fixed32,2,opt,name=value,proto3"`
}

func (x *AdaptRequest) Reset() {
	*x = AdaptRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_driftbench_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AdaptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdaptRequest) ProtoMessage() {}

func (x *AdaptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_driftbench_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdaptRequest.ProtoReflect.Descriptor instead.
func (*AdaptRequest) Descriptor() ([]byte, []int) {
	return file_driftbench_proto_rawDescGZIP(), []int{7}
}

func (x *AdaptRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *AdaptRequest) GetLossWeights() map[string]float32 {
	if x != nil {
		return x.LossWeights
	}
	return nil
}

type AdaptResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	AppliedLoss    float32 `protobuf:"fixed32,1,opt,name=applied_loss,json=appliedLoss,proto3" json:"applied_loss,omitempty"`
	ParamDeltaNorm float32 `protobuf:"fixed32,2,opt,name=param_delta_norm,json=paramDeltaNorm,proto3" json:"param_delta_norm,omitempty"`
}

func (x *AdaptResponse) Reset() {
	*x = AdaptResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_driftbench_proto_msgTypes[8]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AdaptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdaptResponse) ProtoMessage() {}

func (x *AdaptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_driftbench_proto_msgTypes[8]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdaptResponse.ProtoReflect.Descriptor instead.
func (*AdaptResponse) Descriptor() ([]byte, []int) {
	return file_driftbench_proto_rawDescGZIP(), []int{8}
}

func (x *AdaptResponse) GetAppliedLoss() float32 {
	if x != nil {
		return x.AppliedLoss
	}
	return 0
}

func (x *AdaptResponse) GetParamDeltaNorm() float32 {
	if x != nil {
		return x.ParamDeltaNorm
	}
	return 0
}

type ResetRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *ResetRequest) Reset() {
	*x = ResetRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_driftbench_proto_msgTypes[9]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ResetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetRequest) ProtoMessage() {}

func (x *ResetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_driftbench_proto_msgTypes[9]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetRequest.ProtoReflect.Descriptor instead.
func (*ResetRequest) Descriptor() ([]byte, []int) {
	return file_driftbench_proto_rawDescGZIP(), []int{9}
}

type ResetResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Supported bool `protobuf:"varint,1,opt,name=supported,proto3" json:"supported,omitempty"`
}

func (x *ResetResponse) Reset() {
	*x = ResetResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_driftbench_proto_msgTypes[10]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ResetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetResponse) ProtoMessage() {}

func (x *ResetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_driftbench_proto_msgTypes[10]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetResponse.ProtoReflect.Descriptor instead.
func (*ResetResponse) Descriptor() ([]byte, []int) {
	return file_driftbench_proto_rawDescGZIP(), []int{10}
}

func (x *ResetResponse) GetSupported() bool {
	if x != nil {
		return x.Supported
	}
	return false
}

var File_driftbench_proto protoreflect.FileDescriptor

var file_driftbench_proto_rawDesc = []byte{
	0x0a, 0x10, 0x64, 0x72, 0x69, 0x66, 0x74, 0x62, 0x65, 0x6e, 0x63, 0x68, 0x2e, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x12, 0x0a, 0x64, 0x72, 0x69, 0x66, 0x74, 0x62, 0x65, 0x6e, 0x63, 0x68, 0x22, 0x8b,
	0x02, 0x0a, 0x11, 0x4f, 0x70, 0x65, 0x6e, 0x53, 0x74, 0x72, 0x65, 0x61, 0x6d, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x65, 0x74, 0x74, 0x69, 0x6e, 0x67, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x73, 0x65, 0x74, 0x74, 0x69, 0x6e, 0x67, 0x12, 0x18,
	0x0a, 0x07, 0x64, 0x61, 0x74, 0x61, 0x73, 0x65, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x07, 0x64, 0x61, 0x74, 0x61, 0x73, 0x65, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x64, 0x6f, 0x6d, 0x61,
	0x69, 0x6e, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x64, 0x6f, 0x6d, 0x61, 0x69, 0x6e,
	0x12, 0x1f, 0x0a, 0x0b, 0x64, 0x6f, 0x6d, 0x61, 0x69, 0x6e, 0x73, 0x5f, 0x61, 0x6c, 0x6c, 0x18,
	0x04, 0x20, 0x03, 0x28, 0x09, 0x52, 0x0a, 0x64, 0x6f, 0x6d, 0x61, 0x69, 0x6e, 0x73, 0x41, 0x6c,
	0x6c, 0x12, 0x1a, 0x0a, 0x08, 0x73, 0x65, 0x76, 0x65, 0x72, 0x69, 0x74, 0x79, 0x18, 0x05, 0x20,
	0x01, 0x28, 0x05, 0x52, 0x08, 0x73, 0x65, 0x76, 0x65, 0x72, 0x69, 0x74, 0x79, 0x12, 0x21, 0x0a,
	0x0c, 0x6e, 0x75, 0x6d, 0x5f, 0x65, 0x78, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x73, 0x18, 0x06, 0x20,
	0x01, 0x28, 0x05, 0x52, 0x0b, 0x6e, 0x75, 0x6d, 0x45, 0x78, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x73,
	0x12, 0x1d, 0x0a, 0x0a, 0x62, 0x61, 0x74, 0x63, 0x68, 0x5f, 0x73, 0x69, 0x7a, 0x65, 0x18, 0x07,
	0x20, 0x01, 0x28, 0x05, 0x52, 0x09, 0x62, 0x61, 0x74, 0x63, 0x68, 0x53, 0x69, 0x7a, 0x65, 0x12,
	0x17, 0x0a, 0x07, 0x6e, 0x5f, 0x76, 0x69, 0x65, 0x77, 0x73, 0x18, 0x08, 0x20, 0x01, 0x28, 0x05,
	0x52, 0x06, 0x6e, 0x56, 0x69, 0x65, 0x77, 0x73, 0x12, 0x12, 0x0a, 0x04, 0x73, 0x65, 0x65, 0x64,
	0x18, 0x09, 0x20, 0x01, 0x28, 0x03, 0x52, 0x04, 0x73, 0x65, 0x65, 0x64, 0x22, 0x52, 0x0a, 0x12,
	0x4f, 0x70, 0x65, 0x6e, 0x53, 0x74, 0x72, 0x65, 0x61, 0x6d, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x1b, 0x0a, 0x09, 0x73, 0x74, 0x72, 0x65, 0x61, 0x6d, 0x5f, 0x69, 0x64, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x73, 0x74, 0x72, 0x65, 0x61, 0x6d, 0x49, 0x64, 0x12,
	0x1f, 0x0a, 0x0b, 0x6e, 0x75, 0x6d, 0x5f, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x73, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x05, 0x52, 0x0a, 0x6e, 0x75, 0x6d, 0x53, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x73,
	0x22, 0x2f, 0x0a, 0x10, 0x4e, 0x65, 0x78, 0x74, 0x42, 0x61, 0x74, 0x63, 0x68, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x12, 0x1b, 0x0a, 0x09, 0x73, 0x74, 0x72, 0x65, 0x61, 0x6d, 0x5f, 0x69,
	0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x73, 0x74, 0x72, 0x65, 0x61, 0x6d, 0x49,
	0x64, 0x22, 0x7e, 0x0a, 0x11, 0x4e, 0x65, 0x78, 0x74, 0x42, 0x61, 0x74, 0x63, 0x68, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x19, 0x0a, 0x08, 0x62, 0x61, 0x74, 0x63, 0x68, 0x5f,
	0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x62, 0x61, 0x74, 0x63, 0x68, 0x49,
	0x64, 0x12, 0x16, 0x0a, 0x06, 0x6c, 0x61, 0x62, 0x65, 0x6c, 0x73, 0x18, 0x02, 0x20, 0x03, 0x28,
	0x05, 0x52, 0x06, 0x6c, 0x61, 0x62, 0x65, 0x6c, 0x73, 0x12, 0x18, 0x0a, 0x07, 0x64, 0x6f, 0x6d,
	0x61, 0x69, 0x6e, 0x73, 0x18, 0x03, 0x20, 0x03, 0x28, 0x09, 0x52, 0x07, 0x64, 0x6f, 0x6d, 0x61,
	0x69, 0x6e, 0x73, 0x12, 0x1c, 0x0a, 0x09, 0x65, 0x78, 0x68, 0x61, 0x75, 0x73, 0x74, 0x65, 0x64,
	0x18, 0x04, 0x20, 0x01, 0x28, 0x08, 0x52, 0x09, 0x65, 0x78, 0x68, 0x61, 0x75, 0x73, 0x74, 0x65,
	0x64, 0x22, 0x2b, 0x0a, 0x0e, 0x46, 0x6f, 0x72, 0x77, 0x61, 0x72, 0x64, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x12, 0x19, 0x0a, 0x08, 0x62, 0x61, 0x74, 0x63, 0x68, 0x5f, 0x69, 0x64, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x62, 0x61, 0x74, 0x63, 0x68, 0x49, 0x64, 0x22, 0x46,
	0x0a, 0x0b, 0x4c, 0x6f, 0x67, 0x69, 0x74, 0x4d, 0x61, 0x74, 0x72, 0x69, 0x78, 0x12, 0x16, 0x0a,
	0x06, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x02, 0x52, 0x06, 0x76,
	0x61, 0x6c, 0x75, 0x65, 0x73, 0x12, 0x1f, 0x0a, 0x0b, 0x6e, 0x75, 0x6d, 0x5f, 0x63, 0x6c, 0x61,
	0x73, 0x73, 0x65, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0a, 0x6e, 0x75, 0x6d, 0x43,
	0x6c, 0x61, 0x73, 0x73, 0x65, 0x73, 0x22, 0xd9, 0x01, 0x0a, 0x0f, 0x46, 0x6f, 0x72, 0x77, 0x61,
	0x72, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x31, 0x0a, 0x07, 0x73, 0x74,
	0x75, 0x64, 0x65, 0x6e, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x17, 0x2e, 0x64, 0x72,
	0x69, 0x66, 0x74, 0x62, 0x65, 0x6e, 0x63, 0x68, 0x2e, 0x4c, 0x6f, 0x67, 0x69, 0x74, 0x4d, 0x61,
	0x74, 0x72, 0x69, 0x78, 0x52, 0x07, 0x73, 0x74, 0x75, 0x64, 0x65, 0x6e, 0x74, 0x12, 0x33, 0x0a,
	0x08, 0x74, 0x65, 0x61, 0x63, 0x68, 0x65, 0x72, 0x31, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32,
	0x17, 0x2e, 0x64, 0x72, 0x69, 0x66, 0x74, 0x62, 0x65, 0x6e, 0x63, 0x68, 0x2e, 0x4c, 0x6f, 0x67,
	0x69, 0x74, 0x4d, 0x61, 0x74, 0x72, 0x69, 0x78, 0x52, 0x08, 0x74, 0x65, 0x61, 0x63, 0x68, 0x65,
	0x72, 0x31, 0x12, 0x33, 0x0a, 0x08, 0x74, 0x65, 0x61, 0x63, 0x68, 0x65, 0x72, 0x32, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x0b, 0x32, 0x17, 0x2e, 0x64, 0x72, 0x69, 0x66, 0x74, 0x62, 0x65, 0x6e, 0x63,
	0x68, 0x2e, 0x4c, 0x6f, 0x67, 0x69, 0x74, 0x4d, 0x61, 0x74, 0x72, 0x69, 0x78, 0x52, 0x08, 0x74,
	0x65, 0x61, 0x63, 0x68, 0x65, 0x72, 0x32, 0x12, 0x29, 0x0a, 0x03, 0x61, 0x75, 0x67, 0x18, 0x04,
	0x20, 0x01, 0x28, 0x0b, 0x32, 0x17, 0x2e, 0x64, 0x72, 0x69, 0x66, 0x74, 0x62, 0x65, 0x6e, 0x63,
	0x68, 0x2e, 0x4c, 0x6f, 0x67, 0x69, 0x74, 0x4d, 0x61, 0x74, 0x72, 0x69, 0x78, 0x52, 0x03, 0x61,
	0x75, 0x67, 0x22, 0xb7, 0x01, 0x0a, 0x0c, 0x41, 0x64, 0x61, 0x70, 0x74, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x12, 0x19, 0x0a, 0x08, 0x62, 0x61, 0x74, 0x63, 0x68, 0x5f, 0x69, 0x64, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x62, 0x61, 0x74, 0x63, 0x68, 0x49, 0x64, 0x12, 0x4c,
	0x0a, 0x0c, 0x6c, 0x6f, 0x73, 0x73, 0x5f, 0x77, 0x65, 0x69, 0x67, 0x68, 0x74, 0x73, 0x18, 0x02,
	0x20, 0x03, 0x28, 0x0b, 0x32, 0x29, 0x2e, 0x64, 0x72, 0x69, 0x66, 0x74, 0x62, 0x65, 0x6e, 0x63,
	0x68, 0x2e, 0x41, 0x64, 0x61, 0x70, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x2e, 0x4c,
	0x6f, 0x73, 0x73, 0x57, 0x65, 0x69, 0x67, 0x68, 0x74, 0x73, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x52,
	0x0b, 0x6c, 0x6f, 0x73, 0x73, 0x57, 0x65, 0x69, 0x67, 0x68, 0x74, 0x73, 0x1a, 0x3e, 0x0a, 0x10,
	0x4c, 0x6f, 0x73, 0x73, 0x57, 0x65, 0x69, 0x67, 0x68, 0x74, 0x73, 0x45, 0x6e, 0x74, 0x72, 0x79,
	0x12, 0x10, 0x0a, 0x03, 0x6b, 0x65, 0x79, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x03, 0x6b,
	0x65, 0x79, 0x12, 0x14, 0x0a, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x02, 0x52, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x3a, 0x02, 0x38, 0x01, 0x22, 0x5c, 0x0a, 0x0d,
	0x41, 0x64, 0x61, 0x70, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x21, 0x0a,
	0x0c, 0x61, 0x70, 0x70, 0x6c, 0x69, 0x65, 0x64, 0x5f, 0x6c, 0x6f, 0x73, 0x73, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x02, 0x52, 0x0b, 0x61, 0x70, 0x70, 0x6c, 0x69, 0x65, 0x64, 0x4c, 0x6f, 0x73, 0x73,
	0x12, 0x28, 0x0a, 0x10, 0x70, 0x61, 0x72, 0x61, 0x6d, 0x5f, 0x64, 0x65, 0x6c, 0x74, 0x61, 0x5f,
	0x6e, 0x6f, 0x72, 0x6d, 0x18, 0x02, 0x20, 0x01, 0x28, 0x02, 0x52, 0x0e, 0x70, 0x61, 0x72, 0x61,
	0x6d, 0x44, 0x65, 0x6c, 0x74, 0x61, 0x4e, 0x6f, 0x72, 0x6d, 0x22, 0x0e, 0x0a, 0x0c, 0x52, 0x65,
	0x73, 0x65, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0x2d, 0x0a, 0x0d, 0x52, 0x65,
	0x73, 0x65, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1c, 0x0a, 0x09, 0x73,
	0x75, 0x70, 0x70, 0x6f, 0x72, 0x74, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x09,
	0x73, 0x75, 0x70, 0x70, 0x6f, 0x72, 0x74, 0x65, 0x64, 0x32, 0xe5, 0x02, 0x0a, 0x0c, 0x4d, 0x6f,
	0x64, 0x65, 0x6c, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x4b, 0x0a, 0x0a, 0x4f, 0x70,
	0x65, 0x6e, 0x53, 0x74, 0x72, 0x65, 0x61, 0x6d, 0x12, 0x1d, 0x2e, 0x64, 0x72, 0x69, 0x66, 0x74,
	0x62, 0x65, 0x6e, 0x63, 0x68, 0x2e, 0x4f, 0x70, 0x65, 0x6e, 0x53, 0x74, 0x72, 0x65, 0x61, 0x6d,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1e, 0x2e, 0x64, 0x72, 0x69, 0x66, 0x74, 0x62,
	0x65, 0x6e, 0x63, 0x68, 0x2e, 0x4f, 0x70, 0x65, 0x6e, 0x53, 0x74, 0x72, 0x65, 0x61, 0x6d, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x48, 0x0a, 0x09, 0x4e, 0x65, 0x78, 0x74, 0x42,
	0x61, 0x74, 0x63, 0x68, 0x12, 0x1c, 0x2e, 0x64, 0x72, 0x69, 0x66, 0x74, 0x62, 0x65, 0x6e, 0x63,
	0x68, 0x2e, 0x4e, 0x65, 0x78, 0x74, 0x42, 0x61, 0x74, 0x63, 0x68, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x1a, 0x1d, 0x2e, 0x64, 0x72, 0x69, 0x66, 0x74, 0x62, 0x65, 0x6e, 0x63, 0x68, 0x2e,
	0x4e, 0x65, 0x78, 0x74, 0x42, 0x61, 0x74, 0x63, 0x68, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x42, 0x0a, 0x07, 0x46, 0x6f, 0x72, 0x77, 0x61, 0x72, 0x64, 0x12, 0x1a, 0x2e, 0x64,
	0x72, 0x69, 0x66, 0x74, 0x62, 0x65, 0x6e, 0x63, 0x68, 0x2e, 0x46, 0x6f, 0x72, 0x77, 0x61, 0x72,
	0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1b, 0x2e, 0x64, 0x72, 0x69, 0x66, 0x74,
	0x62, 0x65, 0x6e, 0x63, 0x68, 0x2e, 0x46, 0x6f, 0x72, 0x77, 0x61, 0x72, 0x64, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x3c, 0x0a, 0x05, 0x41, 0x64, 0x61, 0x70, 0x74, 0x12, 0x18,
	0x2e, 0x64, 0x72, 0x69, 0x66, 0x74, 0x62, 0x65, 0x6e, 0x63, 0x68, 0x2e, 0x41, 0x64, 0x61, 0x70,
	0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x19, 0x2e, 0x64, 0x72, 0x69, 0x66, 0x74,
	0x62, 0x65, 0x6e, 0x63, 0x68, 0x2e, 0x41, 0x64, 0x61, 0x70, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x3c, 0x0a, 0x05, 0x52, 0x65, 0x73, 0x65, 0x74, 0x12, 0x18, 0x2e, 0x64,
	0x72, 0x69, 0x66, 0x74, 0x62, 0x65, 0x6e, 0x63, 0x68, 0x2e, 0x52, 0x65, 0x73, 0x65, 0x74, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x19, 0x2e, 0x64, 0x72, 0x69, 0x66, 0x74, 0x62, 0x65,
	0x6e, 0x63, 0x68, 0x2e, 0x52, 0x65, 0x73, 0x65, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x42, 0x2e, 0x5a, 0x2c, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f,
	0x64, 0x72, 0x69, 0x66, 0x74, 0x62, 0x65, 0x6e, 0x63, 0x68, 0x2f, 0x67, 0x6f, 0x2d, 0x68, 0x61,
	0x72, 0x6e, 0x65, 0x73, 0x73, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x64, 0x72, 0x69, 0x66, 0x74, 0x70,
	0x62, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_driftbench_proto_rawDescOnce sync.Once
	file_driftbench_proto_rawDescData = file_driftbench_proto_rawDesc
)

func file_driftbench_proto_rawDescGZIP() []byte {
	file_driftbench_proto_rawDescOnce.Do(func() {
		file_driftbench_proto_rawDescData = protoimpl.X.CompressGZIP(file_driftbench_proto_rawDescData)
	})
	return file_driftbench_proto_rawDescData
}

var file_driftbench_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_driftbench_proto_goTypes = []any{
	(*OpenStreamRequest)(nil),  // 0: driftbench.OpenStreamRequest
	(*OpenStreamResponse)(nil), // 1: driftbench.OpenStreamResponse
	(*NextBatchRequest)(nil),   // 2: driftbench.NextBatchRequest
	(*NextBatchResponse)(nil),  // 3: driftbench.NextBatchResponse
	(*ForwardRequest)(nil),     // 4: driftbench.ForwardRequest
	(*LogitMatrix)(nil),        // 5: driftbench.LogitMatrix
	(*ForwardResponse)(nil),    // 6: driftbench.ForwardResponse
	(*AdaptRequest)(nil),       // 7: driftbench.AdaptRequest
	(*AdaptResponse)(nil),      // 8: driftbench.AdaptResponse
	(*ResetRequest)(nil),       // 9: driftbench.ResetRequest
	(*ResetResponse)(nil),      // 10: driftbench.ResetResponse
	nil,                        // 11: driftbench.AdaptRequest.LossWeightsEntry
}
var file_driftbench_proto_depIdxs = []int32{
	5,  // 0: driftbench.ForwardResponse.student:type_name -> driftbench.LogitMatrix
	5,  // 1: driftbench.ForwardResponse.teacher1:type_name -> driftbench.LogitMatrix
	5,  // 2: driftbench.ForwardResponse.teacher2:type_name -> driftbench.LogitMatrix
	5,  // 3: driftbench.ForwardResponse.aug:type_name -> driftbench.LogitMatrix
	11, // 4: driftbench.AdaptRequest.loss_weights:type_name -> driftbench.AdaptRequest.LossWeightsEntry
	0,  // 5: driftbench.ModelService.OpenStream:input_type -> driftbench.OpenStreamRequest
	2,  // 6: driftbench.ModelService.NextBatch:input_type -> driftbench.NextBatchRequest
	4,  // 7: driftbench.ModelService.Forward:input_type -> driftbench.ForwardRequest
	7,  // 8: driftbench.ModelService.Adapt:input_type -> driftbench.AdaptRequest
	9,  // 9: driftbench.ModelService.Reset:input_type -> driftbench.ResetRequest
	1,  // 10: driftbench.ModelService.OpenStream:output_type -> driftbench.OpenStreamResponse
	3,  // 11: driftbench.ModelService.NextBatch:output_type -> driftbench.NextBatchResponse
	6,  // 12: driftbench.ModelService.Forward:output_type -> driftbench.ForwardResponse
	8,  // 13: driftbench.ModelService.Adapt:output_type -> driftbench.AdaptResponse
	10, // 14: driftbench.ModelService.Reset:output_type -> driftbench.ResetResponse
	10, // [10:15] is the sub-list for method output_type
	5,  // [5:10] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_driftbench_proto_init() }
func file_driftbench_proto_init() {
	if File_driftbench_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_driftbench_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*OpenStreamRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_driftbench_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*OpenStreamResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_driftbench_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*NextBatchRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_driftbench_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*NextBatchResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_driftbench_proto_msgTypes[4].Exporter = func(v any, i int) any {
			switch v := v.(*ForwardRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_driftbench_proto_msgTypes[5].Exporter = func(v any, i int) any {
			switch v := v.(*LogitMatrix); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_driftbench_proto_msgTypes[6].Exporter = func(v any, i int) any {
			switch v := v.(*ForwardResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_driftbench_proto_msgTypes[7].Exporter = func(v any, i int) any {
			switch v := v.(*AdaptRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_driftbench_proto_msgTypes[8].Exporter = func(v any, i int) any {
			switch v := v.(*AdaptResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_driftbench_proto_msgTypes[9].Exporter = func(v any, i int) any {
			switch v := v.(*ResetRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_driftbench_proto_msgTypes[10].Exporter = func(v any, i int) any {
			switch v := v.(*ResetResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_driftbench_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_driftbench_proto_goTypes,
		DependencyIndexes: file_driftbench_proto_depIdxs,
		MessageInfos:      file_driftbench_proto_msgTypes,
	}.Build()
	File_driftbench_proto = out.File
	file_driftbench_proto_rawDesc = nil
	file_driftbench_proto_goTypes = nil
	file_driftbench_proto_depIdxs = nil
}
